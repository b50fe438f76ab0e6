package catalog

import (
	"context"
	"database/sql"

	"go.uber.org/zap"

	"shopadmin-service/internal/domain/catalog"
)

type CategoryService struct {
	categories    catalog.CategoryRepository
	subcategories catalog.SubcategoryRepository
	logger        *zap.Logger
}

func NewCategoryService(
	categories catalog.CategoryRepository,
	subcategories catalog.SubcategoryRepository,
	logger *zap.Logger,
) *CategoryService {
	return &CategoryService{
		categories:    categories,
		subcategories: subcategories,
		logger:        logger,
	}
}

func (s *CategoryService) CreateCategory(ctx context.Context, req *catalog.CreateCategoryRequest) (*catalog.Category, error) {
	c := &catalog.Category{
		Name:        req.Name,
		Description: sql.NullString{String: req.Description, Valid: req.Description != ""},
		ImageURL:    sql.NullString{String: req.ImageURL, Valid: req.ImageURL != ""},
	}

	if err := s.categories.Create(ctx, c); err != nil {
		s.logger.Error("failed to create category", zap.Error(err))
		return nil, err
	}

	s.logger.Info("category created", zap.Int64("category_id", c.ID), zap.String("name", c.Name))
	return c, nil
}

func (s *CategoryService) GetCategory(ctx context.Context, id int64) (*catalog.Category, error) {
	return s.categories.FindByID(ctx, id)
}

func (s *CategoryService) ListCategories(ctx context.Context) ([]catalog.Category, error) {
	return s.categories.List(ctx)
}

func (s *CategoryService) UpdateCategory(ctx context.Context, id int64, req *catalog.UpdateCategoryRequest) (*catalog.Category, error) {
	c, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.Description != nil {
		c.Description = sql.NullString{String: *req.Description, Valid: *req.Description != ""}
	}
	if req.ImageURL != nil {
		c.ImageURL = sql.NullString{String: *req.ImageURL, Valid: *req.ImageURL != ""}
	}

	if err := s.categories.Update(ctx, c); err != nil {
		s.logger.Error("failed to update category", zap.Int64("category_id", id), zap.Error(err))
		return nil, err
	}

	s.logger.Info("category updated", zap.Int64("category_id", id))
	return c, nil
}

// DeleteCategory removes the category only; products referencing it are
// detached, never deleted.
func (s *CategoryService) DeleteCategory(ctx context.Context, id int64) error {
	if err := s.categories.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("category deleted", zap.Int64("category_id", id))
	return nil
}

func (s *CategoryService) CreateSubcategory(ctx context.Context, categoryID int64, req *catalog.CreateSubcategoryRequest) (*catalog.Subcategory, error) {
	if _, err := s.categories.FindByID(ctx, categoryID); err != nil {
		return nil, err
	}

	sub := &catalog.Subcategory{
		CategoryID: categoryID,
		Name:       req.Name,
		ImageURL:   sql.NullString{String: req.ImageURL, Valid: req.ImageURL != ""},
	}

	if err := s.subcategories.Create(ctx, sub); err != nil {
		s.logger.Error("failed to create subcategory", zap.Error(err))
		return nil, err
	}

	s.logger.Info("subcategory created",
		zap.Int64("subcategory_id", sub.ID),
		zap.Int64("category_id", categoryID),
	)
	return sub, nil
}

func (s *CategoryService) GetSubcategory(ctx context.Context, id int64) (*catalog.Subcategory, error) {
	return s.subcategories.FindByID(ctx, id)
}

func (s *CategoryService) ListSubcategories(ctx context.Context, categoryID int64) ([]catalog.Subcategory, error) {
	if _, err := s.categories.FindByID(ctx, categoryID); err != nil {
		return nil, err
	}
	return s.subcategories.ListByCategory(ctx, categoryID)
}

func (s *CategoryService) UpdateSubcategory(ctx context.Context, id int64, req *catalog.UpdateSubcategoryRequest) (*catalog.Subcategory, error) {
	sub, err := s.subcategories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		sub.Name = *req.Name
	}
	if req.ImageURL != nil {
		sub.ImageURL = sql.NullString{String: *req.ImageURL, Valid: *req.ImageURL != ""}
	}

	if err := s.subcategories.Update(ctx, sub); err != nil {
		s.logger.Error("failed to update subcategory", zap.Int64("subcategory_id", id), zap.Error(err))
		return nil, err
	}

	s.logger.Info("subcategory updated", zap.Int64("subcategory_id", id))
	return sub, nil
}

func (s *CategoryService) DeleteSubcategory(ctx context.Context, id int64) error {
	if err := s.subcategories.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("subcategory deleted", zap.Int64("subcategory_id", id))
	return nil
}
