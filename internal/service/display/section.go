package display

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"shopadmin-service/internal/domain/display"
	xerrors "shopadmin-service/internal/pkg/errors"
)

type SectionService struct {
	sections display.SectionRepository
	resolver *SourceResolver
	feed     FeedInvalidator
	logger   *zap.Logger
}

func NewSectionService(
	sections display.SectionRepository,
	resolver *SourceResolver,
	feed FeedInvalidator,
	logger *zap.Logger,
) *SectionService {
	return &SectionService{
		sections: sections,
		resolver: resolver,
		feed:     feed,
		logger:   logger,
	}
}

func (s *SectionService) CreateSection(ctx context.Context, req *display.CreateSectionRequest) (*display.HomepageSection, error) {
	if _, err := s.resolver.Resolve(ctx, req.Source, ResolveOptions{}); err != nil {
		return nil, err
	}

	exists, err := s.sections.ExistsByTitle(ctx, req.Title, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to check section title: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("section title %q already exists: %w", req.Title, xerrors.ErrConflict)
	}

	sec := &display.HomepageSection{
		Title:    req.Title,
		Position: req.Position,
		Enabled:  true,
		Source:   req.Source.Normalized(),
	}
	if req.Enabled != nil {
		sec.Enabled = *req.Enabled
	}

	if err := s.sections.Create(ctx, sec); err != nil {
		s.logger.Error("failed to create section", zap.Error(err))
		return nil, err
	}

	s.invalidateFeed(ctx)
	s.logger.Info("section created",
		zap.Int64("section_id", sec.ID),
		zap.String("source", string(sec.Source.Type)),
	)

	return sec, nil
}

// UpdateSection re-resolves a changed selector and persists it normalized,
// which clears the previous variant's relation slots.
func (s *SectionService) UpdateSection(ctx context.Context, id int64, req *display.UpdateSectionRequest) (*display.HomepageSection, error) {
	sec, err := s.sections.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil && *req.Title != sec.Title {
		exists, err := s.sections.ExistsByTitle(ctx, *req.Title, id)
		if err != nil {
			return nil, fmt.Errorf("failed to check section title: %w", err)
		}
		if exists {
			return nil, fmt.Errorf("section title %q already exists: %w", *req.Title, xerrors.ErrConflict)
		}
		sec.Title = *req.Title
	}
	if req.Position != nil {
		sec.Position = *req.Position
	}
	if req.Enabled != nil {
		sec.Enabled = *req.Enabled
	}

	if req.Source != nil {
		if _, err := s.resolver.Resolve(ctx, *req.Source, ResolveOptions{}); err != nil {
			return nil, err
		}
		sec.Source = req.Source.Normalized()
	}

	if err := s.sections.Update(ctx, sec); err != nil {
		s.logger.Error("failed to update section", zap.Int64("section_id", id), zap.Error(err))
		return nil, err
	}

	s.invalidateFeed(ctx)
	s.logger.Info("section updated", zap.Int64("section_id", id))

	return sec, nil
}

func (s *SectionService) GetSection(ctx context.Context, id int64) (*display.SectionView, error) {
	sec, err := s.sections.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resolved, err := s.resolver.Resolve(ctx, sec.Source, ResolveOptions{})
	if err != nil {
		resolved = &display.ResolvedSource{Type: sec.Source.Type}
	}

	return &display.SectionView{Section: *sec, Resolved: *resolved}, nil
}

func (s *SectionService) ListSections(ctx context.Context) ([]display.HomepageSection, error) {
	return s.sections.List(ctx)
}

func (s *SectionService) DeleteSection(ctx context.Context, id int64) error {
	if err := s.sections.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateFeed(ctx)
	s.logger.Info("section deleted", zap.Int64("section_id", id))

	return nil
}

func (s *SectionService) invalidateFeed(ctx context.Context) {
	if s.feed == nil {
		return
	}
	if err := s.feed.Invalidate(ctx); err != nil {
		s.logger.Warn("failed to invalidate feed cache", zap.Error(err))
	}
}
