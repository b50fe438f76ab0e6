package catalog

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"shopadmin-service/internal/domain/catalog"
	"shopadmin-service/internal/pkg/response"
	service "shopadmin-service/internal/service/catalog"
)

type CategoryHandler struct {
	categoryService *service.CategoryService
}

func NewCategoryHandler(categoryService *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req catalog.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	result, err := h.categoryService.CreateCategory(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, "failed to create category", err)
		return
	}

	response.Success(c, http.StatusCreated, "category created successfully", result)
}

func (h *CategoryHandler) GetCategory(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid category ID", err)
		return
	}

	result, err := h.categoryService.GetCategory(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, "failed to get category", err)
		return
	}

	response.Success(c, http.StatusOK, "category retrieved successfully", result)
}

func (h *CategoryHandler) ListCategories(c *gin.Context) {
	result, err := h.categoryService.ListCategories(c.Request.Context())
	if err != nil {
		response.FromError(c, "failed to list categories", err)
		return
	}

	response.Success(c, http.StatusOK, "categories retrieved successfully", result)
}

func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid category ID", err)
		return
	}

	var req catalog.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	result, err := h.categoryService.UpdateCategory(c.Request.Context(), id, &req)
	if err != nil {
		response.FromError(c, "failed to update category", err)
		return
	}

	response.Success(c, http.StatusOK, "category updated successfully", result)
}

func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid category ID", err)
		return
	}

	if err := h.categoryService.DeleteCategory(c.Request.Context(), id); err != nil {
		response.FromError(c, "failed to delete category", err)
		return
	}

	response.Success(c, http.StatusOK, "category deleted successfully", nil)
}

func (h *CategoryHandler) CreateSubcategory(c *gin.Context) {
	categoryID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid category ID", err)
		return
	}

	var req catalog.CreateSubcategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	result, err := h.categoryService.CreateSubcategory(c.Request.Context(), categoryID, &req)
	if err != nil {
		response.FromError(c, "failed to create subcategory", err)
		return
	}

	response.Success(c, http.StatusCreated, "subcategory created successfully", result)
}

func (h *CategoryHandler) ListSubcategories(c *gin.Context) {
	categoryID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid category ID", err)
		return
	}

	result, err := h.categoryService.ListSubcategories(c.Request.Context(), categoryID)
	if err != nil {
		response.FromError(c, "failed to list subcategories", err)
		return
	}

	response.Success(c, http.StatusOK, "subcategories retrieved successfully", result)
}

func (h *CategoryHandler) GetSubcategory(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid subcategory ID", err)
		return
	}

	result, err := h.categoryService.GetSubcategory(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, "failed to get subcategory", err)
		return
	}

	response.Success(c, http.StatusOK, "subcategory retrieved successfully", result)
}

func (h *CategoryHandler) UpdateSubcategory(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid subcategory ID", err)
		return
	}

	var req catalog.UpdateSubcategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	result, err := h.categoryService.UpdateSubcategory(c.Request.Context(), id, &req)
	if err != nil {
		response.FromError(c, "failed to update subcategory", err)
		return
	}

	response.Success(c, http.StatusOK, "subcategory updated successfully", result)
}

func (h *CategoryHandler) DeleteSubcategory(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid subcategory ID", err)
		return
	}

	if err := h.categoryService.DeleteSubcategory(c.Request.Context(), id); err != nil {
		response.FromError(c, "failed to delete subcategory", err)
		return
	}

	response.Success(c, http.StatusOK, "subcategory deleted successfully", nil)
}
