package catalog

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"shopadmin-service/internal/domain/catalog"
	"shopadmin-service/internal/pkg/response"
	service "shopadmin-service/internal/service/catalog"
)

type ProductHandler struct {
	productService *service.ProductService
}

func NewProductHandler(productService *service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req catalog.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	result, err := h.productService.CreateProduct(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, "failed to create product", err)
		return
	}

	response.Success(c, http.StatusCreated, "product created successfully", result)
}

func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid product ID", err)
		return
	}

	result, err := h.productService.GetProduct(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, "failed to get product", err)
		return
	}

	response.Success(c, http.StatusOK, "product retrieved successfully", result)
}

func (h *ProductHandler) ListProducts(c *gin.Context) {
	var filters catalog.ProductListFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid query parameters", err)
		return
	}

	result, err := h.productService.ListProducts(c.Request.Context(), &filters)
	if err != nil {
		response.FromError(c, "failed to list products", err)
		return
	}

	response.Success(c, http.StatusOK, "products retrieved successfully", result)
}

func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid product ID", err)
		return
	}

	var req catalog.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	result, err := h.productService.UpdateProduct(c.Request.Context(), id, &req)
	if err != nil {
		response.FromError(c, "failed to update product", err)
		return
	}

	response.Success(c, http.StatusOK, "product updated successfully", result)
}

type updateProductStatusRequest struct {
	Status catalog.ProductStatus `json:"status" binding:"required"`
}

func (h *ProductHandler) UpdateProductStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid product ID", err)
		return
	}

	var req updateProductStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	if err := h.productService.UpdateProductStatus(c.Request.Context(), id, req.Status); err != nil {
		response.FromError(c, "failed to update product status", err)
		return
	}

	response.Success(c, http.StatusOK, "product status updated successfully", nil)
}

func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid product ID", err)
		return
	}

	if err := h.productService.DeleteProduct(c.Request.Context(), id); err != nil {
		response.FromError(c, "failed to delete product", err)
		return
	}

	response.Success(c, http.StatusOK, "product deleted successfully", nil)
}
