package deal

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"shopadmin-service/internal/domain/deal"
	"shopadmin-service/internal/pkg/response"
	service "shopadmin-service/internal/service/deal"
)

type DealHandler struct {
	dealService *service.Service
}

func NewDealHandler(dealService *service.Service) *DealHandler {
	return &DealHandler{dealService: dealService}
}

func (h *DealHandler) CreateDeal(c *gin.Context) {
	var req deal.CreateDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	result, err := h.dealService.CreateDeal(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, "failed to create deal", err)
		return
	}

	response.Success(c, http.StatusCreated, "deal created successfully", result)
}

func (h *DealHandler) GetDeal(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid deal ID", err)
		return
	}

	result, err := h.dealService.GetDeal(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, "failed to get deal", err)
		return
	}

	response.Success(c, http.StatusOK, "deal retrieved successfully", result)
}

func (h *DealHandler) ListDeals(c *gin.Context) {
	result, err := h.dealService.ListDeals(c.Request.Context())
	if err != nil {
		response.FromError(c, "failed to list deals", err)
		return
	}

	response.Success(c, http.StatusOK, "deals retrieved successfully", result)
}

func (h *DealHandler) UpdateDeal(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid deal ID", err)
		return
	}

	var req deal.UpdateDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	result, err := h.dealService.UpdateDeal(c.Request.Context(), id, &req)
	if err != nil {
		response.FromError(c, "failed to update deal", err)
		return
	}

	response.Success(c, http.StatusOK, "deal updated successfully", result)
}

type updateDealStatusRequest struct {
	Status deal.DealStatus `json:"status" binding:"required"`
}

func (h *DealHandler) UpdateDealStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid deal ID", err)
		return
	}

	var req updateDealStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	if err := h.dealService.UpdateDealStatus(c.Request.Context(), id, req.Status); err != nil {
		response.FromError(c, "failed to update deal status", err)
		return
	}

	response.Success(c, http.StatusOK, "deal status updated successfully", nil)
}

func (h *DealHandler) DeleteDeal(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid deal ID", err)
		return
	}

	if err := h.dealService.DeleteDeal(c.Request.Context(), id); err != nil {
		response.FromError(c, "failed to delete deal", err)
		return
	}

	response.Success(c, http.StatusOK, "deal deleted successfully", nil)
}
