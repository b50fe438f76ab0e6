package display

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"shopadmin-service/internal/domain/display"
	"shopadmin-service/internal/pkg/response"
	service "shopadmin-service/internal/service/display"
)

type BannerHandler struct {
	bannerService *service.BannerService
	sweeper       *service.StatusSweeper
}

func NewBannerHandler(bannerService *service.BannerService, sweeper *service.StatusSweeper) *BannerHandler {
	return &BannerHandler{bannerService: bannerService, sweeper: sweeper}
}

func (h *BannerHandler) CreateBanner(c *gin.Context) {
	var req display.CreateBannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	result, err := h.bannerService.CreateBanner(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, "failed to create banner", err)
		return
	}

	response.Success(c, http.StatusCreated, "banner created successfully", result)
}

func (h *BannerHandler) GetBanner(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid banner ID", err)
		return
	}

	result, err := h.bannerService.GetBanner(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, "failed to get banner", err)
		return
	}

	response.Success(c, http.StatusOK, "banner retrieved successfully", result)
}

func (h *BannerHandler) ListBanners(c *gin.Context) {
	result, err := h.bannerService.ListBanners(c.Request.Context())
	if err != nil {
		response.FromError(c, "failed to list banners", err)
		return
	}

	response.Success(c, http.StatusOK, "banners retrieved successfully", result)
}

func (h *BannerHandler) UpdateBanner(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid banner ID", err)
		return
	}

	var req display.UpdateBannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	result, err := h.bannerService.UpdateBanner(c.Request.Context(), id, &req)
	if err != nil {
		response.FromError(c, "failed to update banner", err)
		return
	}

	response.Success(c, http.StatusOK, "banner updated successfully", result)
}

func (h *BannerHandler) DeleteBanner(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid banner ID", err)
		return
	}

	if err := h.bannerService.DeleteBanner(c.Request.Context(), id); err != nil {
		response.FromError(c, "failed to delete banner", err)
		return
	}

	response.Success(c, http.StatusOK, "banner deleted successfully", nil)
}

// SweepBannerStatuses runs one reclassification pass on demand, outside the
// periodic schedule.
func (h *BannerHandler) SweepBannerStatuses(c *gin.Context) {
	transitions, err := h.sweeper.SweepOnce(c.Request.Context())
	if err != nil {
		response.FromError(c, "failed to sweep banner statuses", err)
		return
	}

	response.Success(c, http.StatusOK, "banner statuses swept successfully", gin.H{
		"transitions": transitions,
	})
}
