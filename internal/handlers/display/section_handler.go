package display

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"shopadmin-service/internal/domain/display"
	"shopadmin-service/internal/pkg/response"
	service "shopadmin-service/internal/service/display"
)

type SectionHandler struct {
	sectionService *service.SectionService
}

func NewSectionHandler(sectionService *service.SectionService) *SectionHandler {
	return &SectionHandler{sectionService: sectionService}
}

func (h *SectionHandler) CreateSection(c *gin.Context) {
	var req display.CreateSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	result, err := h.sectionService.CreateSection(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, "failed to create section", err)
		return
	}

	response.Success(c, http.StatusCreated, "section created successfully", result)
}

func (h *SectionHandler) GetSection(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid section ID", err)
		return
	}

	result, err := h.sectionService.GetSection(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, "failed to get section", err)
		return
	}

	response.Success(c, http.StatusOK, "section retrieved successfully", result)
}

func (h *SectionHandler) ListSections(c *gin.Context) {
	result, err := h.sectionService.ListSections(c.Request.Context())
	if err != nil {
		response.FromError(c, "failed to list sections", err)
		return
	}

	response.Success(c, http.StatusOK, "sections retrieved successfully", result)
}

func (h *SectionHandler) UpdateSection(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid section ID", err)
		return
	}

	var req display.UpdateSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	result, err := h.sectionService.UpdateSection(c.Request.Context(), id, &req)
	if err != nil {
		response.FromError(c, "failed to update section", err)
		return
	}

	response.Success(c, http.StatusOK, "section updated successfully", result)
}

func (h *SectionHandler) DeleteSection(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid section ID", err)
		return
	}

	if err := h.sectionService.DeleteSection(c.Request.Context(), id); err != nil {
		response.FromError(c, "failed to delete section", err)
		return
	}

	response.Success(c, http.StatusOK, "section deleted successfully", nil)
}
