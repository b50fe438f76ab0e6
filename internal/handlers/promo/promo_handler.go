package promo

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"shopadmin-service/internal/domain/promo"
	xerrors "shopadmin-service/internal/pkg/errors"
	"shopadmin-service/internal/pkg/response"
	service "shopadmin-service/internal/service/promo"
)

type PromoHandler struct {
	promoService *service.Service
}

func NewPromoHandler(promoService *service.Service) *PromoHandler {
	return &PromoHandler{promoService: promoService}
}

func (h *PromoHandler) CreatePromo(c *gin.Context) {
	var req promo.CreatePromoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	result, err := h.promoService.CreatePromo(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, "failed to create promo", err)
		return
	}

	response.Success(c, http.StatusCreated, "promo created successfully", result)
}

func (h *PromoHandler) GetPromo(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid promo ID", err)
		return
	}

	result, err := h.promoService.GetPromo(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, "failed to get promo", err)
		return
	}

	response.Success(c, http.StatusOK, "promo retrieved successfully", result)
}

func (h *PromoHandler) ListPromos(c *gin.Context) {
	result, err := h.promoService.ListPromos(c.Request.Context())
	if err != nil {
		response.FromError(c, "failed to list promos", err)
		return
	}

	response.Success(c, http.StatusOK, "promos retrieved successfully", result)
}

func (h *PromoHandler) UpdatePromo(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid promo ID", err)
		return
	}

	var req promo.UpdatePromoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	result, err := h.promoService.UpdatePromo(c.Request.Context(), id, &req)
	if err != nil {
		response.FromError(c, "failed to update promo", err)
		return
	}

	response.Success(c, http.StatusOK, "promo updated successfully", result)
}

func (h *PromoHandler) DeletePromo(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid promo ID", err)
		return
	}

	if err := h.promoService.DeletePromo(c.Request.Context(), id); err != nil {
		response.FromError(c, "failed to delete promo", err)
		return
	}

	response.Success(c, http.StatusOK, "promo deleted successfully", nil)
}

// ValidatePromo checks a code for redemption without consuming a use. A
// known but unusable code is reported as valid=false rather than an error.
func (h *PromoHandler) ValidatePromo(c *gin.Context) {
	code := c.Param("code")

	p, err := h.promoService.ValidateCode(c.Request.Context(), code)
	if err != nil {
		if xerrors.Is(err, xerrors.ErrInvalidInput) {
			response.Success(c, http.StatusOK, "promo is not redeemable", promo.ValidatePromoResponse{
				Code:  code,
				Valid: false,
			})
			return
		}
		response.FromError(c, "failed to validate promo", err)
		return
	}

	response.Success(c, http.StatusOK, "promo is redeemable", promo.ValidatePromoResponse{
		Code:            p.Code,
		DiscountPercent: p.DiscountPercent,
		Valid:           true,
	})
}
