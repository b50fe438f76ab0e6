package order

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"shopadmin-service/internal/domain/order"
	"shopadmin-service/internal/pkg/response"
	service "shopadmin-service/internal/service/order"
)

type OrderHandler struct {
	orderService *service.Service
}

func NewOrderHandler(orderService *service.Service) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req order.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	result, err := h.orderService.CreateOrder(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, "failed to create order", err)
		return
	}

	response.Success(c, http.StatusCreated, "order created successfully", result)
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid order ID", err)
		return
	}

	result, err := h.orderService.GetOrder(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, "failed to get order", err)
		return
	}

	response.Success(c, http.StatusOK, "order retrieved successfully", result)
}

func (h *OrderHandler) GetOrderByReference(c *gin.Context) {
	reference := c.Param("reference")

	result, err := h.orderService.GetOrderByReference(c.Request.Context(), reference)
	if err != nil {
		response.FromError(c, "failed to get order", err)
		return
	}

	response.Success(c, http.StatusOK, "order retrieved successfully", result)
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	var filters order.OrderListFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid query parameters", err)
		return
	}

	result, err := h.orderService.ListOrders(c.Request.Context(), &filters)
	if err != nil {
		response.FromError(c, "failed to list orders", err)
		return
	}

	response.Success(c, http.StatusOK, "orders retrieved successfully", result)
}

func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid order ID", err)
		return
	}

	var req order.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	result, err := h.orderService.UpdateOrderStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		response.FromError(c, "failed to update order status", err)
		return
	}

	response.Success(c, http.StatusOK, "order status updated successfully", result)
}
