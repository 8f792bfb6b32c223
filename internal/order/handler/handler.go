package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/narendranaragani/printmaania/internal/auth"
	"github.com/narendranaragani/printmaania/internal/model"
	"github.com/narendranaragani/printmaania/internal/order"
	"github.com/narendranaragani/printmaania/internal/order/dto"
	"github.com/narendranaragani/printmaania/internal/whatsapp"
	"github.com/narendranaragani/printmaania/pkg/logger"
)

type OrderHandler struct {
	uc      order.UseCase
	builder *whatsapp.Builder
	logger  logger.ZapLogger
}

func NewOrderHandler(uc order.UseCase, builder *whatsapp.Builder, log logger.ZapLogger) *OrderHandler {
	return &OrderHandler{
		uc:      uc,
		builder: builder,
		logger:  log,
	}
}

func (h *OrderHandler) Register(r gin.IRouter) {
	r.POST("/orders", h.PlaceOrder)
	r.GET("/orders", h.ListOrders)
	r.GET("/orders/:id", h.GetOrder)
	r.POST("/orders/:id/status", h.UpdateStatus)
}

func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	var req dto.PlaceOrderInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}
	req.UserID = auth.UserID(c.Request.Context())

	o, err := h.uc.PlaceOrder(c.Request.Context(), &req)
	if err != nil {
		h.logger.Error("failed to place order", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to place order"})
		return
	}

	resp := gin.H{
		"order":       o,
		"status_info": order.GetStatusInfo(o.Status),
	}
	// WhatsApp-paid orders hand off to chat with a confirmation message.
	if h.builder != nil && paysViaWhatsApp(o.PaymentMethod) {
		resp["whatsapp_link"] = h.builder.BuildLink(confirmationFor(o))
	}

	c.JSON(http.StatusCreated, resp)
}

func paysViaWhatsApp(method string) bool {
	return strings.Contains(strings.ToLower(method), "whatsapp")
}

func confirmationFor(o *model.Order) whatsapp.OrderConfirmation {
	items := make([]whatsapp.ConfirmationItem, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, whatsapp.ConfirmationItem{
			ProductTitle: item.ProductTitle,
			Quantity:     item.Quantity,
			Color:        item.Color,
			Size:         item.Size,
		})
	}
	return whatsapp.OrderConfirmation{
		OrderNumber:  o.OrderNumber,
		Total:        o.Total,
		CustomerName: o.CustomerName,
		Phone:        o.Phone,
		Address:      o.Address,
		Items:        items,
	}
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	userID := auth.UserID(c.Request.Context())

	summaries, err := h.uc.ListByUser(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("failed to list orders", zap.String("user_id", userID), zap.Error(err))
		c.JSON(http.StatusOK, gin.H{"orders": []any{}})
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": summaries})
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	id := c.Param("id")

	o, err := h.uc.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, order.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		h.logger.Error("failed to get order", zap.String("order_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get order"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"order":       o,
		"status_info": order.GetStatusInfo(o.Status),
	})
}

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")

	var req dto.TransitionInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	o, err := h.uc.Transition(c.Request.Context(), id, req.Status, req.Message)
	if err != nil {
		if errors.Is(err, order.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		h.logger.Error("failed to update order status", zap.String("order_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update order status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"order":       o,
		"status_info": order.GetStatusInfo(o.Status),
	})
}
