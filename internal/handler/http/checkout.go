package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/pathmanaban666/primecart/internal/middleware"
	"github.com/pathmanaban666/primecart/internal/service"
)

// CheckoutHandler 封装了结算和订单查询的 HTTP 处理逻辑
type CheckoutHandler struct {
	checkoutService *service.CheckoutService
}

// NewCheckoutHandler 创建 CheckoutHandler 实例
func NewCheckoutHandler(checkoutService *service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService}
}

// Checkout 把当前用户的购物车转为订单。购物车为空时返回 400。
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	userID := middleware.UserID(c)

	order, err := h.checkoutService.Checkout(c.Request.Context(), userID)
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	logrus.WithFields(logrus.Fields{"user_id": userID, "order_number": order.Number}).
		Info("Handler.Checkout: order confirmed")
	SuccessResponse(c, http.StatusOK, gin.H{
		"message": "Order confirmed",
		"order":   order,
	})
}

// Orders 返回当前用户的订单列表
func (h *CheckoutHandler) Orders(c *gin.Context) {
	userID := middleware.UserID(c)

	orders, err := h.checkoutService.ListOrders(c.Request.Context(), userID)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, orders)
}
