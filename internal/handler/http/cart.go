package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/pathmanaban666/primecart/internal/domain"
	"github.com/pathmanaban666/primecart/internal/middleware"
	"github.com/pathmanaban666/primecart/internal/service"
)

// CartHandler 封装了购物车相关的 HTTP 处理逻辑。
// 所有路由都在会话网关之后，用户 ID 从上下文取。
type CartHandler struct {
	cartService *service.CartService
}

// NewCartHandler 创建 CartHandler 实例
func NewCartHandler(cartService *service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// AddItemRequest 定义加购请求的结构体。
// quantity 不做 binding 校验：非正数由 Service 层收敛为 1。
type AddItemRequest struct {
	ProductID uint `json:"productId" binding:"required"`
	Quantity  int  `json:"quantity"`
}

// Add 向当前用户的购物车加入商品
func (h *CartHandler) Add(c *gin.Context) {
	userID := middleware.UserID(c)

	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, KindValidationError, "Invalid input: productId required")
		return
	}

	if err := h.cartService.AddItem(c.Request.Context(), userID, req.ProductID, req.Quantity); err != nil {
		HandleServiceError(c, err)
		return
	}

	logrus.WithFields(logrus.Fields{"user_id": userID, "product_id": req.ProductID}).
		Info("Handler.Cart.Add: item added")
	SuccessResponse(c, http.StatusOK, gin.H{"message": "Item added to cart"})
}

// CartItemResponse 是购物车条目的响应形状：商品引用已解析为完整记录
type CartItemResponse struct {
	Product  domain.Product `json:"product"`
	Quantity int            `json:"quantity"`
}

// List 返回当前用户购物车的条目。购物车尚未创建时返回空数组。
func (h *CartHandler) List(c *gin.Context) {
	userID := middleware.UserID(c)

	items, err := h.cartService.ListItems(c.Request.Context(), userID)
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	resp := make([]CartItemResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, CartItemResponse{
			Product:  item.Product,
			Quantity: item.Quantity,
		})
	}
	SuccessResponse(c, http.StatusOK, resp)
}

// RemoveItemRequest 定义移除请求的结构体
type RemoveItemRequest struct {
	ProductID uint `json:"productId" binding:"required"`
}

// Remove 从购物车移除指定商品。
// 商品不在购物车中时仍返回成功；购物车不存在时返回 404。
func (h *CartHandler) Remove(c *gin.Context) {
	userID := middleware.UserID(c)

	var req RemoveItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, KindValidationError, "Invalid input: productId required")
		return
	}

	if err := h.cartService.RemoveItem(c.Request.Context(), userID, req.ProductID); err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, gin.H{"message": "Item removed from cart"})
}

// Clear 清空当前用户的购物车
func (h *CartHandler) Clear(c *gin.Context) {
	userID := middleware.UserID(c)

	if err := h.cartService.Clear(c.Request.Context(), userID); err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, gin.H{"message": "All cart items cleared"})
}
