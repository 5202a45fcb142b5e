package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pathmanaban666/primecart/internal/service"
)

// ProductHandler 封装了商品目录相关的 HTTP 处理逻辑
type ProductHandler struct {
	catalogService *service.CatalogService
}

// NewProductHandler 创建 ProductHandler 实例
func NewProductHandler(catalogService *service.CatalogService) *ProductHandler {
	return &ProductHandler{catalogService: catalogService}
}

// List 返回全部商品
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.catalogService.ListProducts(c.Request.Context())
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, products)
}

// Get 根据路径参数中的 ID 返回单个商品
func (h *ProductHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, KindValidationError, "Invalid product id")
		return
	}

	product, err := h.catalogService.GetProduct(c.Request.Context(), uint(id))
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, product)
}
