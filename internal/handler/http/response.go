package http

import "github.com/gin-gonic/gin"

// 错误 kind 的封闭枚举。所有错误响应统一为 {kind, message} 信封，
// Handler 不再各自拼 JSON。
const (
	KindValidationError = "validation_error"
	KindAuthError       = "auth_error"
	KindNotFound        = "not_found"
	KindConflict        = "conflict"
	KindInternalError   = "internal_error"
)

func ErrorResponse(c *gin.Context, code int, kind, message string) {
	c.JSON(code, gin.H{"kind": kind, "message": message})
}

func SuccessResponse(c *gin.Context, code int, data interface{}) {
	c.JSON(code, data)
}
