package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/pathmanaban666/primecart/internal/service"
)

// HandleServiceError 把 Service 层的业务错误映射为 HTTP 状态码和错误 kind。
// 不在封闭集合中的错误一律按内部错误处理，只记日志，不向客户端透出细节。
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrEmailTaken):
		ErrorResponse(c, http.StatusBadRequest, KindConflict, err.Error())
	case errors.Is(err, service.ErrEmptyUsername),
		errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, service.ErrEmptyCart):
		ErrorResponse(c, http.StatusBadRequest, KindValidationError, err.Error())
	case errors.Is(err, service.ErrAuthenticationFailed):
		ErrorResponse(c, http.StatusUnauthorized, KindAuthError, err.Error())
	case errors.Is(err, service.ErrInvalidToken):
		ErrorResponse(c, http.StatusForbidden, KindAuthError, err.Error())
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrProductNotFound),
		errors.Is(err, service.ErrCartNotFound):
		ErrorResponse(c, http.StatusNotFound, KindNotFound, err.Error())
	default:
		// Log the internal error for debugging
		logrus.WithError(err).Error("Unhandled internal server error")
		ErrorResponse(c, http.StatusInternalServerError, KindInternalError, "An unexpected error occurred")
	}
}
