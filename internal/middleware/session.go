package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/pathmanaban666/primecart/internal/service"
)

// 会话 cookie 的名字，与登录时设置的保持一致。
const SessionCookieName = "token"

// Gin 上下文中存放已认证用户 ID 的键。
const ContextUserIDKey = "user_id"

// Session 返回一个 Gin 中间件，作为所有受保护路由共用的请求网关：
// 从 cookie 提取会话令牌 → 校验 → 失败则中止请求，
// 成功则把解析出的用户 ID 放进上下文交给后续 Handler。
// cookie 缺失返回 401，令牌无效或过期返回 403（沿用原系统的状态码划分）。
func Session(sessions *service.SessionManager) gin.HandlerFunc {
	if sessions == nil {
		panic("SessionManager cannot be nil for Session middleware")
	}

	return func(c *gin.Context) {
		// 1. 从 cookie 提取令牌
		tokenStr, err := c.Cookie(SessionCookieName)
		if err != nil || tokenStr == "" {
			logrus.Debug("Session middleware: authentication cookie missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"kind":    "auth_error",
				"message": "Authentication token missing",
			})
			return
		}

		// 2. 校验令牌（无副作用，不访问存储）
		userID, err := sessions.Verify(tokenStr)
		if err != nil {
			// 具体原因只进日志，客户端只看到统一的失败消息
			logrus.WithError(err).Warn("Session middleware: token verification failed")
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"kind":    "auth_error",
				"message": "Invalid or expired token",
			})
			return
		}

		// 3. 把用户 ID 挂到上下文，供后续 Handler 使用
		c.Set(ContextUserIDKey, userID)
		logrus.WithField("user_id", userID).Debug("Session middleware: user authenticated")

		c.Next()
	}
}

// UserID 从 Gin 上下文取出已认证的用户 ID。
// 只应在 Session 中间件之后的 Handler 中调用。
func UserID(c *gin.Context) uint {
	return c.GetUint(ContextUserIDKey)
}
