package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/pathmanaban666/primecart/internal/domain"
	"github.com/pathmanaban666/primecart/internal/middleware"
	"github.com/pathmanaban666/primecart/internal/service"
)

// AuthHandler 封装了与用户认证和账户资料相关的 HTTP 处理逻辑
type AuthHandler struct {
	authService *service.AuthService
	sessions    *service.SessionManager
}

// NewAuthHandler 创建 AuthHandler 实例
func NewAuthHandler(authService *service.AuthService, sessions *service.SessionManager) *AuthHandler {
	return &AuthHandler{authService: authService, sessions: sessions}
}

// RegisterRequest 定义注册请求的结构体
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=1,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// Register 处理用户注册请求
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.WithError(err).Warn("Handler.Register: invalid input format")
		ErrorResponse(c, http.StatusBadRequest, KindValidationError, "Invalid input: username, email and password required")
		return
	}

	newUser, err := h.authService.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	logrus.WithField("user_id", newUser.ID).Info("Handler.Register: user registered successfully")
	SuccessResponse(c, http.StatusOK, gin.H{"message": "User registered successfully"})
}

// LoginRequest 定义登录请求的结构体
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login 处理用户登录请求。
// 成功后把会话令牌写进 HTTP-only 的 cookie：
// SameSite=Lax，非 Secure（本部署没有启用 HTTPS，已知的加固缺口），
// max-age 与令牌 TTL 一致。
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, KindValidationError, "Invalid input: email and password required")
		return
	}

	token, user, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookieName, token, int(h.sessions.TTL().Seconds()), "/", "", false, true)

	logrus.WithField("user_id", user.ID).Info("Handler.Login: user logged in successfully")
	SuccessResponse(c, http.StatusOK, gin.H{"message": "Logged in"})
}

// AuthCheck 报告当前请求的认证状态。
// 与受保护路由不同：cookie 缺失或令牌无效不是错误，
// 始终返回 200，由 isAuthenticated 字段区分。
func (h *AuthHandler) AuthCheck(c *gin.Context) {
	tokenStr, err := c.Cookie(middleware.SessionCookieName)
	if err != nil || tokenStr == "" {
		SuccessResponse(c, http.StatusOK, gin.H{"isAuthenticated": false})
		return
	}
	userID, err := h.sessions.Verify(tokenStr)
	if err != nil {
		SuccessResponse(c, http.StatusOK, gin.H{"isAuthenticated": false})
		return
	}
	SuccessResponse(c, http.StatusOK, gin.H{
		"isAuthenticated": true,
		"user":            gin.H{"id": userID},
	})
}

// Logout 处理登出：让客户端立即丢弃 cookie。
// 注意服务端不撤销令牌，已签发的令牌在 TTL 内依然有效（沿用原系统行为）。
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", false, true)
	SuccessResponse(c, http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// Account 返回当前用户的公开资料
func (h *AuthHandler) Account(c *gin.Context) {
	userID := middleware.UserID(c)

	user, err := h.authService.GetAccount(c.Request.Context(), userID)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, gin.H{"user": publicUser(user)})
}

// UpdateAccountRequest 定义账户更新请求的结构体。
// username 是否为空白由 Service 层判定，这里不加 required。
type UpdateAccountRequest struct {
	Username string `json:"username"`
}

// UpdateAccount 更新当前用户的显示名
func (h *AuthHandler) UpdateAccount(c *gin.Context) {
	userID := middleware.UserID(c)

	var req UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, KindValidationError, "Invalid input")
		return
	}

	user, err := h.authService.UpdateUsername(c.Request.Context(), userID, req.Username)
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	logrus.WithField("user_id", userID).Info("Handler.UpdateAccount: username updated")
	SuccessResponse(c, http.StatusOK, gin.H{"user": publicUser(user)})
}

// publicUser 构造可以安全返回给客户端的用户表示（不含密码哈希）
func publicUser(u *domain.User) gin.H {
	return gin.H{
		"id":       u.ID,
		"username": u.Username,
		"email":    u.Email,
	}
}
