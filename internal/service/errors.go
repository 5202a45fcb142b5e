package service

import "errors"

// 业务错误的封闭集合。Handler 层按 errors.Is 映射到 HTTP 状态码和错误 kind，
// 不在这个集合里的错误一律作为内部错误处理，细节不外泄给客户端。
var (
	ErrAuthenticationFailed = errors.New("invalid credentials")
	ErrInvalidToken         = errors.New("invalid or expired token")
	ErrEmailTaken           = errors.New("email is already registered")
	ErrInvalidInput         = errors.New("username, email and password are required")
	ErrEmptyUsername        = errors.New("username cannot be empty")
	ErrUserNotFound         = errors.New("user not found")
	ErrProductNotFound      = errors.New("product not found")
	ErrCartNotFound         = errors.New("cart not found")
	ErrEmptyCart            = errors.New("cart is empty")
	ErrInternalServer       = errors.New("internal server error")
)
