package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// SessionManager 负责会话令牌的签发和校验。
// 令牌是无状态的 HS256 JWT：校验只做签名和过期检查，不访问存储。
// 签发和校验逻辑集中在这里，AuthService 和认证中间件共用同一份实现。
//
// 注意：不支持服务端撤销。登出只是让客户端丢弃 cookie，
// 已签发的令牌在 TTL 内始终有效（沿用原系统行为，已知的安全弱点）。
type SessionManager struct {
	secret []byte        // 签名密钥
	ttl    time.Duration // 令牌有效期
}

// NewSessionManager 创建 SessionManager 实例。
// secret 应从安全配置中获取；ttl 非正时使用默认的 1 小时。
func NewSessionManager(secret string, ttl time.Duration) (*SessionManager, error) {
	if secret == "" {
		return nil, fmt.Errorf("JWT secret key cannot be empty")
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &SessionManager{
		secret: []byte(secret),
		ttl:    ttl,
	}, nil
}

// TTL 返回令牌有效期，供 Handler 设置 cookie 的 max-age。
func (m *SessionManager) TTL() time.Duration {
	return m.ttl
}

// Issue 为指定用户签发令牌，过期时间为签发时刻 + TTL。
func (m *SessionManager) Issue(userID uint) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"iat":     now.Unix(),
		"exp":     now.Add(m.ttl).Unix(),
	})
	tokenString, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

// Verify 校验令牌并返回其中嵌入的用户 ID。
// 校验没有副作用，同一令牌在过期前可以重复校验任意次。
// 签名不匹配、已过期、claims 缺失等所有失败统一映射为 ErrInvalidToken，
// 具体原因只进日志，不区分给客户端。
func (m *SessionManager) Verify(tokenStr string) (uint, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		// 只接受 HMAC 签名方法
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return 0, ErrInvalidToken
	}

	userIDClaim, ok := claims["user_id"]
	if !ok {
		return 0, fmt.Errorf("%w: missing user_id claim", ErrInvalidToken)
	}
	// JWT 数字默认为 float64，需要安全转换为 uint
	userIDFloat, ok := userIDClaim.(float64)
	if !ok || userIDFloat <= 0 || userIDFloat != float64(uint(userIDFloat)) {
		return 0, fmt.Errorf("%w: invalid user_id claim", ErrInvalidToken)
	}
	return uint(userIDFloat), nil
}
