package service

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/pathmanaban666/primecart/internal/domain"
	"github.com/pathmanaban666/primecart/internal/repository"
)

// AuthService 负责用户注册、登录和账户资料相关的业务逻辑。
type AuthService struct {
	userRepo repository.UserRepository
	sessions *SessionManager
}

// NewAuthService 创建 AuthService 实例。
func NewAuthService(userRepo repository.UserRepository, sessions *SessionManager) *AuthService {
	if userRepo == nil {
		panic("UserRepository cannot be nil for AuthService")
	}
	if sessions == nil {
		panic("SessionManager cannot be nil for AuthService")
	}
	return &AuthService{
		userRepo: userRepo,
		sessions: sessions,
	}
}

// Register 处理用户注册。
// 邮箱统一归一化为小写后再查重和落库；原始密码只参与哈希，绝不存储和返回。
// 先查重给出友好错误，email 唯一索引兜底并发窗口：
// 两个并发注册同时通过查重时，后写入的一方收到唯一约束错误，
// 同样以 ErrEmailTaken 返回。
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*domain.User, error) {
	normalizedEmail := normalizeEmail(email)
	logCtx := logrus.WithFields(logrus.Fields{"username": username, "email": normalizedEmail})

	if username == "" || normalizedEmail == "" || password == "" {
		return nil, ErrInvalidInput
	}

	// 1. 查重（check-then-insert，唯一索引兜底）
	_, err := s.userRepo.FindByEmail(ctx, normalizedEmail)
	if err == nil {
		logCtx.Warn("Registration failed: email already registered")
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		logCtx.WithError(err).Error("Database error checking email uniqueness")
		return nil, ErrInternalServer
	}

	// 2. 哈希密码 (bcrypt, cost 10)
	hashedPassword, err := hashPassword(password)
	if err != nil {
		logCtx.WithError(err).Error("Failed to hash password during registration")
		return nil, ErrInternalServer
	}

	// 3. 创建用户对象
	user := &domain.User{
		Username: username,
		Email:    normalizedEmail,
		Password: hashedPassword,
	}

	// 4. 保存用户 (调用 Repository 接口)
	err = s.userRepo.Save(ctx, user)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEntry) {
			// 并发注册输掉的一方
			logCtx.WithError(err).Warn("Registration failed: email already exists (unique index)")
			return nil, ErrEmailTaken
		}
		logCtx.WithError(err).Error("Database error during user creation")
		return nil, ErrInternalServer
	}

	logCtx.WithField("user_id", user.ID).Info("User registered successfully")
	user.Password = "" // 清除密码哈希再返回
	return user, nil
}

// Login 处理用户登录，成功时签发会话令牌。
// 邮箱不存在和密码错误统一返回 ErrAuthenticationFailed，
// 不向客户端泄露具体是哪一种失败。
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	normalizedEmail := normalizeEmail(email)
	logCtx := logrus.WithField("email", normalizedEmail)

	// 1. 查找用户
	user, err := s.userRepo.FindByEmail(ctx, normalizedEmail)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			logCtx.Warn("Login attempt failed: user not found")
		} else {
			logCtx.WithError(err).Warn("Login attempt failed: error finding user")
		}
		return "", nil, ErrAuthenticationFailed // 对客户端统一返回认证失败
	}
	// 防御性检查，以防仓库实现返回 nil, nil
	if user == nil {
		logCtx.Warn("Login attempt failed: repo returned nil user without error")
		return "", nil, ErrAuthenticationFailed
	}

	// 2. 验证密码 (bcrypt 内部比较是恒定时间的)
	if !checkPassword(password, user.Password) {
		logCtx.Warn("Login attempt failed: invalid password")
		return "", nil, ErrAuthenticationFailed
	}

	// 3. 签发会话令牌
	token, err := s.sessions.Issue(user.ID)
	if err != nil {
		logCtx.WithError(err).Error("Failed to issue session token during login")
		return "", nil, ErrInternalServer
	}

	logCtx.WithField("user_id", user.ID).Info("User logged in successfully")
	user.Password = ""
	return token, user, nil
}

// GetAccount 返回用户的公开资料。
func (s *AuthService) GetAccount(ctx context.Context, userID uint) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		logrus.WithError(err).WithField("user_id", userID).Error("GetAccount: repository error")
		return nil, ErrInternalServer
	}
	user.Password = ""
	return user, nil
}

// UpdateUsername 更新用户的显示名。
// 去掉首尾空白后为空时返回 ErrEmptyUsername。
func (s *AuthService) UpdateUsername(ctx context.Context, userID uint, username string) (*domain.User, error) {
	logCtx := logrus.WithField("user_id", userID)

	trimmed := strings.TrimSpace(username)
	if trimmed == "" {
		return nil, ErrEmptyUsername
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			logCtx.Warn("UpdateUsername: user not found")
			return nil, ErrUserNotFound
		}
		logCtx.WithError(err).Error("UpdateUsername: repository error")
		return nil, ErrInternalServer
	}

	user.Username = trimmed
	if err := s.userRepo.Save(ctx, user); err != nil {
		logCtx.WithError(err).Error("UpdateUsername: failed to save user")
		return nil, ErrInternalServer
	}

	logCtx.WithField("username", trimmed).Info("Username updated successfully")
	user.Password = ""
	return user, nil
}

// --- 私有辅助函数 ---

// normalizeEmail 把邮箱归一化为小写并去掉首尾空白
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// hashPassword 使用 bcrypt 对密码进行哈希处理
func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// checkPassword 验证提供的密码是否与存储的哈希匹配
func checkPassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
