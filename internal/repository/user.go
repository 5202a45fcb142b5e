package repository

import (
	"context"

	"github.com/pathmanaban666/primecart/internal/domain"
)

// UserRepository 定义了用户数据的存储和检索操作。
type UserRepository interface {
	// FindByEmail 根据邮箱查找用户。邮箱在存储前已统一转为小写，
	// 调用方负责在查询前完成同样的归一化。
	// 如果用户不存在，返回 ErrUserNotFound。
	FindByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindByID 根据用户 ID 查找用户。
	// 如果用户不存在，返回 ErrUserNotFound。
	FindByID(ctx context.Context, id uint) (*domain.User, error)

	// Save 保存用户信息。
	// 如果用户已存在 (基于 ID)，则更新；否则创建新用户。
	// 违反 email 唯一索引时返回 ErrDuplicateEntry。
	Save(ctx context.Context, user *domain.User) error
}
