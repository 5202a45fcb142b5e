package repository

import (
	"context"

	"github.com/pathmanaban666/primecart/internal/domain"
)

// OrderRepository 定义了订单的存储操作。
type OrderRepository interface {
	// CreateFromCart 在同一个事务中写入订单 (含订单条目) 并清空该购物车，
	// 保证不会出现 "订单已生成但购物车没清" 的中间状态。
	CreateFromCart(ctx context.Context, order *domain.Order, cartID uint) error

	// FindByUser 返回用户的全部订单 (含条目)，按创建时间倒序。
	FindByUser(ctx context.Context, userID uint) ([]domain.Order, error)
}
