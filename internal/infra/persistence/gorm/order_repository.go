package gormpersistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/pathmanaban666/primecart/internal/domain"
)

// GormOrderRepository 是 OrderRepository 接口的 GORM 实现
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository 创建 GormOrderRepository 实例
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	if db == nil {
		panic("database connection cannot be nil for GormOrderRepository")
	}
	return &GormOrderRepository{db: db}
}

// CreateFromCart 实现订单创建。
// 订单 (含条目) 的写入和购物车的清空放在同一个事务中，
// 避免出现订单已生成但购物车仍保留条目的中间状态。
func (r *GormOrderRepository) CreateFromCart(ctx context.Context, order *domain.Order, cartID uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Create 会级联写入 order.Items
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		if err := tx.Where("cart_id = ?", cartID).Delete(&domain.CartItem{}).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("gorm: create order from cart %d: %w", cartID, err)
	}
	return nil
}

// FindByUser 实现返回用户的订单列表 (含条目)，按创建时间倒序
func (r *GormOrderRepository) FindByUser(ctx context.Context, userID uint) ([]domain.Order, error) {
	var orders []domain.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("gorm: find orders for user %d: %w", userID, err)
	}
	return orders, nil
}
