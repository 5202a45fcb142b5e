package setup

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/pathmanaban666/primecart/internal/domain"
)

// MigrateDB handles all database migrations using the provided GORM DB instance.
// 返回错误以便调用者知道迁移是否成功。
func MigrateDB(db *gorm.DB) error {
	if db == nil {
		return fmt.Errorf("cannot migrate database with nil DB connection")
	}

	// AutoMigrate 按依赖顺序创建表和索引：
	// users.email、carts.user_id、cart_items(cart_id, product_id)、
	// orders.number 上的唯一索引都在模型的 gorm tag 中声明。
	err := db.AutoMigrate(
		&domain.User{},
		&domain.Product{},
		&domain.Cart{},
		&domain.CartItem{},
		&domain.Order{},
		&domain.OrderItem{},
	)
	if err != nil {
		return fmt.Errorf("failed to auto-migrate tables: %w", err)
	}
	return nil
}
