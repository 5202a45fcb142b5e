package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product 表示商品目录中的商品。
// 目录在本服务中是只读的：商品由外部后台录入和维护。
type Product struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Name        string          `gorm:"type:varchar(191);not null" json:"name"`
	Description string          `gorm:"type:text" json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"` // 使用 decimal 避免浮点金额误差
	ImageURL    string          `gorm:"type:varchar(512)" json:"imageUrl"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"-"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"-"`
}
