package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// 订单状态。支付在本服务中是模拟的，订单创建后直接进入 confirmed 状态。
const (
	OrderStatusConfirmed = "confirmed"
)

// Order 表示一次结算生成的订单。
type Order struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	Number    string          `gorm:"type:varchar(64);uniqueIndex:idx_order_number;not null" json:"number"` // 对外展示的订单号 (UUID)
	UserID    uint            `gorm:"index:idx_order_user;not null" json:"-"`
	Status    string          `gorm:"type:varchar(32);not null" json:"status"`
	Total     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total"`
	Items     []OrderItem     `gorm:"foreignKey:OrderID" json:"items"`
	CreatedAt time.Time       `gorm:"autoCreateTime" json:"createdAt"`
}

// OrderItem 固化下单时刻的商品数量与单价，之后商品价格变动不影响已有订单。
type OrderItem struct {
	ID        uint            `gorm:"primaryKey" json:"-"`
	OrderID   uint            `gorm:"index:idx_order_item_order;not null" json:"-"`
	ProductID uint            `gorm:"not null" json:"productId"`
	Name      string          `gorm:"type:varchar(191);not null" json:"name"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"unitPrice"`
	Quantity  int             `gorm:"not null" json:"quantity"`
}
