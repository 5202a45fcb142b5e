package domain

import "time"

// Cart 表示某个用户的购物车。
// user_id 上的唯一索引保证每个用户至多一个购物车 (1 cart per user)。
// 购物车在第一次加购时惰性创建，清空后继续存在，不会被删除。
type Cart struct {
	ID        uint       `gorm:"primaryKey"`
	UserID    uint       `gorm:"uniqueIndex:idx_cart_user;not null"`
	Items     []CartItem `gorm:"foreignKey:CartID"`
	CreatedAt time.Time  `gorm:"autoCreateTime"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime"`
}

// CartItem 表示购物车中的一个条目 (商品引用 + 数量)。
// (cart_id, product_id) 上的唯一索引保证同一商品在一个购物车中至多一行；
// 重复加购通过存储层的原子 upsert 累加数量，而不是追加新行。
type CartItem struct {
	ID        uint    `gorm:"primaryKey"`
	CartID    uint    `gorm:"uniqueIndex:idx_cart_product;not null"`
	ProductID uint    `gorm:"uniqueIndex:idx_cart_product;not null"`
	Quantity  int     `gorm:"not null;default:1"` // 始终为正整数
	Product   Product `gorm:"foreignKey:ProductID"`
}
