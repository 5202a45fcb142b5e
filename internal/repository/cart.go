package repository

import (
	"context"

	"github.com/pathmanaban666/primecart/internal/domain"
)

// CartRepository 定义了购物车聚合的存储操作。
type CartRepository interface {
	// GetOrCreate 返回用户的购物车；不存在时创建一个空购物车。
	// 并发调用依赖 user_id 唯一索引保证最终只有一行。
	GetOrCreate(ctx context.Context, userID uint) (*domain.Cart, error)

	// FindByUser 返回用户的购物车，条目中的商品引用已解析为完整的 Product 记录。
	// 如果购物车不存在，返回 ErrCartNotFound。
	FindByUser(ctx context.Context, userID uint) (*domain.Cart, error)

	// UpsertItem 以单条原子语句写入购物车条目：
	// 商品不在购物车时插入新行，已存在时在存储层累加数量。
	// 不存在 "读取-修改-写回" 窗口，并发加购不会互相覆盖。
	UpsertItem(ctx context.Context, cartID, productID uint, quantity int) error

	// RemoveItem 删除购物车中指定商品的条目。
	// 商品不在购物车中时不报错 (no-op)。
	RemoveItem(ctx context.Context, cartID, productID uint) error

	// ClearItems 删除购物车中的全部条目，购物车本身保留。
	ClearItems(ctx context.Context, cartID uint) error
}
