package gormpersistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pathmanaban666/primecart/internal/domain"
	"github.com/pathmanaban666/primecart/internal/repository"
)

// GormCartRepository 是 CartRepository 接口的 GORM 实现
type GormCartRepository struct {
	db *gorm.DB
}

// NewGormCartRepository 创建 GormCartRepository 实例
func NewGormCartRepository(db *gorm.DB) *GormCartRepository {
	if db == nil {
		panic("database connection cannot be nil for GormCartRepository")
	}
	return &GormCartRepository{db: db}
}

// GetOrCreate 实现返回或惰性创建用户的购物车。
// FirstOrCreate 配合 user_id 唯一索引，并发创建时最多一个 INSERT 成功；
// 输掉的那一方收到 1062 后重查一次即可。
func (r *GormCartRepository) GetOrCreate(ctx context.Context, userID uint) (*domain.Cart, error) {
	var cart domain.Cart
	err := r.db.WithContext(ctx).
		Where(domain.Cart{UserID: userID}).
		FirstOrCreate(&cart).Error
	if err != nil {
		if isDuplicateEntryError(err) {
			// 另一个并发请求刚创建了购物车，重查
			err = r.db.WithContext(ctx).Where("user_id = ?", userID).First(&cart).Error
			if err != nil {
				return nil, fmt.Errorf("gorm: refetch cart for user %d: %w", userID, err)
			}
			return &cart, nil
		}
		return nil, fmt.Errorf("gorm: get or create cart for user %d: %w", userID, err)
	}
	return &cart, nil
}

// FindByUser 实现查找用户购物车，并把条目中的商品引用解析为完整记录 (populate)
func (r *GormCartRepository) FindByUser(ctx context.Context, userID uint) (*domain.Cart, error) {
	var cart domain.Cart
	err := r.db.WithContext(ctx).
		Preload("Items.Product").
		Where("user_id = ?", userID).
		First(&cart).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartNotFound
		}
		return nil, fmt.Errorf("gorm: find cart for user %d: %w", userID, err)
	}
	return &cart, nil
}

// UpsertItem 实现原子的 "插入或累加数量"。
// 生成的 SQL 为 INSERT ... ON DUPLICATE KEY UPDATE quantity = quantity + ?，
// 依赖 (cart_id, product_id) 唯一索引。整个操作在数据库内一步完成，
// 并发加购同一商品不会丢失更新。
func (r *GormCartRepository) UpsertItem(ctx context.Context, cartID, productID uint, quantity int) error {
	item := domain.CartItem{
		CartID:    cartID,
		ProductID: productID,
		Quantity:  quantity,
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "cart_id"}, {Name: "product_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"quantity": gorm.Expr("quantity + ?", quantity),
			}),
		}).
		Create(&item).Error
	if err != nil {
		return fmt.Errorf("gorm: upsert cart item (cart: %d, product: %d): %w", cartID, productID, err)
	}
	return nil
}

// RemoveItem 实现删除购物车中的指定商品条目。
// 商品不在购物车中时 Delete 影响 0 行，不视为错误。
func (r *GormCartRepository) RemoveItem(ctx context.Context, cartID, productID uint) error {
	err := r.db.WithContext(ctx).
		Where("cart_id = ? AND product_id = ?", cartID, productID).
		Delete(&domain.CartItem{}).Error
	if err != nil {
		return fmt.Errorf("gorm: remove cart item (cart: %d, product: %d): %w", cartID, productID, err)
	}
	return nil
}

// ClearItems 实现清空购物车条目，购物车本身保留
func (r *GormCartRepository) ClearItems(ctx context.Context, cartID uint) error {
	err := r.db.WithContext(ctx).
		Where("cart_id = ?", cartID).
		Delete(&domain.CartItem{}).Error
	if err != nil {
		return fmt.Errorf("gorm: clear cart %d: %w", cartID, err)
	}
	return nil
}

// isDuplicateEntryError 检查是否是 MySQL 唯一约束错误 (错误号 1062)
func isDuplicateEntryError(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}
