package gormpersistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/pathmanaban666/primecart/internal/domain"
	"github.com/pathmanaban666/primecart/internal/repository"
)

// GormProductRepository 是 ProductRepository 接口的 GORM 实现。
// 目录在本服务中只读，因此没有写入方法。
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository 创建 GormProductRepository 实例
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	if db == nil {
		panic("database connection cannot be nil for GormProductRepository")
	}
	return &GormProductRepository{db: db}
}

// FindAll 实现返回全部商品
func (r *GormProductRepository) FindAll(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	err := r.db.WithContext(ctx).Order("id asc").Find(&products).Error
	if err != nil {
		// Find 对空结果不返回 ErrRecordNotFound，这里任何错误都是真正的数据库错误
		return nil, fmt.Errorf("gorm: find all products: %w", err)
	}
	return products, nil
}

// FindByID 实现根据商品 ID 查找商品
func (r *GormProductRepository) FindByID(ctx context.Context, id uint) (*domain.Product, error) {
	var product domain.Product
	err := r.db.WithContext(ctx).First(&product, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}
		return nil, fmt.Errorf("gorm: find product by id %d: %w", id, err)
	}
	return &product, nil
}
