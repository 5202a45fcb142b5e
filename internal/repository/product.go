package repository

import (
	"context"

	"github.com/pathmanaban666/primecart/internal/domain"
)

// ProductRepository 定义了商品目录的只读访问操作。
// 商品的写入由外部后台完成，不在本服务范围内。
type ProductRepository interface {
	// FindAll 返回全部商品，按 ID 升序。
	FindAll(ctx context.Context) ([]domain.Product, error)

	// FindByID 根据商品 ID 查找商品。
	// 如果商品不存在，返回 ErrProductNotFound。
	FindByID(ctx context.Context, id uint) (*domain.Product, error)
}
