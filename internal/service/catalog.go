package service

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/pathmanaban666/primecart/internal/domain"
	"github.com/pathmanaban666/primecart/internal/repository"
)

// CatalogService 提供商品目录的只读访问。
// 商品数据由外部后台维护，这里不做任何写操作，也没有缓存层：
// 每次读取都直接落到存储。
type CatalogService struct {
	productRepo repository.ProductRepository
}

// NewCatalogService 创建 CatalogService 实例。
func NewCatalogService(productRepo repository.ProductRepository) *CatalogService {
	if productRepo == nil {
		panic("ProductRepository cannot be nil for CatalogService")
	}
	return &CatalogService{productRepo: productRepo}
}

// ListProducts 返回全部商品。
func (s *CatalogService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		logrus.WithError(err).Error("ListProducts: repository error")
		return nil, ErrInternalServer
	}
	return products, nil
}

// GetProduct 根据 ID 返回单个商品。
func (s *CatalogService) GetProduct(ctx context.Context, id uint) (*domain.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, ErrProductNotFound
		}
		logrus.WithError(err).WithField("product_id", id).Error("GetProduct: repository error")
		return nil, ErrInternalServer
	}
	return product, nil
}
