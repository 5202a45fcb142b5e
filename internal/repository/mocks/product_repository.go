package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/pathmanaban666/primecart/internal/domain"
)

// ProductRepository 是 repository.ProductRepository 的 Mock 实现
type ProductRepository struct {
	mock.Mock
}

func (m *ProductRepository) FindAll(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	var products []domain.Product
	if args.Get(0) != nil {
		products = args.Get(0).([]domain.Product)
	}
	return products, args.Error(1)
}

func (m *ProductRepository) FindByID(ctx context.Context, id uint) (*domain.Product, error) {
	args := m.Called(ctx, id)
	var product *domain.Product
	if args.Get(0) != nil {
		product = args.Get(0).(*domain.Product)
	}
	return product, args.Error(1)
}
