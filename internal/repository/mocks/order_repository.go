package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/pathmanaban666/primecart/internal/domain"
)

// OrderRepository 是 repository.OrderRepository 的 Mock 实现
type OrderRepository struct {
	mock.Mock
}

func (m *OrderRepository) CreateFromCart(ctx context.Context, order *domain.Order, cartID uint) error {
	args := m.Called(ctx, order, cartID)
	return args.Error(0)
}

func (m *OrderRepository) FindByUser(ctx context.Context, userID uint) ([]domain.Order, error) {
	args := m.Called(ctx, userID)
	var orders []domain.Order
	if args.Get(0) != nil {
		orders = args.Get(0).([]domain.Order)
	}
	return orders, args.Error(1)
}
