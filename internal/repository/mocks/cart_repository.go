package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/pathmanaban666/primecart/internal/domain"
)

// CartRepository 是 repository.CartRepository 的 Mock 实现
type CartRepository struct {
	mock.Mock
}

func (m *CartRepository) GetOrCreate(ctx context.Context, userID uint) (*domain.Cart, error) {
	args := m.Called(ctx, userID)
	var cart *domain.Cart
	if args.Get(0) != nil {
		cart = args.Get(0).(*domain.Cart)
	}
	return cart, args.Error(1)
}

func (m *CartRepository) FindByUser(ctx context.Context, userID uint) (*domain.Cart, error) {
	args := m.Called(ctx, userID)
	var cart *domain.Cart
	if args.Get(0) != nil {
		cart = args.Get(0).(*domain.Cart)
	}
	return cart, args.Error(1)
}

func (m *CartRepository) UpsertItem(ctx context.Context, cartID, productID uint, quantity int) error {
	args := m.Called(ctx, cartID, productID, quantity)
	return args.Error(0)
}

func (m *CartRepository) RemoveItem(ctx context.Context, cartID, productID uint) error {
	args := m.Called(ctx, cartID, productID)
	return args.Error(0)
}

func (m *CartRepository) ClearItems(ctx context.Context, cartID uint) error {
	args := m.Called(ctx, cartID)
	return args.Error(0)
}
