package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pathmanaban666/primecart/internal/domain"
	"github.com/pathmanaban666/primecart/internal/repository"
	"github.com/pathmanaban666/primecart/internal/repository/mocks"
	"github.com/pathmanaban666/primecart/internal/service"
)

func TestCartService_AddItem_Success(t *testing.T) {
	// Arrange
	mockCartRepo := new(mocks.CartRepository)
	cartService := service.NewCartService(mockCartRepo)
	ctx := context.Background()

	mockCartRepo.On("GetOrCreate", ctx, uint(1)).Return(&domain.Cart{ID: 9, UserID: 1}, nil).Once()
	mockCartRepo.On("UpsertItem", ctx, uint(9), uint(3), 2).Return(nil).Once()

	// Act
	err := cartService.AddItem(ctx, 1, 3, 2)

	// Assert
	assert.NoError(t, err)
	mockCartRepo.AssertExpectations(t)
}

func TestCartService_AddItem_ClampsQuantity(t *testing.T) {
	// 非正数量收敛为 1，而不是报错
	mockCartRepo := new(mocks.CartRepository)
	cartService := service.NewCartService(mockCartRepo)
	ctx := context.Background()

	mockCartRepo.On("GetOrCreate", ctx, uint(1)).Return(&domain.Cart{ID: 9, UserID: 1}, nil).Twice()
	mockCartRepo.On("UpsertItem", ctx, uint(9), uint(3), 1).Return(nil).Twice()

	assert.NoError(t, cartService.AddItem(ctx, 1, 3, 0))
	assert.NoError(t, cartService.AddItem(ctx, 1, 3, -5))

	mockCartRepo.AssertExpectations(t)
}

func TestCartService_AddItem_IncrementsExisting(t *testing.T) {
	// 加 a 再加 b 应产生对同一 (cart, product) 的两次累加 upsert：
	// 存储层在数据库内累加数量，结果等同于一次加 a+b
	mockCartRepo := new(mocks.CartRepository)
	cartService := service.NewCartService(mockCartRepo)
	ctx := context.Background()

	mockCartRepo.On("GetOrCreate", ctx, uint(1)).Return(&domain.Cart{ID: 9, UserID: 1}, nil).Twice()
	mockCartRepo.On("UpsertItem", ctx, uint(9), uint(3), 2).Return(nil).Once()
	mockCartRepo.On("UpsertItem", ctx, uint(9), uint(3), 3).Return(nil).Once()

	require.NoError(t, cartService.AddItem(ctx, 1, 3, 2))
	require.NoError(t, cartService.AddItem(ctx, 1, 3, 3))

	mockCartRepo.AssertExpectations(t)
}

func TestCartService_ListItems_NoCart(t *testing.T) {
	// 购物车尚未创建：返回空列表，不是错误
	mockCartRepo := new(mocks.CartRepository)
	cartService := service.NewCartService(mockCartRepo)
	ctx := context.Background()

	mockCartRepo.On("FindByUser", ctx, uint(1)).Return(nil, repository.ErrCartNotFound).Once()

	items, err := cartService.ListItems(ctx, 1)

	assert.NoError(t, err)
	assert.NotNil(t, items, "应返回空切片而不是 nil")
	assert.Empty(t, items)
	mockCartRepo.AssertExpectations(t)
}

func TestCartService_ListItems_Populated(t *testing.T) {
	mockCartRepo := new(mocks.CartRepository)
	cartService := service.NewCartService(mockCartRepo)
	ctx := context.Background()

	cart := &domain.Cart{
		ID:     9,
		UserID: 1,
		Items: []domain.CartItem{
			{CartID: 9, ProductID: 3, Quantity: 5, Product: domain.Product{ID: 3, Name: "Blue T-Shirt"}},
		},
	}
	mockCartRepo.On("FindByUser", ctx, uint(1)).Return(cart, nil).Once()

	items, err := cartService.ListItems(ctx, 1)

	assert.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
	assert.Equal(t, "Blue T-Shirt", items[0].Product.Name, "商品引用应被解析为完整记录")
	mockCartRepo.AssertExpectations(t)
}

func TestCartService_RemoveItem_CartNotFound(t *testing.T) {
	mockCartRepo := new(mocks.CartRepository)
	cartService := service.NewCartService(mockCartRepo)
	ctx := context.Background()

	mockCartRepo.On("FindByUser", ctx, uint(1)).Return(nil, repository.ErrCartNotFound).Once()

	err := cartService.RemoveItem(ctx, 1, 3)

	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrCartNotFound))
	mockCartRepo.AssertNotCalled(t, "RemoveItem", mock.Anything, mock.Anything, mock.Anything)
}

func TestCartService_RemoveItem_AbsentProductIsNoop(t *testing.T) {
	// 商品不在购物车中：存储层删除影响 0 行，仍然是成功
	mockCartRepo := new(mocks.CartRepository)
	cartService := service.NewCartService(mockCartRepo)
	ctx := context.Background()

	mockCartRepo.On("FindByUser", ctx, uint(1)).Return(&domain.Cart{ID: 9, UserID: 1}, nil).Once()
	mockCartRepo.On("RemoveItem", ctx, uint(9), uint(99)).Return(nil).Once()

	err := cartService.RemoveItem(ctx, 1, 99)

	assert.NoError(t, err)
	mockCartRepo.AssertExpectations(t)
}

func TestCartService_Clear_Success(t *testing.T) {
	mockCartRepo := new(mocks.CartRepository)
	cartService := service.NewCartService(mockCartRepo)
	ctx := context.Background()

	mockCartRepo.On("FindByUser", ctx, uint(1)).Return(&domain.Cart{ID: 9, UserID: 1}, nil).Once()
	mockCartRepo.On("ClearItems", ctx, uint(9)).Return(nil).Once()

	err := cartService.Clear(ctx, 1)

	assert.NoError(t, err)
	mockCartRepo.AssertExpectations(t)
}

func TestCartService_Clear_CartNotFound(t *testing.T) {
	mockCartRepo := new(mocks.CartRepository)
	cartService := service.NewCartService(mockCartRepo)
	ctx := context.Background()

	mockCartRepo.On("FindByUser", ctx, uint(1)).Return(nil, repository.ErrCartNotFound).Once()

	err := cartService.Clear(ctx, 1)

	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrCartNotFound))
	mockCartRepo.AssertExpectations(t)
}
