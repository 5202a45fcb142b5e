package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pathmanaban666/primecart/internal/domain"
	"github.com/pathmanaban666/primecart/internal/repository"
	"github.com/pathmanaban666/primecart/internal/repository/mocks"
	"github.com/pathmanaban666/primecart/internal/service"
	"github.com/pathmanaban666/primecart/internal/tasks"
)

// fakeEnqueuer 记录入队的任务，替代真实的 *asynq.Client。
type fakeEnqueuer struct {
	enqueued []*asynq.Task
	err      error
}

func (f *fakeEnqueuer) EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.enqueued = append(f.enqueued, task)
	return &asynq.TaskInfo{ID: "fake-task-id", Queue: "default"}, nil
}

func mustPrice(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func TestCheckoutService_Checkout_Success(t *testing.T) {
	// Arrange
	mockCartRepo := new(mocks.CartRepository)
	mockOrderRepo := new(mocks.OrderRepository)
	mockUserRepo := new(mocks.UserRepository)
	enqueuer := &fakeEnqueuer{}
	checkoutService := service.NewCheckoutService(mockCartRepo, mockOrderRepo, mockUserRepo, enqueuer)
	ctx := context.Background()

	cart := &domain.Cart{
		ID:     9,
		UserID: 1,
		Items: []domain.CartItem{
			{CartID: 9, ProductID: 3, Quantity: 2, Product: domain.Product{ID: 3, Name: "Blue T-Shirt", Price: mustPrice(t, "19.99")}},
			{CartID: 9, ProductID: 7, Quantity: 1, Product: domain.Product{ID: 7, Name: "Canvas Tote", Price: mustPrice(t, "12.50")}},
		},
	}
	mockCartRepo.On("FindByUser", ctx, uint(1)).Return(cart, nil).Once()
	mockOrderRepo.On("CreateFromCart", ctx, mock.AnythingOfType("*domain.Order"), uint(9)).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Order).ID = 42 // 模拟数据库回填主键
		}).Return(nil).Once()
	mockUserRepo.On("FindByID", ctx, uint(1)).
		Return(&domain.User{ID: 1, Username: "alice", Email: "alice@example.com"}, nil).Once()

	// Act
	order, err := checkoutService.Checkout(ctx, 1)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, domain.OrderStatusConfirmed, order.Status, "模拟支付，订单应直接确认")
	assert.NotEmpty(t, order.Number)
	assert.True(t, order.Total.Equal(mustPrice(t, "52.48")), "总额应为 2*19.99 + 12.50 = 52.48, got %s", order.Total)

	// 订单条目固化下单时刻的名称和单价
	require.Len(t, order.Items, 2)
	assert.Equal(t, "Blue T-Shirt", order.Items[0].Name)
	assert.True(t, order.Items[0].UnitPrice.Equal(mustPrice(t, "19.99")))
	assert.Equal(t, 2, order.Items[0].Quantity)

	// 确认邮件已入队
	require.Len(t, enqueuer.enqueued, 1)
	task := enqueuer.enqueued[0]
	assert.Equal(t, tasks.TypeOrderConfirmation, task.Type())
	var payload tasks.OrderConfirmationPayload
	require.NoError(t, json.Unmarshal(task.Payload(), &payload))
	assert.Equal(t, uint(42), payload.OrderID)
	assert.Equal(t, "alice@example.com", payload.Email)
	assert.Equal(t, "52.48", payload.Total)

	mockCartRepo.AssertExpectations(t)
	mockOrderRepo.AssertExpectations(t)
	mockUserRepo.AssertExpectations(t)
}

func TestCheckoutService_Checkout_MissingCart(t *testing.T) {
	mockCartRepo := new(mocks.CartRepository)
	mockOrderRepo := new(mocks.OrderRepository)
	mockUserRepo := new(mocks.UserRepository)
	checkoutService := service.NewCheckoutService(mockCartRepo, mockOrderRepo, mockUserRepo, &fakeEnqueuer{})
	ctx := context.Background()

	mockCartRepo.On("FindByUser", ctx, uint(1)).Return(nil, repository.ErrCartNotFound).Once()

	order, err := checkoutService.Checkout(ctx, 1)

	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrEmptyCart))
	assert.Nil(t, order)
	mockOrderRepo.AssertNotCalled(t, "CreateFromCart", mock.Anything, mock.Anything, mock.Anything)
}

func TestCheckoutService_Checkout_EmptyCart(t *testing.T) {
	mockCartRepo := new(mocks.CartRepository)
	mockOrderRepo := new(mocks.OrderRepository)
	mockUserRepo := new(mocks.UserRepository)
	checkoutService := service.NewCheckoutService(mockCartRepo, mockOrderRepo, mockUserRepo, &fakeEnqueuer{})
	ctx := context.Background()

	mockCartRepo.On("FindByUser", ctx, uint(1)).Return(&domain.Cart{ID: 9, UserID: 1}, nil).Once()

	order, err := checkoutService.Checkout(ctx, 1)

	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrEmptyCart), "空购物车不允许结算")
	assert.Nil(t, order)
	mockOrderRepo.AssertNotCalled(t, "CreateFromCart", mock.Anything, mock.Anything, mock.Anything)
}

func TestCheckoutService_Checkout_EnqueueFailureDoesNotFailOrder(t *testing.T) {
	// 邮件入队失败只记日志：订单已经落库，结算仍然成功
	mockCartRepo := new(mocks.CartRepository)
	mockOrderRepo := new(mocks.OrderRepository)
	mockUserRepo := new(mocks.UserRepository)
	enqueuer := &fakeEnqueuer{err: errors.New("redis: connection refused")}
	checkoutService := service.NewCheckoutService(mockCartRepo, mockOrderRepo, mockUserRepo, enqueuer)
	ctx := context.Background()

	cart := &domain.Cart{
		ID:     9,
		UserID: 1,
		Items: []domain.CartItem{
			{CartID: 9, ProductID: 3, Quantity: 1, Product: domain.Product{ID: 3, Name: "Blue T-Shirt", Price: mustPrice(t, "19.99")}},
		},
	}
	mockCartRepo.On("FindByUser", ctx, uint(1)).Return(cart, nil).Once()
	mockOrderRepo.On("CreateFromCart", ctx, mock.AnythingOfType("*domain.Order"), uint(9)).Return(nil).Once()
	mockUserRepo.On("FindByID", ctx, uint(1)).
		Return(&domain.User{ID: 1, Email: "alice@example.com"}, nil).Once()

	order, err := checkoutService.Checkout(ctx, 1)

	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Empty(t, enqueuer.enqueued)
	mockOrderRepo.AssertExpectations(t)
}

func TestCheckoutService_ListOrders(t *testing.T) {
	mockCartRepo := new(mocks.CartRepository)
	mockOrderRepo := new(mocks.OrderRepository)
	mockUserRepo := new(mocks.UserRepository)
	checkoutService := service.NewCheckoutService(mockCartRepo, mockOrderRepo, mockUserRepo, nil)
	ctx := context.Background()

	orders := []domain.Order{
		{ID: 2, Number: "b2f1", UserID: 1, Status: domain.OrderStatusConfirmed, Total: mustPrice(t, "52.48")},
		{ID: 1, Number: "a9c3", UserID: 1, Status: domain.OrderStatusConfirmed, Total: mustPrice(t, "19.99")},
	}
	mockOrderRepo.On("FindByUser", ctx, uint(1)).Return(orders, nil).Once()

	got, err := checkoutService.ListOrders(ctx, 1)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "b2f1", got[0].Number, "订单应按创建时间倒序")
	mockOrderRepo.AssertExpectations(t)
}
