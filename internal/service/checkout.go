package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/pathmanaban666/primecart/internal/domain"
	"github.com/pathmanaban666/primecart/internal/repository"
	"github.com/pathmanaban666/primecart/internal/tasks"
)

// taskEnqueuer 是 *asynq.Client 的最小消费接口，便于在测试中替换。
type taskEnqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// CheckoutService 负责结算：把购物车固化为订单。
// 支付是模拟的，订单创建后直接进入 confirmed 状态；
// 确认邮件通过 asynq 任务异步发送，不阻塞结算请求。
type CheckoutService struct {
	cartRepo  repository.CartRepository
	orderRepo repository.OrderRepository
	userRepo  repository.UserRepository
	enqueuer  taskEnqueuer
}

// NewCheckoutService 创建 CheckoutService 实例。
func NewCheckoutService(
	cartRepo repository.CartRepository,
	orderRepo repository.OrderRepository,
	userRepo repository.UserRepository,
	enqueuer taskEnqueuer,
) *CheckoutService {
	if cartRepo == nil || orderRepo == nil || userRepo == nil {
		panic("repositories cannot be nil for CheckoutService")
	}
	return &CheckoutService{
		cartRepo:  cartRepo,
		orderRepo: orderRepo,
		userRepo:  userRepo,
		enqueuer:  enqueuer,
	}
}

// Checkout 把用户购物车转为订单。
// 购物车不存在或为空时返回 ErrEmptyCart。
// 订单条目固化下单时刻的商品名称和单价；订单写入和购物车清空在
// 存储层的同一个事务中完成。确认邮件入队失败只记日志，不影响订单结果。
func (s *CheckoutService) Checkout(ctx context.Context, userID uint) (*domain.Order, error) {
	logCtx := logrus.WithField("user_id", userID)

	// 1. 加载购物车 (商品已 populate)
	cart, err := s.cartRepo.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			return nil, ErrEmptyCart
		}
		logCtx.WithError(err).Error("Checkout: failed to load cart")
		return nil, ErrInternalServer
	}
	if len(cart.Items) == 0 {
		return nil, ErrEmptyCart
	}

	// 2. 构造订单：固化名称和单价，decimal 计算总额
	total := decimal.Zero
	orderItems := make([]domain.OrderItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		lineTotal := item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(lineTotal)
		orderItems = append(orderItems, domain.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Product.Name,
			UnitPrice: item.Product.Price,
			Quantity:  item.Quantity,
		})
	}
	order := &domain.Order{
		Number: uuid.NewString(),
		UserID: userID,
		Status: domain.OrderStatusConfirmed, // 模拟支付，直接确认
		Total:  total,
		Items:  orderItems,
	}

	// 3. 事务写入订单并清空购物车
	if err := s.orderRepo.CreateFromCart(ctx, order, cart.ID); err != nil {
		logCtx.WithError(err).Error("Checkout: failed to persist order")
		return nil, ErrInternalServer
	}
	logCtx = logCtx.WithFields(logrus.Fields{"order_id": order.ID, "order_number": order.Number})

	// 4. 异步确认邮件 (best-effort)
	s.enqueueConfirmation(ctx, order, logCtx)

	logCtx.Info("Checkout completed")
	return order, nil
}

// ListOrders 返回用户的订单列表，按创建时间倒序。
func (s *CheckoutService) ListOrders(ctx context.Context, userID uint) ([]domain.Order, error) {
	orders, err := s.orderRepo.FindByUser(ctx, userID)
	if err != nil {
		logrus.WithError(err).WithField("user_id", userID).Error("ListOrders: repository error")
		return nil, ErrInternalServer
	}
	return orders, nil
}

// enqueueConfirmation 查出收件邮箱并入队确认邮件任务。
// 任何失败只记日志：订单已经落库，不能因为邮件把结算报成失败。
func (s *CheckoutService) enqueueConfirmation(ctx context.Context, order *domain.Order, logCtx *logrus.Entry) {
	if s.enqueuer == nil {
		return
	}
	user, err := s.userRepo.FindByID(ctx, order.UserID)
	if err != nil {
		logCtx.WithError(err).Warn("Checkout: could not load user for confirmation email")
		return
	}
	task, err := tasks.NewOrderConfirmationTask(tasks.OrderConfirmationPayload{
		OrderID:     order.ID,
		OrderNumber: order.Number,
		Email:       user.Email,
		Total:       order.Total.StringFixed(2),
	})
	if err != nil {
		logCtx.WithError(err).Warn("Checkout: failed to build confirmation task")
		return
	}
	if _, err := s.enqueuer.EnqueueContext(ctx, task, asynq.Queue("default")); err != nil {
		logCtx.WithError(err).Warn("Checkout: failed to enqueue confirmation task")
	}
}
