package service

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/pathmanaban666/primecart/internal/domain"
	"github.com/pathmanaban666/primecart/internal/repository"
)

// CartService 负责购物车聚合的业务逻辑。
// 每个用户一个购物车，第一次加购时惰性创建；同一商品重复加购累加数量。
type CartService struct {
	cartRepo repository.CartRepository
}

// NewCartService 创建 CartService 实例。
func NewCartService(cartRepo repository.CartRepository) *CartService {
	if cartRepo == nil {
		panic("CartRepository cannot be nil for CartService")
	}
	return &CartService{cartRepo: cartRepo}
}

// AddItem 向用户购物车加入商品。
// quantity 小于 1 时收敛为 1（原系统不校验数量，这里选择收敛而不是报错）。
// 写入走存储层的原子 upsert：商品已在购物车时数量在数据库内累加，
// 因此 "加 a 再加 b" 与 "一次加 a+b" 结果一致，并发加购也不会丢失更新。
func (s *CartService) AddItem(ctx context.Context, userID, productID uint, quantity int) error {
	logCtx := logrus.WithFields(logrus.Fields{"user_id": userID, "product_id": productID})

	if quantity < 1 {
		logCtx.WithField("quantity", quantity).Warn("AddItem: non-positive quantity clamped to 1")
		quantity = 1
	}

	// 1. 取出或惰性创建购物车
	cart, err := s.cartRepo.GetOrCreate(ctx, userID)
	if err != nil {
		logCtx.WithError(err).Error("AddItem: failed to get or create cart")
		return ErrInternalServer
	}

	// 2. 原子 upsert 条目
	if err := s.cartRepo.UpsertItem(ctx, cart.ID, productID, quantity); err != nil {
		logCtx.WithError(err).Error("AddItem: failed to upsert cart item")
		return ErrInternalServer
	}

	logCtx.WithField("quantity", quantity).Info("Item added to cart")
	return nil
}

// ListItems 返回用户购物车的条目，商品引用已解析为完整记录。
// 购物车尚未创建时返回空列表而不是错误。
func (s *CartService) ListItems(ctx context.Context, userID uint) ([]domain.CartItem, error) {
	cart, err := s.cartRepo.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			return []domain.CartItem{}, nil
		}
		logrus.WithError(err).WithField("user_id", userID).Error("ListItems: repository error")
		return nil, ErrInternalServer
	}
	return cart.Items, nil
}

// RemoveItem 从购物车移除指定商品。
// 购物车不存在时返回 ErrCartNotFound；
// 商品本来就不在购物车中时是成功的 no-op。
func (s *CartService) RemoveItem(ctx context.Context, userID, productID uint) error {
	logCtx := logrus.WithFields(logrus.Fields{"user_id": userID, "product_id": productID})

	cart, err := s.cartRepo.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			logCtx.Warn("RemoveItem: cart not found")
			return ErrCartNotFound
		}
		logCtx.WithError(err).Error("RemoveItem: repository error")
		return ErrInternalServer
	}

	if err := s.cartRepo.RemoveItem(ctx, cart.ID, productID); err != nil {
		logCtx.WithError(err).Error("RemoveItem: failed to remove cart item")
		return ErrInternalServer
	}

	logCtx.Info("Item removed from cart")
	return nil
}

// Clear 清空购物车条目。购物车不存在时返回 ErrCartNotFound；
// 清空后购物车本身保留，后续 ListItems 返回空列表。
func (s *CartService) Clear(ctx context.Context, userID uint) error {
	logCtx := logrus.WithField("user_id", userID)

	cart, err := s.cartRepo.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			logCtx.Warn("Clear: cart not found")
			return ErrCartNotFound
		}
		logCtx.WithError(err).Error("Clear: repository error")
		return ErrInternalServer
	}

	if err := s.cartRepo.ClearItems(ctx, cart.ID); err != nil {
		logCtx.WithError(err).Error("Clear: failed to clear cart items")
		return ErrInternalServer
	}

	logCtx.Info("Cart cleared")
	return nil
}
