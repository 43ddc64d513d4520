package service

import (
	"go.uber.org/zap"

	"booknest/internal/apperr"
	"booknest/internal/domain"
)

type OrderService struct {
	orders domain.OrderRepository
	carts  domain.CartRepository
	log    *zap.Logger
}

func NewOrderService(orders domain.OrderRepository, carts domain.CartRepository, log *zap.Logger) *OrderService {
	return &OrderService{orders: orders, carts: carts, log: log}
}

// Place 购物车 → 订单的状态迁移：
// 快照车内书目（引用拷贝），按下单时点书价计总，建单后清车。
// 建单与清车由仓储层放在同一事务里
func (s *OrderService) Place(userID uint) (*domain.Order, error) {
	cart, err := s.carts.FindByUserID(userID)
	if err != nil {
		return nil, apperr.Internal("load cart failed", err)
	}
	if cart == nil {
		return nil, apperr.NotFound("cart not found")
	}
	if len(cart.Books) == 0 {
		return nil, apperr.InvalidState("cart is empty")
	}

	order := &domain.Order{
		UserID:      userID,
		Books:       append([]domain.Book(nil), cart.Books...),
		TotalAmount: sumPrices(cart.Books),
		Status:      domain.OrderPending,
	}
	if err := s.orders.Place(order, cart); err != nil {
		return nil, apperr.Internal("place order failed", err)
	}
	s.log.Info("order placed",
		zap.Uint("order_id", order.ID),
		zap.Uint("user_id", userID),
		zap.Float64("total", order.TotalAmount),
	)
	return order, nil
}

func (s *OrderService) ByUser(userID uint) ([]domain.Order, error) {
	orders, err := s.orders.FindByUserID(userID)
	if err != nil {
		return nil, apperr.Internal("list orders failed", err)
	}
	return orders, nil
}

// ByID 只允许订单归属人或管理员查看
func (s *OrderService) ByID(orderID uint, caller domain.Identity) (*domain.Order, error) {
	order, err := s.orders.FindByID(orderID)
	if err != nil {
		return nil, apperr.Internal("find order failed", err)
	}
	if order == nil {
		return nil, apperr.NotFound("order not found")
	}
	if order.UserID != caller.UserID && !caller.IsAdmin() {
		return nil, apperr.Forbidden("not your order")
	}
	return order, nil
}

func (s *OrderService) All() ([]domain.Order, error) {
	orders, err := s.orders.FindAll()
	if err != nil {
		return nil, apperr.Internal("list all orders failed", err)
	}
	return orders, nil
}
