package service

import (
	"go.uber.org/zap"

	"booknest/internal/apperr"
	"booknest/internal/core/database"
	"booknest/internal/domain"
)

type TransactionInput struct {
	PaymentID     string
	PaymentMethod string
	Amount        float64
	OrderID       uint
	UserID        *uint // 可选；给了就必须和订单归属一致
	ResponseData  string
}

type TransactionService struct {
	transactions domain.TransactionRepository
	orders       domain.OrderRepository
	users        domain.UserRepository
	log          *zap.Logger
}

func NewTransactionService(transactions domain.TransactionRepository, orders domain.OrderRepository, users domain.UserRepository, log *zap.Logger) *TransactionService {
	return &TransactionService{transactions: transactions, orders: orders, users: users, log: log}
}

// Create 记录一笔支付流水。不调用外部网关，只做订单关联与金额校验
func (s *TransactionService) Create(in TransactionInput) (*domain.Transaction, error) {
	if in.OrderID == 0 {
		return nil, apperr.InvalidInput("orderId must be provided")
	}
	order, err := s.orders.FindByID(in.OrderID)
	if err != nil {
		return nil, apperr.Internal("find order failed", err)
	}
	if order == nil {
		return nil, apperr.NotFound("order not found")
	}
	if in.UserID != nil {
		u, err := s.users.FindByID(*in.UserID)
		if err != nil {
			return nil, apperr.Internal("find user failed", err)
		}
		if u == nil {
			return nil, apperr.NotFound("user not found")
		}
		if order.UserID != u.ID {
			return nil, apperr.InvalidInput("provided userId does not match order's user")
		}
	}
	if in.Amount != order.TotalAmount {
		return nil, apperr.InvalidInput("amount does not match order total")
	}

	existing, err := s.transactions.FindByOrderID(order.ID)
	if err != nil {
		return nil, apperr.Internal("find transaction failed", err)
	}
	if existing != nil {
		return nil, apperr.Conflict("order already has a transaction")
	}

	t := &domain.Transaction{
		PaymentID:     in.PaymentID,
		PaymentMethod: in.PaymentMethod,
		Status:        domain.TxPending,
		Amount:        in.Amount,
		OrderID:       order.ID,
		ResponseData:  in.ResponseData,
	}
	if err := s.transactions.Create(t); err != nil {
		if database.IsDupKey(err) {
			return nil, apperr.Conflict("duplicate payment id or order transaction")
		}
		return nil, apperr.Internal("create transaction failed", err)
	}
	s.log.Info("transaction created",
		zap.Uint("transaction_id", t.ID), zap.Uint("order_id", order.ID), zap.String("payment_id", t.PaymentID))
	return t, nil
}

func (s *TransactionService) ByUser(userID uint) ([]domain.Transaction, error) {
	u, err := s.users.FindByID(userID)
	if err != nil {
		return nil, apperr.Internal("find user failed", err)
	}
	if u == nil {
		return nil, apperr.NotFound("user not found")
	}
	txs, err := s.transactions.FindByUserID(userID)
	if err != nil {
		return nil, apperr.Internal("list transactions failed", err)
	}
	return txs, nil
}
