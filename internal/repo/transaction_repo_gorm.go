package repo

import (
	"errors"

	"gorm.io/gorm"

	"booknest/internal/domain"
)

type TransactionRepo struct{ db *gorm.DB }

func NewTransactionRepo(db *gorm.DB) *TransactionRepo { return &TransactionRepo{db: db} }

func (r *TransactionRepo) Create(t *domain.Transaction) error { return r.db.Create(t).Error }

func (r *TransactionRepo) FindByOrderID(orderID uint) (*domain.Transaction, error) {
	var t domain.Transaction
	err := r.db.First(&t, "order_id = ?", orderID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &t, err
}

func (r *TransactionRepo) FindByUserID(userID uint) ([]domain.Transaction, error) {
	var txs []domain.Transaction
	err := r.db.
		Joins("JOIN orders ON orders.id = transactions.order_id").
		Where("orders.user_id = ?", userID).
		Order("transactions.id").
		Find(&txs).Error
	return txs, err
}
