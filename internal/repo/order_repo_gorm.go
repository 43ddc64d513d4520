package repo

import (
	"errors"

	"gorm.io/gorm"

	"booknest/internal/domain"
)

type OrderRepo struct{ db *gorm.DB }

func NewOrderRepo(db *gorm.DB) *OrderRepo { return &OrderRepo{db: db} }

// Place 建单 + 清车。两次写必须原子，否则崩溃窗口里会出现
// 已下单但购物车未清（或反过来）的不一致
func (r *OrderRepo) Place(o *domain.Order, cart *domain.Cart) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Books.*").Create(o).Error; err != nil {
			return err
		}
		if err := tx.Model(cart).Association("Books").Clear(); err != nil {
			return err
		}
		return tx.Model(&domain.Cart{}).Where("id = ?", cart.ID).Update("total_price", 0).Error
	})
}

func (r *OrderRepo) FindByID(id uint) (*domain.Order, error) {
	var o domain.Order
	err := r.db.Preload("Books").First(&o, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &o, err
}

func (r *OrderRepo) FindByUserID(userID uint) ([]domain.Order, error) {
	var orders []domain.Order
	err := r.db.Preload("Books").Where("user_id = ?", userID).Order("id").Find(&orders).Error
	return orders, err
}

func (r *OrderRepo) FindAll() ([]domain.Order, error) {
	var orders []domain.Order
	err := r.db.Preload("Books").Order("id").Find(&orders).Error
	return orders, err
}
