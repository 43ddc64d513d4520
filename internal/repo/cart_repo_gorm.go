package repo

import (
	"errors"

	"gorm.io/gorm"

	"booknest/internal/domain"
)

type CartRepo struct{ db *gorm.DB }

func NewCartRepo(db *gorm.DB) *CartRepo { return &CartRepo{db: db} }

func (r *CartRepo) FindByUserID(userID uint) (*domain.Cart, error) {
	var c domain.Cart
	err := r.db.Preload("Books").First(&c, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &c, err
}

func (r *CartRepo) Create(c *domain.Cart) error { return r.db.Create(c).Error }

// SetBooks 覆盖车内书目并落新小计；两次写同一事务
func (r *CartRepo) SetBooks(c *domain.Cart, books []domain.Book, total float64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(c).Association("Books").Replace(books); err != nil {
			return err
		}
		return tx.Model(&domain.Cart{}).Where("id = ?", c.ID).Update("total_price", total).Error
	})
}
