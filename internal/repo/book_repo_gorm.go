package repo

import (
	"errors"

	"gorm.io/gorm"

	"booknest/internal/domain"
)

type BookRepo struct{ db *gorm.DB }

func NewBookRepo(db *gorm.DB) *BookRepo { return &BookRepo{db: db} }

func (r *BookRepo) Create(b *domain.Book) error { return r.db.Create(b).Error }

func (r *BookRepo) FindByID(id uint) (*domain.Book, error) {
	var b domain.Book
	err := r.db.First(&b, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &b, err
}

func (r *BookRepo) FindAll() ([]domain.Book, error) {
	var books []domain.Book
	err := r.db.Order("id").Find(&books).Error
	return books, err
}

func (r *BookRepo) FindByCategoryID(categoryID uint) ([]domain.Book, error) {
	var books []domain.Book
	err := r.db.Where("category_id = ?", categoryID).Order("id").Find(&books).Error
	return books, err
}

func (r *BookRepo) Update(b *domain.Book) error { return r.db.Save(b).Error }

// DeleteCascade 删书的显式级联：评论删除、从各购物车摘除并重算小计。
// 已下单的订单保留快照关联，不回溯修改
func (r *BookRepo) DeleteCascade(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("book_id = ?", id).Delete(&domain.Review{}).Error; err != nil {
			return err
		}

		var cartIDs []uint
		if err := tx.Table("cart_books").Where("book_id = ?", id).Pluck("cart_id", &cartIDs).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM cart_books WHERE book_id = ?", id).Error; err != nil {
			return err
		}
		for _, cid := range cartIDs {
			var total float64
			if err := tx.Raw(
				"SELECT COALESCE(SUM(b.price), 0) FROM cart_books cb JOIN books b ON b.id = cb.book_id WHERE cb.cart_id = ?",
				cid,
			).Scan(&total).Error; err != nil {
				return err
			}
			if err := tx.Model(&domain.Cart{}).Where("id = ?", cid).Update("total_price", total).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&domain.Book{}, id).Error
	})
}
