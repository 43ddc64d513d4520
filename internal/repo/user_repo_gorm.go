package repo

import (
	"errors"

	"gorm.io/gorm"

	"booknest/internal/domain"
)

type UserRepo struct{ db *gorm.DB }

func NewUserRepo(db *gorm.DB) *UserRepo { return &UserRepo{db: db} }

func (r *UserRepo) Create(u *domain.User) error { return r.db.Create(u).Error }

func (r *UserRepo) FindByID(id uint) (*domain.User, error) {
	var u domain.User
	err := r.db.First(&u, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &u, err
}

func (r *UserRepo) FindByEmail(email string) (*domain.User, error) {
	var u domain.User
	err := r.db.First(&u, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &u, err
}

func (r *UserRepo) ExistsByEmail(email string) (bool, error) {
	var n int64
	err := r.db.Model(&domain.User{}).Where("email = ?", email).Count(&n).Error
	return n > 0, err
}

func (r *UserRepo) List() ([]domain.User, error) {
	var users []domain.User
	err := r.db.Order("id").Find(&users).Error
	return users, err
}

func (r *UserRepo) Update(u *domain.User) error { return r.db.Save(u).Error }

// DeleteCascade 显式级联：评论、购物车、订单（含流水与关联表）一并删除。
// 原先靠 ORM 注解隐式传播，这里改为可单测的事务函数
func (r *UserRepo) DeleteCascade(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&domain.Review{}).Error; err != nil {
			return err
		}

		var cart domain.Cart
		err := tx.First(&cart, "user_id = ?", id).Error
		if err == nil {
			if err := tx.Exec("DELETE FROM cart_books WHERE cart_id = ?", cart.ID).Error; err != nil {
				return err
			}
			if err := tx.Delete(&domain.Cart{}, cart.ID).Error; err != nil {
				return err
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		var orderIDs []uint
		if err := tx.Model(&domain.Order{}).Where("user_id = ?", id).Pluck("id", &orderIDs).Error; err != nil {
			return err
		}
		if len(orderIDs) > 0 {
			if err := tx.Where("order_id IN ?", orderIDs).Delete(&domain.Transaction{}).Error; err != nil {
				return err
			}
			if err := tx.Exec("DELETE FROM order_books WHERE order_id IN ?", orderIDs).Error; err != nil {
				return err
			}
			if err := tx.Delete(&domain.Order{}, orderIDs).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&domain.User{}, id).Error
	})
}
