package repo

import (
	"errors"

	"gorm.io/gorm"

	"booknest/internal/domain"
)

type CategoryRepo struct{ db *gorm.DB }

func NewCategoryRepo(db *gorm.DB) *CategoryRepo { return &CategoryRepo{db: db} }

func (r *CategoryRepo) Create(c *domain.Category) error { return r.db.Create(c).Error }

func (r *CategoryRepo) FindByID(id uint) (*domain.Category, error) {
	var c domain.Category
	err := r.db.First(&c, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &c, err
}

func (r *CategoryRepo) FindAll() ([]domain.Category, error) {
	var cats []domain.Category
	err := r.db.Order("id").Find(&cats).Error
	return cats, err
}

func (r *CategoryRepo) ExistsByName(name string) (bool, error) {
	var n int64
	err := r.db.Model(&domain.Category{}).Where("LOWER(name) = LOWER(?)", name).Count(&n).Error
	return n > 0, err
}

func (r *CategoryRepo) Update(c *domain.Category) error { return r.db.Save(c).Error }

func (r *CategoryRepo) Delete(id uint) error {
	return r.db.Delete(&domain.Category{}, id).Error
}

func (r *CategoryRepo) CountBooks(id uint) (int64, error) {
	var n int64
	err := r.db.Model(&domain.Book{}).Where("category_id = ?", id).Count(&n).Error
	return n, err
}
