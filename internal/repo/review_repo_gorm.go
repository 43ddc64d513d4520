package repo

import (
	"gorm.io/gorm"

	"booknest/internal/domain"
)

type ReviewRepo struct{ db *gorm.DB }

func NewReviewRepo(db *gorm.DB) *ReviewRepo { return &ReviewRepo{db: db} }

func (r *ReviewRepo) Create(rv *domain.Review) error { return r.db.Create(rv).Error }

func (r *ReviewRepo) FindByBookID(bookID uint) ([]domain.Review, error) {
	var reviews []domain.Review
	err := r.db.Where("book_id = ?", bookID).Order("id").Find(&reviews).Error
	return reviews, err
}
