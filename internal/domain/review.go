package domain

import "time"

type Review struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Comment    string    `gorm:"type:text" json:"comment"`
	Rating     int       `gorm:"not null" json:"rating"` // 1..5
	UserID     uint      `gorm:"index;not null" json:"userId"`
	BookID     uint      `gorm:"index;not null" json:"bookId"`
	ReviewDate time.Time `gorm:"column:review_date;autoCreateTime" json:"reviewDate"`
}

func (Review) TableName() string { return "reviews" }

type ReviewRepository interface {
	Create(r *Review) error
	FindByBookID(bookID uint) ([]Review, error)
}
