package domain

import "time"

// Cart 每个用户至多一个；books 无数量概念，在车即为一本
type Cart struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"uniqueIndex;not null" json:"userId"`
	Books      []Book    `gorm:"many2many:cart_books" json:"books"`
	TotalPrice float64   `gorm:"column:total_price" json:"totalPrice"`
	CreatedAt  time.Time `json:"-"`
	UpdatedAt  time.Time `json:"-"`
}

func (Cart) TableName() string { return "carts" }

type CartRepository interface {
	// FindByUserID 预加载车内书目；无车返回 (nil, nil)
	FindByUserID(userID uint) (*Cart, error)
	Create(c *Cart) error
	// SetBooks 覆盖车内书目并写入新小计（单事务）
	SetBooks(c *Cart, books []Book, total float64) error
}
