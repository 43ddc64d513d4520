package domain

import "time"

type Book struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Author      string    `gorm:"size:150" json:"author"`
	Description string    `gorm:"type:text" json:"description"`
	Price       float64   `gorm:"not null" json:"price"`
	ImagePath   string    `gorm:"size:500" json:"imagePath,omitempty"`
	FilePath    string    `gorm:"size:500" json:"filePath,omitempty"`
	Approved    bool      `json:"approved"`
	Available   bool      `json:"available"`
	CategoryID  *uint     `json:"categoryId,omitempty"`
	SellerID    *uint     `json:"sellerId,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"-"`
}

func (Book) TableName() string { return "books" }

type BookRepository interface {
	Create(b *Book) error
	FindByID(id uint) (*Book, error)
	FindAll() ([]Book, error)
	FindByCategoryID(categoryID uint) ([]Book, error)
	Update(b *Book) error
	// DeleteCascade 删书：先删评论、把书从所有购物车摘除并重算小计，再删书本身
	DeleteCascade(id uint) error
}
