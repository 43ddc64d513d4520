package domain

import "time"

type Category struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"uniqueIndex;size:100;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"-"`
}

func (Category) TableName() string { return "categories" }

type CategoryRepository interface {
	Create(c *Category) error
	FindByID(id uint) (*Category, error)
	FindAll() ([]Category, error)
	ExistsByName(name string) (bool, error) // 不区分大小写
	Update(c *Category) error
	Delete(id uint) error
	CountBooks(id uint) (int64, error)
}
