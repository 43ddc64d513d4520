package domain

import "time"

// 订单状态。PENDING 之后的流转暂未实现，仅作为扩展点声明
const (
	OrderPending   = "PENDING"
	OrderPaid      = "PAID"
	OrderShipped   = "SHIPPED"
	OrderCancelled = "CANCELLED"
)

// Order 下单时的不可变快照；创建后不再修改
type Order struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"index;not null" json:"userId"`
	Books       []Book    `gorm:"many2many:order_books" json:"books"`
	TotalAmount float64   `gorm:"column:total_amount;not null" json:"totalAmount"`
	Status      string    `gorm:"size:30;not null" json:"status"`
	OrderDate   time.Time `gorm:"column:order_date;autoCreateTime" json:"orderDate"`
}

func (Order) TableName() string { return "orders" }

type OrderRepository interface {
	// Place 建单并清空购物车，两次写必须在同一事务内完成
	Place(o *Order, cart *Cart) error
	FindByID(id uint) (*Order, error)
	FindByUserID(userID uint) ([]Order, error)
	FindAll() ([]Order, error)
}
