package domain

import "time"

const (
	TxPending = "PENDING"
	TxSuccess = "SUCCESS"
	TxFailed  = "FAILED"
)

// Transaction 支付流水，与订单一对一；不调用真实网关，仅落库
type Transaction struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	PaymentID       string    `gorm:"column:payment_id;uniqueIndex;size:128;not null" json:"paymentId"`
	PaymentMethod   string    `gorm:"column:payment_method;size:50" json:"paymentMethod"`
	Status          string    `gorm:"size:30;not null" json:"status"`
	Amount          float64   `gorm:"not null" json:"amount"`
	OrderID         uint      `gorm:"uniqueIndex;not null" json:"orderId"`
	ResponseData    string    `gorm:"column:response_data;type:text" json:"responseData,omitempty"`
	TransactionDate time.Time `gorm:"column:transaction_date;autoCreateTime" json:"transactionDate"`
}

func (Transaction) TableName() string { return "transactions" }

type TransactionRepository interface {
	Create(t *Transaction) error
	FindByOrderID(orderID uint) (*Transaction, error)
	// FindByUserID 经订单归属取某用户的全部流水
	FindByUserID(userID uint) ([]Transaction, error)
}
