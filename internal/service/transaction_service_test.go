package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"booknest/internal/apperr"
	"booknest/internal/domain"
)

func (e *env) placeOrder(t *testing.T, userID, bookID uint) *domain.Order {
	t.Helper()
	_, err := e.cartSvc.Add(userID, bookID)
	require.NoError(t, err)
	order, err := e.orderSvc.Place(userID)
	require.NoError(t, err)
	return order
}

func TestTransactionCreateValidations(t *testing.T) {
	e := newEnv(t)
	u := e.signup(t, "a@b.com")
	other := e.signup(t, "c@d.com")
	b := e.addBook(t, "One", 9.99)
	order := e.placeOrder(t, u.ID, b.ID)

	_, err := e.txSvc.Create(TransactionInput{PaymentID: "p", Amount: 9.99})
	require.Error(t, err)
	assert.Equal(t, apperr.KindInvalidInput, apperr.KindOf(err))

	_, err = e.txSvc.Create(TransactionInput{PaymentID: "p", Amount: 9.99, OrderID: 404})
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	_, err = e.txSvc.Create(TransactionInput{PaymentID: "p", Amount: 1.23, OrderID: order.ID})
	require.Error(t, err)
	assert.Equal(t, apperr.KindInvalidInput, apperr.KindOf(err))

	_, err = e.txSvc.Create(TransactionInput{PaymentID: "p", Amount: 9.99, OrderID: order.ID, UserID: &other.ID})
	require.Error(t, err)
	assert.Equal(t, apperr.KindInvalidInput, apperr.KindOf(err))
}

func TestTransactionCreateAndOneToOne(t *testing.T) {
	e := newEnv(t)
	u := e.signup(t, "a@b.com")
	b := e.addBook(t, "One", 9.99)
	order := e.placeOrder(t, u.ID, b.ID)

	tx, err := e.txSvc.Create(TransactionInput{
		PaymentID: "pay-1", PaymentMethod: "card", Amount: 9.99, OrderID: order.ID, UserID: &u.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.TxPending, tx.Status)
	assert.Equal(t, order.ID, tx.OrderID)

	// 订单与流水一对一
	_, err = e.txSvc.Create(TransactionInput{
		PaymentID: "pay-2", PaymentMethod: "card", Amount: 9.99, OrderID: order.ID,
	})
	require.Error(t, err)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
}

func TestTransactionByUser(t *testing.T) {
	e := newEnv(t)
	u1 := e.signup(t, "a@b.com")
	u2 := e.signup(t, "c@d.com")
	b := e.addBook(t, "One", 10)

	o1 := e.placeOrder(t, u1.ID, b.ID)
	o2 := e.placeOrder(t, u2.ID, b.ID)

	_, err := e.txSvc.Create(TransactionInput{PaymentID: "p1", Amount: 10, OrderID: o1.ID})
	require.NoError(t, err)
	_, err = e.txSvc.Create(TransactionInput{PaymentID: "p2", Amount: 10, OrderID: o2.ID})
	require.NoError(t, err)

	got, err := e.txSvc.ByUser(u1.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "p1", got[0].PaymentID)
}
