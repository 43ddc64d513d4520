package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"booknest/internal/apperr"
	"booknest/internal/domain"
)

func TestPlaceOrderWithoutCart(t *testing.T) {
	e := newEnv(t)
	u := e.signup(t, "a@b.com")

	_, err := e.orderSvc.Place(u.ID)
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	e := newEnv(t)
	u := e.signup(t, "a@b.com")
	b := e.addBook(t, "One", 10)

	_, err := e.cartSvc.Add(u.ID, b.ID)
	require.NoError(t, err)
	_, err = e.cartSvc.Remove(u.ID, b.ID)
	require.NoError(t, err)

	_, err = e.orderSvc.Place(u.ID)
	require.Error(t, err)
	assert.Equal(t, apperr.KindInvalidState, apperr.KindOf(err))

	// 车保持原样，没有订单产生
	cart, err := e.cartSvc.Get(u.ID)
	require.NoError(t, err)
	assert.Empty(t, cart.Books)

	orders, err := e.orderSvc.ByUser(u.ID)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestPlaceOrderSnapshotsCartAndClearsIt(t *testing.T) {
	e := newEnv(t)
	u := e.signup(t, "a@b.com")
	b1 := e.addBook(t, "One", 9.99)
	b2 := e.addBook(t, "Two", 5.01)

	_, err := e.cartSvc.Add(u.ID, b1.ID)
	require.NoError(t, err)
	_, err = e.cartSvc.Add(u.ID, b2.ID)
	require.NoError(t, err)

	order, err := e.orderSvc.Place(u.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderPending, order.Status)
	assert.InDelta(t, 15.0, order.TotalAmount, 1e-9)
	assert.Len(t, order.Books, 2)

	cart, err := e.cartSvc.Get(u.ID)
	require.NoError(t, err)
	assert.Empty(t, cart.Books)
	assert.Zero(t, cart.TotalPrice)

	// 下单后调价不回溯订单金额
	b1.Price = 100
	require.NoError(t, e.books.Update(b1))
	got, err := e.orderSvc.ByID(order.ID, domain.Identity{UserID: u.ID, Role: domain.RoleUser})
	require.NoError(t, err)
	assert.InDelta(t, 15.0, got.TotalAmount, 1e-9)
}

func TestOrderByIDOwnerOrAdminOnly(t *testing.T) {
	e := newEnv(t)
	owner := e.signup(t, "owner@b.com")
	stranger := e.signup(t, "other@b.com")
	b := e.addBook(t, "One", 10)

	_, err := e.cartSvc.Add(owner.ID, b.ID)
	require.NoError(t, err)
	order, err := e.orderSvc.Place(owner.ID)
	require.NoError(t, err)

	_, err = e.orderSvc.ByID(order.ID, domain.Identity{UserID: stranger.ID, Role: domain.RoleUser})
	require.Error(t, err)
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))

	got, err := e.orderSvc.ByID(order.ID, domain.Identity{UserID: stranger.ID, Role: domain.RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)
}
