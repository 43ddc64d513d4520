package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"booknest/internal/apperr"
)

func TestReviewRatingBounds(t *testing.T) {
	e := newEnv(t)
	u := e.signup(t, "a@b.com")
	b := e.addBook(t, "One", 10)

	for _, bad := range []int{0, 6, -1} {
		_, err := e.reviewSvc.Add(u.ID, b.ID, "meh", bad)
		require.Error(t, err, "rating %d", bad)
		assert.Equal(t, apperr.KindInvalidInput, apperr.KindOf(err))
	}
	for _, ok := range []int{1, 5} {
		r, err := e.reviewSvc.Add(u.ID, b.ID, "fine", ok)
		require.NoError(t, err)
		assert.Equal(t, ok, r.Rating)
	}

	list, err := e.reviewSvc.ByBook(b.ID)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestReviewUnknownBookOrUser(t *testing.T) {
	e := newEnv(t)
	u := e.signup(t, "a@b.com")
	b := e.addBook(t, "One", 10)

	_, err := e.reviewSvc.Add(u.ID, 404, "x", 3)
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	_, err = e.reviewSvc.Add(404, b.ID, "x", 3)
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	_, err = e.reviewSvc.ByBook(404)
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}
