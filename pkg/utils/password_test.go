package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidPassword(t *testing.T) {
	cases := []struct {
		name string
		pw   string
		want bool
	}{
		{"ok minimal", "abc12#", true},
		{"ok with each class", "a1#bcde", true},
		{"too short", "a1#b", false},
		{"too long", "a1#aaaaaaaaaaaaaaaaaaaa", false},
		{"no digit", "abcde#", false},
		{"no lowercase", "ABC12#", false},
		{"no special", "abc123", false},
		{"empty", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ValidPassword(tc.pw))
		})
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	h := HashPassword("abc12#")
	assert.NotEmpty(t, h)
	assert.NotEqual(t, "abc12#", h)
	assert.True(t, CheckPassword("abc12#", h))
	assert.False(t, CheckPassword("wrong1#", h))
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "a@b.com", NormalizeEmail("  A@B.Com "))
	assert.Equal(t, "", NormalizeEmail("   "))
}
