package utils

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
)

func HashPassword(pw string) string {
	b, _ := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	return string(b)
}

func CheckPassword(pw, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(pw)) == nil
}

// ValidPassword 5~20 位，至少一个数字、一个小写字母和一个 #@$* 特殊符号。
// Go 的 regexp 不支持前瞻，逐项检查
func ValidPassword(pw string) bool {
	if len(pw) < 5 || len(pw) > 20 {
		return false
	}
	var digit, lower, special bool
	for _, r := range pw {
		switch {
		case r >= '0' && r <= '9':
			digit = true
		case r >= 'a' && r <= 'z':
			lower = true
		case strings.ContainsRune("#@$*", r):
			special = true
		}
	}
	return digit && lower && special
}

// NormalizeEmail 邮箱统一小写去空白，作为唯一比较键
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
