package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"booknest/internal/apperr"
	"booknest/internal/domain"
)

type Claims struct {
	UID  uint   `json:"uid"`
	Role string `json:"role"` // "user" or "admin"
	jwt.RegisteredClaims
}

type JWTer struct {
	Secret []byte
	Issuer string
	TTL    time.Duration
}

// Issue 签发无状态 token：sub=email，携带 uid/role，绝对过期时间
func (j *JWTer) Issue(id domain.Identity) (string, error) {
	now := time.Now()
	claims := Claims{
		UID:  id.UserID,
		Role: id.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.Email,
			Issuer:    j.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.TTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.Secret)
}

// Parse 校验签名与有效期。过期与其他非法情况区分返回，
// 上层统一按 401 处理但日志口径不同
func (j *JWTer) Parse(tokenStr string) (domain.Identity, error) {
	t, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected alg")
		}
		return j.Secret, nil
	}, jwt.WithIssuer(j.Issuer))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return domain.Identity{}, apperr.TokenExpired(err)
		}
		return domain.Identity{}, apperr.TokenInvalid(err)
	}
	c, ok := t.Claims.(*Claims)
	if !ok || !t.Valid {
		return domain.Identity{}, apperr.TokenInvalid(errors.New("invalid claims"))
	}
	return domain.Identity{UserID: c.UID, Email: c.Subject, Role: c.Role}, nil
}
