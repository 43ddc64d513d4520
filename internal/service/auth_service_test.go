package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"booknest/internal/apperr"
	"booknest/internal/core/auth"
	"booknest/internal/domain"
)

func newAuthSvc(e *env) *AuthService {
	jwter := &auth.JWTer{Secret: []byte("test-secret"), Issuer: "booknest-test", TTL: time.Minute}
	return NewAuthService(e.users, jwter, zap.NewNop())
}

func TestSignInIssuesParsableToken(t *testing.T) {
	e := newEnv(t)
	u := e.signup(t, "a@b.com")
	svc := newAuthSvc(e)

	tok, err := svc.SignIn("A@B.Com", "abc12#")
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	id, err := svc.jwter.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, u.ID, id.UserID)
	assert.Equal(t, "a@b.com", id.Email)
	assert.Equal(t, domain.RoleUser, id.Role)
}

func TestSignInWrongPassword(t *testing.T) {
	e := newEnv(t)
	e.signup(t, "a@b.com")
	svc := newAuthSvc(e)

	_, err := svc.SignIn("a@b.com", "wrong1#")
	require.Error(t, err)
	assert.Equal(t, apperr.KindUnauthenticated, apperr.KindOf(err))
}

func TestSignInUnknownEmailSameKind(t *testing.T) {
	e := newEnv(t)
	svc := newAuthSvc(e)

	// 查无此人与密码错误不可区分，避免枚举账号
	_, err := svc.SignIn("ghost@b.com", "abc12#")
	require.Error(t, err)
	assert.Equal(t, apperr.KindUnauthenticated, apperr.KindOf(err))
	assert.EqualError(t, err, "invalid credentials")
}
