package service

import (
	"go.uber.org/zap"

	"booknest/internal/apperr"
	"booknest/internal/core/auth"
	"booknest/internal/domain"
	"booknest/pkg/utils"
)

type AuthService struct {
	users domain.UserRepository
	jwter *auth.JWTer
	log   *zap.Logger
}

func NewAuthService(users domain.UserRepository, jwter *auth.JWTer, log *zap.Logger) *AuthService {
	return &AuthService{users: users, jwter: jwter, log: log}
}

// Authenticate 校验邮箱+密码，返回调用者身份。
// 查无此人和密码不符不区分提示，避免枚举账号
func (s *AuthService) Authenticate(email, password string) (domain.Identity, error) {
	email = utils.NormalizeEmail(email)
	u, err := s.users.FindByEmail(email)
	if err != nil {
		return domain.Identity{}, apperr.Internal("find user failed", err)
	}
	if u == nil || !utils.CheckPassword(password, u.PasswordHash) {
		s.log.Warn("authentication failed", zap.String("email", email))
		return domain.Identity{}, apperr.Unauthenticated("invalid credentials")
	}
	return domain.Identity{UserID: u.ID, Email: u.Email, Role: u.Role}, nil
}

// SignIn 认证成功后签发 token
func (s *AuthService) SignIn(email, password string) (string, error) {
	id, err := s.Authenticate(email, password)
	if err != nil {
		return "", err
	}
	tok, err := s.jwter.Issue(id)
	if err != nil {
		return "", apperr.Internal("issue token failed", err)
	}
	return tok, nil
}
