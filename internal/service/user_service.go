package service

import (
	"time"

	"go.uber.org/zap"

	"booknest/internal/apperr"
	"booknest/internal/core/database"
	"booknest/internal/domain"
	"booknest/pkg/utils"
)

const passwordPolicyMsg = "password must be 5-20 chars with at least one digit, one lowercase letter and one of #@$*"

type SignupInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Role      string
	DOB       *time.Time
}

type UpdateUserInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string // 为空则不改密码
	DOB       *time.Time
}

type UserService struct {
	users domain.UserRepository
	log   *zap.Logger
}

func NewUserService(users domain.UserRepository, log *zap.Logger) *UserService {
	return &UserService{users: users, log: log}
}

func (s *UserService) SignUp(in SignupInput) (*domain.User, error) {
	email := utils.NormalizeEmail(in.Email)
	if !utils.ValidPassword(in.Password) {
		return nil, apperr.Validation(map[string][]string{"password": {passwordPolicyMsg}})
	}
	if in.DOB != nil && !in.DOB.Before(time.Now()) {
		return nil, apperr.Validation(map[string][]string{"dob": {"dob must be in the past"}})
	}
	role := in.Role
	if role == "" {
		role = domain.RoleUser
	}
	if role != domain.RoleUser && role != domain.RoleAdmin {
		return nil, apperr.Validation(map[string][]string{"role": {"role must be user or admin"}})
	}

	exists, err := s.users.ExistsByEmail(email)
	if err != nil {
		return nil, apperr.Internal("check email failed", err)
	}
	if exists {
		return nil, apperr.Conflict("email already registered: " + email)
	}

	u := &domain.User{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        email,
		PasswordHash: utils.HashPassword(in.Password),
		DOB:          in.DOB,
		Role:         role,
	}
	if err := s.users.Create(u); err != nil {
		// 并发注册兜底：唯一索引冲突同样按 Conflict 返回
		if database.IsDupKey(err) {
			return nil, apperr.Conflict("email already registered: " + email)
		}
		return nil, apperr.Internal("create user failed", err)
	}
	s.log.Info("user signed up", zap.Uint("user_id", u.ID), zap.String("email", u.Email))
	return u, nil
}

func (s *UserService) GetByID(id uint) (*domain.User, error) {
	u, err := s.users.FindByID(id)
	if err != nil {
		return nil, apperr.Internal("find user failed", err)
	}
	if u == nil {
		return nil, apperr.NotFound("user not found")
	}
	return u, nil
}

func (s *UserService) List() ([]domain.User, error) {
	users, err := s.users.List()
	if err != nil {
		return nil, apperr.Internal("list users failed", err)
	}
	return users, nil
}

func (s *UserService) Update(id uint, in UpdateUserInput) (*domain.User, error) {
	u, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	email := utils.NormalizeEmail(in.Email)
	if email != "" && email != u.Email {
		exists, err := s.users.ExistsByEmail(email)
		if err != nil {
			return nil, apperr.Internal("check email failed", err)
		}
		if exists {
			return nil, apperr.Conflict("email already in use by another user")
		}
		u.Email = email
	}
	if in.FirstName != "" {
		u.FirstName = in.FirstName
	}
	if in.LastName != "" {
		u.LastName = in.LastName
	}
	if in.DOB != nil {
		u.DOB = in.DOB
	}
	if in.Password != "" {
		if !utils.ValidPassword(in.Password) {
			return nil, apperr.Validation(map[string][]string{"password": {passwordPolicyMsg}})
		}
		u.PasswordHash = utils.HashPassword(in.Password)
	}
	if err := s.users.Update(u); err != nil {
		if database.IsDupKey(err) {
			return nil, apperr.Conflict("email already in use by another user")
		}
		return nil, apperr.Internal("update user failed", err)
	}
	return u, nil
}

func (s *UserService) ChangePassword(id uint, newPassword string) error {
	u, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if !utils.ValidPassword(newPassword) {
		return apperr.Validation(map[string][]string{"password": {passwordPolicyMsg}})
	}
	u.PasswordHash = utils.HashPassword(newPassword)
	if err := s.users.Update(u); err != nil {
		return apperr.Internal("update password failed", err)
	}
	return nil
}

func (s *UserService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	if err := s.users.DeleteCascade(id); err != nil {
		return apperr.Internal("delete user failed", err)
	}
	s.log.Info("user deleted", zap.Uint("user_id", id))
	return nil
}
