package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"booknest/internal/service"
	"booknest/internal/transport/http/response"
)

type AuthHandler struct {
	auth  *service.AuthService
	users *service.UserService
	log   *zap.Logger
}

func NewAuthHandler(auth *service.AuthService, users *service.UserService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, users: users, log: log}
}

type signinReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SignIn POST /users/signin → 200 {message, token}
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req signinReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Err(c, h.log, response.BindError(err))
		return
	}
	token, err := h.auth.SignIn(req.Email, req.Password)
	if err != nil {
		response.Err(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Successful login!", "token": token})
}

type signupReq struct {
	FirstName string `json:"firstName" binding:"required,max=20"`
	LastName  string `json:"lastName" binding:"required,max=30"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required"`
	Role      string `json:"role" binding:"omitempty,oneof=user admin"`
	DOB       string `json:"dob" binding:"omitempty"`
}

// SignUp POST /users/signup → 201 profile
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req signupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Err(c, h.log, response.BindError(err))
		return
	}
	dob, err := parseDOB(req.DOB)
	if err != nil {
		response.Err(c, h.log, err)
		return
	}
	u, err := h.users.SignUp(service.SignupInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		Role:      req.Role,
		DOB:       dob,
	})
	if err != nil {
		response.Err(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, u)
}
