package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"booknest/internal/service"
	"booknest/internal/transport/http/middleware"
	"booknest/internal/transport/http/response"
)

type UserHandler struct {
	users *service.UserService
	log   *zap.Logger
}

func NewUserHandler(users *service.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{users: users, log: log}
}

func (h *UserHandler) Me(c *gin.Context) {
	id, _ := middleware.IdentityFrom(c)
	u, err := h.users.GetByID(id.UserID)
	if err != nil {
		response.Err(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

type updateUserReq struct {
	FirstName string `json:"firstName" binding:"omitempty,max=20"`
	LastName  string `json:"lastName" binding:"omitempty,max=30"`
	Email     string `json:"email" binding:"omitempty,email"`
	Password  string `json:"password"`
	DOB       string `json:"dob"`
}

func (h *UserHandler) UpdateMe(c *gin.Context) {
	id, _ := middleware.IdentityFrom(c)
	var req updateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Err(c, h.log, response.BindError(err))
		return
	}
	dob, err := parseDOB(req.DOB)
	if err != nil {
		response.Err(c, h.log, err)
		return
	}
	u, err := h.users.Update(id.UserID, service.UpdateUserInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		DOB:       dob,
	})
	if err != nil {
		response.Err(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

type changePasswordReq struct {
	Password string `json:"password" binding:"required"`
}

func (h *UserHandler) ChangeMyPassword(c *gin.Context) {
	id, _ := middleware.IdentityFrom(c)
	var req changePasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Err(c, h.log, response.BindError(err))
		return
	}
	if err := h.users.ChangePassword(id.UserID, req.Password); err != nil {
		response.Err(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.Message{Message: "password updated"})
}

// ---- 管理端 ----

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.List()
	if err != nil {
		response.Err(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) Get(c *gin.Context) {
	id, err := uintParam(c, "id")
	if err != nil {
		response.Err(c, h.log, err)
		return
	}
	u, err := h.users.GetByID(id)
	if err != nil {
		response.Err(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, err := uintParam(c, "id")
	if err != nil {
		response.Err(c, h.log, err)
		return
	}
	if err := h.users.Delete(id); err != nil {
		response.Err(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.Message{Message: "user deleted"})
}
