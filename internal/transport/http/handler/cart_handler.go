package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"booknest/internal/service"
	"booknest/internal/transport/http/middleware"
	"booknest/internal/transport/http/response"
)

type CartHandler struct {
	carts *service.CartService
	log   *zap.Logger
}

func NewCartHandler(carts *service.CartService, log *zap.Logger) *CartHandler {
	return &CartHandler{carts: carts, log: log}
}

func (h *CartHandler) Get(c *gin.Context) {
	id, _ := middleware.IdentityFrom(c)
	cart, err := h.carts.Get(id.UserID)
	if err != nil {
		response.Err(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

type addToCartReq struct {
	BookID uint `json:"bookId" binding:"required"`
}

func (h *CartHandler) AddBook(c *gin.Context) {
	id, _ := middleware.IdentityFrom(c)
	var req addToCartReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Err(c, h.log, response.BindError(err))
		return
	}
	cart, err := h.carts.Add(id.UserID, req.BookID)
	if err != nil {
		response.Err(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

func (h *CartHandler) RemoveBook(c *gin.Context) {
	id, _ := middleware.IdentityFrom(c)
	bookID, err := uintParam(c, "bookId")
	if err != nil {
		response.Err(c, h.log, err)
		return
	}
	cart, err := h.carts.Remove(id.UserID, bookID)
	if err != nil {
		response.Err(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}
