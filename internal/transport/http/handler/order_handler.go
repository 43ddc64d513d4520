package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"booknest/internal/service"
	"booknest/internal/transport/http/middleware"
	"booknest/internal/transport/http/response"
)

type OrderHandler struct {
	orders *service.OrderService
	log    *zap.Logger
}

func NewOrderHandler(orders *service.OrderService, log *zap.Logger) *OrderHandler {
	return &OrderHandler{orders: orders, log: log}
}

// Place POST /orders：当前用户的购物车转为订单
func (h *OrderHandler) Place(c *gin.Context) {
	id, _ := middleware.IdentityFrom(c)
	order, err := h.orders.Place(id.UserID)
	if err != nil {
		response.Err(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) Mine(c *gin.Context) {
	id, _ := middleware.IdentityFrom(c)
	orders, err := h.orders.ByUser(id.UserID)
	if err != nil {
		response.Err(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) Get(c *gin.Context) {
	caller, _ := middleware.IdentityFrom(c)
	orderID, err := uintParam(c, "id")
	if err != nil {
		response.Err(c, h.log, err)
		return
	}
	order, err := h.orders.ByID(orderID, caller)
	if err != nil {
		response.Err(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// All 管理端：全量订单
func (h *OrderHandler) All(c *gin.Context) {
	orders, err := h.orders.All()
	if err != nil {
		response.Err(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}
