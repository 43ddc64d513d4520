package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"booknest/internal/service"
	"booknest/internal/transport/http/middleware"
	"booknest/internal/transport/http/response"
)

type TransactionHandler struct {
	txs *service.TransactionService
	log *zap.Logger
}

func NewTransactionHandler(txs *service.TransactionService, log *zap.Logger) *TransactionHandler {
	return &TransactionHandler{txs: txs, log: log}
}

type transactionReq struct {
	PaymentID     string  `json:"paymentId" binding:"required"`
	PaymentMethod string  `json:"paymentMethod" binding:"required"`
	Amount        float64 `json:"amount" binding:"gte=0"`
	OrderID       uint    `json:"orderId"`
	ResponseData  string  `json:"responseData"`
}

// Create POST /transactions：为当前用户的订单登记支付流水
func (h *TransactionHandler) Create(c *gin.Context) {
	caller, _ := middleware.IdentityFrom(c)
	var req transactionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Err(c, h.log, response.BindError(err))
		return
	}
	uid := caller.UserID
	t, err := h.txs.Create(service.TransactionInput{
		PaymentID:     req.PaymentID,
		PaymentMethod: req.PaymentMethod,
		Amount:        req.Amount,
		OrderID:       req.OrderID,
		UserID:        &uid,
		ResponseData:  req.ResponseData,
	})
	if err != nil {
		response.Err(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

// Mine GET /transactions：当前用户名下订单的流水
func (h *TransactionHandler) Mine(c *gin.Context) {
	caller, _ := middleware.IdentityFrom(c)
	list, err := h.txs.ByUser(caller.UserID)
	if err != nil {
		response.Err(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, list)
}
