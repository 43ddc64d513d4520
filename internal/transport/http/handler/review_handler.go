package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"booknest/internal/service"
	"booknest/internal/transport/http/middleware"
	"booknest/internal/transport/http/response"
)

type ReviewHandler struct {
	reviews *service.ReviewService
	log     *zap.Logger
}

func NewReviewHandler(reviews *service.ReviewService, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{reviews: reviews, log: log}
}

type reviewReq struct {
	Comment string `json:"comment" binding:"required,max=1000"`
	Rating  int    `json:"rating" binding:"required"`
}

// Add POST /books/:id/reviews
func (h *ReviewHandler) Add(c *gin.Context) {
	caller, _ := middleware.IdentityFrom(c)
	bookID, err := uintParam(c, "id")
	if err != nil {
		response.Err(c, h.log, err)
		return
	}
	var req reviewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Err(c, h.log, response.BindError(err))
		return
	}
	r, err := h.reviews.Add(caller.UserID, bookID, req.Comment, req.Rating)
	if err != nil {
		response.Err(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, r)
}

// ByBook GET /books/:id/reviews
func (h *ReviewHandler) ByBook(c *gin.Context) {
	bookID, err := uintParam(c, "id")
	if err != nil {
		response.Err(c, h.log, err)
		return
	}
	list, err := h.reviews.ByBook(bookID)
	if err != nil {
		response.Err(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, list)
}
