package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"booknest/internal/service"
	"booknest/internal/transport/http/middleware"
	"booknest/internal/transport/http/response"
)

type BookHandler struct {
	books *service.BookService
	log   *zap.Logger
}

func NewBookHandler(books *service.BookService, log *zap.Logger) *BookHandler {
	return &BookHandler{books: books, log: log}
}

type bookReq struct {
	Title       string  `json:"title" binding:"required,max=200"`
	Author      string  `json:"author" binding:"required,max=120"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"gte=0"`
	ImagePath   string  `json:"imagePath"`
	FilePath    string  `json:"filePath"`
	Approved    *bool   `json:"approved"`
	Available   *bool   `json:"available"`
	CategoryID  *uint   `json:"categoryId"`
}

func (r bookReq) toInput() service.BookInput {
	return service.BookInput{
		Title:       r.Title,
		Author:      r.Author,
		Description: r.Description,
		Price:       r.Price,
		ImagePath:   r.ImagePath,
		FilePath:    r.FilePath,
		Approved:    r.Approved,
		Available:   r.Available,
		CategoryID:  r.CategoryID,
	}
}

func (h *BookHandler) Create(c *gin.Context) {
	caller, _ := middleware.IdentityFrom(c)
	var req bookReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Err(c, h.log, response.BindError(err))
		return
	}
	b, err := h.books.Create(req.toInput(), caller)
	if err != nil {
		response.Err(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

func (h *BookHandler) Get(c *gin.Context) {
	id, err := uintParam(c, "id")
	if err != nil {
		response.Err(c, h.log, err)
		return
	}
	b, err := h.books.Get(c.Request.Context(), id)
	if err != nil {
		response.Err(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *BookHandler) All(c *gin.Context) {
	books, err := h.books.All()
	if err != nil {
		response.Err(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, books)
}

// ByCategory GET /categories/:id/books
func (h *BookHandler) ByCategory(c *gin.Context) {
	id, err := uintParam(c, "id")
	if err != nil {
		response.Err(c, h.log, err)
		return
	}
	books, err := h.books.ByCategory(id)
	if err != nil {
		response.Err(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, books)
}

func (h *BookHandler) Update(c *gin.Context) {
	id, err := uintParam(c, "id")
	if err != nil {
		response.Err(c, h.log, err)
		return
	}
	var req bookReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Err(c, h.log, response.BindError(err))
		return
	}
	b, err := h.books.Update(c.Request.Context(), id, req.toInput())
	if err != nil {
		response.Err(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *BookHandler) Delete(c *gin.Context) {
	id, err := uintParam(c, "id")
	if err != nil {
		response.Err(c, h.log, err)
		return
	}
	if err := h.books.Delete(c.Request.Context(), id); err != nil {
		response.Err(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.Message{Message: "book deleted"})
}
