package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"booknest/internal/service"
	"booknest/internal/transport/http/response"
)

type CategoryHandler struct {
	categories *service.CategoryService
	log        *zap.Logger
}

func NewCategoryHandler(categories *service.CategoryService, log *zap.Logger) *CategoryHandler {
	return &CategoryHandler{categories: categories, log: log}
}

type categoryReq struct {
	Name        string `json:"name" binding:"required,max=60"`
	Description string `json:"description"`
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var req categoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Err(c, h.log, response.BindError(err))
		return
	}
	cat, err := h.categories.Create(req.Name, req.Description)
	if err != nil {
		response.Err(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, cat)
}

func (h *CategoryHandler) Get(c *gin.Context) {
	id, err := uintParam(c, "id")
	if err != nil {
		response.Err(c, h.log, err)
		return
	}
	cat, err := h.categories.Get(id)
	if err != nil {
		response.Err(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, cat)
}

func (h *CategoryHandler) All(c *gin.Context) {
	cats, err := h.categories.All()
	if err != nil {
		response.Err(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, cats)
}

func (h *CategoryHandler) Update(c *gin.Context) {
	id, err := uintParam(c, "id")
	if err != nil {
		response.Err(c, h.log, err)
		return
	}
	var req categoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Err(c, h.log, response.BindError(err))
		return
	}
	cat, err := h.categories.Update(id, req.Name, req.Description)
	if err != nil {
		response.Err(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, cat)
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	id, err := uintParam(c, "id")
	if err != nil {
		response.Err(c, h.log, err)
		return
	}
	if err := h.categories.Delete(id); err != nil {
		response.Err(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.Message{Message: "category deleted"})
}
