package service

import (
	"go.uber.org/zap"

	"booknest/internal/apperr"
	"booknest/internal/domain"
)

type CategoryService struct {
	categories domain.CategoryRepository
	log        *zap.Logger
}

func NewCategoryService(categories domain.CategoryRepository, log *zap.Logger) *CategoryService {
	return &CategoryService{categories: categories, log: log}
}

func (s *CategoryService) Create(name, description string) (*domain.Category, error) {
	exists, err := s.categories.ExistsByName(name)
	if err != nil {
		return nil, apperr.Internal("check category failed", err)
	}
	if exists {
		return nil, apperr.Conflict("category already exists: " + name)
	}
	c := &domain.Category{Name: name, Description: description}
	if err := s.categories.Create(c); err != nil {
		return nil, apperr.Internal("create category failed", err)
	}
	s.log.Info("category created", zap.Uint("category_id", c.ID), zap.String("name", c.Name))
	return c, nil
}

func (s *CategoryService) Get(id uint) (*domain.Category, error) {
	c, err := s.categories.FindByID(id)
	if err != nil {
		return nil, apperr.Internal("find category failed", err)
	}
	if c == nil {
		return nil, apperr.NotFound("category not found")
	}
	return c, nil
}

func (s *CategoryService) All() ([]domain.Category, error) {
	cats, err := s.categories.FindAll()
	if err != nil {
		return nil, apperr.Internal("list categories failed", err)
	}
	return cats, nil
}

func (s *CategoryService) Update(id uint, name, description string) (*domain.Category, error) {
	c, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	c.Name = name
	c.Description = description
	if err := s.categories.Update(c); err != nil {
		return nil, apperr.Internal("update category failed", err)
	}
	return c, nil
}

// Delete 分类下还有书时禁止删除
func (s *CategoryService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	n, err := s.categories.CountBooks(id)
	if err != nil {
		return apperr.Internal("count books failed", err)
	}
	if n > 0 {
		return apperr.InvalidState("category contains books, reassign or remove them first")
	}
	if err := s.categories.Delete(id); err != nil {
		return apperr.Internal("delete category failed", err)
	}
	s.log.Info("category deleted", zap.Uint("category_id", id))
	return nil
}
