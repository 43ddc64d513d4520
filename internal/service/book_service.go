package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"booknest/internal/apperr"
	"booknest/internal/core/cache"
	"booknest/internal/domain"
)

const bookCacheTTL = 5 * time.Minute

type BookInput struct {
	Title       string
	Author      string
	Description string
	Price       float64
	ImagePath   string
	FilePath    string
	Available   *bool
	Approved    *bool
	CategoryID  *uint
}

type BookService struct {
	books      domain.BookRepository
	categories domain.CategoryRepository
	cache      *cache.Cache // 可为 nil（测试或未开 redis）
	log        *zap.Logger
}

func NewBookService(books domain.BookRepository, categories domain.CategoryRepository, c *cache.Cache, log *zap.Logger) *BookService {
	return &BookService{books: books, categories: categories, cache: c, log: log}
}

func bookKey(id uint) string { return fmt.Sprintf("book:%d", id) }

func (s *BookService) Create(in BookInput, seller domain.Identity) (*domain.Book, error) {
	if in.Price < 0 {
		return nil, apperr.InvalidInput("price must be non-negative")
	}
	if in.CategoryID != nil {
		if err := s.checkCategory(*in.CategoryID); err != nil {
			return nil, err
		}
	}
	b := &domain.Book{
		Title:       in.Title,
		Author:      in.Author,
		Description: in.Description,
		Price:       in.Price,
		ImagePath:   in.ImagePath,
		FilePath:    in.FilePath,
		Available:   true,
		CategoryID:  in.CategoryID,
		SellerID:    &seller.UserID,
	}
	if in.Available != nil {
		b.Available = *in.Available
	}
	if in.Approved != nil {
		b.Approved = *in.Approved
	}
	if err := s.books.Create(b); err != nil {
		return nil, apperr.Internal("create book failed", err)
	}
	s.log.Info("book created", zap.Uint("book_id", b.ID), zap.String("title", b.Title))
	return b, nil
}

// Get 读多写少，经 redis 读穿缓存；写路径负责失效
func (s *BookService) Get(ctx context.Context, id uint) (*domain.Book, error) {
	if s.cache == nil {
		return s.mustFind(id)
	}
	b, err := cache.GetOrLoadJSON[domain.Book](s.cache, ctx, bookKey(id), bookCacheTTL, func(ctx context.Context) (*domain.Book, error) {
		return s.mustFind(id)
	})
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (s *BookService) mustFind(id uint) (*domain.Book, error) {
	b, err := s.books.FindByID(id)
	if err != nil {
		return nil, apperr.Internal("find book failed", err)
	}
	if b == nil {
		return nil, apperr.NotFound("book not found")
	}
	return b, nil
}

func (s *BookService) All() ([]domain.Book, error) {
	books, err := s.books.FindAll()
	if err != nil {
		return nil, apperr.Internal("list books failed", err)
	}
	return books, nil
}

func (s *BookService) ByCategory(categoryID uint) ([]domain.Book, error) {
	if err := s.checkCategory(categoryID); err != nil {
		return nil, err
	}
	books, err := s.books.FindByCategoryID(categoryID)
	if err != nil {
		return nil, apperr.Internal("list books failed", err)
	}
	return books, nil
}

func (s *BookService) Update(ctx context.Context, id uint, in BookInput) (*domain.Book, error) {
	b, err := s.mustFind(id)
	if err != nil {
		return nil, err
	}
	if in.Price < 0 {
		return nil, apperr.InvalidInput("price must be non-negative")
	}
	if in.CategoryID != nil {
		if err := s.checkCategory(*in.CategoryID); err != nil {
			return nil, err
		}
		b.CategoryID = in.CategoryID
	}
	b.Title = in.Title
	b.Author = in.Author
	b.Description = in.Description
	b.Price = in.Price
	b.ImagePath = in.ImagePath
	b.FilePath = in.FilePath
	if in.Available != nil {
		b.Available = *in.Available
	}
	if in.Approved != nil {
		b.Approved = *in.Approved
	}
	if err := s.books.Update(b); err != nil {
		return nil, apperr.Internal("update book failed", err)
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx, bookKey(id))
	}
	return b, nil
}

func (s *BookService) Delete(ctx context.Context, id uint) error {
	if _, err := s.mustFind(id); err != nil {
		return err
	}
	if err := s.books.DeleteCascade(id); err != nil {
		return apperr.Internal("delete book failed", err)
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx, bookKey(id))
	}
	s.log.Info("book deleted", zap.Uint("book_id", id))
	return nil
}

func (s *BookService) checkCategory(id uint) error {
	c, err := s.categories.FindByID(id)
	if err != nil {
		return apperr.Internal("find category failed", err)
	}
	if c == nil {
		return apperr.NotFound("category not found")
	}
	return nil
}
