package service

import (
	"go.uber.org/zap"

	"booknest/internal/apperr"
	"booknest/internal/domain"
)

type ReviewService struct {
	reviews domain.ReviewRepository
	books   domain.BookRepository
	users   domain.UserRepository
	log     *zap.Logger
}

func NewReviewService(reviews domain.ReviewRepository, books domain.BookRepository, users domain.UserRepository, log *zap.Logger) *ReviewService {
	return &ReviewService{reviews: reviews, books: books, users: users, log: log}
}

func (s *ReviewService) Add(userID, bookID uint, comment string, rating int) (*domain.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, apperr.InvalidInput("rating must be between 1 and 5")
	}
	u, err := s.users.FindByID(userID)
	if err != nil {
		return nil, apperr.Internal("find user failed", err)
	}
	if u == nil {
		return nil, apperr.NotFound("user not found")
	}
	b, err := s.books.FindByID(bookID)
	if err != nil {
		return nil, apperr.Internal("find book failed", err)
	}
	if b == nil {
		return nil, apperr.NotFound("book not found")
	}

	r := &domain.Review{Comment: comment, Rating: rating, UserID: userID, BookID: bookID}
	if err := s.reviews.Create(r); err != nil {
		return nil, apperr.Internal("create review failed", err)
	}
	s.log.Info("review created",
		zap.Uint("review_id", r.ID), zap.Uint("book_id", bookID), zap.Uint("user_id", userID))
	return r, nil
}

func (s *ReviewService) ByBook(bookID uint) ([]domain.Review, error) {
	b, err := s.books.FindByID(bookID)
	if err != nil {
		return nil, apperr.Internal("find book failed", err)
	}
	if b == nil {
		return nil, apperr.NotFound("book not found")
	}
	reviews, err := s.reviews.FindByBookID(bookID)
	if err != nil {
		return nil, apperr.Internal("list reviews failed", err)
	}
	return reviews, nil
}
