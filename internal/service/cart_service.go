package service

import (
	"booknest/internal/apperr"
	"booknest/internal/domain"
)

type CartService struct {
	carts domain.CartRepository
	books domain.BookRepository
	users domain.UserRepository
}

func NewCartService(carts domain.CartRepository, books domain.BookRepository, users domain.UserRepository) *CartService {
	return &CartService{carts: carts, books: books, users: users}
}

func (s *CartService) Get(userID uint) (*domain.Cart, error) {
	cart, err := s.carts.FindByUserID(userID)
	if err != nil {
		return nil, apperr.Internal("load cart failed", err)
	}
	if cart == nil {
		return nil, apperr.NotFound("cart not found")
	}
	return cart, nil
}

// Add 首次加购时惰性建车；重复加同一本书为幂等空操作。
// 小计始终按当前书价重算，不是加入时的价格
func (s *CartService) Add(userID, bookID uint) (*domain.Cart, error) {
	user, err := s.users.FindByID(userID)
	if err != nil {
		return nil, apperr.Internal("find user failed", err)
	}
	if user == nil {
		return nil, apperr.NotFound("user not found")
	}
	book, err := s.books.FindByID(bookID)
	if err != nil {
		return nil, apperr.Internal("find book failed", err)
	}
	if book == nil {
		return nil, apperr.NotFound("book not found")
	}

	cart, err := s.carts.FindByUserID(userID)
	if err != nil {
		return nil, apperr.Internal("load cart failed", err)
	}
	if cart == nil {
		cart = &domain.Cart{UserID: userID}
		if err := s.carts.Create(cart); err != nil {
			return nil, apperr.Internal("create cart failed", err)
		}
	}

	books := cart.Books
	if !containsBook(books, bookID) {
		books = append(books, *book)
	}
	total := sumPrices(books)
	if err := s.carts.SetBooks(cart, books, total); err != nil {
		return nil, apperr.Internal("update cart failed", err)
	}
	cart.Books = books
	cart.TotalPrice = total
	return cart, nil
}

func (s *CartService) Remove(userID, bookID uint) (*domain.Cart, error) {
	cart, err := s.carts.FindByUserID(userID)
	if err != nil {
		return nil, apperr.Internal("load cart failed", err)
	}
	if cart == nil {
		return nil, apperr.NotFound("cart not found")
	}
	if !containsBook(cart.Books, bookID) {
		// 区别于“书不存在”：书不在车里
		return nil, apperr.NotFound("book not in cart")
	}

	books := make([]domain.Book, 0, len(cart.Books)-1)
	for _, b := range cart.Books {
		if b.ID != bookID {
			books = append(books, b)
		}
	}
	total := sumPrices(books)
	if err := s.carts.SetBooks(cart, books, total); err != nil {
		return nil, apperr.Internal("update cart failed", err)
	}
	cart.Books = books
	cart.TotalPrice = total
	return cart, nil
}

func containsBook(books []domain.Book, id uint) bool {
	for _, b := range books {
		if b.ID == id {
			return true
		}
	}
	return false
}

func sumPrices(books []domain.Book) float64 {
	var total float64
	for _, b := range books {
		total += b.Price
	}
	return total
}
