package service

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"booknest/internal/core/database"
	"booknest/internal/domain"
	"booknest/internal/repo"
)

var dbSeq atomic.Int64

// env 用真实仓储跑 sqlite 内存库，不打桩
type env struct {
	db *gorm.DB

	users        *repo.UserRepo
	books        *repo.BookRepo
	categories   *repo.CategoryRepo
	carts        *repo.CartRepo
	orders       *repo.OrderRepo
	reviews      *repo.ReviewRepo
	transactions *repo.TransactionRepo

	userSvc     *UserService
	bookSvc     *BookService
	categorySvc *CategoryService
	cartSvc     *CartService
	orderSvc    *OrderService
	reviewSvc   *ReviewService
	txSvc       *TransactionService
}

func newEnv(t *testing.T) *env {
	t.Helper()
	dsn := fmt.Sprintf("file:svc_test_%d?mode=memory&cache=shared", dbSeq.Add(1))
	db, err := database.NewGorm(database.Opts{
		Driver:       "sqlite",
		DSN:          dsn,
		MaxOpenConns: 1,
		LogLevel:     "silent",
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&domain.User{},
		&domain.Category{},
		&domain.Book{},
		&domain.Cart{},
		&domain.Order{},
		&domain.Review{},
		&domain.Transaction{},
	))

	log := zap.NewNop()
	e := &env{
		db:           db,
		users:        repo.NewUserRepo(db),
		books:        repo.NewBookRepo(db),
		categories:   repo.NewCategoryRepo(db),
		carts:        repo.NewCartRepo(db),
		orders:       repo.NewOrderRepo(db),
		reviews:      repo.NewReviewRepo(db),
		transactions: repo.NewTransactionRepo(db),
	}
	e.userSvc = NewUserService(e.users, log)
	e.bookSvc = NewBookService(e.books, e.categories, nil, log)
	e.categorySvc = NewCategoryService(e.categories, log)
	e.cartSvc = NewCartService(e.carts, e.books, e.users)
	e.orderSvc = NewOrderService(e.orders, e.carts, log)
	e.reviewSvc = NewReviewService(e.reviews, e.books, e.users, log)
	e.txSvc = NewTransactionService(e.transactions, e.orders, e.users, log)
	return e
}

func (e *env) signup(t *testing.T, email string) *domain.User {
	t.Helper()
	u, err := e.userSvc.SignUp(SignupInput{
		FirstName: "Test", LastName: "User", Email: email, Password: "abc12#",
	})
	require.NoError(t, err)
	return u
}

func (e *env) addBook(t *testing.T, title string, price float64) *domain.Book {
	t.Helper()
	b := &domain.Book{Title: title, Author: "A", Price: price, Available: true}
	require.NoError(t, e.books.Create(b))
	return b
}
