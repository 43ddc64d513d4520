package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"booknest/internal/core/auth"
	"booknest/internal/core/database"
	"booknest/internal/domain"
	"booknest/internal/repo"
	"booknest/internal/service"
	"booknest/internal/transport/http/handler"
)

func init() { gin.SetMode(gin.TestMode) }

var dbSeq atomic.Int64

type testApp struct {
	engine *gin.Engine
	db     *gorm.DB
	jwter  *auth.JWTer
	books  *repo.BookRepo
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	dsn := fmt.Sprintf("file:api_test_%d?mode=memory&cache=shared", dbSeq.Add(1))
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
	jwter := &auth.JWTer{Secret: []byte("test-secret"), Issuer: "booknest-test", TTL: time.Minute}

	users := repo.NewUserRepo(db)
	books := repo.NewBookRepo(db)
	categories := repo.NewCategoryRepo(db)
	carts := repo.NewCartRepo(db)
	orders := repo.NewOrderRepo(db)
	reviews := repo.NewReviewRepo(db)
	transactions := repo.NewTransactionRepo(db)

	authSvc := service.NewAuthService(users, jwter, log)
	userSvc := service.NewUserService(users, log)
	bookSvc := service.NewBookService(books, categories, nil, log)
	categorySvc := service.NewCategoryService(categories, log)
	cartSvc := service.NewCartService(carts, books, users)
	orderSvc := service.NewOrderService(orders, carts, log)
	reviewSvc := service.NewReviewService(reviews, books, users, log)
	txSvc := service.NewTransactionService(transactions, orders, users, log)

	engine := NewAPIEngine(log, jwter, Handlers{
		Auth:         handler.NewAuthHandler(authSvc, userSvc, log),
		Users:        handler.NewUserHandler(userSvc, log),
		Books:        handler.NewBookHandler(bookSvc, log),
		Categories:   handler.NewCategoryHandler(categorySvc, log),
		Carts:        handler.NewCartHandler(cartSvc, log),
		Orders:       handler.NewOrderHandler(orderSvc, log),
		Reviews:      handler.NewReviewHandler(reviewSvc, log),
		Transactions: handler.NewTransactionHandler(txSvc, log),
		Uploads:      handler.NewUploadHandler(t.TempDir(), log),
	}, "")

	return &testApp{engine: engine, db: db, jwter: jwter, books: books}
}

func (a *testApp) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &m), "body: %s", w.Body.String())
	return m
}

func (a *testApp) signupAndSignin(t *testing.T, email, password string) string {
	t.Helper()
	w := a.do(t, http.MethodPost, "/api/v1/users/signup", "", gin.H{
		"firstName": "Test", "lastName": "User", "email": email, "password": password,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = a.do(t, http.MethodPost, "/api/v1/users/signin", "", gin.H{
		"email": email, "password": password,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	token, _ := decode(t, w)["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func (a *testApp) seedBook(t *testing.T, title string, price float64) *domain.Book {
	t.Helper()
	b := &domain.Book{Title: title, Author: "A", Price: price, Available: true}
	require.NoError(t, a.books.Create(b))
	return b
}

func TestShopFlowEndToEnd(t *testing.T) {
	app := newTestApp(t)
	book := app.seedBook(t, "The Go Programming Language", 9.99)

	token := app.signupAndSignin(t, "a@b.com", "abc12#")

	// 加购
	w := app.do(t, http.MethodPost, "/api/v1/cart/books", token, gin.H{"bookId": book.ID})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	cart := decode(t, w)
	assert.InDelta(t, 9.99, cart["totalPrice"], 1e-9)

	// 下单
	w = app.do(t, http.MethodPost, "/api/v1/orders", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	order := decode(t, w)
	assert.Equal(t, "PENDING", order["status"])
	assert.InDelta(t, 9.99, order["totalAmount"], 1e-9)

	// 下单后车清空
	w = app.do(t, http.MethodGet, "/api/v1/cart", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	cart = decode(t, w)
	assert.Zero(t, cart["totalPrice"])

	// 自己的订单列表
	w = app.do(t, http.MethodGet, "/api/v1/orders", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var orders []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &orders))
	assert.Len(t, orders, 1)

	// 空车再下单 → 400
	w = app.do(t, http.MethodPost, "/api/v1/orders", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSignupValidationBodies(t *testing.T) {
	app := newTestApp(t)

	w := app.do(t, http.MethodPost, "/api/v1/users/signup", "", gin.H{
		"firstName": "X", "lastName": "Y", "email": "not-an-email", "password": "abc12#",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode(t, w), "email")

	w = app.do(t, http.MethodPost, "/api/v1/users/signup", "", gin.H{
		"firstName": "X", "lastName": "Y", "email": "x@y.com", "password": "weak",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode(t, w), "password")
}

func TestSignupDuplicateEmailConflict(t *testing.T) {
	app := newTestApp(t)
	app.signupAndSignin(t, "a@b.com", "abc12#")

	w := app.do(t, http.MethodPost, "/api/v1/users/signup", "", gin.H{
		"firstName": "Other", "lastName": "One", "email": "A@B.COM", "password": "abc12#",
	})
	assert.Equal(t, http.StatusConflict, w.Code, w.Body.String())
}

func TestAuthGates(t *testing.T) {
	app := newTestApp(t)
	userToken := app.signupAndSignin(t, "user@b.com", "abc12#")

	// 未登录 → 401
	w := app.do(t, http.MethodGet, "/api/v1/cart", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// 过期 token 按匿名处理 → 401
	expired := &auth.JWTer{Secret: app.jwter.Secret, Issuer: app.jwter.Issuer, TTL: -time.Minute}
	tok, err := expired.Issue(domain.Identity{UserID: 1, Email: "user@b.com", Role: domain.RoleUser})
	require.NoError(t, err)
	w = app.do(t, http.MethodGet, "/api/v1/cart", tok, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// 普通用户动不了书目 → 403
	w = app.do(t, http.MethodPost, "/api/v1/books", userToken, gin.H{
		"title": "X", "author": "Y", "price": 1.0,
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
	w = app.do(t, http.MethodGet, "/api/v1/admin/orders", userToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// 管理员放行
	adminToken, err := app.jwter.Issue(domain.Identity{UserID: 999, Email: "admin@b.com", Role: domain.RoleAdmin})
	require.NoError(t, err)
	w = app.do(t, http.MethodPost, "/api/v1/books", adminToken, gin.H{
		"title": "Admin Pick", "author": "Y", "price": 2.5,
	})
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	w = app.do(t, http.MethodGet, "/api/v1/admin/orders", adminToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPublicCatalogNeedsNoAuth(t *testing.T) {
	app := newTestApp(t)
	b := app.seedBook(t, "Open Book", 3.5)

	w := app.do(t, http.MethodGet, "/api/v1/books", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = app.do(t, http.MethodGet, fmt.Sprintf("/api/v1/books/%d", b.ID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Open Book", decode(t, w)["title"])

	// 不存在的书 → 404 {message}
	w = app.do(t, http.MethodGet, "/api/v1/books/424242", "", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "book not found", decode(t, w)["message"])

	w = app.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestOrderOwnershipOverHTTP(t *testing.T) {
	app := newTestApp(t)
	book := app.seedBook(t, "One", 10)

	ownerToken := app.signupAndSignin(t, "owner@b.com", "abc12#")
	strangerToken := app.signupAndSignin(t, "other@b.com", "abc12#")

	w := app.do(t, http.MethodPost, "/api/v1/cart/books", ownerToken, gin.H{"bookId": book.ID})
	require.Equal(t, http.StatusOK, w.Code)
	w = app.do(t, http.MethodPost, "/api/v1/orders", ownerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	orderID := decode(t, w)["id"]

	path := fmt.Sprintf("/api/v1/orders/%v", orderID)
	w = app.do(t, http.MethodGet, path, strangerToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = app.do(t, http.MethodGet, path, ownerToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
