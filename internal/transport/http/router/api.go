package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"booknest/internal/core/auth"
	"booknest/internal/domain"
	"booknest/internal/transport/http/handler"
	mdw "booknest/internal/transport/http/middleware"
)

type Handlers struct {
	Auth         *handler.AuthHandler
	Users        *handler.UserHandler
	Books        *handler.BookHandler
	Categories   *handler.CategoryHandler
	Carts        *handler.CartHandler
	Orders       *handler.OrderHandler
	Reviews      *handler.ReviewHandler
	Transactions *handler.TransactionHandler
	Uploads      *handler.UploadHandler
}

// NewAPIEngine 组装中间件链与全部路由
func NewAPIEngine(l *zap.Logger, jwter *auth.JWTer, h Handlers, staticDir string) *gin.Engine {
	r := gin.New()

	// 最外层兜底，链内的 Recovery 负责给出 JSON 响应体
	r.Use(ginzap.RecoveryWithZap(l, true))
	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(16<<20),
		mdw.Timeout(10*time.Second),
		mdw.Recovery(l),
		mdw.Metrics(),
		mdw.AccessLog(l),
		cors.Default(),
	)

	// 健康检查与指标
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	if staticDir != "" {
		r.Static("/static", staticDir)
	}

	api := r.Group("/api/v1")
	// 解析 token 但不强制登录，后续分组自行把关
	api.Use(mdw.Authenticate(jwter, l))

	// 公共。登录注册单独按 IP 限速，防撞库
	loginGuard := mdw.RateLimitPerIP(5, 10)
	api.POST("/users/signup", loginGuard, h.Auth.SignUp)
	api.POST("/users/signin", loginGuard, h.Auth.SignIn)
	api.GET("/books", h.Books.All)
	api.GET("/books/:id", h.Books.Get)
	api.GET("/books/:id/reviews", h.Reviews.ByBook)
	api.GET("/categories", h.Categories.All)
	api.GET("/categories/:id", h.Categories.Get)
	api.GET("/categories/:id/books", h.Books.ByCategory)

	// 需要登录
	authed := api.Group("")
	authed.Use(mdw.RequireAuth(l))
	{
		authed.GET("/users/me", h.Users.Me)
		authed.PUT("/users/me", h.Users.UpdateMe)
		authed.PUT("/users/me/password", h.Users.ChangeMyPassword)

		authed.GET("/cart", h.Carts.Get)
		authed.POST("/cart/books", h.Carts.AddBook)
		authed.DELETE("/cart/books/:bookId", h.Carts.RemoveBook)

		authed.POST("/orders", h.Orders.Place)
		authed.GET("/orders", h.Orders.Mine)
		authed.GET("/orders/:id", h.Orders.Get)

		authed.POST("/books/:id/reviews", h.Reviews.Add)

		authed.POST("/transactions", h.Transactions.Create)
		authed.GET("/transactions", h.Transactions.Mine)

		authed.POST("/uploads", h.Uploads.Upload)
	}

	// 目录与书目的写操作只开放给管理员
	curator := api.Group("")
	curator.Use(mdw.RequireRole(domain.RoleAdmin, l))
	{
		curator.POST("/books", h.Books.Create)
		curator.PUT("/books/:id", h.Books.Update)
		curator.DELETE("/books/:id", h.Books.Delete)

		curator.POST("/categories", h.Categories.Create)
		curator.PUT("/categories/:id", h.Categories.Update)
		curator.DELETE("/categories/:id", h.Categories.Delete)
	}

	// 管理端
	admin := api.Group("/admin")
	admin.Use(mdw.RequireRole(domain.RoleAdmin, l))
	{
		admin.GET("/orders", h.Orders.All)
		admin.GET("/users", h.Users.List)
		admin.GET("/users/:id", h.Users.Get)
		admin.DELETE("/users/:id", h.Users.Delete)
	}

	return r
}
