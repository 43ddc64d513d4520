package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"booknest/internal/core/auth"
	"booknest/internal/core/cache"
	"booknest/internal/core/config"
	"booknest/internal/core/database"
	"booknest/internal/core/logger"
	"booknest/internal/core/server"
	"booknest/internal/domain"
	"booknest/internal/repo"
	"booknest/internal/service"
	"booknest/internal/transport/http/handler"
	"booknest/internal/transport/http/router"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	log, cleanup := newLogger(cfg)
	defer cleanup()

	// 数据库（失败会直接 Fatal）
	db := mustOpenDB(cfg, log)
	log.Info("database connected", zap.String("driver", cfg.DB.Driver))

	if cfg.DB.AutoMigrate {
		if err := db.AutoMigrate(
			&domain.User{},
			&domain.Category{},
			&domain.Book{},
			&domain.Cart{},
			&domain.Order{},
			&domain.Review{},
			&domain.Transaction{},
		); err != nil {
			log.Fatal("automigrate failed", zap.Error(err))
		}
		log.Info("automigrate done")
	}

	// JWT
	jwter := &auth.JWTer{
		Secret: []byte(cfg.JWT.Secret),
		Issuer: cfg.JWT.Issuer,
		TTL:    time.Duration(cfg.JWT.AccessTokenTTLMin) * time.Minute,
	}

	// Redis 读缓存，可关
	var rc *cache.Cache
	if cfg.Redis.Enable {
		rc = cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		log.Info("redis cache enabled", zap.String("addr", cfg.Redis.Addr))
	}

	// 仓储
	users := repo.NewUserRepo(db)
	books := repo.NewBookRepo(db)
	categories := repo.NewCategoryRepo(db)
	carts := repo.NewCartRepo(db)
	orders := repo.NewOrderRepo(db)
	reviews := repo.NewReviewRepo(db)
	transactions := repo.NewTransactionRepo(db)

	// 服务
	authSvc := service.NewAuthService(users, jwter, log)
	userSvc := service.NewUserService(users, log)
	bookSvc := service.NewBookService(books, categories, rc, log)
	categorySvc := service.NewCategoryService(categories, log)
	cartSvc := service.NewCartService(carts, books, users)
	orderSvc := service.NewOrderService(orders, carts, log)
	reviewSvc := service.NewReviewService(reviews, books, users, log)
	txSvc := service.NewTransactionService(transactions, orders, users, log)

	// 路由
	r := router.NewAPIEngine(log, jwter, router.Handlers{
		Auth:         handler.NewAuthHandler(authSvc, userSvc, log),
		Users:        handler.NewUserHandler(userSvc, log),
		Books:        handler.NewBookHandler(bookSvc, log),
		Categories:   handler.NewCategoryHandler(categorySvc, log),
		Carts:        handler.NewCartHandler(cartSvc, log),
		Orders:       handler.NewOrderHandler(orderSvc, log),
		Reviews:      handler.NewReviewHandler(reviewSvc, log),
		Transactions: handler.NewTransactionHandler(txSvc, log),
		Uploads:      handler.NewUploadHandler(cfg.Upload.Dir, log),
	}, cfg.Upload.Dir)

	// HTTP Server
	addr := server.Addr(cfg.App.HTTP.Host, cfg.App.HTTP.Port)
	srv := server.BuildServer(
		addr, r,
		time.Duration(cfg.App.HTTP.ReadTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.WriteTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.IdleTimeoutSec)*time.Second,
	)

	host4human := cfg.App.HTTP.Host
	if host4human == "" || host4human == "0.0.0.0" {
		host4human = "127.0.0.1"
	}
	baseURL := "http://" + host4human + ":" + fmt.Sprint(cfg.App.HTTP.Port)
	log.Info("booknest api starting",
		zap.String("addr", addr),
		zap.String("open", baseURL),
		zap.String("health", baseURL+"/health"),
		zap.String("api_v1", baseURL+"/api/v1"),
	)

	// 异步启动
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("booknest api start FAILED", zap.Error(err))
		}
	}()
	log.Info("booknest api started SUCCESS")

	// 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	log.Info("booknest api stopped gracefully")
}

func newLogger(cfg *config.Config) (*zap.Logger, func()) {
	if cfg.Log.File.Enable {
		return logger.NewWithRotate(cfg.Log.Level, cfg.Log.JSON, logger.FileRotate{
			Filename:   cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		})
	}
	return logger.New(cfg.Log.Level, cfg.Log.JSON)
}

func mustOpenDB(cfg *config.Config, l *zap.Logger) *gorm.DB {
	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
	})
	if err != nil {
		l.Fatal("db open", zap.Error(err))
	}
	return db
}
