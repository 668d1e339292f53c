package main

import (
	"context"
	"log"

	"github.com/ashish6109/ludo-backend/internal/api"
	"github.com/ashish6109/ludo-backend/internal/auth"
	"github.com/ashish6109/ludo-backend/internal/cache"
	"github.com/ashish6109/ludo-backend/internal/config"
	"github.com/ashish6109/ludo-backend/internal/game"
	"github.com/ashish6109/ludo-backend/internal/ledger"
	"github.com/ashish6109/ludo-backend/internal/middleware"
	"github.com/ashish6109/ludo-backend/internal/repository"
	"github.com/ashish6109/ludo-backend/internal/token"

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
	"gorm.io/driver/mysql"         // MySQL driver for GORM
	"gorm.io/gorm"                 // GORM ORM library
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Connect to the database. TranslateError lets the repository recognise
	// duplicate-key violations as gorm.ErrDuplicatedKey.
	db, err := gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err)
	}

	// Setup Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       cfg.RedisDB,
	})
	if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
		logrus.Fatalf("failed to connect to Redis: %v", err)
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Wire components: one repository behind the auth, ledger and game
	// services. The ledger is the only write path to wallet balances.
	repo := repository.New(db)
	tokens := token.NewService(cfg.JWTSecret)
	authSvc := auth.NewService(repo, tokens)
	lgr := ledger.New(repo, cfg.MinWithdraw)
	eval := game.NewEvaluator(repo, lgr)
	cch := cache.New(redisClient)

	// Setup Gin
	r := gin.Default()
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	// Public routes
	r.POST("/signup", api.SignupHandler(authSvc))
	r.POST("/login", api.LoginHandler(authSvc))
	r.POST("/webhook/gocreator", api.WebhookHandler(repo, lgr, cch)) // Payment provider callback

	// Routes protected by JWT
	authed := r.Group("/", middleware.JWTAuth(tokens))
	authed.GET("/wallet", api.WalletHandler(repo, cch))
	authed.GET("/wallet/transactions", api.TransactionHistoryHandler(repo, cch))
	authed.POST("/withdraw", api.WithdrawHandler(lgr, cch))
	authed.POST("/play", api.PlayHandler(eval, cch))

	log.Println("Server running on " + cfg.AppPort)
	r.Run(":" + cfg.AppPort) // Start the server on port cfg.AppPort
}
