package main

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"

	"roastery/internal/cache"
	"roastery/internal/config"
	"roastery/internal/db"
	"roastery/internal/handler"
	"roastery/internal/model"
	"roastery/internal/repository"
	"roastery/internal/router"
	"roastery/internal/service"
	"roastery/internal/session"
	"roastery/internal/view"
)

func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(&model.User{}); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       cfg.RedisDB,
	})

	renderer, err := view.NewRenderer()
	if err != nil {
		log.Fatalf("templates: %v", err)
	}
	e.Renderer = renderer

	userRepo := repository.NewUserRepository(gormDB)
	sessionStore := session.NewRedisStore(rdb, cfg.SessionTTL)
	cacheClient := cache.New(rdb)

	authService := service.NewAuthService(userRepo, sessionStore)
	userService := service.NewUserService(userRepo, cacheClient)

	authHandler := handler.NewAuthHandler(authService, cfg.SessionTTL)
	pageHandler := handler.NewPageHandler()

	router.Register(e, authHandler, pageHandler, router.RequireSession(sessionStore, userService))

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
