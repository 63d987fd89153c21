package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv"    // .env loader for local development
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/iliyamo/travel-package-booking/internal/config"     // environment config loader
	"github.com/iliyamo/travel-package-booking/internal/database"   // MySQL pool setup
	"github.com/iliyamo/travel-package-booking/internal/handler"    // HTTP handlers
	"github.com/iliyamo/travel-package-booking/internal/middleware" // cache + rate limit middlewares
	"github.com/iliyamo/travel-package-booking/internal/queue"      // booking event consumer
	"github.com/iliyamo/travel-package-booking/internal/repository" // DB repositories
	"github.com/iliyamo/travel-package-booking/internal/router"     // route registration
	"github.com/iliyamo/travel-package-booking/internal/service"    // broker event publisher
)

func main() {
	// Load .env if present; real environments set variables directly.
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// Redis is optional: a nil client turns the cache and rate limiter
	// into pass-throughs.
	rdb := config.NewRedisClient()

	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)
	packages := repository.NewPackageRepo(db)
	bookings := repository.NewBookingRepo(db)

	events := service.NewEventPublisher(cfg.AMQPURL)

	authH := handler.NewAuthHandler(cfg, users, tokens)
	publicH := handler.NewPublicPackageHandler(packages)
	customerH := handler.NewCustomerBookingHandler(users, packages, bookings, events)
	adminPkgH := handler.NewAdminPackageHandler(packages, events)
	adminBkH := handler.NewAdminBookingHandler(bookings, packages, events)
	adminUsrH := handler.NewAdminUserHandler(users)

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterAuth(e, authH, cfg.JWTSecret)
	router.RegisterPublic(e, publicH,
		middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb),
		middleware.NewRedisCache(config.LoadCacheConfig(), rdb),
	)
	router.RegisterCustomer(e, customerH, users, cfg.JWTSecret)
	router.RegisterAdmin(e, adminPkgH, adminBkH, adminUsrH, users, cfg.JWTSecret)

	// Background consumer appends booking lifecycle events to
	// logs/booking.log and reconnects on broker failure.
	go func() {
		if err := queue.StartBookingStatusConsumer(cfg.AMQPURL); err != nil {
			log.Printf("booking consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port                                // Address string with port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err)
	}
}
