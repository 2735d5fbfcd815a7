package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv"                // .env loader for local development
	"github.com/labstack/echo/v4"             // Echo web framework
	echomw "github.com/labstack/echo/v4/middleware" // Echo's built-in middleware (CORS)

	"github.com/iliyamo/notes-api/internal/config"     // Internal config loader
	"github.com/iliyamo/notes-api/internal/database"   // Database connector
	"github.com/iliyamo/notes-api/internal/handler"    // HTTP handlers
	"github.com/iliyamo/notes-api/internal/middleware" // Session, cache and rate limit middleware
	"github.com/iliyamo/notes-api/internal/queue"      // Activity event consumer
	"github.com/iliyamo/notes-api/internal/repository" // Data access layer
	"github.com/iliyamo/notes-api/internal/router"     // Route registration
)

func main() {
	_ = godotenv.Load() // Best effort; real deployments set env vars directly
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	defer db.Close()

	users := repository.NewUserRepo(db)
	notes := repository.NewNoteRepo(db)
	categories := repository.NewCategoryRepo(db)

	authHandler := handler.NewAuthHandler(cfg, users)
	noteHandler := handler.NewNoteHandler(notes)
	categoryHandler := handler.NewCategoryHandler(categories, notes)

	// Redis is optional: a nil client turns both the cache and the rate
	// limiter into pass-through middleware.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; caching and rate limiting disabled")
	}
	session := middleware.Session(cfg.AccessSecret)
	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)
	limiter := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)

	e := echo.New()
	// The SPA runs on another origin and authenticates with cookies, so
	// CORS must name the origin explicitly and allow credentials.
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowCredentials: true,
	}))

	router.RegisterRoutes(e)
	router.RegisterAuth(e, authHandler, limiter)
	router.RegisterNotes(e, noteHandler, session, cache)
	router.RegisterCategories(e, categoryHandler, session, cache)

	// The activity consumer reconnects on its own; run it for the life of
	// the process.
	go func() {
		if err := queue.StartActivityConsumer(); err != nil {
			log.Printf("activity consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
