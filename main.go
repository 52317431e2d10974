package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"persondir/config"
	"persondir/database"
	"persondir/directory"
	"persondir/handlers"
	"persondir/repository"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Printf("Info: No .env file found or error loading: %v", err)
	}
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: Failed to load configuration: %v", err)
	}

	var personStore repository.PersonStore
	var postStore repository.PostStore

	switch cfg.StorageMode {
	case config.StorageModeSQLite:
		db, err := database.InitGormDB(cfg.DatabasePath)
		if err != nil {
			log.Fatalf("FATAL: Failed to initialize database: %v", err)
		}
		if err := database.AutoMigrateModels(db); err != nil {
			log.Fatalf("FATAL: Failed to migrate database: %v", err)
		}
		personStore = repository.NewPersonRepository(db)
		postStore = repository.NewPostRepository(db)
		if cfg.SeedDemoData {
			log.Printf("Warning: SEED_DEMO_DATA is ignored in sqlite mode")
		}
		log.Printf("Using sqlite storage at %s", cfg.DatabasePath)
	default:
		dir := directory.New()
		if cfg.SeedDemoData {
			dir.Seed()
			log.Printf("Seeded demo persons and posts")
		}
		personStore = dir
		postStore = dir
		log.Printf("Using in-memory storage")
	}

	r := chi.NewRouter()

	corsOptions := cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}

	corsHandler := cors.New(corsOptions)

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(corsHandler.Handler)

	personHandler := &handlers.PersonHandler{Store: personStore, DefaultLimit: cfg.DefaultListLimit}
	postHandler := &handlers.PostHandler{Store: postStore}

	handlers.RegisterRoutes(r, personHandler, postHandler, cfg.StorageMode)

	serverAddr := ":" + cfg.Port
	fmt.Printf("Server starting on http://localhost:%s\n", cfg.Port)
	log.Printf("Server listening on %s", serverAddr)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	log.Fatal(server.ListenAndServe())
}
