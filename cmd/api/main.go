package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/shopstack/shopstack-go/internal/config"
	"github.com/shopstack/shopstack-go/internal/handler"
	"github.com/shopstack/shopstack-go/internal/middleware"
	"github.com/shopstack/shopstack-go/internal/model"
	"github.com/shopstack/shopstack-go/internal/repository"
	"github.com/shopstack/shopstack-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := repository.NewDB(cfg.DatabaseDSN)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpiry)
	userService := service.NewUserService(userRepo)
	productService := service.NewProductService(productRepo)
	orderService := service.NewOrderService(orderRepo)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	productHandler := handler.NewProductHandler(productService)
	orderHandler := handler.NewOrderHandler(orderService)

	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(5, 10))
		r.Post("/auth/login", authHandler.HandleLogin)
	})

	// Accounts are unguarded in this revision.
	r.Route("/users", func(r chi.Router) {
		r.Post("/", userHandler.HandleCreate)
		r.Get("/", userHandler.HandleList)
		r.Get("/{id}", userHandler.HandleGet)
		r.Put("/{id}", userHandler.HandleUpdate)
		r.Delete("/{id}", userHandler.HandleDelete)
	})

	// Catalog: reads need any authenticated role, writes need admin,
	// the public listing needs nothing.
	r.Route("/products", func(r chi.Router) {
		r.Get("/public/all", productHandler.HandleList)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRoles(cfg.JWTSecret, model.RoleUser, model.RoleAdmin))
			r.Get("/", productHandler.HandleList)
			r.Get("/{id}", productHandler.HandleGet)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRoles(cfg.JWTSecret, model.RoleAdmin))
			r.Post("/", productHandler.HandleCreate)
			r.Put("/{id}", productHandler.HandleUpdate)
			r.Delete("/{id}", productHandler.HandleDelete)
		})
	})

	// Orders are unguarded in this revision.
	r.Route("/orders", func(r chi.Router) {
		r.Post("/", orderHandler.HandleCreate)
		r.Get("/", orderHandler.HandleList)
		r.Get("/{id}", orderHandler.HandleGet)
		r.Put("/{id}", orderHandler.HandleUpdate)
		r.Delete("/{id}", orderHandler.HandleDelete)
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
