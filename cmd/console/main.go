package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Hengzhou-Li/COMP5348-2025-Tutorial-10-Group-08/internal/dashboard"
	"github.com/Hengzhou-Li/COMP5348-2025-Tutorial-10-Group-08/internal/gateway"
	"github.com/Hengzhou-Li/COMP5348-2025-Tutorial-10-Group-08/internal/httpapi"
	"github.com/Hengzhou-Li/COMP5348-2025-Tutorial-10-Group-08/internal/metrics"
)

type Config struct {
	HTTPPort        string
	AuthAPI         string
	StoreAPI        string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

func loadConfig() *Config {
	return &Config{
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		AuthAPI:         getEnv("AUTH_API", "http://localhost:8083/api/auth"),
		StoreAPI:        getEnv("STORE_API", "http://localhost:8084/api"),
		RequestTimeout:  30 * time.Second,
		ShutdownTimeout: 10 * time.Second,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	cfg := loadConfig()

	// One client for both backends so the auth cookie is shared.
	httpClient, err := gateway.NewHTTPClient(cfg.RequestTimeout)
	if err != nil {
		log.Fatalf("failed to build http client: %v", err)
	}

	authClient := gateway.NewAuthClient(cfg.AuthAPI, httpClient)
	storeClient := gateway.NewStoreClient(cfg.StoreAPI, httpClient)

	registry := metrics.NewRegistry()
	controller := dashboard.NewController(authClient, storeClient, registry)

	// Startup probe: an existing session rebuilds the dashboard, an
	// absent one leaves the console logged out.
	startupCtx, cancel := context.WithTimeout(context.Background(), cfg.RequestTimeout)
	controller.ReloadSession(startupCtx)
	cancel()

	handler := httpapi.NewHandler(controller)
	router := httpapi.NewRouter(handler, registry.Handler(), cfg.RequestTimeout)

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("storefront console starting on :%s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("server exited")
}
