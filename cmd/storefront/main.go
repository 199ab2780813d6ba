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

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/DavidBen48/connect-sao-bento/internal/catalog"
	"github.com/DavidBen48/connect-sao-bento/internal/composer"
	h "github.com/DavidBen48/connect-sao-bento/internal/http"
	"github.com/DavidBen48/connect-sao-bento/internal/session"
)

type Config struct {
	HTTPPort          string
	WhatsAppNumber    string
	PixKey            string
	CatalogPath       string
	SessionTTL        time.Duration
	RequestTimeout    time.Duration
	ShutdownTimeout   time.Duration
	PrometheusEnabled bool
}

func loadConfig() *Config {
	return &Config{
		HTTPPort:          getEnv("HTTP_PORT", "8080"),
		WhatsAppNumber:    getEnv("WHATSAPP_NUMBER", "5521991442334"),
		PixKey:            getEnv("PIX_KEY", "+55 21 99144-2334"),
		CatalogPath:       getEnv("CATALOG_PATH", ""),
		SessionTTL:        session.DefaultTTL,
		RequestTimeout:    30 * time.Second,
		ShutdownTimeout:   10 * time.Second,
		PrometheusEnabled: getEnv("PROMETHEUS_ENABLED", "") == "true",
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

	c, err := loadCatalog(cfg.CatalogPath)
	if err != nil {
		log.Fatalf("failed to load catalog: %v", err)
	}

	sessions := session.NewStore(cfg.SessionTTL)
	defer sessions.Close()

	comp := composer.New(cfg.WhatsAppNumber, composer.LogDispatcher{})

	productHandler := h.NewProductHandler(c)
	cartHandler := h.NewCartHandler(sessions, c)
	checkoutHandler := h.NewCheckoutHandler(sessions, comp, cfg.PixKey)

	// Setup router
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Timeout(cfg.RequestTimeout))
	r.Use(middleware.Compress(5))
	r.Use(h.SessionMiddleware(sessions))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	if cfg.PrometheusEnabled {
		log.Println("registering /metrics endpoint")
		r.Handle("/metrics", promhttp.Handler())
	}

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/products", productHandler.ListProducts)

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", cartHandler.GetCart)
			r.Delete("/", cartHandler.ClearCart)
			r.Post("/items", cartHandler.AddItem)
			r.Put("/items/{product_id}", cartHandler.UpdateQuantity)
			r.Delete("/items/{product_id}", cartHandler.RemoveItem)
		})

		r.Post("/checkout", checkoutHandler.Checkout)
	})

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("storefront starting on :%s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
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

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default()
	}
	log.Printf("loading catalog from %s", path)
	return catalog.Load(path)
}
