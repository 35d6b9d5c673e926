package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"venuebook/docs"
	"venuebook/internal/auditlog"
	"venuebook/internal/auth"
	"venuebook/internal/cache"
	"venuebook/internal/config"
	"venuebook/internal/db"
	"venuebook/internal/handler"
	"venuebook/internal/metrics"
	"venuebook/internal/repository"
	"venuebook/internal/router"
	"venuebook/internal/service"
	"venuebook/internal/storage"
	"venuebook/internal/sweeper"
)

const shutdownTimeout = 15 * time.Second

// @title Venue Booking API
// @version 1.0
// @description Event venue API with user accounts, booking requests, contact inquiries, a photo gallery and an admin panel.
// @host localhost:5000
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey UserToken
// @in header
// @name x-auth-token
// @description User JWT issued by /auth/login or /auth/register.
// @securityDefinitions.apikey AdminToken
// @in header
// @name x-admin-token
// @description Admin JWT issued by /admin/login.
func main() {
	cfg := config.Load()

	gormDB, err := db.Open(cfg)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}
	if cfg.ResetDB {
		log.Println("RESET_DB=true detected, dropping all tables...")
	}
	if err := db.Migrate(gormDB, cfg.ResetDB); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	pingCtx, cancelPing := context.WithTimeout(context.Background(), 3*time.Second)
	if err := cacheClient.Ping(pingCtx); err != nil {
		log.Printf("[cache] redis unavailable, continuing without cache: %v", err)
	}
	cancelPing()
	audit := auditlog.New(cacheClient.Redis(), auditlog.DefaultKey, auditlog.DefaultMax, auditlog.DefaultRetention)

	store, err := storage.NewLocalStore(cfg.UploadDir, cfg.UploadURLPrefix, cfg.UploadMaxBytes)
	if err != nil {
		log.Fatalf("upload store: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	contactRepo := repository.NewContactRepository(gormDB)
	bookingRepo := repository.NewBookingRepository(gormDB)
	galleryRepo := repository.NewGalleryRepository(gormDB)

	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.AdminJWTSecret)
	pricing := service.NewPricing(service.DefaultCatalogue())

	// Initialize services
	authService := service.NewAuthService(userRepo, tokens, cacheClient)
	contactService := service.NewContactService(contactRepo, audit)
	bookingService := service.NewBookingService(bookingRepo, userRepo, pricing, audit)
	galleryService := service.NewGalleryService(galleryRepo, store, cacheClient, audit)
	adminService := service.NewAdminService(
		service.AdminCredentials{Username: cfg.AdminUsername, Password: cfg.AdminPassword},
		userRepo, tokens, cacheClient, audit,
	)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	contactHandler := handler.NewContactHandler(contactService)
	bookingHandler := handler.NewBookingHandler(bookingService)
	galleryHandler := handler.NewGalleryHandler(galleryService, pricing)
	adminHandler := handler.NewAdminHandler(adminService, contactService, bookingService, galleryService, pricing, cfg.GallerySeedSource)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	httpMetrics := metrics.New(reg)

	e := echo.New()
	router.Register(
		e,
		cfg,
		tokens,
		httpMetrics,
		authHandler,
		contactHandler,
		bookingHandler,
		galleryHandler,
		adminHandler,
	)

	orphans := sweeper.New(galleryRepo, store, cfg.OrphanSweepSchedule, cfg.OrphanGrace)
	if err := orphans.Start(); err != nil {
		log.Fatalf("sweeper: %v", err)
	}

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = strings.TrimPrefix(strings.TrimPrefix(cfg.SwaggerHost, "https://"), "http://")
	}
	log.Printf("Swagger documentation available at: %s", swaggerURL(cfg))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		addr := ":" + cfg.ServerPort
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server start: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown: %v", err)
	}
	orphans.Stop(shutdownCtx)
	if rdb := cacheClient.Redis(); rdb != nil {
		_ = rdb.Close()
	}
	if sqlDB, err := gormDB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// swaggerURL builds the swagger UI address. SwaggerHost may already carry a scheme.
func swaggerURL(cfg *config.Config) string {
	host := cfg.SwaggerHost
	switch {
	case host == "":
		return "http://localhost:" + cfg.ServerPort + "/swagger/index.html"
	case strings.HasPrefix(host, "http://"), strings.HasPrefix(host, "https://"):
		return host + "/swagger/index.html"
	default:
		return "http://" + host + "/swagger/index.html"
	}
}
