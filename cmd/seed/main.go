package main

import (
	"context"
	"log"
	"os"
	"time"

	"venuebook/internal/auditlog"
	"venuebook/internal/cache"
	"venuebook/internal/config"
	"venuebook/internal/db"
	"venuebook/internal/repository"
	"venuebook/internal/seed"
	"venuebook/internal/service"
	"venuebook/internal/storage"
)

const seedTimeout = 2 * time.Minute

// Usage: seed [source]. The source is an http(s) URL or a JSON file of
// [{"src","alt","category"}] entries and defaults to GALLERY_SEED_SOURCE.
func main() {
	log.Println("Starting gallery seed...")

	cfg := config.Load()
	source := cfg.GallerySeedSource
	if len(os.Args) > 1 {
		source = os.Args[1]
	}

	gormDB, err := db.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := db.Migrate(gormDB, false); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx, cancel := context.WithTimeout(context.Background(), seedTimeout)
	defer cancel()

	log.Printf("Loading gallery entries from: %s", source)
	images, err := seed.LoadGallery(ctx, source)
	if err != nil {
		log.Fatalf("Failed to load gallery entries: %v", err)
	}
	log.Printf("Loaded %d gallery entries", len(images))

	store, err := storage.NewLocalStore(cfg.UploadDir, cfg.UploadURLPrefix, cfg.UploadMaxBytes)
	if err != nil {
		log.Fatalf("Failed to open upload store: %v", err)
	}
	// The cache client lets the seed drop the cached public gallery.
	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	audit := auditlog.New(cacheClient.Redis(), auditlog.DefaultKey, auditlog.DefaultMax, auditlog.DefaultRetention)
	galleryService := service.NewGalleryService(repository.NewGalleryRepository(gormDB), store, cacheClient, audit)

	res, err := galleryService.Seed(ctx, images)
	if err != nil {
		log.Fatalf("Failed to seed gallery: %v", err)
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - New images created: %d", res.Created)
	log.Printf("  - Existing images updated: %d", res.Updated)
	log.Printf("  - Skipped: %d", len(images)-res.Created-res.Updated)
}
