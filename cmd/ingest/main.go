// Command ingest runs one catalog ingestion: it loads the extracted
// catalog document (local file or S3 object), parses it into normalized
// course records, and replaces the stored course set.
// Usage: go run ./cmd/ingest
package main

import (
	"context"
	"fmt"
	"log"

	"sugang/internal/config"
	"sugang/internal/repository/postgres"
	"sugang/internal/service"
	s3storage "sugang/internal/storage/s3"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer func() { _ = db.Close() }()

	s3Client, err := s3storage.NewS3Client(&cfg.S3)
	if err != nil {
		return fmt.Errorf("initializing S3 client: %w", err)
	}

	courseRepo := postgres.NewCourseRepo(db)
	ingestSvc := service.NewIngestService(s3Client, courseRepo, &cfg.S3, &cfg.Catalog)

	result, err := ingestSvc.Ingest(context.Background())
	if err != nil {
		return fmt.Errorf("ingesting catalog: %w", err)
	}

	log.Printf("Ingest complete: %d courses, %d schedule slots from %s",
		result.CourseCount, result.SlotCount, result.Source)
	if result.FailureCount > 0 {
		log.Printf("WARN: %d schedule cells could not be resolved:", result.FailureCount)
		for _, f := range result.Failures {
			log.Printf("  page %d course %s: %q", f.Page, f.CourseCode, f.TimeText)
		}
	}
	return nil
}
