package main

import (
	"fmt"
	"log"

	"sugang/internal/config"
	"sugang/internal/handler"
	"sugang/internal/repository/postgres"
	"sugang/internal/router"
	"sugang/internal/service"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() { _ = db.Close() }()

	// Initialize repositories
	courseRepo := postgres.NewCourseRepo(db)

	// Initialize services
	courseSvc := service.NewCourseService(courseRepo)

	// Initialize handlers
	courseH := handler.NewCourseHandler(courseSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(cfg, courseH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
