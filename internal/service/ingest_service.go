package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"sugang/internal/catalog"
	"sugang/internal/config"
	"sugang/internal/domain"
	"sugang/internal/port"
)

// IngestResult summarizes one catalog ingestion run.
type IngestResult struct {
	Source       string                 `json:"source"`
	CourseCount  int                    `json:"course_count"`
	SlotCount    int                    `json:"slot_count"`
	FailureCount int                    `json:"failure_count"`
	Failures     []catalog.ParseFailure `json:"failures,omitempty"`
}

// IngestService loads an extracted catalog document, runs the parsing
// engine over it, and replaces the stored course set with the result.
type IngestService interface {
	Ingest(ctx context.Context) (*IngestResult, error)
}

type ingestService struct {
	storage    port.ObjectStorage
	courseRepo port.CourseRepository
	s3Cfg      *config.S3Config
	catalogCfg *config.CatalogConfig
}

// NewIngestService creates a new IngestService implementation.
func NewIngestService(
	storage port.ObjectStorage,
	courseRepo port.CourseRepository,
	s3Cfg *config.S3Config,
	catalogCfg *config.CatalogConfig,
) IngestService {
	return &ingestService{
		storage:    storage,
		courseRepo: courseRepo,
		s3Cfg:      s3Cfg,
		catalogCfg: catalogCfg,
	}
}

func (s *ingestService) Ingest(ctx context.Context) (*IngestResult, error) {
	data, source, err := s.loadDocument(ctx)
	if err != nil {
		return nil, err
	}

	var doc domain.ExtractedDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidDocument, err)
	}
	if doc.Source == "" {
		doc.Source = source
	}

	engine := catalog.NewEngine()
	records, err := engine.ParseDocument(&doc)
	if err != nil {
		return nil, err
	}

	courses := make([]domain.CourseWithSlots, 0, len(records))
	slotCount := 0
	for _, rec := range records {
		courses = append(courses, toCourseWithSlots(rec))
		slotCount += len(rec.Slots)
	}

	if err := s.courseRepo.ReplaceAll(ctx, courses); err != nil {
		return nil, err
	}

	failures := engine.Failures()
	return &IngestResult{
		Source:       source,
		CourseCount:  len(courses),
		SlotCount:    slotCount,
		FailureCount: len(failures),
		Failures:     failures,
	}, nil
}

// loadDocument prefers a local extracted file when configured and present,
// and falls back to the S3 object otherwise.
func (s *ingestService) loadDocument(ctx context.Context) ([]byte, string, error) {
	if path := s.catalogCfg.LocalPath; path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			return data, path, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, "", fmt.Errorf("reading catalog file: %w", err)
		}
	}

	if s.storage == nil || s.catalogCfg.SourceKey == "" {
		return nil, "", domain.ErrSourceNotFound
	}
	data, err := s.storage.Download(ctx, s.s3Cfg.Bucket, s.catalogCfg.SourceKey)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", domain.ErrSourceNotFound, err)
	}
	return data, "s3://" + s.s3Cfg.Bucket + "/" + s.catalogCfg.SourceKey, nil
}

func toCourseWithSlots(rec catalog.ParsedCourse) domain.CourseWithSlots {
	course := domain.Course{
		Code:                rec.Code,
		Name:                rec.Name,
		MainCategory:        rec.MainCategory,
		CourseGroup:         rec.CourseGroup,
		University:          rec.University,
		Department:          rec.Department,
		TrackMajor:          rec.TrackMajor,
		Grade:               rec.Grade,
		Section:             rec.Section,
		Credit:              rec.Credit,
		LectureHours:        rec.LectureHours,
		OnlineHours:         rec.OnlineHours,
		Room:                rec.Room,
		Professor:           rec.Professor,
		Page:                rec.Page,
		CrossEnrollmentType: rec.CrossEnrollmentType,
	}

	slots := make([]domain.ScheduleSlot, 0, len(rec.Slots))
	for _, sl := range rec.Slots {
		slots = append(slots, domain.ScheduleSlot{
			Day:       sl.Day,
			StartTime: sl.Start,
			EndTime:   sl.End,
		})
	}
	return domain.CourseWithSlots{Course: course, Slots: slots}
}
