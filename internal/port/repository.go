package port

import (
	"context"

	"github.com/google/uuid"

	"sugang/internal/domain"
)

// CourseFilter narrows course queries. Zero-valued fields are ignored.
// Keyword searches name, code, and professor; Day/TimeStart/TimeEnd match
// against the course's schedule slots.
type CourseFilter struct {
	Keyword      string
	Code         string
	MainCategory string
	CourseGroup  string
	Department   string
	TrackMajor   string
	Grade        string
	Professor    string
	Credit       string
	OnlineHours  string
	Day          domain.DayCode
	TimeStart    string
	TimeEnd      string
}

// CourseRepository is the storage collaborator boundary: it owns record
// identifiers, the TBD sentinel slot, and persistence.
type CourseRepository interface {
	// ReplaceAll replaces the entire stored catalog with the given
	// records in one transaction.
	ReplaceAll(ctx context.Context, courses []domain.CourseWithSlots) error
	List(ctx context.Context, filter CourseFilter, offset, limit int) ([]domain.Course, int, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.CourseWithSlots, error)
	ListAll(ctx context.Context) ([]domain.CourseWithSlots, error)
}
