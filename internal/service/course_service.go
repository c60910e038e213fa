package service

import (
	"context"

	"github.com/google/uuid"

	"sugang/internal/domain"
	"sugang/internal/port"
	"sugang/internal/xlsxexport"
)

// CourseListResult holds one page of courses with the total match count.
type CourseListResult struct {
	Courses []domain.Course `json:"courses"`
	Total   int             `json:"total"`
	Page    int             `json:"page"`
	Limit   int             `json:"limit"`
}

// CourseService provides read access to the stored course catalog.
type CourseService interface {
	List(ctx context.Context, filter port.CourseFilter, page, limit int) (*CourseListResult, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.CourseWithSlots, error)
	Export(ctx context.Context) ([]byte, string, error)
}

type courseService struct {
	courseRepo port.CourseRepository
}

// NewCourseService creates a new CourseService implementation.
func NewCourseService(courseRepo port.CourseRepository) CourseService {
	return &courseService{courseRepo: courseRepo}
}

const (
	defaultPageLimit = 50
	maxPageLimit     = 500
)

func (s *courseService) List(ctx context.Context, filter port.CourseFilter, page, limit int) (*CourseListResult, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	courses, total, err := s.courseRepo.List(ctx, filter, (page-1)*limit, limit)
	if err != nil {
		return nil, err
	}
	if courses == nil {
		courses = []domain.Course{}
	}
	return &CourseListResult{Courses: courses, Total: total, Page: page, Limit: limit}, nil
}

func (s *courseService) GetByID(ctx context.Context, id uuid.UUID) (*domain.CourseWithSlots, error) {
	return s.courseRepo.GetByID(ctx, id)
}

// Export renders the whole catalog as an xlsx workbook and returns the
// file bytes with a suggested filename.
func (s *courseService) Export(ctx context.Context) ([]byte, string, error) {
	courses, err := s.courseRepo.ListAll(ctx)
	if err != nil {
		return nil, "", err
	}

	data, err := xlsxexport.Write(courses)
	if err != nil {
		return nil, "", err
	}
	return data, xlsxexport.BuildFilename(), nil
}
