package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"sugang/internal/domain"
	"sugang/internal/port"
)

type courseRepo struct {
	db *sqlx.DB
}

// NewCourseRepo creates a new PostgreSQL-backed CourseRepository.
func NewCourseRepo(db *sqlx.DB) port.CourseRepository {
	return &courseRepo{db: db}
}

const insertCourseSQL = `INSERT INTO courses (
	id, code, name, main_category, course_group, university, department,
	track_major, grade, section, credit, lecture_hours, online_hours,
	room, professor, page, cross_enrollment_type, created_at
) VALUES (
	:id, :code, :name, :main_category, :course_group, :university, :department,
	:track_major, :grade, :section, :credit, :lecture_hours, :online_hours,
	:room, :professor, :page, :cross_enrollment_type, :created_at
)`

const insertSlotSQL = `INSERT INTO schedules (
	id, course_id, day, start_time, end_time, room
) VALUES ($1, $2, $3, $4, $5, $6)`

// ReplaceAll wipes and re-inserts the whole catalog in one transaction.
// This is the storage boundary from the ingestion engine's point of view:
// record identifiers are assigned here, a course with zero resolved slots
// gets the TBD sentinel slot, and a blank room is stored as NULL.
func (r *courseRepo) ReplaceAll(ctx context.Context, courses []domain.CourseWithSlots) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("courseRepo.ReplaceAll begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM schedules"); err != nil {
		return fmt.Errorf("courseRepo.ReplaceAll clear schedules: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM courses"); err != nil {
		return fmt.Errorf("courseRepo.ReplaceAll clear courses: %w", err)
	}

	now := time.Now().UTC()
	for i := range courses {
		course := &courses[i]
		course.ID = uuid.New()
		course.CreatedAt = now

		if _, err := tx.NamedExecContext(ctx, insertCourseSQL, course.Course); err != nil {
			return fmt.Errorf("courseRepo.ReplaceAll insert course %s: %w", course.Code, err)
		}

		slots := course.Slots
		if len(slots) == 0 {
			slots = []domain.ScheduleSlot{sentinelSlot()}
		}
		for _, slot := range slots {
			slot.ID = uuid.New()
			slot.CourseID = course.ID
			slot.Room = slotRoom(course.Room)
			if _, err := tx.ExecContext(ctx, insertSlotSQL,
				slot.ID, slot.CourseID, slot.Day, slot.StartTime, slot.EndTime, slot.Room); err != nil {
				return fmt.Errorf("courseRepo.ReplaceAll insert slot for %s: %w", course.Code, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("courseRepo.ReplaceAll commit: %w", err)
	}
	return nil
}

// sentinelSlot is stored when a course has no resolvable schedule.
func sentinelSlot() domain.ScheduleSlot {
	return domain.ScheduleSlot{
		Day:       domain.DayTBD,
		StartTime: "00:00:00",
		EndTime:   "00:00:00",
	}
}

// slotRoom returns the nullable room value for schedule rows.
func slotRoom(room string) *string {
	room = strings.TrimSpace(room)
	if room == "" || room == "-" {
		return nil
	}
	return &room
}

// buildCourseFilter translates a CourseFilter into a WHERE clause and its
// arguments, using positional placeholders starting at $1. Day and time
// constraints match through the schedules table.
func buildCourseFilter(f port.CourseFilter) (string, []interface{}) {
	var conds []string
	var args []interface{}

	add := func(cond string, value interface{}) {
		args = append(args, value)
		conds = append(conds, strings.ReplaceAll(cond, "?", fmt.Sprintf("$%d", len(args))))
	}

	if f.Keyword != "" {
		kw := "%" + f.Keyword + "%"
		args = append(args, kw)
		n := len(args)
		conds = append(conds, fmt.Sprintf("(c.name LIKE $%d OR c.code LIKE $%d OR c.professor LIKE $%d)", n, n, n))
	}
	if f.Code != "" {
		add("c.code = ?", f.Code)
	}
	if f.MainCategory != "" {
		add("c.main_category = ?", f.MainCategory)
	}
	if f.CourseGroup != "" {
		add("c.course_group = ?", f.CourseGroup)
	}
	if f.Department != "" {
		add("c.department = ?", f.Department)
	}
	if f.TrackMajor != "" {
		add("c.track_major = ?", f.TrackMajor)
	}
	if f.Grade != "" {
		add("c.grade = ?", f.Grade)
	}
	if f.Professor != "" {
		add("c.professor LIKE ?", "%"+f.Professor+"%")
	}
	if f.Credit != "" {
		add("c.credit = ?", f.Credit)
	}
	if f.OnlineHours != "" {
		add("c.online_hours = ?", f.OnlineHours)
	}

	var slotConds []string
	appendSlot := func(cond string, value interface{}) {
		args = append(args, value)
		slotConds = append(slotConds, strings.ReplaceAll(cond, "?", fmt.Sprintf("$%d", len(args))))
	}
	if f.Day != "" {
		appendSlot("s.day = ?", string(f.Day))
	}
	if f.TimeStart != "" {
		appendSlot("s.start_time >= ?", f.TimeStart)
	}
	if f.TimeEnd != "" {
		appendSlot("s.end_time <= ?", f.TimeEnd)
	}
	if len(slotConds) > 0 {
		conds = append(conds, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM schedules s WHERE s.course_id = c.id AND %s)",
			strings.Join(slotConds, " AND ")))
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func (r *courseRepo) List(ctx context.Context, filter port.CourseFilter, offset, limit int) ([]domain.Course, int, error) {
	where, args := buildCourseFilter(filter)

	var total int
	err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM courses c"+where, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("courseRepo.List count: %w", err)
	}

	query := fmt.Sprintf(
		"SELECT c.* FROM courses c%s ORDER BY c.page, c.code, c.section LIMIT $%d OFFSET $%d",
		where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	var courses []domain.Course
	if err := r.db.SelectContext(ctx, &courses, query, args...); err != nil {
		return nil, 0, fmt.Errorf("courseRepo.List: %w", err)
	}
	return courses, total, nil
}

func (r *courseRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.CourseWithSlots, error) {
	var course domain.Course
	err := r.db.GetContext(ctx, &course, "SELECT * FROM courses WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCourseNotFound
		}
		return nil, fmt.Errorf("courseRepo.GetByID: %w", err)
	}

	var slots []domain.ScheduleSlot
	err = r.db.SelectContext(ctx, &slots,
		"SELECT * FROM schedules WHERE course_id = $1 ORDER BY day, start_time", id)
	if err != nil {
		return nil, fmt.Errorf("courseRepo.GetByID slots: %w", err)
	}

	return &domain.CourseWithSlots{Course: course, Slots: slots}, nil
}

func (r *courseRepo) ListAll(ctx context.Context) ([]domain.CourseWithSlots, error) {
	var courses []domain.Course
	err := r.db.SelectContext(ctx, &courses,
		"SELECT * FROM courses ORDER BY page, code, section")
	if err != nil {
		return nil, fmt.Errorf("courseRepo.ListAll: %w", err)
	}

	var slots []domain.ScheduleSlot
	err = r.db.SelectContext(ctx, &slots,
		"SELECT * FROM schedules ORDER BY course_id, day, start_time")
	if err != nil {
		return nil, fmt.Errorf("courseRepo.ListAll slots: %w", err)
	}

	byCourse := make(map[uuid.UUID][]domain.ScheduleSlot, len(courses))
	for _, s := range slots {
		byCourse[s.CourseID] = append(byCourse[s.CourseID], s)
	}

	out := make([]domain.CourseWithSlots, 0, len(courses))
	for _, c := range courses {
		out = append(out, domain.CourseWithSlots{Course: c, Slots: byCourse[c.ID]})
	}
	return out, nil
}
