package domain

import (
	"time"

	"github.com/google/uuid"
)

// Course represents one normalized catalog entry (one course section).
type Course struct {
	ID                  uuid.UUID `db:"id" json:"id"`
	Code                string    `db:"code" json:"code"`
	Name                string    `db:"name" json:"name"`
	MainCategory        string    `db:"main_category" json:"main_category"`
	CourseGroup         string    `db:"course_group" json:"course_group"`
	University          string    `db:"university" json:"university"`
	Department          string    `db:"department" json:"department"`
	TrackMajor          string    `db:"track_major" json:"track_major"`
	Grade               string    `db:"grade" json:"grade"`
	Section             string    `db:"section" json:"section"`
	Credit              string    `db:"credit" json:"credit"`
	LectureHours        string    `db:"lecture_hours" json:"lecture_hours"`
	OnlineHours         string    `db:"online_hours" json:"online_hours"`
	Room                string    `db:"room" json:"room"`
	Professor           string    `db:"professor" json:"professor"`
	Page                int       `db:"page" json:"page"`
	CrossEnrollmentType string    `db:"cross_enrollment_type" json:"cross_enrollment_type"`
	CreatedAt           time.Time `db:"created_at" json:"created_at"`
}

// ScheduleSlot represents one scheduled meeting of a course.
// StartTime and EndTime are wall-clock HH:MM:SS strings taken from the
// institution's period timetable; Room is nil when the course has no room.
type ScheduleSlot struct {
	ID        uuid.UUID `db:"id" json:"id"`
	CourseID  uuid.UUID `db:"course_id" json:"course_id"`
	Day       DayCode   `db:"day" json:"day"`
	StartTime string    `db:"start_time" json:"start_time"`
	EndTime   string    `db:"end_time" json:"end_time"`
	Room      *string   `db:"room" json:"room"`
}

// CourseWithSlots bundles a course with its resolved schedule slots.
type CourseWithSlots struct {
	Course
	Slots []ScheduleSlot `json:"slots"`
}
