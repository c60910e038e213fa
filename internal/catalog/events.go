package catalog

import "log"

// ParseFailure records one schedule text that yielded no slots. Failures
// never abort a run; they exist for data-quality monitoring.
type ParseFailure struct {
	Page       int    `json:"page"`
	CourseCode string `json:"course_code"`
	TimeText   string `json:"time_text"`
}

// FailureLog collects schedule parse failures for one ingestion run.
type FailureLog struct {
	entries []ParseFailure
}

// Record logs and stores one parse failure.
func (l *FailureLog) Record(page int, courseCode, timeText string) {
	log.Printf("catalog: schedule parse failure on page %d (course %s): %q", page, courseCode, timeText)
	l.entries = append(l.entries, ParseFailure{Page: page, CourseCode: courseCode, TimeText: timeText})
}

// Entries returns the recorded failures in document order.
func (l *FailureLog) Entries() []ParseFailure {
	return l.entries
}

// Len returns the number of recorded failures.
func (l *FailureLog) Len() int {
	return len(l.entries)
}
