// Package xlsxexport renders the stored course catalog as an Excel
// workbook for download.
package xlsxexport

import (
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"sugang/internal/domain"
)

const sheetName = "Courses"

var headerRow = []interface{}{
	"과목코드", "교과목명", "구분", "그룹", "대학", "학부(과)", "트랙(전공)",
	"학년", "분반", "학점", "시간", "온라인강의", "강의실", "교수명", "요일 및 교시", "페이지",
}

// Write renders the given courses into a single-sheet xlsx workbook and
// returns the file bytes.
func Write(courses []domain.CourseWithSlots) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("xlsx export: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("xlsx export: %w", err)
	}

	if err := f.SetSheetRow(sheetName, "A1", &headerRow); err != nil {
		return nil, fmt.Errorf("xlsx export header: %w", err)
	}

	for i, course := range courses {
		row := []interface{}{
			course.Code,
			course.Name,
			course.MainCategory,
			course.CourseGroup,
			course.University,
			course.Department,
			course.TrackMajor,
			course.Grade,
			course.Section,
			course.Credit,
			course.LectureHours,
			course.OnlineHours,
			course.Room,
			course.Professor,
			scheduleSummary(course.Slots),
			course.Page,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("xlsx export row %d: %w", i+2, err)
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("xlsx export row %d: %w", i+2, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx export: %w", err)
	}
	return buf.Bytes(), nil
}

// scheduleSummary renders the slots of one course as a single cell, one
// meeting per "DAY HH:MM:SS-HH:MM:SS" segment.
func scheduleSummary(slots []domain.ScheduleSlot) string {
	if len(slots) == 0 {
		return ""
	}
	parts := make([]string, 0, len(slots))
	for _, s := range slots {
		if s.Day == domain.DayTBD {
			parts = append(parts, string(domain.DayTBD))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s %s-%s", s.Day, s.StartTime, s.EndTime))
	}
	return strings.Join(parts, ", ")
}

// BuildFilename returns a dated download name for the exported workbook.
func BuildFilename() string {
	return fmt.Sprintf("course_catalog_%s.xlsx", time.Now().Format("20060102"))
}
