package catalog

import (
	"strings"

	"sugang/internal/domain"
)

// ParsedCourse is one normalized catalog record as produced by the engine,
// before the storage boundary assigns identifiers.
type ParsedCourse struct {
	Code                string
	Name                string
	MainCategory        string
	CourseGroup         string
	University          string
	Department          string
	TrackMajor          string
	Grade               string
	Section             string
	Credit              string
	LectureHours        string
	OnlineHours         string
	Room                string
	Professor           string
	Page                int
	CrossEnrollmentType string

	// TimeText is the canonical schedule text; Slots are its resolved
	// meetings (possibly empty, see FailureLog).
	TimeText string
	Slots    []Slot
}

// Engine folds an extracted catalog document into normalized course
// records. All carry-forward state lives here, so one Engine handles
// exactly one run; create a fresh Engine per document. Processing is
// strictly sequential in document order: page context, the cached slot
// map, and every carry-forward value feed later pages and rows.
type Engine struct {
	ctx   *PageContext
	slots SlotMap

	lastCategory string
	lastCode     string
	lastName     string

	failures FailureLog
}

// NewEngine returns an engine with undetermined context and no cached
// header mapping.
func NewEngine() *Engine {
	return &Engine{ctx: NewPageContext()}
}

// Failures exposes the schedule parse failures recorded during the run.
func (e *Engine) Failures() []ParseFailure {
	return e.failures.Entries()
}

// ParseDocument processes every page in order and returns the full record
// set. A document with no pages is the one fatal condition.
func (e *Engine) ParseDocument(doc *domain.ExtractedDocument) ([]ParsedCourse, error) {
	if doc == nil || len(doc.Pages) == 0 {
		return nil, domain.ErrEmptyDocument
	}

	var records []ParsedCourse
	for _, page := range doc.Pages {
		e.parsePage(page, &records)
	}
	return records, nil
}

func (e *Engine) parsePage(page domain.ExtractedPage, records *[]ParsedCourse) {
	e.ctx.UpdateFromPageText(page.Text)

	for _, table := range page.Tables {
		e.parseTable(table, page.Number, records)
	}
}

// resolveTableHeader resolves a table's header and returns the index of
// the first data row, or ok=false when the table must be skipped. The
// 교양필수 section prints two-line headers, merged before matching; other
// sections fall back to the cached slot map when row 0 is not a header.
func (e *Engine) resolveTableHeader(table domain.RawTable) (start int, ok bool) {
	if e.ctx.LiberalMode == domain.CategoryLiberalRequired {
		header := table[0]
		if !allBlank(table[1]) {
			header = MergeHeaderRows(table[0], table[1])
		}
		m := ResolveHeader(header)
		if m == nil {
			return 0, false
		}
		e.slots = m
		return 2, true
	}

	if m := ResolveHeader(table[0]); m != nil {
		e.slots = m
		return 1, true
	}
	// Header-less continuation table: reuse the cached mapping.
	if e.slots == nil {
		return 0, false
	}
	return 0, true
}

func (e *Engine) parseTable(table domain.RawTable, pageNum int, records *[]ParsedCourse) {
	if len(table) < 2 {
		return
	}

	start, ok := e.resolveTableHeader(table)
	if !ok {
		return
	}

	tableGrade := e.ctx.Grade

	for _, row := range table[start:] {
		// Grade is sticky at page scope and at row scope within the
		// table: a non-blank cell updates both.
		if raw := cellAt(row, e.slots.Col(FieldGrade)); !isBlank(raw) {
			g := strings.TrimSpace(raw)
			e.ctx.Grade = g
			tableGrade = g
		}

		for _, sub := range SplitRow(row, e.slots) {
			e.emitRecord(sub, tableGrade, pageNum, records)
		}
	}
}

func (e *Engine) emitRecord(sub RowValues, grade string, pageNum int, records *[]ParsedCourse) {
	// Blank code/name cells mean "same course as above", used for
	// multi-schedule courses printed once.
	code := sub.Get(FieldCode)
	if isBlank(code) {
		code = e.lastCode
	} else {
		e.lastCode = code
	}

	name := sub.Get(FieldName)
	if isBlank(name) {
		name = e.lastName
	} else {
		e.lastName = name
	}

	if code == "" {
		return
	}

	category, carry := ResolveMainCategory(sub.Get(FieldCategory), e.ctx, e.lastCategory)
	e.lastCategory = carry

	timeText := NormalizeTimeText(sub.Get(FieldTimeText))
	slots := ResolveTimeText(timeText)
	if len(slots) == 0 && !IsNoSchedule(timeText) {
		e.failures.Record(pageNum, code, timeText)
	}

	section := sub.Get(FieldSection)
	if section == "" {
		section = "000"
	}
	onlineHours := sub.Get(FieldOnlineHours)
	if onlineHours == "" {
		onlineHours = "-"
	}

	*records = append(*records, ParsedCourse{
		Code:         code,
		Name:         name,
		MainCategory: category,
		CourseGroup:  e.ctx.CourseGroup(),
		University:   e.ctx.University,
		Department:   e.ctx.Department,
		TrackMajor:   e.ctx.TrackMajor,
		Grade:        grade,
		Section:      section,
		Credit:       sub.Get(FieldCredit),
		LectureHours: sub.Get(FieldLectureHours),
		OnlineHours:  onlineHours,
		Room:         sub.Get(FieldRoom),
		Professor:    sub.Get(FieldProfessor),
		Page:         pageNum,
		TimeText:     timeText,
		Slots:        slots,
	})
}

func allBlank(row []string) bool {
	for _, c := range row {
		if !isBlank(c) {
			return false
		}
	}
	return true
}
