package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sugang/internal/domain"
)

func catalogHeader() []string {
	return []string{
		"학년", "구분", "과목코드", "교과목명", "분반", "교수명",
		"학점", "시간", "요일 및 교시", "온라인강의", "강의실",
	}
}

func singlePageDoc(text string, tables ...domain.RawTable) *domain.ExtractedDocument {
	return &domain.ExtractedDocument{
		Pages: []domain.ExtractedPage{{Number: 1, Text: text, Tables: tables}},
	}
}

func TestParseDocument_EmptyDocument(t *testing.T) {
	_, err := NewEngine().ParseDocument(nil)
	assert.ErrorIs(t, err, domain.ErrEmptyDocument)

	_, err = NewEngine().ParseDocument(&domain.ExtractedDocument{})
	assert.ErrorIs(t, err, domain.ErrEmptyDocument)
}

func TestParseDocument_BasicRow(t *testing.T) {
	doc := singlePageDoc("컴퓨터공학과",
		domain.RawTable{
			catalogHeader(),
			{"3", "", "CS201", "자료구조", "01", "김교수", "3", "3", "월3-4/수3", "-", "501"},
		},
	)

	records, err := NewEngine().ParseDocument(doc)
	require.NoError(t, err)
	require.Len(t, records, 1)

	r := records[0]
	assert.Equal(t, "CS201", r.Code)
	assert.Equal(t, "자료구조", r.Name)
	assert.Equal(t, domain.Undetermined, r.MainCategory)
	assert.Equal(t, domain.Undetermined, r.CourseGroup)
	assert.Equal(t, "컴퓨터공학과", r.Department)
	assert.Equal(t, "3", r.Grade)
	assert.Equal(t, "01", r.Section)
	assert.Equal(t, "김교수", r.Professor)
	assert.Equal(t, "-", r.OnlineHours)
	assert.Equal(t, 1, r.Page)

	require.Len(t, r.Slots, 2)
	assert.Equal(t, Slot{Day: domain.DayMon, Start: "10:30:00", End: "13:15:00"}, r.Slots[0])
	assert.Equal(t, Slot{Day: domain.DayWed, Start: "10:30:00", End: "11:45:00"}, r.Slots[1])
}

func TestParseDocument_CodeNameCarryForward(t *testing.T) {
	doc := singlePageDoc("컴퓨터공학과",
		domain.RawTable{
			catalogHeader(),
			{"3", "전필", "CS101", "Intro", "01", "김교수", "3", "3", "월1", "-", "101"},
			{"", "-", "-", "-", "02", "이교수", "3", "3", "화1", "-", "102"},
		},
	)

	records, err := NewEngine().ParseDocument(doc)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "CS101", records[1].Code)
	assert.Equal(t, "Intro", records[1].Name)
	assert.Equal(t, "3", records[1].Grade, "blank grade inherits the previous row's value")
	assert.Equal(t, domain.CategoryMajorRequired, records[1].MainCategory, "blank category reuses the run carry-forward")
}

func TestParseDocument_EmptyCodeDropped(t *testing.T) {
	doc := singlePageDoc("컴퓨터공학과",
		domain.RawTable{
			catalogHeader(),
			{"1", "", "", "이름만있음", "01", "김교수", "3", "3", "월1", "-", "101"},
		},
	)

	records, err := NewEngine().ParseDocument(doc)
	require.NoError(t, err)
	assert.Empty(t, records, "a row with no carried-forward code emits nothing")
}

func TestParseDocument_MultilineRowExpansion(t *testing.T) {
	doc := singlePageDoc("컴퓨터공학과",
		domain.RawTable{
			catalogHeader(),
			{"2", "전선", "CS301", "운영체제", "01", "박교수", "3", "3", "월1\n수2", "-", "301\n302"},
		},
	)

	records, err := NewEngine().ParseDocument(doc)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "CS301", records[0].Code)
	assert.Equal(t, "CS301", records[1].Code)
	assert.Equal(t, "301", records[0].Room)
	assert.Equal(t, "302", records[1].Room)
	assert.Equal(t, "박교수", records[1].Professor)
	require.Len(t, records[0].Slots, 1)
	assert.Equal(t, domain.DayMon, records[0].Slots[0].Day)
	require.Len(t, records[1].Slots, 1)
	assert.Equal(t, domain.DayWed, records[1].Slots[0].Day)
}

func TestParseDocument_HeaderlessContinuationTable(t *testing.T) {
	doc := &domain.ExtractedDocument{
		Pages: []domain.ExtractedPage{
			{
				Number: 1,
				Text:   "컴퓨터공학과",
				Tables: []domain.RawTable{{
					catalogHeader(),
					{"1", "전기", "CS100", "프로그래밍입문", "01", "김교수", "3", "3", "월1", "-", "101"},
				}},
			},
			{
				Number: 2,
				Text:   "",
				Tables: []domain.RawTable{{
					// No header: inherits page 1's slot map.
					{"2", "전선", "CS150", "이산수학", "01", "이교수", "3", "3", "화1", "-", "102"},
					{"", "", "-", "-", "02", "최교수", "3", "3", "금1", "-", "103"},
				}},
			},
		},
	}

	records, err := NewEngine().ParseDocument(doc)
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "CS150", records[1].Code)
	assert.Equal(t, 2, records[1].Page)
	assert.Equal(t, "CS150", records[2].Code, "carry-forward crosses the page boundary")
	assert.Equal(t, "컴퓨터공학과", records[1].Department, "header-less pages keep the department")
}

func TestParseDocument_UnresolvableTableSkipped(t *testing.T) {
	// A legend table before any header resolution produces no records.
	doc := singlePageDoc("안내",
		domain.RawTable{
			{"범례", "설명"},
			{"M", "야간교시"},
		},
	)

	records, err := NewEngine().ParseDocument(doc)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestParseDocument_TwoLineHeader(t *testing.T) {
	doc := singlePageDoc("교양필수 영역",
		domain.RawTable{
			{"학년", "구분", "과목", "교과목명", "분반", "교수명", "학점", "시간", "요일 및", "온라인강의", "강의실"},
			{"", "", "코드", "", "", "", "", "", "교시", "", ""},
			{"1", "", "GE101", "글쓰기", "01", "정교수", "2", "2", "화1", "-", "201"},
		},
	)

	records, err := NewEngine().ParseDocument(doc)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "GE101", records[0].Code)
	assert.Equal(t, domain.CategoryLiberalRequired, records[0].MainCategory)
}

func TestParseDocument_ElectiveImaginationPage(t *testing.T) {
	doc := singlePageDoc("예술과 스포츠 상상력",
		domain.RawTable{
			catalogHeader(),
			{"1", "", "AS101", "현대무용", "01", "한교수", "2", "2", "금2-3M", "-", "체육관"},
		},
	)

	records, err := NewEngine().ParseDocument(doc)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, domain.CategoryElectiveRequired, records[0].MainCategory)
	assert.Equal(t, "예술과 스포츠 상상력", records[0].CourseGroup)
}

func TestParseDocument_ScheduleFailureLogged(t *testing.T) {
	doc := singlePageDoc("컴퓨터공학과",
		domain.RawTable{
			catalogHeader(),
			{"1", "전필", "CS110", "강의실미정과목", "01", "김교수", "3", "3", "추후공지", "-", "101"},
			{"1", "전필", "CS111", "시간표없음", "01", "김교수", "3", "3", "미정", "-", "101"},
		},
	)

	engine := NewEngine()
	records, err := engine.ParseDocument(doc)
	require.NoError(t, err)
	require.Len(t, records, 2, "unparsable schedules never drop the record")

	assert.Empty(t, records[0].Slots)
	assert.Empty(t, records[1].Slots)

	failures := engine.Failures()
	require.Len(t, failures, 1, "미정 is a valid no-schedule value, not a failure")
	assert.Equal(t, "CS110", failures[0].CourseCode)
	assert.Equal(t, 1, failures[0].Page)
}

func TestParseDocument_IsolatedRuns(t *testing.T) {
	doc := singlePageDoc("선택필수교양",
		domain.RawTable{
			catalogHeader(),
			{"1", "", "GE201", "빅데이터입문", "01", "오교수", "3", "3", "월1", "-", "401"},
		},
	)

	first, err := NewEngine().ParseDocument(doc)
	require.NoError(t, err)

	// A fresh engine sees none of the previous run's carry-forward state.
	second, err := NewEngine().ParseDocument(singlePageDoc("안내",
		domain.RawTable{
			catalogHeader(),
			{"1", "", "XX100", "독립과목", "01", "유교수", "3", "3", "월1", "-", "102"},
		},
	))
	require.NoError(t, err)

	assert.Equal(t, domain.CategoryElectiveRequired, first[0].MainCategory)
	assert.Equal(t, domain.Undetermined, second[0].MainCategory)
}
