package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fullHeader = []string{
	"학년", "구분", "과목코드", "교과목명", "분반", "교수명",
	"학점", "시간", "요일 및 교시", "온라인강의", "강의실",
}

func TestResolveHeader_AllFields(t *testing.T) {
	m := ResolveHeader(fullHeader)
	require.NotNil(t, m)

	assert.Equal(t, 0, m.Col(FieldGrade))
	assert.Equal(t, 1, m.Col(FieldCategory))
	assert.Equal(t, 2, m.Col(FieldCode))
	assert.Equal(t, 3, m.Col(FieldName))
	assert.Equal(t, 4, m.Col(FieldSection))
	assert.Equal(t, 5, m.Col(FieldProfessor))
	assert.Equal(t, 6, m.Col(FieldCredit))
	assert.Equal(t, 7, m.Col(FieldLectureHours))
	assert.Equal(t, 8, m.Col(FieldTimeText))
	assert.Equal(t, 9, m.Col(FieldOnlineHours))
	assert.Equal(t, 10, m.Col(FieldRoom))
}

func TestResolveHeader_WhitespaceTolerant(t *testing.T) {
	m := ResolveHeader([]string{"과목\n코드", "교과목명", "요일 및\n교시"})
	require.NotNil(t, m)
	assert.Equal(t, 0, m.Col(FieldCode))
	assert.Equal(t, 2, m.Col(FieldTimeText))
}

func TestResolveHeader_MissingRequiredSlot(t *testing.T) {
	// No time_text column: resolution must fail as a whole.
	assert.Nil(t, ResolveHeader([]string{"과목코드", "교과목명", "학점"}))
	// Data rows are not headers.
	assert.Nil(t, ResolveHeader([]string{"3", "전필", "CS201", "자료구조", "01"}))
}

func TestResolveHeader_FirstMatchingColumnWins(t *testing.T) {
	// 시간 also appears inside 요일및교시-like headers placed later; the
	// first column containing the keyword takes the slot.
	m := ResolveHeader([]string{"과목코드", "교과목명", "시간", "요일 및 교시"})
	require.NotNil(t, m)
	assert.Equal(t, 2, m.Col(FieldLectureHours))
	assert.Equal(t, 3, m.Col(FieldTimeText))
}

func TestMergeHeaderRows(t *testing.T) {
	merged := MergeHeaderRows(
		[]string{"요일 및", "과목", ""},
		[]string{"교시", "코드", "강의실"},
	)
	assert.Equal(t, []string{"요일 및 교시", "과목 코드", "강의실"}, merged)

	m := ResolveHeader(append([]string{"교과목명"}, MergeHeaderRows(
		[]string{"과목", "요일 및"},
		[]string{"코드", "교시"},
	)...))
	require.NotNil(t, m)
	assert.Equal(t, 1, m.Col(FieldCode))
	assert.Equal(t, 2, m.Col(FieldTimeText))
}

func TestIsBlank(t *testing.T) {
	assert.True(t, isBlank(""))
	assert.True(t, isBlank("  "))
	assert.True(t, isBlank("-"))
	assert.True(t, isBlank(" - "))
	assert.False(t, isBlank("0"))
	assert.False(t, isBlank("미정"))
}
