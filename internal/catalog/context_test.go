package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sugang/internal/domain"
)

func TestPageContext_Defaults(t *testing.T) {
	ctx := NewPageContext()
	assert.Equal(t, domain.Undetermined, ctx.University)
	assert.Equal(t, domain.Undetermined, ctx.Department)
	assert.Equal(t, domain.Undetermined, ctx.TrackMajor)
	assert.Equal(t, domain.Undetermined, ctx.Grade)
	assert.Empty(t, ctx.LiberalMode)
	assert.False(t, ctx.IsElective)
}

func TestPageContext_LiberalModeMarkers(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"general liberal", "2025-2 일반교양 교과목", domain.CategoryGeneralLiberal},
		{"general liberal spaced", "일 반 교 양 교과목 안내", domain.CategoryGeneralLiberal},
		{"general elective", "일반선택 영역", domain.CategoryGeneralElective},
		{"liberal required", "교양필수 영역", domain.CategoryLiberalRequired},
		{"elective required", "선택필수교양 영역", domain.CategoryElectiveRequired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := NewPageContext()
			ctx.Department = "컴퓨터공학과"
			ctx.TrackMajor = "웹공학트랙"
			ctx.UpdateFromPageText(tt.text)

			assert.Equal(t, tt.want, ctx.LiberalMode)
			// A liberal-mode marker resets department/track.
			assert.Equal(t, domain.Undetermined, ctx.Department)
			assert.Equal(t, domain.Undetermined, ctx.TrackMajor)
			assert.False(t, ctx.IsElective)
		})
	}
}

func TestPageContext_StickyAcrossMarkerlessPages(t *testing.T) {
	ctx := NewPageContext()
	ctx.UpdateFromPageText("선택필수교양 영역")
	assert.Equal(t, domain.CategoryElectiveRequired, ctx.LiberalMode)

	// A continuation page with no markers leaves everything as-is.
	ctx.Department = "기계공학과"
	ctx.UpdateFromPageText("3 ABC101 어떤과목 01 홍교수")
	assert.Equal(t, domain.CategoryElectiveRequired, ctx.LiberalMode)
	assert.Equal(t, "기계공학과", ctx.Department)
}

func TestPageContext_ElectiveGroups(t *testing.T) {
	ctx := NewPageContext()
	ctx.UpdateFromPageText("예술과 스포츠 상상력 교과목")
	assert.True(t, ctx.IsElective)
	assert.Equal(t, "예술과 스포츠 상상력", ctx.ElectiveGroup)
	assert.Equal(t, "예술과 스포츠 상상력", ctx.CourseGroup())

	// Micro Degree is tracked as a group but not flagged as elective;
	// its liberal mode is cleared so the 구분 column decides.
	ctx.LiberalMode = domain.CategoryGeneralLiberal
	ctx.UpdateFromPageText("Micro Degree 과정 안내")
	assert.False(t, ctx.IsElective)
	assert.Equal(t, "Micro Degree 과정", ctx.ElectiveGroup)
	assert.Equal(t, "Micro Degree 과정", ctx.CourseGroup())
	assert.Empty(t, ctx.LiberalMode)
}

func TestPageContext_CollegeHeadingClearsLiberalState(t *testing.T) {
	ctx := NewPageContext()
	ctx.UpdateFromPageText("인문학적 상상력")
	assert.True(t, ctx.IsElective)

	ctx.UpdateFromPageText("공과대학 컴퓨터공학부")
	assert.False(t, ctx.IsElective)
	assert.Empty(t, ctx.ElectiveGroup)
	assert.Empty(t, ctx.LiberalMode)
	assert.Equal(t, domain.Undetermined, ctx.CourseGroup())
	assert.Equal(t, "컴퓨터공학부", ctx.Department)
}

func TestPageContext_DeptAndTrackDetection(t *testing.T) {
	ctx := NewPageContext()
	ctx.UpdateFromPageText("컴퓨터공학과 전공과목")
	assert.Equal(t, "컴퓨터공학과", ctx.Department)
	assert.Equal(t, domain.Undetermined, ctx.TrackMajor)

	// Track detection updates its own field without touching department.
	ctx.UpdateFromPageText("웹공학트랙 교과목")
	assert.Equal(t, "웹공학트랙", ctx.TrackMajor)
	assert.Equal(t, "컴퓨터공학과", ctx.Department)
}
