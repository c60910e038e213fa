package catalog

import (
	"regexp"
	"strings"

	"sugang/internal/domain"
)

// PageContext holds the sticky fields carried from one catalog page to the
// next. It is mutated once per page (UpdateFromPageText) plus the per-row
// grade update in the assembler; later pages inherit whatever an earlier
// page established until a reset marker appears.
type PageContext struct {
	University string
	Department string
	TrackMajor string
	Grade      string

	// LiberalMode is the page-level liberal-arts category marker
	// (일반교양 / 일반선택 / 교양필수 / 선택필수교양), empty when none.
	LiberalMode string

	// IsElective is true while inside an imagination/elective topic
	// block. Micro Degree pages track ElectiveGroup without setting it.
	IsElective    bool
	ElectiveGroup string
}

// NewPageContext returns a context with every sticky field undetermined.
func NewPageContext() *PageContext {
	return &PageContext{
		University: domain.Undetermined,
		Department: domain.Undetermined,
		TrackMajor: domain.Undetermined,
		Grade:      domain.Undetermined,
	}
}

// microDegreeGroup is the one elective group that is tracked without the
// imagination flag; its courses keep their own 구분 cell semantics.
const microDegreeGroup = "Micro Degree 과정"

// electiveGroups maps whitespace-stripped topic keys to display labels.
// Order matters: the first key found in the page text wins.
var electiveGroups = []struct {
	key   string
	label string
}{
	{"예술과스포츠상상력", "예술과 스포츠 상상력"},
	{"인문학적상상력", "인문학적 상상력"},
	{"사회과학적상상력", "사회과학적 상상력"},
	{"과학기술상상력", "과학기술 상상력"},
	{"융합적상상력", "융합적 상상력"},
	{"한국어집중", "한국어 집중"},
	{"MicroDegree과정", microDegreeGroup},
}

var (
	spacedGeneralLiberal  = regexp.MustCompile(`일\s*반\s*교\s*양`)
	spacedGeneralElective = regexp.MustCompile(`일\s*반\s*선\s*택`)
	spacedLiberalRequired = regexp.MustCompile(`교\s*양\s*필\s*수`)
	collegeHeading        = regexp.MustCompile(`[가-힣A-Za-z]+대학`)
	deptOrTrack           = regexp.MustCompile(`([가-힣A-Za-z0-9]+학부|[가-힣A-Za-z0-9]+학과|[가-힣A-Za-z0-9]+트랙)`)
)

// UpdateFromPageText runs the page-level state machine over raw page text,
// before any table on that page is processed. Pages with no markers leave
// the context untouched (sticky).
func (ctx *PageContext) UpdateFromPageText(text string) {
	clean := stripSpace(text)

	// Liberal-mode markers, fixed priority, first match wins. Each one
	// leaves any elective block and resets department/track.
	switch {
	case spacedGeneralLiberal.MatchString(text) || strings.Contains(clean, domain.CategoryGeneralLiberal):
		ctx.setLiberalMode(domain.CategoryGeneralLiberal)
	case spacedGeneralElective.MatchString(text) || strings.Contains(clean, domain.CategoryGeneralElective):
		ctx.setLiberalMode(domain.CategoryGeneralElective)
	case spacedLiberalRequired.MatchString(text) || strings.Contains(clean, domain.CategoryLiberalRequired):
		ctx.setLiberalMode(domain.CategoryLiberalRequired)
	case strings.Contains(clean, domain.CategoryElectiveRequired):
		ctx.setLiberalMode(domain.CategoryElectiveRequired)
	}

	// Elective/imagination group detection, independent of the above.
	detected := ""
	for _, g := range electiveGroups {
		if strings.Contains(clean, g.key) {
			detected = g.label
			break
		}
	}

	switch {
	case detected == microDegreeGroup:
		// Tracked like an elective block but not flagged as one; the
		// category cell plus context decide each row's 구분.
		ctx.IsElective = false
		ctx.ElectiveGroup = detected
		ctx.LiberalMode = ""
		ctx.resetDeptTrack()
	case detected != "":
		ctx.IsElective = true
		ctx.ElectiveGroup = detected
		ctx.resetDeptTrack()
	case collegeHeading.MatchString(text):
		// A "...대학" heading with no group marker means we moved into a
		// major-courses section: clear all liberal/elective state.
		ctx.IsElective = false
		ctx.ElectiveGroup = ""
		ctx.LiberalMode = ""
	}

	// Department / track free-text detection updates its own field
	// without resetting the other.
	if m := deptOrTrack.FindString(text); m != "" {
		if strings.Contains(m, "트랙") {
			ctx.TrackMajor = m
		} else {
			ctx.Department = m
		}
	}
}

func (ctx *PageContext) setLiberalMode(mode string) {
	ctx.LiberalMode = mode
	ctx.IsElective = false
	ctx.ElectiveGroup = ""
	ctx.resetDeptTrack()
}

func (ctx *PageContext) resetDeptTrack() {
	ctx.Department = domain.Undetermined
	ctx.TrackMajor = domain.Undetermined
}

// CourseGroup returns the group label stored on emitted records: the
// elective block name while inside an imagination or Micro Degree block,
// otherwise undetermined.
func (ctx *PageContext) CourseGroup() string {
	if ctx.IsElective || ctx.ElectiveGroup == microDegreeGroup {
		return ctx.ElectiveGroup
	}
	return domain.Undetermined
}
