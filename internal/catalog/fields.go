package catalog

import "strings"

// Field identifies one semantic column of a catalog table.
type Field int

const (
	FieldGrade Field = iota
	FieldCategory
	FieldCode
	FieldName
	FieldSection
	FieldProfessor
	FieldCredit
	FieldLectureHours
	FieldTimeText
	FieldOnlineHours
	FieldRoom

	numFields
)

var fieldNames = [numFields]string{
	FieldGrade:        "grade",
	FieldCategory:     "category",
	FieldCode:         "code",
	FieldName:         "name",
	FieldSection:      "section",
	FieldProfessor:    "professor",
	FieldCredit:       "credit",
	FieldLectureHours: "lecture_hours",
	FieldTimeText:     "time_text",
	FieldOnlineHours:  "online_hours",
	FieldRoom:         "room",
}

func (f Field) String() string {
	if f < 0 || f >= numFields {
		return "unknown"
	}
	return fieldNames[f]
}

// fieldKeywords maps each field to the header keywords that identify its
// column. Matching is substring-based after stripping all whitespace, so
// headers broken across lines ("요일 및\n교시") still resolve.
var fieldKeywords = [numFields][]string{
	FieldGrade:        {"학년"},
	FieldCategory:     {"구분"},
	FieldCode:         {"과목코드"},
	FieldName:         {"교과목명"},
	FieldSection:      {"분반"},
	FieldProfessor:    {"교수명"},
	FieldCredit:       {"학점"},
	FieldLectureHours: {"시간"},
	FieldTimeText:     {"요일 및 교시"},
	FieldOnlineHours:  {"온라인강의"},
	FieldRoom:         {"강의실"},
}

// SlotMap maps semantic fields to column positions within a table.
// A resolved map persists across header-less continuation tables; it is
// the only state that survives a failed header resolution.
type SlotMap map[Field]int

// Col returns the column index for f, or -1 if the field was not resolved.
func (m SlotMap) Col(f Field) int {
	if idx, ok := m[f]; ok {
		return idx
	}
	return -1
}

// ResolveHeader maps a header row to a SlotMap. The first column whose
// whitespace-stripped text contains a field's keyword wins that slot.
// Returns nil unless the code, name, and time_text slots all resolved;
// callers then fall back to the previously cached map.
func ResolveHeader(header []string) SlotMap {
	cleaned := make([]string, len(header))
	for i, h := range header {
		cleaned[i] = stripSpace(h)
	}

	m := SlotMap{}
	for f := Field(0); f < numFields; f++ {
		for _, kw := range fieldKeywords[f] {
			kw = stripSpace(kw)
			for i, col := range cleaned {
				if strings.Contains(col, kw) {
					m[f] = i
					break
				}
			}
			if _, ok := m[f]; ok {
				break
			}
		}
	}

	if m.Col(FieldCode) < 0 || m.Col(FieldName) < 0 || m.Col(FieldTimeText) < 0 {
		return nil
	}
	return m
}

// MergeHeaderRows concatenates two header rows cell-wise with a separating
// space, for tables whose header spans two printed lines.
func MergeHeaderRows(top, bottom []string) []string {
	n := len(top)
	if len(bottom) < n {
		n = len(bottom)
	}
	merged := make([]string, n)
	for i := 0; i < n; i++ {
		merged[i] = strings.TrimSpace(top[i] + " " + bottom[i])
	}
	return merged
}

// stripSpace removes every whitespace rune, including full-width spaces.
func stripSpace(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case ' ', '\t', '\n', '\r', '　':
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// isBlank reports whether a cell carries no value: empty after trimming,
// or the catalog's "same as above" / "none" dash.
func isBlank(s string) bool {
	t := strings.TrimSpace(s)
	return t == "" || t == "-"
}
