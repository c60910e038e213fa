package catalog

import "strings"

// RowValues holds one logical row's cell values keyed by field slot.
type RowValues map[Field]string

// Get returns the trimmed value for f, or "" when the slot is absent.
func (r RowValues) Get(f Field) string {
	return strings.TrimSpace(r[f])
}

// SplitRow expands one physical table row into its logical sub-rows. The
// number of non-empty lines in the time-text cell decides the sub-row
// count; every other cell contributes line i, broadcasts its single line,
// or repeats its last line when it has fewer lines than expected. Catalog
// authors merge cells inconsistently, so short cells are padded instead of
// rejected.
func SplitRow(row []string, slots SlotMap) []RowValues {
	rawTime := cellAt(row, slots.Col(FieldTimeText))
	timeLines := nonEmptyLines(rawTime)

	if strings.TrimSpace(rawTime) == "" {
		single := RowValues{}
		for f, idx := range slots {
			single[f] = strings.TrimSpace(cellAt(row, idx))
		}
		return []RowValues{single}
	}

	count := len(timeLines)

	cols := map[Field][]string{}
	for f, idx := range slots {
		lines := nonEmptyLines(cellAt(row, idx))
		if len(lines) == 0 {
			lines = []string{"-"}
		}
		cols[f] = lines
	}

	out := make([]RowValues, 0, count)
	for i := 0; i < count; i++ {
		sub := RowValues{}
		for f, lines := range cols {
			switch {
			case len(lines) >= count:
				sub[f] = lines[i]
			case len(lines) == 1:
				sub[f] = lines[0]
			default:
				sub[f] = lines[len(lines)-1]
			}
		}
		out = append(out, sub)
	}
	return out
}

func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

func nonEmptyLines(s string) []string {
	var lines []string
	for _, l := range strings.Split(s, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}
