package catalog

import (
	"regexp"
	"strings"

	"sugang/internal/domain"
)

// Slot is one resolved meeting: a day code plus the wall-clock span from
// the start period's start to the end period's end.
type Slot struct {
	Day   domain.DayCode
	Start string
	End   string
}

var (
	sepRun = regexp.MustCompile(`[,/]+`)

	// daySegment extracts "day glyph + period expression" pieces out of a
	// segment that still glues several days together (수7-8목8M-9M).
	daySegment = regexp.MustCompile(`[월화수목금토일][0-9M\-~]+`)

	segmentPattern = regexp.MustCompile(`^([월화수목금토일])(.+)$`)

	// periodPattern is the period-expression grammar:
	// start digits, optional M, optional range separator, optional end
	// digits, optional M.
	periodPattern = regexp.MustCompile(`^(\d+)(M?)(?:[~-])?(\d+)?(M?)$`)
)

func isDayGlyph(r rune) bool {
	_, ok := dayGlyphs[r]
	return ok
}

// IsNoSchedule reports whether a time-text value legitimately means "no
// schedule" rather than a parse failure.
func IsNoSchedule(text string) bool {
	t := strings.TrimSpace(text)
	return t == "" || t == domain.Undetermined || t == "-"
}

// NormalizeTimeText rewrites raw schedule text into canonical form:
// "/"-separated day segments with "-" as the only range separator and no
// whitespace. Normalizing an already-canonical string is a no-op.
func NormalizeTimeText(raw string) string {
	if raw == "" {
		return ""
	}

	s := strings.ReplaceAll(raw, "\n", "/")
	s = stripSpace(s)
	s = strings.NewReplacer("~", "-", "–", "-", "／", "/").Replace(s)

	// Two day glyphs with nothing between them start separate segments.
	runes := []rune(s)
	var b strings.Builder
	for i, r := range runes {
		b.WriteRune(r)
		if isDayGlyph(r) && i+1 < len(runes) && isDayGlyph(runes[i+1]) {
			b.WriteRune('/')
		}
	}

	s = sepRun.ReplaceAllString(b.String(), "/")
	return strings.Trim(s, "/")
}

// SplitSegments breaks normalized time text into per-day segments,
// re-splitting any segment that still carries multiple day glyphs.
func SplitSegments(text string) []string {
	var segments []string
	for _, seg := range strings.Split(text, "/") {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		if pieces := daySegment.FindAllString(seg, -1); len(pieces) > 0 {
			segments = append(segments, pieces...)
		} else {
			segments = append(segments, seg)
		}
	}
	return segments
}

// ResolveTimeText parses a schedule text cell into concrete slots. The
// input may be raw or already normalized. Segments without a recognizable
// day glyph, and period codes absent from the day's timetable, drop that
// segment only; callers decide whether a fully empty result is a failure
// (see IsNoSchedule).
func ResolveTimeText(text string) []Slot {
	normalized := NormalizeTimeText(text)
	if IsNoSchedule(normalized) {
		return nil
	}

	var slots []Slot
	for _, seg := range SplitSegments(normalized) {
		m := segmentPattern.FindStringSubmatch(seg)
		if m == nil {
			continue
		}
		day := []rune(m[1])[0]

		// Half-term markers (상반기/하반기) are noise for slot resolution.
		expr := strings.ReplaceAll(m[2], "상반기", "")
		expr = strings.ReplaceAll(expr, "하반기", "")
		expr = strings.TrimSpace(expr)

		if slot, ok := resolveSegment(day, expr); ok {
			slots = append(slots, slot)
		}
	}
	return slots
}

// resolveSegment resolves one day glyph plus period expression against the
// day's timetable. A range spans from the start period's start clock to
// the end period's end clock; a single period is its own range.
func resolveSegment(day rune, expr string) (Slot, bool) {
	code, ok := dayGlyphs[day]
	if !ok {
		return Slot{}, false
	}

	m := periodPattern.FindStringSubmatch(expr)
	if m == nil {
		return Slot{}, false
	}
	startNum, startM, endNum, endM := m[1], m[2], m[3], m[4]

	start := startNum + startM
	end := start
	if endNum != "" {
		end = endNum + endM
	}

	table := timetableFor(day)
	startBlock, ok := table[start]
	if !ok {
		return Slot{}, false
	}
	endBlock, ok := table[end]
	if !ok {
		return Slot{}, false
	}

	return Slot{Day: code, Start: startBlock.Start, End: endBlock.End}, true
}
