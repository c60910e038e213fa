package catalog

import (
	"strings"

	"sugang/internal/domain"
)

// NormalizeCategory maps raw 구분 cell text to a canonical main-category
// tag, or "" when no rule matches. Abbreviated major prefixes expand to
// their full tags; MD전선 is stored verbatim.
func NormalizeCategory(raw string) string {
	t := stripSpace(raw)
	if t == "" {
		return ""
	}

	switch {
	case strings.HasPrefix(t, domain.CategoryMicroDegree):
		return domain.CategoryMicroDegree
	case strings.HasPrefix(t, "전필"):
		return domain.CategoryMajorRequired
	case strings.HasPrefix(t, "전선"):
		return domain.CategoryMajorElective
	case strings.HasPrefix(t, "전기"):
		return domain.CategoryMajorFoundation
	case strings.Contains(t, domain.CategoryElectiveRequired) || strings.HasPrefix(t, "선필교양"):
		return domain.CategoryElectiveRequired
	case strings.Contains(t, domain.CategoryLiberalRequired) || strings.HasPrefix(t, "교필"):
		return domain.CategoryLiberalRequired
	case strings.Contains(t, domain.CategoryGeneralLiberal):
		return domain.CategoryGeneralLiberal
	}
	return ""
}

// ResolveMainCategory decides the final main_category for one sub-row.
// lastResolved is the run-level carry-forward value from earlier rows; the
// returned carry is the value the next row should carry (updated only when
// a non-blank cell resolved, matching the source catalog's convention).
//
// The blank-cell and non-blank-cell branches check elective mode and the
// parsed cell text in different orders. That asymmetry is deliberate and
// must not be unified.
func ResolveMainCategory(rawCell string, ctx *PageContext, lastResolved string) (category, carry string) {
	cell := stripSpace(rawCell)
	inElective := ctx.IsElective && ctx.ElectiveGroup != microDegreeGroup

	if cell == "" || cell == "-" {
		switch {
		case ctx.LiberalMode == domain.CategoryElectiveRequired || inElective:
			return domain.CategoryElectiveRequired, lastResolved
		case ctx.LiberalMode != "":
			return ctx.LiberalMode, lastResolved
		case lastResolved != "":
			return lastResolved, lastResolved
		default:
			return domain.Undetermined, lastResolved
		}
	}

	category = NormalizeCategory(cell)
	switch {
	case category != "":
	case ctx.LiberalMode != "":
		category = ctx.LiberalMode
	case inElective:
		category = domain.CategoryElectiveRequired
	default:
		category = domain.Undetermined
	}
	return category, category
}
