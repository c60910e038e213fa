package domain

// DayCode is the fixed 3-letter day vocabulary emitted by the schedule
// resolver, independent of the input glyph set.
type DayCode string

const (
	DayMon DayCode = "MON"
	DayTue DayCode = "TUE"
	DayWed DayCode = "WED"
	DayThu DayCode = "THU"
	DayFri DayCode = "FRI"
	DaySat DayCode = "SAT"
	DaySun DayCode = "SUN"

	// DayTBD marks the sentinel slot stored when a course has no
	// resolvable schedule.
	DayTBD DayCode = "TBD"
)

// Undetermined is the placeholder for any sticky or derived field with no
// resolvable value ("미정" in the source catalog).
const Undetermined = "미정"

// Canonical main-category tags produced by the category normalizer.
const (
	CategoryMajorRequired    = "전공필수"
	CategoryMajorElective    = "전공선택"
	CategoryMajorFoundation  = "전공기초"
	CategoryMicroDegree      = "MD전선"
	CategoryElectiveRequired = "선택필수교양"
	CategoryLiberalRequired  = "교양필수"
	CategoryGeneralLiberal   = "일반교양"
	CategoryGeneralElective  = "일반선택"
)
