package catalog

import "sugang/internal/domain"

// PeriodBlock is one teaching block on the institution's timetable grid.
// Boundary minutes are institution data, not derived arithmetic: the night
// blocks carry irregular gaps that no formula documents.
type PeriodBlock struct {
	Start string
	End   string
}

// monWedThuTable maps period codes to 75-minute teaching blocks. Adjacent
// period pairs (and their M variants) share one block.
var monWedThuTable = map[string]PeriodBlock{
	// Daytime blocks
	"1":  {"09:00:00", "10:15:00"},
	"2":  {"09:00:00", "10:15:00"},
	"1M": {"09:00:00", "10:15:00"},

	"2M": {"10:30:00", "11:45:00"},
	"3":  {"10:30:00", "11:45:00"},
	"3M": {"10:30:00", "11:45:00"},

	"4":  {"12:00:00", "13:15:00"},
	"5":  {"12:00:00", "13:15:00"},
	"4M": {"12:00:00", "13:15:00"},

	"5M": {"13:30:00", "14:45:00"},
	"6":  {"13:30:00", "14:45:00"},
	"6M": {"13:30:00", "14:45:00"},

	"7":  {"15:00:00", "16:15:00"},
	"8":  {"15:00:00", "16:15:00"},
	"7M": {"15:00:00", "16:15:00"},

	"8M": {"16:30:00", "17:45:00"},
	"9":  {"16:30:00", "17:45:00"},
	"9M": {"16:30:00", "17:45:00"},

	// Night blocks; 10M shares the 10-11 block
	"10":  {"18:00:00", "19:15:00"},
	"11":  {"18:00:00", "19:15:00"},
	"10M": {"18:00:00", "19:15:00"},

	"11M": {"19:25:00", "20:40:00"},
	"12":  {"19:25:00", "20:40:00"},
	"12M": {"19:25:00", "20:40:00"},

	"13":  {"20:45:00", "22:00:00"},
	"14":  {"20:45:00", "22:00:00"},
	"13M": {"20:45:00", "22:00:00"},
	"14M": {"20:45:00", "22:00:00"},
}

// tueFriTable maps period codes to 50-minute blocks, contiguous from 09:00
// with a short break before period 11 and a 5-minute gap around 12-13.
var tueFriTable = map[string]PeriodBlock{
	"1":   {"09:00:00", "09:50:00"},
	"1M":  {"09:00:00", "09:50:00"},
	"2":   {"10:00:00", "10:50:00"},
	"2M":  {"10:00:00", "10:50:00"},
	"3":   {"11:00:00", "11:50:00"},
	"3M":  {"11:00:00", "11:50:00"},
	"4":   {"12:00:00", "12:50:00"},
	"4M":  {"12:00:00", "12:50:00"},
	"5":   {"13:00:00", "13:50:00"},
	"5M":  {"13:00:00", "13:50:00"},
	"6":   {"14:00:00", "14:50:00"},
	"6M":  {"14:00:00", "14:50:00"},
	"7":   {"15:00:00", "15:50:00"},
	"7M":  {"15:00:00", "15:50:00"},
	"8":   {"16:00:00", "16:50:00"},
	"8M":  {"16:00:00", "16:50:00"},
	"9":   {"17:00:00", "17:50:00"},
	"9M":  {"17:00:00", "17:50:00"},
	"10":  {"18:00:00", "18:50:00"},
	"10M": {"18:00:00", "18:50:00"},

	// Night blocks
	"11":  {"18:55:00", "19:45:00"},
	"11M": {"18:55:00", "19:45:00"},
	"12":  {"19:50:00", "20:40:00"},
	"12M": {"19:50:00", "20:40:00"},
	"13":  {"20:45:00", "21:35:00"},
	"13M": {"20:45:00", "21:35:00"},
	"14":  {"21:40:00", "22:30:00"},
	"14M": {"21:40:00", "22:30:00"},
}

// dayGlyphs maps catalog day glyphs to the fixed 3-letter day codes.
var dayGlyphs = map[rune]domain.DayCode{
	'월': domain.DayMon,
	'화': domain.DayTue,
	'수': domain.DayWed,
	'목': domain.DayThu,
	'금': domain.DayFri,
	'토': domain.DaySat,
	'일': domain.DaySun,
}

// timetableFor selects the period table for a day glyph. Saturday and
// Sunday follow the Tue/Fri grid.
func timetableFor(day rune) map[string]PeriodBlock {
	switch day {
	case '월', '수', '목':
		return monWedThuTable
	default:
		return tueFriTable
	}
}
