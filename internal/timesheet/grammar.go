package timesheet

import (
	"regexp"
	"strconv"
	"strings"

	"ipicli/pkg/contracts/domain"
)

// The source dialect is recognized through a fixed set of named rules.
// Keeping them in one place lets the section parser and the garbage filter
// be tested against the grammar without touching cell-reading concerns.
var (
	// projectStrict is the canonical project cell: five digits, a dash
	// (plain or en dash), then the project name.
	projectStrict = regexp.MustCompile(`^(\d{5})\s*[-–]\s*(.+)$`)

	// projectLoose tolerates exports that drop the dash and separate code
	// from name with whitespace only.
	projectLoose = regexp.MustCompile(`^(\d{5})\s+(.*)$`)

	// imputationTag matches hour-category rows such as "1-HORA NORMAL" or
	// "2 - HORA EXTRA". The leading integer is the tag's sequence index.
	imputationTag = regexp.MustCompile(`(?i)^(\d+)\s*-\s*HORA`)

	// monthBanner matches the "<month> de <year>" banner the export
	// repeats above each page break.
	monthBanner = regexp.MustCompile(`(?i)(enero|febrero|marzo|abril|mayo|junio|julio|agosto|septiembre|octubre|noviembre|diciembre)\s+de\s+\d{4}`)
)

// weekdayTokens are the Spanish day-of-week abbreviations used in the
// repeated calendar header rows, from single letters up to three-letter
// forms, with and without accents.
var weekdayTokens = map[string]bool{
	"l": true, "m": true, "x": true, "j": true, "v": true, "s": true, "d": true,
	"lu": true, "ma": true, "mi": true, "ju": true, "vi": true, "sa": true, "do": true,
	"sá": true, "lun": true, "mar": true, "mie": true, "mié": true, "jue": true,
	"vie": true, "sab": true, "sáb": true, "dom": true,
}

// projectMatchers is the ordered strategy list for project cells: the
// strict form wins over the loose fallback.
var projectMatchers = []*regexp.Regexp{projectStrict, projectLoose}

// MatchProject tries the project patterns in priority order and returns
// the parsed reference from the first one that matches.
func MatchProject(text string) (domain.ProjectRef, bool) {
	s := normalize(text)
	for _, re := range projectMatchers {
		if m := re.FindStringSubmatch(s); m != nil {
			return domain.ProjectRef{Code: m[1], Name: normalize(m[2])}, true
		}
	}
	return domain.ProjectRef{}, false
}

// MatchImputation recognizes an imputation-type cell and returns its
// leading sequence index together with the normalized tag text.
func MatchImputation(text string) (index int, tag string, ok bool) {
	s := normalize(text)
	m := imputationTag.FindStringSubmatch(s)
	if m == nil {
		return 0, "", false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, "", false
	}
	return n, s, true
}

// IsSectionMarker reports whether a cell is a "Proyectos:" section marker.
func IsSectionMarker(text string) bool {
	return strings.HasPrefix(strings.ToLower(normalize(text)), "proyectos")
}

// IsMonthBanner reports whether a cell carries a month/year page banner.
func IsMonthBanner(text string) bool {
	return monthBanner.MatchString(text)
}

// IsWeekdayToken reports whether a cell is a day-of-week abbreviation.
func IsWeekdayToken(text string) bool {
	return weekdayTokens[strings.ToLower(normalize(text))]
}
