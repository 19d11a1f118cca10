package timesheet

import (
	"strings"

	"ipicli/pkg/contracts/domain"
)

// weekdayRowThreshold is how many day-grid columns must hold day-of-week
// abbreviations before a row is treated as a repeated calendar header.
const weekdayRowThreshold = 5

// IsGarbageRow classifies a row as export noise to be skipped outright:
// month/year page banners, repeated "Recurso / Tipo" column headers, and
// repeated day-of-week calendar rows. The export injects these at page
// boundaries anywhere in the sheet, including inside a resource section.
func IsGarbageRow(g *Grid, row int, grid domain.DayGrid) bool {
	for col := 1; col <= g.ColCount(row); col++ {
		if IsMonthBanner(g.Cell(row, col)) {
			return true
		}
	}
	if isRepeatedHeader(g, row) {
		return true
	}
	return isWeekdayRow(g, row, grid)
}

// isRepeatedHeader matches the "Recurso... / Tipo..." column header pair
// the export repeats after each page break.
func isRepeatedHeader(g *Grid, row int) bool {
	return hasFold(g.Cell(row, 1), "recurso") && hasFold(g.Cell(row, 2), "tipo")
}

// hasFold is a case-insensitive prefix check.
func hasFold(s, prefix string) bool {
	return strings.HasPrefix(strings.ToLower(s), prefix)
}

// isWeekdayRow counts weekday abbreviations across the day columns.
func isWeekdayRow(g *Grid, row int, grid domain.DayGrid) bool {
	count := 0
	for col := grid.FirstCol; col <= grid.LastCol(); col++ {
		if IsWeekdayToken(g.Cell(row, col)) {
			count++
			if count >= weekdayRowThreshold {
				return true
			}
		}
	}
	return false
}
