package timesheet

import (
	"strconv"

	"ipicli/pkg/contracts/domain"
)

const (
	// headerScanRows bounds the day-grid search; the column header always
	// sits near the top of the sheet.
	headerScanRows = 80

	minDayCount = 28
	maxDayCount = 31

	// The fallback layout when no day run is found: a full 31-day month
	// starting at column 4. A malformed header still produces a usable,
	// if imprecise, report.
	defaultDayCount = 31
	defaultFirstCol = 4
)

// DetectDayGrid scans the header area for the contiguous day-number run
// 1,2,3,... that defines the day-of-month columns. The first run whose
// length is a plausible month length (28-31) wins.
func DetectDayGrid(g *Grid) domain.DayGrid {
	rows := g.RowCount()
	if rows > headerScanRows {
		rows = headerScanRows
	}
	for row := 1; row <= rows; row++ {
		for col := 1; col <= g.ColCount(row); col++ {
			if cellInt(g, row, col) != 1 {
				continue
			}
			length := runLength(g, row, col)
			if length >= minDayCount && length <= maxDayCount {
				return domain.DayGrid{DayCount: length, FirstCol: col}
			}
		}
	}
	return domain.DayGrid{DayCount: defaultDayCount, FirstCol: defaultFirstCol}
}

// runLength counts how far the sequence 1,2,3,... continues in adjacent
// columns starting at col.
func runLength(g *Grid, row, col int) int {
	n := 0
	for cellInt(g, row, col+n) == n+1 {
		n++
	}
	return n
}

// cellInt parses a cell as a whole number, returning 0 for anything else.
func cellInt(g *Grid, row, col int) int {
	v, err := strconv.Atoi(g.Cell(row, col))
	if err != nil {
		return 0
	}
	return v
}
