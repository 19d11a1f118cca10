package timesheet

import (
	"regexp"
	"strings"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Grid provides normalized, bounds-safe cell access over the raw rows of a
// worksheet as returned by excelize's GetRows. Rows and columns are 1-based
// to match spreadsheet coordinates; any cell outside the stored data reads
// as the empty string.
type Grid struct {
	rows [][]string
}

// NewGrid wraps raw worksheet rows. The slice is retained, not copied.
func NewGrid(rows [][]string) *Grid {
	return &Grid{rows: rows}
}

// RowCount returns the number of rows in the sheet.
func (g *Grid) RowCount() int {
	return len(g.rows)
}

// ColCount returns the number of populated columns in the given row, or 0
// for rows outside the sheet.
func (g *Grid) ColCount(row int) int {
	if row < 1 || row > len(g.rows) {
		return 0
	}
	return len(g.rows[row-1])
}

// Cell returns the normalized text of a cell: surrounding whitespace
// trimmed and internal whitespace runs collapsed to single spaces. Blank
// and absent cells both read as "".
func (g *Grid) Cell(row, col int) string {
	if row < 1 || row > len(g.rows) {
		return ""
	}
	r := g.rows[row-1]
	if col < 1 || col > len(r) {
		return ""
	}
	return normalize(r[col-1])
}

// normalize collapses whitespace runs and trims the result.
func normalize(s string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
}
