package timesheet

import "ipicli/pkg/contracts/domain"

// tagScanCols are the columns inspected for an imputation tag on a plain
// data row; inlineTagScanCols are inspected on a row that also carries the
// project cell (the tag then sits to the right of the code).
var (
	tagScanCols       = []int{1, 2, 3}
	inlineTagScanCols = []int{2, 3, 4}
)

// SectionResult is the outcome of parsing one resource section.
type SectionResult struct {
	// Records are the emitted hour records in row order.
	Records []domain.HourRecord
	// Projects lists every project context encountered, in order and
	// including projects whose detail rows were all discarded. Used for
	// discovery reporting.
	Projects []domain.ProjectRef
	// Discarded counts rows dropped by the repeated-summary rule.
	Discarded int
}

// ParseSection walks a section's rows and emits one HourRecord per row
// carrying a recognized imputation tag.
//
// The walk keeps three pieces of state: the current project context, the
// highest tag index seen for that project, and whether the remainder of
// the project is being discarded. A tag index that does not increase
// within one project means the export has started re-emitting its
// condensed summary of rows already seen; everything from that row to the
// next project row is dropped.
func ParseSection(g *Grid, sec domain.Section, grid domain.DayGrid) SectionResult {
	var res SectionResult
	var current *domain.ProjectRef
	maxSeen := 0
	discarding := false

	for row := sec.StartRow; row <= sec.EndRow; row++ {
		if IsGarbageRow(g, row, grid) {
			continue
		}

		if ref, refCol, ok := projectIn(g, row); ok {
			current = &ref
			maxSeen = 0
			discarding = false
			res.Projects = append(res.Projects, ref)
			if idx, tag, ok := tagIn(g, row, inlineCols(refCol)); ok {
				res.Records = append(res.Records, makeRecord(g, sec, ref, tag, row, grid))
				maxSeen = idx
			}
			continue
		}

		if current == nil {
			continue
		}
		if discarding {
			res.Discarded++
			continue
		}

		idx, tag, ok := tagIn(g, row, tagScanCols)
		if !ok {
			continue
		}
		if idx <= maxSeen {
			// Tag sequence restarted: this is the condensed recap, not data.
			discarding = true
			res.Discarded++
			continue
		}
		res.Records = append(res.Records, makeRecord(g, sec, *current, tag, row, grid))
		maxSeen = idx
	}
	return res
}

// projectIn looks for a project cell in columns 1 and 2 and reports the
// column it matched in.
func projectIn(g *Grid, row int) (domain.ProjectRef, int, bool) {
	for _, col := range []int{1, 2} {
		if ref, ok := MatchProject(g.Cell(row, col)); ok {
			return ref, col, true
		}
	}
	return domain.ProjectRef{}, 0, false
}

// tagIn returns the first imputation tag found in the given columns.
func tagIn(g *Grid, row int, cols []int) (int, string, bool) {
	for _, col := range cols {
		if idx, tag, ok := MatchImputation(g.Cell(row, col)); ok {
			return idx, tag, true
		}
	}
	return 0, "", false
}

// inlineCols are the tag columns scanned on a project row, skipping the
// column the project code itself occupies.
func inlineCols(projectCol int) []int {
	cols := make([]int, 0, len(inlineTagScanCols))
	for _, c := range inlineTagScanCols {
		if c != projectCol {
			cols = append(cols, c)
		}
	}
	return cols
}

// makeRecord builds an HourRecord from a data row. The day slice always
// has exactly one entry per detected day column: cells beyond the stored
// row read as empty, extra columns past the grid are never included.
func makeRecord(g *Grid, sec domain.Section, ref domain.ProjectRef, tag string, row int, grid domain.DayGrid) domain.HourRecord {
	days := make([]string, grid.DayCount)
	for i := range days {
		days[i] = g.Cell(row, grid.FirstCol+i)
	}
	return domain.HourRecord{
		Resource:       sec.Resource,
		Project:        ref,
		ImputationType: tag,
		HoursByDay:     days,
	}
}
