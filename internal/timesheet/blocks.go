package timesheet

import "ipicli/pkg/contracts/domain"

// UnknownResource is the placeholder used when no resource name can be
// found above a section marker.
const UnknownResource = "RECURSO DESCONOCIDO"

// LocateSections finds every "Proyectos:" marker row and converts the
// markers into per-resource sections. Section i spans from its marker to
// two rows before the next marker (the export leaves a trailing spacer
// pair between resources); the last section runs to the end of the sheet.
func LocateSections(g *Grid) []domain.Section {
	markers := markerRows(g)
	sections := make([]domain.Section, 0, len(markers))
	for i, row := range markers {
		end := g.RowCount()
		if i < len(markers)-1 {
			end = markers[i+1] - 2
		}
		sections = append(sections, domain.Section{
			Resource: resourceAbove(g, row),
			StartRow: row,
			EndRow:   end,
		})
	}
	return sections
}

// markerRows returns the rows containing a section marker cell, in sheet
// order. The marker can sit in any column.
func markerRows(g *Grid) []int {
	var rows []int
	for row := 1; row <= g.RowCount(); row++ {
		for col := 1; col <= g.ColCount(row); col++ {
			if IsSectionMarker(g.Cell(row, col)) {
				rows = append(rows, row)
				break
			}
		}
	}
	return rows
}

// resourceAbove scans upward from the row above a marker for the nearest
// non-empty first-column cell, which carries the resource name.
func resourceAbove(g *Grid, markerRow int) string {
	for row := markerRow - 1; row >= 1; row-- {
		if v := g.Cell(row, 1); v != "" {
			return v
		}
	}
	return UnknownResource
}
