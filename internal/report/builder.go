package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"ipicli/internal/timesheet"
	"ipicli/pkg/contracts/domain"
)

// DefaultSheetName is the report worksheet name.
const DefaultSheetName = "IPI"

// Fixed columns before the day grid and after it.
const (
	colResource   = 1
	colProject    = 2
	colImputation = 3
	firstDayCol   = 4
)

// Builder renders hour records into the IPI report workbook.
type Builder struct {
	DayCount        int
	Classifications map[string]domain.Classification
	SheetName       string
}

// NewBuilder creates a report builder for the given day count and
// classification snapshot.
func NewBuilder(dayCount int, classifications map[string]domain.Classification) *Builder {
	return &Builder{
		DayCount:        dayCount,
		Classifications: classifications,
		SheetName:       DefaultSheetName,
	}
}

// Build renders the records, in input order, into a new workbook.
func (b *Builder) Build(records []domain.HourRecord) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), b.SheetName); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to name report sheet: %w", err)
	}
	styles, err := newStyleSet(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to register report styles: %w", err)
	}

	w := &sheetWriter{f: f, sheet: b.SheetName}
	b.writeHeader(w, styles)

	row := 2
	for _, rec := range records {
		b.writeRecord(w, styles, row, rec)
		row++
	}

	row = b.writeImputationTotals(w, styles, row+1, records)
	b.writeTypeTotals(w, styles, row+1, records)

	if w.err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write report cells: %w", w.err)
	}
	return f, nil
}

// lastCol returns the final column of a data row (PROJECT TYPE).
func (b *Builder) lastCol() int {
	return b.decCol() + 1
}

// totalCol returns the TOTAL column, right after the day grid.
func (b *Builder) totalCol() int {
	return firstDayCol + b.DayCount
}

func (b *Builder) decCol() int {
	return b.totalCol() + 1
}

func (b *Builder) writeHeader(w *sheetWriter, styles *styleSet) {
	w.set(colResource, 1, "RESOURCE")
	w.set(colProject, 1, "PROJECT")
	w.set(colImputation, 1, "IMPUTATION TYPE")
	for d := 1; d <= b.DayCount; d++ {
		w.set(firstDayCol+d-1, 1, d)
	}
	w.set(b.totalCol(), 1, "TOTAL")
	w.set(b.decCol(), 1, "TOTAL DEC")
	w.set(b.lastCol(), 1, "PROJECT TYPE")
	w.style(1, 1, b.lastCol(), styles.header)
}

// writeRecord writes one data row: raw day cells as-is, totals recomputed
// from them in integer minutes.
func (b *Builder) writeRecord(w *sheetWriter, styles *styleSet, row int, rec domain.HourRecord) {
	w.set(colResource, row, rec.Resource)
	w.set(colProject, row, rec.Project.Display())
	w.set(colImputation, row, rec.ImputationType)

	minutes := 0
	for i, cell := range rec.HoursByDay {
		minutes += timesheet.DurationToMinutes(cell)
		if cell != "" {
			w.set(firstDayCol+i, row, cell)
		}
	}
	w.set(b.totalCol(), row, timesheet.MinutesToHHMM(minutes))
	w.set(b.decCol(), row, timesheet.MinutesToDecimal(minutes))

	class := b.classOf(rec.Project.Code)
	w.set(b.lastCol(), row, string(class))

	switch class {
	case domain.ClassificationConstruccion:
		w.style(row, 1, b.lastCol(), styles.construccion)
	case domain.ClassificationReparacion:
		w.style(row, 1, b.lastCol(), styles.reparacion)
	default:
		w.style(row, 1, b.lastCol(), styles.plain)
	}
}

// writeImputationTotals writes one total row per distinct imputation tag,
// in first-appearance order, and returns the next free row.
func (b *Builder) writeImputationTotals(w *sheetWriter, styles *styleSet, row int, records []domain.HourRecord) int {
	w.set(1, row, "TOTALS BY IMPUTATION TYPE")
	w.style(row, 1, 3, styles.label)
	row++

	var order []string
	byTag := make(map[string]int)
	for _, rec := range records {
		if _, seen := byTag[rec.ImputationType]; !seen {
			order = append(order, rec.ImputationType)
		}
		byTag[rec.ImputationType] += recordMinutes(rec)
	}
	for _, tag := range order {
		w.set(1, row, tag)
		w.set(2, row, timesheet.MinutesToHHMM(byTag[tag]))
		w.set(3, row, timesheet.MinutesToDecimal(byTag[tag]))
		w.style(row, 1, 3, styles.plain)
		row++
	}
	return row
}

// writeTypeTotals writes the two project-type rows. Both types are always
// present, 0 when no record matches.
func (b *Builder) writeTypeTotals(w *sheetWriter, styles *styleSet, row int, records []domain.HourRecord) {
	w.set(1, row, "TOTALS BY PROJECT TYPE")
	w.style(row, 1, 3, styles.label)
	row++

	totals := map[domain.Classification]int{}
	for _, rec := range records {
		totals[b.classOf(rec.Project.Code)] += recordMinutes(rec)
	}

	w.set(1, row, string(domain.ClassificationConstruccion))
	w.set(2, row, timesheet.MinutesToHHMM(totals[domain.ClassificationConstruccion]))
	w.set(3, row, timesheet.MinutesToDecimal(totals[domain.ClassificationConstruccion]))
	w.style(row, 1, 3, styles.sumCon)
	row++

	w.set(1, row, string(domain.ClassificationReparacion))
	w.set(2, row, timesheet.MinutesToHHMM(totals[domain.ClassificationReparacion]))
	w.set(3, row, timesheet.MinutesToDecimal(totals[domain.ClassificationReparacion]))
	w.style(row, 1, 3, styles.sumRep)
}

func (b *Builder) classOf(code string) domain.Classification {
	return b.Classifications[code]
}

// recordMinutes sums a record's day cells in whole minutes.
func recordMinutes(rec domain.HourRecord) int {
	total := 0
	for _, cell := range rec.HoursByDay {
		total += timesheet.DurationToMinutes(cell)
	}
	return total
}

// sheetWriter wraps cell writes on one sheet and latches the first error,
// so row-building code stays linear.
type sheetWriter struct {
	f     *excelize.File
	sheet string
	err   error
}

func (w *sheetWriter) set(col, row int, value interface{}) {
	if w.err != nil {
		return
	}
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		w.err = err
		return
	}
	w.err = w.f.SetCellValue(w.sheet, cell, value)
}

// style applies a style across [fromCol, toCol] on one row.
func (w *sheetWriter) style(row, fromCol, toCol, styleID int) {
	if w.err != nil {
		return
	}
	from, err := excelize.CoordinatesToCellName(fromCol, row)
	if err != nil {
		w.err = err
		return
	}
	to, err := excelize.CoordinatesToCellName(toCol, row)
	if err != nil {
		w.err = err
		return
	}
	w.err = w.f.SetCellStyle(w.sheet, from, to, styleID)
}
