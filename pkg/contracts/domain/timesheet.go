package domain

import "fmt"

// ProjectRef identifies a project as it appears in the source timesheet.
// Identity is the five-digit code; Name is the free-text remainder of the
// cell the code was parsed from.
type ProjectRef struct {
	Code string `json:"code" validate:"required,len=5,numeric"`
	Name string `json:"name"`
}

// Display returns the "code - name" form used in report rows.
func (p ProjectRef) Display() string {
	if p.Name == "" {
		return p.Code
	}
	return fmt.Sprintf("%s - %s", p.Code, p.Name)
}

// HourRecord is one parsed data row: the hours a resource booked on one
// project under one imputation type. HoursByDay always has exactly one
// entry per detected day column; the entries are the raw cell text from
// the source sheet, re-summed only at report time.
type HourRecord struct {
	Resource       string     `json:"resource" validate:"required"`
	Project        ProjectRef `json:"project"`
	ImputationType string     `json:"imputation_type" validate:"required"`
	HoursByDay     []string   `json:"hours_by_day"`
}

// Section is the contiguous row range in the source sheet belonging to one
// resource, bounded by "Proyectos:" marker rows. Rows are 1-based and the
// range is inclusive.
type Section struct {
	Resource string `json:"resource"`
	StartRow int    `json:"start_row"`
	EndRow   int    `json:"end_row"`
}

// Classification is the operator-assigned project category. The empty
// value means "not yet classified" and is a valid, persistent state.
type Classification string

const (
	ClassificationNone         Classification = ""
	ClassificationConstruccion Classification = "CONSTRUCCION"
	ClassificationReparacion   Classification = "REPARACION"
)

// Valid reports whether c is one of the three known classification states.
func (c Classification) Valid() bool {
	switch c {
	case ClassificationNone, ClassificationConstruccion, ClassificationReparacion:
		return true
	}
	return false
}

// DayGrid describes the detected day-of-month column layout of a source
// sheet: DayCount columns starting at FirstCol (1-based).
type DayGrid struct {
	DayCount int `json:"day_count" validate:"min=28,max=31"`
	FirstCol int `json:"first_col" validate:"min=1"`
}

// LastCol returns the 1-based column of the final day cell.
func (g DayGrid) LastCol() int {
	return g.FirstCol + g.DayCount - 1
}
