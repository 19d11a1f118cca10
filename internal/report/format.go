package report

import "github.com/xuri/excelize/v2"

// Fill colors, carried over from the legacy desktop tool so reports keep
// their familiar palette.
const (
	headerColor       = "ECEFF1"
	construccionColor = "E3F2FD"
	reparacionColor   = "E6F4EA"
	borderColor       = "D0D0D0"
)

// styleSet holds the style IDs registered on one output workbook.
type styleSet struct {
	header       int
	plain        int
	construccion int
	reparacion   int
	label        int
	sumCon       int
	sumRep       int
}

// newStyleSet registers the report styles on f.
func newStyleSet(f *excelize.File) (*styleSet, error) {
	border := []excelize.Border{
		{Type: "left", Color: borderColor, Style: 1},
		{Type: "right", Color: borderColor, Style: 1},
		{Type: "top", Color: borderColor, Style: 1},
		{Type: "bottom", Color: borderColor, Style: 1},
	}
	fill := func(color string) excelize.Fill {
		return excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1}
	}

	var (
		s   styleSet
		err error
	)
	if s.header, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true}, Fill: fill(headerColor), Border: border,
	}); err != nil {
		return nil, err
	}
	if s.plain, err = f.NewStyle(&excelize.Style{Border: border}); err != nil {
		return nil, err
	}
	if s.construccion, err = f.NewStyle(&excelize.Style{
		Fill: fill(construccionColor), Border: border,
	}); err != nil {
		return nil, err
	}
	if s.reparacion, err = f.NewStyle(&excelize.Style{
		Fill: fill(reparacionColor), Border: border,
	}); err != nil {
		return nil, err
	}
	if s.label, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true}, Fill: fill(headerColor), Border: border,
	}); err != nil {
		return nil, err
	}
	if s.sumCon, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true}, Fill: fill(construccionColor), Border: border,
	}); err != nil {
		return nil, err
	}
	if s.sumRep, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true}, Fill: fill(reparacionColor), Border: border,
	}); err != nil {
		return nil, err
	}
	return &s, nil
}
