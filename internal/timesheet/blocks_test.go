package timesheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocateSections(t *testing.T) {
	rows := [][]string{
		{"TORNO-1"},             // 1: resource for the first section
		{"Proyectos:"},          // 2: marker
		{"12345-Hull Repair"},   // 3
		{"1-HORA NORMAL"},       // 4
		{""},                    // 5: spacer
		{"FRESADORA-2"},         // 6: resource for the second section
		{"Proyectos:"},          // 7: marker
		{"54321-Deck Crane"},    // 8
	}
	sections := LocateSections(NewGrid(rows))
	require.Len(t, sections, 2)

	assert.Equal(t, "TORNO-1", sections[0].Resource)
	assert.Equal(t, 2, sections[0].StartRow)
	// The first section ends two rows before the next marker.
	assert.Equal(t, 5, sections[0].EndRow)

	assert.Equal(t, "FRESADORA-2", sections[1].Resource)
	assert.Equal(t, 7, sections[1].StartRow)
	assert.Equal(t, 8, sections[1].EndRow)
}

func TestLocateSectionsMarkerInAnyColumn(t *testing.T) {
	rows := [][]string{
		{"GRUA-3"},
		{"", "", "Proyectos:"},
	}
	sections := LocateSections(NewGrid(rows))
	require.Len(t, sections, 1)
	assert.Equal(t, "GRUA-3", sections[0].Resource)
}

func TestLocateSectionsResourceSkipsBlankRows(t *testing.T) {
	rows := [][]string{
		{"SOLDADURA-4"},
		{""},
		{""},
		{"Proyectos:"},
		{"12345-Hull Repair"},
	}
	sections := LocateSections(NewGrid(rows))
	require.Len(t, sections, 1)
	assert.Equal(t, "SOLDADURA-4", sections[0].Resource)
}

func TestLocateSectionsUnknownResource(t *testing.T) {
	rows := [][]string{
		{"Proyectos:"},
		{"12345-Hull Repair"},
	}
	sections := LocateSections(NewGrid(rows))
	require.Len(t, sections, 1)
	assert.Equal(t, UnknownResource, sections[0].Resource)
}

func TestLocateSectionsNone(t *testing.T) {
	rows := [][]string{
		{"TORNO-1"},
		{"12345-Hull Repair"},
	}
	assert.Empty(t, LocateSections(NewGrid(rows)))
}
