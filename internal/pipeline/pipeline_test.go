package pipeline

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ipicli/internal/store"
	"ipicli/internal/timesheet"
	"ipicli/pkg/contracts/domain"
)

// dayHeader builds the 1..30 day header starting at column 4.
func dayHeader() []string {
	row := make([]string, 33)
	for d := 1; d <= 30; d++ {
		row[3+d-1] = strconv.Itoa(d)
	}
	return row
}

func sheetRows() [][]string {
	return [][]string{
		{"septiembre de 2024"},
		dayHeader(),
		{"TORNO-1"},
		{"Proyectos:"},
		{"12345-Hull Repair", "1-HORA NORMAL", "", "8:00", "8:00"},
		{"2-HORA EXTRA", "", "", "", "2:00"},
		{""},
		{"FRESADORA-2"},
		{"Proyectos:"},
		{"54321-Deck Crane", "1-HORA NORMAL", "", "6:00"},
	}
}

func emptySnapshot() store.Snapshot {
	return store.Snapshot{
		Classifications:   map[string]domain.Classification{},
		Names:             map[string]string{},
		ExcludedResources: map[string]bool{},
		ExcludedProjects:  map[string]bool{},
		KnownResources:    map[string]bool{},
	}
}

func TestProcessNoSections(t *testing.T) {
	grid := timesheet.NewGrid([][]string{
		{"TORNO-1"},
		{"12345-Hull Repair"},
	})
	_, err := Process(context.Background(), grid, emptySnapshot())
	assert.ErrorIs(t, err, ErrNoSections)
}

func TestProcess(t *testing.T) {
	res, err := Process(context.Background(), timesheet.NewGrid(sheetRows()), emptySnapshot())
	require.NoError(t, err)

	assert.Equal(t, 30, res.DayGrid.DayCount)
	assert.Equal(t, 4, res.DayGrid.FirstCol)

	require.Len(t, res.Records, 3)
	assert.Equal(t, "TORNO-1", res.Records[0].Resource)
	assert.Equal(t, "12345", res.Records[0].Project.Code)
	assert.Equal(t, "2-HORA EXTRA", res.Records[1].ImputationType)
	assert.Equal(t, "FRESADORA-2", res.Records[2].Resource)

	assert.Equal(t, []string{"TORNO-1", "FRESADORA-2"}, res.DiscoveredResources)
	require.Len(t, res.DiscoveredProjects, 2)
	assert.Equal(t, "12345", res.DiscoveredProjects[0].Code)
	assert.Equal(t, "54321", res.DiscoveredProjects[1].Code)
	assert.Equal(t, 0, res.DiscardedRows)
	assert.Equal(t, 0, res.ExcludedRecords)
}

func TestProcessKnownEntriesAreNotRediscovered(t *testing.T) {
	snap := emptySnapshot()
	snap.Classifications["12345"] = domain.ClassificationConstruccion
	snap.KnownResources["TORNO-1"] = true

	res, err := Process(context.Background(), timesheet.NewGrid(sheetRows()), snap)
	require.NoError(t, err)

	require.Len(t, res.DiscoveredProjects, 1)
	assert.Equal(t, "54321", res.DiscoveredProjects[0].Code)
	assert.Equal(t, []string{"FRESADORA-2"}, res.DiscoveredResources)
}

func TestProcessExcludesProjects(t *testing.T) {
	snap := emptySnapshot()
	snap.ExcludedProjects["12345"] = true

	res, err := Process(context.Background(), timesheet.NewGrid(sheetRows()), snap)
	require.NoError(t, err)

	require.Len(t, res.Records, 1)
	assert.Equal(t, "54321", res.Records[0].Project.Code)
	assert.Equal(t, 2, res.ExcludedRecords)
}

func TestProcessExcludesResources(t *testing.T) {
	snap := emptySnapshot()
	snap.ExcludedResources["FRESADORA-2"] = true

	res, err := Process(context.Background(), timesheet.NewGrid(sheetRows()), snap)
	require.NoError(t, err)

	require.Len(t, res.Records, 2)
	for _, rec := range res.Records {
		assert.Equal(t, "TORNO-1", rec.Resource)
	}
	assert.Equal(t, 1, res.ExcludedRecords)
}

func TestProcessReportsDiscardedRows(t *testing.T) {
	rows := [][]string{
		dayHeader(),
		{"TORNO-1"},
		{"Proyectos:"},
		{"12345-Hull Repair"},
		{"1-HORA NORMAL", "", "", "8:00"},
		{"2-HORA EXTRA", "", "", "2:00"},
		// Condensed recap re-using the tags with a restarted index.
		{"1-HORA NORMAL", "", "", "10:00"},
	}
	res, err := Process(context.Background(), timesheet.NewGrid(rows), emptySnapshot())
	require.NoError(t, err)

	require.Len(t, res.Records, 2)
	assert.Equal(t, 1, res.DiscardedRows)
}
