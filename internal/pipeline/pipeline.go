package pipeline

import (
	"context"
	"errors"
	"log/slog"

	"ipicli/internal/infrastructure"
	"ipicli/internal/store"
	"ipicli/internal/timesheet"
	"ipicli/pkg/contracts/domain"
)

// ErrNoSections is returned when the worksheet contains no "Proyectos:"
// marker at all. There is nothing to report, so the run aborts before any
// output is produced.
var ErrNoSections = errors.New(`no "Proyectos:" section marker found in worksheet`)

// Result is the outcome of processing one worksheet.
type Result struct {
	// Records are the hour records that survived exclusion filtering, in
	// the sheet's top-to-bottom, section-by-section order.
	Records []domain.HourRecord
	// DayGrid is the detected day-of-month column layout.
	DayGrid domain.DayGrid
	// DiscoveredProjects are project codes seen in the sheet but missing
	// from the snapshot, for registration.
	DiscoveredProjects []domain.ProjectRef
	// DiscoveredResources are resource names missing from the snapshot.
	DiscoveredResources []string
	// DiscardedRows counts rows dropped by the repeated-summary rule.
	DiscardedRows int
	// ExcludedRecords counts records removed by the exclusion sets.
	ExcludedRecords int
}

// Process runs the extraction pipeline over one worksheet grid against a
// read-only store snapshot.
func Process(ctx context.Context, grid *timesheet.Grid, snap store.Snapshot) (*Result, error) {
	logger := infrastructure.LoggerWithContext(ctx)

	dayGrid := timesheet.DetectDayGrid(grid)
	logger.Debug("day grid detected",
		slog.Int("day_count", dayGrid.DayCount),
		slog.Int("first_col", dayGrid.FirstCol))

	sections := timesheet.LocateSections(grid)
	if len(sections) == 0 {
		return nil, ErrNoSections
	}
	logger.Info("sections located", slog.Int("count", len(sections)))

	res := &Result{DayGrid: dayGrid}
	seenProjects := make(map[string]bool)
	seenResources := make(map[string]bool)
	var all []domain.HourRecord

	for _, sec := range sections {
		parsed := timesheet.ParseSection(grid, sec, dayGrid)
		all = append(all, parsed.Records...)
		res.DiscardedRows += parsed.Discarded

		for _, p := range parsed.Projects {
			if !seenProjects[p.Code] && !snap.KnowsProject(p.Code) {
				seenProjects[p.Code] = true
				res.DiscoveredProjects = append(res.DiscoveredProjects, p)
			}
		}
		if !seenResources[sec.Resource] && !snap.KnownResources[sec.Resource] {
			seenResources[sec.Resource] = true
			res.DiscoveredResources = append(res.DiscoveredResources, sec.Resource)
		}
	}

	if res.DiscardedRows > 0 {
		// The truncation itself is silent in the report; the count is the
		// only trace the run leaves.
		logger.Warn("dropped repeated summary rows",
			slog.Int("rows", res.DiscardedRows))
	}

	for _, rec := range all {
		if snap.ExcludedResources[rec.Resource] || snap.ExcludedProjects[rec.Project.Code] {
			res.ExcludedRecords++
			continue
		}
		res.Records = append(res.Records, rec)
	}

	logger.Info("worksheet processed",
		slog.Int("records", len(res.Records)),
		slog.Int("excluded", res.ExcludedRecords),
		slog.Int("discovered_projects", len(res.DiscoveredProjects)),
		slog.Int("discovered_resources", len(res.DiscoveredResources)))
	return res, nil
}
