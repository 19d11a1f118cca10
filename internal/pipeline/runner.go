package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/xuri/excelize/v2"

	"ipicli/internal/files"
	"ipicli/internal/infrastructure"
	"ipicli/internal/report"
	"ipicli/internal/store"
	"ipicli/internal/timesheet"
)

// Runner executes complete file-level runs: open the source workbook,
// process it, register discoveries, and write the report next to it.
// Runs against distinct files may proceed concurrently; the shared store
// is serialized internally.
type Runner struct {
	Store     *store.Store
	Converter files.LegacyConverter
	OutDir    string
	SheetName string

	mu sync.Mutex // guards Store access across concurrent runs
}

// Run processes one source workbook and returns the written report path.
// On any fatal error no report file is written.
func (r *Runner) Run(ctx context.Context, inputPath string) (string, error) {
	ctx = infrastructure.EnsureTraceID(ctx)
	logger := infrastructure.LoggerWithContext(ctx)
	logger.Info("processing workbook", slog.String("input", inputPath))

	srcPath, err := files.ResolveSource(ctx, inputPath, r.Converter)
	if err != nil {
		return "", fmt.Errorf("failed to resolve source %s: %w", inputPath, err)
	}

	f, err := excelize.OpenFile(srcPath)
	if err != nil {
		return "", fmt.Errorf("failed to open workbook %s: %w", srcPath, err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return "", fmt.Errorf("failed to read worksheet rows: %w", err)
	}
	grid := timesheet.NewGrid(rows)

	r.mu.Lock()
	snap := r.Store.Snapshot()
	r.mu.Unlock()

	result, err := Process(ctx, grid, snap)
	if err != nil {
		return "", err
	}

	if len(result.DiscoveredProjects) > 0 || len(result.DiscoveredResources) > 0 {
		r.mu.Lock()
		added := r.Store.Register(result.DiscoveredProjects, result.DiscoveredResources)
		saveErr := r.Store.Save()
		r.mu.Unlock()
		if saveErr != nil {
			return "", fmt.Errorf("failed to save classification store: %w", saveErr)
		}
		logger.Info("registered discoveries", slog.Int("added", added))
	}

	builder := report.NewBuilder(result.DayGrid.DayCount, snap.Classifications)
	if r.SheetName != "" {
		builder.SheetName = r.SheetName
	}
	out, err := builder.Build(result.Records)
	if err != nil {
		return "", fmt.Errorf("failed to build report: %w", err)
	}
	defer out.Close()

	outPath := files.ReportPath(inputPath, r.OutDir)
	if err := out.SaveAs(outPath); err != nil {
		return "", fmt.Errorf("failed to save report %s: %w", outPath, err)
	}
	logger.Info("report written",
		slog.String("output", outPath),
		slog.Int("records", len(result.Records)))
	return outPath, nil
}
