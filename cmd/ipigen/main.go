// Command ipigen transforms exported timesheet workbooks into normalized
// IPI report workbooks. It also offers non-interactive maintenance of the
// persistent classification/exclusion store; browsing and bulk editing
// remain the job of the external desktop and web front-ends.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/xuri/excelize/v2"
	"golang.org/x/sync/errgroup"

	"ipicli/internal/config"
	"ipicli/internal/files"
	"ipicli/internal/infrastructure"
	"ipicli/internal/pipeline"
	"ipicli/internal/store"
	"ipicli/internal/timesheet"
	"ipicli/pkg/contracts/domain"
)

func main() {
	in := flag.String("in", "", "source workbook or directory of workbooks (defaults to the data directory)")
	out := flag.String("out", "", "directory for generated reports (defaults to next to each source)")
	storePath := flag.String("store", "", "classification store file (defaults to clasificacion_proyectos.json next to the executable)")
	sheet := flag.String("sheet", "", "report sheet name (defaults to IPI)")
	discover := flag.Bool("discover", false, "list resources and projects found in the sources without generating reports")
	classify := flag.String("classify", "", "set a project classification, e.g. 12345=CONSTRUCCION (empty value clears)")
	excludeResource := flag.String("exclude-resource", "", "comma-separated resource names to add to the exclusion set")
	excludeProject := flag.String("exclude-project", "", "comma-separated project codes to add to the exclusion set")
	jobs := flag.Int("jobs", 4, "maximum workbooks processed in parallel")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Warn("failed to load config, using defaults", "error", err)
		cfg = config.Default()
	}

	if _, err := infrastructure.InitializeLogger(cfg.Logging); err != nil {
		slog.Error("failed to initialize logger", "error", err)
		os.Exit(1)
	}
	defer infrastructure.CloseLogFile()

	paths, err := config.ResolvePaths(cfg.Paths)
	if err != nil {
		slog.Error("failed to resolve paths", "error", err)
		os.Exit(1)
	}
	if err := paths.EnsureDirectories(); err != nil {
		slog.Error("failed to create required directories", "error", err)
		os.Exit(1)
	}

	if *storePath == "" {
		*storePath = paths.StoreFile
	}
	st, err := store.Open(*storePath)
	if err != nil {
		slog.Error("failed to open classification store", "error", err)
		os.Exit(1)
	}

	ctx := infrastructure.ContextWithTraceID(context.Background())

	edited, err := applyStoreEdits(st, *classify, *excludeResource, *excludeProject)
	if err != nil {
		slog.Error("failed to update classification store", "error", err)
		os.Exit(1)
	}
	if edited {
		if err := st.Save(); err != nil {
			slog.Error("failed to save classification store", "error", err)
			os.Exit(1)
		}
		slog.Info("classification store updated", slog.String("store", *storePath))
		if *in == "" {
			return
		}
	}

	if *in == "" {
		*in = paths.DataDir
	}
	inputs, err := collectInputs(*in)
	if err != nil {
		slog.Error("failed to collect input workbooks", "error", err)
		os.Exit(1)
	}
	if len(inputs) == 0 {
		slog.Error("no source workbooks found", slog.String("in", *in))
		os.Exit(1)
	}

	if *discover {
		if err := runDiscovery(ctx, inputs); err != nil {
			slog.Error("discovery failed", "error", err)
			os.Exit(1)
		}
		return
	}

	sheetName := cfg.Report.SheetName
	if *sheet != "" {
		sheetName = *sheet
	}
	runner := &pipeline.Runner{
		Store:     st,
		OutDir:    *out,
		SheetName: sheetName,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(*jobs)
	for _, input := range inputs {
		input := input
		g.Go(func() error {
			outPath, err := runner.Run(gctx, input)
			if err != nil {
				return fmt.Errorf("%s: %w", input, err)
			}
			fmt.Println(outPath)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		slog.Error("processing failed", "error", err)
		os.Exit(1)
	}
}

// collectInputs resolves -in to a list of workbook paths: either the one
// file given, or every source workbook in the given directory.
func collectInputs(in string) ([]string, error) {
	info, err := os.Stat(in)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{in}, nil
	}
	found, err := files.NewDiscovery(in).FindSourceWorkbooks(".")
	if err != nil {
		return nil, err
	}
	paths := make([]string, 0, len(found))
	for _, f := range found {
		paths = append(paths, f.Path)
	}
	return paths, nil
}

// runDiscovery parses the sources against an empty snapshot and prints
// every resource and project they contain, without writing anything.
func runDiscovery(ctx context.Context, inputs []string) error {
	resources := make(map[string]bool)
	projects := make(map[string]string)

	for _, input := range inputs {
		srcPath, err := files.ResolveSource(ctx, input, nil)
		if err != nil {
			return fmt.Errorf("%s: %w", input, err)
		}
		f, err := excelize.OpenFile(srcPath)
		if err != nil {
			return fmt.Errorf("failed to open workbook %s: %w", srcPath, err)
		}
		rows, err := f.GetRows(f.GetSheetName(0))
		f.Close()
		if err != nil {
			return fmt.Errorf("failed to read worksheet rows: %w", err)
		}

		result, err := pipeline.Process(ctx, timesheet.NewGrid(rows), store.Snapshot{})
		if err != nil {
			return fmt.Errorf("%s: %w", input, err)
		}
		for _, r := range result.DiscoveredResources {
			resources[r] = true
		}
		for _, p := range result.DiscoveredProjects {
			projects[p.Code] = p.Name
		}
	}

	fmt.Println("Resources:")
	for _, r := range sortedKeys(resources) {
		fmt.Printf("  %s\n", r)
	}
	fmt.Println("Projects:")
	codes := make([]string, 0, len(projects))
	for code := range projects {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	for _, code := range codes {
		fmt.Printf("  %s - %s\n", code, projects[code])
	}
	return nil
}

// applyStoreEdits performs the non-interactive store mutations requested
// on the command line and reports whether anything changed.
func applyStoreEdits(st *store.Store, classify, excludeResource, excludeProject string) (bool, error) {
	edited := false
	if classify != "" {
		code, class, ok := strings.Cut(classify, "=")
		if !ok {
			return false, fmt.Errorf("invalid -classify value %q, want CODE=TYPE", classify)
		}
		if err := st.Classify(strings.TrimSpace(code), domain.Classification(strings.TrimSpace(class))); err != nil {
			return false, err
		}
		edited = true
	}
	for _, name := range splitList(excludeResource) {
		st.ExcludeResource(name)
		edited = true
	}
	for _, code := range splitList(excludeProject) {
		st.ExcludeProject(code)
		edited = true
	}
	return edited, nil
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
