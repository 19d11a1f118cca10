package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths holds the resolved filesystem locations the application uses.
// All relative configuration entries resolve against the executable
// directory, never the working directory, so the tool behaves the same
// wherever it is launched from.
type Paths struct {
	ExecutableDir string
	DataDir       string
	ReportsDir    string
	LogsDir       string
	StoreFile     string
}

// ResolvePaths turns a PathsConfig into absolute paths.
func ResolvePaths(cfg PathsConfig) (*Paths, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("failed to get executable path: %w", err)
	}
	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve executable symlinks: %w", err)
	}
	exeDir := filepath.Dir(exe)

	abs := func(p string) string {
		if filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(exeDir, p)
	}
	return &Paths{
		ExecutableDir: exeDir,
		DataDir:       abs(cfg.DataDir),
		ReportsDir:    abs(cfg.ReportsDir),
		LogsDir:       abs(cfg.LogsDir),
		StoreFile:     abs(cfg.StoreFile),
	}, nil
}

// EnsureDirectories creates the directories the application writes to.
func (p *Paths) EnsureDirectories() error {
	for _, dir := range []string{p.DataDir, p.ReportsDir, p.LogsDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}
