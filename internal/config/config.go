package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// configFileName is looked up next to the executable.
const configFileName = "ipi-config.yaml"

// Config is the complete application configuration.
type Config struct {
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	Paths   PathsConfig   `yaml:"paths" envconfig:"PATHS"`
	Report  ReportConfig  `yaml:"report" envconfig:"REPORT"`
}

// LoggingConfig controls the slog setup.
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL"`
	Output   string `yaml:"output" envconfig:"OUTPUT"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// PathsConfig contains the configurable filesystem locations, relative to
// the executable directory unless absolute.
type PathsConfig struct {
	DataDir    string `yaml:"data_dir" envconfig:"DATA_DIR"`
	ReportsDir string `yaml:"reports_dir" envconfig:"REPORTS_DIR"`
	LogsDir    string `yaml:"logs_dir" envconfig:"LOGS_DIR"`
	StoreFile  string `yaml:"store_file" envconfig:"STORE_FILE"`
}

// ReportConfig controls report rendering.
type ReportConfig struct {
	SheetName string `yaml:"sheet_name" envconfig:"SHEET_NAME"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:    "info",
			Output:   "console",
			FilePath: "logs/ipi.log",
		},
		Paths: PathsConfig{
			DataDir:    "data",
			ReportsDir: "data/reports",
			LogsDir:    "logs",
			StoreFile:  "clasificacion_proyectos.json",
		},
		Report: ReportConfig{
			SheetName: "IPI",
		},
	}
}

// Load builds the configuration in precedence order: built-in defaults,
// then the optional YAML file next to the executable, then environment
// variables.
func Load() (*Config, error) {
	return load(configFilePath())
}

func load(configFile string) (*Config, error) {
	cfg := Default()
	if _, err := os.Stat(configFile); err == nil {
		if err := loadFromFile(configFile, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
	}
	if err := envconfig.Process("IPI", cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}
	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

func configFilePath() string {
	exe, err := os.Executable()
	if err != nil {
		return configFileName
	}
	return filepath.Join(filepath.Dir(exe), configFileName)
}
