package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
)

const (
	DefaultMaxCategories = 5
	DefaultSort          = "date"
	DefaultOrder         = "desc"
	EngineAST            = "ast"
	EngineRules          = "rules"
)

// Config holds the unified application configuration
type Config struct {
	Dirs          []string
	RecursiveDirs []string
	ExportDir     string
	DefaultSort   string
	DefaultOrder  string
	MaxCategories int
	Categories    []string
	PreviewEngine string
}

// Settings represents the config file structure
type Settings struct {
	Dirs          []string `json:"dirs"`
	RecursiveDirs []string `json:"recursive_dirs"`
	ExportDir     string   `json:"export_dir,omitempty"`
	DefaultSort   string   `json:"default_sort,omitempty"`
	DefaultOrder  string   `json:"default_order,omitempty"`
	MaxCategories int      `json:"max_categories,omitempty"`
	Categories    []string `json:"categories,omitempty"`
	PreviewEngine string   `json:"preview_engine,omitempty"`
}

// CLIFlags holds parsed CLI flags
type CLIFlags struct {
	Dirs          []string
	RecursiveDirs []string
	ExportDir     string
	PreviewEngine string
}

// Load loads configuration with priority: CLI flags > env vars > config file > default
func Load(flags CLIFlags) (*Config, error) {
	cfg := &Config{
		DefaultSort:   DefaultSort,
		DefaultOrder:  DefaultOrder,
		MaxCategories: DefaultMaxCategories,
		PreviewEngine: EngineAST,
	}

	configPath, err := ConfigPath()
	if err == nil {
		if fileConfig, err := loadConfigFile(configPath); err == nil {
			cfg.apply(fileConfig)
		}
	}

	envDirs := os.Getenv("JOTTER_DIRS")
	envRecursiveDirs := os.Getenv("JOTTER_RECURSIVE_DIRS")
	if envDirs != "" {
		cfg.Dirs = expandPaths(parseColonSeparated(envDirs))
	}
	if envRecursiveDirs != "" {
		cfg.RecursiveDirs = expandPaths(parseColonSeparated(envRecursiveDirs))
	}
	if envExport := os.Getenv("JOTTER_EXPORT_DIR"); envExport != "" {
		cfg.ExportDir = expandPath(envExport)
	}

	if len(flags.Dirs) > 0 {
		cfg.Dirs = expandPaths(flags.Dirs)
	}
	if len(flags.RecursiveDirs) > 0 {
		cfg.RecursiveDirs = expandPaths(flags.RecursiveDirs)
	}
	if flags.ExportDir != "" {
		cfg.ExportDir = expandPath(flags.ExportDir)
	}
	if flags.PreviewEngine != "" {
		cfg.PreviewEngine = flags.PreviewEngine
	}

	if len(cfg.Dirs) == 0 && len(cfg.RecursiveDirs) == 0 {
		defaultDir, err := GetDefaultDir()
		if err != nil {
			return nil, err
		}
		cfg.Dirs = []string{defaultDir}
	}

	if cfg.ExportDir == "" {
		cfg.ExportDir = filepath.Join(cfg.GetFirstDir(), "exports")
	}
	if cfg.MaxCategories <= 0 {
		cfg.MaxCategories = DefaultMaxCategories
	}
	if cfg.PreviewEngine != EngineRules {
		cfg.PreviewEngine = EngineAST
	}

	return cfg, nil
}

func (c *Config) apply(s *Settings) {
	if len(s.Dirs) > 0 || len(s.RecursiveDirs) > 0 {
		c.Dirs = expandPaths(s.Dirs)
		c.RecursiveDirs = expandPaths(s.RecursiveDirs)
	}
	if s.ExportDir != "" {
		c.ExportDir = expandPath(s.ExportDir)
	}
	if s.DefaultSort != "" {
		c.DefaultSort = s.DefaultSort
	}
	if s.DefaultOrder != "" {
		c.DefaultOrder = s.DefaultOrder
	}
	if s.MaxCategories > 0 {
		c.MaxCategories = s.MaxCategories
	}
	if len(s.Categories) > 0 {
		c.Categories = append([]string(nil), s.Categories...)
	}
	if s.PreviewEngine != "" {
		c.PreviewEngine = s.PreviewEngine
	}
}

// GetDefaultDir returns the default notes directory
func GetDefaultDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, "notes"), nil
}

// ConfigPath returns the path to the configuration file. XDG_CONFIG_HOME wins
// over ~/.config when set.
func ConfigPath() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "jotter", "config.json"), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "jotter", "config.json"), nil
}

func loadConfigFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, err
	}

	return &settings, nil
}

// EnsureDirs ensures all note directories exist (creates them if missing)
func (c *Config) EnsureDirs() error {
	for _, dir := range c.Dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return nil
}

// GetFirstDir returns the first regular directory, falling back to the first
// recursive one. New notes are created here.
func (c *Config) GetFirstDir() string {
	if len(c.Dirs) > 0 {
		return c.Dirs[0]
	}
	if len(c.RecursiveDirs) > 0 {
		return c.RecursiveDirs[0]
	}
	return ""
}

// EnsureConfigFile creates the config file with defaults if it doesn't exist
func EnsureConfigFile() error {
	configPath, err := ConfigPath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return err
	}

	defaultDir, err := GetDefaultDir()
	if err != nil {
		return err
	}

	settings := Settings{
		Dirs:          []string{defaultDir},
		RecursiveDirs: []string{},
		DefaultSort:   DefaultSort,
		DefaultOrder:  DefaultOrder,
		MaxCategories: DefaultMaxCategories,
		PreviewEngine: EngineAST,
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

// ParseCommaSeparated splits a comma-separated string into a slice
func ParseCommaSeparated(s string) []string {
	return splitTrimmed(s, ",")
}

func parseColonSeparated(s string) []string {
	return splitTrimmed(s, ":")
}

func splitTrimmed(s, sep string) []string {
	if s == "" {
		return nil
	}
	var result []string
	for _, p := range strings.Split(s, sep) {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(homeDir, path[2:])
	}
	return path
}

func expandPaths(paths []string) []string {
	result := make([]string, len(paths))
	for i, p := range paths {
		result[i] = expandPath(p)
	}
	return result
}
