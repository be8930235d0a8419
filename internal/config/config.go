package config

import (
	"flag"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/dialogue-browser/internal/app"
	"github.com/atomicstack/dialogue-browser/internal/dataset"
	"github.com/atomicstack/dialogue-browser/internal/filter"
	"github.com/atomicstack/dialogue-browser/internal/taxonomy"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envDataPath       = "DIALOGUE_BROWSER_DATA"
	envTable          = "DIALOGUE_BROWSER_TABLE"
	envDialogueColumn = "DIALOGUE_BROWSER_DIALOGUE_COLUMN"
	envWidth          = "DIALOGUE_BROWSER_WIDTH"
	envHeight         = "DIALOGUE_BROWSER_HEIGHT"
	envShowFooter     = "DIALOGUE_BROWSER_FOOTER"
	envWatch          = "DIALOGUE_BROWSER_WATCH"
	envWatchInterval  = "DIALOGUE_BROWSER_WATCH_INTERVAL"
	envCategory       = "DIALOGUE_BROWSER_CATEGORY"
	envSubCategory    = "DIALOGUE_BROWSER_SUB_CATEGORY"
	envType           = "DIALOGUE_BROWSER_TYPE"
	envTrace          = "DIALOGUE_BROWSER_TRACE"
	envLogFile        = "DIALOGUE_BROWSER_LOG_FILE"
)

const minWatchInterval = 100 * time.Millisecond

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("dialogue-browser", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	data := fs.String("data", envOrDefault(env, envDataPath, dataset.DefaultPath), "path to the dataset (.csv, or .db/.sqlite/.sqlite3)")
	table := fs.String("table", envOrDefault(env, envTable, dataset.DefaultTable), "SQLite table holding the records")
	dialogueColumn := fs.String("dialogue-column", envOrDefault(env, envDialogueColumn, dataset.DefaultDialogueColumn), "column holding the raw dialogue text")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer key help (disabled by default)")
	watch := fs.Bool("watch", envOrBool(env, envWatch, false), "reload the dataset when the file changes")
	watchInterval := fs.Duration("watch-interval", envOrDuration(env, envWatchInterval, 2*time.Second), "how often to check the dataset for changes")
	category := fs.String("category", envOrDefault(env, envCategory, ""), "initial category filter")
	subCategory := fs.String("sub-category", envOrDefault(env, envSubCategory, ""), "initial sub-category filter")
	kind := fs.String("type", envOrDefault(env, envType, ""), "initial type filter")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	cfg := Config{
		App: app.Config{
			DataPath:       *data,
			Table:          *table,
			DialogueColumn: *dialogueColumn,
			Width:          *width,
			Height:         *height,
			ShowFooter:     *footer,
			Watch:          *watch,
			WatchInterval:  *watchInterval,
			Initial: filter.Selection{
				Category:    *category,
				SubCategory: *subCategory,
				Type:        *kind,
			},
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"data":           *data,
			"table":          *table,
			"dialogueColumn": *dialogueColumn,
			"width":          strconv.Itoa(*width),
			"height":         strconv.Itoa(*height),
			"footer":         strconv.FormatBool(*footer),
			"watch":          strconv.FormatBool(*watch),
			"watchInterval":  watchInterval.String(),
			"category":       *category,
			"subCategory":    *subCategory,
			"type":           *kind,
			"trace":          strconv.FormatBool(*trace),
			"logFile":        *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		key, value, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		values[key] = value
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate checks settings that depend on each other.
func Validate(cfg Config) error {
	if strings.TrimSpace(cfg.App.DataPath) == "" {
		return fmt.Errorf("data path must not be empty")
	}
	if cfg.App.Watch && cfg.App.WatchInterval < minWatchInterval {
		return fmt.Errorf("watch interval must be >= %s (got %s)", minWatchInterval, cfg.App.WatchInterval)
	}
	sel := cfg.App.Initial
	if sel.Category != "" && !slices.Contains(taxonomy.Categories(), sel.Category) {
		return fmt.Errorf("unknown category %q (want one of %s)", sel.Category, strings.Join(taxonomy.Categories(), ", "))
	}
	if sel.Category != "" && sel.SubCategory != "" && !taxonomy.Contains(sel.Category, sel.SubCategory) {
		return fmt.Errorf("sub-category %q is not listed under category %q", sel.SubCategory, sel.Category)
	}
	return nil
}
