package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/atomicstack/dialogue-browser/internal/app"
	"github.com/atomicstack/dialogue-browser/internal/config"
	"github.com/atomicstack/dialogue-browser/internal/dataset"
	"github.com/atomicstack/dialogue-browser/internal/logging"
	"github.com/atomicstack/dialogue-browser/internal/logging/events"
	"golang.org/x/term"
)

const (
	exitOK = iota
	exitRuntime
	exitConfig
	exitDataset
)

func main() {
	os.Exit(run(os.Stderr))
}

var errNoTerminal = errors.New("no interactive terminal")

func run(stderr io.Writer) int {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(stderr, "Configuration error: %v\n", err)
		return exitConfig
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)
	return launch(stderr, runtimeCfg, collectTTYDetails(), app.Run)
}

// launch traces startup, runs the browser through start and traces the exit
// code on every path out.
func launch(stderr io.Writer, cfg config.Config, tty ttyDetails, start func(app.Config) error) int {
	events.App.Start(startupTracePayload(cfg, tty))
	if tty.Detected == nil {
		fmt.Fprintln(stderr, "dialogue-browser needs an interactive terminal")
		events.App.Exit(exitRuntime, errNoTerminal)
		return exitRuntime
	}

	if err := start(cfg.App); err != nil {
		logging.Error(err)
		code := reportRunError(stderr, cfg.App.DataPath, err)
		events.App.Exit(code, err)
		return code
	}
	events.App.Exit(exitOK, nil)
	return exitOK
}

// reportRunError prints err with a hint for the common dataset failures and
// picks the exit code.
func reportRunError(stderr io.Writer, path string, err error) int {
	switch {
	case errors.Is(err, os.ErrNotExist):
		fmt.Fprintf(stderr, "Error: dataset %s not found; pass -data or set DIALOGUE_BROWSER_DATA\n", path)
		return exitDataset
	case errors.Is(err, dataset.ErrMissingColumn):
		fmt.Fprintf(stderr, "Error: %v; check -dialogue-column\n", err)
		return exitDataset
	default:
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitRuntime
	}
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config, tty ttyDetails) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	payload := map[string]interface{}{
		"argv":   cfg.Args,
		"flags":  flags,
		"config": cfg,
		"dataset": map[string]interface{}{
			"path":      cfg.App.DataPath,
			"table":     cfg.App.Table,
			"selection": cfg.App.Initial.String(),
			"watch":     cfg.App.Watch,
		},
		"tty": tty,
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	} else {
		payload["cwdError"] = err.Error()
	}
	return payload
}

type ttyDetails struct {
	Detected *ttyDetected     `json:"detected,omitempty"`
	Probes   []ttyProbeResult `json:"probes"`
}

type ttyDetected struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type ttyProbeResult struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

// collectTTYDetails probes the descriptors the program draws on. Only stdin
// and stdout count as a usable terminal.
func collectTTYDetails() ttyDetails {
	probes := []struct {
		name   string
		file   *os.File
		usable bool
	}{
		{"stdin", os.Stdin, true},
		{"stdout", os.Stdout, true},
		{"stderr", os.Stderr, false},
	}
	details := ttyDetails{Probes: make([]ttyProbeResult, 0, len(probes))}
	for _, probe := range probes {
		entry := ttyProbeResult{Name: probe.name}
		fd := int(probe.file.Fd())
		entry.IsTerminal = term.IsTerminal(fd)
		if entry.IsTerminal {
			width, height, err := term.GetSize(fd)
			switch {
			case err != nil:
				entry.Error = err.Error()
			default:
				entry.Width, entry.Height = width, height
				if probe.usable && details.Detected == nil {
					details.Detected = &ttyDetected{Source: probe.name, Width: width, Height: height}
				}
			}
		}
		details.Probes = append(details.Probes, entry)
	}
	return details
}
