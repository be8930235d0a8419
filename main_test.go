package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/atomicstack/dialogue-browser/internal/app"
	"github.com/atomicstack/dialogue-browser/internal/config"
	"github.com/atomicstack/dialogue-browser/internal/dataset"
	"github.com/atomicstack/dialogue-browser/internal/filter"
	"github.com/atomicstack/dialogue-browser/internal/logging"
)

func TestCollectTTYDetailsIncludesStandardDescriptors(t *testing.T) {
	info := collectTTYDetails()
	if len(info.Probes) != 3 {
		t.Fatalf("expected 3 probe entries, got %d", len(info.Probes))
	}
	expected := []string{"stdin", "stdout", "stderr"}
	for i, name := range expected {
		if info.Probes[i].Name != name {
			t.Fatalf("expected probe %d name %q, got %q", i, name, info.Probes[i].Name)
		}
	}
}

func TestStartupTracePayloadIncludesFlags(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			DataPath:      "complete_data.csv",
			Width:         80,
			Height:        24,
			ShowFooter:    true,
			Watch:         true,
			WatchInterval: 2 * time.Second,
			Initial:       filter.Selection{Category: "Physical"},
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		Flags: map[string]string{
			"data":     "complete_data.csv",
			"width":    "80",
			"height":   "24",
			"footer":   "true",
			"watch":    "true",
			"category": "Physical",
		},
		Args: []string{"-data", "complete_data.csv", "-category", "Physical"},
	}

	payload := startupTracePayload(cfg, collectTTYDetails())

	flagsValue, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	if flagsValue["data"] != "complete_data.csv" {
		t.Fatalf("expected data flag %q, got %v", "complete_data.csv", flagsValue["data"])
	}
	if flagsValue["width"] != "80" {
		t.Fatalf("expected width 80, got %v", flagsValue["width"])
	}
	if flagsValue["height"] != "24" {
		t.Fatalf("expected height 24, got %v", flagsValue["height"])
	}
	if flagsValue["footer"] != "true" {
		t.Fatalf("expected footer flag true, got %v", flagsValue["footer"])
	}
	if flagsValue["category"] != "Physical" {
		t.Fatalf("expected category flag Physical, got %v", flagsValue["category"])
	}
	if flagsValue["trace"] != true {
		t.Fatalf("expected trace flag true, got %v", flagsValue["trace"])
	}
	if flagsValue["logFile"] != "trace.log" {
		t.Fatalf("expected log file trace.log, got %v", flagsValue["logFile"])
	}

	ds, ok := payload["dataset"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected dataset section in payload")
	}
	if ds["path"] != "complete_data.csv" || ds["selection"] != cfg.App.Initial.String() || ds["watch"] != true {
		t.Fatalf("unexpected dataset section %v", ds)
	}
	if _, ok := payload["tty"].(ttyDetails); !ok {
		t.Fatalf("expected tty details in payload")
	}
	if cfgValue, ok := payload["config"].(config.Config); !ok {
		t.Fatalf("expected config in payload")
	} else if cfgValue.App != cfg.App {
		t.Fatalf("expected app config %#v, got %#v", cfg.App, cfgValue.App)
	}
}

func TestReportRunError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
		hint string
	}{
		{"missing file", fmt.Errorf("load dataset: %w", os.ErrNotExist), exitDataset, "not found"},
		{"missing column", fmt.Errorf("load dataset: %w %q", dataset.ErrMissingColumn, "type"), exitDataset, "-dialogue-column"},
		{"other", fmt.Errorf("boom"), exitRuntime, "Error: boom"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var out strings.Builder
			if code := reportRunError(&out, "complete_data.csv", tc.err); code != tc.code {
				t.Fatalf("expected exit %d, got %d", tc.code, code)
			}
			if !strings.Contains(out.String(), tc.hint) {
				t.Fatalf("expected %q in %q", tc.hint, out.String())
			}
		})
	}
}

func traceToTempLog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "trace.log")
	logging.Configure(path)
	logging.SetTraceEnabled(true)
	t.Cleanup(func() {
		logging.Configure("")
		logging.SetTraceEnabled(false)
	})
	return path
}

func TestLaunchWithoutTerminalTracesExit(t *testing.T) {
	path := traceToTempLog(t)
	var out strings.Builder
	start := func(app.Config) error {
		t.Fatal("expected browser not to start without a terminal")
		return nil
	}
	if code := launch(&out, config.Config{}, ttyDetails{}, start); code != exitRuntime {
		t.Fatalf("expected exit %d, got %d", exitRuntime, code)
	}
	if !strings.Contains(out.String(), "interactive terminal") {
		t.Fatalf("expected terminal notice, got %q", out.String())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read trace: %v", err)
	}
	trace := string(data)
	for _, want := range []string{`"event":"app.start"`, `"event":"app.exit"`, `"code":1`, `"error":"no interactive terminal"`} {
		if !strings.Contains(trace, want) {
			t.Fatalf("expected %s in trace, got:\n%s", want, trace)
		}
	}
}

func TestLaunchTracesCleanExit(t *testing.T) {
	path := traceToTempLog(t)
	tty := ttyDetails{Detected: &ttyDetected{Source: "stdout", Width: 80, Height: 24}}
	started := false
	start := func(app.Config) error {
		started = true
		return nil
	}
	var out strings.Builder
	if code := launch(&out, config.Config{}, tty, start); code != exitOK || !started {
		t.Fatalf("expected clean start and exit, got code %d started %v", code, started)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read trace: %v", err)
	}
	if !strings.Contains(string(data), `"code":0`) {
		t.Fatalf("expected exit code 0 traced, got:\n%s", data)
	}
}
