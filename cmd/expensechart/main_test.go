package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"expensechart/internal/chart"
	"expensechart/internal/config"
	"expensechart/internal/core"
	applog "expensechart/internal/log"
)

const expensesJSON = `[
	{"date": "2024-01-05", "amount": 10, "category": "A"},
	{"date": "2024-01-28", "amount": 50, "category": "B"},
	{"date": "2024-02-03", "amount": 30, "category": "C"},
	{"date": "2024-02-04", "amount": 5}
]`

func testConfig() *config.Config {
	return &config.Config{
		CurrencySymbol:   "$",
		CurrencyDecimals: 2,
		AggregationMode:  "category",
		SortByValue:      true,
		ChartType:        "bar",
		ChartTitle:       "Spending",
		OutputFormat:     "data",
		LogLevel:         "info",
	}
}

func testLogger() *applog.Logger {
	return applog.New(applog.Config{Component: applog.ComponentApp, Output: io.Discard})
}

func writeInput(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "expenses.json")
	if err := os.WriteFile(path, []byte(expensesJSON), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	return path
}

func TestRunData(t *testing.T) {
	var out bytes.Buffer
	if err := run(context.Background(), testConfig(), []string{writeInput(t)}, &out, testLogger()); err != nil {
		t.Fatalf("run: %v", err)
	}
	var s core.ChartSeries
	if err := json.Unmarshal(out.Bytes(), &s); err != nil {
		t.Fatalf("output is not a series: %v\n%s", err, out.String())
	}
	if strings.Join(s.Labels, ",") != "B,C,A,Other" || s.Total != 95 {
		t.Fatalf("unexpected series: %+v", s)
	}
}

func TestRunLogsLoadAndRender(t *testing.T) {
	var logs bytes.Buffer
	logger := applog.New(applog.Config{Level: slog.LevelDebug, Component: applog.ComponentApp, Output: &logs})
	input := writeInput(t)
	bad := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(bad, []byte(`[{"date": "someday", "amount": 1}]`), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	args := []string{"-format", "chart", "-chart", "pie", input, bad}
	if err := run(context.Background(), testConfig(), args, io.Discard, logger); err != nil {
		t.Fatalf("run: %v", err)
	}
	out := logs.String()
	for _, frag := range []string{
		"operation=load",
		"input=" + input,
		"record_count=4",
		"level=WARN",
		"input_count=2",
		"component=chart",
		"operation=render",
		"chart_type=pie",
		"output=chart",
	} {
		if !strings.Contains(out, frag) {
			t.Fatalf("log output missing %q:\n%s", frag, out)
		}
	}

	logs.Reset()
	args = []string{"-format", "report", "-mode", "month", input}
	if err := run(context.Background(), testConfig(), args, io.Discard, logger); err != nil {
		t.Fatalf("run: %v", err)
	}
	if out := logs.String(); !strings.Contains(out, "component=report") || !strings.Contains(out, "output=report") {
		t.Fatalf("report render not logged:\n%s", out)
	}
}

func TestRunMonthIgnoresSort(t *testing.T) {
	var out bytes.Buffer
	args := []string{"-mode", "month", "-sort=true", writeInput(t)}
	if err := run(context.Background(), testConfig(), args, &out, testLogger()); err != nil {
		t.Fatalf("run: %v", err)
	}
	var s core.ChartSeries
	if err := json.Unmarshal(out.Bytes(), &s); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if strings.Join(s.Labels, ",") != "Jan 2024,Feb 2024" {
		t.Fatalf("unexpected labels: %v", s.Labels)
	}
}

func TestRunLineChartWithBudget(t *testing.T) {
	var out bytes.Buffer
	args := []string{"-format", "chart", "-chart", "line", "-mode", "week", "-currency", "€", "-budget", "40, 40", writeInput(t)}
	if err := run(context.Background(), testConfig(), args, &out, testLogger()); err != nil {
		t.Fatalf("run: %v", err)
	}
	var cfg chart.Config
	if err := json.Unmarshal(out.Bytes(), &cfg); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if cfg.Type != chart.KindLine || len(cfg.Data.Datasets) != 2 {
		t.Fatalf("unexpected chart: %+v", cfg)
	}
	// Dec 31, Jan 28 and Feb 4 weeks.
	if strings.Join(cfg.Data.Labels, ",") != "Dec 31,Jan 28,Feb 4" {
		t.Fatalf("unexpected labels: %v", cfg.Data.Labels)
	}
	if !strings.Contains(out.String(), `"Spending: €10.00"`) {
		t.Fatalf("currency not applied:\n%s", out.String())
	}
}

func TestRunSummary(t *testing.T) {
	var out bytes.Buffer
	args := []string{"-format", "summary", "-mode", "month", writeInput(t)}
	if err := run(context.Background(), testConfig(), args, &out, testLogger()); err != nil {
		t.Fatalf("run: %v", err)
	}
	text := out.String()
	for _, frag := range []string{"Jan 5, 2024 - Feb 4, 2024", "$60.00", "$35.00", "$95.00", "-41.7%"} {
		if !strings.Contains(text, frag) {
			t.Fatalf("summary missing %q:\n%s", frag, text)
		}
	}
}

func TestRunErrors(t *testing.T) {
	input := writeInput(t)
	cases := []struct {
		name string
		args []string
	}{
		{"unknown mode", []string{"-mode", "year", input}},
		{"no input", nil},
		{"bad budget", []string{"-budget", "1,x", input}},
		{"missing file", []string{filepath.Join(t.TempDir(), "nope.json")}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			if err := run(context.Background(), testConfig(), tc.args, &out, testLogger()); err == nil {
				t.Fatalf("expected error")
			}
			if out.Len() != 0 {
				t.Fatalf("no output expected on error, got %s", out.String())
			}
		})
	}
}

func TestRunHelp(t *testing.T) {
	err := run(context.Background(), testConfig(), []string{"-h"}, io.Discard, testLogger())
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("expected help error, got %v", err)
	}
}

func TestParseBudget(t *testing.T) {
	got, err := parseBudget("")
	if err != nil || got != nil {
		t.Fatalf("empty budget: %v %v", got, err)
	}
	got, err = parseBudget("100, 120.5,90")
	if err != nil || len(got) != 3 || got[1] != 120.5 {
		t.Fatalf("budget: %v %v", got, err)
	}
}
