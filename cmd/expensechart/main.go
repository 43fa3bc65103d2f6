package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"expensechart/internal/chart"
	"expensechart/internal/cli"
	"expensechart/internal/config"
	"expensechart/internal/core"
	"expensechart/internal/ingest"
	applog "expensechart/internal/log"
	"expensechart/internal/report"
)

func main() {
	cfg := cli.LoadConfig()
	logger := cli.SetupLogger(cfg.LogLevel)

	ctx, stop := cli.SignalContext()
	defer stop()

	if err := run(ctx, cfg, os.Args[1:], os.Stdout, logger); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			logger.ErrorContext(ctx, "expensechart failed", applog.NewFields().WithError(err).ToSlice()...)
		}
		stop()
		os.Exit(1)
	}
}

// run applies flag overrides to cfg, loads the input files and writes the
// requested output to w.
func run(ctx context.Context, cfg *config.Config, args []string, w io.Writer, logger *applog.Logger) error {
	fs := flag.NewFlagSet("expensechart", flag.ContinueOnError)
	fs.StringVar(&cfg.AggregationMode, "mode", cfg.AggregationMode, "aggregation mode: category, month or week")
	fs.BoolVar(&cfg.SortByValue, "sort", cfg.SortByValue, "sort category buckets by descending amount")
	fs.StringVar(&cfg.OutputFormat, "format", cfg.OutputFormat, "output: data, chart, summary or report")
	fs.StringVar(&cfg.ChartType, "chart", cfg.ChartType, "chart type: bar, line or pie")
	fs.StringVar(&cfg.ChartTitle, "title", cfg.ChartTitle, "chart or summary title")
	fs.StringVar(&cfg.CurrencySymbol, "currency", cfg.CurrencySymbol, "currency symbol")
	fs.IntVar(&cfg.CurrencyDecimals, "decimals", cfg.CurrencyDecimals, "decimal places in formatted amounts")
	budget := fs.String("budget", "", "comma-separated budget values for line charts")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: expensechart [flags] file.json|file.csv|- ...\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := cli.ValidateConfig(logger.WithComponent(applog.ComponentConfig), cfg); err != nil {
		return err
	}
	paths := fs.Args()
	if len(paths) == 0 {
		fs.Usage()
		return errors.New("no input files")
	}
	budgetLine, err := parseBudget(*budget)
	if err != nil {
		return err
	}

	start := time.Now()
	perFile, err := ingest.LoadEach(ctx, paths)
	if err != nil {
		return fmt.Errorf("load expenses: %w", err)
	}
	ingestLog := logger.WithComponent(applog.ComponentIngest)
	for i, path := range paths {
		ingestLog.DebugContext(ctx, "Input loaded",
			applog.FieldOperation, applog.OpLoad,
			applog.FieldInput, path,
			applog.FieldRecordCount, len(perFile[i]))
	}
	expenses := ingest.Concat(perFile)
	if n := countInvalidDates(expenses); n > 0 {
		ingestLog.Warn("Expenses with unparseable dates",
			applog.FieldRecordCount, n)
	}

	mode := cfg.Mode()
	series, err := core.PrepareChartData(expenses, mode, cfg.SortByValue)
	if err != nil {
		return fmt.Errorf("aggregate: %w", err)
	}
	fields := applog.NewFields().
		WithOperation(applog.OpAggregate).
		WithAggregation(mode.String(), cfg.SortByValue && mode == core.ModeCategory, len(expenses), series.Len()).
		WithDuration(time.Since(start).Milliseconds())
	logger.WithComponent(applog.ComponentAggregate).InfoContext(ctx, "Expenses aggregated",
		append(fields.ToSlice(), applog.FieldInputCount, len(paths))...)

	return render(ctx, w, cfg, series, expenses, budgetLine, logger)
}

func countInvalidDates(expenses []core.Expense) int {
	n := 0
	for _, e := range expenses {
		if !e.Date.IsValid() {
			n++
		}
	}
	return n
}

func render(ctx context.Context, w io.Writer, cfg *config.Config, series core.ChartSeries, expenses []core.Expense, budgetLine []float64, logger *applog.Logger) error {
	switch cfg.OutputFormat {
	case config.OutputChart:
		kind, err := chart.ParseKind(cfg.ChartType)
		if err != nil {
			return err
		}
		params := chart.FromSeries(cfg.ChartTitle, series, cfg.CurrencySymbol)
		params.BudgetLine = budgetLine
		c, err := chart.Build(kind, params)
		if err != nil {
			return err
		}
		logger.WithComponent(applog.ComponentChart).DebugContext(ctx, "Chart built",
			applog.FieldOperation, applog.OpRender,
			applog.FieldChartType, string(kind),
			applog.FieldOutput, cfg.OutputFormat,
			applog.FieldBucketCount, series.Len())
		return writeJSON(w, c)
	case config.OutputSummary, config.OutputReport:
		s := report.Summarize(series, expenses, report.Options{
			Title:  cfg.ChartTitle,
			Mode:   cfg.Mode(),
			Format: cfg.CurrencyFormat(),
		})
		logger.WithComponent(applog.ComponentReport).DebugContext(ctx, "Report built",
			applog.FieldOperation, applog.OpRender,
			applog.FieldOutput, cfg.OutputFormat,
			applog.FieldBucketCount, len(s.Lines))
		if cfg.OutputFormat == config.OutputReport {
			return report.WriteJSON(w, s)
		}
		return report.WriteText(w, s)
	default:
		return writeJSON(w, series)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// parseBudget reads "100,120.5,90". An empty string means no budget line.
func parseBudget(s string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid budget value %q: %w", p, err)
		}
		out = append(out, v)
	}
	return out, nil
}
