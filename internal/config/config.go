package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"expensechart/internal/chart"
	"expensechart/internal/core"
)

const (
	OutputData    = "data"
	OutputChart   = "chart"
	OutputSummary = "summary"
	OutputReport  = "report" // summary as JSON
)

type Config struct {
	// Formatting
	CurrencySymbol   string
	CurrencyDecimals int

	// Aggregation
	AggregationMode string
	SortByValue     bool

	// Output
	ChartType    string
	ChartTitle   string
	OutputFormat string

	LogLevel string
}

func Load() *Config {
	return &Config{
		CurrencySymbol:   getEnv("CURRENCY_SYMBOL", core.DefaultCurrency),
		CurrencyDecimals: getEnvInt("CURRENCY_DECIMALS", core.DefaultDecimals),

		AggregationMode: getEnv("AGGREGATION_MODE", string(core.ModeCategory)),
		SortByValue:     getEnvBool("SORT_BY_VALUE", true),

		ChartType:    getEnv("CHART_TYPE", string(chart.KindBar)),
		ChartTitle:   getEnv("CHART_TITLE", "Spending"),
		OutputFormat: getEnv("OUTPUT_FORMAT", OutputData),

		LogLevel: getEnv("LOG_LEVEL", "info"),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	if c.CurrencyDecimals < 0 || c.CurrencyDecimals > 20 {
		errors = append(errors, fmt.Sprintf("invalid currency decimals %d: must be between 0 and 20", c.CurrencyDecimals))
	}

	if _, err := core.ParseMode(c.AggregationMode); err != nil {
		errors = append(errors, fmt.Sprintf("invalid aggregation mode '%s': must be one of [category month week]", c.AggregationMode))
	}

	if _, err := chart.ParseKind(c.ChartType); err != nil {
		errors = append(errors, fmt.Sprintf("invalid chart type '%s': must be one of [bar line pie]", c.ChartType))
	}

	validFormats := []string{OutputData, OutputChart, OutputSummary, OutputReport}
	isValidFormat := false
	for _, f := range validFormats {
		if c.OutputFormat == f {
			isValidFormat = true
			break
		}
	}
	if !isValidFormat {
		errors = append(errors, fmt.Sprintf("invalid output format '%s': must be one of %v", c.OutputFormat, validFormats))
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be one of [debug info warn error]", c.LogLevel))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

// Mode returns the parsed aggregation mode. Call after Validate.
func (c *Config) Mode() core.Mode {
	m, _ := core.ParseMode(c.AggregationMode)
	return m
}

// CurrencyFormat returns the configured currency format.
func (c *Config) CurrencyFormat() core.CurrencyFormat {
	return core.CurrencyFormat{Symbol: c.CurrencySymbol, Decimals: c.CurrencyDecimals}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
