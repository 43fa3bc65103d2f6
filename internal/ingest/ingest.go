// Package ingest decodes expense records from JSON and CSV files.
package ingest

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"expensechart/internal/core"
)

// Stdin is the path that reads JSON records from standard input.
const Stdin = "-"

var (
	ErrUnsupportedFormat = errors.New("unsupported input format")
	ErrMissingColumn     = errors.New("missing required column")
	ErrInvalidAmount     = errors.New("invalid amount")
)

// maxEpochMillis bounds numeric dates to ±100,000,000 days around the epoch.
const maxEpochMillis = 8.64e15

// record is the JSON shape of one expense. Date, category and amount are
// decoded loosely so any JSON scalar is accepted.
type record struct {
	Date        json.RawMessage `json:"date"`
	Amount      json.RawMessage `json:"amount"`
	Category    json.RawMessage `json:"category"`
	Description string          `json:"description"`
}

// DecodeJSON reads an array of {date, amount, category, description} objects.
func DecodeJSON(r io.Reader) ([]core.Expense, error) {
	var recs []record
	if err := json.NewDecoder(r).Decode(&recs); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	out := make([]core.Expense, 0, len(recs))
	for i, rec := range recs {
		amount, err := parseJSONAmount(rec.Amount)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		out = append(out, core.Expense{
			Date:        dateFromJSON(rec.Date),
			Amount:      amount,
			Category:    categoryFromJSON(rec.Category),
			Description: rec.Description,
		})
	}
	return out, nil
}

// categoryFromJSON returns "" for falsy values (absent, null, false, 0, "")
// and the textual form of anything else.
func categoryFromJSON(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return ""
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return ""
	}
	switch c := v.(type) {
	case nil:
		return ""
	case string:
		return c
	case bool:
		if !c {
			return ""
		}
		return "true"
	case float64:
		if c == 0 {
			return ""
		}
		return strconv.FormatFloat(c, 'f', -1, 64)
	default:
		// objects and arrays are truthy
		return string(raw)
	}
}

// dateFromJSON accepts a date string or a number of milliseconds since the
// Unix epoch. Anything else is an invalid date.
func dateFromJSON(raw json.RawMessage) core.Date {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return core.Date{}
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return core.Date{}
	}
	switch d := v.(type) {
	case string:
		return core.ParseDate(d)
	case float64:
		if math.Abs(d) > maxEpochMillis {
			return core.Date{}
		}
		return core.DateOf(time.UnixMilli(int64(d)).UTC())
	default:
		return core.Date{}
	}
}

func parseJSONAmount(raw json.RawMessage) (float64, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" {
		return 0, fmt.Errorf("%w: missing", ErrInvalidAmount)
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return n, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, fmt.Errorf("%w: %s", ErrInvalidAmount, raw)
	}
	return parseAmount(s)
}

func parseAmount(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return v, nil
}

// DecodeCSV reads records with a header naming at least date and amount.
// Column names are matched case-insensitively; category and description are
// optional.
func DecodeCSV(r io.Reader) ([]core.Expense, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	cols := map[string]int{}
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"date", "amount"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, required)
		}
	}
	field := func(row []string, name string) string {
		i, ok := cols[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	var out []core.Expense
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		amount, err := parseAmount(field(row, "amount"))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		out = append(out, core.Expense{
			Date:        core.ParseDate(field(row, "date")),
			Amount:      amount,
			Category:    field(row, "category"),
			Description: field(row, "description"),
		})
	}
	return out, nil
}

// LoadFile decodes path according to its extension. Stdin reads JSON from
// standard input.
func LoadFile(path string) ([]core.Expense, error) {
	if path == Stdin {
		return DecodeJSON(os.Stdin)
	}

	var decode func(io.Reader) ([]core.Expense, error)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		decode = DecodeJSON
	case ".csv":
		decode = DecodeCSV
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	expenses, err := decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return expenses, nil
}

// LoadEach decodes paths concurrently. The result holds one slice of records
// per path, in argument order.
func LoadEach(ctx context.Context, paths []string) ([][]core.Expense, error) {
	results := make([][]core.Expense, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			expenses, err := LoadFile(path)
			if err != nil {
				return err
			}
			results[i] = expenses
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// LoadFiles decodes paths concurrently and concatenates their records in
// argument order.
func LoadFiles(ctx context.Context, paths []string) ([]core.Expense, error) {
	results, err := LoadEach(ctx, paths)
	if err != nil {
		return nil, err
	}
	return Concat(results), nil
}

// Concat joins per-file records into one slice.
func Concat(results [][]core.Expense) []core.Expense {
	var all []core.Expense
	for _, r := range results {
		all = append(all, r...)
	}
	return all
}
