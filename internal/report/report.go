// Package report summarises an aggregated series as text or JSON.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"expensechart/internal/core"
)

type (
	Options struct {
		Title  string
		Mode   core.Mode
		Format core.CurrencyFormat
	}

	Line struct {
		Label  string  `json:"label"`
		Amount string  `json:"amount"`
		Share  float64 `json:"share"` // percent of total, 0 when total is 0
	}

	// Change compares the last two buckets of a time series.
	Change struct {
		From    string  `json:"from"`
		To      string  `json:"to"`
		Percent float64 `json:"percent"`
	}

	Summary struct {
		Title  string  `json:"title"`
		Mode   string  `json:"mode"`
		Period string  `json:"period,omitempty"`
		Lines  []Line  `json:"lines"`
		Total  string  `json:"total"`
		Count  int     `json:"count"`
		Change *Change `json:"change,omitempty"`
	}
)

// Summarize builds a Summary for series, which was aggregated from expenses
// with opts.Mode. Period spans the earliest and latest valid dates.
func Summarize(series core.ChartSeries, expenses []core.Expense, opts Options) Summary {
	sum := Summary{
		Title: opts.Title,
		Mode:  opts.Mode.String(),
		Lines: make([]Line, 0, series.Len()),
		Total: opts.Format.Format(series.Total),
		Count: len(expenses),
	}
	for i, label := range series.Labels {
		var share float64
		if series.Total != 0 {
			share = series.Data[i] / series.Total * 100
		}
		sum.Lines = append(sum.Lines, Line{
			Label:  label,
			Amount: opts.Format.Format(series.Data[i]),
			Share:  share,
		})
	}

	if start, end, ok := dateSpan(expenses); ok {
		sum.Period = core.FormatDateRange(start, end)
	}

	if opts.Mode != core.ModeCategory && series.Len() >= 2 {
		n := series.Len()
		sum.Change = &Change{
			From:    series.Labels[n-2],
			To:      series.Labels[n-1],
			Percent: core.PercentageChange(series.Data[n-1], series.Data[n-2]),
		}
	}
	return sum
}

func dateSpan(expenses []core.Expense) (start, end core.Date, ok bool) {
	for _, e := range expenses {
		if !e.Date.IsValid() {
			continue
		}
		if !ok || e.Date.Before(start.Time) {
			start = e.Date
		}
		if !ok || e.Date.After(end.Time) {
			end = e.Date
		}
		ok = true
	}
	return start, end, ok
}

// WriteText renders s as a heading followed by an aligned table.
func WriteText(w io.Writer, s Summary) error {
	if s.Title != "" {
		if _, err := fmt.Fprintln(w, s.Title); err != nil {
			return err
		}
	}
	if s.Period != "" {
		if _, err := fmt.Fprintln(w, s.Period); err != nil {
			return err
		}
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, l := range s.Lines {
		fmt.Fprintf(tw, "%s\t%s\t%s%%\n", l.Label, l.Amount, core.FormatFixed(l.Share, 1))
	}
	fmt.Fprintf(tw, "Total (%d expenses)\t%s\t\n", s.Count, s.Total)
	if s.Change != nil {
		fmt.Fprintf(tw, "%s -> %s\t%s%%\t\n", s.Change.From, s.Change.To, signed(s.Change.Percent))
	}
	return tw.Flush()
}

// WriteJSON renders s as indented JSON.
func WriteJSON(w io.Writer, s Summary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

func signed(pct float64) string {
	s := core.FormatFixed(pct, 1)
	if pct > 0 {
		return "+" + s
	}
	return s
}
