package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"expensechart/internal/core"
)

func sample() []core.Expense {
	return []core.Expense{
		{Date: core.ParseDate("2024-01-05"), Amount: 100, Category: "Rent"},
		{Date: core.ParseDate("2024-02-10"), Amount: 150, Category: "Food"},
		{Date: core.ParseDate("bad"), Amount: 0, Category: "Food"},
		{Date: core.ParseDate("2024-01-28"), Amount: 50, Category: ""},
	}
}

func TestSummarizeMonth(t *testing.T) {
	expenses := sample()
	series, err := core.PrepareChartData(expenses, core.ModeMonth, true)
	if err != nil {
		t.Fatalf("prepare: %v", err)
	}
	s := Summarize(series, expenses, Options{Title: "Monthly", Mode: core.ModeMonth, Format: core.DefaultCurrencyFormat()})

	if s.Period != "Jan 5, 2024 - Feb 10, 2024" {
		t.Fatalf("period = %q", s.Period)
	}
	if s.Total != "$300.00" || s.Count != 4 {
		t.Fatalf("total = %q count = %d", s.Total, s.Count)
	}
	if len(s.Lines) != 3 || s.Lines[0].Label != "Jan 2024" || s.Lines[0].Amount != "$150.00" || s.Lines[0].Share != 50 {
		t.Fatalf("unexpected lines: %+v", s.Lines)
	}
	// Last two buckets are "Feb 2024" (150) and "Invalid Date" (0).
	if s.Change == nil || s.Change.From != "Feb 2024" || s.Change.To != core.InvalidDateLabel || s.Change.Percent != -100 {
		t.Fatalf("unexpected change: %+v", s.Change)
	}
}

func TestSummarizeCategoryHasNoChange(t *testing.T) {
	expenses := sample()
	series, _ := core.PrepareChartData(expenses, core.ModeCategory, true)
	s := Summarize(series, expenses, Options{Mode: core.ModeCategory, Format: core.CurrencyFormat{Symbol: "€", Decimals: 0}})
	if s.Change != nil {
		t.Fatalf("category summary should not carry a change")
	}
	if s.Lines[0].Label != "Food" || s.Lines[0].Amount != "€150" {
		t.Fatalf("unexpected first line: %+v", s.Lines[0])
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(core.ChartSeries{}, nil, Options{Mode: core.ModeWeek, Format: core.DefaultCurrencyFormat()})
	if s.Period != "" || s.Change != nil || len(s.Lines) != 0 || s.Total != "$0.00" {
		t.Fatalf("unexpected empty summary: %+v", s)
	}
}

func TestWriteText(t *testing.T) {
	expenses := sample()[:2]
	series, _ := core.PrepareChartData(expenses, core.ModeMonth, true)
	s := Summarize(series, expenses, Options{Title: "Spending", Mode: core.ModeMonth, Format: core.DefaultCurrencyFormat()})

	var buf bytes.Buffer
	if err := WriteText(&buf, s); err != nil {
		t.Fatalf("write: %v", err)
	}
	out := buf.String()
	for _, frag := range []string{"Spending\n", "Jan 5, 2024 - Feb 10, 2024\n", "Jan 2024", "$100.00", "40.0%", "Total (2 expenses)", "$250.00", "Jan 2024 -> Feb 2024", "+50.0%"} {
		if !strings.Contains(out, frag) {
			t.Fatalf("output missing %q:\n%s", frag, out)
		}
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, Summary{Title: "x", Lines: []Line{}, Total: "$0.00"}); err != nil {
		t.Fatalf("write: %v", err)
	}
	var back map[string]any
	if err := json.Unmarshal(buf.Bytes(), &back); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if _, ok := back["change"]; ok {
		t.Fatalf("nil change should be omitted")
	}
}
