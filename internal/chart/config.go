// Package chart builds Chart.js configuration objects for spending data.
//
// Chart.js formats tooltips and ticks with JavaScript callbacks, which cannot
// be serialised. Each dataset therefore carries precomputed tooltipLabels and
// the y axis carries a currency prefix; the page wiring the config reads them
// from its callbacks.
package chart

import (
	"encoding/json"
	"errors"
	"fmt"

	"expensechart/internal/core"
)

const (
	KindBar  Kind = "bar"
	KindLine Kind = "line"
	KindPie  Kind = "pie"
)

const (
	blue        = "rgba(59, 130, 246, 1)"
	blueFill    = "rgba(59, 130, 246, 0.8)"
	blueShade   = "rgba(59, 130, 246, 0.1)"
	red         = "rgba(239, 68, 68, 1)"
	redShade    = "rgba(239, 68, 68, 0.1)"
	white       = "rgba(255, 255, 255, 1)"
	titleSize   = 16
	titleWeight = "bold"
)

// piePalette is cycled by Chart.js when there are more slices than colours.
var piePalette = []string{
	"rgba(59, 130, 246, 0.8)", // blue
	"rgba(16, 185, 129, 0.8)", // green
	"rgba(251, 146, 60, 0.8)", // orange
	"rgba(139, 92, 246, 0.8)", // purple
	"rgba(236, 72, 153, 0.8)", // pink
	"rgba(245, 158, 11, 0.8)", // amber
	"rgba(20, 184, 166, 0.8)", // teal
	"rgba(239, 68, 68, 0.8)",  // red
}

var ErrUnknownChartType = errors.New("unknown chart type")

type (
	// Kind is the Chart.js chart type.
	Kind string

	// Params are the inputs shared by all builders. An empty Currency means "$".
	Params struct {
		Title    string
		Labels   []string
		Data     []float64
		Currency string
		// BudgetLine adds a dashed "Budget" series to line charts when non-nil.
		BudgetLine []float64
	}

	Config struct {
		Type    Kind    `json:"type"`
		Data    Data    `json:"data"`
		Options Options `json:"options"`
	}

	Data struct {
		Labels   []string  `json:"labels"`
		Datasets []Dataset `json:"datasets"`
	}

	Dataset struct {
		Label           string    `json:"label,omitempty"`
		Data            []float64 `json:"data"`
		BackgroundColor Colors    `json:"backgroundColor,omitempty"`
		BorderColor     string    `json:"borderColor,omitempty"`
		BorderWidth     int       `json:"borderWidth,omitempty"`
		BorderDash      []int     `json:"borderDash,omitempty"`
		Tension         *float64  `json:"tension,omitempty"`
		Fill            *bool     `json:"fill,omitempty"`
		TooltipLabels   []string  `json:"tooltipLabels"`
	}

	Options struct {
		Responsive          bool    `json:"responsive"`
		MaintainAspectRatio bool    `json:"maintainAspectRatio"`
		Plugins             Plugins `json:"plugins"`
		Scales              *Scales `json:"scales,omitempty"`
	}

	Plugins struct {
		Title  Title  `json:"title"`
		Legend Legend `json:"legend"`
	}

	Title struct {
		Display bool   `json:"display"`
		Text    string `json:"text"`
		Font    Font   `json:"font"`
	}

	Font struct {
		Size   int    `json:"size"`
		Weight string `json:"weight"`
	}

	Legend struct {
		Display  bool   `json:"display"`
		Position string `json:"position,omitempty"`
	}

	Scales struct {
		Y Axis `json:"y"`
	}

	Axis struct {
		BeginAtZero bool  `json:"beginAtZero"`
		Ticks       Ticks `json:"ticks"`
	}

	// Ticks describes y axis labels as prefix + value rounded to Precision.
	Ticks struct {
		Prefix    string `json:"prefix"`
		Precision int    `json:"precision"`
	}

	// Colors marshals as a single string when it holds one colour.
	Colors []string
)

func (c Colors) MarshalJSON() ([]byte, error) {
	if len(c) == 1 {
		return json.Marshal(c[0])
	}
	return json.Marshal([]string(c))
}

// UnmarshalJSON accepts both shapes MarshalJSON writes, so a Config emitted by
// the command can be decoded back by Go consumers of its output.
func (c *Colors) UnmarshalJSON(b []byte) error {
	var one string
	if err := json.Unmarshal(b, &one); err == nil {
		*c = Colors{one}
		return nil
	}
	var many []string
	if err := json.Unmarshal(b, &many); err != nil {
		return err
	}
	*c = many
	return nil
}

// ParseKind maps a chart type name to a Kind.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindBar, KindLine, KindPie:
		return k, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownChartType, s)
	}
}

// Build dispatches to the builder for kind.
func Build(kind Kind, p Params) (Config, error) {
	switch kind {
	case KindBar:
		return Bar(p), nil
	case KindLine:
		return Line(p), nil
	case KindPie:
		return Pie(p), nil
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownChartType, kind)
	}
}

// FromSeries fills Labels and Data from an aggregated series.
func FromSeries(title string, s core.ChartSeries, currency string) Params {
	return Params{
		Title:    title,
		Labels:   s.Labels,
		Data:     s.Data,
		Currency: currency,
	}
}

func (p Params) currency() string {
	if p.Currency == "" {
		return core.DefaultCurrency
	}
	return p.Currency
}

func baseOptions(title string) Options {
	return Options{
		Responsive:          true,
		MaintainAspectRatio: false,
		Plugins: Plugins{
			Title: Title{
				Display: true,
				Text:    title,
				Font:    Font{Size: titleSize, Weight: titleWeight},
			},
		},
	}
}

func currencyScales(currency string) *Scales {
	return &Scales{Y: Axis{
		BeginAtZero: true,
		Ticks:       Ticks{Prefix: currency, Precision: 0},
	}}
}

func ptr[T any](v T) *T {
	return &v
}
