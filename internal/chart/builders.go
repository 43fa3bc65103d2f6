package chart

import "expensechart/internal/core"

// Bar builds a single-series bar chart for categorical spending.
func Bar(p Params) Config {
	currency := p.currency()
	opts := baseOptions(p.Title)
	opts.Plugins.Legend = Legend{Display: false}
	opts.Scales = currencyScales(currency)

	return Config{
		Type: KindBar,
		Data: Data{
			Labels: p.Labels,
			Datasets: []Dataset{{
				Label:           "Spending",
				Data:            p.Data,
				BackgroundColor: Colors{blueFill},
				BorderColor:     blue,
				BorderWidth:     1,
				TooltipLabels:   tooltips(p.Data, func(_ int, v float64) string { return currency + core.FormatFixed(v, 2) }),
			}},
		},
		Options: opts,
	}
}

// Line builds a time-series line chart, with an optional budget series.
func Line(p Params) Config {
	currency := p.currency()
	datasets := []Dataset{lineDataset("Spending", p.Data, currency, blue, blueShade, 0.3, true)}

	hasBudget := p.BudgetLine != nil
	if hasBudget {
		budget := lineDataset("Budget", p.BudgetLine, currency, red, redShade, 0, false)
		budget.BorderDash = []int{5, 5}
		datasets = append(datasets, budget)
	}

	opts := baseOptions(p.Title)
	opts.Plugins.Legend = Legend{Display: hasBudget, Position: "top"}
	opts.Scales = currencyScales(currency)

	return Config{
		Type:    KindLine,
		Data:    Data{Labels: p.Labels, Datasets: datasets},
		Options: opts,
	}
}

func lineDataset(label string, data []float64, currency, border, background string, tension float64, fill bool) Dataset {
	return Dataset{
		Label:           label,
		Data:            data,
		BackgroundColor: Colors{background},
		BorderColor:     border,
		Tension:         ptr(tension),
		Fill:            ptr(fill),
		TooltipLabels: tooltips(data, func(_ int, v float64) string {
			return label + ": " + currency + core.FormatFixed(v, 2)
		}),
	}
}

// Pie builds a spending distribution chart. Tooltips show each slice's share
// of the total.
func Pie(p Params) Config {
	currency := p.currency()
	var total float64
	for _, v := range p.Data {
		total += v
	}

	opts := baseOptions(p.Title)
	opts.Plugins.Legend = Legend{Display: true, Position: "right"}

	return Config{
		Type: KindPie,
		Data: Data{
			Labels: p.Labels,
			Datasets: []Dataset{{
				Data:            p.Data,
				BackgroundColor: append(Colors(nil), piePalette...),
				BorderColor:     white,
				BorderWidth:     2,
				TooltipLabels: tooltips(p.Data, func(i int, v float64) string {
					var pct float64
					if total != 0 {
						pct = v / total * 100
					}
					return labelAt(p.Labels, i) + ": " + currency + core.FormatFixed(v, 2) +
						" (" + core.FormatFixed(pct, 1) + "%)"
				}),
			}},
		},
		Options: opts,
	}
}

func tooltips(data []float64, format func(i int, v float64) string) []string {
	out := make([]string, len(data))
	for i, v := range data {
		out[i] = format(i, v)
	}
	return out
}

func labelAt(labels []string, i int) string {
	if i < len(labels) {
		return labels[i]
	}
	return ""
}
