package core

// ChartSeries is the chart-ready projection of a bucket. Labels and Data are
// positionally paired and Total is the sum of Data.
type ChartSeries struct {
	Labels []string  `json:"labels"`
	Data   []float64 `json:"data"`
	Total  float64   `json:"total"`
}

// Len returns the number of points in the series.
func (s ChartSeries) Len() int {
	return len(s.Labels)
}
