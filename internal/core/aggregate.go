package core

import (
	"fmt"
	"sort"
)

// Bucket maps grouping labels to summed amounts. Iteration order is the
// order in which labels were first added, unless the bucket was sorted.
type Bucket struct {
	keys []string
	sums map[string]float64
}

// NewBucket returns an empty bucket.
func NewBucket() *Bucket {
	return &Bucket{sums: make(map[string]float64)}
}

// Add adds amount to the sum for label, starting from 0 for new labels.
func (b *Bucket) Add(label string, amount float64) {
	if _, ok := b.sums[label]; !ok {
		b.keys = append(b.keys, label)
	}
	b.sums[label] += amount
}

// Len returns the number of distinct labels.
func (b *Bucket) Len() int {
	return len(b.keys)
}

// Labels returns the labels in iteration order.
func (b *Bucket) Labels() []string {
	return append([]string(nil), b.keys...)
}

// Amount returns the sum for label.
func (b *Bucket) Amount(label string) (float64, bool) {
	v, ok := b.sums[label]
	return v, ok
}

// KeyFunc derives a bucket label from an expense.
type KeyFunc func(Expense) string

// KeyFuncFor returns the label function for mode.
func KeyFuncFor(mode Mode) (KeyFunc, error) {
	switch mode {
	case ModeCategory:
		return Expense.CategoryOr, nil
	case ModeMonth:
		return func(e Expense) string { return MonthLabel(e.Date) }, nil
	case ModeWeek:
		return func(e Expense) string { return WeekLabel(e.Date) }, nil
	default:
		return nil, unknownMode(string(mode))
	}
}

// GroupBy folds expenses into a bucket, in input order.
func GroupBy(expenses []Expense, key KeyFunc) *Bucket {
	b := NewBucket()
	for _, e := range expenses {
		b.Add(key(e), e.Amount)
	}
	return b
}

// AggregateByCategory groups by category, empty categories under "Other".
func AggregateByCategory(expenses []Expense) *Bucket {
	return GroupBy(expenses, Expense.CategoryOr)
}

// AggregateByMonth groups by "Jan 2024" month labels.
func AggregateByMonth(expenses []Expense) *Bucket {
	return GroupBy(expenses, func(e Expense) string { return MonthLabel(e.Date) })
}

// AggregateByWeek groups by the Sunday starting each expense's week.
func AggregateByWeek(expenses []Expense) *Bucket {
	return GroupBy(expenses, func(e Expense) string { return WeekLabel(e.Date) })
}

// SortByAmount returns a copy of b ordered by descending amount. Equal
// amounts keep their insertion order.
func SortByAmount(b *Bucket) *Bucket {
	sorted := &Bucket{
		keys: b.Labels(),
		sums: make(map[string]float64, len(b.sums)),
	}
	for k, v := range b.sums {
		sorted.sums[k] = v
	}
	sort.SliceStable(sorted.keys, func(i, j int) bool {
		return sorted.sums[sorted.keys[i]] > sorted.sums[sorted.keys[j]]
	})
	return sorted
}

// ToChartFormat projects b into parallel label and amount sequences. Total is
// summed in sequence order.
func ToChartFormat(b *Bucket) ChartSeries {
	series := ChartSeries{
		Labels: make([]string, 0, b.Len()),
		Data:   make([]float64, 0, b.Len()),
	}
	for _, k := range b.keys {
		v := b.sums[k]
		series.Labels = append(series.Labels, k)
		series.Data = append(series.Data, v)
		series.Total += v
	}
	return series
}

// PrepareChartData groups, optionally sorts and projects expenses. Sorting
// only applies to ModeCategory; month and week buckets keep insertion order.
func PrepareChartData(expenses []Expense, mode Mode, sortByValue bool) (ChartSeries, error) {
	key, err := KeyFuncFor(mode)
	if err != nil {
		return ChartSeries{}, err
	}
	b := GroupBy(expenses, key)
	if sortByValue && mode == ModeCategory {
		b = SortByAmount(b)
	}
	return ToChartFormat(b), nil
}

func unknownMode(mode string) error {
	return fmt.Errorf("%w: %q", ErrUnknownAggregationMode, mode)
}
