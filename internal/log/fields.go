package log

// Common field names for structured logging
const (
	FieldComponent   = "component"
	FieldRunID       = "run_id"
	FieldOperation   = "operation"
	FieldError       = "error"
	FieldInput       = "input"
	FieldInputCount  = "input_count"
	FieldRecordCount = "record_count"
	FieldBucketCount = "bucket_count"
	FieldMode        = "mode"
	FieldSorted      = "sorted"
	FieldChartType   = "chart_type"
	FieldOutput      = "output"
	FieldDuration    = "duration_ms"
)

// Components defines standard component names
const (
	ComponentApp       = "app"
	ComponentConfig    = "config"
	ComponentIngest    = "ingest"
	ComponentAggregate = "aggregate"
	ComponentChart     = "chart"
	ComponentReport    = "report"
)

// Operations defines standard operation names
const (
	OpLoad      = "load"
	OpAggregate = "aggregate"
	OpRender    = "render"
	OpValidate  = "validate"
)

// LogFields provides a builder pattern for structured log fields
type LogFields map[string]any

// NewFields creates a new LogFields instance
func NewFields() LogFields {
	return make(LogFields)
}

// WithError adds error field
func (f LogFields) WithError(err error) LogFields {
	if err != nil {
		f[FieldError] = err.Error()
	}
	return f
}

// WithOperation adds operation field
func (f LogFields) WithOperation(op string) LogFields {
	f[FieldOperation] = op
	return f
}

// WithAggregation adds aggregation fields
func (f LogFields) WithAggregation(mode string, sorted bool, records, buckets int) LogFields {
	f[FieldMode] = mode
	f[FieldSorted] = sorted
	f[FieldRecordCount] = records
	f[FieldBucketCount] = buckets
	return f
}

// WithDuration adds elapsed milliseconds
func (f LogFields) WithDuration(ms int64) LogFields {
	f[FieldDuration] = ms
	return f
}

// ToSlice converts LogFields to a slice for slog
func (f LogFields) ToSlice() []any {
	slice := make([]any, 0, len(f)*2)
	for k, v := range f {
		slice = append(slice, k, v)
	}
	return slice
}
