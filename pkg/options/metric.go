package options

//go:generate go run github.com/dmarkham/enumer -type StrikeMetric -trimprefix Metric -transform lower -output metric_enumer.go

// StrikeMetric selects which column the strike target is compared against.
type StrikeMetric int

const (
	MetricStrike StrikeMetric = iota
	MetricMoneyness
	MetricDelta
)
