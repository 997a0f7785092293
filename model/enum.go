package model

// Period selects the bar interval served to the client.
type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
)

func (p Period) Valid() bool {
	switch p {
	case PeriodDaily, PeriodWeekly, PeriodMonthly:
		return true
	}
	return false
}

// ChartStyle is forwarded to the rendering frontend untouched; the backend
// only validates it.
type ChartStyle string

const (
	ChartLine   ChartStyle = "line"
	ChartCandle ChartStyle = "candlestick"
)

// SeriesKind discriminates a provider response at the client boundary, so
// sentinel-field checks never leak past it.
type SeriesKind int

const (
	SeriesOK SeriesKind = iota
	SeriesInvalidSymbol
	SeriesRateLimited
	SeriesEmpty
)

// SeriesOutcome is the decoded result of one series request.
type SeriesOutcome struct {
	Kind   SeriesKind
	Bars   []Bar
	Detail string
}
