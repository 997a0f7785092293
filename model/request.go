package model

// HistoryRequest carries the viewer controls from the frontend.
type HistoryRequest struct {
	Symbol string     `json:"symbol" example:"MSFT"`
	Period Period     `json:"period" example:"daily" enums:"daily,weekly,monthly"`
	Bars   int        `json:"bars" example:"180"`
	SMA    bool       `json:"sma" example:"true"`
	Chart  ChartStyle `json:"chart,omitempty" example:"candlestick" enums:"line,candlestick"`
}

// QuoteView is the final table handed to the rendering collaborator.
type QuoteView struct {
	Symbol  string   `json:"symbol" example:"MSFT"`
	Period  Period   `json:"period" example:"daily"`
	Status  string   `json:"status" example:"fresh"`
	Warning string   `json:"warning,omitempty"`
	Bars    []BarDto `json:"bars"`
}

const (
	StatusFresh          = "fresh"
	StatusFallbackPrefix = "fallback: "
)
