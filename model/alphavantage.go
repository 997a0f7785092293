package model

// TimeSeriesEnvelope is the top-level Alpha Vantage response. The provider
// signals rate limiting ("Note"/"Information") and unknown symbols
// ("Error Message") inside an otherwise 200 body, so every sentinel has to
// be modeled here rather than inferred from HTTP status.
type TimeSeriesEnvelope struct {
	ErrorMessage  string                       `json:"Error Message"`
	Note          string                       `json:"Note"`
	Information   string                       `json:"Information"`
	Daily         map[string]map[string]string `json:"Time Series (Daily)"`
	DailyAdjusted map[string]map[string]string `json:"Time Series (Daily Adjusted)"`
}

// Series returns whichever series map the response carried.
func (e *TimeSeriesEnvelope) Series() map[string]map[string]string {
	if len(e.Daily) > 0 {
		return e.Daily
	}
	return e.DailyAdjusted
}

// SeriesRow mirrors the provider's numbered field labels. The adjusted
// variant reuses the same struct: "5. adjusted close" and "6. volume" land
// in their own fields and the client folds them into the canonical columns.
type SeriesRow struct {
	Open           string `mapstructure:"1. open"`
	High           string `mapstructure:"2. high"`
	Low            string `mapstructure:"3. low"`
	Close          string `mapstructure:"4. close"`
	Volume         string `mapstructure:"5. volume"`
	AdjustedClose  string `mapstructure:"5. adjusted close"`
	AdjustedVolume string `mapstructure:"6. volume"`
}
