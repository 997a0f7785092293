package model

import (
	"time"

	"github.com/guregu/null/v6"
)

// Bar is one canonical OHLCV trading period. Fields that failed numeric
// coercion at the provider boundary stay invalid instead of zero, so a
// half-parsed row is never mistaken for a real price.
type Bar struct {
	Date   time.Time
	Open   null.Float
	High   null.Float
	Low    null.Float
	Close  null.Float
	Volume null.Int
	SMA20  null.Float
	SMA50  null.Float
}

// BarDto is the JSON shape served to the frontend.
type BarDto struct {
	Date   string     `json:"date" example:"2024-01-02"`
	Open   null.Float `json:"open"`
	High   null.Float `json:"high"`
	Low    null.Float `json:"low"`
	Close  null.Float `json:"close"`
	Volume null.Int   `json:"volume"`
	SMA20  null.Float `json:"sma20"`
	SMA50  null.Float `json:"sma50"`
}

// DateLayout is the calendar-date format used for provider row keys,
// JSON payloads and CSV exports alike.
const DateLayout = "2006-01-02"
