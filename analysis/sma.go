package analysis

import (
	"stockviewer/model"

	"github.com/guregu/null/v6"
)

const (
	smaShortWindow = 20
	smaLongWindow  = 50
)

// AnnotateSMA returns a new table with trailing SMA20/SMA50 of the close
// column filled in. The window is inclusive of the current bar; bars without
// a full window of valid closes behind them keep a missing average, never a
// partial one.
func AnnotateSMA(bars []model.Bar) []model.Bar {
	out := make([]model.Bar, len(bars))
	copy(out, bars)

	for i := range out {
		out[i].SMA20 = trailingMean(bars, i, smaShortWindow)
		out[i].SMA50 = trailingMean(bars, i, smaLongWindow)
	}
	return out
}

func trailingMean(bars []model.Bar, i, window int) null.Float {
	if i+1 < window {
		return null.Float{}
	}
	sum := 0.0
	for j := i - window + 1; j <= i; j++ {
		if !bars[j].Close.Valid {
			return null.Float{}
		}
		sum += bars[j].Close.Float64
	}
	return null.FloatFrom(sum / float64(window))
}
