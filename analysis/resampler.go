package analysis

import (
	"time"

	"stockviewer/model"

	"github.com/guregu/null/v6"
)

// Resample aggregates a daily table into weekly or monthly bars. Buckets are
// calendar aligned (ISO week, calendar month) and labeled by bucket end, so
// resampling an already-resampled table is a no-op. Any other period is an
// identity passthrough returning a shallow copy; the input is never mutated.
func Resample(bars []model.Bar, period model.Period) []model.Bar {
	if period != model.PeriodWeekly && period != model.PeriodMonthly {
		out := make([]model.Bar, len(bars))
		copy(out, bars)
		return out
	}

	out := make([]model.Bar, 0, len(bars))
	var bucket []model.Bar
	var end time.Time

	flush := func() {
		if agg, ok := aggregate(bucket, end); ok {
			out = append(out, agg)
		}
		bucket = bucket[:0]
	}

	for _, bar := range bars {
		barEnd := bucketEnd(bar.Date, period)
		if len(bucket) > 0 && !barEnd.Equal(end) {
			flush()
		}
		end = barEnd
		bucket = append(bucket, bar)
	}
	if len(bucket) > 0 {
		flush()
	}

	return out
}

// bucketEnd returns the calendar label for a date: the Sunday closing its
// ISO week, or the last day of its month.
func bucketEnd(date time.Time, period model.Period) time.Time {
	if period == model.PeriodWeekly {
		isoWeekday := int(date.Weekday())
		if isoWeekday == 0 {
			isoWeekday = 7
		}
		return date.AddDate(0, 0, 7-isoWeekday)
	}
	return time.Date(date.Year(), date.Month()+1, 0, 0, 0, 0, 0, date.Location())
}

// aggregate applies the per-column rules: open=first, high=max, low=min,
// close=last, volume=sum, each skipping missing inputs. A bucket where any
// aggregate ends up undefined is dropped rather than interpolated.
func aggregate(bucket []model.Bar, end time.Time) (model.Bar, bool) {
	var open, high, low, lastClose null.Float
	var volume null.Int

	for _, bar := range bucket {
		if bar.Open.Valid && !open.Valid {
			open = bar.Open
		}
		if bar.Close.Valid {
			lastClose = bar.Close
		}
		if bar.High.Valid && (!high.Valid || bar.High.Float64 > high.Float64) {
			high = bar.High
		}
		if bar.Low.Valid && (!low.Valid || bar.Low.Float64 < low.Float64) {
			low = bar.Low
		}
		if bar.Volume.Valid {
			volume = null.IntFrom(volume.Int64 + bar.Volume.Int64)
		}
	}

	if !open.Valid || !high.Valid || !low.Valid || !lastClose.Valid || !volume.Valid {
		return model.Bar{}, false
	}

	return model.Bar{
		Date:   end,
		Open:   open,
		High:   high,
		Low:    low,
		Close:  lastClose,
		Volume: volume,
	}, true
}
