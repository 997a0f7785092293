package analysis

import (
	"reflect"
	"testing"
	"time"

	"stockviewer/model"

	"github.com/guregu/null/v6"
)

func mkBar(date string, o, h, l, c float64, v int64) model.Bar {
	d, _ := time.Parse(model.DateLayout, date)
	return model.Bar{
		Date:   d,
		Open:   null.FloatFrom(o),
		High:   null.FloatFrom(h),
		Low:    null.FloatFrom(l),
		Close:  null.FloatFrom(c),
		Volume: null.IntFrom(v),
	}
}

// 2024-01-01 is a Monday; the whole slice sits in one ISO week.
func oneTradingWeek() []model.Bar {
	return []model.Bar{
		mkBar("2024-01-01", 10, 12, 9, 11, 100),
		mkBar("2024-01-02", 11, 13, 10, 12, 100),
		mkBar("2024-01-03", 12, 14, 11, 13, 100),
		mkBar("2024-01-04", 13, 15, 12, 14, 100),
		mkBar("2024-01-05", 14, 16, 13, 15, 100),
	}
}

func TestResampleWeeklyAggregatesOneBucket(t *testing.T) {
	got := Resample(oneTradingWeek(), model.PeriodWeekly)
	if len(got) != 1 {
		t.Fatalf("expected 1 weekly bar, got %d", len(got))
	}

	bar := got[0]
	if want, _ := time.Parse(model.DateLayout, "2024-01-07"); !bar.Date.Equal(want) {
		t.Errorf("label = %v, want %v", bar.Date, want)
	}
	if bar.Open.Float64 != 10 || bar.High.Float64 != 16 || bar.Low.Float64 != 9 || bar.Close.Float64 != 15 {
		t.Errorf("aggregates = o:%v h:%v l:%v c:%v, want o:10 h:16 l:9 c:15",
			bar.Open.Float64, bar.High.Float64, bar.Low.Float64, bar.Close.Float64)
	}
	if bar.Volume.Int64 != 500 {
		t.Errorf("volume = %d, want 500", bar.Volume.Int64)
	}
}

func TestResampleWeeklySplitsAcrossWeeks(t *testing.T) {
	bars := []model.Bar{
		mkBar("2024-01-05", 10, 12, 9, 11, 100), // Friday, week ending 01-07
		mkBar("2024-01-08", 11, 13, 10, 12, 100), // Monday, week ending 01-14
	}
	got := Resample(bars, model.PeriodWeekly)
	if len(got) != 2 {
		t.Fatalf("expected 2 weekly bars, got %d", len(got))
	}
	first, _ := time.Parse(model.DateLayout, "2024-01-07")
	second, _ := time.Parse(model.DateLayout, "2024-01-14")
	if !got[0].Date.Equal(first) || !got[1].Date.Equal(second) {
		t.Errorf("labels = %v, %v, want %v, %v", got[0].Date, got[1].Date, first, second)
	}
}

func TestResampleMonthlyLabelsMonthEnd(t *testing.T) {
	bars := []model.Bar{
		mkBar("2024-01-15", 10, 12, 9, 11, 100),
		mkBar("2024-01-31", 11, 13, 10, 12, 100),
		mkBar("2024-02-01", 12, 14, 11, 13, 100),
	}
	got := Resample(bars, model.PeriodMonthly)
	if len(got) != 2 {
		t.Fatalf("expected 2 monthly bars, got %d", len(got))
	}
	jan, _ := time.Parse(model.DateLayout, "2024-01-31")
	feb, _ := time.Parse(model.DateLayout, "2024-02-29")
	if !got[0].Date.Equal(jan) {
		t.Errorf("january label = %v, want %v", got[0].Date, jan)
	}
	if !got[1].Date.Equal(feb) {
		t.Errorf("february label = %v, want %v", got[1].Date, feb)
	}
	if got[0].Volume.Int64 != 200 {
		t.Errorf("january volume = %d, want 200", got[0].Volume.Int64)
	}
}

func TestResampleWeeklyIdempotent(t *testing.T) {
	daily := append(oneTradingWeek(),
		mkBar("2024-01-08", 15, 17, 14, 16, 100),
		mkBar("2024-01-09", 16, 18, 15, 17, 100),
	)
	weekly := Resample(daily, model.PeriodWeekly)
	again := Resample(weekly, model.PeriodWeekly)
	if !reflect.DeepEqual(weekly, again) {
		t.Errorf("re-resampling changed the table:\n%+v\nvs\n%+v", weekly, again)
	}
}

func TestResampleDailyReturnsCopy(t *testing.T) {
	daily := oneTradingWeek()
	got := Resample(daily, model.PeriodDaily)
	if len(got) != len(daily) {
		t.Fatalf("expected passthrough of %d bars, got %d", len(daily), len(got))
	}
	got[0].Close = null.FloatFrom(999)
	if daily[0].Close.Float64 == 999 {
		t.Error("daily passthrough aliases the input table")
	}
}

func TestResampleDropsBucketWithUndefinedAggregate(t *testing.T) {
	blind := mkBar("2024-01-08", 0, 17, 14, 16, 100)
	blind.Open = null.Float{}
	bars := append(oneTradingWeek(), blind)

	got := Resample(bars, model.PeriodWeekly)
	if len(got) != 1 {
		t.Fatalf("expected the open-less bucket to be dropped, got %d bars", len(got))
	}
	if want, _ := time.Parse(model.DateLayout, "2024-01-07"); !got[0].Date.Equal(want) {
		t.Errorf("surviving label = %v, want %v", got[0].Date, want)
	}
}

func TestResampleSkipsMissingInsideAggregate(t *testing.T) {
	bars := oneTradingWeek()
	bars[0].High = null.Float{} // max should come from the remaining rows
	got := Resample(bars, model.PeriodWeekly)
	if len(got) != 1 {
		t.Fatalf("expected 1 bar, got %d", len(got))
	}
	if got[0].High.Float64 != 16 {
		t.Errorf("high = %v, want 16", got[0].High.Float64)
	}
}
