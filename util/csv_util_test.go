package util

import (
	"bytes"
	"strings"
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

func TestWriteReadRoundTrip(t *testing.T) {
	bars := []model.Bar{
		mkBar("2024-01-02", 10.5, 12.25, 9.875, 11.0, 100),
		mkBar("2024-01-03", 11.0, 13.0, 10.0, 12.125, 200),
	}
	bars[1].SMA20 = null.FloatFrom(11.5625)

	var buf bytes.Buffer
	if err := WriteBars(&buf, bars, true); err != nil {
		t.Fatalf("WriteBars: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte{0xEF, 0xBB, 0xBF}) {
		t.Error("expected UTF-8 BOM prefix")
	}

	got, err := ReadBars(&buf)
	if err != nil {
		t.Fatalf("ReadBars: %v", err)
	}
	if len(got) != len(bars) {
		t.Fatalf("expected %d bars, got %d", len(bars), len(got))
	}
	for i := range bars {
		if !got[i].Date.Equal(bars[i].Date) {
			t.Errorf("bar %d: date %v, want %v", i, got[i].Date, bars[i].Date)
		}
		if got[i].Open != bars[i].Open || got[i].High != bars[i].High ||
			got[i].Low != bars[i].Low || got[i].Close != bars[i].Close ||
			got[i].Volume != bars[i].Volume {
			t.Errorf("bar %d: %+v, want %+v", i, got[i], bars[i])
		}
		if got[i].SMA20 != bars[i].SMA20 {
			t.Errorf("bar %d: sma20 %+v, want %+v", i, got[i].SMA20, bars[i].SMA20)
		}
	}
}

func TestWriteBarsMissingValuesStayMissing(t *testing.T) {
	bar := mkBar("2024-01-02", 10, 12, 9, 11, 100)
	bar.Open = null.Float{}

	var buf bytes.Buffer
	if err := WriteBars(&buf, []model.Bar{bar}, false); err != nil {
		t.Fatalf("WriteBars: %v", err)
	}

	got, err := ReadBars(&buf)
	if err != nil {
		t.Fatalf("ReadBars: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 bar, got %d", len(got))
	}
	if got[0].Open.Valid {
		t.Error("expected missing open to survive the round trip")
	}
	if !got[0].Close.Valid || got[0].Close.Float64 != 11 {
		t.Errorf("expected close 11, got %+v", got[0].Close)
	}
}

func TestReadBarsSkipsBadDates(t *testing.T) {
	text := "Date,Open,High,Low,Close,Volume\n" +
		"not-a-date,1,2,3,4,5\n" +
		"2024-01-02,10,12,9,11,100\n"
	got, err := ReadBars(strings.NewReader(text))
	if err != nil {
		t.Fatalf("ReadBars: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 bar, got %d", len(got))
	}
}

func TestReadBarsMissingColumn(t *testing.T) {
	text := "Date,Open,High\n2024-01-02,10,12\n"
	if _, err := ReadBars(strings.NewReader(text)); err == nil {
		t.Fatal("expected error for missing columns")
	}
}

func TestExportFileName(t *testing.T) {
	now, _ := time.Parse(model.DateLayout, "2024-03-15")
	got := ExportFileName("MSFT", model.PeriodWeekly, now)
	want := "MSFT_weekly_2024-03-15.csv"
	if got != want {
		t.Errorf("ExportFileName = %q, want %q", got, want)
	}
}
