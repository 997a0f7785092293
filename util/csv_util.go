package util

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"stockviewer/model"

	"github.com/guregu/null/v6"
)

// Excel needs the BOM to open the export as UTF-8.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// WriteBars serializes a table as BOM-prefixed CSV, one row per bar.
// Missing values become empty cells.
func WriteBars(w io.Writer, bars []model.Bar, withSMA bool) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return err
	}

	writer := csv.NewWriter(w)

	header := []string{"Date", "Open", "High", "Low", "Close", "Volume"}
	if withSMA {
		header = append(header, "SMA20", "SMA50")
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, bar := range bars {
		record := []string{
			bar.Date.Format(model.DateLayout),
			formatFloat(bar.Open),
			formatFloat(bar.High),
			formatFloat(bar.Low),
			formatFloat(bar.Close),
			formatInt(bar.Volume),
		}
		if withSMA {
			record = append(record, formatFloat(bar.SMA20), formatFloat(bar.SMA50))
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// ReadBars parses CSV text produced by WriteBars back into a table. Rows
// with an unparseable date are skipped; empty numeric cells stay missing.
func ReadBars(r io.Reader) ([]model.Bar, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	headerMap := make(map[string]int)
	for i, name := range header {
		headerMap[strings.TrimPrefix(name, "\uFEFF")] = i
	}

	required := []string{"Date", "Open", "High", "Low", "Close", "Volume"}
	for _, name := range required {
		if _, ok := headerMap[name]; !ok {
			return nil, fmt.Errorf("missing required column: %s", name)
		}
	}

	var bars []model.Bar
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading csv record: %w", err)
		}

		date, err := time.Parse(model.DateLayout, record[headerMap["Date"]])
		if err != nil {
			continue // skip rows with invalid dates
		}

		bar := model.Bar{
			Date:   date,
			Open:   parseFloatCell(record[headerMap["Open"]]),
			High:   parseFloatCell(record[headerMap["High"]]),
			Low:    parseFloatCell(record[headerMap["Low"]]),
			Close:  parseFloatCell(record[headerMap["Close"]]),
			Volume: parseIntCell(record[headerMap["Volume"]]),
		}
		if idx, ok := headerMap["SMA20"]; ok && idx < len(record) {
			bar.SMA20 = parseFloatCell(record[idx])
		}
		if idx, ok := headerMap["SMA50"]; ok && idx < len(record) {
			bar.SMA50 = parseFloatCell(record[idx])
		}
		bars = append(bars, bar)
	}

	return bars, nil
}

// ExportFileName suggests the download name for an export.
func ExportFileName(symbol string, period model.Period, now time.Time) string {
	return fmt.Sprintf("%s_%s_%s.csv", symbol, period, now.Format(model.DateLayout))
}

func formatFloat(f null.Float) string {
	if !f.Valid {
		return ""
	}
	return strconv.FormatFloat(f.Float64, 'f', -1, 64)
}

func formatInt(i null.Int) string {
	if !i.Valid {
		return ""
	}
	return strconv.FormatInt(i.Int64, 10)
}

func parseFloatCell(s string) null.Float {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return null.Float{}
	}
	return null.FloatFrom(v)
}

func parseIntCell(s string) null.Int {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return null.Int{}
	}
	return null.IntFrom(v)
}
