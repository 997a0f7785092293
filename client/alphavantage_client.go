package client

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"time"

	"stockviewer/customerrors"
	"stockviewer/middleware"
	"stockviewer/model"

	"github.com/go-resty/resty/v2"
	"github.com/guregu/null/v6"
	"github.com/mitchellh/mapstructure"
	"github.com/rs/zerolog/log"
)

const (
	DefaultBaseURL = "https://www.alphavantage.co"

	FunctionDaily         = "TIME_SERIES_DAILY"
	FunctionDailyAdjusted = "TIME_SERIES_DAILY_ADJUSTED"
)

type AlphaVantageClient struct {
	client *resty.Client
}

func NewAlphaVantageClient(baseURL string) *AlphaVantageClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(30 * time.Second).
		SetHeaders(map[string]string{
			"Accept":     "application/json",
			"User-Agent": "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
		})

	client.OnAfterResponse(middleware.DecompressMiddleware)

	return &AlphaVantageClient{
		client: client,
	}
}

// FetchSeries runs one request against the query endpoint and decodes the
// body into a discriminated outcome. Only transport-level problems (network
// error, non-2xx, undecodable body) come back as an error; the provider's
// in-body sentinels become outcome kinds.
func (c *AlphaVantageClient) FetchSeries(ctx context.Context, function, symbol, apiKey string) (*model.SeriesOutcome, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"function":   function,
			"symbol":     symbol,
			"apikey":     apiKey,
			"outputsize": "compact",
		}).
		Get("/query")

	if err != nil {
		return nil, fmt.Errorf("%w: %v", customerrors.ErrTransport, err)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("%w: status %d", customerrors.ErrTransport, resp.StatusCode())
	}

	var envelope model.TimeSeriesEnvelope
	if err := json.Unmarshal(resp.Body(), &envelope); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", customerrors.ErrTransport, err)
	}

	return classify(&envelope, symbol), nil
}

func classify(envelope *model.TimeSeriesEnvelope, symbol string) *model.SeriesOutcome {
	if envelope.ErrorMessage != "" {
		return &model.SeriesOutcome{Kind: model.SeriesInvalidSymbol, Detail: envelope.ErrorMessage}
	}
	if envelope.Note != "" {
		return &model.SeriesOutcome{Kind: model.SeriesRateLimited, Detail: envelope.Note}
	}
	if envelope.Information != "" {
		return &model.SeriesOutcome{Kind: model.SeriesRateLimited, Detail: envelope.Information}
	}

	bars := parseSeries(envelope.Series(), symbol)
	if len(bars) == 0 {
		return &model.SeriesOutcome{Kind: model.SeriesEmpty}
	}
	return &model.SeriesOutcome{Kind: model.SeriesOK, Bars: bars}
}

// parseSeries maps the provider's labeled rows onto canonical bars. A field
// that fails coercion stays missing; a row whose date key fails to parse is
// dropped. Output is sorted ascending by date.
func parseSeries(series map[string]map[string]string, symbol string) []model.Bar {
	bars := make([]model.Bar, 0, len(series))

	for key, fields := range series {
		date, err := time.Parse(model.DateLayout, key)
		if err != nil {
			log.Warn().Str("symbol", symbol).Str("key", key).Msg("dropping series row with unparseable date")
			continue
		}

		var row model.SeriesRow
		if err := mapstructure.Decode(fields, &row); err != nil {
			log.Warn().Str("symbol", symbol).Str("key", key).Err(err).Msg("dropping undecodable series row")
			continue
		}

		closeStr := row.Close
		if closeStr == "" {
			closeStr = row.AdjustedClose
		}
		volumeStr := row.Volume
		if volumeStr == "" {
			volumeStr = row.AdjustedVolume
		}

		bars = append(bars, model.Bar{
			Date:   date,
			Open:   coerceFloat(row.Open),
			High:   coerceFloat(row.High),
			Low:    coerceFloat(row.Low),
			Close:  coerceFloat(closeStr),
			Volume: coerceInt(volumeStr),
		})
	}

	sort.Slice(bars, func(i, j int) bool { return bars[i].Date.Before(bars[j].Date) })
	return bars
}

func coerceFloat(s string) null.Float {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return null.Float{}
	}
	return null.FloatFrom(v)
}

func coerceInt(s string) null.Int {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return null.Int{}
	}
	return null.IntFrom(v)
}
