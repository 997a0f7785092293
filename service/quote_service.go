package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"stockviewer/analysis"
	localCache "stockviewer/cache"
	"stockviewer/client"
	"stockviewer/config"
	"stockviewer/customerrors"
	"stockviewer/model"
	"stockviewer/util"

	"github.com/jinzhu/copier"
	gocache "github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"
)

type QuoteService interface {
	GetHistory(ctx context.Context, req model.HistoryRequest) (*model.QuoteView, error)
	ExportCsv(ctx context.Context, req model.HistoryRequest) ([]byte, string, error)
	ClearCache() int
}

type QuoteServiceImpl struct {
	client   *client.AlphaVantageClient
	quotes   *gocache.Cache
	lastGood *gocache.Cache
	cfg      *config.ConfigManager
	apiKey   string
	sleep    func(time.Duration)
}

func NewQuoteService(c *client.AlphaVantageClient, quotes, lastGood *gocache.Cache, cfg *config.ConfigManager, apiKey string) QuoteService {
	return &QuoteServiceImpl{
		client:   c,
		quotes:   quotes,
		lastGood: lastGood,
		cfg:      cfg,
		apiKey:   apiKey,
		sleep:    time.Sleep,
	}
}

// GetHistory runs the full pipeline: normalize, cached fetch with
// last-known-good degradation, resample, annotate, trailing-window trim.
func (s *QuoteServiceImpl) GetHistory(ctx context.Context, req model.HistoryRequest) (*model.QuoteView, error) {
	view, _, err := s.history(ctx, req)
	return view, err
}

func (s *QuoteServiceImpl) history(ctx context.Context, req model.HistoryRequest) (*model.QuoteView, []model.Bar, error) {
	symbol, foreign := util.NormalizeSymbol(req.Symbol)
	if symbol == "" {
		return nil, nil, customerrors.ErrEmptySymbol
	}

	status := model.StatusFresh
	bars, err := s.getOrFetch(ctx, symbol)
	if err == nil {
		// A cache hit is still a known-good table; refresh the snapshot.
		s.lastGood.Set(symbol, bars, gocache.NoExpiration)
	} else {
		stale, found := localCache.GetBars(s.lastGood, symbol)
		if !found {
			return nil, nil, err
		}
		bars = stale
		status = model.StatusFallbackPrefix + err.Error()
		log.Warn().Str("symbol", symbol).Err(err).Msg("serving last-known-good table")
	}

	table := analysis.Resample(bars, req.Period)
	if req.SMA {
		table = analysis.AnnotateSMA(table)
	}
	table = s.trailingWindow(table, req.Bars)

	view := &model.QuoteView{
		Symbol: symbol,
		Period: req.Period,
		Status: status,
		Bars:   toDtos(table),
	}
	if foreign {
		view.Warning = util.ForeignMarketAdvisory(symbol)
	}
	return view, table, nil
}

// ExportCsv renders the same view as BOM-prefixed CSV plus a suggested
// filename embedding symbol, period and the current date.
func (s *QuoteServiceImpl) ExportCsv(ctx context.Context, req model.HistoryRequest) ([]byte, string, error) {
	view, table, err := s.history(ctx, req)
	if err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	if err := util.WriteBars(&buf, table, req.SMA); err != nil {
		return nil, "", fmt.Errorf("csv export failed: %w", err)
	}
	return buf.Bytes(), util.ExportFileName(view.Symbol, req.Period, time.Now()), nil
}

// ClearCache wipes every cached table regardless of age. The last-known-good
// store is deliberately left alone so degraded display keeps working right
// after a clear. Returns the number of entries removed.
func (s *QuoteServiceImpl) ClearCache() int {
	n := s.quotes.ItemCount()
	s.quotes.Flush()
	log.Info().Int("entries", n).Msg("quote cache cleared")
	return n
}

// getOrFetch memoizes successful fetches per (symbol, credential scope).
// Failures are never cached; the retry policy lives entirely in fetchFresh.
func (s *QuoteServiceImpl) getOrFetch(ctx context.Context, symbol string) ([]model.Bar, error) {
	key := symbol + "|" + s.apiKey
	if bars, found := localCache.GetBars(s.quotes, key); found {
		return bars, nil
	}

	bars, err := s.fetchFresh(ctx, symbol)
	if err != nil {
		return nil, err
	}
	localCache.SetBars(s.quotes, key, bars, gocache.DefaultExpiration)
	return bars, nil
}

// fetchFresh applies the fetch policy: primary daily series with one
// rate-limit retry, then the adjusted variant with the same retry, then
// data-unavailable. An invalid-symbol sentinel fails immediately.
func (s *QuoteServiceImpl) fetchFresh(ctx context.Context, symbol string) ([]model.Bar, error) {
	outcome, err := s.seriesWithRetry(ctx, client.FunctionDaily, symbol)
	if err != nil {
		return nil, err
	}
	switch outcome.Kind {
	case model.SeriesOK:
		return outcome.Bars, nil
	case model.SeriesInvalidSymbol:
		return nil, fmt.Errorf("%w: %s", customerrors.ErrInvalidSymbol, outcome.Detail)
	}

	outcome, err = s.seriesWithRetry(ctx, client.FunctionDailyAdjusted, symbol)
	if err != nil {
		return nil, err
	}
	switch outcome.Kind {
	case model.SeriesOK:
		return outcome.Bars, nil
	case model.SeriesInvalidSymbol:
		return nil, fmt.Errorf("%w: %s", customerrors.ErrInvalidSymbol, outcome.Detail)
	}

	return nil, customerrors.ErrDataUnavailable
}

// seriesWithRetry retries a rate-limited request exactly once after the
// configured backoff. A second rate-limited body is passed through as-is
// (best effort, it carries no series) rather than retried again.
func (s *QuoteServiceImpl) seriesWithRetry(ctx context.Context, function, symbol string) (*model.SeriesOutcome, error) {
	outcome, err := s.client.FetchSeries(ctx, function, symbol, s.apiKey)
	if err != nil {
		return nil, err
	}
	if outcome.Kind != model.SeriesRateLimited {
		return outcome, nil
	}

	backoff := time.Duration(s.cfg.GetConfig().RetryBackoffSeconds) * time.Second
	log.Warn().Str("symbol", symbol).Str("function", function).Dur("backoff", backoff).Msg("rate limited, retrying once")
	s.sleep(backoff)

	return s.client.FetchSeries(ctx, function, symbol, s.apiKey)
}

func (s *QuoteServiceImpl) trailingWindow(bars []model.Bar, n int) []model.Bar {
	cfg := s.cfg.GetConfig()
	if n <= 0 {
		n = cfg.DefaultBars
	}
	if n > cfg.MaxBars {
		n = cfg.MaxBars
	}
	if len(bars) > n {
		bars = bars[len(bars)-n:]
	}
	return bars
}

func toDtos(bars []model.Bar) []model.BarDto {
	dtos := make([]model.BarDto, 0, len(bars))
	for _, bar := range bars {
		var dto model.BarDto
		copier.Copy(&dto, &bar)
		dto.Date = bar.Date.Format(model.DateLayout)
		dtos = append(dtos, dto)
	}
	return dtos
}
