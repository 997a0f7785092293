package controller

import (
	"errors"
	"net/http"
	"strconv"

	"stockviewer/customerrors"
	"stockviewer/model"
	"stockviewer/service"
	"stockviewer/validator"

	"github.com/gin-gonic/gin"
)

type QuoteController struct {
	quoteService service.QuoteService
}

func NewQuoteController(qs service.QuoteService) *QuoteController {
	return &QuoteController{
		quoteService: qs,
	}
}

// RegisterRoutes sets up the route group for quote retrieval.
func (ctrl *QuoteController) RegisterRoutes(router *gin.RouterGroup) {
	quoteGroup := router.Group("/quotes")
	{
		quoteGroup.GET("/history", ctrl.GetHistory)
		quoteGroup.GET("/export", ctrl.ExportCsv)
	}
}

// GetHistory handles historical data requests.
// @Summary      Get Historical Stock Data
// @Description  Fetches the daily series for a symbol (15-minute cache), optionally resampled to weekly/monthly bars and annotated with SMA20/50. Falls back to the last-known-good table when the provider fails.
// @Tags         Quotes
// @Produce      json
// @Param        symbol  query     string  true   "Ticker symbol (e.g. MSFT)"
// @Param        period  query     string  false  "Bar interval"  Enums(daily, weekly, monthly)  default(daily)
// @Param        bars    query     int     false  "Trailing window of bars (1-250)"
// @Param        sma     query     bool    false  "Append SMA20/SMA50 columns"
// @Success      200     {object}  model.Response{data=model.QuoteView}
// @Failure      400     {object}  model.Response
// @Failure      404     {object}  model.Response
// @Failure      502     {object}  model.Response
// @Router       /quotes/history [get]
func (ctrl *QuoteController) GetHistory(c *gin.Context) {
	req, ok := ctrl.bindRequest(c)
	if !ok {
		return
	}

	view, err := ctrl.quoteService.GetHistory(c.Request.Context(), req)
	if err != nil {
		ctrl.handleError(c, "Failed to get history", err)
		return
	}

	ctrl.handleSuccess(c, "Fetch Success", view)
}

// ExportCsv streams the same table as a CSV download.
// @Summary      Export Stock Data as CSV
// @Description  Serializes the requested table as UTF-8 CSV (with BOM). The suggested filename embeds symbol, period and the current date.
// @Tags         Quotes
// @Produce      text/csv
// @Param        symbol  query     string  true   "Ticker symbol (e.g. MSFT)"
// @Param        period  query     string  false  "Bar interval"  Enums(daily, weekly, monthly)  default(daily)
// @Param        bars    query     int     false  "Trailing window of bars (1-250)"
// @Param        sma     query     bool    false  "Append SMA20/SMA50 columns"
// @Success      200     {string}  string  "CSV body"
// @Failure      400     {object}  model.Response
// @Failure      404     {object}  model.Response
// @Failure      502     {object}  model.Response
// @Router       /quotes/export [get]
func (ctrl *QuoteController) ExportCsv(c *gin.Context) {
	req, ok := ctrl.bindRequest(c)
	if !ok {
		return
	}

	body, filename, err := ctrl.quoteService.ExportCsv(c.Request.Context(), req)
	if err != nil {
		ctrl.handleError(c, "Failed to export history", err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", body)
}

func (ctrl *QuoteController) bindRequest(c *gin.Context) (model.HistoryRequest, bool) {
	bars, _ := strconv.Atoi(c.DefaultQuery("bars", "0"))
	sma, _ := strconv.ParseBool(c.DefaultQuery("sma", "false"))

	req := model.HistoryRequest{
		Symbol: c.Query("symbol"),
		Period: model.Period(c.DefaultQuery("period", string(model.PeriodDaily))),
		Bars:   bars,
		SMA:    sma,
		Chart:  model.ChartStyle(c.Query("chart")),
	}

	if err := validator.ValidateHistoryRequest(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.Response{
			Success: false,
			Message: "Invalid request",
			Error:   err.Error(),
		})
		return model.HistoryRequest{}, false
	}
	return req, true
}

// --- Internal Response Helpers ---

func (ctrl *QuoteController) handleSuccess(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, model.Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func (ctrl *QuoteController) handleError(c *gin.Context, message string, err error) {
	status := http.StatusBadGateway
	switch {
	case errors.Is(err, customerrors.ErrEmptySymbol):
		status = http.StatusBadRequest
	case errors.Is(err, customerrors.ErrInvalidSymbol):
		status = http.StatusNotFound
	}

	c.JSON(status, model.Response{
		Success: false,
		Message: message,
		Error:   err.Error(),
	})
}
