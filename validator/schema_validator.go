package validator

import (
	"fmt"

	"stockviewer/model"

	"github.com/Oudwins/zog"
)

var historyQuerySchema = zog.Struct(zog.Shape{
	"Symbol": zog.String().Required(),
	"Bars":   zog.Int().GTE(0).LTE(250),
})

// ValidateHistoryRequest checks the viewer controls before the pipeline
// runs. Bars of zero means "use the configured default".
func ValidateHistoryRequest(req *model.HistoryRequest) error {
	issues := historyQuerySchema.Validate(req)
	for field, list := range issues {
		for _, issue := range list {
			return fmt.Errorf("%s: %s", field, issue.Message)
		}
	}
	if !req.Period.Valid() {
		return fmt.Errorf("period: must be one of daily, weekly, monthly")
	}
	if req.Chart != "" && req.Chart != model.ChartLine && req.Chart != model.ChartCandle {
		return fmt.Errorf("chart: must be one of line, candlestick")
	}
	return nil
}
