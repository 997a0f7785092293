package customerrors

import "errors"

var (
	ErrEmptySymbol     = errors.New("symbol is empty")
	ErrInvalidSymbol   = errors.New("symbol not recognized by the quote provider")
	ErrTransport       = errors.New("quote provider request failed")
	ErrDataUnavailable = errors.New("provider responded but returned no daily series; wait a moment and retry")
)
