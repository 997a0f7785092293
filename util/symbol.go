package util

import "strings"

// Suffixes of exchanges the free Alpha Vantage tier does not reliably cover.
var foreignSuffixes = []string{".T", ".L", ".HK", ".SS", ".SZ", ".KS", ".TW"}

// NormalizeSymbol trims and uppercases raw user input. The second return is
// true when the symbol carries a recognized foreign-market suffix; callers
// surface that as a non-fatal advisory, never as an error.
func NormalizeSymbol(raw string) (string, bool) {
	symbol := strings.ToUpper(strings.TrimSpace(raw))
	for _, suffix := range foreignSuffixes {
		if strings.HasSuffix(symbol, suffix) {
			return symbol, true
		}
	}
	return symbol, false
}

// ForeignMarketAdvisory is the warning text attached to foreign-suffixed
// symbols.
func ForeignMarketAdvisory(symbol string) string {
	return "the data source likely does not support " + symbol + ": free keys mainly cover US equities"
}
