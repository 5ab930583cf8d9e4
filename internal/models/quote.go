package models

// UnavailableName marks a quote row for a symbol the market-data source
// could not resolve. Callers rely on one row per requested symbol, so
// unresolvable symbols still produce a row with this name and zero values.
const UnavailableName = "unavailable"

// Quote is a snapshot of a symbol's price at fetch time.
type Quote struct {
	Symbol     string  `json:"symbol"`      // Ticker symbol as requested
	Name       string  `json:"name"`        // Display name, or UnavailableName
	Price      float64 `json:"price"`       // Last traded price
	Change     float64 `json:"change"`      // Absolute change vs previous close
	ChangePct  float64 `json:"change_pct"`  // Percent change vs previous close
	Volume     int64   `json:"volume"`      // Traded volume
	Unavailable bool   `json:"unavailable"` // True for placeholder rows
}

// Placeholder returns the fallback quote row for a symbol that could not be resolved.
func Placeholder(symbol string) Quote {
	return Quote{
		Symbol:      symbol,
		Name:        UnavailableName,
		Unavailable: true,
	}
}
