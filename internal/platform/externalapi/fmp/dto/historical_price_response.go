package dto

// HistoricalPriceResponse represents the /historical-price-full endpoint
// response. The provider delivers entries newest first.
type HistoricalPriceResponse struct {
	Symbol     string `json:"symbol"`
	Historical []struct {
		Date  string  `json:"date"`
		Close float64 `json:"close"`
	} `json:"historical"`
}

// ErrorResponse represents the provider-specific error body that can arrive
// with a 2xx status (e.g. free-tier call limit, endpoint not authorized).
type ErrorResponse struct {
	Message string `json:"Error Message"`
}
