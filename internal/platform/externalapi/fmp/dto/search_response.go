// Package dto defines data transfer objects for the Financial Modeling Prep API responses.
package dto

// SearchItem represents one entry of the /search endpoint response.
type SearchItem struct {
	Symbol            string `json:"symbol"`
	Name              string `json:"name"`
	Currency          string `json:"currency"`
	StockExchange     string `json:"stockExchange"`
	ExchangeShortName string `json:"exchangeShortName"`
}
