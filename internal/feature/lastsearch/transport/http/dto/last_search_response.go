package dto

// LastSearchResponse is the API representation of the most recently
// searched ticker symbol.
type LastSearchResponse struct {
	Symbol string `json:"symbol"`
}
