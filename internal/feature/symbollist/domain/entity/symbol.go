// Package entity defines the domain models for the symbollist feature.
package entity

// Symbol represents one ticker of the fixed free-tier support set.
// The set is deployment configuration, not database state.
type Symbol struct {
	Code string // Ticker symbol (e.g., "AAPL")
	Name string // Display name (e.g., "Apple Inc.")
}
