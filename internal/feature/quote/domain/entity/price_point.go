package entity

import "time"

// PricePoint is one daily closing price observation, carried verbatim from
// the provider. Missing trading days are not gap-filled.
type PricePoint struct {
	Date  time.Time // Trading day
	Close float64   // Closing price
}
