// Package usecase implements the business logic for the lastsearch feature:
// the single persisted key-value entry holding the last-searched ticker.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned when no last-searched symbol has been recorded yet.
var ErrNotFound = errors.New("last search not recorded")

// Repository abstracts the key-value store holding the single entry.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type Repository interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, symbol string) error
}

// LastSearchUsecase provides read/write access to the last-searched symbol.
type LastSearchUsecase struct {
	repo Repository
}

// NewLastSearchUsecase creates a new LastSearchUsecase with the given repository.
func NewLastSearchUsecase(repo Repository) *LastSearchUsecase {
	return &LastSearchUsecase{repo: repo}
}

// Get returns the last-searched symbol, or ErrNotFound when none is recorded.
func (u *LastSearchUsecase) Get(ctx context.Context) (string, error) {
	return u.repo.Get(ctx)
}

// Set records the symbol as the last searched one, overwriting the previous entry.
func (u *LastSearchUsecase) Set(ctx context.Context, symbol string) error {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return fmt.Errorf("empty symbol")
	}
	return u.repo.Set(ctx, symbol)
}
