// Package usecase implements the business logic for symbol allow-list operations.
package usecase

import (
	"context"
	"strings"

	"github.com/MeckMan2025/Meckman-Finance/internal/feature/symbollist/domain/entity"
)

// SymbolRepository abstracts the source of the supported-symbol set.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type SymbolRepository interface {
	ListSupported() []entity.Symbol
	Contains(code string) bool
}

// SymbolUsecase provides business logic for the fixed symbol allow-list.
type SymbolUsecase struct {
	repo SymbolRepository
}

// NewSymbolUsecase creates a new SymbolUsecase with the given repository.
func NewSymbolUsecase(r SymbolRepository) *SymbolUsecase {
	return &SymbolUsecase{repo: r}
}

// ListSupportedSymbols returns the supported symbols for the UI picker.
func (u *SymbolUsecase) ListSupportedSymbols(ctx context.Context) ([]entity.Symbol, error) {
	return u.repo.ListSupported(), nil
}

// IsSupported reports whether the symbol is in the allow-list.
// The comparison is case-insensitive; the stored set is uppercase.
func (u *SymbolUsecase) IsSupported(symbol string) bool {
	return u.repo.Contains(strings.ToUpper(strings.TrimSpace(symbol)))
}
