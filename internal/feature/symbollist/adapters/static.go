// Package adapters はsymbollistフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"github.com/MeckMan2025/Meckman-Finance/internal/feature/symbollist/domain/entity"
	"github.com/MeckMan2025/Meckman-Finance/internal/feature/symbollist/usecase"
)

// staticSymbols はプロバイダの無料枠で動作確認済みの固定サポートセットです。
var staticSymbols = []entity.Symbol{
	{Code: "AAPL", Name: "Apple Inc."},
	{Code: "MSFT", Name: "Microsoft Corporation"},
	{Code: "GOOGL", Name: "Alphabet Inc."},
	{Code: "AMZN", Name: "Amazon.com, Inc."},
	{Code: "META", Name: "Meta Platforms, Inc."},
	{Code: "TSLA", Name: "Tesla, Inc."},
	{Code: "NVDA", Name: "NVIDIA Corporation"},
	{Code: "NFLX", Name: "Netflix, Inc."},
}

// staticSymbolRepository はSymbolRepositoryインターフェースの固定リスト実装です。
// 許可リストはデプロイ設定であり、データベースには置きません。
type staticSymbolRepository struct {
	symbols []entity.Symbol
	byCode  map[string]struct{}
}

var _ usecase.SymbolRepository = (*staticSymbolRepository)(nil)

// NewSymbolRepository は固定サポートセットを持つリポジトリの新しいインスタンスを生成します。
func NewSymbolRepository() *staticSymbolRepository {
	byCode := make(map[string]struct{}, len(staticSymbols))
	for _, s := range staticSymbols {
		byCode[s.Code] = struct{}{}
	}
	return &staticSymbolRepository{symbols: staticSymbols, byCode: byCode}
}

// ListSupported はサポート対象の銘柄を定義順で返します。
func (r *staticSymbolRepository) ListSupported() []entity.Symbol {
	out := make([]entity.Symbol, len(r.symbols))
	copy(out, r.symbols)
	return out
}

// Contains は指定されたコードがサポートセットに含まれるかを返します。
func (r *staticSymbolRepository) Contains(code string) bool {
	_, ok := r.byCode[code]
	return ok
}
