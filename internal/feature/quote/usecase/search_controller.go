// Package usecase は銘柄検索パイプラインのビジネスロジックを実装します。
package usecase

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/MeckMan2025/Meckman-Finance/internal/feature/quote/domain"
	"github.com/MeckMan2025/Meckman-Finance/internal/feature/quote/domain/entity"
)

// MarketRepository は外部金融データAPIの読み取りレイヤーを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type MarketRepository interface {
	// SearchProfile はシンボルに完全一致する企業プロフィールを取得します。
	SearchProfile(ctx context.Context, symbol string) (entity.CompanyProfile, error)
	// QuarterlyIncome は四半期損益計算書を新しい順で取得します。
	QuarterlyIncome(ctx context.Context, symbol string) ([]entity.QuarterlyRecord, error)
	// DailyPrices は日足終値の履歴を新しい順で取得します。
	DailyPrices(ctx context.Context, symbol string) ([]entity.PricePoint, error)
}

// SymbolGate は許可リストによる事前チェックを抽象化します。
type SymbolGate interface {
	IsSupported(symbol string) bool
}

// LastSearchWriter は最後に検索されたシンボルの保存先を抽象化します。
type LastSearchWriter interface {
	Set(ctx context.Context, symbol string) error
}

// SearchState は1回の検索操作のライフサイクル状態です。
type SearchState int

const (
	// StateIdle は検索が開始されていない状態です。
	StateIdle SearchState = iota
	// StateLoading は外部APIからの取得が進行中の状態です。
	StateLoading
	// StateRendered は直近の検索が完了し、結果が提示された状態です。
	StateRendered
	// StateFailed は直近の検索がエラーで終結した状態です。
	StateFailed
)

// String はSearchStateの文字列表現を返します。
func (s SearchState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateRendered:
		return "rendered"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// SearchResult は1回の検索が成功したときに得られる表示用データ一式です。
// 検索のたびに全体が再計算され、増分更新は行われません。
type SearchResult struct {
	Company  entity.CompanyProfile
	Quarters []entity.QuarterMetrics
	Prices   entity.PriceSeries
}

// SearchController は検索パイプライン全体を調停します。
// チャートハンドルや初期化フラグのようなグローバル状態の代わりに、
// コントローラが明示的な状態遷移（Idle → Loading → Rendered / Failed）を持ちます。
type SearchController struct {
	market MarketRepository
	gate   SymbolGate
	last   LastSearchWriter
	approx Approximator

	mu     sync.Mutex
	state  SearchState
	cancel context.CancelFunc
	gen    uint64
}

// NewSearchController はSearchControllerの新しいインスタンスを生成します。
// lastはnilでもよく、その場合は検索シンボルの記録をスキップします。
func NewSearchController(market MarketRepository, gate SymbolGate, last LastSearchWriter, approx Approximator) *SearchController {
	return &SearchController{
		market: market,
		gate:   gate,
		last:   last,
		approx: approx,
		state:  StateIdle,
	}
}

// Search は1回の検索操作を実行します。
//
// 許可リスト確認 → 企業プロフィール → 株価履歴 → 四半期損益の順に逐次取得し
// （並列ファンアウトなし）、表示用メトリクスへ変換します。各ネットワーク呼び出しは
// フェッチャーのタイムアウトで制限されます。エラーはこの検索で終結し、リトライされません。
func (c *SearchController) Search(ctx context.Context, symbol string) (*SearchResult, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))

	// ネットワーク呼び出しを発行する前に許可リストで弾く
	if !c.gate.IsSupported(symbol) {
		return nil, domain.ErrUnsupportedSymbol
	}

	ctx, gen := c.begin(ctx)

	// 送信されたシンボルは結果を待たずに記録する（ベストエフォート。
	// 失敗しても検索には影響させない）
	if c.last != nil {
		if err := c.last.Set(ctx, symbol); err != nil {
			slog.Warn("failed to persist last search", "symbol", symbol, "error", err)
		}
	}

	company, err := c.market.SearchProfile(ctx, symbol)
	if err != nil {
		return nil, c.fail(gen, err)
	}

	points, err := c.market.DailyPrices(ctx, symbol)
	if err != nil {
		return nil, c.fail(gen, err)
	}
	series, err := NormalizePrices(points)
	if err != nil {
		return nil, c.fail(gen, err)
	}

	records, err := c.market.QuarterlyIncome(ctx, symbol)
	if err != nil {
		return nil, c.fail(gen, err)
	}
	selected, err := SelectRecentQuarters(records)
	if err != nil {
		return nil, c.fail(gen, err)
	}
	metrics, err := DeriveMetrics(selected, c.approx)
	if err != nil {
		return nil, c.fail(gen, err)
	}

	c.setState(gen, StateRendered)
	return &SearchResult{
		Company:  company,
		Quarters: metrics,
		Prices:   series,
	}, nil
}

// State は現在の検索ライフサイクル状態を返します。
func (c *SearchController) State() SearchState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// begin は進行中の前の検索をキャンセルし、Loading状態で新しい検索を開始します。
// 古い検索の結果が新しい検索の結果を上書きする競合をここで断ちます。
// 返される世代番号は、追い越された検索がこの検索の状態を書き換えるのを防ぎます。
func (c *SearchController) begin(ctx context.Context) (context.Context, uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cancel != nil {
		c.cancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.gen++
	c.state = StateLoading
	return ctx, c.gen
}

// fail は検索をFailed状態で終結させ、エラーをそのまま呼び出し元へ返します。
func (c *SearchController) fail(gen uint64, err error) error {
	c.setState(gen, StateFailed)
	return err
}

// setState は、その検索がまだ最新である場合にのみ状態を更新します。
func (c *SearchController) setState(gen uint64, s SearchState) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		return
	}
	c.state = s
}
