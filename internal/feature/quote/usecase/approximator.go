package usecase

import (
	"math/rand"
	"sync"
	"time"
)

// Approximator はP/EとROEの近似値の算出戦略を抽象化します。
// 実データに基づく計算へ差し替えられるよう、パイプライン本体から分離されています。
type Approximator interface {
	// PriceEarnings は近似P/Eを返します。EPSが正の四半期に対してのみ呼ばれます。
	PriceEarnings(eps float64) float64
	// ReturnOnEquity は近似ROEを返します。売上高と純利益が共に正の四半期に
	// 対してのみ呼ばれます。
	ReturnOnEquity(revenue, netIncome float64) float64
}

// RandomApproximator はプレースホルダ実装です。
//
// 本来の計算に必要な入力（四半期ごとの市場価格、貸借対照表の自己資本）が
// 無料枠のデータには存在しないため、P/Eは教科書的なレンジの擬似乱数、
// ROEは利益率ベースの近似に揺らぎを加えた値で代用します。
// 値は呼び出しごとに変わり、再現性はありません。
//
// 1つのインスタンスが全リクエストのgoroutineから共有されるため、
// rand.Randへのアクセスはミューテックスで直列化します。
type RandomApproximator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomApproximator は現在時刻でシードしたRandomApproximatorを生成します。
func NewRandomApproximator() *RandomApproximator {
	return &RandomApproximator{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// float64 はロックの下で次の擬似乱数を取り出します。
func (a *RandomApproximator) float64() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.rng.Float64()
}

// PriceEarnings は[15, 25)の擬似乱数を返します。
func (a *RandomApproximator) PriceEarnings(eps float64) float64 {
	return 15 + a.float64()*10
}

// ReturnOnEquity は利益率の80%に[-5, +5)の揺らぎを加え、[5, 35]に収めた値を返します。
func (a *RandomApproximator) ReturnOnEquity(revenue, netIncome float64) float64 {
	roe := netIncome / revenue * 100 * 0.8
	roe += a.float64()*10 - 5
	if roe < 5 {
		roe = 5
	}
	if roe > 35 {
		roe = 35
	}
	return roe
}
