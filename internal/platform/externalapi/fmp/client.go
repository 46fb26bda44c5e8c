package fmp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/MeckMan2025/Meckman-Finance/internal/feature/quote/domain"
	"github.com/MeckMan2025/Meckman-Finance/internal/platform/externalapi/fmp/dto"
)

// Client はFinancial Modeling Prep外部APIから企業データを取得するMarketRepository実装です。
type Client struct {
	cfg    Config
	client *http.Client
}

// New は指定された設定とHTTPクライアントでClientの新しいインスタンスを生成します。
func New(cfg Config, client *http.Client) *Client {
	return &Client{cfg: cfg, client: client}
}

// get は指定されたパスへのGETリクエストを実行し、レスポンスJSONをoutにデコードします。
// APIキーは全リクエストにクエリパラメータとして付与されます。
// HTTP/プロバイダレベルの失敗はquoteドメインのエラー分類に変換されます（リトライなし）。
func (c *Client) get(ctx context.Context, path string, q url.Values, out any) error {
	// クエリパラメータを追加
	q.Set("apikey", c.cfg.APIKey)

	// URLを生成
	u := fmt.Sprintf("%s%s?%s", c.cfg.BaseURL, path, q.Encode())

	// リクエストオブジェクトを作成
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}

	// リクエストを実行
	// タイムアウト超過・接続失敗はすべてネットワーク障害として即座に報告
	res, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrNetwork, err)
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	// HTTPステータスをドメインエラーにマッピング
	switch {
	case res.StatusCode == http.StatusTooManyRequests:
		return domain.ErrRateLimited
	case res.StatusCode == http.StatusUnauthorized || res.StatusCode == http.StatusForbidden:
		return domain.ErrNotAuthorized
	case res.StatusCode < 200 || res.StatusCode > 299:
		return &domain.StatusError{Code: res.StatusCode}
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrNetwork, err)
	}

	// 2xxでもボディがプロバイダ固有のエラーメッセージを運ぶことがある
	// （無料枠の呼び出し上限、未許可のエンドポイントなど）
	var perr dto.ErrorResponse
	if err := json.Unmarshal(body, &perr); err == nil && perr.Message != "" {
		switch {
		case strings.Contains(perr.Message, "API calls limit"):
			return domain.ErrRateLimited
		case strings.Contains(strings.ToLower(perr.Message), "not authorized"):
			return domain.ErrNotAuthorized
		default:
			return fmt.Errorf("%w: %s", domain.ErrNetwork, perr.Message)
		}
	}

	// JSONレスポンスをDTOにデコード
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrNetwork, err)
	}
	return nil
}
