// Package adapters は pollinations パッケージの境界インターフェースに対する
// 標準実装（HTTP トランスポートとローカルファイル保存）を提供します。
package adapters

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/shouni/pollinations-kit/pkg/config"
	"github.com/shouni/pollinations-kit/pkg/pollinations"
)

// BrowserTransport は実ブラウザ相当のヘッダを付与する Transport 実装です。
// サービス側のアクセス制限を踏まえたヘッダ群で、TLS フィンガープリント等の
// 再現は行いません。リトライもこの層では行いません。
type BrowserTransport struct {
	client    *http.Client
	userAgent string
	referer   string
}

// NewBrowserTransport は設定からトランスポートを初期化します。
func NewBrowserTransport(cfg *config.Config) *BrowserTransport {
	return &BrowserTransport{
		// タイムアウトはリクエストごとの context で制御するため Client には設定しない
		client:    &http.Client{},
		userAgent: cfg.UserAgent,
		referer:   cfg.Referer,
	}
}

// Send は単発の HTTP リクエストを実行し、生のステータスとボディを返します。
func (t *BrowserTransport) Send(ctx context.Context, req *pollinations.TransportRequest) (*pollinations.TransportResponse, error) {
	var body io.Reader
	if len(req.Body) > 0 {
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, body)
	if err != nil {
		return nil, fmt.Errorf("リクエストの作成に失敗しました: %w", err)
	}

	for key, values := range req.Header {
		for _, v := range values {
			httpReq.Header.Add(key, v)
		}
	}
	t.applyBrowserHeaders(httpReq.Header)

	resp, err := t.client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("レスポンスボディの読み取りに失敗しました: %w", err)
	}

	return &pollinations.TransportResponse{
		StatusCode: resp.StatusCode,
		Body:       data,
	}, nil
}

func (t *BrowserTransport) applyBrowserHeaders(h http.Header) {
	h.Set("User-Agent", t.userAgent)
	h.Set("Accept-Language", "en-US,en;q=0.5")
	h.Set("Referer", t.referer)
	h.Set("Sec-Ch-Ua", `"Brave";v="131", "Chromium";v="131", "Not_A Brand";v="24"`)
	h.Set("Sec-Ch-Ua-Mobile", "?0")
	h.Set("Sec-Ch-Ua-Platform", `"Windows"`)
	h.Set("Sec-Fetch-Site", "same-site")
	h.Set("Sec-Gpc", "1")
}
