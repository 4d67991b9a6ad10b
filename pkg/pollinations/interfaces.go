package pollinations

import (
	"context"
	"net/http"
)

// Transport は実際のネットワーク呼び出しを担う境界インターフェースです。
// アンチボット対策（ブラウザ相当のヘッダ付与など）の詳細はこの背後に隠します。
// 実装は 1 呼び出しにつき 1 回だけ試行し、内部でリトライしないことを前提とします。
type Transport interface {
	Send(ctx context.Context, req *TransportRequest) (*TransportResponse, error)
}

// TransportRequest は構築済みリクエストのワイヤ表現です。
type TransportRequest struct {
	Method string
	URL    string
	Header http.Header
	Body   []byte
}

// TransportResponse はサービスから受信した生のステータスとボディです。
type TransportResponse struct {
	StatusCode int
	Body       []byte
}

// ImageSink は受信し終えた画像バイト列を保存先へ書き出すインターフェースです。
// 解決済みの保存先パスを返します。
type ImageSink interface {
	Save(ctx context.Context, path string, data []byte) (string, error)
}

// Seeder はリクエストへ付与するシード文字列を採番します。
type Seeder func() string
