package pollinations

import (
	"context"

	"github.com/shouni/pollinations-kit/pkg/config"
)

// --- Mocks ---

// mockTransport は Transport のテスト用モックなのだ。
// 呼び出し回数と最後のリクエストを記録して、検証失敗時に
// ネットワークへ到達していないことを確かめられるようにしてあるのだ。
type mockTransport struct {
	sendFunc func(ctx context.Context, req *TransportRequest) (*TransportResponse, error)
	called   int
	lastReq  *TransportRequest
}

func (m *mockTransport) Send(ctx context.Context, req *TransportRequest) (*TransportResponse, error) {
	m.called++
	m.lastReq = req
	if m.sendFunc != nil {
		return m.sendFunc(ctx, req)
	}
	return &TransportResponse{StatusCode: 200, Body: []byte("ok")}, nil
}

// mockSink は ImageSink のテスト用モックなのだ。
type mockSink struct {
	saveFunc func(ctx context.Context, path string, data []byte) (string, error)
	called   int
	lastPath string
	lastData []byte
}

func (m *mockSink) Save(ctx context.Context, path string, data []byte) (string, error) {
	m.called++
	m.lastPath = path
	m.lastData = data
	if m.saveFunc != nil {
		return m.saveFunc(ctx, path, data)
	}
	return "/tmp/" + path, nil
}

// fixedSeed はテストで使う固定シーダーなのだ。
func fixedSeed() string {
	return "42"
}

// testConfig は環境変数に依存しないテスト用設定を返すのだ。
func testConfig() *config.Config {
	return &config.Config{
		TextURL:        "https://text.example/",
		ImageURL:       "https://img.example/p/",
		Referer:        "https://example.test/",
		UserAgent:      "test-agent",
		TimeoutSeconds: 10,
	}
}
