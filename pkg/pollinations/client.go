// Package pollinations は Pollinations AI のチャット補完と画像生成を、
// 検証付きの型付きリクエスト/レスポンスとして提供するクライアントです。
// 呼び出しはすべて単発・同期で、会話状態やキャッシュは持ちません。
package pollinations

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/shouni/pollinations-kit/pkg/apierr"
	"github.com/shouni/pollinations-kit/pkg/config"
	"github.com/shouni/pollinations-kit/pkg/domain"
	"github.com/shouni/pollinations-kit/pkg/utils"
)

// Client は Pollinations クライアントの本体です。
// 検証 → 構築 → 送信 → 解釈 の順で各段を通し、失敗はどの段でも
// apierr の分類付きエラーとして短絡します。
type Client struct {
	cfg       *config.Config
	transport Transport
	sink      ImageSink
	seed      Seeder
}

// Option は Client の追加設定です。
type Option func(*Client)

// WithSeeder はシードの採番を差し替えます。テストでは固定シーダーを注入します。
func WithSeeder(s Seeder) Option {
	return func(c *Client) {
		c.seed = s
	}
}

// New は依存関係を注入して Client を初期化します。
func New(cfg *config.Config, transport Transport, sink ImageSink, opts ...Option) (*Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("cfg is required")
	}
	if transport == nil {
		return nil, fmt.Errorf("transport is required")
	}
	if sink == nil {
		return nil, fmt.Errorf("sink is required")
	}

	c := &Client{
		cfg:       cfg,
		transport: transport,
		sink:      sink,
		seed:      utils.RandomSeed,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Chat は単発のチャット補完を行い、応答テキストを返します。
func (c *Client) Chat(ctx context.Context, req domain.ChatRequest) (string, error) {
	vreq, err := validateChat(req, c.cfg.DefaultTimeout(), c.seed)
	if err != nil {
		return "", err
	}

	built, err := buildChat(c.cfg.TextURL, vreq)
	if err != nil {
		return "", err
	}

	resp, err := c.send(ctx, built, vreq.timeout)
	if err != nil {
		return "", err
	}

	text, err := interpretChat(resp)
	if err != nil {
		return "", err
	}

	slog.DebugContext(ctx, "チャット応答を受信しました", "status", resp.StatusCode, "bytes", len(resp.Body))
	return text, nil
}

// GenerateImage は画像を生成して保存し、バイト列と保存先を返します。
// 解釈が成功するまでは一切書き込みを行いません。
func (c *Client) GenerateImage(ctx context.Context, req domain.ImageRequest) (*domain.ImageResult, error) {
	vreq, err := validateImage(req, c.cfg.DefaultTimeout(), c.seed)
	if err != nil {
		return nil, err
	}

	built, err := buildImage(c.cfg.ImageURL, vreq)
	if err != nil {
		return nil, err
	}

	resp, err := c.send(ctx, built, vreq.timeout)
	if err != nil {
		return nil, err
	}

	data, err := interpretImage(resp)
	if err != nil {
		return nil, err
	}

	saved, err := c.sink.Save(ctx, vreq.path, data)
	if err != nil {
		return nil, fmt.Errorf("画像の保存に失敗しました: %w", err)
	}

	slog.InfoContext(ctx, "画像を保存しました", "path", saved, "model", vreq.model, "bytes", len(data))
	return &domain.ImageResult{
		Data:      data,
		MimeType:  http.DetectContentType(data),
		SavedPath: saved,
	}, nil
}

// send は検証済みのタイムアウトを張って単発の送信を行います。リトライはしません。
func (c *Client) send(ctx context.Context, built *builtRequest, timeout time.Duration) (*TransportResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	resp, err := c.transport.Send(ctx, &TransportRequest{
		Method: built.method,
		URL:    built.url,
		Header: built.header,
		Body:   built.body,
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, apierr.Network(fmt.Sprintf("request timed out after %s", timeout), err)
		}
		return nil, apierr.Network("request failed", err)
	}
	return resp, nil
}
