package domain

import "time"

// ChatRequest は単一のチャット補完要求です。
// ゼロ値のフィールドはクライアント側でデフォルトが補われます。
type ChatRequest struct {
	Prompt       string
	SystemPrompt string
	// Seed はリクエストに付与するシード文字列です。空の場合はクライアントの
	// シーダーが採番します。
	Seed    string
	Timeout time.Duration
}

// ImageRequest は単一の画像生成要求です。
type ImageRequest struct {
	Prompt          string
	Model           Model
	DestinationPath string
	Width           int
	Height          int
	// Enhance はプロンプト強化フラグです。nil はデフォルト（有効）を意味します。
	Enhance *bool
	Seed    string
	Timeout time.Duration
}

// ImageResult は生成された画像データと保存先の情報です。
type ImageResult struct {
	Data      []byte
	MimeType  string
	SavedPath string
}

// Bool は *bool フィールドを設定するためのヘルパーです。
func Bool(v bool) *bool {
	return &v
}
