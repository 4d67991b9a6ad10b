// Package config は Pollinations サービスのエンドポイント設定を提供します。
// エンドポイントの形（URL やヘッダ値）はサービス側ドキュメント由来の知識なので、
// ハードコードではなく設定として差し替え可能にしています。
package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config は Pollinations クライアントの接続設定です。
type Config struct {
	// TextURL はチャット補完エンドポイントです。
	TextURL string `yaml:"text_url" env:"POLLINATIONS_TEXT_URL" env-default:"https://text.pollinations.ai/"`
	// ImageURL は画像生成エンドポイントです。プロンプトはこの末尾にパスとして付きます。
	ImageURL string `yaml:"image_url" env:"POLLINATIONS_IMAGE_URL" env-default:"https://pollinations.ai/p/"`
	// Referer / UserAgent はトランスポートが付与するブラウザ相当のヘッダ値です。
	Referer   string `yaml:"referer" env:"POLLINATIONS_REFERER" env-default:"https://karma.pollinations.ai/"`
	UserAgent string `yaml:"user_agent" env:"POLLINATIONS_USER_AGENT" env-default:"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36"`
	// TimeoutSeconds はリクエスト側で未指定だった場合のタイムアウト秒数です。
	TimeoutSeconds int `yaml:"timeout_seconds" env:"POLLINATIONS_TIMEOUT_SECONDS" env-default:"10"`
}

// Load は環境変数（とデフォルト値）から設定を読み込みます。
func Load() (*Config, error) {
	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// LoadFile は YAML ファイルと環境変数から設定を読み込みます。
func LoadFile(path string) (*Config, error) {
	cfg := &Config{}
	if err := cleanenv.ReadConfig(path, cfg); err != nil {
		desc, _ := cleanenv.GetDescription(cfg, nil)
		return nil, fmt.Errorf("config: %w; %s", err, desc)
	}
	return cfg, nil
}

// DefaultTimeout はデフォルトのタイムアウトを time.Duration で返します。
func (c *Config) DefaultTimeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
