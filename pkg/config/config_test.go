package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("環境変数がなければデフォルト値が入ること", func(t *testing.T) {
		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "https://text.pollinations.ai/", cfg.TextURL)
		assert.Equal(t, "https://pollinations.ai/p/", cfg.ImageURL)
		assert.Equal(t, 10, cfg.TimeoutSeconds)
		assert.Equal(t, 10*time.Second, cfg.DefaultTimeout())
		assert.NotEmpty(t, cfg.UserAgent)
		assert.NotEmpty(t, cfg.Referer)
	})

	t.Run("環境変数でエンドポイントを上書きできること", func(t *testing.T) {
		t.Setenv("POLLINATIONS_TEXT_URL", "http://127.0.0.1:8080/text/")
		t.Setenv("POLLINATIONS_TIMEOUT_SECONDS", "30")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "http://127.0.0.1:8080/text/", cfg.TextURL)
		assert.Equal(t, 30*time.Second, cfg.DefaultTimeout())
	})
}

func TestLoadFile(t *testing.T) {
	t.Run("YAMLファイルから読み込めること", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")
		yml := "text_url: http://localhost:9000/\ntimeout_seconds: 5\n"
		require.NoError(t, os.WriteFile(path, []byte(yml), 0o644))

		cfg, err := LoadFile(path)
		require.NoError(t, err)

		assert.Equal(t, "http://localhost:9000/", cfg.TextURL)
		assert.Equal(t, 5, cfg.TimeoutSeconds)
		// ファイルに無い項目はデフォルトのまま
		assert.Equal(t, "https://pollinations.ai/p/", cfg.ImageURL)
	})

	t.Run("存在しないファイルはエラーになること", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yml"))
		assert.Error(t, err)
	})
}
