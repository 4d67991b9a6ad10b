package adapters

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shouni/pollinations-kit/pkg/imgutil"
)

// LocalImageSink は画像バイト列をローカルファイルへ書き出す ImageSink 実装です。
// 保存先の拡張子が .jpg / .jpeg の場合は imgutil で JPEG へ変換します。
type LocalImageSink struct{}

// NewLocalImageSink は LocalImageSink を初期化します。
func NewLocalImageSink() *LocalImageSink {
	return &LocalImageSink{}
}

// Save はデータを path へ書き込み、解決済みの絶対パスを返します。
func (s *LocalImageSink) Save(ctx context.Context, path string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("保存先ディレクトリの作成に失敗しました: %w", err)
		}
	}

	if err := os.WriteFile(path, imgutil.EncodeForPath(path, data), 0o644); err != nil {
		return "", fmt.Errorf("画像ファイルの書き込みに失敗しました: %w", err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return path, nil
	}
	return abs, nil
}
