package imgutil

import (
	"bytes"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"path/filepath"
	"strings"
)

// DefaultJPEGQuality は拡張子ベースの変換時に使う JPEG 品質です。
const DefaultJPEGQuality = 90

// CompressToJPEG は画像データ（PNG, GIF, JPEG等）をJPEG形式に圧縮します。
// image.Decodeがサポートするフォーマットに対応しています。
func CompressToJPEG(data []byte, quality int) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	buf := new(bytes.Buffer)
	if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeForPath は保存先パスの拡張子に合わせて画像データを整形します。
// .jpg / .jpeg の場合のみ JPEG へ変換し、それ以外は受信したバイト列をそのまま返します。
// 変換に失敗した場合（画像としてデコードできない等）もそのまま返します。
func EncodeForPath(path string, data []byte) []byte {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		if converted, err := CompressToJPEG(data, DefaultJPEGQuality); err == nil {
			return converted
		}
	}
	return data
}
