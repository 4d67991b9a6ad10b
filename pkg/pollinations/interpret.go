package pollinations

import (
	"bytes"
	"strings"

	"github.com/shouni/pollinations-kit/pkg/apierr"
)

// interpretChat はチャット応答からテキストを取り出します。
// 成功時は前後の空白を落とした UTF-8 テキストを返します。
func interpretChat(resp *TransportResponse) (string, error) {
	if err := checkStatus(resp); err != nil {
		return "", err
	}
	return strings.TrimSpace(string(resp.Body)), nil
}

// interpretImage は画像応答から生のバイト列を取り出します。
// 部分的な結果は返しません。受信し終えたボディのみが対象です。
func interpretImage(resp *TransportResponse) ([]byte, error) {
	if err := checkStatus(resp); err != nil {
		return nil, err
	}
	return resp.Body, nil
}

// checkStatus はステータスとボディの有無を分類します。
//   - 2xx かつボディあり: 成功
//   - 2xx かつボディ空:   empty_response
//   - 4xx:                client_request
//   - 5xx:                service_unavailable
//   - その他:             unexpected_response
func checkStatus(resp *TransportResponse) error {
	if resp.StatusCode >= 200 && resp.StatusCode <= 299 {
		if len(bytes.TrimSpace(resp.Body)) == 0 {
			return apierr.EmptyResponse(resp.StatusCode)
		}
		return nil
	}
	return apierr.FromStatus(resp.StatusCode, resp.Body)
}
