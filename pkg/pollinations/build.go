package pollinations

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// builtRequest は送信可能な形まで組み立てたリクエストです。
type builtRequest struct {
	method string
	url    string
	header http.Header
	body   []byte
}

// chatPayload はチャットエンドポイントのリクエストボディです。
// キー名はサービスのワイヤ仕様そのままです。
type chatPayload struct {
	Messages []chatMessage `json:"messages"`
	JSONMode bool          `json:"jsonMode"`
	Seed     string        `json:"seed"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

const (
	roleSystem = "system"
	roleUser   = "user"
)

// buildChat は検証済みチャット要求から POST リクエストを組み立てます。
// 純粋関数です。同じ入力からは常にバイト単位で同一の出力が得られます。
func buildChat(textURL string, req *chatRequest) (*builtRequest, error) {
	payload := chatPayload{
		Messages: []chatMessage{
			{Role: roleSystem, Content: req.systemPrompt},
			{Role: roleUser, Content: req.prompt},
		},
		JSONMode: true,
		Seed:     req.seed,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("チャットリクエストのエンコードに失敗しました: %w", err)
	}

	header := http.Header{}
	header.Set("Accept", "*/*")
	header.Set("Content-Type", "application/json")

	return &builtRequest{
		method: http.MethodPost,
		url:    textURL,
		header: header,
		body:   body,
	}, nil
}

// buildImage は検証済み画像要求から GET リクエストを組み立てます。
// プロンプトはパス要素として、その他のパラメータはクエリとしてエスケープします。
// クエリのキー順は url.Values.Encode によりソートされるため決定的です。
func buildImage(imageURL string, req *imageRequest) (*builtRequest, error) {
	if _, err := url.Parse(imageURL); err != nil {
		return nil, fmt.Errorf("画像エンドポイントのURLが不正です: %w", err)
	}

	q := url.Values{}
	q.Set("width", strconv.Itoa(req.width))
	q.Set("height", strconv.Itoa(req.height))
	q.Set("model", req.model)
	q.Set("seed", req.seed)
	q.Set("nologo", "true")
	q.Set("enhance", strconv.FormatBool(req.enhance))

	full := strings.TrimSuffix(imageURL, "/") + "/" + url.PathEscape(req.prompt) + "?" + q.Encode()

	header := http.Header{}
	header.Set("Accept", "image/avif,image/webp,image/apng,image/svg+xml,image/*,*/*;q=0.8")

	return &builtRequest{
		method: http.MethodGet,
		url:    full,
		header: header,
	}, nil
}
