// Package apierr は Pollinations クライアントが呼び出し元へ返すエラーの分類を提供します。
// トランスポート固有の失敗形態に依存しない、安定したエラー種別の集合です。
package apierr

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Kind はエラーの分類です。
type Kind string

const (
	// KindInvalidParameter は入力パラメータの検証失敗です（ネットワーク到達前）。
	KindInvalidParameter Kind = "invalid_parameter"
	// KindUnknownModel は列挙外のモデル指定です。
	KindUnknownModel Kind = "unknown_model"
	// KindNetwork は接続失敗・タイムアウト等のトランスポート層の失敗です。
	KindNetwork Kind = "network"
	// KindEmptyResponse は 2xx だがボディが空だった場合です。
	KindEmptyResponse Kind = "empty_response"
	// KindClientRequest は 4xx（呼び出し側の誤り）です。
	KindClientRequest Kind = "client_request"
	// KindServiceUnavailable は 5xx（一時的障害、外側での再試行候補）です。
	KindServiceUnavailable Kind = "service_unavailable"
	// KindUnexpectedResponse は上記いずれにも当てはまらない応答です。
	KindUnexpectedResponse Kind = "unexpected_response"
)

// snippetLimit はエラーメッセージへ取り込むレスポンスボディの上限バイト数です。
const snippetLimit = 200

// Error は全エラー種別を運ぶ構造体です。
type Error struct {
	Kind Kind
	// Param は検証に失敗したパラメータ名です（KindInvalidParameter のみ）。
	Param string
	// StatusCode はサービス応答の HTTP ステータスです（応答系のみ）。
	StatusCode int
	Message    string
	// Err は元になったトランスポートエラー等です。
	Err error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("pollinations: ")
	b.WriteString(string(e.Kind))
	if e.Param != "" {
		fmt.Fprintf(&b, " (%s)", e.Param)
	}
	if e.StatusCode != 0 {
		fmt.Fprintf(&b, " (status %d)", e.StatusCode)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// InvalidParameter は検証失敗エラーを返します。param は違反したパラメータ名です。
func InvalidParameter(param, message string) *Error {
	return &Error{Kind: KindInvalidParameter, Param: param, Message: message}
}

// UnknownModel は列挙外モデルのエラーを返します。
func UnknownModel(value string, err error) *Error {
	return &Error{Kind: KindUnknownModel, Message: fmt.Sprintf("unsupported model %q", value), Err: err}
}

// Network はトランスポート層の失敗を包んで返します。
func Network(message string, err error) *Error {
	return &Error{Kind: KindNetwork, Message: message, Err: err}
}

// EmptyResponse は成功ステータスかつ空ボディのエラーを返します。
func EmptyResponse(status int) *Error {
	return &Error{Kind: KindEmptyResponse, StatusCode: status, Message: "empty response received"}
}

// FromStatus は非 2xx ステータスを種別に分類します。
// ボディは先頭のみをメッセージへ取り込みます。
func FromStatus(status int, body []byte) *Error {
	e := &Error{StatusCode: status, Message: Snippet(body)}
	switch {
	case status >= 400 && status <= 499:
		e.Kind = KindClientRequest
	case status >= 500 && status <= 599:
		e.Kind = KindServiceUnavailable
	default:
		e.Kind = KindUnexpectedResponse
	}
	return e
}

// KindOf は err が *Error の場合にその Kind を返します。違う場合は空文字です。
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// Snippet はボディを UTF-8 の境界を壊さない範囲で snippetLimit バイトに切り詰めます。
func Snippet(body []byte) string {
	s := strings.TrimSpace(string(body))
	if len(s) <= snippetLimit {
		return s
	}
	s = s[:snippetLimit]
	for !utf8.ValidString(s) {
		s = s[:len(s)-1]
	}
	return s + "..."
}
