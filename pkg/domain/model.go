package domain

import "fmt"

// Model は Pollinations の画像生成モデルを表す識別子です。
// 値そのものがサービスへ送信するワイヤ名（モデル指定文字列）になります。
type Model string

const (
	ModelFlux        Model = "flux"
	ModelFluxRealism Model = "flux-realism"
	ModelAnyDark     Model = "any-dark"
	ModelFluxAnime   Model = "flux-anime"
	ModelFlux3D      Model = "flux-3d"
	ModelTurbo       Model = "turbo"
)

// DefaultModel は未指定時に利用するモデルです。
const DefaultModel = ModelFlux3D

// Resolve はモデルのワイヤ名を返します。
// 列挙に含まれない値を渡された場合はエラーを返します（将来の拡張ズレ対策）。
func (m Model) Resolve() (string, error) {
	switch m {
	case ModelFlux, ModelFluxRealism, ModelAnyDark, ModelFluxAnime, ModelFlux3D, ModelTurbo:
		return string(m), nil
	}
	return "", fmt.Errorf("未知のモデルです: %q", string(m))
}

// DisplayName は人間向けの表示名を返します。未知の値はそのまま返します。
func (m Model) DisplayName() string {
	switch m {
	case ModelFlux:
		return "Flux"
	case ModelFluxRealism:
		return "Flux Realism"
	case ModelAnyDark:
		return "Any Dark"
	case ModelFluxAnime:
		return "Flux Anime"
	case ModelFlux3D:
		return "Flux 3D"
	case ModelTurbo:
		return "Turbo"
	}
	return string(m)
}

// Models はサポートする全モデルを返します。順序は固定です。
func Models() []Model {
	return []Model{
		ModelFlux,
		ModelFluxRealism,
		ModelAnyDark,
		ModelFluxAnime,
		ModelFlux3D,
		ModelTurbo,
	}
}
