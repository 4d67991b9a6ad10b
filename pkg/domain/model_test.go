package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModelResolve(t *testing.T) {
	t.Run("列挙内のモデルはワイヤ名に解決できること", func(t *testing.T) {
		for _, m := range Models() {
			wire, err := m.Resolve()
			require.NoError(t, err, "model %q", m)
			assert.Equal(t, string(m), wire)
		}
	})

	t.Run("列挙外の値はエラーになること", func(t *testing.T) {
		for _, bad := range []Model{"", "dall-e-3", "FLUX", "flux "} {
			_, err := Model(bad).Resolve()
			assert.Error(t, err, "model %q", bad)
		}
	})
}

func TestModelDisplayName(t *testing.T) {
	tests := []struct {
		model Model
		want  string
	}{
		{ModelFlux, "Flux"},
		{ModelFluxRealism, "Flux Realism"},
		{ModelAnyDark, "Any Dark"},
		{ModelFluxAnime, "Flux Anime"},
		{ModelFlux3D, "Flux 3D"},
		{ModelTurbo, "Turbo"},
		{Model("unknown"), "unknown"},
	}

	for _, tt := range tests {
		t.Run(string(tt.model), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.model.DisplayName())
		})
	}
}

func TestModels(t *testing.T) {
	t.Run("全モデルが重複なく列挙されること", func(t *testing.T) {
		models := Models()
		require.Len(t, models, 6)

		seen := make(map[Model]bool)
		for _, m := range models {
			assert.False(t, seen[m], "duplicate model: %s", m)
			seen[m] = true
		}
	})
}
