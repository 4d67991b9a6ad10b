package pollinations

import (
	"fmt"
	"strings"
	"time"

	"github.com/shouni/pollinations-kit/pkg/apierr"
	"github.com/shouni/pollinations-kit/pkg/domain"
)

const (
	// DefaultSystemPrompt はシステムプロンプト未指定時の値です。
	DefaultSystemPrompt = "You are a helpful assistant."
	// DefaultImagePath は保存先未指定時のファイル名です。
	DefaultImagePath = "image.png"
	// DefaultDimension は幅・高さ未指定時のピクセル数です。
	DefaultDimension = 1024
	// MaxDimension はサービスが受け付ける幅・高さの上限です。
	MaxDimension = 2048
)

// chatRequest は検証済みのチャット要求です。
// ビルダーはこの型しか受け取らないため、検証前のリクエストが
// ネットワーク層へ流れることはありません。
type chatRequest struct {
	prompt       string
	systemPrompt string
	seed         string
	timeout      time.Duration
}

// imageRequest は検証済みの画像生成要求です。model は解決済みのワイヤ名です。
type imageRequest struct {
	prompt  string
	model   string
	path    string
	width   int
	height  int
	enhance bool
	seed    string
	timeout time.Duration
}

// validateChat はチャット要求を検証し、デフォルトを補った検証済み要求を返します。
// ネットワークアクセスは行いません。
func validateChat(req domain.ChatRequest, defaultTimeout time.Duration, seed Seeder) (*chatRequest, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return nil, apierr.InvalidParameter("prompt", "must not be empty")
	}

	v := &chatRequest{
		prompt:       req.Prompt,
		systemPrompt: req.SystemPrompt,
		seed:         req.Seed,
	}
	if v.systemPrompt == "" {
		v.systemPrompt = DefaultSystemPrompt
	}
	if v.seed == "" {
		v.seed = seed()
	}

	timeout, err := resolveTimeout(req.Timeout, defaultTimeout)
	if err != nil {
		return nil, err
	}
	v.timeout = timeout

	return v, nil
}

// validateImage は画像生成要求を検証し、デフォルトを補った検証済み要求を返します。
func validateImage(req domain.ImageRequest, defaultTimeout time.Duration, seed Seeder) (*imageRequest, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return nil, apierr.InvalidParameter("prompt", "must not be empty")
	}

	model := req.Model
	if model == "" {
		model = domain.DefaultModel
	}
	wire, err := model.Resolve()
	if err != nil {
		return nil, apierr.UnknownModel(string(model), err)
	}

	width, err := resolveDimension("width", req.Width)
	if err != nil {
		return nil, err
	}
	height, err := resolveDimension("height", req.Height)
	if err != nil {
		return nil, err
	}

	v := &imageRequest{
		prompt: req.Prompt,
		model:  wire,
		path:   req.DestinationPath,
		width:  width,
		height: height,
		// 未指定（nil）は強化あり
		enhance: req.Enhance == nil || *req.Enhance,
		seed:    req.Seed,
	}
	if v.path == "" {
		v.path = DefaultImagePath
	}
	if v.seed == "" {
		v.seed = seed()
	}

	timeout, err := resolveTimeout(req.Timeout, defaultTimeout)
	if err != nil {
		return nil, err
	}
	v.timeout = timeout

	return v, nil
}

func resolveDimension(name string, value int) (int, error) {
	if value == 0 {
		return DefaultDimension, nil
	}
	if value < 0 || value > MaxDimension {
		return 0, apierr.InvalidParameter("dimensions",
			fmt.Sprintf("%s must be between 1 and %d, got %d", name, MaxDimension, value))
	}
	return value, nil
}

func resolveTimeout(value, fallback time.Duration) (time.Duration, error) {
	if value == 0 {
		value = fallback
	}
	if value <= 0 {
		return 0, apierr.InvalidParameter("timeout", fmt.Sprintf("must be positive, got %s", value))
	}
	return value, nil
}
