package runner

import (
	"strings"

	"github.com/shouni/go-anime-prompt-kit/pkg/vocab"
)

// PresetPreview はプリセットのサフィックス対を確認するための出力です。
type PresetPreview struct {
	Positive string
	Negative string
}

// PresetRunner はプリセットのサフィックスをプレビューするユーティリティです。
// ワークフローに組み込む前にプリセットの中身を確認する用途なのだ。
type PresetRunner struct{}

// NewPresetRunner は PresetRunner を初期化します。
func NewPresetRunner() *PresetRunner {
	return &PresetRunner{}
}

// Run は指定プリセットのポジティブ/ネガティブサフィックスを返します。
// useCustom が真のとき、空でないカスタム文字列が対応する側を上書きします。
// 未知のプリセットIDはフォールバックせず設定エラーになるのだ。
func (pr *PresetRunner) Run(presetID string, useCustom bool, customPositive, customNegative string) (PresetPreview, error) {
	preset, err := vocab.LookupPreset(presetID)
	if err != nil {
		return PresetPreview{}, err
	}

	preview := PresetPreview{
		Positive: preset.Positive,
		Negative: preset.Negative,
	}

	if useCustom {
		if custom := strings.TrimSpace(customPositive); custom != "" {
			preview.Positive = custom
		}
		if custom := strings.TrimSpace(customNegative); custom != "" {
			preview.Negative = custom
		}
	}

	return preview, nil
}
