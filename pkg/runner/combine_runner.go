package runner

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shouni/go-anime-prompt-kit/pkg/composer"
	"github.com/shouni/go-anime-prompt-kit/pkg/domain"
	"github.com/shouni/go-anime-prompt-kit/pkg/store"
	"github.com/shouni/go-anime-prompt-kit/pkg/vocab"
)

// MaxCombinedPrompts は1回の直積生成で許容する上限件数です。
// 巨大なバッチを誤って発行してしまう事故を防ぐためのガードなのだ。
const MaxCombinedPrompts = 100

// CombineRunner はキャラクターファイルとスタイルファイルを入れ子ループで
// 組み合わせ、直積のプロンプト列を生成します。
type CombineRunner struct {
	store *store.Store
}

// NewCombineRunner は依存関係を注入して CombineRunner を初期化します。
func NewCombineRunner(st *store.Store) *CombineRunner {
	return &CombineRunner{store: st}
}

// Run は CharCount × StyleCount 件のプロンプトを行優先
// （キャラクターが遅く、スタイルが速く変わる順）で生成します。
// どちらの次元もストアのレコード数で巡回するのだ。
func (cr *CombineRunner) Run(ctx context.Context, req CombineRequest) ([]domain.GeneratedPrompt, error) {
	preset, err := vocab.LookupPreset(req.Preset)
	if err != nil {
		return nil, err
	}
	for field, v := range map[string]int{
		"char_start_index":  req.CharStartIndex,
		"style_start_index": req.StyleStartIndex,
		"char_count":        req.CharCount,
		"style_count":       req.StyleCount,
	} {
		if err := validateCount(field, v); err != nil {
			return nil, err
		}
	}

	totalPrompts := req.CharCount * req.StyleCount
	if totalPrompts > MaxCombinedPrompts {
		return nil, domain.NewConfigError("char_count*style_count", fmt.Sprint(totalPrompts),
			fmt.Sprintf("直積の件数は最大 %d 件までです", MaxCombinedPrompts))
	}
	if totalPrompts == 0 {
		return []domain.GeneratedPrompt{}, nil
	}

	characters, err := cr.store.Load(ctx, req.CharacterFile)
	if err != nil {
		return nil, err
	}
	if characters.Len() == 0 {
		return nil, fmt.Errorf("%s: %w", req.CharacterFile, domain.ErrEmptyStore)
	}

	styles, err := cr.store.Load(ctx, req.StyleFile)
	if err != nil {
		return nil, err
	}
	if styles.Len() == 0 {
		return nil, fmt.Errorf("%s: %w", req.StyleFile, domain.ErrEmptyStore)
	}

	slog.InfoContext(ctx, "直積生成を開始します",
		"char_count", req.CharCount, "style_count", req.StyleCount, "total", totalPrompts)

	results := make([]domain.GeneratedPrompt, 0, totalPrompts)
	for charOffset := 0; charOffset < req.CharCount; charOffset++ {
		charIndex := (req.CharStartIndex + charOffset) % characters.Len()
		char := characters[charIndex]

		for styleOffset := 0; styleOffset < req.StyleCount; styleOffset++ {
			styleIndex := (req.StyleStartIndex + styleOffset) % styles.Len()
			style := styles[styleIndex]

			// 平坦化した位置をキーにして、ペアごとの動的要素を導出する
			position := charOffset*req.StyleCount + styleOffset
			sel, err := pickSelections(req.Flags, req.Seed, position)
			if err != nil {
				return nil, err
			}

			results = append(results, composer.Compose(composer.Input{
				Record:         char,
				StyleTags:      style.TagString(),
				Preset:         preset,
				Selections:     sel,
				CustomPositive: req.Custom.Positive,
				CustomNegative: req.Custom.Negative,
				SourceIndex:    charIndex,
			}))
		}
	}

	return results, nil
}
