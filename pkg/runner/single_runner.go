package runner

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shouni/go-anime-prompt-kit/pkg/composer"
	"github.com/shouni/go-anime-prompt-kit/pkg/domain"
	"github.com/shouni/go-anime-prompt-kit/pkg/sampler"
	"github.com/shouni/go-anime-prompt-kit/pkg/store"
	"github.com/shouni/go-anime-prompt-kit/pkg/vocab"
)

// SingleRunner はレコード1件を解決して単発のプロンプトを生成します。
type SingleRunner struct {
	store *store.Store
}

// NewSingleRunner は依存関係を注入して SingleRunner を初期化します。
func NewSingleRunner(st *store.Store) *SingleRunner {
	return &SingleRunner{store: st}
}

// Run は1件のプロンプトを生成します。
// プリセットとモードの検証はサンプリングより先に行われ、
// 失敗時には何も出力しないのだ。
func (sr *SingleRunner) Run(ctx context.Context, req SingleRequest) (domain.GeneratedPrompt, error) {
	preset, err := vocab.LookupPreset(req.Preset)
	if err != nil {
		return domain.GeneratedPrompt{}, err
	}
	if err := validateMode(req.Mode); err != nil {
		return domain.GeneratedPrompt{}, err
	}
	if err := validateCount("index", req.Index); err != nil {
		return domain.GeneratedPrompt{}, err
	}

	records, err := sr.store.Load(ctx, req.PromptFile)
	if err != nil {
		return domain.GeneratedPrompt{}, err
	}
	total := records.Len()
	if total == 0 {
		return domain.GeneratedPrompt{}, fmt.Errorf("%s: %w", req.PromptFile, domain.ErrEmptyStore)
	}

	var index int
	if req.Mode == ModeRandom {
		index, err = sampler.RandomIndexAt(total, req.Seed, 0, vocab.CategoryRecord)
		if err != nil {
			return domain.GeneratedPrompt{}, err
		}
	} else {
		index = req.Index % total
	}
	record := records[index]

	sel, err := pickSelections(req.Flags, req.Seed, 0)
	if err != nil {
		return domain.GeneratedPrompt{}, err
	}

	slog.InfoContext(ctx, "プロンプトを生成します",
		"mode", req.Mode, "index", index, "character", record.Name, "preset", preset.ID)

	return composer.Compose(composer.Input{
		Record:         record,
		Preset:         preset,
		Selections:     sel,
		CustomPositive: req.Custom.Positive,
		CustomNegative: req.Custom.Negative,
		SourceIndex:    index,
	}), nil
}

// pickSelections は有効化されたカテゴリの動的要素をバッチ内位置 pos に対して
// 決定論的にサンプリングします。
func pickSelections(flags DynamicFlags, seed uint64, pos int) (composer.Selections, error) {
	var sel composer.Selections
	var err error

	if flags.Action {
		sel.Action, err = sampler.PickForIndex(vocab.Actions, seed, pos, vocab.CategoryAction)
		if err != nil {
			return composer.Selections{}, err
		}
	}
	if flags.Background {
		sel.Background, err = sampler.PickForIndex(vocab.Backgrounds, seed, pos, vocab.CategoryBackground)
		if err != nil {
			return composer.Selections{}, err
		}
	}
	if flags.Camera {
		sel.Camera, err = sampler.PickForIndex(vocab.CameraEffects, seed, pos, vocab.CategoryCamera)
		if err != nil {
			return composer.Selections{}, err
		}
	}
	return sel, nil
}
