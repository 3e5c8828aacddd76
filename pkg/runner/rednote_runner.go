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

// RedNoteRunner は RedNote（小紅書）向けのムード対応バッチ生成を行います。
// 通常のバッチに加えて、ムードレベルのバケツ化・スタイルロック・
// 安全ショーツの自動付与・自然文モードを扱うのだ。
type RedNoteRunner struct {
	store *store.Store
}

// NewRedNoteRunner は依存関係を注入して RedNoteRunner を初期化します。
func NewRedNoteRunner(st *store.Store) *RedNoteRunner {
	return &RedNoteRunner{store: st}
}

// Run は BatchSize 件のプロンプトを生成します。
// EnableStyleLock が真のとき、i 番目のアイテムのスタイルインデックスは
// シードに関係なく i をスタイル数で割った余りに固定されます。
// 同じキャラクターが何度実行しても同じスタイルと組むことを保証するためなのだ。
func (rr *RedNoteRunner) Run(ctx context.Context, req RedNoteRequest) ([]domain.GeneratedPrompt, error) {
	preset, err := vocab.LookupPreset(req.Preset)
	if err != nil {
		return nil, err
	}
	if err := validateMode(req.Mode); err != nil {
		return nil, err
	}
	if err := validateTargetModel(req.TargetModel); err != nil {
		return nil, err
	}
	if err := validateCount("start_index", req.StartIndex); err != nil {
		return nil, err
	}
	if err := validateCount("batch_size", req.BatchSize); err != nil {
		return nil, err
	}

	records, err := rr.store.Load(ctx, req.PromptFile)
	if err != nil {
		return nil, err
	}
	total := records.Len()
	if total == 0 {
		return nil, fmt.Errorf("%s: %w", req.PromptFile, domain.ErrEmptyStore)
	}

	// スタイルファイルは任意。空ならスタイルタグなしで生成を続行する
	var styles domain.Records
	if req.StyleFile != "" {
		styles, err = rr.store.Load(ctx, req.StyleFile)
		if err != nil {
			return nil, err
		}
	}

	moodTags := vocab.MoodTags(req.MoodLevel)

	slog.InfoContext(ctx, "RedNoteバッチ生成を開始します",
		"batch_size", req.BatchSize, "mood_level", req.MoodLevel,
		"style_lock", req.EnableStyleLock, "target_model", req.TargetModel)

	results := make([]domain.GeneratedPrompt, 0, req.BatchSize)
	for i := 0; i < req.BatchSize; i++ {
		charIndex, err := rr.resolveCharIndex(req, total, i)
		if err != nil {
			return nil, err
		}

		styleTags, err := rr.resolveStyleTags(req, styles, i)
		if err != nil {
			return nil, err
		}

		sel, err := pickSelections(req.Flags, req.Seed, i)
		if err != nil {
			return nil, err
		}
		sel.Mood = moodTags

		// 脚の露出があり得るアクションには安全ショーツを添える
		if sel.Action != "" && vocab.NeedsSafetyShorts(sel.Action) {
			sel.Action = sel.Action + ", " + vocab.RedNoteSafetyShorts
		}

		input := composer.Input{
			Record:         records[charIndex],
			StyleTags:      styleTags,
			Preset:         preset,
			Selections:     sel,
			CustomPositive: req.Custom.Positive,
			CustomNegative: req.Custom.Negative,
			SourceIndex:    charIndex,
		}
		if preset.ID == vocab.PresetRedNote {
			input.Trailer = vocab.RedNoteCharacter
		}

		if req.TargetModel == TargetNatural {
			results = append(results, composer.ComposeNatural(input))
		} else {
			results = append(results, composer.Compose(input))
		}
	}

	return results, nil
}

// resolveCharIndex はアイテム i のキャラクターインデックスを解決します。
func (rr *RedNoteRunner) resolveCharIndex(req RedNoteRequest, total, i int) (int, error) {
	if req.Mode == ModeRandom {
		return sampler.RandomIndexAt(total, req.Seed, i, vocab.CategoryRecord)
	}
	return (req.StartIndex + i) % total, nil
}

// resolveStyleTags はアイテム i に対するスタイルタグを解決します。
// スタイルロック時は i mod スタイル数に固定、それ以外はシード由来の選択です。
func (rr *RedNoteRunner) resolveStyleTags(req RedNoteRequest, styles domain.Records, i int) (string, error) {
	if styles.Len() == 0 {
		return "", nil
	}

	var styleIndex int
	if req.EnableStyleLock {
		styleIndex = i % styles.Len()
	} else {
		var err error
		styleIndex, err = sampler.RandomIndexAt(styles.Len(), req.Seed, i, vocab.CategoryStyle)
		if err != nil {
			return "", err
		}
	}
	return styles[styleIndex].TagString(), nil
}

// validateTargetModel はターゲットモデルの列挙値を検証します。
func validateTargetModel(target string) error {
	switch target {
	case TargetTags, TargetNatural:
		return nil
	default:
		return domain.NewConfigError("target_model", target,
			fmt.Sprintf("サポートされているターゲットは [%s, %s] です", TargetTags, TargetNatural))
	}
}
