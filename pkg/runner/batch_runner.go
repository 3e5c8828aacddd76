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

// BatchRunner は連続するインデックス窓からバッチ生成を行います。
type BatchRunner struct {
	store *store.Store
}

// NewBatchRunner は依存関係を注入して BatchRunner を初期化します。
func NewBatchRunner(st *store.Store) *BatchRunner {
	return &BatchRunner{store: st}
}

// Run は [StartIndex, StartIndex+BatchSize) の窓をレコード数で巡回しながら
// BatchSize 件のプロンプトを生成します。動的要素は窓内の位置をキーに
// サンプリングされ、バッチサイズが語彙サイズ以下なら同一カテゴリ内で
// 重複しないのだ。エラー時は部分的なリストを返しません。
func (br *BatchRunner) Run(ctx context.Context, req BatchRequest) ([]domain.GeneratedPrompt, error) {
	preset, err := vocab.LookupPreset(req.Preset)
	if err != nil {
		return nil, err
	}
	if err := validateCount("start_index", req.StartIndex); err != nil {
		return nil, err
	}
	if err := validateCount("batch_size", req.BatchSize); err != nil {
		return nil, err
	}

	records, err := br.store.Load(ctx, req.PromptFile)
	if err != nil {
		return nil, err
	}
	total := records.Len()
	if total == 0 {
		return nil, fmt.Errorf("%s: %w", req.PromptFile, domain.ErrEmptyStore)
	}

	slog.InfoContext(ctx, "バッチ生成を開始します",
		"start_index", req.StartIndex, "batch_size", req.BatchSize, "total_records", total)

	results := make([]domain.GeneratedPrompt, 0, req.BatchSize)
	for i := 0; i < req.BatchSize; i++ {
		index := (req.StartIndex + i) % total

		sel, err := pickSelections(req.Flags, req.Seed, i)
		if err != nil {
			return nil, err
		}

		results = append(results, composer.Compose(composer.Input{
			Record:         records[index],
			Preset:         preset,
			Selections:     sel,
			CustomPositive: req.Custom.Positive,
			CustomNegative: req.Custom.Negative,
			SourceIndex:    index,
		}))
	}

	return results, nil
}
