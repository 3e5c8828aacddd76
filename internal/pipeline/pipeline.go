// Package pipeline は、CLIコマンドから呼ばれる実行フローの組み立てを担うのだ。
// 依存関係の初期化、ランナーの実行、成果物の保存までを一気通貫でやるのだ。
package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	gcsfactory "github.com/shouni/go-remote-io/remoteio/gcs"

	"github.com/shouni/go-anime-prompt-kit/internal/builder"
	"github.com/shouni/go-anime-prompt-kit/internal/config"
	"github.com/shouni/go-anime-prompt-kit/pkg/asset"
	"github.com/shouni/go-anime-prompt-kit/pkg/domain"
	"github.com/shouni/go-anime-prompt-kit/pkg/publisher"
	"github.com/shouni/go-anime-prompt-kit/pkg/runner"
	"github.com/shouni/go-anime-prompt-kit/pkg/store"
)

// ExecuteSingle は1レコードからプロンプトを1件生成して保存するのだ。
func ExecuteSingle(ctx context.Context, cfg *config.Config) error {
	appCtx, err := setupAppContext(ctx, cfg)
	if err != nil {
		return err
	}

	promptFile, err := resolvePromptFile(cfg, cfg.Options.PromptFile)
	if err != nil {
		return err
	}

	req := runner.SingleRequest{
		PromptFile: promptFile,
		Index:      cfg.Options.Index,
		Mode:       cfg.Options.SelectMode,
		Preset:     cfg.Options.Preset,
		Flags:      dynamicFlags(cfg),
		Custom:     customText(cfg),
		Seed:       cfg.Options.Seed,
	}

	slog.InfoContext(ctx, "単発生成を開始するのだ", "file", promptFile, "mode", req.Mode, "preset", req.Preset)
	prompt, err := builder.BuildSingleRunner(appCtx).Run(ctx, req)
	if err != nil {
		return fmt.Errorf("単発生成に失敗したのだ: %w", err)
	}

	return publishPrompts(ctx, appCtx, "Generated Prompt", []domain.GeneratedPrompt{prompt})
}

// ExecuteBatch は連続したレコードからプロンプトを一括生成して保存するのだ。
func ExecuteBatch(ctx context.Context, cfg *config.Config) error {
	appCtx, err := setupAppContext(ctx, cfg)
	if err != nil {
		return err
	}

	promptFile, err := resolvePromptFile(cfg, cfg.Options.PromptFile)
	if err != nil {
		return err
	}

	req := runner.BatchRequest{
		PromptFile: promptFile,
		StartIndex: cfg.Options.StartIndex,
		BatchSize:  cfg.Options.BatchSize,
		Preset:     cfg.Options.Preset,
		Flags:      dynamicFlags(cfg),
		Custom:     customText(cfg),
		Seed:       cfg.Options.Seed,
	}

	slog.InfoContext(ctx, "バッチ生成を開始するのだ", "file", promptFile, "start", req.StartIndex, "size", req.BatchSize)
	prompts, err := builder.BuildBatchRunner(appCtx).Run(ctx, req)
	if err != nil {
		return fmt.Errorf("バッチ生成に失敗したのだ: %w", err)
	}

	return publishPrompts(ctx, appCtx, "Generated Prompts (Batch)", prompts)
}

// ExecuteCombine はキャラクター×スタイルの直積でプロンプトを生成して保存するのだ。
func ExecuteCombine(ctx context.Context, cfg *config.Config) error {
	appCtx, err := setupAppContext(ctx, cfg)
	if err != nil {
		return err
	}

	charFile, err := resolvePromptFile(cfg, cfg.Options.PromptFile)
	if err != nil {
		return err
	}
	styleFile, err := resolvePromptFile(cfg, cfg.Options.StyleFile)
	if err != nil {
		return err
	}

	req := runner.CombineRequest{
		CharacterFile:   charFile,
		StyleFile:       styleFile,
		CharStartIndex:  cfg.Options.CharStartIndex,
		StyleStartIndex: cfg.Options.StyleStartIndex,
		CharCount:       cfg.Options.CharCount,
		StyleCount:      cfg.Options.StyleCount,
		Preset:          cfg.Options.Preset,
		Flags:           dynamicFlags(cfg),
		Custom:          customText(cfg),
		Seed:            cfg.Options.Seed,
	}

	slog.InfoContext(ctx, "直積生成を開始するのだ",
		"characters", charFile, "styles", styleFile,
		"char_count", req.CharCount, "style_count", req.StyleCount)
	prompts, err := builder.BuildCombineRunner(appCtx).Run(ctx, req)
	if err != nil {
		return fmt.Errorf("直積生成に失敗したのだ: %w", err)
	}

	return publishPrompts(ctx, appCtx, "Generated Prompts (Combine)", prompts)
}

// ExecuteRedNote はムードとスタイル回転を利かせたバッチ生成を実行するのだ。
func ExecuteRedNote(ctx context.Context, cfg *config.Config) error {
	appCtx, err := setupAppContext(ctx, cfg)
	if err != nil {
		return err
	}

	promptFile, err := resolvePromptFile(cfg, cfg.Options.PromptFile)
	if err != nil {
		return err
	}

	// スタイルファイルは任意指定なのだ。空なら回転なしで進めるのだ。
	styleFile := ""
	if cfg.Options.StyleFile != "" {
		styleFile, err = resolvePromptFile(cfg, cfg.Options.StyleFile)
		if err != nil {
			return err
		}
	}

	req := runner.RedNoteRequest{
		PromptFile:      promptFile,
		StyleFile:       styleFile,
		TargetModel:     cfg.Options.TargetModel,
		StartIndex:      cfg.Options.StartIndex,
		BatchSize:       cfg.Options.BatchSize,
		Preset:          cfg.Options.Preset,
		Mode:            cfg.Options.SelectMode,
		MoodLevel:       cfg.Options.MoodLevel,
		EnableStyleLock: cfg.Options.EnableStyleLock,
		Flags:           dynamicFlags(cfg),
		Custom:          customText(cfg),
		Seed:            cfg.Options.Seed,
	}

	slog.InfoContext(ctx, "RedNote生成を開始するのだ",
		"file", promptFile, "target", req.TargetModel, "mood", req.MoodLevel, "style_lock", req.EnableStyleLock)
	prompts, err := builder.BuildRedNoteRunner(appCtx).Run(ctx, req)
	if err != nil {
		return fmt.Errorf("RedNote生成に失敗したのだ: %w", err)
	}

	return publishPrompts(ctx, appCtx, "Generated Prompts (RedNote)", prompts)
}

// ExecutePreset はプリセットの中身を解決して標準出力に表示するのだ。
// ストレージには触らないので AppContext は構築しないのだ。
func ExecutePreset(ctx context.Context, cfg *config.Config) error {
	preview, err := runner.NewPresetRunner().Run(
		cfg.Options.Preset,
		cfg.Options.UseCustom,
		cfg.Options.CustomPositive,
		cfg.Options.CustomNegative,
	)
	if err != nil {
		return fmt.Errorf("プリセットの解決に失敗したのだ: %w", err)
	}

	fmt.Printf("preset: %s\n", cfg.Options.Preset)
	fmt.Printf("positive: %s\n", preview.Positive)
	fmt.Printf("negative: %s\n", preview.Negative)
	return nil
}

// setupAppContext は、提供された設定と共有コンポーネントを使用して、アプリケーションコンテキストを初期化して返すのだ。
// リモートIO（ローカル/GCS両対応）のリーダーとライターもここで組み立てるのだ。
func setupAppContext(ctx context.Context, cfg *config.Config) (*builder.AppContext, error) {
	gcsFactory, err := gcsfactory.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCS client factory: %w", err)
	}

	reader, err := gcsFactory.InputReader()
	if err != nil {
		return nil, err
	}
	writer, err := gcsFactory.OutputWriter()
	if err != nil {
		return nil, err
	}

	st := store.NewStore(reader)
	appCtx := builder.NewAppContext(cfg, reader, writer, st)
	return &appCtx, nil
}

// resolvePromptFile は、ファイル名だけの指定を PromptDir 起点のパスへ解決するのだ。
func resolvePromptFile(cfg *config.Config, fileName string) (string, error) {
	path, err := asset.ResolveInputPath(cfg.PromptDir, fileName)
	if err != nil {
		return "", fmt.Errorf("プロンプトファイル '%s' のパス解決に失敗したのだ: %w", fileName, err)
	}
	return path, nil
}

// publishPrompts は生成結果をダイジェスト/テキストとして保存する共通処理なのだ。
func publishPrompts(ctx context.Context, appCtx *builder.AppContext, title string, prompts []domain.GeneratedPrompt) error {
	pub, err := builder.BuildPublisher(ctx, appCtx)
	if err != nil {
		return fmt.Errorf("Publisherの構築に失敗したのだ: %w", err)
	}

	outputFile := appCtx.Options.OutputFile
	if outputFile == "" {
		outputFile = appCtx.Config.OutputFile
	}

	result, err := pub.Publish(ctx, title, prompts, publisher.Options{
		OutputFile: outputFile,
		TextDir:    appCtx.Options.TextDir,
	})
	if err != nil {
		return fmt.Errorf("成果物の保存に失敗したのだ: %w", err)
	}

	slog.InfoContext(ctx, "生成が完了したのだ！",
		"count", len(prompts), "markdown", result.MarkdownPath, "html", result.HTMLPath, "texts", len(result.TextPaths))
	return nil
}

// dynamicFlags は CLI フラグから動的カテゴリの有効状態を組み立てるのだ。
func dynamicFlags(cfg *config.Config) runner.DynamicFlags {
	return runner.DynamicFlags{
		Action:     cfg.Options.RandomAction,
		Background: cfg.Options.RandomBackground,
		Camera:     cfg.Options.RandomCamera,
	}
}

// customText は利用者の自由記述をまとめるのだ。
func customText(cfg *config.Config) runner.CustomText {
	return runner.CustomText{
		Positive: cfg.Options.CustomPositive,
		Negative: cfg.Options.CustomNegative,
	}
}
