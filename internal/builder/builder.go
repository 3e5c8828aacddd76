package builder

import (
	"context"
	"fmt"
	"log/slog"

	textbuilder "github.com/shouni/go-text-format/pkg/builder"
	"github.com/shouni/go-text-format/pkg/md2htmlrunner"
	"golang.org/x/time/rate"

	"github.com/shouni/go-anime-prompt-kit/internal/config"
	"github.com/shouni/go-anime-prompt-kit/pkg/publisher"
	"github.com/shouni/go-anime-prompt-kit/pkg/runner"
)

// BuildSingleRunner は単発生成を担当する Runner を構築します。
func BuildSingleRunner(appCtx *AppContext) *runner.SingleRunner {
	return runner.NewSingleRunner(appCtx.Store)
}

// BuildBatchRunner はバッチ生成を担当する Runner を構築します。
func BuildBatchRunner(appCtx *AppContext) *runner.BatchRunner {
	return runner.NewBatchRunner(appCtx.Store)
}

// BuildCombineRunner は直積生成を担当する Runner を構築します。
func BuildCombineRunner(appCtx *AppContext) *runner.CombineRunner {
	return runner.NewCombineRunner(appCtx.Store)
}

// BuildRedNoteRunner はムード対応バッチ生成を担当する Runner を構築します。
func BuildRedNoteRunner(appCtx *AppContext) *runner.RedNoteRunner {
	return runner.NewRedNoteRunner(appCtx.Store)
}

// BuildPublisher はコンテンツ保存と変換を行う Publisher を構築します。
// HTML変換が無効のときは md2html ランナーを組み立てないのだ。
func BuildPublisher(ctx context.Context, appCtx *AppContext) (*publisher.PromptPublisher, error) {
	var htmlRunner md2htmlrunner.Runner
	if appCtx.Options.EnableHTML {
		textConfig := textbuilder.BuilderConfig{
			EnableHardWraps: true,
		}
		appBuilder, err := textbuilder.NewBuilder(textConfig)
		if err != nil {
			return nil, fmt.Errorf("アプリケーションビルダーの初期化に失敗しました: %w", err)
		}

		htmlRunner, err = appBuilder.BuildRunner()
		if err != nil {
			return nil, fmt.Errorf("MarkdownToHtmlRunnerの初期化に失敗しました: %w", err)
		}
	} else {
		slog.DebugContext(ctx, "HTML変換は無効化されています")
	}

	limiter := rate.NewLimiter(rate.Limit(config.DefaultWritesPerSecond), config.DefaultWritesPerSecond)
	return publisher.NewPromptPublisher(appCtx.Writer, htmlRunner, limiter), nil
}
