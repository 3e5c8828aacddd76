package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/shouni/go-anime-prompt-kit/internal/pipeline"
)

// batchCmd は、連続したレコードからプロンプトを一括生成するサブコマンドなのだ。
var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "連続したレコードからプロンプトを一括生成するのだ。",
	Long: `--start-index から --batch-size 件のレコードを順に取り出し、それぞれに
プリセットと動的要素を合成するのだ。末尾を超えたら先頭に巻き戻って続けるのだ。`,
	Example: "  anime-prompt batch -f characters.txt --start-index 4 -n 8 --random-background",
	RunE:    batchCommand,
}

// batchCommand は、batch サブコマンドの実行ロジック本体なのだ。
func batchCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := loadConfig()

	slog.Info("バッチ生成モードを起動するのだ！",
		"prompt_file", cfg.Options.PromptFile,
		"start_index", cfg.Options.StartIndex,
		"batch_size", cfg.Options.BatchSize,
		"preset", cfg.Options.Preset)

	return pipeline.ExecuteBatch(ctx, cfg)
}
