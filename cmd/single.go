package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/shouni/go-anime-prompt-kit/internal/pipeline"
)

// singleCmd は、1レコードから1件のプロンプトを生成するサブコマンドなのだ。
var singleCmd = &cobra.Command{
	Use:   "single",
	Short: "1レコードからプロンプトを1件生成するのだ。",
	Long: `キャラクター定義ファイルから1レコードを選び、プリセットと動的要素を合成して
1件の完成プロンプトを生成するのだ。--select-mode random ならシードから決定的に選ぶのだ。`,
	Example: "  anime-prompt single -f characters.txt --index 2 --random-action --seed 42",
	RunE:    singleCommand,
}

// singleCommand は、single サブコマンドの実行ロジック本体なのだ。
func singleCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := loadConfig()

	slog.Info("単発生成モードを起動するのだ！",
		"prompt_file", cfg.Options.PromptFile,
		"index", cfg.Options.Index,
		"select_mode", cfg.Options.SelectMode,
		"preset", cfg.Options.Preset)

	return pipeline.ExecuteSingle(ctx, cfg)
}
