package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/shouni/go-anime-prompt-kit/internal/pipeline"
)

// rednoteCmd は、ムードとスタイル回転を利かせたSNS投稿向けバッチ生成なのだ。
var rednoteCmd = &cobra.Command{
	Use:   "rednote",
	Short: "ムード対応のSNS向けプロンプトを一括生成するのだ。",
	Long: `キャラクター定義に加えて任意のスタイル定義を読み込み、--mood-level に応じた
雰囲気タグと安全衣装の補正を入れたプロンプトを一括生成するのだ。
--target-model natural を指定すると Flux/Qwen 向けの自然文に整形するのだ。`,
	Example: "  anime-prompt rednote -f characters.txt --style-file style_names_v1.txt --mood-level 0.8 --style-lock",
	RunE:    rednoteCommand,
}

// rednoteCommand は、rednote サブコマンドの実行ロジック本体なのだ。
func rednoteCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := loadConfig()

	slog.Info("RedNote生成モードを起動するのだ！",
		"prompt_file", cfg.Options.PromptFile,
		"style_file", cfg.Options.StyleFile,
		"mood_level", cfg.Options.MoodLevel,
		"style_lock", cfg.Options.EnableStyleLock,
		"target_model", cfg.Options.TargetModel)

	return pipeline.ExecuteRedNote(ctx, cfg)
}
