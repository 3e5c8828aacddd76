package cmd

import (
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shouni/go-anime-prompt-kit/internal/pipeline"
	"github.com/shouni/go-anime-prompt-kit/pkg/vocab"
)

// presetCmd は、スタイルプリセットの中身を確認するためのサブコマンドなのだ。
var presetCmd = &cobra.Command{
	Use:   "preset",
	Short: "スタイルプリセットの内容を表示するのだ。",
	Long: `指定したプリセットIDのポジティブ/ネガティブタグを解決して表示するのだ。
--use-custom を付けると custom-positive/negative の内容で上書きした結果を確認できるのだ。`,
	Example: "  anime-prompt preset -p gothic",
	RunE:    presetCommand,
}

// presetCommand は、preset サブコマンドの実行ロジック本体なのだ。
func presetCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := loadConfig()

	slog.Info("プリセットを確認するのだ",
		"preset", cfg.Options.Preset,
		"available", strings.Join(vocab.PresetIDs(), ", "))

	return pipeline.ExecutePreset(ctx, cfg)
}
