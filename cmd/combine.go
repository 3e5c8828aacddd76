package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/shouni/go-anime-prompt-kit/internal/config"
	"github.com/shouni/go-anime-prompt-kit/internal/pipeline"
)

// combineCmd は、キャラクター×スタイルの直積でプロンプトを量産するサブコマンドなのだ。
var combineCmd = &cobra.Command{
	Use:   "combine",
	Short: "キャラクターとスタイルの全組み合わせを生成するのだ。",
	Long: `キャラクター定義とスタイル定義の2ファイルを読み込み、指定した範囲の
直積（キャラクター数 × スタイル数）ぶんのプロンプトを生成するのだ。
組み合わせ爆発を防ぐため、総数には上限があるのだ。`,
	Example: "  anime-prompt combine -f characters.txt --style-file style_names_v1.txt --char-count 3 --style-count 2",
	RunE:    combineCommand,
}

// combineCommand は、combine サブコマンドの実行ロジック本体なのだ。
func combineCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	// --style-file がユーザーによって指定されなかった場合、
	// combineコマンド固有のデフォルト値を設定する
	if !cmd.Flags().Changed("style-file") {
		opts.StyleFile = config.DefaultStyleFile
	}
	if opts.StyleFile == "" {
		return fmt.Errorf("スタイル定義ファイル（--style-file）を指定してほしいのだ")
	}

	cfg := loadConfig()

	slog.Info("直積生成モードを起動するのだ！",
		"prompt_file", cfg.Options.PromptFile,
		"style_file", cfg.Options.StyleFile,
		"char_count", cfg.Options.CharCount,
		"style_count", cfg.Options.StyleCount)

	return pipeline.ExecuteCombine(ctx, cfg)
}
