package cmd

import (
	"fmt"

	clibase "github.com/shouni/go-cli-base"
	"github.com/spf13/cobra"

	"github.com/shouni/go-anime-prompt-kit/internal/config"
)

// opts は addAppFlags で各フラグに紐付けられ、サブコマンド間で共有されるのだ。
var opts config.GenerateOptions

// addAppFlags は、アプリケーション全般に適用されるグローバルフラグを定義するのだ。
// インデックスや件数といったモード固有のフラグは各サブコマンド側に付けるのだ。
func addAppFlags(rootCmd *cobra.Command) {
	// --- ソース入力関連 ---
	rootCmd.PersistentFlags().StringVarP(&opts.PromptFile, "prompt-file", "f", config.DefaultPromptFile, "キャラクター定義ファイル（ファイル名、ローカルパス、gs://...）なのだ。")
	rootCmd.PersistentFlags().StringVar(&opts.StyleFile, "style-file", "", "スタイル定義ファイルなのだ。combine では必須なのだ。")

	// --- プロンプト合成関連 ---
	rootCmd.PersistentFlags().StringVarP(&opts.Preset, "preset", "p", config.DefaultPreset, "スタイルプリセットIDなのだ。")
	rootCmd.PersistentFlags().Uint64Var(&opts.Seed, "seed", 0, "決定的サンプリングのシード値なのだ。同じシードは同じ結果を返すのだ。")
	rootCmd.PersistentFlags().BoolVar(&opts.RandomAction, "random-action", false, "アクションタグを動的に選ぶのだ。")
	rootCmd.PersistentFlags().BoolVar(&opts.RandomBackground, "random-background", false, "背景タグを動的に選ぶのだ。")
	rootCmd.PersistentFlags().BoolVar(&opts.RandomCamera, "random-camera", false, "カメラ演出タグを動的に選ぶのだ。")
	rootCmd.PersistentFlags().StringVar(&opts.CustomPositive, "custom-positive", "", "末尾に追記するポジティブタグなのだ。")
	rootCmd.PersistentFlags().StringVar(&opts.CustomNegative, "custom-negative", "", "末尾に追記するネガティブタグなのだ。")

	// --- 生成結果の出力設定 ---
	rootCmd.PersistentFlags().StringVarP(&opts.OutputFile, "output-file", "o", "", "ダイジェストの保存パス（ローカル or gs://...）なのだ。")
	rootCmd.PersistentFlags().StringVar(&opts.TextDir, "output-text-dir", "", "アイテム別テキストの出力ディレクトリなのだ。空なら出力しないのだ。")
	rootCmd.PersistentFlags().BoolVar(&opts.EnableHTML, "html", false, "ダイジェストのHTML変換も保存するのだ。")

	// --- モード固有のフラグ ---
	singleCmd.Flags().IntVar(&opts.Index, "index", 0, "sequential モードで使うレコードのインデックスなのだ。")
	singleCmd.Flags().StringVarP(&opts.SelectMode, "select-mode", "m", config.DefaultSelectMode, "レコード選択モード（sequential | random）なのだ。")

	batchCmd.Flags().IntVar(&opts.StartIndex, "start-index", 0, "バッチの開始インデックスなのだ。")
	batchCmd.Flags().IntVarP(&opts.BatchSize, "batch-size", "n", config.DefaultBatchSize, "生成する件数なのだ。")

	combineCmd.Flags().IntVar(&opts.CharStartIndex, "char-start-index", 0, "キャラクター側の開始インデックスなのだ。")
	combineCmd.Flags().IntVar(&opts.StyleStartIndex, "style-start-index", 0, "スタイル側の開始インデックスなのだ。")
	combineCmd.Flags().IntVar(&opts.CharCount, "char-count", 1, "組み合わせるキャラクター数なのだ。")
	combineCmd.Flags().IntVar(&opts.StyleCount, "style-count", 1, "組み合わせるスタイル数なのだ。")

	rednoteCmd.Flags().IntVar(&opts.StartIndex, "start-index", 0, "バッチの開始インデックスなのだ。")
	rednoteCmd.Flags().IntVarP(&opts.BatchSize, "batch-size", "n", config.DefaultBatchSize, "生成する件数なのだ。")
	rednoteCmd.Flags().StringVarP(&opts.SelectMode, "select-mode", "m", config.DefaultSelectMode, "レコード選択モード（sequential | random）なのだ。")
	rednoteCmd.Flags().Float64Var(&opts.MoodLevel, "mood-level", 0.5, "ムードレベル（0.0〜1.0）なのだ。")
	rednoteCmd.Flags().BoolVar(&opts.EnableStyleLock, "style-lock", false, "スタイルを順番に固定割り当てするのだ。")
	rednoteCmd.Flags().StringVar(&opts.TargetModel, "target-model", config.DefaultTargetModel, "出力フォーマット（tags | natural）なのだ。")

	presetCmd.Flags().BoolVar(&opts.UseCustom, "use-custom", false, "custom-positive/negative でプリセットを上書きするのだ。")
}

// preRunAppE は、コマンド実行前に共通パラメータの軽い検証を行うのだ。
func preRunAppE(cmd *cobra.Command, args []string) error {
	if opts.MoodLevel < 0.0 || opts.MoodLevel > 1.0 {
		return fmt.Errorf("エラー: --mood-level は 0.0〜1.0 の範囲で指定してほしいのだ（指定値: %g）", opts.MoodLevel)
	}
	return nil
}

// Execute は、アプリケーションのメインエントリポイントなのだ。
// main.go から呼び出されて、cobra のコマンドライン解析を開始するのだよ。
func Execute() {
	clibase.Execute(
		"anime-prompt",
		addAppFlags,
		preRunAppE,
		singleCmd,
		batchCmd,
		combineCmd,
		rednoteCmd,
		presetCmd,
	)
}

// loadConfig は環境変数から基本設定をロードし、CLIフラグの値を重ねるのだ。
func loadConfig() *config.Config {
	cfg := config.LoadConfig()
	cfg.Options = opts
	return cfg
}
