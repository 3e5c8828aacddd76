package config

import (
	"github.com/shouni/go-utils/envutil"
)

// デフォルト値の定義なのだ
const (
	DefaultPromptDir       = "prompts"                     // プロンプトファイルを探すデフォルトディレクトリ
	DefaultPromptFile      = "characters.txt"              // キャラクター定義のデフォルトファイル名
	DefaultStyleFile       = "style_names_v1.txt"          // スタイル定義のデフォルトファイル名
	DefaultOutputFile      = "output/prompts.md"           // ダイジェストのデフォルト保存先なのだ
	DefaultPreset          = "standard"                    // デフォルトのスタイルプリセット
	DefaultSelectMode      = "sequential"                  // デフォルトのレコード選択モード
	DefaultTargetModel     = "tags"                        // RedNote のデフォルト出力形式
	DefaultBatchSize       = 4                             // バッチ生成のデフォルト件数
	DefaultWritesPerSecond = 8                             // リモートストレージへの書き込みレート上限
)

// Config はアプリケーション全体の環境設定を保持する構造体なのだ。
type Config struct {
	PromptDir  string // プロンプトファイルの探索ディレクトリ（ローカル or gs://）
	OutputFile string

	Options GenerateOptions
}

// LoadConfig は環境変数から設定を読み込み、構造体を返すのだ！
func LoadConfig() *Config {
	cfg := &Config{
		PromptDir:  envutil.GetEnv("PROMPT_DIR", DefaultPromptDir),
		OutputFile: envutil.GetEnv("PROMPT_OUTPUT_FILE", DefaultOutputFile),
	}
	return cfg
}

// GenerateOptions は CLI フラグから渡される実行時のパラメータなのだ。
type GenerateOptions struct {
	// 入力ソース関連
	PromptFile string // --prompt-file
	StyleFile  string // --style-file

	// レコード選択関連
	Index           int    // --index: single の sequential モードで使う
	StartIndex      int    // --start-index
	BatchSize       int    // --batch-size
	CharStartIndex  int    // --char-start-index
	StyleStartIndex int    // --style-start-index
	CharCount       int    // --char-count
	StyleCount      int    // --style-count
	SelectMode      string // --select-mode: sequential | random

	// プロンプト合成関連
	Preset           string  // --preset
	RandomAction     bool    // --random-action
	RandomBackground bool    // --random-background
	RandomCamera     bool    // --random-camera
	CustomPositive   string  // --custom-positive
	CustomNegative   string  // --custom-negative
	Seed             uint64  // --seed
	MoodLevel        float64 // --mood-level: RedNote のみ
	EnableStyleLock  bool    // --style-lock: RedNote のみ
	TargetModel      string  // --target-model: RedNote のみ
	UseCustom        bool    // --use-custom: preset プレビューのみ

	// 出力関連
	OutputFile string // --output-file
	TextDir    string // --output-text-dir: 空ならアイテム別テキストを出力しない
	EnableHTML bool   // --html: ダイジェストのHTML変換を有効にする
}
