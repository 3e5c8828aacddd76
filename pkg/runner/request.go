// Package runner は、レコードストア・サンプラー・コンポーザを束ねて
// 1件または複数件のプロンプトを生成するモードドライバを提供します。
// 各ランナーは1回の Run で完結し、呼び出しをまたぐ状態を持たないのだ。
package runner

import (
	"fmt"
	"strings"

	"github.com/shouni/go-anime-prompt-kit/pkg/domain"
)

// レコード選択モードの列挙値です。
const (
	ModeSequential = "sequential"
	ModeRandom     = "random"
)

// RedNote のターゲットモデル列挙値です。出力の整形方針だけが変わります。
const (
	TargetTags    = "tags"    // Illustrious 系: タグのカンマ結合
	TargetNatural = "natural" // Flux/Qwen 系: 自然文
)

// DynamicFlags は動的要素カテゴリごとの有効/無効フラグです。
type DynamicFlags struct {
	Action     bool
	Background bool
	Camera     bool
}

// CustomText は利用者が追記するポジティブ/ネガティブ文字列です。
type CustomText struct {
	Positive string
	Negative string
}

// SingleRequest は単発生成1回分のリクエストです。
type SingleRequest struct {
	PromptFile string
	Index      int    // sequential モードで使うレコードインデックス
	Mode       string // sequential | random
	Preset     string
	Flags      DynamicFlags
	Custom     CustomText
	Seed       uint64
}

// BatchRequest はバッチ生成1回分のリクエストです。
type BatchRequest struct {
	PromptFile string
	StartIndex int
	BatchSize  int
	Preset     string
	Flags      DynamicFlags
	Custom     CustomText
	Seed       uint64
}

// CombineRequest はキャラクター×スタイルの直積生成リクエストです。
type CombineRequest struct {
	CharacterFile   string
	StyleFile       string
	CharStartIndex  int
	StyleStartIndex int
	CharCount       int
	StyleCount      int
	Preset          string
	Flags           DynamicFlags
	Custom          CustomText
	Seed            uint64
}

// RedNoteRequest はムード対応バッチ生成のリクエストです。
type RedNoteRequest struct {
	PromptFile      string
	StyleFile       string
	TargetModel     string // tags | natural
	StartIndex      int
	BatchSize       int
	Preset          string
	Mode            string  // sequential | random
	MoodLevel       float64 // [0.0, 1.0]
	EnableStyleLock bool
	Flags           DynamicFlags
	Custom          CustomText
	Seed            uint64
}

// validateMode は選択モードの列挙値を検証します。
func validateMode(mode string) error {
	switch mode {
	case ModeSequential, ModeRandom:
		return nil
	default:
		return domain.NewConfigError("mode", mode,
			fmt.Sprintf("サポートされているモードは [%s] です", strings.Join([]string{ModeRandom, ModeSequential}, ", ")))
	}
}

// validateCount は個数/インデックス系パラメータが非負であることを検証します。
func validateCount(field string, value int) error {
	if value < 0 {
		return domain.NewConfigError(field, fmt.Sprint(value), "負の値は指定できません")
	}
	return nil
}
