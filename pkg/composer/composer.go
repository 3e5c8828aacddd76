// Package composer は、キャラクターレコード・プリセット・動的要素・カスタムテキストを
// 1組のポジティブ/ネガティブプロンプトへ合成します。合成は入力のみに依存する
// 純粋関数で、副作用は持たないのだ。
package composer

import (
	"strings"

	"github.com/shouni/go-anime-prompt-kit/pkg/domain"
	"github.com/shouni/go-anime-prompt-kit/pkg/vocab"
)

// Selections はサンプラーが選んだ動的要素1組です。未選択のカテゴリは空文字のまま
// にしておけば合成時に省かれます。
type Selections struct {
	Action     string
	Background string
	Mood       string // RedNote モードのみ。背景とカメラの間に挿入される
	Camera     string
}

// Input は合成1回分の入力です。
type Input struct {
	Record         domain.Record // キャラクターレコード
	StyleTags      string        // スタイルファイル由来のタグ（コンバイナ/RedNoteのみ）
	Preset         vocab.Preset
	Selections     Selections
	Trailer        string // カスタムの直前に付く強制タグ（RedNoteのキャラクター強制など）
	CustomPositive string
	CustomNegative string
	SourceIndex    int
}

// Compose は固定の並び順でポジティブ/ネガティブプロンプトを組み立てます。
// 並び順: プリセット → スタイル → キャラクター → アクション → 背景 → ムード →
// カメラ → 強制タグ → カスタム。空のセグメントは区切り記号ごと省かれるのだ。
// ネガティブは常にプリセットとカスタムの結合だけで、動的要素の影響を受けません。
func Compose(in Input) domain.GeneratedPrompt {
	positive := joinParts(
		in.Preset.Positive,
		in.StyleTags,
		in.Record.TagString(),
		in.Selections.Action,
		in.Selections.Background,
		in.Selections.Mood,
		in.Selections.Camera,
		in.Trailer,
		in.CustomPositive,
	)

	negative := joinParts(in.Preset.Negative, in.CustomNegative)

	return domain.GeneratedPrompt{
		Positive:      positive,
		Negative:      negative,
		CharacterName: in.Record.Name,
		SourceIndex:   in.SourceIndex,
		MoodTags:      in.Selections.Mood,
	}
}

// joinParts は空でないセグメントだけをカンマで結合します。
// 先頭のカンマや前後の空白は取り除いて、余計な区切りが残らないようにするのだ。
func joinParts(parts ...string) string {
	clean := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		p = strings.TrimLeft(p, ", ")
		p = strings.TrimRight(p, ", ")
		if p != "" {
			clean = append(clean, p)
		}
	}
	return strings.Join(clean, ", ")
}
