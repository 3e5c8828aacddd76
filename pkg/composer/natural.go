package composer

import (
	"regexp"
	"strings"

	"github.com/shouni/go-anime-prompt-kit/pkg/domain"
	"github.com/shouni/go-anime-prompt-kit/pkg/vocab"
)

var (
	weightRegex      = regexp.MustCompile(`:\d+(\.\d+)?`)
	oneGirlRegex     = regexp.MustCompile(`(?i)\b1girl\b`)
	loraTriggerRegex = regexp.MustCompile(`(?i)lora triggers?:?`)
	commaSpaceRegex  = regexp.MustCompile(`,\s*`)
	multiSpaceRegex  = regexp.MustCompile(`\s+`)
)

// CleanTag はタグ文字列を自然言語プロンプト向けに正規化します。
// 重み指定 (:1.3)、括弧、アンダースコア、'1girl' や 'lora trigger' のような
// 文章にすると不自然な Booru 語彙を取り除くのだ。
func CleanTag(text string) string {
	if text == "" {
		return ""
	}

	text = weightRegex.ReplaceAllString(text, "")

	replacer := strings.NewReplacer("(", "", ")", "", "{", "", "}", "", "_", " ")
	text = replacer.Replace(text)

	text = oneGirlRegex.ReplaceAllString(text, "")
	text = loraTriggerRegex.ReplaceAllString(text, "")

	// カンマ間隔の正規化 (tag1,tag2 -> tag1, tag2)
	text = commaSpaceRegex.ReplaceAllString(text, ", ")

	text = strings.TrimSpace(multiSpaceRegex.ReplaceAllString(text, " "))
	return strings.Trim(text, ", ")
}

// ComposeNatural はタグの羅列ではなく文章形式のプロンプトを組み立てます。
// Flux/Qwen 系のモデルはタグスープより自然文のほうが安定するため、
// 各要素を接続句で繋いだ英文として出力するのだ。ネガティブは常に空です。
func ComposeNatural(in Input) domain.GeneratedPrompt {
	var sb strings.Builder

	// 主語の文: "A high-quality anime illustration of <名前>, a girl with <タグ>."
	sb.WriteString(vocab.FluxPrefix)
	sb.WriteString(" ")
	if name := CleanTag(in.Record.Name); name != "" {
		sb.WriteString(name)
		sb.WriteString(", ")
	}
	sb.WriteString("a girl with ")
	sb.WriteString(CleanTag(in.Record.TagString()))
	sb.WriteString(".")

	if act := CleanTag(in.Selections.Action); act != "" {
		sb.WriteString(" " + vocab.FluxConnectors[vocab.CategoryAction] + " " + act + ".")
	}
	if bg := CleanTag(in.Selections.Background); bg != "" {
		sb.WriteString(" " + vocab.FluxConnectors[vocab.CategoryBackground] + " " + bg + ".")
	}
	if mood := CleanTag(in.Selections.Mood); mood != "" {
		sb.WriteString(" " + vocab.FluxConnectors[vocab.CategoryMood] + " " + mood + ".")
	}

	if style := CleanTag(in.StyleTags); style != "" {
		sb.WriteString(" " + vocab.FluxStylePrefix + " " + style + ".")
	}
	if cam := CleanTag(in.Selections.Camera); cam != "" {
		sb.WriteString(" " + cam + ".")
	}

	if custom := CleanTag(in.CustomPositive); custom != "" {
		sb.WriteString(" " + custom + ".")
	}

	return domain.GeneratedPrompt{
		Positive:      sb.String(),
		Negative:      "",
		CharacterName: in.Record.Name,
		SourceIndex:   in.SourceIndex,
		MoodTags:      in.Selections.Mood,
	}
}
