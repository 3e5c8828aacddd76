package publisher

import (
	"fmt"
	"strings"

	"github.com/shouni/go-anime-prompt-kit/pkg/domain"
)

// BuildDigest は生成結果を構造化された Markdown 形式で組み立てます。
// go-text-format が解釈できる見出し+箇条書きの構造にしておくのだ。
func BuildDigest(title string, prompts []domain.GeneratedPrompt) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# %s\n\n", title))
	sb.WriteString(fmt.Sprintf("- total: %d\n\n", len(prompts)))

	for i, p := range prompts {
		name := p.CharacterName
		if name == "" {
			name = fmt.Sprintf("record %d", p.SourceIndex)
		}

		sb.WriteString(fmt.Sprintf("## %d. %s\n", i+1, name))
		sb.WriteString(fmt.Sprintf("- source_index: %d\n", p.SourceIndex))
		if p.MoodTags != "" {
			sb.WriteString(fmt.Sprintf("- mood: %s\n", p.MoodTags))
		}
		sb.WriteString(fmt.Sprintf("- positive: %s\n", p.Positive))
		if p.Negative != "" {
			sb.WriteString(fmt.Sprintf("- negative: %s\n", p.Negative))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
