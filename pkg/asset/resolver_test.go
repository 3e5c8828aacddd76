package asset

import (
	"strings"
	"testing"
)

func TestResolveInputPath(t *testing.T) {
	t.Run("スキーム付きURLはそのまま返ること", func(t *testing.T) {
		got, err := ResolveInputPath("prompts", "gs://bucket/characters.txt")
		if err != nil {
			t.Fatalf("解決でエラーが発生しました: %v", err)
		}
		if got != "gs://bucket/characters.txt" {
			t.Errorf("期待値 'gs://bucket/characters.txt', 実際の値 '%s'", got)
		}
	})

	t.Run("絶対パスはそのまま返ること", func(t *testing.T) {
		got, err := ResolveInputPath("prompts", "/data/characters.txt")
		if err != nil {
			t.Fatalf("解決でエラーが発生しました: %v", err)
		}
		if got != "/data/characters.txt" {
			t.Errorf("期待値 '/data/characters.txt', 実際の値 '%s'", got)
		}
	})

	t.Run("ディレクトリを含む相対パスはそのまま返ること", func(t *testing.T) {
		got, err := ResolveInputPath("prompts", "custom/characters.txt")
		if err != nil {
			t.Fatalf("解決でエラーが発生しました: %v", err)
		}
		if got != "custom/characters.txt" {
			t.Errorf("期待値 'custom/characters.txt', 実際の値 '%s'", got)
		}
	})

	t.Run("ファイル名だけの指定はベースディレクトリ起点に解決されること", func(t *testing.T) {
		got, err := ResolveInputPath("prompts", "characters.txt")
		if err != nil {
			t.Fatalf("解決でエラーが発生しました: %v", err)
		}
		if !strings.Contains(got, "prompts") || !strings.HasSuffix(got, "characters.txt") {
			t.Errorf("ベースディレクトリ起点になっていません: '%s'", got)
		}
	})
}

func TestPromptTextRegex(t *testing.T) {
	matches := []string{"prompt_1.txt", "prompt_42.txt"}
	for _, m := range matches {
		if !PromptTextRegex.MatchString(m) {
			t.Errorf("'%s' がパターンに一致しません", m)
		}
	}

	rejects := []string{"prompt.txt", "prompt_.txt", "prompt_1.md", "xprompt_1.txt"}
	for _, r := range rejects {
		if PromptTextRegex.MatchString(r) {
			t.Errorf("'%s' が誤ってパターンに一致しました", r)
		}
	}
}
