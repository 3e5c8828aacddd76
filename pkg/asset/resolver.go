package asset

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/shouni/go-utils/urlpath"
)

const (
	// DefaultTextFileName はプロンプトのテキスト出力の共通ベースファイル名です。
	DefaultTextFileName = "prompt.txt"
	// DefaultDigestName は生成結果ダイジェストのデフォルト Markdown ファイル名です。
	DefaultDigestName = "prompts.md"
)

// PromptTextRegex はインデックス付きテキスト出力 (prompt_1.txt 等) に一致します
var PromptTextRegex = createIndexedRegex(DefaultTextFileName)

// ResolveInputPath は、ベースディレクトリとファイル名から読み込み用のパスを解決します。
// fileName がスキーム付き URL・絶対パス・ディレクトリを含むパスの場合はそのまま返します。
func ResolveInputPath(baseDir, fileName string) (string, error) {
	if strings.Contains(fileName, "://") || filepath.IsAbs(fileName) {
		return fileName, nil
	}
	if strings.ContainsRune(fileName, '/') {
		return fileName, nil
	}
	return urlpath.ResolvePath(baseDir, fileName)
}

// ResolveOutputPath は、ベースとなるディレクトリパスとファイル名から、
// GCS/ローカルを考慮した最終的な出力パスを生成します。
func ResolveOutputPath(baseDir, fileName string) (string, error) {
	return urlpath.ResolvePath(baseDir, fileName)
}

// ResolveBaseURL は、入力パス（URLまたはローカルパス）から
// 親ディレクトリのパスを解決し、末尾がセパレータで終わるように正規化します。
func ResolveBaseURL(rawPath string) string {
	return urlpath.ResolveBaseDir(rawPath)
}

// GenerateIndexedPath は、指定されたベースパスの拡張子の前に連番を挿入し、
// 新しいパス文字列を生成します。index は1以上の整数である必要があります。
// 例: "path/to/prompt.txt", 1 -> "path/to/prompt_1.txt"
func GenerateIndexedPath(basePath string, index int) (string, error) {
	return urlpath.GenerateIndexedPath(basePath, index)
}

// createIndexedRegex は、ファイル名に基づきインデックス付きファイル用の正規表現を生成します。
// 例: "prompt.txt" -> ^prompt_\d+\.txt$
func createIndexedRegex(fileName string) *regexp.Regexp {
	ext := filepath.Ext(fileName)
	baseName := strings.TrimSuffix(fileName, ext)

	pattern := fmt.Sprintf(`^%s_\d+%s$`, regexp.QuoteMeta(baseName), regexp.QuoteMeta(ext))
	return regexp.MustCompile(pattern)
}
