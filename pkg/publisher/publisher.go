// Package publisher は、生成済みプロンプトの永続化とフォーマット変換を担います。
// Markdownダイジェスト、アイテムごとのテキストファイル、任意でHTML変換を出力するのだ。
package publisher

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/shouni/go-remote-io/remoteio"
	"github.com/shouni/go-text-format/pkg/md2htmlrunner"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/shouni/go-anime-prompt-kit/pkg/asset"
	"github.com/shouni/go-anime-prompt-kit/pkg/domain"
)

const (
	markdownMimeType = "text/markdown; charset=utf-8"
	htmlMimeType     = "text/html; charset=utf-8"
	textMimeType     = "text/plain; charset=utf-8"
)

// Options はパブリッシュ動作を制御する設定項目です。
type Options struct {
	OutputFile string // Markdownダイジェストの出力先（ローカル or gs://）
	TextDir    string // アイテムごとの .txt を置くディレクトリ。空なら出力しない
}

// PublishResult はパブリッシュ処理の結果として生成されたファイルの情報を保持します。
type PublishResult struct {
	MarkdownPath string   // 生成されたダイジェストのパス
	HTMLPath     string   // 生成された HTML のパス（htmlRunner 未設定なら空）
	TextPaths    []string // 保存されたアイテムごとのテキストのパスリスト
}

// PromptPublisher は成果物の永続化とフォーマット変換を担います。
// リモートストレージへの書き込みは limiter で平準化されるのだ。
type PromptPublisher struct {
	writer     remoteio.OutputWriter
	htmlRunner md2htmlrunner.Runner
	limiter    *rate.Limiter
}

// NewPromptPublisher は PromptPublisher を初期化済みの状態で生成します。
// htmlRunner は nil でもよく、その場合はHTML変換をスキップします。
func NewPromptPublisher(writer remoteio.OutputWriter, htmlRunner md2htmlrunner.Runner, limiter *rate.Limiter) *PromptPublisher {
	return &PromptPublisher{
		writer:     writer,
		htmlRunner: htmlRunner,
		limiter:    limiter,
	}
}

// Publish はダイジェストの構築・書き出し・HTML変換・アイテム別テキストの保存を
// 一括して実行し、生成されたファイル情報を返却するのだ！
func (p *PromptPublisher) Publish(ctx context.Context, title string, prompts []domain.GeneratedPrompt, opts Options) (PublishResult, error) {
	result := PublishResult{MarkdownPath: opts.OutputFile}

	// 1. Markdownダイジェストの構築と書き出し
	content := BuildDigest(title, prompts)
	if err := p.write(ctx, opts.OutputFile, content, markdownMimeType); err != nil {
		return result, fmt.Errorf("ダイジェストの書き込みに失敗しました: %w", err)
	}

	// 2. HTML変換と保存
	if p.htmlRunner != nil {
		slog.InfoContext(ctx, "ダイジェストをHTMLへ変換します", "title", title)
		htmlBuffer, err := p.htmlRunner.Run(ctx, title, []byte(content))
		if err != nil {
			return result, fmt.Errorf("HTMLの変換に失敗しました: %w", err)
		}

		htmlPath := strings.TrimSuffix(opts.OutputFile, filepath.Ext(opts.OutputFile)) + ".html"
		if err := p.limiter.Wait(ctx); err != nil {
			return result, err
		}
		if err := p.writer.Write(ctx, htmlPath, htmlBuffer, remoteio.WithContentType(htmlMimeType)); err != nil {
			return result, fmt.Errorf("HTMLファイルの書き込みに失敗しました: %w", err)
		}
		result.HTMLPath = htmlPath
	}

	// 3. アイテムごとのテキストファイルの保存
	if opts.TextDir != "" {
		paths, err := p.saveTextFiles(ctx, prompts, opts.TextDir)
		if err != nil {
			return result, fmt.Errorf("テキストファイルの書き込みに失敗しました: %w", err)
		}
		result.TextPaths = paths
	}

	return result, nil
}

// saveTextFiles は各プロンプトを連番付きの .txt として並列に保存します。
// パスは prompt_1.txt, prompt_2.txt ... の形式になるのだ。
func (p *PromptPublisher) saveTextFiles(ctx context.Context, prompts []domain.GeneratedPrompt, baseDir string) ([]string, error) {
	basePath, err := asset.ResolveOutputPath(baseDir, asset.DefaultTextFileName)
	if err != nil {
		return nil, fmt.Errorf("出力パスの解決に失敗しました: %w", err)
	}

	paths := make([]string, len(prompts))
	eg, egCtx := errgroup.WithContext(ctx)

	for i, prompt := range prompts {
		fullPath, err := asset.GenerateIndexedPath(basePath, i+1)
		if err != nil {
			return nil, fmt.Errorf("出力パスの解決に失敗しました: %w", err)
		}
		paths[i] = fullPath

		pr := prompt
		eg.Go(func() error {
			if err := p.limiter.Wait(egCtx); err != nil {
				return err
			}
			body := pr.Positive + "\n"
			if pr.Negative != "" {
				body += "---\n" + pr.Negative + "\n"
			}
			return p.writer.Write(egCtx, fullPath, strings.NewReader(body), remoteio.WithContentType(textMimeType))
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}

// write は limiter を挟んで1ファイルを書き出す内部ヘルパーです。
func (p *PromptPublisher) write(ctx context.Context, path, content, mimeType string) error {
	if err := p.limiter.Wait(ctx); err != nil {
		return err
	}
	return p.writer.Write(ctx, path, strings.NewReader(content), remoteio.WithContentType(mimeType))
}
