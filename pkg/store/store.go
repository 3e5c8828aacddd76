// Package store は、タブ区切りテキストのプロンプトファイルを読み込み、
// キャラクターレコード列として提供します。パース結果はプロセス内で
// 読み取り専用キャッシュされ、同じファイルを二度読むことはないのだ。
package store

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/patrickmn/go-cache"
	"github.com/shouni/go-remote-io/remoteio"
	"golang.org/x/sync/singleflight"

	"github.com/shouni/go-anime-prompt-kit/pkg/domain"
)

// Store はプロンプトファイルのレコードストアです。
// reader の先はローカルファイルでも gs:// でもよく、ストア自身は
// ディレクトリ走査を一切行いません。解決済みのパスを渡すのは呼び出し側の責務です。
type Store struct {
	reader remoteio.InputReader
	cache  *cache.Cache
	group  singleflight.Group
}

// NewStore は新しい Store を生成します。
// キャッシュは無期限で、プロセスの生存中は無効化されません。
// ファイルの変更を拾いたければプロセスを立ち上げ直すのだ。
func NewStore(reader remoteio.InputReader) *Store {
	return &Store{
		reader: reader,
		cache:  cache.New(cache.NoExpiration, 0),
	}
}

// Load は指定パスのプロンプトファイルをパースしてレコード列を返します。
// 初回の読み込みは singleflight で一本化され、以後はキャッシュから返るのだ。
func (s *Store) Load(ctx context.Context, path string) (domain.Records, error) {
	if v, ok := s.cache.Get(path); ok {
		return v.(domain.Records), nil
	}

	v, err, _ := s.group.Do(path, func() (interface{}, error) {
		// singleflight 待機中に別のゴルーチンが格納済みの可能性があるため再確認
		if cached, ok := s.cache.Get(path); ok {
			return cached, nil
		}

		slog.InfoContext(ctx, "プロンプトファイルを読み込んでいます", "path", path)
		rc, err := s.reader.Open(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("プロンプトファイルのオープンに失敗しました (%s): %w", path, err)
		}
		defer rc.Close()

		records, err := ParseRecords(rc)
		if err != nil {
			return nil, fmt.Errorf("プロンプトファイルのパースに失敗しました (%s): %w", path, err)
		}

		s.cache.Set(path, records, cache.NoExpiration)
		return records, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(domain.Records), nil
}

// ParseRecords は行指向のプロンプトテキストをレコード列へパースします。
// 書式: tag1,tag2,...<TAB>表示名。タブのない行はタグのみのレコードとして
// 受理します（メタデータの欠落でロード全体を失敗させないため）。
// 空行はスキップ。リテラルのカンマ/タブのエスケープ手段は提供しません。
func ParseRecords(r io.Reader) (domain.Records, error) {
	var records domain.Records

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		tagsField, name, _ := strings.Cut(line, "\t")
		records = append(records, domain.Record{
			Tags: splitTags(tagsField),
			Name: strings.TrimSpace(name),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("プロンプトファイルの読み取り中にエラーが発生しました: %w", err)
	}

	return records, nil
}

// splitTags はカンマ区切りのタグ列を分解します。
// 各トークンの前後空白を除去し、順序を保ったまま重複と空トークンを落とすのだ。
func splitTags(field string) []string {
	parts := strings.Split(field, ",")
	tags := make([]string, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))

	for _, p := range parts {
		tag := strings.TrimSpace(p)
		if tag == "" {
			continue
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}
	return tags
}
