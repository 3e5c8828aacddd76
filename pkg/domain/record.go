package domain

import (
	"fmt"
	"strings"
)

// Record はプロンプトファイルの1行分、すなわちキャラクター（またはスタイル）の
// タグ列と表示名を保持します。パース後は不変として扱うのだ。
type Record struct {
	Tags []string // カンマ区切りから分解済みのタグ列（順序保持・重複除去済み）
	Name string   // タブ以降の表示名。タブなし行では空文字
}

// TagString はタグ列をプロンプト用のカンマ区切り文字列に戻します。
func (r Record) TagString() string {
	return strings.Join(r.Tags, ", ")
}

// String はレコードの情報を文字列で返すのだ。
func (r Record) String() string {
	if r.Name == "" {
		return r.TagString()
	}
	return fmt.Sprintf("%s (%s)", r.Name, r.TagString())
}

// Records はリソース1回分のパース結果です。
// インデックスは同一スナップショット内でのみ安定であることに注意するのだ。
type Records []Record

// Len は読み込まれたレコード数を返します。
func (rs Records) Len() int {
	return len(rs)
}

// At は指定インデックスのレコードを返します。
// 範囲外のインデックスは ErrIndexOutOfRange を包んだエラーになります。
func (rs Records) At(index int) (Record, error) {
	if index < 0 || index >= len(rs) {
		return Record{}, fmt.Errorf("インデックス %d は範囲 [0, %d) の外です: %w", index, len(rs), ErrIndexOutOfRange)
	}
	return rs[index], nil
}
