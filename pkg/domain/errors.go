package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyStore は、レコードを要求する操作に対してリソースが1件もレコードを
	// 含んでいなかった場合に返されるのだ。空成功にはしないのだよ。
	ErrEmptyStore = errors.New("プロンプトファイルに有効なレコードが1件もありません")

	// ErrIndexOutOfRange はラップアラウンドを定義しないAPIでの範囲外インデックスです。
	ErrIndexOutOfRange = errors.New("レコードのインデックスが範囲外です")
)

// ConfigError は未知のプリセットIDや不正なモードなど、呼び出し側の設定ミスを表します。
// どのフィールドが不正だったかを必ず保持するのだ。
type ConfigError struct {
	Field string // 不正だった設定項目名
	Value string // 実際に渡された値
	Hint  string // 許容される値の説明（空でもよい）
}

func (e *ConfigError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("設定項目 '%s' の値 '%s' は不正です（%s）", e.Field, e.Value, e.Hint)
	}
	return fmt.Sprintf("設定項目 '%s' の値 '%s' は不正です", e.Field, e.Value)
}

// NewConfigError は ConfigError を生成するヘルパーです。
func NewConfigError(field, value, hint string) *ConfigError {
	return &ConfigError{Field: field, Value: value, Hint: hint}
}

// IsConfigError は err が ConfigError かどうかを判定するのだ。
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}

// CapacityError は、一意サンプリング要求が語彙テーブルのサイズを超えた場合のエラーです。
// モードドライバはサイクル再シャッフル方式で吸収するため、呼び出し元に漏れるのは
// PickUnique を直接使った場合だけなのだ。
type CapacityError struct {
	Requested int // 要求された件数
	Size      int // 語彙テーブルの件数
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("一意サンプリングの要求数 %d が語彙サイズ %d を超えています", e.Requested, e.Size)
}
