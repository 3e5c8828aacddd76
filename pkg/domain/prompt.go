package domain

// GeneratedPrompt は合成済みのポジティブ/ネガティブプロンプト1件分の出力です。
type GeneratedPrompt struct {
	Positive      string // 完成済みのポジティブプロンプト
	Negative      string // プリセットとカスタムを結合したネガティブプロンプト
	CharacterName string // プロンプトファイル由来のキャラクター表示名
	SourceIndex   int    // 選択されたレコードのインデックス（リソース内 0 始まり）
	MoodTags      string // RedNote モードで付与されたムードタグ。他モードでは空
}
