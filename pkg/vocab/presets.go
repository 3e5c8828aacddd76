package vocab

import (
	"maps"
	"slices"
	"strings"

	"github.com/shouni/go-anime-prompt-kit/pkg/domain"
)

// QualityTags は全スタイルに共通する基礎のクオリティタグです。
const QualityTags = "masterpiece, best quality, very aesthetic, absurdres, newest, sensitive, " +
	"highres, complex background, best anatomy, 8k"

// StandardNegative は全スタイルに共通する基礎のネガティブプロンプトです。
const StandardNegative = "worst quality, low quality, normal quality, lowres, anatomical nonsense, " +
	"artistic error, bad anatomy, bad hands, missing fingers, extra fingers, extra digit, fewer digits, " +
	"cropped, jpeg artifacts, signature, watermark, username, blurry, artist name, " +
	"text, error, 3d, realistic, photo, real life, bad proportions, muscle, muscular"

// Preset はスタイルプリセット1件分です。PositiveとNegativeは対になっており、
// どちらもプロンプトの先頭側に挿入されるサフィックス文字列なのだ。
type Preset struct {
	ID       string
	Positive string
	Negative string
}

// PresetRedNote は RedNote（小紅書）向けプリセットのIDです。
// 他のプリセットと違ってキャラクター強制タグの付与を伴うため、
// RedNote ランナーが特別扱いするキーとして公開しています。
const PresetRedNote = "rednote"

// presets はプリセットIDから定義への読み取り専用テーブルです。
var presets = map[string]Preset{
	"none": {ID: "none"},
	"standard": {
		ID:       "standard",
		Positive: QualityTags,
		Negative: StandardNegative + ", simple background",
	},
	"dynamic": {
		ID:       "dynamic",
		Positive: QualityTags + ", dynamic angle, wind, motion blur, dramatic pose, foreshortening",
		Negative: StandardNegative + ", static, standing still, boring, simple background",
	},
	"atmospheric": {
		ID:       "atmospheric",
		Positive: QualityTags + ", cinematic lighting, Tyndall effect, dramatic shadows, 8k, masterpiece, ultra-detailed textures",
		Negative: StandardNegative + ", flat color, harsh lighting, simple background",
	},
	"flat": {
		ID:       "flat",
		Positive: QualityTags + ", (vibrant colors:1.2), flat color, vector, bold lines, simple background, colorful, white background",
		Negative: StandardNegative + ", 3d, realistic lighting, gradient, photorealistic, shadow, complex background",
	},
	"dreamy": {
		ID:       "dreamy",
		Positive: QualityTags + ", dreaming aesthetic, ethereal glow, sparkling stars, floating petals, soft pastel lighting",
		Negative: StandardNegative + ", harsh lighting, horror, technology, modern",
	},
	"gothic": {
		ID:       "gothic",
		Positive: QualityTags + ", dark theme, gothic, high contrast, chiaroscuro, mysterious, shadows",
		Negative: StandardNegative + ", bright, pastel, cheerful, sunshine, simple background",
	},
	"retro": {
		ID:       "retro",
		Positive: QualityTags + ", 90s retro anime style, lo-fi aesthetic, grainy texture, muted colors, nostalgic gloom",
		Negative: StandardNegative + ", 3d, realistic, modern, 4k, crisp, sharp focus",
	},
	PresetRedNote: {
		ID:       PresetRedNote,
		Positive: QualityTags + RedNoteStyle,
		Negative: RedNoteNegBase + ", " + RedNoteNegSafety,
	},
}

// LookupPreset はプリセットIDから定義を引き当てます。
// 未知のIDは設定エラーであり、暗黙のフォールバックは行わないのだ。
func LookupPreset(id string) (Preset, error) {
	p, ok := presets[id]
	if !ok {
		supported := slices.Sorted(maps.Keys(presets))
		return Preset{}, domain.NewConfigError("preset", id,
			"サポートされているプリセットは ["+strings.Join(supported, ", ")+"] です")
	}
	return p, nil
}

// PresetIDs はサポートされているプリセットIDの一覧をソート済みで返します。
func PresetIDs() []string {
	return slices.Sorted(maps.Keys(presets))
}
