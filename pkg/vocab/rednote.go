package vocab

import "strings"

// RedNote（小紅書）向けの定数群。画風タグとキャラクター/安全タグを分離してあり、
// 画風側だけを差し替えられるようにしているのだ。

// RedNoteNegBase は基礎のネガティブタグです（プリセット側で差し替え可能）。
const RedNoteNegBase = "worst quality, low quality, normal quality, lowres, anatomical nonsense, conjoined, bad ai-generated, plastic hair, plastic skin, " +
	"artistic error, bad anatomy, bad hands, missing fingers, extra digit, fewer digits, " +
	"cropped, jpeg artifacts, signature, watermark, username, blurry, artist name, " +
	"text, error, 3d, realistic, photo, real life, bad proportions, muscle, muscular"

// RedNoteNegSafety は常に適用される安全系ネガティブタグです。
const RedNoteNegSafety = "(large breasts:1.5), (big breasts:1.5), (cleavage:1.4), nsfw, nude, " +
	"(nipples:1.5), (visible nipples:1.4), (areola:1.5), " +
	"(see-through:1.4), (transparent:1.4), (child:1.4), (loli:1.4), " +
	"(rating_explicit:1.3), (rating_questionable:1.3), " +
	"(mascara:1.5), (bandaid:1.5), (bandage:1.5), (messy makeup:1.3)"

// RedNoteStyle は差し替え可能な画風タグです。スタイル語を含まないプリセットと
// 組み合わせることで、動的要素側が画風を完全に支配できるのだ。
const RedNoteStyle = ", dreamy atmosphere, ethereal, delicate, 4k, high resolution, ultra-detailed, scenery"

// RedNoteCharacter は常に維持されるキャラクター/安全タグです。
const RedNoteCharacter = "(solo:1.5), (perfect cute face:1.4), (beautiful detailed eyes:1.3), (sparkling eyes:1.3), " +
	"(flat chest:1.2), (small breasts:1.2), (mature:1.2), (skinny:1.3), " +
	"messy hair, big fluffy hair, big fluffy curls, large ribbons, fluffy volume, " +
	"rating_safe"

// RedNoteSafetyShorts は脚の露出があり得るアクションに付与する安全タグです。
const RedNoteSafetyShorts = "(pretty white lace safety shorts:1.3)"

// safetyTriggerKeywords は安全ショーツの付与を要求するアクションのキーワードです。
var safetyTriggerKeywords = []string{"sitting", "hugging", "lying"}

// NeedsSafetyShorts は、アクションが安全ショーツを必要とするかを判定します。
func NeedsSafetyShorts(action string) bool {
	for _, kw := range safetyTriggerKeywords {
		if strings.Contains(action, kw) {
			return true
		}
	}
	return false
}

// 自然言語（Flux/Qwen系）モードでランダム要素を文章として繋ぐためのテンプレート。
const (
	FluxPrefix      = "A high-quality anime illustration of"
	FluxStylePrefix = "The art style is"
)

// FluxConnectors はカテゴリごとの接続句です。
var FluxConnectors = map[Category]string{
	CategoryAction:     "She is currently",
	CategoryBackground: "The scene takes place in",
	CategoryCamera:     "The image is captured",
	CategoryMood:       "Her expression is",
}
