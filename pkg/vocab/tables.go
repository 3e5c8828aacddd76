// Package vocab は、プロンプト合成に使う静的な語彙テーブルとスタイルプリセットを提供します。
// テーブルはプロセス起動時に一度だけ定義され、以後は読み取り専用なのだ。
package vocab

// Category は動的要素の種別を表す判別子です。
// 同じシードとインデックスでもカテゴリごとに独立した選択になるよう、
// サンプラーのシード導出に混ぜ込まれます。
type Category string

const (
	CategoryAction     Category = "action"
	CategoryBackground Category = "background"
	CategoryCamera     Category = "camera"
	CategoryMood       Category = "mood"
	CategoryStyle      Category = "style"
	CategoryRecord     Category = "record"
)

// Actions は動的に挿入されるアクション/ポーズのフレーズ集です。
var Actions = []string{
	// 食べる系
	"eating strawberry crepe, two hands holding crepe, puffy cheeks, cream on nose",
	"drinking bubble tea, one hand holding cup, straw in mouth, looking at viewer, cute",
	"eating ice cream, licking, cone in hand, one hand holding cone, summer, sweet",
	"cooking, stirring, eggs, messy kitchen, confused",
	// ガーリーなポーズ
	"peace sign, winking, tilting head, looking at viewer",
	"holding hair, wind blowing, looking up, gentle",
	"finger on lips, shy expression, blushing, looking away, embarrassed",
	"stretching arms up, yawning, sleepy eyes, messy hair, morning",
	"twirling, spinning, skirt flowing",
	// 日常
	"reading book, sitting on bench, focused, glasses, library background",
	"looking at smartphone, scrolling, holding phone with both hands, glowing screen",
	"wearing headphones, listening to music, eyes closed, humming, vibing",
	"writing in notebook, holding pen, thinking, desk, study limit",
	"carrying school bag, walking to school, looking back, waving",
	"adjusting glasses, serious expression, smart, looking at viewer",
	"putting on makeup, holding lipstick, mirror reflection, getting ready",
	// 動き
	"running, dynamic pose, rushing, late",
	"jumping, mid-air, happy, arms up, energetic, blue sky",
	"walking, looking back, holding hands (POV), date",
	"reaching out, hand towards viewer, longing, desperate",
	"leaning forward, looking closely, curious, big eyes",
	"turning around, hair flip, surprised, wide eyes, dynamic hair",
	// 感情
	"laughing, hand over mouth, closed eyes, tears of joy",
	"surprised, gasping, hand on chest, wide eyes, mouth open",
	"annoyed, crossing arms, pouting, looking away, tsundere",
	"daydreaming, looking out window, chin in hand, bored, clouds",
	"scared, shivering, holding knees, hiding, wide eyes",
	"determined, clenched fist, serious eyes, intense stare, wind",
	"confused, tilting head, question mark, finger on chin",
	// 感傷
	"crying, tears streaming, red eyes, wiping tears, sad, looking down",
	"hugging knees, head down, lonely, empty gaze, vulnerable",
	"looking at phone, waiting, lonely, disappointed, dim lighting",
	"lying down, staring blankly, arm over eyes, exhausted, melancholic",
	"in rain, wet hair, wet clothes, looking up at sky, melancholic",
	// 柔らかく夢見がち
	"reaching for falling petals, wind in hair, gentle",
	"holding flower, smelling, looking at viewer, peaceful, delicate",
	"gazing at sunset, profile view, wind, contemplative, serene",
	// まったり
	"sleeping, head on arms, peaceful, drooling slightly, cute",
	"hugging plushie, burying face, oversized hoodie, cozy, warm",
	"holding cat, nuzzling, soft expression, cuddling pet",
	"sitting on chair, legs crossed, relaxed, tea cup",
	"leaning on wall, waiting, cool pose, one leg up",
	"lying on grass, books scattered, looking at sky, summer afternoon",
	// 創作・作業
	"making pottery, pottery wheel, wet clay, dirty hands, wearing apron, focused expression",
	"coding, sitting at desk, dual monitors, computer, mechanical keyboard, cat, cat on keyboard, glowing screen, programming",
	// ベッド・休息
	"reading in bed, lying down, holding book, bedside lamp, cozy atmosphere, relaxed",
	"holding pillow, hugging pillow, lying on side, on bed, curved body, comfortable, sleepy",
	// 孤独な情景
	"sitting on floor, hugging knees, abandoned warehouse, cluttered room, looking at empty space, The Discarded",
	"sitting in luxury car backseat, looking out window, city lights bokeh, cramped space, restricted posture, The In-Transit",
	"leaning against white wall, facing corner, slumped shoulders, exhaustion, (hollow eyes:1.3), The Wall Protocol",
	"snowing, outdoor campfire, winter gear, shivering, (glassy eyes:1.4), loneliness, The Cold Waiting",
	// 深い痛み
	"sitting on floor, hiding face in knees, wall with photos, happy memories on wall, messy room, trash can, dirty floor, (crying:1.2), The Bittersweet Wall",
	"sitting at table, small cake, single candle, party hat, dark room, shadows, celebrating alone, (tears:1.2), The Solo Birthday",
	"standing in rain, holding two umbrellas, looking at watch, waiting, wet clothes, disappointed, (lonely:1.3), The Rain Wait",
	"looking at smartphone, dark room, glowing screen, (crying:1.4), tears on screen, message read, The Phone Ghost",
}

// Backgrounds は背景フレーズ集です。魔法のない実在寄りの場所だけを並べているのだ。
var Backgrounds = []string{
	// 学校・屋外
	"school classroom, wooden desk, blackboard, windows, sunlight, afternoon",
	"school hallway, lockers, polished floor, sunlight rays, anime school",
	"cherry blossom park, pink flower trees, falling petals, park bench, spring path",
	"sunny beach, ocean waves, sky, clouds, summer, horizon",
	"flower garden, blooming flowers, garden fence, nature, soft sunlight",
	// 家・寝室
	"cluttered bedroom, unmade bed, clothes on floor, computer desk, plushies, lived-in feel",
	"cozy bedroom, fairy lights on wall, pastel bedding, night, warm lamp light",
	"modern kitchen, gas stove, refrigerator, kitchen counter, sink, domestic setting",
	"living room, sofa, television, coffee table, sunlight through curtains",
	"bathroom, tiled walls, bathtub, mirror, steam, soft lighting",
	// 街・ムード
	"rainy city street, reflection in puddles, night, atmospheric",
	"convenience store front, bright lights, night, glass door, shelves",
	"rooftop at sunset, chain link fence, warm sky, city skyline, wind",
	"train station platform, waiting area, empty seats, evening light, nostalgic",
}

// CameraEffects はカメラワーク/演出のフレーズ集です。
var CameraEffects = []string{
	"from above, looking down, depth of field",
	"from below, looking up, dramatic angle",
	"close-up, portrait, bokeh, focus on face",
	"wide shot, full body, distant view",
	"side view, profile, wind, hair flowing",
	"pov, first person view, intimate, close",
}
