package vocab

// moodBuckets はムードレベルを離散化したときの各バケツのタグ集です。
// 穏やか（0.0寄り）から不機嫌（1.0寄り）への並びで、補間はしないのだ。
var moodBuckets = []string{
	"(slight smile:1.2), (gentle expression:1.1), (obedient:1.1), demure",
	"(expressionless:1.3), (neutral face:1.2), (serious:1.2), (looking down:1.1)",
	"(stoned face:1.3), (hollow gaze:1.1), (dissociation:1.1)",
	"(annoyed expression:1.3), (glaring:1.2), (displeased:1.2)",
	"(stubborn:1.5), (pouting:1.4), (grumpy:1.4), (angry:1.2), (looking away:1.1)",
}

// MoodBucketCount はムードバケツの数を返します。
func MoodBucketCount() int {
	return len(moodBuckets)
}

// MoodTags は連続値の mood_level [0.0, 1.0] を決定論的にバケツへ割り当て、
// そのバケツのタグ列を返します。バケツ番号は floor(level * バケツ数) を
// [0, バケツ数-1] にクランプした値なのだ。
func MoodTags(level float64) string {
	n := len(moodBuckets)
	idx := int(level * float64(n))
	if idx < 0 {
		idx = 0
	}
	if idx >= n {
		idx = n - 1
	}
	return moodBuckets[idx]
}
