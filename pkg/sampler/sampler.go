// Package sampler は、シードとインデックスだけから再計算できる決定論的な
// フレーズ選択を提供します。内部に可変状態を持たないため、バッチのどの位置でも
// 単独で再実行でき、並列呼び出しもそのまま安全なのだ。
package sampler

import (
	"crypto/sha256"
	"encoding/binary"
	"math/rand/v2"

	"github.com/shouni/go-anime-prompt-kit/pkg/domain"
	"github.com/shouni/go-anime-prompt-kit/pkg/vocab"
)

// deriveSeed はベースシード・カテゴリ・サイクル番号からサブシード2値を導出します。
// カテゴリを混ぜ込むことで、同じインデックスのアクション/背景/カメラの選択が
// 衝突しないようにしているのだ。
func deriveSeed(seed uint64, category vocab.Category, cycle int) (uint64, uint64) {
	h := sha256.New()

	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], seed)
	h.Write(buf[:])
	h.Write([]byte(category))
	binary.BigEndian.PutUint64(buf[:], uint64(cycle))
	h.Write(buf[:])

	sum := h.Sum(nil)
	return binary.BigEndian.Uint64(sum[:8]), binary.BigEndian.Uint64(sum[8:16])
}

// newRand は導出済みサブシードで初期化した決定論的な乱数源を返します。
func newRand(seed uint64, category vocab.Category, cycle int) *rand.Rand {
	s1, s2 := deriveSeed(seed, category, cycle)
	return rand.New(rand.NewPCG(s1, s2))
}

// PickOne は語彙テーブルから1件を決定論的に選びます。
func PickOne(table []string, seed uint64, category vocab.Category) (string, error) {
	if len(table) == 0 {
		return "", &domain.CapacityError{Requested: 1, Size: 0}
	}
	rng := newRand(seed, category, 0)
	return table[rng.IntN(len(table))], nil
}

// PickUnique は相異なる count 件を順序付きで返します。
// count がテーブルサイズを超える場合は CapacityError になります。
// サイクル方式で吸収したい場合は PickForIndex を使うのだ。
func PickUnique(table []string, seed uint64, category vocab.Category, count int) ([]string, error) {
	if count < 0 || count > len(table) {
		return nil, &domain.CapacityError{Requested: count, Size: len(table)}
	}
	perm := permutation(len(table), seed, category, 0)
	picked := make([]string, 0, count)
	for _, p := range perm[:count] {
		picked = append(picked, table[p])
	}
	return picked, nil
}

// PickForIndex はバッチ内の位置 index に対するフレーズを返します。
// 同一サイクル内の連続するインデックスには必ず相異なるフレーズが割り当てられ、
// テーブルサイズを超えた分はサイクルごとに再シャッフルした順序で巡回します。
// 同じ (seed, index, category) は常に同じフレーズに解決されるのだ。
func PickForIndex(table []string, seed uint64, index int, category vocab.Category) (string, error) {
	n := len(table)
	if n == 0 {
		return "", &domain.CapacityError{Requested: 1, Size: 0}
	}
	if index < 0 {
		return "", domain.NewConfigError("index", "negative", "サンプリングのインデックスは非負である必要があります")
	}

	cycle := index / n
	pos := index % n
	perm := permutation(n, seed, category, cycle)
	return table[perm[pos]], nil
}

// RandomIndexAt はバッチ内の位置 index に対する [0, n) の決定論的なインデックスを
// 返します。レコードやスタイルの「ランダム」選択に使い、フレーズ選択とは独立した
// カテゴリで導出されるのだ。
func RandomIndexAt(n int, seed uint64, index int, category vocab.Category) (int, error) {
	if n <= 0 {
		return 0, &domain.CapacityError{Requested: 1, Size: n}
	}
	if index < 0 {
		return 0, domain.NewConfigError("index", "negative", "サンプリングのインデックスは非負である必要があります")
	}
	rng := newRand(seed, category, index)
	return rng.IntN(n), nil
}

// permutation は (seed, category, cycle) で決まる [0, n) の順列を返します。
func permutation(n int, seed uint64, category vocab.Category, cycle int) []int {
	rng := newRand(seed, category, cycle)
	return rng.Perm(n)
}
