package sampler

import (
	"errors"
	"testing"

	"github.com/shouni/go-anime-prompt-kit/pkg/domain"
	"github.com/shouni/go-anime-prompt-kit/pkg/vocab"
)

var testTable = []string{"alpha", "beta", "gamma", "delta", "epsilon"}

func TestPickOne(t *testing.T) {
	t.Run("同じシードとカテゴリは常に同じフレーズに解決されること", func(t *testing.T) {
		first, err := PickOne(testTable, 42, vocab.CategoryAction)
		if err != nil {
			t.Fatalf("サンプリングでエラーが発生しました: %v", err)
		}
		for i := 0; i < 10; i++ {
			again, err := PickOne(testTable, 42, vocab.CategoryAction)
			if err != nil {
				t.Fatalf("サンプリングでエラーが発生しました: %v", err)
			}
			if again != first {
				t.Errorf("決定性が壊れています。期待値 '%s', 実際の値 '%s'", first, again)
			}
		}
	})

	t.Run("空テーブルで CapacityError が返ること", func(t *testing.T) {
		_, err := PickOne(nil, 42, vocab.CategoryAction)
		var ce *domain.CapacityError
		if !errors.As(err, &ce) {
			t.Fatalf("CapacityError が返りませんでした: %v", err)
		}
		if ce.Size != 0 {
			t.Errorf("期待値 Size=0, 実際の値 %d", ce.Size)
		}
	})
}

func TestPickUnique(t *testing.T) {
	t.Run("count 件すべてが相異なること", func(t *testing.T) {
		picked, err := PickUnique(testTable, 7, vocab.CategoryBackground, len(testTable))
		if err != nil {
			t.Fatalf("サンプリングでエラーが発生しました: %v", err)
		}
		seen := make(map[string]bool)
		for _, p := range picked {
			if seen[p] {
				t.Errorf("フレーズ '%s' が重複しています", p)
			}
			seen[p] = true
		}
		if len(picked) != len(testTable) {
			t.Errorf("期待値 %d 件, 実際の値 %d 件", len(testTable), len(picked))
		}
	})

	t.Run("テーブルサイズを超える要求で CapacityError が返ること", func(t *testing.T) {
		_, err := PickUnique(testTable, 7, vocab.CategoryBackground, len(testTable)+1)
		var ce *domain.CapacityError
		if !errors.As(err, &ce) {
			t.Fatalf("CapacityError が返りませんでした: %v", err)
		}
		if ce.Requested != len(testTable)+1 || ce.Size != len(testTable) {
			t.Errorf("エラー内容が不正です: %+v", ce)
		}
	})

	t.Run("負の count で CapacityError が返ること", func(t *testing.T) {
		if _, err := PickUnique(testTable, 7, vocab.CategoryBackground, -1); err == nil {
			t.Error("負の count でエラーが発生しませんでした")
		}
	})
}

func TestPickForIndex(t *testing.T) {
	const seed = 12345
	n := len(testTable)

	t.Run("同じ入力は常に同じ結果に解決されること", func(t *testing.T) {
		for index := 0; index < n*3; index++ {
			first, err := PickForIndex(testTable, seed, index, vocab.CategoryAction)
			if err != nil {
				t.Fatalf("index=%d でエラーが発生しました: %v", index, err)
			}
			again, err := PickForIndex(testTable, seed, index, vocab.CategoryAction)
			if err != nil {
				t.Fatalf("index=%d でエラーが発生しました: %v", index, err)
			}
			if first != again {
				t.Errorf("index=%d: 決定性が壊れています ('%s' != '%s')", index, first, again)
			}
		}
	})

	t.Run("1サイクル内の選択が順列を成すこと", func(t *testing.T) {
		seen := make(map[string]bool)
		for index := 0; index < n; index++ {
			p, err := PickForIndex(testTable, seed, index, vocab.CategoryAction)
			if err != nil {
				t.Fatalf("index=%d でエラーが発生しました: %v", index, err)
			}
			if seen[p] {
				t.Errorf("index=%d: サイクル内でフレーズ '%s' が重複しています", index, p)
			}
			seen[p] = true
		}
		if len(seen) != n {
			t.Errorf("サイクルがテーブル全体を被覆していません: %d/%d", len(seen), n)
		}
	})

	t.Run("2サイクル分で各フレーズがちょうど2回ずつ現れること", func(t *testing.T) {
		counts := make(map[string]int)
		for index := 0; index < 2*n; index++ {
			p, err := PickForIndex(testTable, seed, index, vocab.CategoryCamera)
			if err != nil {
				t.Fatalf("index=%d でエラーが発生しました: %v", index, err)
			}
			counts[p]++
		}
		for _, phrase := range testTable {
			if counts[phrase] != 2 {
				t.Errorf("フレーズ '%s' の出現回数が %d 回です（期待値 2 回）", phrase, counts[phrase])
			}
		}
	})

	t.Run("空テーブルで CapacityError が返ること", func(t *testing.T) {
		if _, err := PickForIndex(nil, seed, 0, vocab.CategoryAction); err == nil {
			t.Error("空テーブルでエラーが発生しませんでした")
		}
	})

	t.Run("負のインデックスで設定エラーが返ること", func(t *testing.T) {
		_, err := PickForIndex(testTable, seed, -1, vocab.CategoryAction)
		if !domain.IsConfigError(err) {
			t.Errorf("ConfigError が返りませんでした: %v", err)
		}
	})
}

func TestRandomIndexAt(t *testing.T) {
	t.Run("結果が範囲内かつ決定的であること", func(t *testing.T) {
		for i := 0; i < 20; i++ {
			idx, err := RandomIndexAt(7, 999, i, vocab.CategoryRecord)
			if err != nil {
				t.Fatalf("index=%d でエラーが発生しました: %v", i, err)
			}
			if idx < 0 || idx >= 7 {
				t.Errorf("index=%d: 結果 %d が範囲 [0, 7) の外です", i, idx)
			}
			again, _ := RandomIndexAt(7, 999, i, vocab.CategoryRecord)
			if idx != again {
				t.Errorf("index=%d: 決定性が壊れています (%d != %d)", i, idx, again)
			}
		}
	})

	t.Run("サイズ0以下で CapacityError が返ること", func(t *testing.T) {
		var ce *domain.CapacityError
		if _, err := RandomIndexAt(0, 1, 0, vocab.CategoryRecord); !errors.As(err, &ce) {
			t.Errorf("CapacityError が返りませんでした: %v", err)
		}
	})
}

func TestDeriveSeed(t *testing.T) {
	t.Run("カテゴリごとに独立したサブシードが導出されること", func(t *testing.T) {
		a1, a2 := deriveSeed(1, vocab.CategoryAction, 0)
		b1, b2 := deriveSeed(1, vocab.CategoryBackground, 0)
		if a1 == b1 && a2 == b2 {
			t.Error("カテゴリが異なるのにサブシードが一致しています")
		}
	})

	t.Run("サイクルごとに独立したサブシードが導出されること", func(t *testing.T) {
		a1, a2 := deriveSeed(1, vocab.CategoryAction, 0)
		c1, c2 := deriveSeed(1, vocab.CategoryAction, 1)
		if a1 == c1 && a2 == c2 {
			t.Error("サイクルが異なるのにサブシードが一致しています")
		}
	})

	t.Run("同じ入力から常に同じサブシードが導出されること", func(t *testing.T) {
		x1, x2 := deriveSeed(42, vocab.CategoryMood, 3)
		y1, y2 := deriveSeed(42, vocab.CategoryMood, 3)
		if x1 != y1 || x2 != y2 {
			t.Error("シード導出の決定性が壊れています")
		}
	})
}
