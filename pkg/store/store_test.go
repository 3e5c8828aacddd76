package store

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/shouni/go-remote-io/remoteio"
)

// stubReader はテスト用の remoteio.InputReader 実装です。
// Open の呼び出し回数を数えて、キャッシュの効き具合を検証するのだ。
type stubReader struct {
	data  string
	err   error
	opens int
}

func (s *stubReader) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	s.opens++
	if s.err != nil {
		return nil, s.err
	}
	return io.NopCloser(strings.NewReader(s.data)), nil
}

func TestParseRecords(t *testing.T) {
	t.Run("タブ区切りのタグと表示名がパースされること", func(t *testing.T) {
		input := "silver hair, blue eyes\tYuki\nred hair, green eyes\t日向あかり\n"
		records, err := ParseRecords(strings.NewReader(input))
		if err != nil {
			t.Fatalf("パースでエラーが発生しました: %v", err)
		}
		if records.Len() != 2 {
			t.Fatalf("期待値 2 件, 実際の値 %d 件", records.Len())
		}
		if records[0].Name != "Yuki" {
			t.Errorf("期待値 'Yuki', 実際の値 '%s'", records[0].Name)
		}
		if records[1].Name != "日向あかり" {
			t.Errorf("UTF-8 の表示名がパースできていません: '%s'", records[1].Name)
		}
		if records[0].TagString() != "silver hair, blue eyes" {
			t.Errorf("タグ列が不正です: '%s'", records[0].TagString())
		}
	})

	t.Run("タブのない行はタグのみのレコードとして受理されること", func(t *testing.T) {
		records, err := ParseRecords(strings.NewReader("twin tails, school uniform\n"))
		if err != nil {
			t.Fatalf("パースでエラーが発生しました: %v", err)
		}
		if records.Len() != 1 {
			t.Fatalf("期待値 1 件, 実際の値 %d 件", records.Len())
		}
		if records[0].Name != "" {
			t.Errorf("表示名が空ではありません: '%s'", records[0].Name)
		}
		if len(records[0].Tags) != 2 {
			t.Errorf("タグ数が不正です: %v", records[0].Tags)
		}
	})

	t.Run("空行と空白のみの行がスキップされること", func(t *testing.T) {
		input := "\n  \ntag1\tA\n\ntag2\tB\n"
		records, err := ParseRecords(strings.NewReader(input))
		if err != nil {
			t.Fatalf("パースでエラーが発生しました: %v", err)
		}
		if records.Len() != 2 {
			t.Errorf("期待値 2 件, 実際の値 %d 件", records.Len())
		}
	})

	t.Run("タグの空白除去と重複排除が行われること", func(t *testing.T) {
		records, err := ParseRecords(strings.NewReader("  smile , smile,, blue eyes \tA\n"))
		if err != nil {
			t.Fatalf("パースでエラーが発生しました: %v", err)
		}
		want := "smile, blue eyes"
		if records[0].TagString() != want {
			t.Errorf("期待値 '%s', 実際の値 '%s'", want, records[0].TagString())
		}
	})

	t.Run("空の入力から空のレコード列が返ること", func(t *testing.T) {
		records, err := ParseRecords(strings.NewReader(""))
		if err != nil {
			t.Fatalf("パースでエラーが発生しました: %v", err)
		}
		if records.Len() != 0 {
			t.Errorf("期待値 0 件, 実際の値 %d 件", records.Len())
		}
	})
}

func TestStoreLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("2回目以降の読み込みがキャッシュから返ること", func(t *testing.T) {
		reader := &stubReader{data: "tag1\tA\ntag2\tB\n"}
		st := NewStore(reader)

		first, err := st.Load(ctx, "prompts/characters.txt")
		if err != nil {
			t.Fatalf("読み込みでエラーが発生しました: %v", err)
		}
		second, err := st.Load(ctx, "prompts/characters.txt")
		if err != nil {
			t.Fatalf("2回目の読み込みでエラーが発生しました: %v", err)
		}

		if reader.opens != 1 {
			t.Errorf("Open の呼び出し回数が %d 回です（期待値 1 回）", reader.opens)
		}
		if first.Len() != second.Len() {
			t.Errorf("キャッシュの内容が一致しません: %d != %d", first.Len(), second.Len())
		}
	})

	t.Run("パスごとに独立してキャッシュされること", func(t *testing.T) {
		reader := &stubReader{data: "tag1\tA\n"}
		st := NewStore(reader)

		if _, err := st.Load(ctx, "a.txt"); err != nil {
			t.Fatalf("読み込みでエラーが発生しました: %v", err)
		}
		if _, err := st.Load(ctx, "b.txt"); err != nil {
			t.Fatalf("読み込みでエラーが発生しました: %v", err)
		}
		if reader.opens != 2 {
			t.Errorf("Open の呼び出し回数が %d 回です（期待値 2 回）", reader.opens)
		}
	})

	t.Run("読み込み失敗はキャッシュされず再試行されること", func(t *testing.T) {
		wantErr := errors.New("storage unavailable")
		reader := &stubReader{err: wantErr}
		st := NewStore(reader)

		if _, err := st.Load(ctx, "c.txt"); !errors.Is(err, wantErr) {
			t.Fatalf("元のエラーが包まれていません: %v", err)
		}

		// 2回目の呼び出しで復旧していれば成功すること
		reader.err = nil
		reader.data = "tag1\tA\n"
		records, err := st.Load(ctx, "c.txt")
		if err != nil {
			t.Fatalf("復旧後の読み込みに失敗しました: %v", err)
		}
		if records.Len() != 1 {
			t.Errorf("期待値 1 件, 実際の値 %d 件", records.Len())
		}
		if reader.opens != 2 {
			t.Errorf("Open の呼び出し回数が %d 回です（期待値 2 回）", reader.opens)
		}
	})
}
