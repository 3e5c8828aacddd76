package builder

import (
	"github.com/shouni/go-remote-io/remoteio"

	"github.com/shouni/go-anime-prompt-kit/internal/config"
	"github.com/shouni/go-anime-prompt-kit/pkg/store"
)

// AppContext は1回のコマンド実行で共有される依存関係の束です。
type AppContext struct {
	Config  *config.Config          // Configは、環境変数から読み込まれたグローバルな設定です。
	Options config.GenerateOptions  // Optionsは、コマンドラインから渡された実行時の設定です。
	Reader  remoteio.InputReader    // Readerは、プロンプトファイルの読み込みに使用する入力元です。
	Writer  remoteio.OutputWriter   // Writerは、生成された内容を保存するための出力先です。
	Store   *store.Store            // Storeは、パース済みレコードのプロセス内キャッシュを持つレコードストアです。
}

// NewAppContext は AppContext の新しいインスタンスを生成する
func NewAppContext(
	cfg *config.Config,
	reader remoteio.InputReader,
	writer remoteio.OutputWriter,
	st *store.Store,
) AppContext {
	return AppContext{
		Config:  cfg,
		Options: cfg.Options,
		Reader:  reader,
		Writer:  writer,
		Store:   st,
	}
}
