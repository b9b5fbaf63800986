package cmd

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/omark/quizdeck/internal/app"
	"github.com/omark/quizdeck/internal/content"
	"github.com/omark/quizdeck/internal/content/builtin"
	"github.com/omark/quizdeck/internal/notify"
	"github.com/omark/quizdeck/internal/progress"
	"github.com/omark/quizdeck/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	bank := content.NewBank(resolveContentSource())

	prog := progress.NewStore(st, notify.Discard)
	prog.Load(ctx)

	opts := app.Options{
		Bank:     bank,
		Progress: prog,
		Store:    st,
	}

	resume, err := st.LoadSession(ctx, time.Now())
	if err != nil {
		log.Printf("load session: %v", err)
	}
	opts.Resume = resume

	return app.Run(opts)
}

// resolveContentSource picks the question source: a remote content server,
// a local directory, or the embedded starter set.
func resolveContentSource() content.Source {
	if url := os.Getenv("QUIZDECK_CONTENT_URL"); url != "" {
		return content.NewHTTPSource(url)
	}
	if dir := os.Getenv("QUIZDECK_CONTENT_DIR"); dir != "" {
		return content.NewFSSource(os.DirFS(dir))
	}
	return content.NewFSSource(builtin.Files)
}
