package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/omark/quizdeck/internal/notify"
	"github.com/omark/quizdeck/internal/progress"
	"github.com/omark/quizdeck/internal/store"
	"github.com/spf13/cobra"
)

var resetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all progress and start over",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetYes {
			fmt.Print("This deletes all quiz history, stats, and achievements. Type 'yes' to confirm: ")
			reader := bufio.NewReader(os.Stdin)
			answer, _ := reader.ReadString('\n')
			if strings.TrimSpace(answer) != "yes" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()

		prog := progress.NewStore(st, notify.Discard)
		prog.Load(ctx)
		prog.Reset(ctx)

		if err := st.ClearSession(ctx); err != nil {
			return fmt.Errorf("clear session: %w", err)
		}

		fmt.Println("All progress deleted.")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVarP(&resetYes, "yes", "y", false, "Skip the confirmation prompt")
}
