package cmd

import (
	"fmt"

	"github.com/omark/quizdeck/internal/content"
	"github.com/omark/quizdeck/internal/notify"
	"github.com/omark/quizdeck/internal/progress"
	"github.com/omark/quizdeck/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print study statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		prog := progress.NewStore(st, notify.Discard)
		p := prog.Load(cmd.Context())

		fmt.Printf("Quizzes taken:     %d\n", p.TotalQuizzes)
		fmt.Printf("Questions seen:    %d\n", p.TotalQuestions)
		fmt.Printf("Correct answers:   %d\n", p.TotalCorrect)
		fmt.Printf("Overall accuracy:  %d%%\n", p.Accuracy())
		fmt.Printf("Study streak:      %d day\n", p.StudyStreak)

		fmt.Println("\nAchievements:")
		for _, a := range progress.Achievements() {
			mark := " "
			if p.HasAchievement(a.ID) {
				mark = "x"
			}
			fmt.Printf("  [%s] %s — %s\n", mark, a.Name, a.Description)
		}

		fmt.Println("\nSubjects:")
		for _, subj := range content.Subjects() {
			stats, ok := p.SubjectStats[subj.ID]
			if !ok || stats.TotalQuizzes == 0 {
				fmt.Printf("  %-24s not started\n", subj.Name)
				continue
			}
			fmt.Printf("  %-24s %d quizzes, avg %d%%, best %d%%\n",
				subj.Name, stats.TotalQuizzes, stats.AveragePercent(), stats.BestScore)
		}

		return nil
	},
}
