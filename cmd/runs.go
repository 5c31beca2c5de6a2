package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/classim/internal/store"
	"github.com/spf13/cobra"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recorded experiment runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		runs, err := s.EventRepo().QueryRuns(context.Background(), store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query runs: %w", err)
		}

		if len(runs) == 0 {
			fmt.Println("No runs recorded yet.")
			return nil
		}

		fmt.Printf("%-19s  %-16s  %6s  %4s  %4s  %8s  %8s  %8s  %s\n",
			"Timestamp", "Policy", "Seed", "Stud", "Qs", "Correct", "Discuss", "Gain", "Debates")
		fmt.Println(strings.Repeat("─", 100))

		for _, r := range runs {
			fmt.Printf("%-19s  %-16s  %6d  %4d  %4d  %7.1f%%  %7.0f%%  %+8.3f  %d (+%d/-%d)\n",
				r.Timestamp.Local().Format("2006-01-02 15:04:05"),
				r.Policy,
				r.Seed,
				r.Students,
				r.Questions,
				r.MeanCorrectness*100,
				r.DiscussionRate*100,
				r.GenuineLearningGain,
				r.TotalDebates,
				r.PositiveOutcomes,
				r.NegativeOutcomes,
			)
		}
		return nil
	},
}

func init() {
	runsCmd.Flags().IntP("limit", "n", 20, "Number of runs to show")
	rootCmd.AddCommand(runsCmd)
}
