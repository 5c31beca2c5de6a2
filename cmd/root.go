package cmd

import (
	"github.com/abhisek/classim/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "classim",
	Short: "Synthetic classroom debate simulator",
	Long: "Classim simulates a classroom of synthetic learners answering multiple-choice\n" +
		"questions, pairs disagreeing students for structured debate, and measures\n" +
		"whether belief revisions reflect genuine learning. Use it to A/B-test\n" +
		"discussion policies without a live classroom.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides CLASSIM_DB env var)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then CLASSIM_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
