package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/classim/internal/debate"
	"github.com/abhisek/classim/internal/experiment"
	"github.com/abhisek/classim/internal/store"
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Run static and adaptive policies on the same bank and seed",
	Long: "Compare runs the same classroom twice, once per policy, with identical\n" +
		"question bank, seed and class composition, and prints the two runs side\n" +
		"by side. The static arm never discusses; differences are attributable to\n" +
		"the discussion policy.",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := runOptionsFromFlags(cmd)
		if err != nil {
			return err
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		events := st.EventRepo()

		// Each arm gets a fresh classroom built from the same seed, so
		// both start from identical students and misconceptions.
		staticOpts := opts
		staticOpts.policy = "static"
		staticRes, err := executeRun(ctx, staticOpts, events)
		if err != nil {
			return fmt.Errorf("static arm: %w", err)
		}

		adaptiveOpts := opts
		if adaptiveOpts.policy == "static" {
			adaptiveOpts.policy = "adaptive"
		}
		adaptiveRes, err := executeRun(ctx, adaptiveOpts, events)
		if err != nil {
			return fmt.Errorf("%s arm: %w", adaptiveOpts.policy, err)
		}

		printComparison(staticRes, adaptiveRes)
		return nil
	},
}

func printComparison(a, b *experiment.ExperimentResult) {
	fmt.Printf("Policy comparison (seed=%d, students=%d, questions=%d)\n\n",
		a.Seed, a.Classes, len(a.Questions))

	row := func(label, fa, fb string) {
		fmt.Printf("%-24s  %12s  %12s\n", label, fa, fb)
	}
	row("", a.Policy, b.Policy)
	row("Mean correctness",
		fmt.Sprintf("%.1f%%", a.MeanCorrectness*100),
		fmt.Sprintf("%.1f%%", b.MeanCorrectness*100))
	row("Mean confidence",
		fmt.Sprintf("%.2f", a.MeanConfidence),
		fmt.Sprintf("%.2f", b.MeanConfidence))
	row("Discussion rate",
		fmt.Sprintf("%.0f%%", a.DiscussionRate*100),
		fmt.Sprintf("%.0f%%", b.DiscussionRate*100))
	row("Genuine learning gain",
		fmt.Sprintf("%+.3f", a.GenuineLearningGain),
		fmt.Sprintf("%+.3f", b.GenuineLearningGain))
	row("Debates",
		fmt.Sprintf("%d", a.TotalDebates),
		fmt.Sprintf("%d", b.TotalDebates))
	row("Positive outcomes",
		fmt.Sprintf("%d", a.PositiveOutcomes),
		fmt.Sprintf("%d", b.PositiveOutcomes))
	row("Negative outcomes",
		fmt.Sprintf("%d", a.NegativeOutcomes),
		fmt.Sprintf("%d", b.NegativeOutcomes))

	printCorrectedMisconceptions(b)
}

// printCorrectedMisconceptions lists the misconceptions corrected in the
// discussion arm, most frequent first.
func printCorrectedMisconceptions(res *experiment.ExperimentResult) {
	freq := make(map[string]int)
	for _, qr := range res.Questions {
		for id, n := range qr.Metrics.MisconceptionFrequency {
			freq[id] += n
		}
	}
	if len(freq) == 0 {
		return
	}

	fmt.Printf("\nMisconceptions corrected (%s arm):\n", res.Policy)
	for _, id := range sortedMisconceptions(freq) {
		fmt.Printf("  %-28s %d\n", id, freq[id])
	}
}

func init() {
	compareCmd.Flags().StringP("policy", "p", "adaptive", "Adaptive arm policy: adaptive or adaptive-relaxed")
	compareCmd.Flags().IntP("students", "s", 8, "Class size")
	compareCmd.Flags().StringP("questions", "q", "", "Path to a JSON question bank (default: built-in seed bank)")
	compareCmd.Flags().Int64("seed", 42, "Random seed")
	compareCmd.Flags().IntP("turns", "t", debate.DefaultMaxTurns, "Max debate rounds per pair")
	compareCmd.Flags().Bool("heuristic", false, "Force the heuristic engine even when an LLM is configured")
}
