package cmd

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/abhisek/classim/internal/agent"
	"github.com/abhisek/classim/internal/debate"
	"github.com/abhisek/classim/internal/experiment"
	"github.com/abhisek/classim/internal/llm"
	"github.com/abhisek/classim/internal/question"
	"github.com/abhisek/classim/internal/store"
	"github.com/abhisek/classim/internal/tracker"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one classroom experiment",
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

		res, err := executeRun(cmd.Context(), opts, st.EventRepo())
		if err != nil {
			return err
		}

		printRunSummary(res)

		if opts.outPath != "" {
			if err := experiment.ExportFile(opts.outPath, res); err != nil {
				return fmt.Errorf("export results: %w", err)
			}
			fmt.Printf("\nResults exported to %s\n", opts.outPath)
		}
		return nil
	},
}

// runOptions collects everything one experiment execution needs.
type runOptions struct {
	policy        string
	students      int
	questionsPath string
	seed          int64
	turns         int
	heuristicOnly bool
	outPath       string
}

func runOptionsFromFlags(cmd *cobra.Command) (runOptions, error) {
	var opts runOptions
	var err error

	if opts.policy, err = cmd.Flags().GetString("policy"); err != nil {
		return opts, err
	}
	opts.students, _ = cmd.Flags().GetInt("students")
	opts.questionsPath, _ = cmd.Flags().GetString("questions")
	opts.seed, _ = cmd.Flags().GetInt64("seed")
	opts.turns, _ = cmd.Flags().GetInt("turns")
	opts.heuristicOnly, _ = cmd.Flags().GetBool("heuristic")
	opts.outPath, _ = cmd.Flags().GetString("out")
	return opts, nil
}

// executeRun wires a full simulation (engine, classroom, bank, policy,
// orchestrator), runs it, and records the run summary event.
func executeRun(ctx context.Context, opts runOptions, events store.EventRepo) (*experiment.ExperimentResult, error) {
	policy, err := experiment.PolicyByName(opts.policy)
	if err != nil {
		return nil, err
	}

	questions, err := loadQuestions(opts.questionsPath)
	if err != nil {
		return nil, err
	}

	heuristic := agent.NewHeuristicEngine(opts.seed)
	var engine agent.Engine = heuristic
	var counter experiment.FallbackCounter
	maxConcurrent := llm.DefaultConfig().MaxConcurrent

	if !opts.heuristicOnly {
		provider, cfg, err := llm.NewProviderFromEnv(ctx, events)
		if err != nil {
			fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
			fmt.Fprintln(os.Stderr, "Falling back to the heuristic engine.")
		} else {
			resilient := agent.NewResilientEngine(
				agent.NewLLMEngine(provider, agent.DefaultEngineConfig()),
				heuristic,
				cfg.Timeout,
				events,
			)
			engine = resilient
			counter = resilient
			maxConcurrent = cfg.MaxConcurrent
		}
	}

	students := agent.NewClassroom(opts.students, engine, opts.seed, agent.DefaultActivationProb)

	debateEngine, err := debate.NewEngine(opts.turns)
	if err != nil {
		return nil, err
	}

	orch, err := experiment.New(experiment.Config{
		Policy:        policy,
		Students:      students,
		Questions:     questions,
		MaxTurns:      opts.turns,
		MaxConcurrent: maxConcurrent,
		Seed:          opts.seed,
		Fallbacks:     counter,
	}, debateEngine, tracker.NewTracker(engine))
	if err != nil {
		return nil, err
	}

	res, err := orch.Run(ctx)
	if err != nil && res == nil {
		return nil, err
	}

	if appendErr := events.AppendRun(ctx, store.RunEventData{
		RunID:               res.RunID,
		Policy:              res.Policy,
		Seed:                res.Seed,
		Students:            res.Classes,
		Questions:           len(res.Questions),
		MeanCorrectness:     res.MeanCorrectness,
		DiscussionRate:      res.DiscussionRate,
		GenuineLearningGain: res.GenuineLearningGain,
		TotalDebates:        res.TotalDebates,
		PositiveOutcomes:    res.PositiveOutcomes,
		NegativeOutcomes:    res.NegativeOutcomes,
		FallbackCount:       res.FallbackAnswers + res.FallbackDebates + res.FallbackGrades,
	}); appendErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to record run event: %v\n", appendErr)
	}

	return res, err
}

func loadQuestions(path string) (*question.Source, error) {
	if path == "" {
		return question.SeedBank(), nil
	}
	return question.LoadFile(path)
}

func printRunSummary(res *experiment.ExperimentResult) {
	fmt.Printf("Run %s  (policy=%s, seed=%d, students=%d)\n", res.RunID, res.Policy, res.Seed, res.Classes)
	fmt.Println()

	fmt.Printf("%-16s  %-9s  %7s  %7s  %7s  %s\n",
		"Question", "Discussed", "Before", "After", "Gain", "Types")
	for _, qr := range res.Questions {
		discussed := "no"
		if qr.Discussed {
			discussed = "yes"
		}
		fmt.Printf("%-16s  %-9s  %6.0f%%  %6.0f%%  %+6.2f  %s\n",
			qr.QuestionID,
			discussed,
			qr.Metrics.CorrectRateBefore*100,
			qr.Metrics.CorrectRateAfter*100,
			qr.Metrics.NormalizedGain,
			formatLearningTypes(qr.Metrics.LearningTypeCounts),
		)
	}

	fmt.Println()
	fmt.Printf("Mean correctness:       %.1f%%\n", res.MeanCorrectness*100)
	fmt.Printf("Mean confidence:        %.2f\n", res.MeanConfidence)
	fmt.Printf("Discussion rate:        %.0f%%\n", res.DiscussionRate*100)
	fmt.Printf("Genuine learning gain:  %+.3f\n", res.GenuineLearningGain)
	fmt.Printf("Debates:                %d (%d positive, %d negative)\n",
		res.TotalDebates, res.PositiveOutcomes, res.NegativeOutcomes)
	if res.SkippedQuestions > 0 {
		fmt.Printf("Skipped questions:      %d\n", res.SkippedQuestions)
	}
	if total := res.FallbackAnswers + res.FallbackDebates + res.FallbackGrades; total > 0 {
		fmt.Printf("Heuristic fallbacks:    %d (%d answers, %d debates, %d grades)\n",
			total, res.FallbackAnswers, res.FallbackDebates, res.FallbackGrades)
	}
}

func formatLearningTypes(counts map[tracker.LearningType]int) string {
	order := []tracker.LearningType{
		tracker.LearningGenuine,
		tracker.LearningSuperficial,
		tracker.LearningNegative,
		tracker.LearningNone,
	}
	out := ""
	for _, t := range order {
		if counts[t] == 0 {
			continue
		}
		if out != "" {
			out += " "
		}
		out += fmt.Sprintf("%s:%d", t, counts[t])
	}
	if out == "" {
		return "-"
	}
	return out
}

// sortedMisconceptions returns the frequency map's keys, most frequent
// first.
func sortedMisconceptions(freq map[string]int) []string {
	keys := make([]string, 0, len(freq))
	for k := range freq {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if freq[keys[i]] != freq[keys[j]] {
			return freq[keys[i]] > freq[keys[j]]
		}
		return keys[i] < keys[j]
	})
	return keys
}

func init() {
	runCmd.Flags().StringP("policy", "p", "adaptive", "Discussion policy: static, adaptive or adaptive-relaxed")
	runCmd.Flags().IntP("students", "s", 8, "Class size")
	runCmd.Flags().StringP("questions", "q", "", "Path to a JSON question bank (default: built-in seed bank)")
	runCmd.Flags().Int64("seed", 42, "Random seed")
	runCmd.Flags().IntP("turns", "t", debate.DefaultMaxTurns, "Max debate rounds per pair")
	runCmd.Flags().Bool("heuristic", false, "Force the heuristic engine even when an LLM is configured")
	runCmd.Flags().StringP("out", "o", "", "Write results as JSONL to this path")
}
