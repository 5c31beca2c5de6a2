package agent

import (
	"context"
	"fmt"
	"hash/fnv"
	"math/rand/v2"

	"github.com/abhisek/classim/internal/question"
)

// misconceptionPenalty is the multiplicative hit to answer accuracy when
// a relevant misconception is active.
const misconceptionPenalty = 0.3

// HeuristicEngine is the pure, synchronous implementation of Engine used
// when no LLM is configured or an LLM call fails. Every draw is keyed by
// (seed, student, question, stage), so a run with the same seed replays
// identically regardless of call order or concurrency.
type HeuristicEngine struct {
	seed uint64
}

// NewHeuristicEngine creates a heuristic engine with the given seed.
func NewHeuristicEngine(seed int64) *HeuristicEngine {
	return &HeuristicEngine{seed: uint64(seed)}
}

// rngFor derives a deterministic generator from the engine seed and the
// call's identifying parts.
func (h *HeuristicEngine) rngFor(parts ...string) *rand.Rand {
	hash := fnv.New64a()
	for _, p := range parts {
		hash.Write([]byte(p))
		hash.Write([]byte{0})
	}
	return rand.New(rand.NewPCG(h.seed, hash.Sum64()))
}

// Answer draws correctness with probability equal to ability, scaled down
// by misconceptionPenalty when a relevant misconception is active, and
// constructs a synthetic reasoning chain.
func (h *HeuristicEngine) Answer(_ context.Context, sc Context, q *question.Question) (string, *ReasoningChain, error) {
	rng := h.rngFor("answer", sc.StudentID, q.ID)

	p := sc.Ability
	if len(sc.ActiveMisconceptions) > 0 {
		p *= misconceptionPenalty
	}

	correct := rng.Float64() < p
	confidence := clamp01(sc.Ability + sc.ConfidenceOffset)

	if correct {
		answer := question.NormalizeKey(q.CorrectAnswer)
		chain := &ReasoningChain{
			Steps: []string{
				fmt.Sprintf("The question asks about %s.", q.Concept),
				fmt.Sprintf("Working through the options, %s holds up.", answer),
			},
			Conclusion: answer,
			Confidence: confidence,
		}
		return answer, chain, nil
	}

	answer := h.wrongOption(rng, q)
	chain := &ReasoningChain{
		Conclusion: answer,
		Confidence: confidence,
	}
	if len(sc.ActiveMisconceptions) > 0 {
		m := sc.ActiveMisconceptions[rng.IntN(len(sc.ActiveMisconceptions))]
		chain.Steps = []string{
			fmt.Sprintf("I remember that %s.", lowerFirst(m.Label)),
			fmt.Sprintf("So the answer should be %s.", answer),
		}
		chain.MisconceptionsUsed = []string{m.ID}
	} else {
		chain.Steps = []string{
			fmt.Sprintf("I'm not sure about %s.", q.Concept),
			fmt.Sprintf("Going with %s.", answer),
		}
	}
	return answer, chain, nil
}

// Debate flips to the opponent's answer with probability
// susceptibility x max(0, opponentConfidence - ownConfidence).
func (h *HeuristicEngine) Debate(_ context.Context, sc Context, q *question.Question, own, opponent Position) (*Rebuttal, error) {
	rng := h.rngFor("debate", sc.StudentID, q.ID, fmt.Sprint(own.Turn))

	delta := opponent.Confidence - own.Confidence
	flipProb := sc.Susceptibility * max(0, delta)

	if rng.Float64() < flipProb {
		confidence := clamp01((own.Confidence+opponent.Confidence)/2 + 0.05)
		chain := &ReasoningChain{
			Steps: []string{
				fmt.Sprintf("My answer was %s, but the argument for %s is stronger.", own.Answer, opponent.Answer),
				"Their reasoning accounts for the part I was unsure about.",
			},
			Conclusion: opponent.Answer,
			Confidence: confidence,
		}
		return &Rebuttal{
			Position: Position{
				Answer:     opponent.Answer,
				Chain:      chain,
				Confidence: confidence,
				Turn:       own.Turn + 1,
			},
			ChangedMind: true,
			Argument:    fmt.Sprintf("Okay, you've convinced me that %s makes more sense.", opponent.Answer),
		}, nil
	}

	// Holding firm hardens the position slightly.
	confidence := clamp01(own.Confidence + 0.05)
	chain := &ReasoningChain{
		Steps: []string{
			fmt.Sprintf("I heard the case for %s, but my reasoning still points to %s.", opponent.Answer, own.Answer),
		},
		Conclusion:         own.Answer,
		Confidence:         confidence,
		MisconceptionsUsed: own.Chain.MisconceptionsUsed,
	}
	return &Rebuttal{
		Position: Position{
			Answer:     own.Answer,
			Chain:      chain,
			Confidence: confidence,
			Turn:       own.Turn + 1,
		},
		ChangedMind: false,
		Argument:    fmt.Sprintf("I still think %s is right.", own.Answer),
	}, nil
}

// Grade scores a reasoning chain with the additive rubric: depth of
// steps, calibration of confidence, misconception usage, correctness.
func (h *HeuristicEngine) Grade(_ context.Context, chain *ReasoningChain, q *question.Question, correctAnswer string) (float64, error) {
	score := 0.3

	if len(chain.Steps) >= 2 {
		score += 0.1
	}
	if len(chain.Steps) >= 3 {
		score += 0.1
	}

	correct := question.NormalizeKey(chain.Conclusion) == question.NormalizeKey(correctAnswer)
	if correct && chain.Confidence > 0.6 {
		score += 0.2
	}
	if !correct && chain.Confidence < 0.4 {
		// Calibrated uncertainty on a wrong answer is worth something.
		score += 0.1
	}

	score -= 0.15 * float64(len(chain.MisconceptionsUsed))

	if correct {
		score += 0.2
	}

	return clamp01(score), nil
}

// wrongOption picks a uniformly random incorrect option key.
func (h *HeuristicEngine) wrongOption(rng *rand.Rand, q *question.Question) string {
	correct := question.NormalizeKey(q.CorrectAnswer)
	keys := q.OptionKeys()
	wrong := make([]string, 0, len(keys)-1)
	for _, k := range keys {
		if k != correct {
			wrong = append(wrong, k)
		}
	}
	if len(wrong) == 0 {
		return correct
	}
	return wrong[rng.IntN(len(wrong))]
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] >= 'A' && b[0] <= 'Z' {
		b[0] += 'a' - 'A'
	}
	return string(b)
}
