// Package experiment orchestrates full simulation runs: per-question
// answer collection, discussion-policy decisions, debates, learning
// tracking, and run-level aggregation across policies.
package experiment

import (
	"fmt"
	"math"

	"github.com/abhisek/classim/internal/agent"
	"github.com/abhisek/classim/internal/question"
)

// TriggerBand is the incorrect-fraction range inside which the adaptive
// policy triggers discussion. Too few wrong answers and discussion is
// wasted; too many and there is nobody to learn from.
type TriggerBand struct {
	Low  float64
	High float64
}

// The two observed band tunings. Default is the tighter band; Relaxed
// triggers discussion over a wider disagreement range.
var (
	DefaultTriggerBand = TriggerBand{Low: 0.30, High: 0.70}
	RelaxedTriggerBand = TriggerBand{Low: 0.15, High: 0.85}
)

// LowCorrectnessFloor forces discussion regardless of the band when the
// class correctness rate drops below it.
const LowCorrectnessFloor = 0.25

// DiscussionPolicy decides, per question, whether the class debates
// before final answers are taken.
type DiscussionPolicy interface {
	Name() string
	ShouldDiscuss(q *question.Question, positions map[string]agent.Position) bool
}

// StaticPolicy never triggers discussion; students keep their initial
// answers. It is the control arm of an A/B comparison.
type StaticPolicy struct{}

func (StaticPolicy) Name() string { return "static" }

func (StaticPolicy) ShouldDiscuss(*question.Question, map[string]agent.Position) bool {
	return false
}

// AdaptivePolicy triggers discussion when the class's answers actually
// disagree (positive normalized answer entropy) and the incorrect
// fraction falls inside the trigger band, or unconditionally when
// correctness drops below LowCorrectnessFloor.
type AdaptivePolicy struct {
	band TriggerBand
	name string
}

// NewAdaptivePolicy creates an adaptive policy with the default band.
func NewAdaptivePolicy() *AdaptivePolicy {
	return &AdaptivePolicy{band: DefaultTriggerBand, name: "adaptive"}
}

// NewRelaxedAdaptivePolicy creates an adaptive policy with the wider
// relaxed band.
func NewRelaxedAdaptivePolicy() *AdaptivePolicy {
	return &AdaptivePolicy{band: RelaxedTriggerBand, name: "adaptive-relaxed"}
}

func (p *AdaptivePolicy) Name() string { return p.name }

func (p *AdaptivePolicy) ShouldDiscuss(q *question.Question, positions map[string]agent.Position) bool {
	if len(positions) == 0 {
		return false
	}

	correct := 0
	for _, pos := range positions {
		if q.IsCorrect(pos.Answer) {
			correct++
		}
	}
	correctRate := float64(correct) / float64(len(positions))
	if correctRate < LowCorrectnessFloor {
		return true
	}

	incorrectFraction := 1 - correctRate
	if incorrectFraction < p.band.Low || incorrectFraction > p.band.High {
		return false
	}
	return answerEntropy(positions) > 0
}

// answerEntropy is the normalized Shannon entropy of the answer
// distribution, bucketed by the answer's first letter. 0 means
// unanimity, 1 means a uniform spread.
func answerEntropy(positions map[string]agent.Position) float64 {
	buckets := make(map[byte]int)
	total := 0
	for _, pos := range positions {
		if pos.Answer == "" {
			continue
		}
		buckets[pos.Answer[0]]++
		total++
	}
	if total == 0 || len(buckets) < 2 {
		return 0
	}

	var h float64
	for _, n := range buckets {
		p := float64(n) / float64(total)
		h -= p * math.Log2(p)
	}
	return h / math.Log2(float64(len(buckets)))
}

// PolicyByName resolves a CLI policy name.
func PolicyByName(name string) (DiscussionPolicy, error) {
	switch name {
	case "static":
		return StaticPolicy{}, nil
	case "adaptive":
		return NewAdaptivePolicy(), nil
	case "adaptive-relaxed":
		return NewRelaxedAdaptivePolicy(), nil
	default:
		return nil, fmt.Errorf("unknown policy %q (want static, adaptive or adaptive-relaxed)", name)
	}
}
