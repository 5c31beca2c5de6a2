package tracker

import (
	"math"
	"testing"
)

func TestComputeClassMetrics(t *testing.T) {
	events := []*LearningEvent{
		{
			InitialCorrect: false, FinalCorrect: true, ChangedMind: true,
			InitialQuality: 0.3, FinalQuality: 0.7,
			Type:                    LearningGenuine,
			MisconceptionsCorrected: []string{"frac-bigger-denominator"},
		},
		{
			InitialCorrect: true, FinalCorrect: false, ChangedMind: true,
			InitialQuality: 0.7, FinalQuality: 0.3,
			Type: LearningNegative,
		},
		{
			InitialCorrect: false, FinalCorrect: true, ChangedMind: true,
			InitialQuality: 0.3, FinalQuality: 0.4,
			Type:                    LearningSuperficial,
			MisconceptionsCorrected: []string{"frac-bigger-denominator"},
		},
		{
			InitialCorrect: true, FinalCorrect: true, ChangedMind: false,
			InitialQuality: 0.5, FinalQuality: 0.5,
			Type: LearningNone,
		},
	}

	m := ComputeClassMetrics(testQuestion(), events)

	if m.QuestionID != "q-frac-1" || m.Concept != "fraction comparison" {
		t.Fatalf("identity %s/%s", m.QuestionID, m.Concept)
	}
	if m.CorrectRateBefore != 0.5 || m.CorrectRateAfter != 0.75 {
		t.Fatalf("rates %v/%v, want 0.5/0.75", m.CorrectRateBefore, m.CorrectRateAfter)
	}
	// (0.75 - 0.5) / (1 - 0.5)
	if m.NormalizedGain != 0.5 {
		t.Fatalf("normalized gain %v, want 0.5", m.NormalizedGain)
	}
	// (0.4 - 0.4 + 0.1 + 0) / 4
	if math.Abs(m.MeanQualityDelta-0.025) > 1e-9 {
		t.Fatalf("mean quality delta %v, want 0.025", m.MeanQualityDelta)
	}
	// Three mind changers: two helped, one hurt.
	if math.Abs(m.DebateEffectiveness-1.0/3.0) > 1e-9 {
		t.Fatalf("debate effectiveness %v, want 1/3", m.DebateEffectiveness)
	}
	if m.LearningTypeCounts[LearningGenuine] != 1 || m.LearningTypeCounts[LearningNegative] != 1 ||
		m.LearningTypeCounts[LearningSuperficial] != 1 || m.LearningTypeCounts[LearningNone] != 1 {
		t.Fatalf("learning type counts %v", m.LearningTypeCounts)
	}
	if m.MisconceptionFrequency["frac-bigger-denominator"] != 2 {
		t.Fatalf("misconception frequency %v", m.MisconceptionFrequency)
	}
}

func TestComputeClassMetrics_NoEvents(t *testing.T) {
	m := ComputeClassMetrics(testQuestion(), nil)
	if m.CorrectRateBefore != 0 || m.CorrectRateAfter != 0 || m.NormalizedGain != 0 {
		t.Fatalf("empty metrics = %+v", m)
	}
	if m.LearningTypeCounts == nil || m.MisconceptionFrequency == nil {
		t.Fatal("maps not initialized")
	}
}

func TestComputeClassMetrics_PerfectStartHasNoNormalizedGain(t *testing.T) {
	events := []*LearningEvent{
		{InitialCorrect: true, FinalCorrect: true, Type: LearningNone},
		{InitialCorrect: true, FinalCorrect: true, Type: LearningNone},
	}
	m := ComputeClassMetrics(testQuestion(), events)
	if m.NormalizedGain != 0 {
		t.Fatalf("normalized gain %v with nothing to gain", m.NormalizedGain)
	}
}

func TestComputeClassMetrics_NoMindChangers(t *testing.T) {
	events := []*LearningEvent{
		{InitialCorrect: false, FinalCorrect: false, Type: LearningNone},
	}
	m := ComputeClassMetrics(testQuestion(), events)
	if m.DebateEffectiveness != 0 {
		t.Fatalf("debate effectiveness %v with no mind changers", m.DebateEffectiveness)
	}
}
