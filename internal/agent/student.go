package agent

import (
	"context"
	"fmt"
	"hash/fnv"
	"math/rand/v2"

	"github.com/abhisek/classim/internal/question"
)

const (
	// abilityGainRate scales the ability increase after a wrong final
	// answer: susceptible students internalize corrections faster.
	abilityGainRate = 0.1

	// correctionProb is the chance each relevant active misconception is
	// dropped during a knowledge update.
	correctionProb = 0.6
)

// HistoryEntry is one append-only record of a debate the student took
// part in.
type HistoryEntry struct {
	QuestionID  string `json:"question_id"`
	DebateID    string `json:"debate_id"`
	ChangedMind bool   `json:"changed_mind"`
}

// Student is one simulated learner. Only the student's own operations
// mutate its fields, so per-question answer calls across different
// students are safe to run in parallel.
type Student struct {
	ID      string
	Name    string
	Persona Profile

	// Ability is the current ability level. Mutates only via
	// UpdateKnowledge after ground truth is revealed.
	Ability float64

	// Active is the set of currently held misconception IDs. Mutates
	// only via correction during UpdateKnowledge.
	Active map[string]bool

	// History is the append-only debate log.
	History []HistoryEntry

	engine Engine
	rng    *rand.Rand
}

// NewStudent creates a student with the given stable id, drawing the
// active misconception set from the persona's candidates.
func NewStudent(id, name string, p Profile, engine Engine, seed int64, activationProb float64) *Student {
	rng := studentRand(seed, id)
	return &Student{
		ID:      id,
		Name:    name,
		Persona: p,
		Ability: p.BaselineAbility,
		Active:  activateMisconceptions(p, activationProb, rng),
		engine:  engine,
		rng:     rng,
	}
}

// NewClassroom builds size students cycling through the persona set.
func NewClassroom(size int, engine Engine, seed int64, activationProb float64) []*Student {
	profiles := Profiles()
	students := make([]*Student, size)
	for i := range size {
		p := profiles[i%len(profiles)]
		id := fmt.Sprintf("s%02d", i+1)
		name := studentNames[i%len(studentNames)]
		if i >= len(studentNames) {
			name = fmt.Sprintf("%s %d", name, i/len(studentNames)+1)
		}
		students[i] = NewStudent(id, name, p, engine, seed, activationProb)
	}
	return students
}

var studentNames = []string{
	"Ava", "Ben", "Chloe", "Dev", "Ella", "Farid", "Grace", "Hugo",
	"Isla", "Jun", "Kira", "Leo", "Mira", "Noah", "Omar", "Priya",
}

// ContextFor assembles the capability-call context for a question,
// selecting the active misconceptions relevant to its concept.
func (s *Student) ContextFor(q *question.Question) Context {
	var relevant []*Misconception
	for id := range s.Active {
		m := GetMisconception(id)
		if m != nil && m.RelevantTo(q.Concept) {
			relevant = append(relevant, m)
		}
	}
	return Context{
		StudentID:            s.ID,
		PersonaName:          s.Persona.Name,
		Ability:              s.Ability,
		ConfidenceOffset:     s.Persona.ConfidenceOffset,
		Susceptibility:       s.Persona.Susceptibility,
		ActiveMisconceptions: relevant,
		Knowledge:            BuildKnowledge(s.Name, s.Persona.Name, s.Ability, s.Persona.Susceptibility),
	}
}

// Answer produces the student's independent initial position (turn 0).
func (s *Student) Answer(ctx context.Context, q *question.Question) (Position, error) {
	sc := s.ContextFor(q)
	answer, chain, err := s.engine.Answer(ctx, sc, q)
	if err != nil {
		return Position{}, fmt.Errorf("student %s answer: %w", s.ID, err)
	}
	return Position{
		Answer:     answer,
		Chain:      chain,
		Confidence: chain.Confidence,
		Turn:       0,
	}, nil
}

// Debate runs one debate turn against the opponent's latest position.
func (s *Student) Debate(ctx context.Context, q *question.Question, own, opponent Position) (*Rebuttal, error) {
	sc := s.ContextFor(q)
	reb, err := s.engine.Debate(ctx, sc, q, own, opponent)
	if err != nil {
		return nil, fmt.Errorf("student %s debate turn: %w", s.ID, err)
	}
	return reb, nil
}

// UpdateKnowledge applies the post-reveal learning step. A wrong final
// answer raises ability by abilityGainRate x susceptibility (capped at
// 1.0) and gives each relevant active misconception a correctionProb
// chance of being dropped. Correct answers are a no-op. Returns the
// ability delta and the corrected misconception IDs.
func (s *Student) UpdateKnowledge(concept string, wasCorrect bool) (float64, []string) {
	if wasCorrect {
		return 0, nil
	}

	delta := abilityGainRate * s.Persona.Susceptibility
	if s.Ability+delta > 1.0 {
		delta = 1.0 - s.Ability
	}
	s.Ability += delta

	var corrected []string
	for id := range s.Active {
		m := GetMisconception(id)
		if m == nil || !m.RelevantTo(concept) {
			continue
		}
		if s.rng.Float64() < correctionProb {
			delete(s.Active, id)
			corrected = append(corrected, id)
		}
	}
	return delta, corrected
}

// RecordDebate appends a debate participation record.
func (s *Student) RecordDebate(entry HistoryEntry) {
	s.History = append(s.History, entry)
}

// ActiveMisconceptionIDs returns the held misconception IDs (unordered).
func (s *Student) ActiveMisconceptionIDs() []string {
	out := make([]string, 0, len(s.Active))
	for id := range s.Active {
		out = append(out, id)
	}
	return out
}

// studentRand derives a per-student generator from the run seed.
func studentRand(seed int64, id string) *rand.Rand {
	h := fnv.New64a()
	h.Write([]byte(id))
	return rand.New(rand.NewPCG(uint64(seed), h.Sum64()))
}
