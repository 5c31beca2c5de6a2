package question

import (
	"encoding/json"
	"fmt"
	"os"
)

// Source is an ordered, finite list of questions for one experiment run.
type Source struct {
	questions []Question
}

// NewSource validates and wraps an ordered question list.
func NewSource(questions []Question) (*Source, error) {
	if len(questions) == 0 {
		return nil, fmt.Errorf("question list is empty")
	}
	seen := make(map[string]bool, len(questions))
	for i := range questions {
		q := &questions[i]
		if err := q.Validate(); err != nil {
			return nil, fmt.Errorf("question %d: %w", i, err)
		}
		if seen[q.ID] {
			return nil, fmt.Errorf("duplicate question id %q", q.ID)
		}
		seen[q.ID] = true
	}
	return &Source{questions: questions}, nil
}

// LoadFile reads a question bank from a JSON file. The file holds either
// a bare array of questions or an object with a "questions" field.
func LoadFile(path string) (*Source, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read question bank: %w", err)
	}

	var qs []Question
	if err := json.Unmarshal(raw, &qs); err != nil {
		var wrapped struct {
			Questions []Question `json:"questions"`
		}
		if err2 := json.Unmarshal(raw, &wrapped); err2 != nil {
			return nil, fmt.Errorf("parse question bank %s: %w", path, err)
		}
		qs = wrapped.Questions
	}

	return NewSource(qs)
}

// Questions returns the ordered question list.
func (s *Source) Questions() []Question {
	return s.questions
}

// Len returns the number of questions.
func (s *Source) Len() int {
	return len(s.questions)
}

// SeedBank returns the built-in demonstration bank used when no file is
// supplied. Concepts align with the seed misconception taxonomy.
func SeedBank() *Source {
	src, err := NewSource(seedQuestions)
	if err != nil {
		// The seed bank is compiled in; a validation failure is a bug.
		panic(fmt.Sprintf("seed bank invalid: %v", err))
	}
	return src
}

var seedQuestions = []Question{
	{
		ID:            "frac-compare-1",
		Concept:       "fraction comparison",
		Difficulty:    0.45,
		Prompt:        "Which fraction is larger: 1/3 or 1/4?",
		Options:       []string{"A) 1/4", "B) 1/3", "C) They are equal", "D) Cannot tell"},
		CorrectAnswer: "B",
	},
	{
		ID:            "frac-add-1",
		Concept:       "fraction addition",
		Difficulty:    0.55,
		Prompt:        "What is 1/2 + 1/4?",
		Options:       []string{"A) 2/6", "B) 1/6", "C) 3/4", "D) 2/4"},
		CorrectAnswer: "C",
	},
	{
		ID:            "dec-compare-1",
		Concept:       "decimal comparison",
		Difficulty:    0.4,
		Prompt:        "Which number is larger: 0.8 or 0.65?",
		Options:       []string{"A) 0.8", "B) 0.65", "C) They are equal", "D) Cannot tell"},
		CorrectAnswer: "A",
	},
	{
		ID:            "mult-zero-1",
		Concept:       "multiplication properties",
		Difficulty:    0.3,
		Prompt:        "What is 137 x 0?",
		Options:       []string{"A) 137", "B) 0", "C) 1", "D) 1370"},
		CorrectAnswer: "B",
	},
	{
		ID:            "neg-sub-1",
		Concept:       "negative numbers",
		Difficulty:    0.6,
		Prompt:        "What is 3 - 7?",
		Options:       []string{"A) 4", "B) 10", "C) -10", "D) -4"},
		CorrectAnswer: "D",
	},
	{
		ID:            "div-frac-1",
		Concept:       "fraction division",
		Difficulty:    0.7,
		Prompt:        "What is 6 divided by 1/2?",
		Options:       []string{"A) 3", "B) 12", "C) 6", "D) 1/3"},
		CorrectAnswer: "B",
	},
	{
		ID:            "area-perim-1",
		Concept:       "area and perimeter",
		Difficulty:    0.5,
		Prompt:        "A rectangle is 4 by 6. What is its area?",
		Options:       []string{"A) 20", "B) 10", "C) 24", "D) 48"},
		CorrectAnswer: "C",
	},
	{
		ID:            "place-value-1",
		Concept:       "place value",
		Difficulty:    0.35,
		Prompt:        "In the number 352, what does the 5 represent?",
		Options:       []string{"A) 5", "B) 50", "C) 500", "D) 52"},
		CorrectAnswer: "B",
	},
}
