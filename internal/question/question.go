package question

import (
	"fmt"
	"strings"
)

// Question is a single multiple-choice item presented to the class.
// Questions are supplied by an external bank and are read-only to the
// simulation.
type Question struct {
	// ID uniquely identifies the question within its bank.
	ID string `json:"id"`

	// Concept tags the idea being tested, e.g. "fractions" or
	// "photosynthesis". Misconception relevance is keyed off this tag.
	Concept string `json:"concept"`

	// Difficulty is the bank's difficulty estimate in [0,1].
	Difficulty float64 `json:"difficulty"`

	// Prompt is the question text shown to students.
	Prompt string `json:"prompt"`

	// Options is the ordered list of answer options. Each option starts
	// with its key letter, e.g. "A) 3/4".
	Options []string `json:"options"`

	// CorrectAnswer is the key letter of the correct option, e.g. "A".
	CorrectAnswer string `json:"correct_answer"`
}

// OptionKeys returns the key letters of the question's options in order.
func (q *Question) OptionKeys() []string {
	keys := make([]string, len(q.Options))
	for i := range q.Options {
		keys[i] = string(rune('A' + i))
	}
	return keys
}

// Validate checks structural invariants of a bank question.
func (q *Question) Validate() error {
	if q.ID == "" {
		return fmt.Errorf("question missing id")
	}
	if strings.TrimSpace(q.Prompt) == "" {
		return fmt.Errorf("question %s: empty prompt", q.ID)
	}
	if len(q.Options) < 2 {
		return fmt.Errorf("question %s: need at least 2 options, got %d", q.ID, len(q.Options))
	}
	if q.Difficulty < 0 || q.Difficulty > 1 {
		return fmt.Errorf("question %s: difficulty %.2f outside [0,1]", q.ID, q.Difficulty)
	}
	key := NormalizeKey(q.CorrectAnswer)
	if key == "" {
		return fmt.Errorf("question %s: empty correct answer", q.ID)
	}
	for _, k := range q.OptionKeys() {
		if k == key {
			return nil
		}
	}
	return fmt.Errorf("question %s: correct answer %q not among options", q.ID, q.CorrectAnswer)
}

// NormalizeKey reduces an answer string to its uppercase key letter.
// "a", "A) 3/4" and "A" all normalize to "A". Empty input stays empty.
func NormalizeKey(answer string) string {
	s := strings.TrimSpace(answer)
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1])
}

// IsCorrect reports whether the given answer matches the question's
// correct answer, comparing normalized key letters.
func (q *Question) IsCorrect(answer string) bool {
	return NormalizeKey(answer) == NormalizeKey(q.CorrectAnswer)
}
