package question

import "testing"

func validQuestion() Question {
	return Question{
		ID:            "q-1",
		Concept:       "fraction comparison",
		Difficulty:    0.4,
		Prompt:        "Which fraction is larger, 1/3 or 1/4?",
		Options:       []string{"A) 1/4", "B) 1/3", "C) They are equal", "D) Cannot tell"},
		CorrectAnswer: "B",
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Question)
		ok     bool
	}{
		{"valid", func(*Question) {}, true},
		{"lowercase correct answer", func(q *Question) { q.CorrectAnswer = "b" }, true},
		{"full-option correct answer", func(q *Question) { q.CorrectAnswer = "B) 1/3" }, true},
		{"missing id", func(q *Question) { q.ID = "" }, false},
		{"blank prompt", func(q *Question) { q.Prompt = "   " }, false},
		{"one option", func(q *Question) { q.Options = q.Options[:1] }, false},
		{"difficulty above one", func(q *Question) { q.Difficulty = 1.2 }, false},
		{"negative difficulty", func(q *Question) { q.Difficulty = -0.1 }, false},
		{"empty correct answer", func(q *Question) { q.CorrectAnswer = "" }, false},
		{"correct answer off the option list", func(q *Question) { q.CorrectAnswer = "E" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := validQuestion()
			tt.mutate(&q)
			err := q.Validate()
			if tt.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tt.ok && err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"A", "A"},
		{"a", "A"},
		{"  b  ", "B"},
		{"A) 3/4", "A"},
		{"", ""},
		{"   ", ""},
	}
	for _, tt := range tests {
		if got := NormalizeKey(tt.in); got != tt.want {
			t.Errorf("NormalizeKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestOptionKeys(t *testing.T) {
	q := validQuestion()
	keys := q.OptionKeys()
	want := []string{"A", "B", "C", "D"}
	if len(keys) != len(want) {
		t.Fatalf("keys %v", keys)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("keys %v, want %v", keys, want)
		}
	}
}

func TestIsCorrect(t *testing.T) {
	q := validQuestion()
	for _, answer := range []string{"B", "b", "B) 1/3"} {
		if !q.IsCorrect(answer) {
			t.Errorf("IsCorrect(%q) = false", answer)
		}
	}
	for _, answer := range []string{"A", "", "E"} {
		if q.IsCorrect(answer) {
			t.Errorf("IsCorrect(%q) = true", answer)
		}
	}
}
