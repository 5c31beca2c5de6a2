package question

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewSource(t *testing.T) {
	if _, err := NewSource(nil); err == nil {
		t.Fatal("empty list accepted")
	}

	q := validQuestion()
	if _, err := NewSource([]Question{q, q}); err == nil {
		t.Fatal("duplicate ids accepted")
	}

	bad := validQuestion()
	bad.Prompt = ""
	if _, err := NewSource([]Question{bad}); err == nil {
		t.Fatal("invalid question accepted")
	}

	src, err := NewSource([]Question{validQuestion()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if src.Len() != 1 {
		t.Fatalf("len %d, want 1", src.Len())
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	write := func(name, content string) string {
		t.Helper()
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		return path
	}

	bareArray := `[{
		"id": "q-1",
		"concept": "fraction comparison",
		"difficulty": 0.4,
		"prompt": "Which fraction is larger, 1/3 or 1/4?",
		"options": ["A) 1/4", "B) 1/3"],
		"correct_answer": "B"
	}]`
	src, err := LoadFile(write("bare.json", bareArray))
	if err != nil {
		t.Fatalf("bare array: %v", err)
	}
	if src.Len() != 1 || src.Questions()[0].ID != "q-1" {
		t.Fatalf("bare array parsed wrong: %+v", src.Questions())
	}

	wrapped := `{"questions": ` + bareArray + `}`
	src, err = LoadFile(write("wrapped.json", wrapped))
	if err != nil {
		t.Fatalf("wrapped object: %v", err)
	}
	if src.Len() != 1 {
		t.Fatalf("wrapped object parsed %d questions", src.Len())
	}

	if _, err := LoadFile(write("garbage.json", "not json")); err == nil {
		t.Fatal("malformed file accepted")
	}
	if _, err := LoadFile(filepath.Join(dir, "missing.json")); err == nil {
		t.Fatal("missing file accepted")
	}
}

func TestSeedBank(t *testing.T) {
	src := SeedBank()
	if src.Len() == 0 {
		t.Fatal("seed bank is empty")
	}

	seen := make(map[string]bool)
	for _, q := range src.Questions() {
		if err := q.Validate(); err != nil {
			t.Errorf("seed question %s: %v", q.ID, err)
		}
		if seen[q.ID] {
			t.Errorf("duplicate seed question id %s", q.ID)
		}
		seen[q.ID] = true
	}
}
