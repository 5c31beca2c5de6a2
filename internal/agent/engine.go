package agent

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/classim/internal/llm"
	"github.com/abhisek/classim/internal/question"
)

// EngineConfig holds generation parameters for the LLM engine.
type EngineConfig struct {
	MaxTokens   int
	Temperature float64
}

// DefaultEngineConfig returns sensible defaults. Temperature stays warm
// so personas vary their phrasing; structured output keeps shape stable.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		MaxTokens:   512,
		Temperature: 0.7,
	}
}

// LLMEngine implements Engine by roleplaying students through an LLM
// provider with structured output.
type LLMEngine struct {
	provider llm.Provider
	cfg      EngineConfig
}

// NewLLMEngine creates an LLM-backed engine.
func NewLLMEngine(provider llm.Provider, cfg EngineConfig) *LLMEngine {
	return &LLMEngine{provider: provider, cfg: cfg}
}

// answerOutput is the raw LLM answer response.
type answerOutput struct {
	Answer             string   `json:"answer"`
	Steps              []string `json:"steps"`
	Confidence         float64  `json:"confidence"`
	MisconceptionsUsed []string `json:"misconceptions_used"`
}

// Answer asks the LLM to answer the question in character.
func (e *LLMEngine) Answer(ctx context.Context, sc Context, q *question.Question) (string, *ReasoningChain, error) {
	ctx = llm.WithPurpose(ctx, "student-answer")

	userMsg, err := buildAnswerMessage(sc, q)
	if err != nil {
		return "", nil, fmt.Errorf("build answer prompt: %w", err)
	}

	resp, err := e.provider.Generate(ctx, llm.Request{
		System: answerSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      AnswerSchema,
		MaxTokens:   e.cfg.MaxTokens,
		Temperature: e.cfg.Temperature,
	})
	if err != nil {
		return "", nil, fmt.Errorf("LLM answer failed: %w", err)
	}

	var raw answerOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return "", nil, fmt.Errorf("parse answer response: %w", err)
	}

	answer := question.NormalizeKey(raw.Answer)
	if !validOptionKey(answer, q) {
		return "", nil, fmt.Errorf("LLM answered %q, not an option of %s", raw.Answer, q.ID)
	}

	chain := &ReasoningChain{
		Steps:              raw.Steps,
		Conclusion:         answer,
		Confidence:         clamp01(raw.Confidence),
		MisconceptionsUsed: knownMisconceptionIDs(raw.MisconceptionsUsed),
	}
	return answer, chain, nil
}

// debateOutput is the raw LLM debate turn response.
type debateOutput struct {
	Answer      string   `json:"answer"`
	Steps       []string `json:"steps"`
	Confidence  float64  `json:"confidence"`
	ChangedMind bool     `json:"changed_mind"`
	Argument    string   `json:"argument"`
}

// Debate asks the LLM to respond to the opponent's latest position.
func (e *LLMEngine) Debate(ctx context.Context, sc Context, q *question.Question, own, opponent Position) (*Rebuttal, error) {
	ctx = llm.WithPurpose(ctx, "peer-debate")

	userMsg, err := buildDebateMessage(sc, q, own, opponent)
	if err != nil {
		return nil, fmt.Errorf("build debate prompt: %w", err)
	}

	resp, err := e.provider.Generate(ctx, llm.Request{
		System: debateSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      DebateSchema,
		MaxTokens:   e.cfg.MaxTokens,
		Temperature: e.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("LLM debate turn failed: %w", err)
	}

	var raw debateOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("parse debate response: %w", err)
	}

	answer := question.NormalizeKey(raw.Answer)
	if !validOptionKey(answer, q) {
		return nil, fmt.Errorf("LLM debated to %q, not an option of %s", raw.Answer, q.ID)
	}

	chain := &ReasoningChain{
		Steps:              raw.Steps,
		Conclusion:         answer,
		Confidence:         clamp01(raw.Confidence),
		MisconceptionsUsed: own.Chain.MisconceptionsUsed,
	}
	if answer != own.Answer {
		// A switched answer abandons the old reasoning, misconceptions
		// included.
		chain.MisconceptionsUsed = nil
	}

	// The answer letter is authoritative; the model's changed_mind flag
	// is advisory only.
	changed := answer != question.NormalizeKey(own.Answer)

	return &Rebuttal{
		Position: Position{
			Answer:     answer,
			Chain:      chain,
			Confidence: chain.Confidence,
			Turn:       own.Turn + 1,
		},
		ChangedMind: changed,
		Argument:    raw.Argument,
	}, nil
}

// gradeOutput is the raw LLM grading response.
type gradeOutput struct {
	Score     float64 `json:"score"`
	Rationale string  `json:"rationale"`
}

// Grade asks the LLM to score the reasoning chain.
func (e *LLMEngine) Grade(ctx context.Context, chain *ReasoningChain, q *question.Question, correctAnswer string) (float64, error) {
	ctx = llm.WithPurpose(ctx, "reasoning-grade")

	userMsg, err := buildGradeMessage(chain, q, correctAnswer)
	if err != nil {
		return 0, fmt.Errorf("build grade prompt: %w", err)
	}

	resp, err := e.provider.Generate(ctx, llm.Request{
		System: gradeSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      GradeSchema,
		MaxTokens:   256,
		Temperature: 0.0,
	})
	if err != nil {
		return 0, fmt.Errorf("LLM grading failed: %w", err)
	}

	var raw gradeOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return 0, fmt.Errorf("parse grade response: %w", err)
	}

	return clamp01(raw.Score), nil
}

// validOptionKey reports whether key is one of the question's option keys.
func validOptionKey(key string, q *question.Question) bool {
	for _, k := range q.OptionKeys() {
		if k == key {
			return true
		}
	}
	return false
}

// knownMisconceptionIDs filters out IDs the LLM invented.
func knownMisconceptionIDs(ids []string) []string {
	var out []string
	for _, id := range ids {
		if GetMisconception(id) != nil {
			out = append(out, id)
		}
	}
	return out
}
