package agent

import "github.com/abhisek/classim/internal/llm"

// AnswerSchema defines the JSON schema for student answer responses.
var AnswerSchema = &llm.Schema{
	Name:        "student-answer",
	Description: "A simulated student's answer to a multiple-choice question with reasoning",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"answer": map[string]any{
				"type":        "string",
				"description": "The key letter of the chosen option, e.g. \"A\"",
			},
			"steps": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"description": "Ordered reasoning steps in the student's voice, 1-4 entries",
			},
			"confidence": map[string]any{
				"type":        "number",
				"minimum":     0,
				"maximum":     1,
				"description": "Self-assessed confidence in the answer",
			},
			"misconceptions_used": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"description": "IDs from the listed misconceptions that shaped this reasoning. Empty if none.",
			},
		},
		"required":             []any{"answer", "steps", "confidence", "misconceptions_used"},
		"additionalProperties": false,
	},
}

// DebateSchema defines the JSON schema for debate turn responses.
var DebateSchema = &llm.Schema{
	Name:        "debate-turn",
	Description: "A simulated student's response to a peer's argument in a structured debate",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"answer": map[string]any{
				"type":        "string",
				"description": "The key letter of the answer held after considering the peer's argument",
			},
			"steps": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"description": "Updated reasoning steps, 1-4 entries",
			},
			"confidence": map[string]any{
				"type":        "number",
				"minimum":     0,
				"maximum":     1,
				"description": "Confidence in the held answer after this turn",
			},
			"changed_mind": map[string]any{
				"type":        "boolean",
				"description": "True when the student switched to a different answer this turn",
			},
			"argument": map[string]any{
				"type":        "string",
				"description": "One or two sentences spoken to the peer this turn",
			},
		},
		"required":             []any{"answer", "steps", "confidence", "changed_mind", "argument"},
		"additionalProperties": false,
	},
}

// GradeSchema defines the JSON schema for reasoning-quality grading.
var GradeSchema = &llm.Schema{
	Name:        "reasoning-grade",
	Description: "A quality score for a student's reasoning chain",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"score": map[string]any{
				"type":        "number",
				"minimum":     0,
				"maximum":     1,
				"description": "Reasoning quality: logical soundness and calibration, independent of the final answer",
			},
			"rationale": map[string]any{
				"type":        "string",
				"description": "One sentence justifying the score",
			},
		},
		"required":             []any{"score", "rationale"},
		"additionalProperties": false,
	},
}
