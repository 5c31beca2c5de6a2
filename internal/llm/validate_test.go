package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func turnSchema() *Schema {
	return &Schema{
		Name:        "test-turn",
		Description: "A debate-turn shaped test object",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"answer":       map[string]any{"type": "string"},
				"confidence":   map[string]any{"type": "number", "minimum": 0, "maximum": 1},
				"changed_mind": map[string]any{"type": "boolean"},
				"steps": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
			},
			"required": []any{"answer", "confidence", "changed_mind"},
		},
	}
}

func TestValidateResponse_Valid(t *testing.T) {
	raw := json.RawMessage(`{"answer":"A","confidence":0.7,"changed_mind":false,"steps":["one","two"]}`)
	require.NoError(t, validateResponse(turnSchema(), raw))
}

func TestValidateResponse_ValidWithoutOptional(t *testing.T) {
	raw := json.RawMessage(`{"answer":"B","confidence":0.4,"changed_mind":true}`)
	require.NoError(t, validateResponse(turnSchema(), raw))
}

func TestValidateResponse_MissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"answer":"A"}`)
	err := validateResponse(turnSchema(), raw)
	require.Error(t, err)

	var invErr *ErrInvalidResponse
	require.ErrorAs(t, err, &invErr)
}

func TestValidateResponse_WrongType(t *testing.T) {
	raw := json.RawMessage(`{"answer":"A","confidence":"high","changed_mind":false}`)
	err := validateResponse(turnSchema(), raw)
	require.Error(t, err)

	var invErr *ErrInvalidResponse
	require.ErrorAs(t, err, &invErr)
}

func TestValidateResponse_OutOfRange(t *testing.T) {
	raw := json.RawMessage(`{"answer":"A","confidence":1.7,"changed_mind":false}`)
	require.Error(t, validateResponse(turnSchema(), raw))
}

func TestValidateResponse_MalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{not json}`)
	err := validateResponse(turnSchema(), raw)
	require.Error(t, err)

	var invErr *ErrInvalidResponse
	require.ErrorAs(t, err, &invErr)
}

func TestValidateResponse_NilSchema(t *testing.T) {
	raw := json.RawMessage(`{"anything":"goes"}`)
	require.NoError(t, validateResponse(nil, raw))
}
