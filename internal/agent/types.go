package agent

// ReasoningChain is the ordered explanation a student produces on the way
// to an answer. Chains are created fresh for every answer and debate turn
// and never mutated afterwards.
type ReasoningChain struct {
	// Steps is the ordered list of reasoning steps.
	Steps []string `json:"steps"`

	// Conclusion is the answer key the chain arrives at, e.g. "B".
	Conclusion string `json:"conclusion"`

	// Confidence is the student's self-reported confidence in [0,1].
	Confidence float64 `json:"confidence"`

	// MisconceptionsUsed lists the misconception IDs invoked while
	// producing this chain. Empty for clean reasoning.
	MisconceptionsUsed []string `json:"misconceptions_used"`
}

// Position is a student's stance at a specific debate turn: an answer,
// the reasoning behind it, and the confidence backing it.
type Position struct {
	// Answer is the answer key letter, e.g. "A".
	Answer string `json:"answer"`

	// Chain is the reasoning that produced this position.
	Chain *ReasoningChain `json:"chain"`

	// Confidence duplicates Chain.Confidence for quick comparison.
	Confidence float64 `json:"confidence"`

	// Turn is the debate turn index this position was formed at.
	// Initial answers are turn 0.
	Turn int `json:"turn"`
}

// Rebuttal is the outcome of one debate turn: the speaker's new position,
// whether they abandoned their previous answer, and the argument they made.
type Rebuttal struct {
	Position    Position `json:"position"`
	ChangedMind bool     `json:"changed_mind"`
	Argument    string   `json:"argument"`
}

// Context describes the student on whose behalf a capability call is made.
// It carries everything the engines need so they can stay stateless.
type Context struct {
	// StudentID identifies the student. Heuristic draws are keyed off it
	// so replays with the same seed are reproducible.
	StudentID string

	// PersonaName is the student's persona variant, e.g. "overconfident".
	PersonaName string

	// Ability is the student's current ability level in [0,1].
	Ability float64

	// ConfidenceOffset shifts self-reported confidence up or down.
	ConfidenceOffset float64

	// Susceptibility is how easily the student is persuaded, in [0,1].
	Susceptibility float64

	// ActiveMisconceptions lists the misconceptions currently held by the
	// student that are relevant to the question's concept.
	ActiveMisconceptions []*Misconception

	// Knowledge is the prose knowledge-context string handed to the LLM.
	Knowledge string
}
