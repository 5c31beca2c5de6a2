package agent

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/abhisek/classim/internal/question"
)

const answerSystemPrompt = `You are roleplaying a school student answering a multiple-choice question. Stay fully in character: your ability level and any mistaken beliefs listed below must shape your reasoning. If a listed misconception applies to the question, reason the way a student holding it actually would, and report its ID in misconceptions_used.

Do not break character to give the textbook answer when your profile says you would get it wrong. Keep reasoning steps short and in a student's voice.`

const debateSystemPrompt = `You are roleplaying a school student in a structured peer debate about a question the class just answered. You hold a position; your peer holds theirs. Consider their argument honestly, in character: how susceptible you are to persuasion is part of your profile. You may keep your answer or switch. Set changed_mind to true only if your answer letter changes this turn. Speak your argument in one or two sentences, as a student would.`

const gradeSystemPrompt = `You are an education researcher grading the quality of a student's reasoning chain, not the answer itself. Score logical soundness, use of relevant concepts, and calibration (confidence matching correctness). A confidently wrong chain built on a misconception scores low; a hesitant but structured chain scores moderately even when wrong.`

var answerUserTemplate = template.Must(template.New("answer").Parse(`Student profile:
{{.Knowledge}}

Question ({{.Question.Concept}}, difficulty {{printf "%.2f" .Question.Difficulty}}):
{{.Question.Prompt}}
{{range .Question.Options}}{{.}}
{{end}}
{{- if .Misconceptions}}
Mistaken beliefs you currently hold:
{{range .Misconceptions}}- {{.ID}}: {{.Description}}
{{end}}{{end}}Answer as this student.`))

var debateUserTemplate = template.Must(template.New("debate").Parse(`Student profile:
{{.Knowledge}}

Question:
{{.Question.Prompt}}
{{range .Question.Options}}{{.}}
{{end}}
Your current position: answer {{.Own.Answer}} (confidence {{printf "%.2f" .Own.Confidence}})
Your reasoning so far:
{{range .Own.Chain.Steps}}- {{.}}
{{end}}
Your peer argues for answer {{.Opponent.Answer}} (confidence {{printf "%.2f" .Opponent.Confidence}}):
{{range .Opponent.Chain.Steps}}- {{.}}
{{end}}
Respond for debate turn {{.Turn}}.`))

var gradeUserTemplate = template.Must(template.New("grade").Funcs(template.FuncMap{
	"join": strings.Join,
}).Parse(gradeUserTemplateText))

const gradeUserTemplateText = `Question ({{.Question.Concept}}):
{{.Question.Prompt}}

Correct answer: {{.CorrectAnswer}}

Student's conclusion: {{.Chain.Conclusion}} (confidence {{printf "%.2f" .Chain.Confidence}})
Student's reasoning:
{{range .Chain.Steps}}- {{.}}
{{end}}
{{- if .Chain.MisconceptionsUsed}}
Misconceptions invoked: {{join .Chain.MisconceptionsUsed ", "}}
{{end}}Grade the reasoning quality.`

// BuildKnowledge derives the prose knowledge-context string from a
// student's ability and persona.
func BuildKnowledge(name, personaName string, ability, susceptibility float64) string {
	var level string
	switch {
	case ability < 0.4:
		level = "struggling with this material"
	case ability < 0.65:
		level = "partially comfortable with this material"
	default:
		level = "comfortable with this material"
	}
	return fmt.Sprintf("%s is a %s student, %s (ability %.2f, persuasion susceptibility %.2f).",
		name, personaName, level, ability, susceptibility)
}

func buildAnswerMessage(sc Context, q *question.Question) (string, error) {
	var buf bytes.Buffer
	err := answerUserTemplate.Execute(&buf, struct {
		Knowledge      string
		Question       *question.Question
		Misconceptions []*Misconception
	}{sc.Knowledge, q, sc.ActiveMisconceptions})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

func buildDebateMessage(sc Context, q *question.Question, own, opponent Position) (string, error) {
	var buf bytes.Buffer
	err := debateUserTemplate.Execute(&buf, struct {
		Knowledge string
		Question  *question.Question
		Own       Position
		Opponent  Position
		Turn      int
	}{sc.Knowledge, q, own, opponent, own.Turn + 1})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

func buildGradeMessage(chain *ReasoningChain, q *question.Question, correctAnswer string) (string, error) {
	var buf bytes.Buffer
	err := gradeUserTemplate.Execute(&buf, struct {
		Question      *question.Question
		CorrectAnswer string
		Chain         *ReasoningChain
	}{q, correctAnswer, chain})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
