package quiz

import (
	"encoding/json"
	"strings"
)

// Choice is one selectable answer option within a question
type Choice struct {
	Text        string `json:"text"`
	IsCorrect   bool   `json:"is_correct"`
	Explanation string `json:"explanation,omitempty"` // shown when this choice is selected and wrong
}

// Question holds a prompt and its ordered choices
type Question struct {
	Prompt  string   `json:"prompt"`
	Choices []Choice `json:"choices"`
}

// Document is the canonical quiz shape: an ordered list of questions.
// The same representation is used at authoring time and at grading time,
// and it round-trips losslessly through Serialize/Parse.
type Document []Question

// CorrectChoice returns the index of the correct choice, or -1 if none is
// marked. A validated document always has exactly one per question.
func (q Question) CorrectChoice() int {
	for i, c := range q.Choices {
		if c.IsCorrect {
			return i
		}
	}
	return -1
}

// Validate checks the structural rules for a candidate quiz document:
// at least one question, a non-empty prompt and at least two choices per
// question, non-empty choice text, and exactly one correct choice per
// question. The returned *ValidationError names the offending indexes.
func (d Document) Validate() error {
	if len(d) == 0 {
		return &ValidationError{Question: -1, Choice: -1, Reason: "quiz has no questions"}
	}

	for i, q := range d {
		if strings.TrimSpace(q.Prompt) == "" {
			return &ValidationError{Question: i, Choice: -1, Reason: "has an empty prompt"}
		}
		if len(q.Choices) < 2 {
			return &ValidationError{Question: i, Choice: -1, Reason: "needs at least 2 choices"}
		}

		correct := 0
		for j, c := range q.Choices {
			if strings.TrimSpace(c.Text) == "" {
				return &ValidationError{Question: i, Choice: j, Reason: "has empty choice text"}
			}
			if c.IsCorrect {
				correct++
			}
		}

		if correct != 1 {
			return &ValidationError{Question: i, Choice: -1, Reason: correctCountReason(correct)}
		}
	}

	return nil
}

// Serialize produces the persisted text form of the document
func (d Document) Serialize() (string, error) {
	data, err := json.Marshal(d)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Parse reconstructs a Document from its persisted text form. Malformed
// input (not JSON, not an array, wrong field shapes) yields a *ParseError;
// callers treat that as corrupt quiz content, not a crash.
func Parse(text string) (Document, error) {
	var d Document
	if err := json.Unmarshal([]byte(text), &d); err != nil {
		return nil, &ParseError{Reason: err.Error()}
	}
	return d, nil
}
