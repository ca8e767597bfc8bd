package player

import (
	"fmt"
	"ilearn/quiz"
	"sort"
)

// QuestionResult is the per-question grading outcome
type QuestionResult struct {
	Selected    int    `json:"selected"`
	Correct     bool   `json:"correct"`
	Explanation string `json:"explanation,omitempty"` // of the selected wrong choice, when present
}

// Result is the outcome of grading one full submission
type Result struct {
	Questions []QuestionResult `json:"questions"`
	Passed    bool             `json:"passed"`
}

// IncompleteAnswerError reports questions left unanswered at submission.
// Missing holds zero-based question indexes in order.
type IncompleteAnswerError struct {
	Missing []int
}

func (e *IncompleteAnswerError) Error() string {
	return fmt.Sprintf("answer required for %d question(s)", len(e.Missing))
}

// Grade evaluates a complete answer mapping (question index -> selected
// choice index) against a quiz document. It is a pure function: the same
// inputs always produce the same result. Every question must be answered,
// otherwise grading aborts with *IncompleteAnswerError and no partial
// outcome is produced.
func Grade(doc quiz.Document, answers map[int]int) (Result, error) {
	var missing []int
	for i := range doc {
		if _, ok := answers[i]; !ok {
			missing = append(missing, i)
		}
	}
	if len(missing) > 0 {
		sort.Ints(missing)
		return Result{}, &IncompleteAnswerError{Missing: missing}
	}

	result := Result{
		Questions: make([]QuestionResult, len(doc)),
		Passed:    true,
	}

	for i, q := range doc {
		selected := answers[i]
		qr := QuestionResult{Selected: selected}

		if selected >= 0 && selected < len(q.Choices) {
			choice := q.Choices[selected]
			qr.Correct = choice.IsCorrect
			if !choice.IsCorrect {
				qr.Explanation = choice.Explanation
			}
		}

		if !qr.Correct {
			result.Passed = false
		}
		result.Questions[i] = qr
	}

	return result, nil
}
