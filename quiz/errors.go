package quiz

import "fmt"

// ValidationError reports a structural defect in a candidate quiz document.
// Question and Choice are zero-based indexes; -1 means the defect is not
// tied to that level.
type ValidationError struct {
	Question int
	Choice   int
	Reason   string
}

func (e *ValidationError) Error() string {
	if e.Question < 0 {
		return e.Reason
	}
	if e.Choice >= 0 {
		return fmt.Sprintf("question %d choice %d %s", e.Question+1, e.Choice+1, e.Reason)
	}
	return fmt.Sprintf("question %d %s", e.Question+1, e.Reason)
}

// ParseError reports stored quiz content that is not a well-formed document
type ParseError struct {
	Reason string
}

func (e *ParseError) Error() string {
	return "invalid quiz content: " + e.Reason
}

func correctCountReason(n int) string {
	return fmt.Sprintf("has %d correct choices, exactly 1 required", n)
}
