package quiz

// QuestionPreview is the instructor-facing projection of one question
type QuestionPreview struct {
	Prompt        string   `json:"prompt"`
	CorrectChoice int      `json:"correct_choice"`
	Explanations  []string `json:"explanations,omitempty"`
}

// Summary is a pure projection of a document for list and preview UIs
type Summary struct {
	QuestionCount int               `json:"question_count"`
	Questions     []QuestionPreview `json:"questions"`
}

// Summarize builds the preview projection. No grading logic lives here.
func (d Document) Summarize() Summary {
	s := Summary{
		QuestionCount: len(d),
		Questions:     make([]QuestionPreview, 0, len(d)),
	}

	for _, q := range d {
		p := QuestionPreview{
			Prompt:        q.Prompt,
			CorrectChoice: q.CorrectChoice(),
		}
		for _, c := range q.Choices {
			if c.Explanation != "" {
				p.Explanations = append(p.Explanations, c.Explanation)
			}
		}
		s.Questions = append(s.Questions, p)
	}

	return s
}
