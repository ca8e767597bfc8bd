package player

import (
	"errors"
	"ilearn/quiz"
)

// Section is one unit of course content as the player sees it
type Section struct {
	ID          uint
	Title       string
	ContentType string // video, reading, quiz
	ContentData string
}

var (
	// ErrNotQuiz is returned when a quiz operation targets a non-quiz section
	ErrNotQuiz = errors.New("current section is not a quiz")
	// ErrQuizGate is returned when Next is used on a quiz section; quizzes
	// advance through SubmitQuiz, not the Next button
	ErrQuizGate = errors.New("answer the quiz to continue")
	// ErrQuestionLocked is returned when selecting an answer for a question
	// already answered correctly
	ErrQuestionLocked = errors.New("question is locked")
)

// Session sequences a learner through a course's ordered sections and owns
// the answer/grade/retry cycle for quiz sections. All state is held here
// explicitly; transitions never touch anything outside the session.
type Session struct {
	sections  []Section
	index     int
	completed bool

	// per section index: question index -> selected choice / locked flag
	selections map[int]map[int]int
	locked     map[int]map[int]bool
}

// NewSession starts a session at the first section. A course with no
// sections yet is immediately complete ("no content" is not an error).
func NewSession(sections []Section) *Session {
	return &Session{
		sections:   sections,
		completed:  len(sections) == 0,
		selections: make(map[int]map[int]int),
		locked:     make(map[int]map[int]bool),
	}
}

// Current returns the active section; ok is false for an empty course
func (s *Session) Current() (Section, bool) {
	if len(s.sections) == 0 {
		return Section{}, false
	}
	return s.sections[s.index], true
}

// Index returns the zero-based position of the active section
func (s *Session) Index() int {
	return s.index
}

// Completed reports whether the learner has finished the last section
func (s *Session) Completed() bool {
	return s.completed
}

// CurrentQuiz parses the active section's quiz document. A *quiz.ParseError
// means the stored content is corrupt; the caller renders a placeholder and
// the rest of the course stays navigable. A payload that parses to zero
// questions ("[]", "null") is treated as corrupt too, since authoring
// validation never stores one and there is nothing to grade.
func (s *Session) CurrentQuiz() (quiz.Document, error) {
	cur, ok := s.Current()
	if !ok || cur.ContentType != "quiz" {
		return nil, ErrNotQuiz
	}

	doc, err := quiz.Parse(cur.ContentData)
	if err != nil {
		return nil, err
	}
	if len(doc) == 0 {
		return nil, &quiz.ParseError{Reason: "quiz has no questions"}
	}
	return doc, nil
}

// Next advances past a video or reading section. Quiz sections advance via
// SubmitQuiz instead, unless their payload is corrupt; a broken quiz never
// blocks navigation. At the last section Next marks the session complete.
func (s *Session) Next() error {
	cur, ok := s.Current()
	if !ok {
		return nil
	}

	if cur.ContentType == "quiz" {
		if _, err := s.CurrentQuiz(); err == nil {
			return ErrQuizGate
		}
	}

	s.advance()
	return nil
}

// Back returns focus to the previous section without resetting any answer
// state recorded for sections along the way
func (s *Session) Back() {
	if s.index > 0 {
		s.index--
	}
}

// Select records an answer choice for a question of the active quiz
func (s *Session) Select(question, choice int) error {
	if _, err := s.CurrentQuiz(); err != nil {
		return err
	}
	if s.locked[s.index][question] {
		return ErrQuestionLocked
	}

	if s.selections[s.index] == nil {
		s.selections[s.index] = make(map[int]int)
	}
	s.selections[s.index][question] = choice
	return nil
}

// Selections returns a copy of the recorded answers for the active section
func (s *Session) Selections() map[int]int {
	out := make(map[int]int, len(s.selections[s.index]))
	for q, c := range s.selections[s.index] {
		out[q] = c
	}
	return out
}

// SubmitQuiz grades the recorded answers against the active quiz document.
// An incomplete answer set aborts with *IncompleteAnswerError and no state
// change. A fully correct result locks the quiz and auto-advances; anything
// less keeps the learner at the same section with retry available.
func (s *Session) SubmitQuiz() (Result, error) {
	doc, err := s.CurrentQuiz()
	if err != nil {
		return Result{}, err
	}

	result, err := Grade(doc, s.selections[s.index])
	if err != nil {
		return Result{}, err
	}

	locks := s.locked[s.index]
	if locks == nil {
		locks = make(map[int]bool)
		s.locked[s.index] = locks
	}
	for i, qr := range result.Questions {
		if qr.Correct {
			locks[i] = true
		}
	}

	if result.Passed {
		s.advance()
	}
	return result, nil
}

// Retry clears all selection and lock state for the active quiz, restoring
// an unanswered form at the same index. Offered after a pass as well.
func (s *Session) Retry() {
	cur, ok := s.Current()
	if !ok || cur.ContentType != "quiz" {
		return
	}
	delete(s.selections, s.index)
	delete(s.locked, s.index)
	s.completed = false
}

func (s *Session) advance() {
	if s.index+1 < len(s.sections) {
		s.index++
		return
	}
	s.completed = true
}
