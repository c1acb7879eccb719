package service

import "vocabquiz/internal/domain"

// Session is one run through a shuffled question sequence for a grade.
// It is not safe for concurrent use; SessionStore serialises access.
type Session struct {
	grade    string
	pool     []domain.WordEntry
	order    []domain.WordEntry
	position int
	rng      Rand
}

func newSession(grade string, pool []domain.WordEntry, rng Rand) *Session {
	s := &Session{
		grade: grade,
		pool:  pool,
		rng:   rng,
	}
	s.Restart()
	return s
}

// Grade returns the session's grade label
func (s *Session) Grade() string {
	return s.grade
}

// CurrentQuestion returns the entry being asked
func (s *Session) CurrentQuestion() (domain.WordEntry, error) {
	if s.IsFinished() {
		return domain.WordEntry{}, domain.ErrSessionFinished
	}
	return s.order[s.position], nil
}

// Options samples the choices for the current question from the whole grade
func (s *Session) Options() ([]string, error) {
	current, err := s.CurrentQuestion()
	if err != nil {
		return nil, err
	}
	return SampleOptions(s.rng, current, s.pool), nil
}

// SubmitAnswer checks word against the current question without advancing
func (s *Session) SubmitAnswer(word string) (domain.AnswerResult, error) {
	current, err := s.CurrentQuestion()
	if err != nil {
		return domain.AnswerResult{}, err
	}
	return domain.AnswerResult{
		Correct:     word == current.Word,
		CorrectWord: current.Word,
	}, nil
}

// Advance moves to the next question
func (s *Session) Advance() error {
	if s.IsFinished() {
		return domain.ErrSessionFinished
	}
	s.position++
	return nil
}

// Restart reshuffles the grade and goes back to the first question
func (s *Session) Restart() {
	s.order = Shuffle(s.rng, s.pool)
	s.position = 0
}

// IsFinished reports whether every question has been passed
func (s *Session) IsFinished() bool {
	return s.position >= len(s.order)
}

// State returns the lifecycle state
func (s *Session) State() domain.SessionState {
	switch {
	case s.rng == nil:
		return domain.StateNotStarted
	case s.IsFinished():
		return domain.StateFinished
	default:
		return domain.StateInProgress
	}
}

// Progress returns the 1-based number of the current question and the total.
// A finished session reports (total, total).
func (s *Session) Progress() (current, total int) {
	total = len(s.order)
	if s.position >= total {
		return total, total
	}
	return s.position + 1, total
}

// Position returns the 0-based index of the current question
func (s *Session) Position() int {
	return s.position
}
