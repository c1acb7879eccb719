package service

import (
	"errors"
	"sync"
	"time"

	"vocabquiz/internal/domain"

	"go.uber.org/zap"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrAnswerRequired  = errors.New("answer the current question first")
	ErrInvalidOption   = errors.New("option is not on the current question")
)

// Entry is a client's session together with what was last shown to it
type Entry struct {
	Session  *Session
	Screen   domain.Screen
	Options  []string
	Chosen   string
	Feedback *domain.AnswerResult

	mu       sync.Mutex
	lastSeen time.Time
}

// Refresh samples options for the current question,
// or switches to the result screen when the session is done
func (e *Entry) Refresh() error {
	e.Chosen = ""
	e.Feedback = nil

	if e.Session.IsFinished() {
		e.Screen = domain.ScreenResult
		e.Options = nil
		return nil
	}

	options, err := e.Session.Options()
	if err != nil {
		return err
	}
	e.Screen = domain.ScreenQuestion
	e.Options = options
	return nil
}

// Answer submits word for the current question.
// A repeated answer returns the first feedback unchanged.
func (e *Entry) Answer(word string) (domain.AnswerResult, error) {
	if e.Screen == domain.ScreenFeedback && e.Feedback != nil {
		return *e.Feedback, nil
	}

	result, err := e.Session.SubmitAnswer(word)
	if err != nil {
		return domain.AnswerResult{}, err
	}

	e.Screen = domain.ScreenFeedback
	e.Chosen = word
	e.Feedback = &result
	return result, nil
}

// AnswerOption submits the i-th option rendered for the question at position.
// Buttons left over from an earlier question are rejected with ErrInvalidOption.
func (e *Entry) AnswerOption(position, i int) (domain.AnswerResult, error) {
	if position != e.Session.Position() || e.Session.IsFinished() {
		return domain.AnswerResult{}, ErrInvalidOption
	}
	if e.Screen == domain.ScreenFeedback && e.Feedback != nil {
		return *e.Feedback, nil
	}
	if i < 0 || i >= len(e.Options) {
		return domain.AnswerResult{}, ErrInvalidOption
	}
	return e.Answer(e.Options[i])
}

// Next advances past an answered question
func (e *Entry) Next() error {
	if e.Session.IsFinished() {
		return domain.ErrSessionFinished
	}
	if e.Screen != domain.ScreenFeedback {
		return ErrAnswerRequired
	}
	if err := e.Session.Advance(); err != nil {
		return err
	}
	return e.Refresh()
}

// Restart reshuffles the same grade
func (e *Entry) Restart() error {
	e.Session.Restart()
	return e.Refresh()
}

// SessionStore keeps one session per client key
type SessionStore struct {
	mu      sync.Mutex
	entries map[string]*Entry
	now     func() time.Time
	logger  *zap.Logger
}

// NewSessionStore creates an empty store
func NewSessionStore(logger *zap.Logger) *SessionStore {
	return &SessionStore{
		entries: make(map[string]*Entry),
		now:     time.Now,
		logger:  logger,
	}
}

// Create stores sess under key, replacing any previous session,
// and prepares its first question
func (s *SessionStore) Create(key string, sess *Session) error {
	e := &Entry{Session: sess}
	if err := e.Refresh(); err != nil {
		return err
	}

	s.mu.Lock()
	e.lastSeen = s.now()
	s.entries[key] = e
	s.mu.Unlock()

	return nil
}

// Do runs fn with exclusive access to the entry for key
func (s *SessionStore) Do(key string, fn func(e *Entry) error) error {
	s.mu.Lock()
	e, ok := s.entries[key]
	if ok {
		e.lastSeen = s.now()
	}
	s.mu.Unlock()

	if !ok {
		return ErrSessionNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e)
}

// Delete discards the session for key
func (s *SessionStore) Delete(key string) {
	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
}

// Len returns the number of live sessions
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Cleanup evicts sessions idle for longer than maxIdle
func (s *SessionStore) Cleanup(maxIdle time.Duration) int {
	cutoff := s.now().Add(-maxIdle)

	s.mu.Lock()
	removed := 0
	for key, e := range s.entries {
		if e.lastSeen.Before(cutoff) {
			delete(s.entries, key)
			removed++
		}
	}
	s.mu.Unlock()

	if removed > 0 {
		s.logger.Info("Evicted idle quiz sessions", zap.Int("count", removed))
	}
	return removed
}
