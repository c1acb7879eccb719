package service

import (
	"errors"
	"fmt"
	"math/rand"

	"vocabquiz/internal/domain"

	"go.uber.org/zap"
)

// QuizService starts quiz sessions over a loaded word bank
type QuizService struct {
	bank    *domain.WordBank
	loadErr error
	newRand func() Rand
	logger  *zap.Logger
}

// NewQuizService creates a quiz service. Every session gets its own generator.
func NewQuizService(bank *domain.WordBank, logger *zap.Logger) *QuizService {
	return NewQuizServiceWithRand(bank, logger, func() Rand {
		return rand.New(rand.NewSource(rand.Int63()))
	})
}

// NewQuizServiceWithRand creates a quiz service with a custom generator factory
func NewQuizServiceWithRand(bank *domain.WordBank, logger *zap.Logger, newRand func() Rand) *QuizService {
	return &QuizService{
		bank:    bank,
		newRand: newRand,
		logger:  logger,
	}
}

// NewUnavailableQuizService creates a service for a failed word load.
// Every call returns loadErr.
func NewUnavailableQuizService(loadErr error, logger *zap.Logger) *QuizService {
	if loadErr == nil {
		loadErr = domain.ErrDataLoad
	}
	if !errors.Is(loadErr, domain.ErrDataLoad) {
		loadErr = fmt.Errorf("%w: %w", domain.ErrDataLoad, loadErr)
	}
	return &QuizService{
		loadErr: loadErr,
		logger:  logger,
	}
}

// Available reports whether words were loaded
func (s *QuizService) Available() bool {
	return s.loadErr == nil && s.bank != nil
}

// Grades returns the grade labels in source order
func (s *QuizService) Grades() ([]string, error) {
	if !s.Available() {
		return nil, s.loadErr
	}
	return s.bank.GradeLabels(), nil
}

// Start creates a session for grade with a freshly shuffled order
func (s *QuizService) Start(grade string) (*Session, error) {
	if !s.Available() {
		return nil, s.loadErr
	}

	entries, err := s.bank.EntriesFor(grade)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: %q", domain.ErrEmptyPool, grade)
	}

	s.logger.Debug("Quiz session started",
		zap.String("grade", grade),
		zap.Int("questions", len(entries)),
	)

	return newSession(grade, entries, s.newRand()), nil
}
