package testutil

import (
	"context"

	"vocabquiz/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockWordSource is a mock for repository.WordSource
type MockWordSource struct {
	mock.Mock
}

func (m *MockWordSource) LoadWords(ctx context.Context) (*domain.WordBank, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WordBank), args.Error(1)
}
