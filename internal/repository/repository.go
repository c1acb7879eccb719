package repository

import (
	"context"

	"vocabquiz/internal/domain"
)

// WordSource loads the whole word dataset once at startup
type WordSource interface {
	LoadWords(ctx context.Context) (*domain.WordBank, error)
}
