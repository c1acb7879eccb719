package service

import (
	"context"
	"fmt"

	"vocabquiz/internal/domain"
	"vocabquiz/internal/repository"

	"go.uber.org/zap"
)

// LoadWordBank loads the dataset once. Every failure is an ErrDataLoad.
func LoadWordBank(ctx context.Context, source repository.WordSource, logger *zap.Logger) (*domain.WordBank, error) {
	bank, err := source.LoadWords(ctx)
	if err != nil {
		logger.Error("Failed to load words", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", domain.ErrDataLoad, err)
	}
	if bank == nil {
		logger.Error("Word source returned no data")
		return nil, fmt.Errorf("%w: source returned no data", domain.ErrDataLoad)
	}

	logger.Info("Words loaded",
		zap.Int("grades", len(bank.GradeLabels())),
		zap.Int("words", bank.WordCount()),
	)

	return bank, nil
}
