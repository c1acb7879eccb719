package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"vocabquiz/internal/domain"
)

// WordRepo implements repository.WordSource on top of the grades and words tables
type WordRepo struct {
	db *sql.DB
}

// NewWordRepo creates a new word repository
func NewWordRepo(db *sql.DB) *WordRepo {
	return &WordRepo{db: db}
}

// LoadWords reads every grade with its words.
// Grades without words are kept so they show up as empty pools.
func (r *WordRepo) LoadWords(ctx context.Context) (*domain.WordBank, error) {
	query := `
		SELECT g.label, w.word, w.meaning
		FROM grades g
		LEFT JOIN words w ON w.grade_id = g.id
		ORDER BY g.position, g.id, w.position, w.id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query words: %w", err)
	}
	defer rows.Close()

	var pools []domain.GradePool
	for rows.Next() {
		var label string
		var word, meaning sql.NullString
		if err := rows.Scan(&label, &word, &meaning); err != nil {
			return nil, fmt.Errorf("scan word: %w", err)
		}

		if len(pools) == 0 || pools[len(pools)-1].Grade != label {
			pools = append(pools, domain.GradePool{Grade: label})
		}

		// LEFT JOIN row of a grade without words
		if !word.Valid {
			continue
		}

		last := &pools[len(pools)-1]
		last.Entries = append(last.Entries, domain.WordEntry{
			Word:    word.String,
			Meaning: meaning.String,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate words: %w", err)
	}

	return domain.NewWordBank(pools)
}

// CountWords returns the number of stored words
func (r *WordRepo) CountWords(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM words`).Scan(&count)
	return count, err
}
