package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWordBank(t *testing.T) {
	tests := []struct {
		name        string
		pools       []GradePool
		expectedErr error
	}{
		{
			name: "valid pools",
			pools: []GradePool{
				{Grade: "Grade1", Entries: []WordEntry{{Word: "apple", Meaning: "a fruit"}}},
				{Grade: "Grade2", Entries: []WordEntry{{Word: "apple", Meaning: "りんご"}}},
			},
		},
		{
			name:  "no pools",
			pools: nil,
		},
		{
			name: "duplicate grade",
			pools: []GradePool{
				{Grade: "Grade1"},
				{Grade: "Grade1"},
			},
			expectedErr: ErrDuplicateGrade,
		},
		{
			name: "duplicate word in grade",
			pools: []GradePool{
				{Grade: "Grade1", Entries: []WordEntry{
					{Word: "bank", Meaning: "river side"},
					{Word: "bank", Meaning: "money place"},
				}},
			},
			expectedErr: ErrDuplicateWord,
		},
		{
			name:        "empty grade label",
			pools:       []GradePool{{Grade: ""}},
			expectedErr: ErrEmptyGrade,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bank, err := NewWordBank(tt.pools)

			switch {
			case tt.expectedErr != nil:
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, bank)
			default:
				assert.NoError(t, err)
				assert.NotNil(t, bank)
			}
		})
	}
}

func TestWordBank_GradeLabels_KeepsOrder(t *testing.T) {
	bank, err := NewWordBank([]GradePool{
		{Grade: "中1"},
		{Grade: "Grade3"},
		{Grade: "A"},
	})
	require.NoError(t, err)

	labels := bank.GradeLabels()
	assert.Equal(t, []string{"中1", "Grade3", "A"}, labels)

	labels[0] = "changed"
	assert.Equal(t, "中1", bank.GradeLabels()[0])
}

func TestWordBank_EntriesFor(t *testing.T) {
	entries := []WordEntry{
		{Word: "cat", Meaning: "animal"},
		{Word: "red", Meaning: "color"},
	}
	bank, err := NewWordBank([]GradePool{{Grade: "G1", Entries: entries}})
	require.NoError(t, err)

	got, err := bank.EntriesFor("G1")
	require.NoError(t, err)
	assert.Equal(t, entries, got)

	got[0].Word = "dog"
	again, _ := bank.EntriesFor("G1")
	assert.Equal(t, "cat", again[0].Word)

	_, err = bank.EntriesFor("G2")
	assert.ErrorIs(t, err, ErrUnknownGrade)

	assert.True(t, bank.HasGrade("G1"))
	assert.False(t, bank.HasGrade("G2"))
	assert.Equal(t, 2, bank.WordCount())
}
