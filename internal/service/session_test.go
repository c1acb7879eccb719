package service

import (
	"math/rand"
	"testing"

	"vocabquiz/internal/domain"
	"vocabquiz/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(rngFn func() Rand, pools ...domain.GradePool) *QuizService {
	return NewQuizServiceWithRand(testutil.NewTestBank(pools...), testutil.NewTestLogger(), rngFn)
}

func seeded(seed int64) func() Rand {
	return func() Rand { return rand.New(rand.NewSource(seed)) }
}

func identity() Rand { return testutil.LastRand{} }

func TestSession_StartNotFinished(t *testing.T) {
	svc := newTestService(seeded(1), testutil.NewTestPool("G1", "a", "b", "c"))

	sess, err := svc.Start("G1")

	require.NoError(t, err)
	assert.False(t, sess.IsFinished())
	assert.Equal(t, domain.StateInProgress, sess.State())
	assert.Equal(t, "G1", sess.Grade())
	assert.Equal(t, 0, sess.Position())
	assert.ElementsMatch(t, testutil.NewTestPool("G1", "a", "b", "c").Entries, sess.order)
}

func TestSession_AdvanceToFinish(t *testing.T) {
	for _, size := range []int{1, 2, 5} {
		words := make([]string, 0, size)
		for i := 0; i < size; i++ {
			words = append(words, string(rune('a'+i)))
		}
		svc := newTestService(seeded(int64(size)), testutil.NewTestPool("G", words...))

		sess, err := svc.Start("G")
		require.NoError(t, err)

		for i := 0; i < size-1; i++ {
			require.NoError(t, sess.Advance())
		}
		assert.False(t, sess.IsFinished(), "size %d after %d advances", size, size-1)

		require.NoError(t, sess.Advance())
		assert.True(t, sess.IsFinished(), "size %d after %d advances", size, size)
		assert.Equal(t, domain.StateFinished, sess.State())
	}
}

func TestSession_SubmitAnswer(t *testing.T) {
	svc := newTestService(seeded(5), testutil.NewTestPool("G", "cat", "red", "sun", "sea"))
	sess, err := svc.Start("G")
	require.NoError(t, err)

	current, err := sess.CurrentQuestion()
	require.NoError(t, err)

	tests := []struct {
		name     string
		word     string
		expected domain.AnswerResult
	}{
		{
			name:     "correct word",
			word:     current.Word,
			expected: domain.AnswerResult{Correct: true, CorrectWord: current.Word},
		},
		{
			name:     "other word",
			word:     "definitely-wrong",
			expected: domain.AnswerResult{Correct: false, CorrectWord: current.Word},
		},
		{
			name:     "empty word",
			word:     "",
			expected: domain.AnswerResult{Correct: false, CorrectWord: current.Word},
		},
		{
			name:     "case differs",
			word:     "CAT",
			expected: domain.AnswerResult{Correct: false, CorrectWord: current.Word},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := sess.SubmitAnswer(tt.word)

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, result)
			assert.Equal(t, 0, sess.Position(), "answering must not advance")
		})
	}
}

func TestSession_Scenario(t *testing.T) {
	pool := domain.GradePool{Grade: "G1", Entries: []domain.WordEntry{
		{Word: "cat", Meaning: "animal"},
		{Word: "red", Meaning: "color"},
	}}
	svc := newTestService(identity, pool)

	sess, err := svc.Start("G1")
	require.NoError(t, err)

	options, err := sess.Options()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"cat", "red"}, options)

	result, err := sess.SubmitAnswer("cat")
	require.NoError(t, err)
	assert.Equal(t, domain.AnswerResult{Correct: true, CorrectWord: "cat"}, result)

	require.NoError(t, sess.Advance())
	assert.False(t, sess.IsFinished())

	require.NoError(t, sess.Advance())
	assert.True(t, sess.IsFinished())
}

func TestSession_Finished(t *testing.T) {
	svc := newTestService(seeded(2), testutil.NewTestPool("G", "only"))
	sess, err := svc.Start("G")
	require.NoError(t, err)
	require.NoError(t, sess.Advance())

	_, err = sess.CurrentQuestion()
	assert.ErrorIs(t, err, domain.ErrSessionFinished)

	_, err = sess.Options()
	assert.ErrorIs(t, err, domain.ErrSessionFinished)

	_, err = sess.SubmitAnswer("only")
	assert.ErrorIs(t, err, domain.ErrSessionFinished)

	err = sess.Advance()
	assert.ErrorIs(t, err, domain.ErrSessionFinished)
	assert.Equal(t, 1, sess.Position(), "position never passes the end")
}

func TestSession_Restart(t *testing.T) {
	words := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	svc := newTestService(seeded(8), testutil.NewTestPool("G", words...))
	sess, err := svc.Start("G")
	require.NoError(t, err)

	first := append([]domain.WordEntry(nil), sess.order...)
	for !sess.IsFinished() {
		require.NoError(t, sess.Advance())
	}

	changed := false
	for i := 0; i < 20; i++ {
		sess.Restart()

		assert.Equal(t, 0, sess.Position())
		assert.False(t, sess.IsFinished())
		assert.ElementsMatch(t, first, sess.order)
		if !assert.ObjectsAreEqual(first, sess.order) {
			changed = true
		}
	}
	assert.True(t, changed, "restart should reshuffle")
}

func TestSession_Progress(t *testing.T) {
	svc := newTestService(seeded(4), testutil.NewTestPool("G", "a", "b", "c"))
	sess, err := svc.Start("G")
	require.NoError(t, err)

	expected := [][2]int{{1, 3}, {2, 3}, {3, 3}, {3, 3}}
	for i, want := range expected {
		current, total := sess.Progress()
		assert.Equal(t, want, [2]int{current, total}, "step %d", i)
		_ = sess.Advance()
	}
}

func TestSession_OptionsUseWholeGrade(t *testing.T) {
	words := []string{"a", "b", "c", "d", "e", "f"}
	svc := newTestService(seeded(6), testutil.NewTestPool("G", words...))
	sess, err := svc.Start("G")
	require.NoError(t, err)

	for !sess.IsFinished() {
		current, err := sess.CurrentQuestion()
		require.NoError(t, err)

		options, err := sess.Options()
		require.NoError(t, err)
		assert.Len(t, options, MaxOptions)
		assert.Contains(t, options, current.Word)

		require.NoError(t, sess.Advance())
	}
}

func TestSession_ZeroValue(t *testing.T) {
	var sess Session

	assert.Equal(t, domain.StateNotStarted, sess.State())
	_, err := sess.CurrentQuestion()
	assert.ErrorIs(t, err, domain.ErrSessionFinished)
}
