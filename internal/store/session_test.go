package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omark/quizdeck/internal/content"
	"github.com/omark/quizdeck/internal/quiz"
)

func testSnapshot(startedAt time.Time) quiz.Snapshot {
	return quiz.Snapshot{
		AttemptID: "attempt-1",
		SubjectID: "crypto",
		LectureID: "2",
		Questions: []content.Question{
			{
				LectureID:    "2",
				Prompt:       "What does AES stand for?",
				Category:     "Symmetric Ciphers",
				Difficulty:   content.DifficultyEasy,
				Hint:         "It replaced DES.",
				Options:      []string{"Advanced Encryption Standard", "Asymmetric Encryption Scheme"},
				CorrectIndex: 0,
			},
		},
		CurrentIndex: 0,
		Answers:      []int{quiz.Unanswered},
		StartedAt:    startedAt,
	}
}

func TestLoadSessionNoneSaved(t *testing.T) {
	s := openTestStore(t)

	snap, err := s.LoadSession(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Nil(t, snap)
}

func TestSaveLoadSessionRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	now := time.Now()

	saved := testSnapshot(now.Add(-time.Hour))
	require.NoError(t, s.SaveSession(ctx, saved))

	got, err := s.LoadSession(ctx, now)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, saved.AttemptID, got.AttemptID)
	assert.Equal(t, saved.SubjectID, got.SubjectID)
	assert.Equal(t, saved.LectureID, got.LectureID)
	assert.Equal(t, saved.Answers, got.Answers)
	require.Len(t, got.Questions, 1)
	assert.Equal(t, saved.Questions[0].Prompt, got.Questions[0].Prompt)
}

func TestLoadSessionDiscardsExpired(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, s.SaveSession(ctx, testSnapshot(now.Add(-quiz.ResumeWindow))))

	got, err := s.LoadSession(ctx, now)
	require.NoError(t, err)
	assert.Nil(t, got)

	// The expired snapshot is also removed from the store.
	_, ok, err := s.Get(ctx, sessionKey)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLoadSessionDiscardsCorrupt(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, sessionKey, "{not json"))

	got, err := s.LoadSession(ctx, time.Now())
	require.NoError(t, err)
	assert.Nil(t, got)

	_, ok, err := s.Get(ctx, sessionKey)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSaveSessionReplacesPrevious(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	now := time.Now()

	first := testSnapshot(now)
	require.NoError(t, s.SaveSession(ctx, first))

	second := testSnapshot(now)
	second.AttemptID = "attempt-2"
	second.Answers = []int{0}
	require.NoError(t, s.SaveSession(ctx, second))

	got, err := s.LoadSession(ctx, now)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "attempt-2", got.AttemptID)
	assert.Equal(t, []int{0}, got.Answers)
}

func TestClearSession(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, s.SaveSession(ctx, testSnapshot(now)))
	require.NoError(t, s.ClearSession(ctx))

	got, err := s.LoadSession(ctx, now)
	require.NoError(t, err)
	assert.Nil(t, got)

	// Clearing with nothing stored is fine.
	assert.NoError(t, s.ClearSession(ctx))
}
