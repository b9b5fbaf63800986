package content

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"testing/fstest"
)

const validFile = `[
  {
    "lecture": "1",
    "question": "q1",
    "category": "c",
    "difficulty": "easy",
    "hint": "h",
    "options": ["a", "b"],
    "correct": 0
  },
  {
    "lecture": "2",
    "question": "q2",
    "category": "c",
    "difficulty": "hard",
    "hint": "h",
    "options": ["a", "b", "c"],
    "correct": 2
  }
]`

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"questions/crypto.json": {Data: []byte(validFile)},
		"questions/bad.json":    {Data: []byte(`{"not": "an array"}`)},
	}
}

func TestQuestionsForAllLectures(t *testing.T) {
	b := NewBank(NewFSSource(testFS()))

	qs, err := b.QuestionsFor(context.Background(), "crypto", "")
	if err != nil {
		t.Fatalf("QuestionsFor: %v", err)
	}
	if len(qs) != 2 {
		t.Errorf("got %d questions, want 2", len(qs))
	}
}

func TestQuestionsForFiltersByLecture(t *testing.T) {
	b := NewBank(NewFSSource(testFS()))

	qs, err := b.QuestionsFor(context.Background(), "crypto", "2")
	if err != nil {
		t.Fatalf("QuestionsFor: %v", err)
	}
	if len(qs) != 1 || qs[0].Prompt != "q2" {
		t.Errorf("filtered = %+v, want only q2", qs)
	}
}

func TestQuestionsForEmptyFilterReturnedAsIs(t *testing.T) {
	b := NewBank(NewFSSource(testFS()))

	qs, err := b.QuestionsFor(context.Background(), "crypto", "99")
	if err != nil {
		t.Fatalf("QuestionsFor: %v", err)
	}
	if len(qs) != 0 {
		t.Errorf("got %d questions for unknown lecture, want 0", len(qs))
	}
}

func TestQuestionsForMissingSubject(t *testing.T) {
	b := NewBank(NewFSSource(testFS()))

	qs, err := b.QuestionsFor(context.Background(), "nope", "")
	if !errors.Is(err, ErrContentUnavailable) {
		t.Errorf("err = %v, want ErrContentUnavailable", err)
	}
	if len(qs) != 0 {
		t.Errorf("got %d questions alongside the error, want 0", len(qs))
	}
}

func TestQuestionsForInvalidFile(t *testing.T) {
	b := NewBank(NewFSSource(testFS()))

	_, err := b.QuestionsFor(context.Background(), "bad", "")
	if !errors.Is(err, ErrContentUnavailable) {
		t.Errorf("err = %v, want ErrContentUnavailable", err)
	}
}

// countingSource counts fetches so caching can be observed.
type countingSource struct {
	inner Source
	n     atomic.Int64
}

func (s *countingSource) Fetch(ctx context.Context, subjectID string) ([]byte, error) {
	s.n.Add(1)
	return s.inner.Fetch(ctx, subjectID)
}

func TestBankCachesPerSubject(t *testing.T) {
	src := &countingSource{inner: NewFSSource(testFS())}
	b := NewBank(src)
	ctx := context.Background()

	if _, err := b.QuestionsFor(ctx, "crypto", ""); err != nil {
		t.Fatal(err)
	}
	if _, err := b.QuestionsFor(ctx, "crypto", "1"); err != nil {
		t.Fatal(err)
	}
	if _, err := b.QuestionsFor(ctx, "crypto", "2"); err != nil {
		t.Fatal(err)
	}

	if got := src.n.Load(); got != 1 {
		t.Errorf("fetched %d times, want 1", got)
	}
}

func TestBankFailureNotCached(t *testing.T) {
	src := &countingSource{inner: NewFSSource(testFS())}
	b := NewBank(src)
	ctx := context.Background()

	_, _ = b.QuestionsFor(ctx, "nope", "")
	_, _ = b.QuestionsFor(ctx, "nope", "")

	if got := src.n.Load(); got != 2 {
		t.Errorf("fetched %d times, want 2 (failures are retried)", got)
	}
}

func TestBankConcurrentLoadsSingleFetch(t *testing.T) {
	src := &countingSource{inner: NewFSSource(testFS())}
	b := NewBank(src)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := b.QuestionsFor(ctx, "crypto", ""); err != nil {
				t.Errorf("QuestionsFor: %v", err)
			}
		}()
	}
	wg.Wait()

	if got := src.n.Load(); got != 1 {
		t.Errorf("fetched %d times under concurrency, want 1", got)
	}
}
