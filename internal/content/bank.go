package content

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrContentUnavailable signals that a subject's question file could not be
// fetched or parsed. Callers get an empty set alongside it and decide how to
// degrade; they must not start a session with zero questions.
var ErrContentUnavailable = errors.New("question content unavailable")

// Bank loads and caches question sets per subject. Results are cached for
// the lifetime of the Bank so repeated lecture starts within one run do not
// refetch, and a second request for a subject already being loaded reuses
// the first load's result.
type Bank struct {
	source Source

	mu    sync.Mutex
	cache map[string][]Question
	calls map[string]*loadCall
}

type loadCall struct {
	done      chan struct{}
	questions []Question
	err       error
}

// NewBank creates a Bank backed by the given source.
func NewBank(source Source) *Bank {
	return &Bank{
		source: source,
		cache:  make(map[string][]Question),
		calls:  make(map[string]*loadCall),
	}
}

// QuestionsFor returns the subject's questions, filtered to the lecture when
// lectureID is non-empty. An empty filtered result is returned as-is; any
// fallback to the unfiltered set is the caller's policy, not the bank's.
// On fetch or parse failure it returns an empty slice and an error wrapping
// ErrContentUnavailable.
func (b *Bank) QuestionsFor(ctx context.Context, subjectID, lectureID string) ([]Question, error) {
	questions, err := b.load(ctx, subjectID)
	if err != nil {
		return nil, err
	}
	if lectureID == "" {
		return questions, nil
	}

	var filtered []Question
	for _, q := range questions {
		if q.LectureID == lectureID {
			filtered = append(filtered, q)
		}
	}
	return filtered, nil
}

// load returns the cached question set for a subject, fetching at most once
// per subject even under concurrent calls.
func (b *Bank) load(ctx context.Context, subjectID string) ([]Question, error) {
	b.mu.Lock()
	if cached, ok := b.cache[subjectID]; ok {
		b.mu.Unlock()
		return cached, nil
	}
	if call, ok := b.calls[subjectID]; ok {
		b.mu.Unlock()
		select {
		case <-call.done:
			return call.questions, call.err
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	call := &loadCall{done: make(chan struct{})}
	b.calls[subjectID] = call
	b.mu.Unlock()

	call.questions, call.err = b.fetch(ctx, subjectID)
	close(call.done)

	b.mu.Lock()
	delete(b.calls, subjectID)
	if call.err == nil {
		b.cache[subjectID] = call.questions
	}
	b.mu.Unlock()

	return call.questions, call.err
}

func (b *Bank) fetch(ctx context.Context, subjectID string) ([]Question, error) {
	raw, err := b.source.Fetch(ctx, subjectID)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch %s: %v", ErrContentUnavailable, subjectID, err)
	}
	questions, err := decodeQuestionFile(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrContentUnavailable, subjectID, err)
	}
	return questions, nil
}
