package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/omark/quizdeck/internal/quiz"
)

// sessionKey is the kv key holding the in-progress quiz snapshot.
const sessionKey = "sessionState"

// SaveSession persists an in-progress quiz snapshot for later resume.
func (s *Store) SaveSession(ctx context.Context, snap quiz.Snapshot) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode session snapshot: %w", err)
	}
	return s.Put(ctx, sessionKey, string(raw))
}

// LoadSession returns a resumable quiz snapshot, or nil when none exists.
// Snapshots older than the resume window are discarded on load; corrupt
// snapshots are likewise discarded rather than surfaced.
func (s *Store) LoadSession(ctx context.Context, now time.Time) (*quiz.Snapshot, error) {
	raw, ok, err := s.Get(ctx, sessionKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	var snap quiz.Snapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		_ = s.Delete(ctx, sessionKey)
		return nil, nil
	}
	if snap.Expired(now) {
		_ = s.Delete(ctx, sessionKey)
		return nil, nil
	}
	return &snap, nil
}

// ClearSession removes any stored quiz snapshot.
func (s *Store) ClearSession(ctx context.Context) error {
	return s.Delete(ctx, sessionKey)
}
