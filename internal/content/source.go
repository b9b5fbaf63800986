package content

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"strings"
	"time"
)

// Source retrieves the raw question file for a subject. Implementations
// return the file contents of questions/{subjectID}.json.
type Source interface {
	Fetch(ctx context.Context, subjectID string) ([]byte, error)
}

// HTTPSource fetches question files from a base URL over HTTP.
type HTTPSource struct {
	baseURL string
	client  *http.Client
}

// NewHTTPSource creates an HTTPSource rooted at baseURL. The expected layout
// is {baseURL}/questions/{subjectID}.json.
func NewHTTPSource(baseURL string) *HTTPSource {
	return &HTTPSource{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

func (s *HTTPSource) Fetch(ctx context.Context, subjectID string) ([]byte, error) {
	reqURL := fmt.Sprintf("%s/questions/%s.json", s.baseURL, subjectID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("content server returned status %d for %s", resp.StatusCode, reqURL)
	}

	return io.ReadAll(resp.Body)
}

// FSSource serves question files from a filesystem tree with the same
// questions/{subjectID}.json layout. Used for local content directories
// and in tests via fstest.MapFS.
type FSSource struct {
	fsys fs.FS
}

// NewFSSource creates an FSSource over fsys.
func NewFSSource(fsys fs.FS) *FSSource {
	return &FSSource{fsys: fsys}
}

func (s *FSSource) Fetch(_ context.Context, subjectID string) ([]byte, error) {
	return fs.ReadFile(s.fsys, fmt.Sprintf("questions/%s.json", subjectID))
}
