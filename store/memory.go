package store

import (
	"sync"

	"github.com/indigo-web/snip/http/status"
)

// CandidateFunc returns the code to try for the url at the given attempt.
type CandidateFunc func(url string, attempt int) string

// Memory maps short codes to URLs. It lives as long as the process does: there's neither
// persistence nor eviction. Every access goes through a single mutex.
type Memory struct {
	mu    sync.Mutex
	links map[string]string
}

func NewMemory() *Memory {
	return &Memory{
		links: make(map[string]string),
	}
}

// Lookup returns the URL stored under the code.
func (m *Memory) Lookup(code string) (url string, found bool) {
	m.mu.Lock()
	url, found = m.links[code]
	m.mu.Unlock()

	return url, found
}

// Shorten stores the url under the first candidate code which is either free or already
// points to the same url. Attempts go from 0 to maxRetries inclusively, so the candidate
// function is called at most maxRetries+1 times. The whole loop holds the lock, so two
// concurrent calls can neither assign one code to different urls nor both pass the check
// for the same url.
func (m *Memory) Shorten(url string, maxRetries int, candidate CandidateFunc) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for attempt := 0; attempt <= maxRetries; attempt++ {
		code := candidate(url, attempt)

		stored, taken := m.links[code]
		if !taken {
			m.links[code] = url
			return code, nil
		}

		if stored == url {
			return code, nil
		}
	}

	return "", status.ErrCollisionLimit
}

// Len returns the number of stored links.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.links)
}
