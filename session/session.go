package session

import (
	"sync"

	"polarplotter/cache"
	"polarplotter/models"
)

// DefaultSessionID is used when a client does not send an X-Session-ID header.
const DefaultSessionID = "default"

// Session is the per-user state: the current table snapshot, the style
// configuration, and which data source is active. Each session owns its own
// copies; nothing is shared between sessions.
type Session struct {
	ID     string
	Style  models.StyleConfig
	Table  models.InputTable
	Source string
}

// ExampleActive reports whether the built-in example dataset is in use, which
// forces the plot title.
func (s *Session) ExampleActive() bool {
	return s.Source == models.SourceExample
}

// Manager hands out sessions backed by a TTL cache. New sessions start with
// the example dataset loaded and the default style, matching the form's
// initial state.
type Manager struct {
	mu      sync.Mutex
	cache   *cache.Cache
	example models.InputTable
}

func NewManager(c *cache.Cache, example models.InputTable) *Manager {
	return &Manager{
		cache:   c,
		example: example,
	}
}

// GetOrCreate returns the session for id, creating it on first use. Every
// access refreshes the session's TTL.
func (m *Manager) GetOrCreate(id string) *Session {
	if id == "" {
		id = DefaultSessionID
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if v, ok := m.cache.Get(id); ok {
		sess := v.(*Session)
		m.cache.SetDefault(id, sess)
		return sess
	}

	sess := &Session{
		ID:     id,
		Style:  models.DefaultStyle(),
		Table:  m.example.Clone(),
		Source: models.SourceExample,
	}
	m.cache.SetDefault(id, sess)
	return sess
}

// UseExample switches the session back to the built-in example dataset.
func (m *Manager) UseExample(sess *Session) {
	sess.Table = m.example.Clone()
	sess.Source = models.SourceExample
}
