// Package editor manages edit sessions. A session holds an independent
// working copy of one page's title and document; the store is untouched
// until the session is saved, and a discarded session leaves no trace.
package editor

import (
	"context"
	"errors"
	"sync"

	"pagehelm/internal/pageconfig"
	"pagehelm/internal/render"
	"pagehelm/internal/store"
	"pagehelm/models"
)

// ErrNoSession reports an operation against a token with no open session.
var ErrNoSession = errors.New("editor: no open session")

// Session is the working state of one edit session.
type Session struct {
	PageID int64
	Title  string
	Config pageconfig.PageConfig
	// Focus is the section currently selected in the editor panel. It
	// only drives the preview scroll cue.
	Focus pageconfig.SectionKey
}

// Manager tracks the open edit sessions, keyed by the caller's session
// token. One token holds at most one open session.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

// NewManager builds an empty session table.
func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*Session)}
}

// Open starts an edit session for a page, seeding the working copy from
// the stored title and document (or the defaults for a page that has never
// been edited). An existing session under the same token is replaced.
func (m *Manager) Open(token string, page *models.Page) (Session, error) {
	cfg, err := store.PageConfigOf(page)
	if err != nil {
		return Session{}, err
	}
	session := &Session{
		PageID: page.PageID,
		Title:  page.Title,
		Config: cfg,
		Focus:  pageconfig.SectionHero,
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[token] = session
	return *session, nil
}

// Session returns a copy of the open session for a token.
func (m *Manager) Session(token string) (Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	session, ok := m.sessions[token]
	if !ok {
		return Session{}, false
	}
	return *session, true
}

func (m *Manager) mutate(token string, apply func(*Session) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	session, ok := m.sessions[token]
	if !ok {
		return ErrNoSession
	}
	return apply(session)
}

// SetTitle updates the working title.
func (m *Manager) SetTitle(token, title string) error {
	return m.mutate(token, func(s *Session) error {
		s.Title = title
		return nil
	})
}

// UpdateField applies a section-scoped field edit to the working copy.
func (m *Manager) UpdateField(token string, section pageconfig.SectionKey, field string, value any) error {
	return m.mutate(token, func(s *Session) error {
		updated, err := pageconfig.UpdateField(s.Config, section, field, value)
		if err != nil {
			return err
		}
		s.Config = updated
		return nil
	})
}

// UpdateItem applies a list-item-scoped field edit to the working copy.
func (m *Manager) UpdateItem(token string, section pageconfig.SectionKey, index int, field string, value any) error {
	return m.mutate(token, func(s *Session) error {
		updated, err := pageconfig.UpdateListItem(s.Config, section, index, field, value)
		if err != nil {
			return err
		}
		s.Config = updated
		return nil
	})
}

// AddItem appends a list item to a section of the working copy.
func (m *Manager) AddItem(token string, section pageconfig.SectionKey, item any) error {
	return m.mutate(token, func(s *Session) error {
		updated, err := pageconfig.InsertListItem(s.Config, section, item)
		if err != nil {
			return err
		}
		s.Config = updated
		return nil
	})
}

// RemoveItem drops a list item from a section of the working copy.
func (m *Manager) RemoveItem(token string, section pageconfig.SectionKey, index int) error {
	return m.mutate(token, func(s *Session) error {
		updated, err := pageconfig.RemoveListItem(s.Config, section, index)
		if err != nil {
			return err
		}
		s.Config = updated
		return nil
	})
}

// SetFocus records the focused section and returns the preview anchor the
// UI should scroll to. The anchor is deterministic so tooling can target
// it.
func (m *Manager) SetFocus(token string, section pageconfig.SectionKey) (string, error) {
	if _, err := pageconfig.ParseSectionKey(string(section)); err != nil {
		return "", err
	}
	err := m.mutate(token, func(s *Session) error {
		s.Focus = section
		return nil
	})
	if err != nil {
		return "", err
	}
	return render.Anchor(section), nil
}

// Save commits the working copy into the store, replacing the page's title
// and document atomically, and closes the session. The session survives a
// failed save so nothing is lost.
func (m *Manager) Save(ctx context.Context, token string, st *store.Store) error {
	m.mu.Lock()
	session, ok := m.sessions[token]
	m.mu.Unlock()
	if !ok {
		return ErrNoSession
	}

	if err := st.SavePage(ctx, session.PageID, session.Title, session.Config); err != nil {
		return err
	}

	m.mu.Lock()
	delete(m.sessions, token)
	m.mu.Unlock()
	return nil
}

// Discard closes the session without touching the store.
func (m *Manager) Discard(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, token)
}
