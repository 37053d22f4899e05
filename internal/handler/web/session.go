package web

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/cmlabs-hris/employee-portal/internal/portal"
	"github.com/google/uuid"
)

const sessionCookie = "portal_session"

type session struct {
	page     *portal.Page
	lastSeen time.Time
}

// SessionStore keeps one portal.Page per browser, keyed by a cookie.
type SessionStore struct {
	newPage func() *portal.Page
	idle    time.Duration
	now     func() time.Time

	mu       sync.Mutex
	sessions map[uuid.UUID]*session
}

func NewSessionStore(newPage func() *portal.Page, idle time.Duration) *SessionStore {
	return &SessionStore{
		newPage:  newPage,
		idle:     idle,
		now:      time.Now,
		sessions: make(map[uuid.UUID]*session),
	}
}

// Page returns the caller's page, creating and mounting a new one when the
// cookie is missing, malformed or expired.
func (s *SessionStore) Page(w http.ResponseWriter, r *http.Request) *portal.Page {
	if cookie, err := r.Cookie(sessionCookie); err == nil {
		if id, err := uuid.Parse(cookie.Value); err == nil {
			s.mu.Lock()
			sess, ok := s.sessions[id]
			if ok {
				sess.lastSeen = s.now()
			}
			s.mu.Unlock()
			if ok {
				return sess.page
			}
		}
	}

	id := uuid.New()
	page := s.newPage()
	page.Mount(r.Context())

	s.mu.Lock()
	s.sessions[id] = &session{page: page, lastSeen: s.now()}
	s.mu.Unlock()

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id.String(),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	slog.Debug("portal session created", "session_id", id)
	return page
}

// Evict drops sessions idle for longer than the configured duration.
func (s *SessionStore) Evict(ctx context.Context) error {
	cutoff := s.now().Add(-s.idle)

	s.mu.Lock()
	evicted := 0
	for id, sess := range s.sessions {
		if sess.lastSeen.Before(cutoff) {
			delete(s.sessions, id)
			evicted++
		}
	}
	remaining := len(s.sessions)
	s.mu.Unlock()

	if evicted > 0 {
		slog.InfoContext(ctx, "evicted idle portal sessions", "evicted", evicted, "remaining", remaining)
	}
	return nil
}

// Len returns the number of live sessions.
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
