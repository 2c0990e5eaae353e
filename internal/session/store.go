package session

import (
	"context"
	"encoding/base64"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/minefield/internal/minefield"
)

var ErrNotFound = errors.New("session not found")

// Store keeps game sessions in memory. Sessions idle for longer than the TTL
// are dropped by Sweep.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
	now      func() time.Time
	observe  func(active int)
	log      *logrus.Logger
}

type Option = func(*Store)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(st *Store) {
		st.now = now
	}
}

// WithObserver registers a callback that receives the number of sessions
// after every change.
func WithObserver(observe func(active int)) Option {
	return func(st *Store) {
		st.observe = observe
	}
}

func NewStore(log *logrus.Logger, ttl time.Duration, options ...Option) *Store {
	st := &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		now:      time.Now,
		observe:  func(int) {},
		log:      log,
	}
	for _, op := range options {
		op(st)
	}
	return st
}

func newSessionId() string {
	u := [16]byte(uuid.New())
	return base64.RawURLEncoding.EncodeToString(u[:])
}

func (st *Store) Create(board *minefield.Board) *Session {
	now := st.now().UTC()
	s := &Session{
		Id:         newSessionId(),
		StartedAt:  now,
		board:      board,
		lastActive: now,
		now:        func() time.Time { return st.now().UTC() },
	}

	st.mu.Lock()
	st.sessions[s.Id] = s
	n := len(st.sessions)
	st.mu.Unlock()

	st.observe(n)
	st.log.WithFields(logrus.Fields{
		"session": s.Id,
		"side":    board.Side(),
		"mines":   board.Mines(),
	}).Debug("created session")
	return s
}

func (st *Store) Get(id string) (*Session, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return s, nil
}

func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// Sweep removes expired sessions and returns how many were removed.
func (st *Store) Sweep() int {
	deadline := st.now().UTC().Add(-st.ttl)

	st.mu.Lock()
	removed := 0
	for id, s := range st.sessions {
		if s.idleSince().Before(deadline) {
			delete(st.sessions, id)
			removed++
		}
	}
	n := len(st.sessions)
	st.mu.Unlock()

	if removed > 0 {
		st.observe(n)
		st.log.WithFields(logrus.Fields{
			"removed": removed,
			"active":  n,
		}).Info("swept expired sessions")
	}
	return removed
}

// Run sweeps every interval until ctx is done.
func (st *Store) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			st.Sweep()
		}
	}
}
