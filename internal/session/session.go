package session

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/vancomm/minefield/internal/minefield"
)

// Session is one game held by the server. The board is only touched with mu
// held.
type Session struct {
	Id        string
	StartedAt time.Time

	mu         sync.Mutex
	board      *minefield.Board
	last       minefield.Outcome
	endedAt    time.Time
	lastActive time.Time
	now        func() time.Time
}

func (s *Session) Apply(p minefield.Point, a minefield.Action) (minefield.Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, err := s.board.Apply(p, a)
	if err != nil {
		return o, err
	}
	s.last = o
	s.lastActive = s.now()
	if o.Terminal() {
		s.endedAt = s.lastActive
	}
	return o, nil
}

func (s *Session) Finished() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.Finished()
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive
}

type sessionJSON struct {
	SessionId  string            `json:"session_id"`
	Grid       []string          `json:"grid"`
	Side       int               `json:"side"`
	MineCount  int               `json:"mine_count"`
	Remaining  int               `json:"remaining"`
	Unrevealed int               `json:"unrevealed"`
	Outcome    minefield.Outcome `json:"outcome"`
	Finished   bool              `json:"finished"`
	StartedAt  int64             `json:"started_at"`
	EndedAt    *int64            `json:"ended_at,omitempty"`
}

// MarshalJSON renders the player's view. Mines are shown once the game is
// over.
func (s *Session) MarshalJSON() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var endedAt *int64
	if !s.endedAt.IsZero() {
		e := s.endedAt.UnixMilli()
		endedAt = &e
	}
	finished := s.board.Finished()
	return json.Marshal(sessionJSON{
		SessionId:  s.Id,
		Grid:       s.board.RenderLines(finished),
		Side:       s.board.Side(),
		MineCount:  s.board.Mines(),
		Remaining:  s.board.Remaining(),
		Unrevealed: s.board.Unrevealed(),
		Outcome:    s.last,
		Finished:   finished,
		StartedAt:  s.StartedAt.UnixMilli(),
		EndedAt:    endedAt,
	})
}
