package session

import (
	"encoding/json"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minefield/internal/config"
	"github.com/vancomm/minefield/internal/minefield"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newBoard(t *testing.T) *minefield.Board {
	t.Helper()
	b, err := minefield.ReadLayout(strings.NewReader(
		"X..\n...\n...\n",
	), nil)
	require.NoError(t, err)
	return b
}

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time { return c.t }

func TestStoreCreateGet(t *testing.T) {
	var observed []int
	st := NewStore(quietLogger(), time.Hour, WithObserver(func(n int) {
		observed = append(observed, n)
	}))

	a := st.Create(newBoard(t))
	b := st.Create(newBoard(t))
	assert.NotEqual(t, a.Id, b.Id)
	assert.Equal(t, 2, st.Len())
	assert.Equal(t, []int{1, 2}, observed)

	got, err := st.Get(a.Id)
	require.NoError(t, err)
	assert.Same(t, a, got)

	_, err = st.Get("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStoreSweep(t *testing.T) {
	clock := &fakeClock{t: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	st := NewStore(quietLogger(), time.Minute, WithClock(clock.Now))

	idle := st.Create(newBoard(t))
	active := st.Create(newBoard(t))

	clock.t = clock.t.Add(45 * time.Second)
	_, err := active.Apply(minefield.Point{Row: 2, Col: 2}, minefield.ToggleMark)
	require.NoError(t, err)

	clock.t = clock.t.Add(30 * time.Second)
	assert.Equal(t, 1, st.Sweep())

	_, err = st.Get(idle.Id)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = st.Get(active.Id)
	assert.NoError(t, err)

	clock.t = clock.t.Add(time.Hour)
	assert.Equal(t, 1, st.Sweep())
	assert.Equal(t, 0, st.Len())
}

func TestSessionJSON(t *testing.T) {
	clock := &fakeClock{t: time.UnixMilli(1_700_000_000_000).UTC()}
	st := NewStore(quietLogger(), time.Hour, WithClock(clock.Now))
	s := st.Create(newBoard(t))

	o, err := s.Apply(minefield.Point{Row: 0, Col: 1}, minefield.Reveal)
	require.NoError(t, err)
	assert.Equal(t, minefield.InProgress, o)

	b, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"session_id": "`+s.Id+`",
		"grid": [".1.", "...", "..."],
		"side": 3,
		"mine_count": 1,
		"remaining": 1,
		"unrevealed": 8,
		"outcome": "in_progress",
		"finished": false,
		"started_at": 1700000000000
	}`, string(b))

	clock.t = clock.t.Add(time.Second)
	o, err = s.Apply(minefield.Point{Row: 0, Col: 0}, minefield.Reveal)
	require.NoError(t, err)
	assert.Equal(t, minefield.Loss, o)
	assert.True(t, s.Finished())

	b, err = json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"session_id": "`+s.Id+`",
		"grid": ["X1.", "...", "..."],
		"side": 3,
		"mine_count": 1,
		"remaining": 1,
		"unrevealed": 7,
		"outcome": "loss",
		"finished": true,
		"started_at": 1700000000000,
		"ended_at": 1700000001000
	}`, string(b))
}

func TestTokens(t *testing.T) {
	j, err := config.NewJWT(config.SessionConfig{
		TTL:    config.Duration{Duration: time.Hour},
		Secret: "secret",
	})
	require.NoError(t, err)

	st := NewStore(quietLogger(), time.Hour)
	a := st.Create(newBoard(t))
	b := st.Create(newBoard(t))

	token, err := IssueToken(j, a)
	require.NoError(t, err)

	assert.NoError(t, VerifyToken(j, token, a.Id))
	assert.ErrorIs(t, VerifyToken(j, token, b.Id), ErrBadToken)
	assert.ErrorIs(t, VerifyToken(j, "garbage", a.Id), ErrBadToken)
}
