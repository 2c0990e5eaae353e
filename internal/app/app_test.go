package app

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minefield/internal/config"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	a, err := New(log, config.Default())
	require.NoError(t, err)
	return a
}

func get(t *testing.T, url string) string {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func TestRoutes(t *testing.T) {
	srv := httptest.NewServer(newTestApp(t).Handler())
	defer srv.Close()

	assert.Equal(t, `"ok"`, get(t, srv.URL+"/v1/status"))

	resp, err := http.Post(srv.URL+"/v1/game?side=4&mines=2", "", nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created struct {
		Token   string `json:"token"`
		Session struct {
			SessionId string `json:"session_id"`
		} `json:"session"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))

	req, err := http.NewRequest("POST",
		srv.URL+"/v1/game/"+created.Session.SessionId+"/reveal?row=0&col=0", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+created.Token)
	moveResp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	moveResp.Body.Close()
	assert.Equal(t, http.StatusOK, moveResp.StatusCode)

	body := get(t, srv.URL+"/metrics")
	assert.Contains(t, body, "minefield_games_started_total 1")
	assert.Contains(t, body, "minefield_active_sessions 1")
	assert.Contains(t, body, `minefield_http_requests_total{code="201",method="POST"} 1`)
	assert.Contains(t, body, "go_goroutines")
}

func TestCorsInDevelopment(t *testing.T) {
	srv := httptest.NewServer(newTestApp(t).Handler())
	defer srv.Close()

	req, err := http.NewRequest("GET", srv.URL+"/v1/status", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://localhost:5173")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "http://localhost:5173", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestStartStops(t *testing.T) {
	a := newTestApp(t)
	a.cfg.Addr = "127.0.0.1:0"

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Start(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestUnknownRoute(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestApp(t).Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/v1/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
