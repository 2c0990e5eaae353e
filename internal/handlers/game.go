package handlers

import (
	"fmt"
	"mime"
	"net/http"
	"strings"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/minefield/internal/config"
	"github.com/vancomm/minefield/internal/metrics"
	"github.com/vancomm/minefield/internal/middleware"
	"github.com/vancomm/minefield/internal/minefield"
	"github.com/vancomm/minefield/internal/session"
)

const maxLayoutBytes = 64 << 10

type GameHandler struct {
	log      *logrus.Logger
	store    *session.Store
	jwt      *config.JWT
	ws       *config.WebSocket
	metrics  *metrics.Metrics
	defaults NewGameDTO
	newRand  func() minefield.Rand
}

func NewGameHandler(
	log *logrus.Logger,
	store *session.Store,
	jwt *config.JWT,
	ws *config.WebSocket,
	m *metrics.Metrics,
	board config.BoardConfig,
	newRand func() minefield.Rand,
) *GameHandler {
	if newRand == nil {
		newRand = minefield.NewRand
	}

	handler := &GameHandler{
		log:      log,
		store:    store,
		jwt:      jwt,
		ws:       ws,
		metrics:  m,
		defaults: NewGameDTO{Side: board.Side, Mines: board.Mines},
		newRand:  newRand,
	}

	return handler
}

func isLayoutUpload(r *http.Request) bool {
	mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mt == "text/plain"
}

func (g GameHandler) NewGame(w http.ResponseWriter, r *http.Request) {
	var (
		board *minefield.Board
		err   error
	)

	if isLayoutUpload(r) {
		board, err = minefield.ReadLayout(
			http.MaxBytesReader(w, r.Body, maxLayoutBytes), g.newRand(),
		)
	} else {
		var dto NewGameDTO
		dto, err = ParseNewGameDTO(r.URL.Query(), g.defaults)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			sendJSONOrLog(w, g.log, wrapError(err))
			return
		}
		board, err = minefield.NewRandom(dto.Side, dto.Mines, g.newRand())
	}
	if err != nil {
		sendError(w, g.log, err)
		return
	}

	s := g.store.Create(board)
	token, err := session.IssueToken(g.jwt, s)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.log.WithError(err).Error("unable to issue session token")
		return
	}

	g.metrics.GamesStarted.Inc()
	g.log.WithFields(logrus.Fields{
		"session_id": s.Id,
		"side":       board.Side(),
		"mines":      board.Mines(),
	}).Info("game started")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	sendJSONOrLog(w, g.log, NewGameResponseDTO{Token: token, Session: s})
}

func (g GameHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	s, err := g.store.Get(r.PathValue("id"))
	if err != nil {
		sendError(w, g.log, err)
		return
	}

	sendJSONOrLog(w, g.log, s)
}

// Move returns a handler that applies a to the cell named by the row and col
// query parameters.
func (g GameHandler) Move(a minefield.Action) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, err := g.authorize(r)
		if err != nil {
			sendError(w, g.log, err)
			return
		}

		pos, err := ParsePosition(r.URL.Query())
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			sendJSONOrLog(w, g.log, wrapError(err))
			return
		}

		if _, err := g.apply(s, pos, a); err != nil {
			sendError(w, g.log, err)
			return
		}

		sendJSONOrLog(w, g.log, s)
	}
}

func (g GameHandler) authorize(r *http.Request) (*session.Session, error) {
	s, err := g.store.Get(r.PathValue("id"))
	if err != nil {
		return nil, err
	}
	token, ok := middleware.Token(r)
	if !ok {
		return nil, fmt.Errorf("%w: missing", session.ErrBadToken)
	}
	if err := session.VerifyToken(g.jwt, token, s.Id); err != nil {
		return nil, err
	}
	return s, nil
}

func (g GameHandler) apply(s *session.Session, p minefield.Point, a minefield.Action) (minefield.Outcome, error) {
	o, err := s.Apply(p, a)
	if err != nil {
		return o, err
	}

	g.metrics.Moves.WithLabelValues(a.String(), o.String()).Inc()
	if o.Terminal() {
		g.metrics.GamesFinished.WithLabelValues(o.String()).Inc()
		g.log.WithFields(logrus.Fields{
			"session_id": s.Id,
			"outcome":    o,
		}).Info("game finished")
	}
	return o, nil
}

func (g GameHandler) ConnectWS(w http.ResponseWriter, r *http.Request) {
	s, err := g.authorize(r)
	if err != nil {
		sendError(w, g.log, err)
		return
	}

	c, err := g.ws.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.log.WithError(err).Error("unable to upgrade")
		return
	}

	defer c.Close()

	for {
		mt, message, err := c.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				g.log.WithError(err).Warn("abnormal ws break")
			}
			break
		}
		if mt != websocket.TextMessage {
			break
		}
		text := strings.TrimSpace(string(message))
		g.log.Debugf("\t> %s", text)

		var reply any = s
		for _, cmd := range byPiece(text, "\n") {
			if err := g.executeCommand(s, cmd); err != nil {
				reply = wrapError(err)
				break
			}
		}

		if err := c.WriteJSON(reply); err != nil {
			g.log.WithError(err).Error("unable to write json")
			break
		}
		g.log.Debug("\t< <session data>")
	}
}
