package app

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vancomm/minefield/internal/handlers"
	"github.com/vancomm/minefield/internal/minefield"
)

func (a *App) loadRoutes() {
	game := handlers.NewGameHandler(
		a.log, a.store, a.jwt, a.ws, a.metrics, a.cfg.Board, minefield.NewRand,
	)

	a.router.HandleFunc("GET /v1/status", handlers.Status)
	a.router.HandleFunc("POST /v1/game", game.NewGame)
	a.router.HandleFunc("GET /v1/game/{id}", game.Fetch)
	a.router.HandleFunc("POST /v1/game/{id}/reveal", game.Move(minefield.Reveal))
	a.router.HandleFunc("POST /v1/game/{id}/mark", game.Move(minefield.ToggleMark))
	a.router.HandleFunc("/v1/game/{id}/connect", game.ConnectWS)
	a.router.Handle("GET /metrics", promhttp.HandlerFor(a.registry, promhttp.HandlerOpts{}))
}
