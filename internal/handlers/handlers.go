package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/minefield/internal/minefield"
	"github.com/vancomm/minefield/internal/session"
)

func SendJSON(w http.ResponseWriter, v any) (int, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return 0, err
	}
	w.Header().Set("Content-Type", "application/json")
	return w.Write(payload)
}

func sendJSONOrLog(w http.ResponseWriter, log *logrus.Logger, v any) {
	_, err := SendJSON(w, v)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		log.WithError(err).Error("unable to send response")
	}
}

func wrapError(err error) map[string]string {
	return map[string]string{
		"error": err.Error(),
	}
}

func statusFor(err error) int {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, minefield.ErrOutOfBounds),
		errors.Is(err, minefield.ErrInvalidConfig),
		errors.Is(err, minefield.ErrMalformedLayout),
		errors.Is(err, minefield.ErrUnknownAction):
		return http.StatusBadRequest
	case errors.Is(err, minefield.ErrGameOver):
		return http.StatusConflict
	case errors.Is(err, session.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, session.ErrBadToken):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func sendError(w http.ResponseWriter, log *logrus.Logger, err error) {
	code := statusFor(err)
	if code == http.StatusInternalServerError {
		log.WithError(err).Error("request failed")
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := SendJSON(w, wrapError(err)); err != nil {
		log.WithError(err).Error("unable to send error response")
	}
}

func Status(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("\"ok\""))
}
