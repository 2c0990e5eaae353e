package handlers

import (
	"github.com/gorilla/schema"

	"github.com/vancomm/minefield/internal/minefield"
	"github.com/vancomm/minefield/internal/session"
)

var dec = schema.NewDecoder()

func init() {
	dec.IgnoreUnknownKeys(true)
}

// NewGameDTO holds the board parameters of a new game request. Fields missing
// from the query keep the values they had before decoding.
type NewGameDTO struct {
	Side  int `schema:"side"`
	Mines int `schema:"mines"`
}

func ParseNewGameDTO(src map[string][]string, defaults NewGameDTO) (NewGameDTO, error) {
	dto := defaults
	err := dec.Decode(&dto, src)
	return dto, err
}

type PositionDTO struct {
	Row int `schema:"row,required"`
	Col int `schema:"col,required"`
}

func ParsePosition(src map[string][]string) (minefield.Point, error) {
	var dto PositionDTO
	if err := dec.Decode(&dto, src); err != nil {
		return minefield.Point{}, err
	}
	return minefield.Point{Row: dto.Row, Col: dto.Col}, nil
}

type NewGameResponseDTO struct {
	Token   string           `json:"token"`
	Session *session.Session `json:"session"`
}
