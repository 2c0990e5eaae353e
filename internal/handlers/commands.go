package handlers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/vancomm/minefield/internal/minefield"
	"github.com/vancomm/minefield/internal/session"
)

// Maps known commands to number of arguments
var commandNargs = map[string]int{
	"g": 0, /* get */
	"r": 2, /* reveal row col */
	"m": 2, /* mark row col */
}

func parsePoint(twoStrings []string) (p minefield.Point, err error) {
	if p.Row, err = strconv.Atoi(twoStrings[0]); err != nil {
		return p, errors.New("row must be an int")
	}
	if p.Col, err = strconv.Atoi(twoStrings[1]); err != nil {
		return p, errors.New("col must be an int")
	}
	return p, nil
}

func (g GameHandler) executeCommand(s *session.Session, c string) error {
	parts := strings.Fields(c)
	if len(parts) == 0 {
		return nil
	}
	nargs, ok := commandNargs[parts[0]]
	if !ok {
		return errors.New("unknown command")
	}
	if nargs != len(parts)-1 {
		return errors.New("invalid number of arguments")
	}
	switch parts[0] {
	case "r", "m":
		p, err := parsePoint(parts[1:])
		if err != nil {
			return err
		}
		a := minefield.Reveal
		if parts[0] == "m" {
			a = minefield.ToggleMark
		}
		_, err = g.apply(s, p, a)
		return err
	}
	return nil
}
