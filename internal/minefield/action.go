package minefield

import (
	"fmt"
	"strings"
)

type Action uint8

const (
	Reveal Action = iota + 1
	ToggleMark
)

// ParseAction accepts the terminal command words ("free", "mine") as well as
// the names used over the wire ("reveal", "mark").
func ParseAction(s string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "free", "reveal", "open":
		return Reveal, nil
	case "mine", "mark", "flag":
		return ToggleMark, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAction, s)
}

func (a Action) String() string {
	switch a {
	case Reveal:
		return "reveal"
	case ToggleMark:
		return "mark"
	default:
		return fmt.Sprintf("action(%d)", uint8(a))
	}
}

type Outcome uint8

const (
	InProgress Outcome = iota
	NumberTouched
	Win
	Loss
)

func (o Outcome) String() string {
	switch o {
	case InProgress:
		return "in_progress"
	case NumberTouched:
		return "number_touched"
	case Win:
		return "win"
	case Loss:
		return "loss"
	default:
		return fmt.Sprintf("outcome(%d)", uint8(o))
	}
}

// Terminal reports whether the game ends with this outcome.
func (o Outcome) Terminal() bool {
	return o == Win || o == Loss
}

// [Outcome] implements [encoding.TextMarshaler]
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}
