// Package repl runs a minefield game on a line-oriented terminal.
package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/minefield/internal/minefield"
)

const (
	minesPrompt   = "How many mines do you want on the field? "
	commandPrompt = "Set/unset mines marks or claim a cell as free: "

	msgNumber = "There is a number here!"
	msgWin    = "Congratulations! You found all the mines!"
	msgLoss   = "You stepped on a mine and failed!"
)

var ErrBadCommand = errors.New("expected a command of the form: x y free|mine")

type REPL struct {
	in  *bufio.Scanner
	out io.Writer
	log *logrus.Logger
}

func New(in io.Reader, out io.Writer, log *logrus.Logger) *REPL {
	return &REPL{
		in:  bufio.NewScanner(in),
		out: out,
		log: log,
	}
}

func (r *REPL) readLine(prompt string) (string, error) {
	fmt.Fprint(r.out, prompt)
	if !r.in.Scan() {
		if err := r.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(r.in.Text()), nil
}

// AskMines prompts until it reads a mine count that fits a side x side board.
func (r *REPL) AskMines(side int) (int, error) {
	for {
		line, err := r.readLine(minesPrompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		if err != nil || n < 0 || n > side*side {
			fmt.Fprintf(r.out, "Please enter a number from 0 to %d.\n", side*side)
			continue
		}
		return n, nil
	}
}

// ParseCommand reads "x y action" where x is the 1-based column and y the
// 1-based row.
func ParseCommand(line string) (minefield.Point, minefield.Action, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return minefield.Point{}, 0, ErrBadCommand
	}
	x, err := strconv.Atoi(fields[0])
	if err != nil {
		return minefield.Point{}, 0, fmt.Errorf("%w: x must be an int", ErrBadCommand)
	}
	y, err := strconv.Atoi(fields[1])
	if err != nil {
		return minefield.Point{}, 0, fmt.Errorf("%w: y must be an int", ErrBadCommand)
	}
	a, err := minefield.ParseAction(fields[2])
	if err != nil {
		return minefield.Point{}, 0, err
	}
	return minefield.Point{Row: y - 1, Col: x - 1}, a, nil
}

// Print draws b inside a frame with 1-based column and row labels. Labels
// wrap to a single digit on boards wider than nine cells.
func Print(w io.Writer, b *minefield.Board, withMines bool) {
	side := b.Side()
	rule := "—│" + strings.Repeat("—", side) + "│\n"

	var sb strings.Builder
	sb.WriteString(" |")
	for i := range side {
		sb.WriteByte('0' + byte((i+1)%10))
	}
	sb.WriteString("|\n")
	sb.WriteString(rule)
	for i, row := range b.Render(withMines) {
		sb.WriteByte('0' + byte((i+1)%10))
		sb.WriteByte('|')
		sb.Write(row)
		sb.WriteString("|\n")
	}
	sb.WriteString(rule)
	fmt.Fprintln(w, sb.String())
}

// Play reads commands until the game on b is won or lost. It returns the
// final outcome, or the input error that cut the game short.
func (r *REPL) Play(b *minefield.Board) (minefield.Outcome, error) {
	show := true
	for {
		if show {
			Print(r.out, b, false)
			if r.log.IsLevelEnabled(logrus.DebugLevel) && b.FirstMoveTaken() {
				r.log.Debug("layout:\n" + b.Debug())
			}
		}
		show = true

		line, err := r.readLine(commandPrompt)
		if err != nil {
			return minefield.InProgress, err
		}
		if line == "" {
			show = false
			continue
		}

		p, a, err := ParseCommand(line)
		if err != nil {
			fmt.Fprintln(r.out, err)
			show = false
			continue
		}

		o, err := b.Apply(p, a)
		if err != nil {
			r.log.WithError(err).WithField("command", line).Debug("move rejected")
			fmt.Fprintln(r.out, err)
			show = false
			continue
		}

		switch o {
		case minefield.Win:
			Print(r.out, b, false)
			fmt.Fprintln(r.out, msgWin)
			return o, nil
		case minefield.Loss:
			Print(r.out, b, true)
			fmt.Fprintln(r.out, msgLoss)
			return o, nil
		case minefield.NumberTouched:
			fmt.Fprintln(r.out, msgNumber)
			show = false
		}
	}
}
