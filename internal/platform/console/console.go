// Package console runs a battle over plain text lines: a menu, boards printed
// as tables and moves typed as "row,col".
package console

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-battleship/internal/board"
	"github.com/vovakirdan/tui-battleship/internal/config"
	"github.com/vovakirdan/tui-battleship/internal/game"
)

// ErrQuit is returned by Run when the player leaves before the match ends.
var ErrQuit = errors.New("console: player quit")

const menu = "[p]lay  [s]how boards  [i]nfo  [h]elp  [q]uit > "

const helpText = `Sink the enemy fleet before it sinks yours.
  p  fire a shot, then the enemy answers
  s  show both boards (. unknown, O miss, X hit)
  i  show which ships are still afloat
  q  quit
Moves are typed as row,col with both numbers between 0 and 7.
`

// Options configures a console battle.
type Options struct {
	Config config.Config
	Rng    *rand.Rand
	Name   string // Random if empty
	In     io.Reader
	Out    io.Writer
	Logger *log.Logger // Optional
}

// Console is one line-mode battle.
type Console struct {
	out   io.Writer
	input *game.LineSource
	match *game.Match
	human *game.Player
	cpu   *game.Player
}

// New sets up fleets and players.
func New(opts Options) (*Console, error) {
	setup := opts.Config.Setup()
	name := opts.Name
	if name == "" {
		name = game.RandomName(opts.Rng, opts.Config.Players.Names)
	}

	input := game.NewLineSource(opts.In, opts.Out)
	human, err := setup.Human(name, opts.Rng, input)
	if err != nil {
		return nil, err
	}
	cpu, err := setup.CPU(opts.Config.Players.CPUName, opts.Rng)
	if err != nil {
		return nil, err
	}

	matchOpts := []game.MatchOption{game.WithPhrases(opts.Config.GamePhrases())}
	if opts.Logger != nil {
		matchOpts = append(matchOpts, game.WithLogger(opts.Logger))
	}

	return &Console{
		out:   opts.Out,
		input: input,
		match: game.NewMatch(opts.Rng, human, cpu, matchOpts...),
		human: human,
		cpu:   cpu,
	}, nil
}

// Match returns the running match.
func (c *Console) Match() *game.Match {
	return c.match
}

// Run reads menu commands until the match ends. It returns ErrQuit if the
// player quits or input ends first.
func (c *Console) Run() (game.Result, error) {
	fmt.Fprintf(c.out, "Ahoy %s! %s is waiting. Type h for help.\n", c.human.Name, c.cpu.Name)

	for !c.match.Over() {
		fmt.Fprint(c.out, menu)
		line, err := c.input.ReadLine()
		if errors.Is(err, io.EOF) {
			return game.Result{}, ErrQuit
		}
		if err != nil {
			return game.Result{}, err
		}

		switch strings.ToLower(line) {
		case "p":
			if err := c.round(); err != nil {
				return game.Result{}, err
			}
		case "s":
			c.showBoards()
		case "i":
			c.showStatus()
		case "h":
			fmt.Fprint(c.out, helpText)
		case "q":
			return game.Result{}, ErrQuit
		case "":
		default:
			fmt.Fprintf(c.out, "Unknown command %q.\n", line)
		}
	}

	res := c.match.Result()
	if c.match.Winner() == c.human {
		fmt.Fprintf(c.out, "Victory! You sank the enemy fleet in %d shots.\n", res.Shots)
	} else {
		fmt.Fprintf(c.out, "Defeat. %s sank your fleet in %d shots.\n", res.Winner, res.Shots)
	}
	return res, nil
}

// round plays the human's shot, re-prompting on bad input, then the CPU's answer.
func (c *Console) round() error {
	for {
		res, err := c.match.Step()
		if err == nil {
			fmt.Fprintln(c.out, game.Describe(res))
			break
		}

		var moveErr *board.MoveError
		switch {
		case errors.Is(err, io.EOF):
			return ErrQuit
		case errors.As(err, &moveErr), errors.Is(err, game.ErrBadInput):
			fmt.Fprintf(c.out, "Invalid move: %v\n", err)
		default:
			return err
		}
	}

	if c.match.Over() {
		return nil
	}
	res, err := c.match.Step()
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, game.Describe(res))
	return nil
}

func (c *Console) showBoards() {
	fmt.Fprintf(c.out, "%s (you)\n%s", c.human.Name, c.human.Grid.Text(false))
	fmt.Fprintf(c.out, "%s\n%s", c.cpu.Name, c.cpu.Grid.Text(true))
}

func (c *Console) showStatus() {
	fmt.Fprintln(c.out, "Your fleet:")
	for _, l := range game.StatusLines(c.human) {
		fmt.Fprintln(c.out, "  "+l)
	}
	fmt.Fprintln(c.out, "Enemy fleet:")
	for _, l := range game.StatusLines(c.cpu) {
		fmt.Fprintln(c.out, "  "+l)
	}
}
