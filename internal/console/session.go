package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/tictactoe"
)

const helpText = `commands:
  1-9       play the square, numbered left to right, top to bottom
  jump <n>  go to step n of the move list
  order     toggle the move list order
  new       start a new game
  quit      leave
`

var errUnknownCommand = errors.New("unknown command, type help")

type gameUseCase interface {
	NewGame(ctx context.Context) (*entity.Game, error)
	MakeTurn(ctx context.Context, id string, cell int) (*entity.Game, error)
	JumpTo(ctx context.Context, id string, step int) (*entity.Game, error)
	ToggleOrder(ctx context.Context, id string) (*entity.Game, error)
}

// Session is an interactive game played over a terminal.
type Session struct {
	gameUseCase gameUseCase
	out         *termenv.Output
	game        *entity.Game
}

func NewSession(gameUseCase gameUseCase, out *termenv.Output) *Session {
	return &Session{
		gameUseCase: gameUseCase,
		out:         out,
	}
}

// Run reads commands from in until quit, end of input or ctx cancellation.
func (that *Session) Run(ctx context.Context, in io.Reader) error {
	if err := that.newGame(ctx); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines, readErr := readLines(ctx, in)

	for {
		that.render()
		fmt.Fprint(that.out, "> ")

		var line string
		select {
		case <-ctx.Done():
			fmt.Fprintln(that.out)
			return nil
		case next, ok := <-lines:
			if !ok {
				fmt.Fprintln(that.out)

				if err := <-readErr; err != nil {
					return fmt.Errorf("failed to read input: %w", err)
				}

				return nil
			}

			line = next
		}

		quit, err := that.execute(ctx, strings.TrimSpace(line))
		if quit {
			return nil
		}

		if err != nil {
			if !isUserError(err) {
				return err
			}

			fmt.Fprintln(that.out, that.out.String(err.Error()).Foreground(termenv.ANSIRed).String())
		}
	}
}

// readLines scans in on its own goroutine so a blocked read never holds up cancellation.
// lines is closed at end of input, after which readErr yields the scan error, if any.
func readLines(ctx context.Context, in io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	readErr := make(chan error, 1)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				readErr <- nil
				return
			}
		}

		readErr <- scanner.Err()
	}()

	return lines, readErr
}

func (that *Session) execute(ctx context.Context, line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}

	switch fields[0] {
	case "quit", "q", "exit":
		return true, nil
	case "help", "?":
		fmt.Fprint(that.out, helpText)
		return false, nil
	case "new":
		return false, that.newGame(ctx)
	case "order":
		return false, that.apply(that.gameUseCase.ToggleOrder(ctx, that.game.ID))
	case "jump":
		if len(fields) != 2 {
			return false, errUnknownCommand
		}

		step, err := strconv.Atoi(fields[1])
		if err != nil {
			return false, errUnknownCommand
		}

		return false, that.apply(that.gameUseCase.JumpTo(ctx, that.game.ID, step))
	}

	square, err := strconv.Atoi(fields[0])
	if err != nil || len(fields) != 1 {
		return false, errUnknownCommand
	}

	return false, that.apply(that.gameUseCase.MakeTurn(ctx, that.game.ID, square-1))
}

func (that *Session) newGame(ctx context.Context) error {
	return that.apply(that.gameUseCase.NewGame(ctx))
}

func (that *Session) apply(game *entity.Game, err error) error {
	if err != nil {
		return err
	}

	that.game = game

	return nil
}

func (that *Session) render() {
	fmt.Fprintln(that.out)
	Render(that.out, tictactoe.Describe(that.game))
}

func isUserError(err error) bool {
	return errors.Is(err, errUnknownCommand) ||
		errors.Is(err, apperror.ErrInvalidCell) ||
		errors.Is(err, apperror.ErrInvalidStep)
}
