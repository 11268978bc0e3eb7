package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const (
	msgRowPrompt     = "Input the row:"
	msgColPrompt     = "Input the col:"
	msgNotANumber    = "Please input a number"
	msgOutOfRange    = "Please input a number between 0 and 2"
	msgCellTaken     = "The specified position was already taken"
	msgTie           = "It's a tie!"
	msgWinnerPattern = "Player %d won!"
)

// maxLineLength caps a single input line, longer lines are discarded.
const maxLineLength = 1024

var errNotANumber = errors.New("not a number")

type gamePlayService interface {
	GetOrCreateGame(ctx context.Context, sessionID string, computerStarts bool) (*entity.Game, error)
	MakeTurn(ctx context.Context, sessionID string, move entity.Move) (*entity.Game, error)
}

type Options struct {
	SessionID      string
	ComputerStarts bool
	Styled         bool
}

// Console plays one game between the terminal user and the computer.
type Console struct {
	logger   *slog.Logger
	gamePlay gamePlayService
	renderer *Renderer
	in       io.Reader
	options  Options
}

func New(logger *slog.Logger, gamePlay gamePlayService, in io.Reader, out io.Writer, options Options) *Console {
	return &Console{
		logger:   logger.With("component", "console"),
		gamePlay: gamePlay,
		renderer: NewRenderer(out, options.Styled),
		in:       in,
		options:  options,
	}
}

type line struct {
	text    string
	tooLong bool
	err     error
}

// Run - plays until the game ends, the input is closed or ctx is cancelled.
func (that *Console) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run", "game_id", that.options.SessionID)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	game, err := that.gamePlay.GetOrCreateGame(ctx, that.options.SessionID, that.options.ComputerStarts)
	if err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}

	lines := that.readLines(ctx)

	// printed below the next board, since a styled Draw clears the screen
	var notice string

	for {
		that.renderer.Draw(game.Board)
		if notice != "" {
			that.renderer.Println(notice)
			notice = ""
		}

		move, err := that.readMove(ctx, lines)
		switch {
		case errors.Is(err, errNotANumber):
			notice = msgNotANumber
			continue
		case errors.Is(err, io.EOF), errors.Is(err, context.Canceled):
			log.Info("input closed, leaving game")
			return nil
		case err != nil:
			return fmt.Errorf("failed to read move: %w", err)
		}

		if !move.InBounds() {
			notice = msgOutOfRange
			continue
		}

		next, err := that.gamePlay.MakeTurn(ctx, that.options.SessionID, move)
		switch {
		case errors.Is(err, apperror.ErrCellOccupied):
			notice = msgCellTaken
			continue
		case err != nil:
			return fmt.Errorf("failed to make turn: %w", err)
		}

		game = next
		if game.IsFinished() {
			that.announce(game)
			log.Info("game over", "winner", game.Winner.String())

			return nil
		}
	}
}

func (that *Console) announce(game *entity.Game) {
	that.renderer.Draw(game.Board)

	if game.IsTie() {
		that.renderer.Println(msgTie)
		return
	}

	that.renderer.Println(fmt.Sprintf(msgWinnerPattern, int(game.Winner)))
}

func (that *Console) readMove(ctx context.Context, lines <-chan line) (entity.Move, error) {
	row, err := that.readNumber(ctx, lines, msgRowPrompt)
	if err != nil {
		return entity.Move{}, err
	}

	col, err := that.readNumber(ctx, lines, msgColPrompt)
	if err != nil {
		return entity.Move{}, err
	}

	return entity.Move{Row: row, Col: col}, nil
}

func (that *Console) readNumber(ctx context.Context, lines <-chan line, prompt string) (int, error) {
	that.renderer.Println(prompt)

	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	case l, ok := <-lines:
		if !ok {
			return 0, io.EOF
		}

		if l.err != nil {
			return 0, l.err
		}

		if l.tooLong {
			return 0, fmt.Errorf("%w: line longer than %d bytes", errNotANumber, maxLineLength)
		}

		number, err := strconv.Atoi(strings.TrimSpace(l.text))
		if err != nil {
			return 0, fmt.Errorf("%w: %q", errNotANumber, l.text)
		}

		return number, nil
	}
}

// readLines - reads the input in the background so a blocked read never
// prevents shutdown. The channel is closed at end of input.
func (that *Console) readLines(ctx context.Context) <-chan line {
	lines := make(chan line)

	go func() {
		defer close(lines)

		reader := bufio.NewReaderSize(that.in, maxLineLength)
		for {
			next, err := readLine(reader)
			if errors.Is(err, io.EOF) {
				return
			}

			if err != nil {
				next = line{err: err}
			}

			select {
			case lines <- next:
			case <-ctx.Done():
				return
			}

			if err != nil {
				return
			}
		}
	}()

	return lines
}

// readLine - returns the next line, dropping the rest of one that does not
// fit the reader's buffer.
func readLine(reader *bufio.Reader) (line, error) {
	text, isPrefix, err := reader.ReadLine()
	if err != nil {
		return line{}, err
	}

	if !isPrefix {
		return line{text: string(text)}, nil
	}

	for isPrefix {
		_, isPrefix, err = reader.ReadLine()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return line{}, err
		}
	}

	return line{tooLong: true}, nil
}
