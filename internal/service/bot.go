package service

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

// ErrNoAvailableMoves means the board was already terminal; re-evaluate it.
var ErrNoAvailableMoves = errors.New("no available moves")

type BotService interface {
	MakeTurn(game *entity.Game) (entity.Move, error)
}

type botService struct {
	logger *slog.Logger
}

// NewBotService - creates the computer player. It always plays PlayerTwo.
func NewBotService(logger *slog.Logger) BotService {
	return &botService{
		logger: logger.With("component", "bot"),
	}
}

func (that *botService) MakeTurn(game *entity.Game) (entity.Move, error) {
	result := tictactoe.BestMove(game.Board)

	move, ok := result.Move()
	if !ok {
		return entity.Move{}, ErrNoAvailableMoves
	}

	score, _ := result.Score()
	that.logger.Debug("bot chose move", "game_id", game.ID, "move", move.String(), "score", score)

	if err := tictactoe.MakeTurn(game, entity.PlayerTwo, move); err != nil {
		return entity.Move{}, fmt.Errorf("bot failed to make turn: %w", err)
	}

	return move, nil
}
