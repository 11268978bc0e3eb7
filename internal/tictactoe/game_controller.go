package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// NewGame - creates an ongoing game with an empty board.
func NewGame(id string, first entity.Cell) *entity.Game {
	return &entity.Game{
		ID:     id,
		Board:  entity.Board{},
		Turn:   first,
		Status: entity.StatusOngoing,
	}
}

// MakeTurn - places player's mark at move and updates the game status.
func MakeTurn(gameInstance *entity.Game, player entity.Cell, move entity.Move) error {
	if gameInstance.IsFinished() {
		return apperror.ErrGameFinished
	}

	if err := validateMove(gameInstance, player, move); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	gameInstance.Board = gameInstance.Board.Place(move, player)
	gameInstance.LastMove = &move
	updateGameStatus(gameInstance, player)

	return nil
}

// validateMove - checks if the move is valid.
func validateMove(gameInstance *entity.Game, player entity.Cell, move entity.Move) error {
	if !move.InBounds() {
		return fmt.Errorf("%w: %s", apperror.ErrInvalidCell, move)
	}

	if gameInstance.Turn != player {
		return apperror.ErrNotYourTurn
	}

	if !gameInstance.Board.IsEmptyAt(move) {
		return apperror.ErrCellOccupied
	}

	return nil
}

// updateGameStatus - checks the game status after a move.
func updateGameStatus(gameInstance *entity.Game, player entity.Cell) {
	switch status := Evaluate(gameInstance.Board); status.Kind {
	case entity.Win:
		gameInstance.Winner = status.Winner
		gameInstance.Status = entity.StatusFinished
		gameInstance.Turn = entity.Empty
	case entity.Tie:
		gameInstance.Winner = entity.Empty
		gameInstance.Status = entity.StatusFinished
		gameInstance.Turn = entity.Empty
	default:
		gameInstance.Turn = player.Opponent()
	}
}
