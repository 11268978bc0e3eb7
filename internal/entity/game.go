package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
)

// Game is the state of one human-versus-computer session.
type Game struct {
	ID       string `json:"id"`
	Board    Board  `json:"board"`
	Turn     Cell   `json:"player_turn"`
	Status   string `json:"status"`
	Winner   Cell   `json:"winner"`
	LastMove *Move  `json:"last_move,omitempty"`
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

// IsTie reports a finished game without a winner.
func (that *Game) IsTie() bool {
	return that.IsFinished() && that.Winner == Empty
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", apperror.ErrUnknownGameStatus, that.Status)
	}
}
