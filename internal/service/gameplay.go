package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

type GamePlayService interface {
	GetOrCreateGame(ctx context.Context, sessionID string, computerStarts bool) (*entity.Game, error)
	MakeTurn(ctx context.Context, sessionID string, move entity.Move) (*entity.Game, error)
	CleanupGame(ctx context.Context, game *entity.Game)
}

type gamePlayService struct {
	logger *slog.Logger

	gameRepo   gameRepo
	botService BotService
}

func NewGamePlayService(logger *slog.Logger, gameRepo gameRepo, botService BotService) GamePlayService {
	return &gamePlayService{
		logger:     logger.With("component", "gameplay"),
		gameRepo:   gameRepo,
		botService: botService,
	}
}

// GetOrCreateGame - resumes the ongoing game of the session or starts a new one.
func (that *gamePlayService) GetOrCreateGame(ctx context.Context, sessionID string, computerStarts bool) (*entity.Game, error) {
	log := that.logger.With("method", "GetOrCreateGame", "game_id", sessionID)

	game, err := that.gameRepo.GetByID(ctx, sessionID)
	switch {
	case err == nil && game.IsOngoing():
		log.Info("resuming game")
		return game, nil
	case err == nil:
		// a finished game left behind by an interrupted cleanup
		that.CleanupGame(ctx, game)
	case !errors.Is(err, apperror.ErrGameNotFound):
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	first := entity.PlayerOne
	if computerStarts {
		first = entity.PlayerTwo
	}

	game = tictactoe.NewGame(sessionID, first)

	if computerStarts {
		if _, err = that.botService.MakeTurn(game); err != nil {
			return nil, fmt.Errorf("bot failed to open the game: %w", err)
		}
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	log.Info("game created", "computer_starts", computerStarts)

	return game, nil
}

// MakeTurn - plays the human move and, while the game goes on, the computer's reply.
func (that *gamePlayService) MakeTurn(ctx context.Context, sessionID string, move entity.Move) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	if err = game.ConfirmOngoingState(); err != nil {
		return game, err
	}

	if err = tictactoe.MakeTurn(game, entity.PlayerOne, move); err != nil {
		return game, fmt.Errorf("failed to make turn: %w", err)
	}

	if game.IsOngoing() {
		_, err = that.botService.MakeTurn(game)
		if err != nil && !errors.Is(err, ErrNoAvailableMoves) {
			return nil, fmt.Errorf("bot failed to make turn: %w", err)
		}
	}

	if game.IsFinished() {
		that.CleanupGame(ctx, game)

		return game, nil
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	return game, nil
}

// CleanupGame - removes a game from storage; finished games are not kept.
func (that *gamePlayService) CleanupGame(ctx context.Context, game *entity.Game) {
	log := that.logger.With("method", "CleanupGame", "game_id", game.ID)

	if err := that.gameRepo.DeleteByID(ctx, game.ID); err != nil && !errors.Is(err, apperror.ErrGameNotFound) {
		log.Error("failed to delete game", "error", err)
		return
	}

	log.Info("game deleted", "winner", game.Winner.String(), "tie", game.IsTie())
}
