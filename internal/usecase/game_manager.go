package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-bot/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

type moveSelector interface {
	Move(board entity.Board, computer entity.Mark, level entity.Difficulty) (int, bool)
}

// Defaults - used when a request leaves the difficulty or the human mark out.
type Defaults struct {
	Difficulty entity.Difficulty
	Mark       entity.Mark
}

type GameManager struct {
	logger   *slog.Logger
	gameRepo gameRepo
	selector moveSelector
	defaults Defaults
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo, selector moveSelector, defaults Defaults) *GameManager {
	return &GameManager{
		logger:   logger.With("component", "game_manager"),
		gameRepo: gameRepo,
		selector: selector,
		defaults: defaults,
	}
}

// CreateGame - starts a session; when the computer holds X it has already moved.
func (that *GameManager) CreateGame(ctx context.Context, difficulty, mark string) (*entity.Game, error) {
	level, err := that.difficultyOr(difficulty, that.defaults.Difficulty)
	if err != nil {
		return nil, err
	}

	humanMark := that.defaults.Mark
	if mark != "" {
		humanMark = entity.Mark(mark)
	}

	game, err := entity.NewGame(uuid.NewString(), level, humanMark)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	if err = that.computerTurn(game); err != nil {
		return nil, err
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to save game: %w", err)
	}

	that.logger.Info("game created", "gameID", game.ID, "difficulty", game.Difficulty, "humanMark", game.HumanMark)

	return game, nil
}

func (that *GameManager) GetGame(ctx context.Context, gameID string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	return game, nil
}

// MakeTurn - applies the human move, then the computer's reply unless the game ended.
func (that *GameManager) MakeTurn(ctx context.Context, gameID string, cell int) (*entity.Game, error) {
	log := that.logger.With("method", "MakeTurn", "gameID", gameID)

	game, err := that.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if err = game.ConfirmOngoingState(); err != nil {
		return game, fmt.Errorf("failed to make turn: %w", err)
	}

	if err = game.MakeTurn(game.HumanMark, cell); err != nil {
		return game, fmt.Errorf("failed to make turn: %w", err)
	}

	if err = that.computerTurn(game); err != nil {
		return nil, err
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	if game.IsFinished() {
		log.Info("game finished", "winner", game.Winner)
	}

	return game, nil
}

// ResetGame - clears the board. An empty difficulty keeps the current one.
func (that *GameManager) ResetGame(ctx context.Context, gameID, difficulty string) (*entity.Game, error) {
	game, err := that.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	level, err := that.difficultyOr(difficulty, game.Difficulty)
	if err != nil {
		return nil, err
	}

	game.Reset(level)

	if err = that.computerTurn(game); err != nil {
		return nil, err
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	return game, nil
}

// LeaveGame - abandons a session, finished or not.
func (that *GameManager) LeaveGame(ctx context.Context, gameID string) error {
	if err := that.gameRepo.DeleteByID(ctx, gameID); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	that.logger.Info("game left", "gameID", gameID)

	return nil
}

// Evaluate - verdict for a board held by the client.
func (that *GameManager) Evaluate(cells []entity.Mark) (entity.Outcome, error) {
	board, err := entity.BoardFromSlice(cells)
	if err != nil {
		return entity.Outcome{}, err
	}

	return entity.Evaluate(board), nil
}

// SelectMove - computer move for a board held by the client. The computer defaults to O.
func (that *GameManager) SelectMove(cells []entity.Mark, computer, difficulty string) (int, bool, error) {
	board, err := entity.BoardFromSlice(cells)
	if err != nil {
		return 0, false, err
	}

	level, err := that.difficultyOr(difficulty, that.defaults.Difficulty)
	if err != nil {
		return 0, false, err
	}

	mark := entity.PlayerO
	if computer != "" {
		mark = entity.Mark(computer)
	}

	if mark != entity.PlayerX && mark != entity.PlayerO {
		return 0, false, fmt.Errorf("%w: %q", entity.ErrInvalidMark, computer)
	}

	move, ok := that.selector.Move(board, mark, level)

	return move, ok, nil
}

func (that *GameManager) computerTurn(game *entity.Game) error {
	if !game.IsComputerTurn() {
		return nil
	}

	move, ok := that.selector.Move(game.Board, game.ComputerMark, game.Difficulty)
	if !ok {
		return fmt.Errorf("%w: game %s", apperror.ErrNoMove, game.ID)
	}

	if err := game.MakeTurn(game.ComputerMark, move); err != nil {
		return fmt.Errorf("computer failed to make turn: %w", err)
	}

	return nil
}

func (that *GameManager) difficultyOr(value string, fallback entity.Difficulty) (entity.Difficulty, error) {
	if value == "" {
		return fallback, nil
	}

	level, err := entity.ParseDifficulty(value)
	if err != nil {
		return "", fmt.Errorf("failed to parse difficulty: %w", err)
	}

	return level, nil
}

// IsBadRequest - errors caused by the caller's input.
func IsBadRequest(err error) bool {
	return errors.Is(err, entity.ErrInvalidBoard) ||
		errors.Is(err, entity.ErrInvalidCell) ||
		errors.Is(err, entity.ErrInvalidMark) ||
		errors.Is(err, entity.ErrUnknownDifficulty)
}

// IsConflict - moves that the current game state does not allow.
func IsConflict(err error) bool {
	return errors.Is(err, apperror.ErrCellOccupied) ||
		errors.Is(err, apperror.ErrNotYourTurn) ||
		errors.Is(err, apperror.ErrGameFinished)
}
