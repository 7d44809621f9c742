package entity

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-bot/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
)

var (
	ErrInvalidCell       = errors.New("invalid cell index")
	ErrInvalidMark       = errors.New("invalid player mark")
	ErrUnknownGameStatus = errors.New("unknown game status")
)

// Game - a single-player session against the computer. X always moves first.
type Game struct {
	ID           string     `json:"id"`
	Board        Board      `json:"board"`
	Difficulty   Difficulty `json:"difficulty"`
	HumanMark    Mark       `json:"human_mark"`
	ComputerMark Mark       `json:"computer_mark"`
	Turn         Mark       `json:"player_turn"`
	Winner       Mark       `json:"winner"`
	Status       string     `json:"status"`
	LastMove     *int       `json:"last_move,omitempty"`
}

func NewGame(id string, difficulty Difficulty, humanMark Mark) (*Game, error) {
	if humanMark != PlayerX && humanMark != PlayerO {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMark, humanMark)
	}

	if !difficulty.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDifficulty, difficulty)
	}

	return &Game{
		ID:           id,
		Board:        Board{},
		Difficulty:   difficulty,
		HumanMark:    humanMark,
		ComputerMark: humanMark.Opponent(),
		Turn:         PlayerX,
		Status:       StatusOngoing,
	}, nil
}

// Reset - clears the board and starts over at the given difficulty, keeping the marks.
func (that *Game) Reset(difficulty Difficulty) {
	that.Board = Board{}
	that.Difficulty = difficulty
	that.Turn = PlayerX
	that.Winner = EmptyCell
	that.Status = StatusOngoing
	that.LastMove = nil
}

func (that *Game) Outcome() Outcome {
	return Evaluate(that.Board)
}

func (that *Game) UpdateGameState() {
	switch outcome := that.Outcome(); {
	// one player wins
	case outcome.IsWin():
		that.Winner = outcome.Winner
		that.Status = StatusFinished
		that.Turn = EmptyCell
	case outcome.IsDraw():
		that.Winner = PlayerTie
		that.Status = StatusFinished
		that.Turn = EmptyCell
	// game continue
	default:
		that.Status = StatusOngoing
	}
}

func (that *Game) MakeTurn(playerMark Mark, cell int) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if cell < 0 || cell >= len(that.Board) {
		return fmt.Errorf("%w: cell %d", ErrInvalidCell, cell)
	}

	if that.Turn != playerMark {
		return apperror.ErrNotYourTurn
	}

	if that.Board[cell] != EmptyCell {
		return apperror.ErrCellOccupied
	}

	that.Board[cell] = playerMark
	that.LastMove = &cell
	that.Turn = playerMark.Opponent()

	that.UpdateGameState()

	return nil
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsComputerTurn() bool {
	return that.IsOngoing() && that.Turn == that.ComputerMark
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}
