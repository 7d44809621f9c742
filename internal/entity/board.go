package entity

import (
	"errors"
	"fmt"
)

type Mark string

const (
	PlayerX   Mark = "X"
	PlayerO   Mark = "O"
	EmptyCell Mark = ""

	// PlayerTie is stored as the winner of a drawn game.
	PlayerTie Mark = "-"
)

const BoardSize = 9

var ErrInvalidBoard = errors.New("invalid board")

// Lines - every row, column and diagonal, in the order they are checked.
var Lines = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Board - 3x3 grid stored row-major.
type Board [BoardSize]Mark

// BoardFromSlice - converts a decoded board, rejecting wrong sizes and unknown marks.
func BoardFromSlice(cells []Mark) (Board, error) {
	var board Board

	if len(cells) != BoardSize {
		return board, fmt.Errorf("%w: expected %d cells, got %d", ErrInvalidBoard, BoardSize, len(cells))
	}

	copy(board[:], cells)

	if err := board.Validate(); err != nil {
		return Board{}, err
	}

	return board, nil
}

func (that Mark) IsValid() bool {
	return that == PlayerX || that == PlayerO || that == EmptyCell
}

// Opponent - returns the other player's mark.
func (that Mark) Opponent() Mark {
	if that == PlayerX {
		return PlayerO
	}
	return PlayerX
}

func (that Board) Validate() error {
	for i, cell := range that {
		if !cell.IsValid() {
			return fmt.Errorf("%w: cell %d has mark %q", ErrInvalidBoard, i, cell)
		}
	}

	return nil
}

// EmptyCells - indices of free cells in ascending order.
func (that Board) EmptyCells() []int {
	cells := make([]int, 0, BoardSize)
	for i, cell := range that {
		if cell == EmptyCell {
			cells = append(cells, i)
		}
	}

	return cells
}

func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}
