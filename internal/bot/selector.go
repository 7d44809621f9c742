package bot

import (
	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
)

const blendRandomShare = 0.5

type strategy func(s *Selector, board entity.Board, computer entity.Mark) int

var strategies = map[entity.Difficulty]strategy{
	entity.DifficultyEasy:   (*Selector).randomMove,
	entity.DifficultyMedium: (*Selector).blendedMove,
	entity.DifficultyHard:   (*Selector).bestMove,
}

// Selector - picks the computer's next cell.
type Selector struct {
	rnd RandomSource
}

func NewSelector(rnd RandomSource) *Selector {
	return &Selector{rnd: rnd}
}

// SelectMove - next move for a computer playing O.
func (that *Selector) SelectMove(board entity.Board, level entity.Difficulty) (int, bool) {
	return that.Move(board, entity.PlayerO, level)
}

// Move - next move for the computer playing the given mark. Returns false when
// no cell is free. Unrecognised levels play like hard.
func (that *Selector) Move(board entity.Board, computer entity.Mark, level entity.Difficulty) (int, bool) {
	if board.IsFull() {
		return NoMove, false
	}

	pick, ok := strategies[level]
	if !ok {
		pick = (*Selector).bestMove
	}

	move := pick(that, board, computer)

	return move, move != NoMove
}

func (that *Selector) randomMove(board entity.Board, _ entity.Mark) int {
	cells := board.EmptyCells()

	return cells[that.rnd.Intn(len(cells))]
}

// blendedMove - half of the moves are random, the rest optimal.
func (that *Selector) blendedMove(board entity.Board, computer entity.Mark) int {
	if that.rnd.Float64() < blendRandomShare {
		return that.randomMove(board, computer)
	}

	return that.bestMove(board, computer)
}

func (that *Selector) bestMove(board entity.Board, computer entity.Mark) int {
	return Search(&board, computer, computer.Opponent(), true).Move
}
