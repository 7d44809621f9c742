package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
)

const (
	x = entity.PlayerX
	o = entity.PlayerO
	e = entity.EmptyCell
)

func TestSearch_TerminalPositions(t *testing.T) {
	t.Run("Maximizer already won", func(t *testing.T) {
		board := entity.Board{o, o, o, x, x, e, e, e, e}

		result := Search(&board, o, x, false)

		assert.Equal(t, SearchResult{Score: scoreWin, Move: NoMove}, result)
	})

	t.Run("Minimizer already won", func(t *testing.T) {
		board := entity.Board{x, x, x, o, o, e, e, e, e}

		result := Search(&board, o, x, true)

		assert.Equal(t, SearchResult{Score: scoreLoss, Move: NoMove}, result)
	})

	t.Run("Full board is a draw", func(t *testing.T) {
		board := entity.Board{x, o, x, x, o, o, o, x, x}

		result := Search(&board, o, x, true)

		assert.Equal(t, SearchResult{Score: scoreDraw, Move: NoMove}, result)
	})
}

func TestSearch_RestoresBoard(t *testing.T) {
	// Given: a position in the middle of the game
	board := entity.Board{x, e, e, e, o, e, e, e, x}
	snapshot := board

	// When: searching it in place
	Search(&board, o, x, true)

	// Then: every placed mark was taken back
	assert.Equal(t, snapshot, board)
}

func TestSearch_TiesGoToLowestIndex(t *testing.T) {
	// Given: O can win at 2 (top row) or at 6 (left column)
	board := entity.Board{
		o, o, e,
		o, x, x,
		e, x, e,
	}

	// When: searching for the maximizer
	result := Search(&board, o, x, true)

	// Then: the first winning cell is chosen, not the quickest or the last
	assert.Equal(t, SearchResult{Score: scoreWin, Move: 2}, result)
}

func TestSearch_EmptyBoardIsADraw(t *testing.T) {
	board := entity.Board{}

	result := Search(&board, o, x, true)

	assert.Equal(t, scoreDraw, result.Score)
	assert.Equal(t, 0, result.Move)
}
