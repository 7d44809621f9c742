package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-bot/internal/apperror"
)

func newTestGame(t *testing.T, humanMark Mark) *Game {
	t.Helper()

	game, err := NewGame("123", DifficultyHard, humanMark)
	require.NoError(t, err)

	return game
}

func intPtr(v int) *int {
	return &v
}

func TestNewGame(t *testing.T) {
	t.Run("Human X moves first against computer O", func(t *testing.T) {
		// When: creating a game where the human plays X
		game := newTestGame(t, PlayerX)

		// Then: the game should have the expected initial state
		expectedGame := &Game{
			ID:           "123",
			Board:        Board{},
			Difficulty:   DifficultyHard,
			HumanMark:    PlayerX,
			ComputerMark: PlayerO,
			Turn:         PlayerX,
			Status:       StatusOngoing,
		}

		require.Equal(t, expectedGame, game)
		assert.False(t, game.IsComputerTurn())
	})

	t.Run("Computer moves first when the human plays O", func(t *testing.T) {
		game := newTestGame(t, PlayerO)

		assert.Equal(t, PlayerX, game.ComputerMark)
		assert.True(t, game.IsComputerTurn())
	})

	t.Run("Rejects an invalid mark", func(t *testing.T) {
		_, err := NewGame("123", DifficultyEasy, "Z")

		assert.ErrorIs(t, err, ErrInvalidMark)
	})

	t.Run("Rejects an unknown difficulty", func(t *testing.T) {
		_, err := NewGame("123", "impossible", PlayerX)

		assert.ErrorIs(t, err, ErrUnknownDifficulty)
	})
}

func TestGame_MakeTurn(t *testing.T) {
	t.Run("Successful Turn", func(t *testing.T) {
		// Given: A new game
		game := newTestGame(t, PlayerX)

		// When: Player X makes a valid turn
		err := game.MakeTurn(PlayerX, 0)
		require.NoError(t, err)

		// Then: The game state should reflect the turn and player turn should switch
		expectedGame := &Game{
			ID:           "123",
			Board:        Board{PlayerX, "", "", "", "", "", "", "", ""},
			Difficulty:   DifficultyHard,
			HumanMark:    PlayerX,
			ComputerMark: PlayerO,
			Turn:         PlayerO,
			Status:       StatusOngoing,
			LastMove:     intPtr(0),
		}

		require.Equal(t, expectedGame, game)
		assert.True(t, game.IsComputerTurn())
	})

	t.Run("Error on Cell Already Occupied", func(t *testing.T) {
		// Given: A game where cell 0 is occupied by Player X
		game := newTestGame(t, PlayerX)
		require.NoError(t, game.MakeTurn(PlayerX, 0))

		// When: Player O tries to make a move to the same cell
		err := game.MakeTurn(PlayerO, 0)

		// Then: An ErrCellOccupied error should be returned and the board is unchanged
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, Board{PlayerX, "", "", "", "", "", "", "", ""}, game.Board)
		assert.Equal(t, PlayerO, game.Turn)
	})

	t.Run("Error on Playing Out of Turn", func(t *testing.T) {
		// Given: A new game where it's Player X's turn
		game := newTestGame(t, PlayerX)

		// When: Player O tries to make a move
		err := game.MakeTurn(PlayerO, 1)

		// Then: An ErrNotYourTurn error should be returned
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		assert.Equal(t, Board{}, game.Board)
	})

	t.Run("Error on Invalid Cell Index", func(t *testing.T) {
		game := newTestGame(t, PlayerX)

		assert.ErrorIs(t, game.MakeTurn(PlayerX, 20), ErrInvalidCell)
		assert.ErrorIs(t, game.MakeTurn(PlayerX, -1), ErrInvalidCell)
	})

	t.Run("Winning move finishes the game", func(t *testing.T) {
		// Given: X is one move away from the top row
		game := newTestGame(t, PlayerX)
		game.Board = Board{PlayerX, PlayerX, "", PlayerO, PlayerO, "", "", "", ""}

		// When: X completes the row
		err := game.MakeTurn(PlayerX, 2)

		// Then: the game is finished with X as the winner
		require.NoError(t, err)
		assert.True(t, game.IsFinished())
		assert.Equal(t, PlayerX, game.Winner)
		assert.Equal(t, EmptyCell, game.Turn)
		assert.ErrorIs(t, game.ConfirmOngoingState(), apperror.ErrGameFinished)
	})

	t.Run("Filling the last cell without a line is a tie", func(t *testing.T) {
		// Given: one free cell left and no line possible
		game := newTestGame(t, PlayerX)
		game.Board = Board{PlayerX, PlayerO, PlayerX, PlayerX, PlayerO, PlayerO, PlayerO, PlayerX, ""}

		// When: X fills it
		require.NoError(t, game.MakeTurn(PlayerX, 8))

		// Then: the game ends in a tie
		assert.True(t, game.IsFinished())
		assert.Equal(t, PlayerTie, game.Winner)
	})

	t.Run("Move After Game Finished", func(t *testing.T) {
		game := newTestGame(t, PlayerX)
		game.Status = StatusFinished

		assert.ErrorIs(t, game.MakeTurn(PlayerX, 3), apperror.ErrGameFinished)
	})
}

func TestGame_Reset(t *testing.T) {
	// Given: a finished game
	game := newTestGame(t, PlayerO)
	game.Board = Board{PlayerX, PlayerX, PlayerX, PlayerO, PlayerO, "", "", "", ""}
	game.UpdateGameState()
	require.True(t, game.IsFinished())

	// When: resetting it at a new difficulty
	game.Reset(DifficultyEasy)

	// Then: the board is clear, X moves first and the marks are kept
	assert.Equal(t, Board{}, game.Board)
	assert.Equal(t, DifficultyEasy, game.Difficulty)
	assert.Equal(t, PlayerX, game.Turn)
	assert.Equal(t, EmptyCell, game.Winner)
	assert.Nil(t, game.LastMove)
	assert.Equal(t, PlayerO, game.HumanMark)
	assert.NoError(t, game.ConfirmOngoingState())
}

func TestGame_ConfirmOngoingState(t *testing.T) {
	t.Run("Returns error for unknown game status", func(t *testing.T) {
		game := &Game{Status: "unknown"}

		err := game.ConfirmOngoingState()

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnknownGameStatus)
	})
}
