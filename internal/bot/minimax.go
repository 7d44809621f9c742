package bot

import "github.com/rocketscienceinc/tictactoe-bot/internal/entity"

const (
	scoreWin  = 10
	scoreLoss = -10
	scoreDraw = 0

	// NoMove - SearchResult.Move when the position is terminal.
	NoMove = -1
)

type SearchResult struct {
	Score int
	Move  int
}

// Search - exhaustive minimax without pruning or depth limit, 9! leaf paths at most.
// Each branch places a mark on board and takes it back before the next one,
// so board is unchanged on return. Scores are not scaled by depth: among equal
// scores the lowest index wins.
func Search(board *entity.Board, maxMark, minMark entity.Mark, maximizing bool) SearchResult {
	switch entity.Winner(*board) {
	case minMark:
		return SearchResult{Score: scoreLoss, Move: NoMove}
	case maxMark:
		return SearchResult{Score: scoreWin, Move: NoMove}
	}

	if board.IsFull() {
		return SearchResult{Score: scoreDraw, Move: NoMove}
	}

	best := SearchResult{Score: scoreWin + 1, Move: NoMove}
	mover := minMark
	if maximizing {
		best.Score = scoreLoss - 1
		mover = maxMark
	}

	for idx, cell := range board {
		if cell != entity.EmptyCell {
			continue
		}

		score := place(board, idx, mover, func() int {
			return Search(board, maxMark, minMark, !maximizing).Score
		})

		if (maximizing && score > best.Score) || (!maximizing && score < best.Score) {
			best = SearchResult{Score: score, Move: idx}
		}
	}

	return best
}

// place - writes mark at idx for the duration of fn.
func place(board *entity.Board, idx int, mark entity.Mark, fn func() int) int {
	board[idx] = mark
	defer func() { board[idx] = entity.EmptyCell }()

	return fn()
}
