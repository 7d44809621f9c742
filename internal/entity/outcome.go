package entity

type Result string

const (
	ResultInProgress Result = "in_progress"
	ResultWin        Result = "win"
	ResultDraw       Result = "draw"
)

// Outcome - verdict on a board. Winner is set only for ResultWin.
type Outcome struct {
	Result Result `json:"result"`
	Winner Mark   `json:"winner,omitempty"`
}

func (that Outcome) IsWin() bool {
	return that.Result == ResultWin
}

func (that Outcome) IsDraw() bool {
	return that.Result == ResultDraw
}

func (that Outcome) IsFinished() bool {
	return that.Result != ResultInProgress
}

// Evaluate - checks the lines for three identical marks, then whether the board is full.
func Evaluate(board Board) Outcome {
	if winner := Winner(board); winner != EmptyCell {
		return Outcome{Result: ResultWin, Winner: winner}
	}

	// the game will continue until all the squares are full
	if board.IsFull() {
		return Outcome{Result: ResultDraw}
	}

	return Outcome{Result: ResultInProgress}
}

// Winner - the mark holding a complete line, or EmptyCell.
func Winner(board Board) Mark {
	for _, line := range Lines {
		a, b, c := board[line[0]], board[line[1]], board[line[2]]
		if a != EmptyCell && a == b && b == c {
			return a
		}
	}

	return EmptyCell
}
