package domain

import "fmt"

// MoveHistory is the stack of columns played for real moves.
type MoveHistory struct {
	columns []int
}

func (h *MoveHistory) Push(col int) {
	h.columns = append(h.columns, col)
}

// Pop removes and returns the most recent column.
func (h *MoveHistory) Pop() (int, bool) {
	if len(h.columns) == 0 {
		return -1, false
	}
	last := len(h.columns) - 1
	col := h.columns[last]
	h.columns = h.columns[:last]
	return col, true
}

func (h *MoveHistory) Clear() {
	h.columns = h.columns[:0]
}

func (h MoveHistory) Len() int {
	return len(h.columns)
}

// Columns returns a copy, most recent move first.
func (h MoveHistory) Columns() []int {
	out := make([]int, len(h.columns))
	for i, col := range h.columns {
		out[len(h.columns)-1-i] = col
	}
	return out
}

// Game is the real (non-hypothetical) state of one match.
type Game struct {
	Board         *Board
	CurrentPlayer Player
	History       MoveHistory
}

func NewGame(width, height int) (*Game, error) {
	board, err := NewBoard(width, height)
	if err != nil {
		return nil, err
	}
	return &Game{
		Board:         board,
		CurrentPlayer: PlayerOne,
	}, nil
}

// MakeMove drops a token for the player to move, records the column and
// passes the turn. Board errors are returned unchanged.
func (g *Game) MakeMove(column int) (int, error) {
	row, err := g.Board.DropToken(column, g.CurrentPlayer)
	if err != nil {
		return -1, err
	}

	g.History.Push(column)
	g.CurrentPlayer = g.CurrentPlayer.Opponent()

	return row, nil
}

// UndoMove takes back the most recent real move and hands the turn back.
func (g *Game) UndoMove() (int, int, error) {
	column, ok := g.History.Pop()
	if !ok {
		return -1, -1, ErrNoHistory
	}

	row, err := g.Board.RemoveTopToken(column)
	if err != nil {
		// history and board disagree, keep the column recorded
		g.History.Push(column)
		return -1, -1, fmt.Errorf("undo column %d: %w", column, err)
	}

	g.CurrentPlayer = g.CurrentPlayer.Opponent()
	return row, column, nil
}

func (g *Game) Reset() {
	g.Board.Reset()
	g.History.Clear()
	g.CurrentPlayer = PlayerOne
}

func (g *Game) Outcome() Outcome {
	return g.Board.EvaluateOutcome()
}

func (g *Game) IsFinished() bool {
	return g.Outcome().IsTerminal()
}
