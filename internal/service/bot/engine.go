package bot

import (
	"fmt"

	"github.com/iamasit07/4-in-a-row/engine/internal/domain"
)

const (
	// WinSentinel scores a proven win for PlayerOne (negated for PlayerTwo).
	// It is reduced by the ply at which the win appears, so nearer wins
	// score higher, and always stays above any heuristic sum.
	WinSentinel = 999998
	// SearchBound is the initial alpha-beta window.
	SearchBound = 999999
)

// Decision is the outcome of one top-level search.
type Decision struct {
	Column int
	Score  int
	Nodes  int
}

// Engine picks moves for either player on a shared board. It explores
// hypothetical moves by dropping and removing tokens in place, so the board
// must not be touched by anyone else while a search runs.
type Engine struct {
	board   *domain.Board
	weights HeuristicTable
	order   ColumnOrder
}

func NewEngine(board *domain.Board) *Engine {
	return &Engine{
		board:   board,
		weights: NewHeuristicTable(board.Width(), board.Height()),
		order:   NewColumnOrder(board.Width()),
	}
}

func (e *Engine) Weights() HeuristicTable {
	return e.weights
}

func (e *Engine) Order() ColumnOrder {
	return append(ColumnOrder(nil), e.order...)
}

// DetermineMove returns the column player should drop into, looking depth
// plies ahead.
func (e *Engine) DetermineMove(player domain.Player, depth int) (int, error) {
	decision, err := e.Analyze(player, depth)
	if err != nil {
		return -1, err
	}
	return decision.Column, nil
}

// Analyze evaluates every legal column once, in column order, and keeps the
// best one for player: PlayerOne maximizes and PlayerTwo minimizes. Ties keep
// the earlier column. The board is left exactly as it was found.
func (e *Engine) Analyze(player domain.Player, depth int) (Decision, error) {
	if depth < 1 {
		return Decision{Column: -1}, fmt.Errorf("analyze at depth %d: %w", depth, domain.ErrInvalidDepth)
	}
	if e.board.IsBoardFull() {
		return Decision{Column: -1}, domain.ErrNoLegalMove
	}

	s := search{
		board:   e.board,
		weights: e.weights,
		order:   e.order,
	}

	best := Decision{Column: -1}
	alpha := -SearchBound
	beta := SearchBound

	for _, col := range e.order {
		if !e.board.IsLegalMove(col) {
			continue
		}

		// every top-level search starts from a neutral score
		score := s.playAndSearch(col, depth, alpha, beta, 0, player, 0)

		if best.Column < 0 || improves(player, score, best.Score) {
			best.Column = col
			best.Score = score
		}

		if player == domain.PlayerOne {
			alpha = max(alpha, score)
		} else {
			beta = min(beta, score)
		}
	}

	best.Nodes = s.nodes
	return best, nil
}

// improves reports whether score is strictly better than current for player.
func improves(player domain.Player, score, current int) bool {
	if player == domain.PlayerOne {
		return score > current
	}
	return score < current
}
