package bot

import (
	"github.com/iamasit07/4-in-a-row/engine/internal/domain"
)

// search carries the per-call state of one Analyze run.
type search struct {
	board   *domain.Board
	weights HeuristicTable
	order   ColumnOrder
	nodes   int
}

// minimax implements the minimax algorithm with alpha-beta pruning.
// baseScore is the running sum of heuristic weights of the cells played
// since the root, signed towards PlayerOne.
func (s *search) minimax(depth, alpha, beta, baseScore int, player domain.Player, ply int) int {
	s.nodes++

	// Terminal conditions
	if s.board.HasWon(domain.PlayerOne) {
		return WinSentinel - ply
	}
	if s.board.HasWon(domain.PlayerTwo) {
		return -(WinSentinel - ply)
	}
	if depth == 0 || s.board.IsBoardFull() {
		return baseScore
	}

	if player == domain.PlayerOne {
		maxEval := -SearchBound
		for _, col := range s.order {
			if !s.board.IsLegalMove(col) {
				continue
			}

			eval := s.playAndSearch(col, depth, alpha, beta, baseScore, player, ply)
			maxEval = max(maxEval, eval)
			alpha = max(alpha, eval)

			if beta <= alpha {
				break // Beta cutoff
			}
		}
		return maxEval
	}

	minEval := SearchBound
	for _, col := range s.order {
		if !s.board.IsLegalMove(col) {
			continue
		}

		eval := s.playAndSearch(col, depth, alpha, beta, baseScore, player, ply)
		minEval = min(minEval, eval)
		beta = min(beta, eval)

		if beta <= alpha {
			break // Alpha cutoff
		}
	}
	return minEval
}

// playAndSearch drops player's token in col, scores the resulting position
// one ply deeper for the opponent and takes the token back.
// col must be a legal move.
func (s *search) playAndSearch(col, depth, alpha, beta, baseScore int, player domain.Player, ply int) int {
	row, _ := s.board.DropToken(col, player)

	childScore := baseScore
	if player == domain.PlayerOne {
		childScore += s.weights.Weight(row, col)
	} else {
		childScore -= s.weights.Weight(row, col)
	}

	eval := s.minimax(depth-1, alpha, beta, childScore, player.Opponent(), ply+1)

	_, _ = s.board.RemoveTopToken(col)
	return eval
}
