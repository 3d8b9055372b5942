package domain

// forward directions only: down, right, down-right, up-right.
// Scanning every cell as a start finds each line exactly once.
var winDirections = [4][2]int{
	{1, 0},
	{0, 1},
	{1, 1},
	{-1, 1},
}

// CheckWinThrough reports whether ToWin consecutive cells of player start at
// (row, col) along one of the forward directions.
func (b *Board) CheckWinThrough(row, col int, player Player) bool {
	if !b.InBounds(row, col) {
		return false
	}

	mark := player.Cell()
	if b.At(row, col) != mark {
		return false
	}

	for _, dir := range winDirections {
		endRow := row + dir[0]*(ToWin-1)
		endCol := col + dir[1]*(ToWin-1)
		if !b.InBounds(endRow, endCol) {
			continue
		}

		found := true
		for i := 1; i < ToWin; i++ {
			if b.At(row+dir[0]*i, col+dir[1]*i) != mark {
				found = false
				break
			}
		}
		if found {
			return true
		}
	}

	return false
}

// HasWon probes every cell as the start of a winning line.
func (b *Board) HasWon(player Player) bool {
	for row := 0; row < b.height; row++ {
		for col := 0; col < b.width; col++ {
			if b.CheckWinThrough(row, col, player) {
				return true
			}
		}
	}
	return false
}

// EvaluateOutcome checks both players for a win before checking for a draw.
func (b *Board) EvaluateOutcome() Outcome {
	if b.HasWon(PlayerOne) {
		return PlayerOneWins
	}
	if b.HasWon(PlayerTwo) {
		return PlayerTwoWins
	}
	if b.IsBoardFull() {
		return Draw
	}
	return Undecided
}
