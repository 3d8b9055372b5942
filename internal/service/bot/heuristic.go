package bot

import (
	"github.com/iamasit07/4-in-a-row/engine/internal/domain"
)

// HeuristicTable holds, for every cell, how many ToWin-long lines fit on
// the board and pass through it. Central cells take part in more lines and
// are worth more.
type HeuristicTable struct {
	width   int
	height  int
	weights []int
}

// NewHeuristicTable counts windows in the four line directions. For the
// standard 7x6 board this is the classic 3..13 table.
func NewHeuristicTable(width, height int) HeuristicTable {
	t := HeuristicTable{
		width:   width,
		height:  height,
		weights: make([]int, width*height),
	}

	directions := [][2]int{
		{0, 1},  // horizontal
		{1, 0},  // vertical
		{1, 1},  // diagonal \
		{-1, 1}, // diagonal /
	}

	span := domain.ToWin - 1
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			for _, dir := range directions {
				// each window is counted once, from its first cell
				if !t.inBounds(row+dir[0]*span, col+dir[1]*span) {
					continue
				}
				for i := 0; i <= span; i++ {
					t.weights[(row+dir[0]*i)*width+col+dir[1]*i]++
				}
			}
		}
	}

	return t
}

func (t HeuristicTable) Weight(row, col int) int {
	return t.weights[row*t.width+col]
}

func (t HeuristicTable) Width() int {
	return t.width
}

func (t HeuristicTable) Height() int {
	return t.height
}

// rows returns the table as a fresh height x width grid.
func (t HeuristicTable) rows() [][]int {
	rows := make([][]int, t.height)
	for r := range rows {
		rows[r] = make([]int, t.width)
		copy(rows[r], t.weights[r*t.width:(r+1)*t.width])
	}
	return rows
}

func (t HeuristicTable) inBounds(row, col int) bool {
	return row >= 0 && row < t.height && col >= 0 && col < t.width
}
