package domain

import (
	"fmt"
	"strings"
)

// Board is a fixed width x height grid stored row-major in a single slice.
// Row 0 is the top row, so tokens fall towards Height()-1.
type Board struct {
	width  int
	height int
	cells  []Cell
}

func NewBoard(width, height int) (*Board, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("new board %dx%d: %w", width, height, ErrInvalidDimensions)
	}
	return &Board{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}, nil
}

func (b *Board) Width() int {
	return b.width
}

func (b *Board) Height() int {
	return b.height
}

// At returns the cell at (row, col), or Empty outside the board.
func (b *Board) At(row, col int) Cell {
	if !b.InBounds(row, col) {
		return Empty
	}
	return b.cells[b.index(row, col)]
}

func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.height && col >= 0 && col < b.width
}

// Reset empties every cell without reallocating.
func (b *Board) Reset() {
	for i := range b.cells {
		b.cells[i] = Empty
	}
}

func (b *Board) IsLegalMove(col int) bool {
	if col < 0 || col >= b.width {
		return false
	}

	// board[0] is the top row, a column is open while its top cell is empty
	return b.cells[col] == Empty
}

func (b *Board) IsBoardFull() bool {
	for c := 0; c < b.width; c++ {
		if b.cells[c] == Empty {
			return false
		}
	}
	return true
}

// DropToken places the player's token in the lowest empty cell of col and
// returns the landing row.
func (b *Board) DropToken(col int, player Player) (int, error) {
	if col < 0 || col >= b.width {
		return -1, fmt.Errorf("drop into column %d: %w", col, ErrColumnOutOfRange)
	}

	// walk up from the bottom until the first empty cell
	for row := b.height - 1; row >= 0; row-- {
		i := b.index(row, col)
		if b.cells[i] == Empty {
			b.cells[i] = player.Cell()
			return row, nil
		}
	}

	return -1, fmt.Errorf("drop into column %d: %w", col, ErrColumnFull)
}

// RemoveTopToken clears the topmost occupied cell of col and returns its row.
func (b *Board) RemoveTopToken(col int) (int, error) {
	if col < 0 || col >= b.width {
		return -1, fmt.Errorf("remove from column %d: %w", col, ErrColumnOutOfRange)
	}

	for row := 0; row < b.height; row++ {
		i := b.index(row, col)
		if b.cells[i] != Empty {
			b.cells[i] = Empty
			return row, nil
		}
	}

	return -1, fmt.Errorf("remove from column %d: %w", col, ErrColumnEmpty)
}

// Occupied counts the non-empty cells.
func (b *Board) Occupied() int {
	count := 0
	for _, cell := range b.cells {
		if cell != Empty {
			count++
		}
	}
	return count
}

// this creates a deep copy of the board
func (b *Board) clone() *Board {
	clone := &Board{width: b.width, height: b.height, cells: make([]Cell, len(b.cells))}
	copy(clone.cells, b.cells)
	return clone
}

// String renders the board top row first, one bordered cell per column,
// followed by a dashed rule.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow((2*b.width + 2) * (b.height + 1))

	for row := 0; row < b.height; row++ {
		sb.WriteByte('|')
		for col := 0; col < b.width; col++ {
			sb.WriteByte(b.At(row, col).Mark())
			sb.WriteByte('|')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString(strings.Repeat("-", 2*b.width+1))
	sb.WriteByte('\n')

	return sb.String()
}

func (b *Board) index(row, col int) int {
	return row*b.width + col
}
