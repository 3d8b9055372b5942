package domain

// Cell is the content of one board position.
type Cell uint8

const (
	Empty Cell = iota
	PlayerOneCell
	PlayerTwoCell
)

// Player identifies one of the two sides. The zero value is not a valid player.
type Player uint8

const (
	PlayerOne Player = 1
	PlayerTwo Player = 2
)

const (
	DefaultColumns = 7
	DefaultRows    = 6
	ToWin          = 4
)

func (p Player) Opponent() Player {
	if p == PlayerOne {
		return PlayerTwo
	}
	return PlayerOne
}

// Cell returns the mark this player leaves on the board.
func (p Player) Cell() Cell {
	if p == PlayerOne {
		return PlayerOneCell
	}
	return PlayerTwoCell
}

// Mark is the single character used for the player in text renderings.
func (p Player) Mark() byte {
	if p == PlayerOne {
		return '1'
	}
	return '2'
}

func (p Player) String() string {
	switch p {
	case PlayerOne:
		return "Player 1"
	case PlayerTwo:
		return "Player 2"
	default:
		return "Unknown"
	}
}

// Mark returns ' ' for an empty cell, otherwise the owning player's mark.
func (c Cell) Mark() byte {
	switch c {
	case PlayerOneCell:
		return PlayerOne.Mark()
	case PlayerTwoCell:
		return PlayerTwo.Mark()
	default:
		return ' '
	}
}

// to represent the state of a match, computed on demand
type Outcome uint8

const (
	Undecided Outcome = iota
	PlayerOneWins
	PlayerTwoWins
	Draw
)

func (o Outcome) String() string {
	switch o {
	case PlayerOneWins:
		return "player_one_wins"
	case PlayerTwoWins:
		return "player_two_wins"
	case Draw:
		return "draw"
	default:
		return "undecided"
	}
}

// IsTerminal reports whether the match is over.
func (o Outcome) IsTerminal() bool {
	return o != Undecided
}

// basic errors that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrColumnOutOfRange  Error = "column out of range"
	ErrColumnFull        Error = "column is full"
	ErrColumnEmpty       Error = "column is empty"
	ErrNoHistory         Error = "no move to undo"
	ErrNoLegalMove       Error = "no legal move"
	ErrInvalidDimensions Error = "board dimensions must be positive"
	ErrInvalidDepth      Error = "search depth must be at least 1"
)
