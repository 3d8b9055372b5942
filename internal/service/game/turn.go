package game

import (
	"github.com/iamasit07/4-in-a-row/engine/internal/domain"
)

// TurnResult describes what a single AdvanceTurn call did.
type TurnResult struct {
	Player  domain.Player
	Played  bool
	Row     int
	Column  int
	Outcome domain.Outcome
}

func (c *Controller) Seat(player domain.Player) Seat {
	return c.seats[seatIndex(player)]
}

func (c *Controller) SetSeat(player domain.Player, seat Seat) {
	c.seats[seatIndex(player)] = seat
}

func (c *Controller) Depth() int {
	return c.depth
}

func (c *Controller) SetDepth(depth int) error {
	if depth < 1 {
		return domain.ErrInvalidDepth
	}
	c.depth = depth
	return nil
}

// SelectColumn records the column a human picked. It is consumed by the
// next AdvanceTurn.
func (c *Controller) SelectColumn(column int) {
	c.pending = column
}

// AdvanceTurn moves the match forward by at most one move. Computer seats
// search and play; human seats play their selected column when it is legal.
// Nothing is played once the outcome is decided.
func (c *Controller) AdvanceTurn() (TurnResult, error) {
	player := c.game.CurrentPlayer
	result := TurnResult{Player: player, Row: -1, Column: -1}

	selected := c.pending
	c.pending = -1

	if c.game.IsFinished() {
		result.Outcome = c.CheckOutcome()
		return result, nil
	}

	column := selected
	if c.Seat(player) == Computer {
		var err error
		column, err = c.ComputeAutomatedMove(c.depth)
		if err != nil {
			result.Outcome = c.CheckOutcome()
			return result, err
		}
	} else if !c.IsLegalMove(column) {
		result.Outcome = domain.Undecided
		return result, nil
	}

	row, err := c.PlayMove(column)
	if err != nil {
		result.Outcome = c.CheckOutcome()
		return result, err
	}

	result.Played = true
	result.Row = row
	result.Column = column
	result.Outcome = c.CheckOutcome()
	return result, nil
}

func seatIndex(player domain.Player) int {
	if player == domain.PlayerTwo {
		return 1
	}
	return 0
}
