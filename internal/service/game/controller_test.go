package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/iamasit07/4-in-a-row/engine/internal/domain"
)

// a full 7x6 game with alternating moves that ends without a line
var drawnGame = []int{
	4, 3, 6, 0, 1, 4, 5, 5, 1, 1, 5, 0, 1, 6, 0, 1, 5, 5, 1, 0, 4,
	6, 3, 2, 6, 6, 0, 4, 6, 5, 2, 0, 4, 2, 4, 2, 2, 2, 3, 3, 3, 3,
}

func newController(t *testing.T, opts ...Option) *Controller {
	t.Helper()
	c, err := NewController(domain.DefaultColumns, domain.DefaultRows, opts...)
	require.NoError(t, err)
	return c
}

func playAll(t *testing.T, c *Controller, columns ...int) {
	t.Helper()
	for _, col := range columns {
		_, err := c.PlayMove(col)
		require.NoError(t, err)
	}
}

func TestNewControllerStartsEmpty(t *testing.T) {
	for _, width := range []int{1, 4, 7, 10} {
		c, err := NewController(width, domain.DefaultRows)
		require.NoError(t, err)

		for row := 0; row < c.Height(); row++ {
			for col := 0; col < c.Width(); col++ {
				assert.Equal(t, domain.Empty, c.CellAt(row, col))
			}
		}
		assert.Empty(t, c.History())
		assert.Equal(t, domain.PlayerOne, c.CurrentPlayer())
		assert.Equal(t, domain.Undecided, c.CheckOutcome())
		assert.NotEmpty(t, c.GameID())
	}
}

func TestNewControllerRejectsBadDimensions(t *testing.T) {
	_, err := NewController(0, 6)
	assert.ErrorIs(t, err, domain.ErrInvalidDimensions)
}

func TestPlayMoveFillsColumnBottomUp(t *testing.T) {
	c := newController(t)

	for col := 0; col < c.Width(); col++ {
		for k := 0; k < c.Height(); k++ {
			row, err := c.PlayMove(col)
			require.NoError(t, err)
			assert.Equal(t, c.Height()-1-k, row)
		}
		c.ResetGame()
	}
}

func TestPlayMoveTogglesPlayerAndRecordsHistory(t *testing.T) {
	c := newController(t)

	playAll(t, c, 3, 4, 2)
	assert.Equal(t, domain.PlayerTwo, c.CurrentPlayer())
	assert.Equal(t, []int{2, 4, 3}, c.History())
	assert.Equal(t, domain.PlayerOneCell, c.CellAt(5, 3))
	assert.Equal(t, domain.PlayerTwoCell, c.CellAt(5, 4))
}

func TestPlayMovePropagatesBoardErrors(t *testing.T) {
	c, err := NewController(domain.DefaultColumns, 1)
	require.NoError(t, err)
	playAll(t, c, 0)

	_, err = c.PlayMove(0)
	assert.ErrorIs(t, err, domain.ErrColumnFull)
	_, err = c.PlayMove(-1)
	assert.ErrorIs(t, err, domain.ErrColumnOutOfRange)
	_, err = c.PlayMove(domain.DefaultColumns)
	assert.ErrorIs(t, err, domain.ErrColumnOutOfRange)

	assert.Equal(t, domain.PlayerTwo, c.CurrentPlayer())
	assert.Equal(t, []int{0}, c.History())
}

func TestFullBoardHasNoLegalMove(t *testing.T) {
	c := newController(t)
	playAll(t, c, drawnGame...)

	for col := 0; col < c.Width(); col++ {
		assert.False(t, c.IsLegalMove(col))
	}
	assert.Equal(t, domain.Draw, c.CheckOutcome())
	assert.Equal(t, "Draw! No one won.", c.WinnerText())

	_, err := c.ComputeAutomatedMove(2)
	assert.ErrorIs(t, err, domain.ErrNoLegalMove)
}

func TestUndoRestoresPriorState(t *testing.T) {
	c := newController(t)
	playAll(t, c, 3, 3, 4, 2)

	for col := 0; col < c.Width(); col++ {
		board := c.RenderText()
		player := c.CurrentPlayer()
		history := c.History()

		row, err := c.PlayMove(col)
		require.NoError(t, err)
		undoRow, undoCol, err := c.UndoLastMove()
		require.NoError(t, err)

		assert.Equal(t, row, undoRow)
		assert.Equal(t, col, undoCol)
		assert.Equal(t, board, c.RenderText())
		assert.Equal(t, player, c.CurrentPlayer())
		assert.Equal(t, history, c.History())
	}
}

func TestUndoWithoutHistory(t *testing.T) {
	c := newController(t)

	_, _, err := c.UndoLastMove()
	assert.ErrorIs(t, err, domain.ErrNoHistory)
}

func TestUndoUnwindsWholeGame(t *testing.T) {
	c := newController(t)
	playAll(t, c, 3, 2, 3, 2, 3)

	for i := 0; i < 5; i++ {
		_, _, err := c.UndoLastMove()
		require.NoError(t, err)
	}
	assert.Empty(t, c.History())
	assert.Equal(t, domain.PlayerOne, c.CurrentPlayer())
	_, _, err := c.UndoLastMove()
	assert.ErrorIs(t, err, domain.ErrNoHistory)
}

func TestWinnerText(t *testing.T) {
	c := newController(t)
	assert.Empty(t, c.WinnerText())

	// PlayerOne builds along the bottom while PlayerTwo stacks column 6
	playAll(t, c, 0, 6, 1, 6, 2, 6, 3)
	assert.Equal(t, domain.PlayerOneWins, c.CheckOutcome())
	assert.Equal(t, "Player 1 is the winner!", c.WinnerText())

	c.ResetGame()
	playAll(t, c, 0, 6, 1, 6, 2, 6, 5, 6)
	assert.Equal(t, domain.PlayerTwoWins, c.CheckOutcome())
	assert.Equal(t, "Player 2 is the winner!", c.WinnerText())
}

func TestComputeAutomatedMoveDoesNotMutate(t *testing.T) {
	c := newController(t)
	playAll(t, c, 3, 3, 2)
	board := c.RenderText()
	history := c.History()

	col, err := c.ComputeAutomatedMove(4)
	require.NoError(t, err)
	assert.True(t, c.IsLegalMove(col))
	assert.Equal(t, board, c.RenderText())
	assert.Equal(t, history, c.History())
	assert.Equal(t, domain.PlayerTwo, c.CurrentPlayer())

	again, err := c.ComputeAutomatedMove(4)
	require.NoError(t, err)
	assert.Equal(t, col, again)
}

func TestComputeAutomatedMoveScenarios(t *testing.T) {
	tests := []struct {
		name  string
		moves []int
		depth int
		want  int
	}{
		{name: "empty board depth 1", depth: 1, want: 3},
		{name: "empty board depth 2", depth: 2, want: 3},
		{name: "empty board depth 4", depth: 4, want: 3},
		{name: "block bottom row threat", moves: []int{1, 0, 2, 6, 3}, depth: 2, want: 4},
		{name: "block bottom row threat deeper", moves: []int{1, 0, 2, 6, 3}, depth: 4, want: 4},
		{name: "complete bottom row", moves: []int{1, 0, 2, 6, 3, 5}, depth: 1, want: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newController(t)
			playAll(t, c, tt.moves...)

			col, err := c.ComputeAutomatedMove(tt.depth)
			require.NoError(t, err)
			assert.Equal(t, tt.want, col)
		})
	}
}

func TestComputeAutomatedMoveRejectsZeroDepth(t *testing.T) {
	c := newController(t)

	_, err := c.ComputeAutomatedMove(0)
	assert.ErrorIs(t, err, domain.ErrInvalidDepth)
}

func TestResetGameKeepsSeatsAndSize(t *testing.T) {
	c, err := NewController(5, 4, WithSeats(Computer, Human), WithDepth(3))
	require.NoError(t, err)
	playAll(t, c, 1, 2, 3)
	previousID := c.GameID()

	c.ResetGame()
	assert.Empty(t, c.History())
	assert.Equal(t, domain.PlayerOne, c.CurrentPlayer())
	assert.Equal(t, 5, c.Width())
	assert.Equal(t, 4, c.Height())
	assert.Equal(t, Computer, c.Seat(domain.PlayerOne))
	assert.Equal(t, 3, c.Depth())
	assert.NotEqual(t, previousID, c.GameID())
}

func TestNewGameChangesSize(t *testing.T) {
	c := newController(t)
	playAll(t, c, 3)

	require.NoError(t, c.NewGame(4, 4))
	assert.Equal(t, 4, c.Width())
	assert.Equal(t, 4, c.Height())
	assert.Empty(t, c.History())

	col, err := c.ComputeAutomatedMove(2)
	require.NoError(t, err)
	assert.Contains(t, []int{0, 1, 2, 3}, col)
}

func TestControllerLogsGameLifecycle(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	c := newController(t, WithLogger(zap.New(core).Sugar()))

	playAll(t, c, 0, 6, 1, 6, 2, 6, 3)

	created := logs.FilterMessage("game created").All()
	require.Len(t, created, 1)
	assert.Equal(t, c.GameID(), created[0].ContextMap()["game_id"])

	assert.Equal(t, 7, logs.FilterMessage("move played").Len())

	over := logs.FilterMessage("game over").All()
	require.Len(t, over, 1)
	assert.Equal(t, "player_one_wins", over[0].ContextMap()["outcome"])
}

func TestParseSeat(t *testing.T) {
	seat, err := ParseSeat("human")
	require.NoError(t, err)
	assert.Equal(t, Human, seat)

	seat, err = ParseSeat("computer")
	require.NoError(t, err)
	assert.Equal(t, Computer, seat)

	_, err = ParseSeat("robot")
	assert.Error(t, err)
}

func TestCellAtOutsideBoard(t *testing.T) {
	c := newController(t)
	playAll(t, c, 0)

	assert.Equal(t, domain.PlayerOneCell, c.CellAt(5, 0))
	assert.Equal(t, domain.Empty, c.CellAt(4, 7))
	assert.Equal(t, domain.Empty, c.CellAt(6, 0))
}
