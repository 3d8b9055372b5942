package game

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/iamasit07/4-in-a-row/engine/internal/domain"
	"github.com/iamasit07/4-in-a-row/engine/internal/service/bot"
	"github.com/iamasit07/4-in-a-row/engine/pkg/uid"
)

// Seat says who plays a side.
type Seat uint8

const (
	Human Seat = iota
	Computer
)

func (s Seat) String() string {
	if s == Computer {
		return "computer"
	}
	return "human"
}

// ParseSeat accepts "human" or "computer".
func ParseSeat(s string) (Seat, error) {
	switch s {
	case "human":
		return Human, nil
	case "computer":
		return Computer, nil
	default:
		return Human, fmt.Errorf("unknown seat %q", s)
	}
}

const DefaultDepth = 1

// Controller owns one match: the board, whose turn it is and the move
// history. It is not safe for concurrent use.
type Controller struct {
	gameID  string
	game    *domain.Game
	engine  *bot.Engine
	seats   [2]Seat
	depth   int
	pending int
	logger  *zap.SugaredLogger
}

type Option func(*Controller)

func WithLogger(logger *zap.SugaredLogger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func WithSeats(playerOne, playerTwo Seat) Option {
	return func(c *Controller) {
		c.seats = [2]Seat{playerOne, playerTwo}
	}
}

// WithDepth sets the search depth used by AdvanceTurn for computer seats.
// Values below 1 are ignored.
func WithDepth(depth int) Option {
	return func(c *Controller) {
		if depth >= 1 {
			c.depth = depth
		}
	}
}

func NewController(width, height int, opts ...Option) (*Controller, error) {
	c := &Controller{
		depth:   DefaultDepth,
		pending: -1,
		logger:  zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(c)
	}

	if err := c.NewGame(width, height); err != nil {
		return nil, err
	}
	return c, nil
}

// NewGame replaces the board with an empty width x height one and gives the
// first move to PlayerOne.
func (c *Controller) NewGame(width, height int) error {
	g, err := domain.NewGame(width, height)
	if err != nil {
		return err
	}

	c.game = g
	c.engine = bot.NewEngine(g.Board)
	c.gameID = uid.GenerateGameID()
	c.pending = -1

	c.logger.Infow("game created",
		"game_id", c.gameID,
		"width", width,
		"height", height,
		"player_one", c.seats[0].String(),
		"player_two", c.seats[1].String(),
		"depth", c.depth,
	)
	return nil
}

// ResetGame clears the board and history, keeping dimensions and seats.
func (c *Controller) ResetGame() {
	c.game.Reset()
	c.gameID = uid.GenerateGameID()
	c.pending = -1

	c.logger.Infow("game reset", "game_id", c.gameID)
}

// PlayMove drops a token for the current player.
func (c *Controller) PlayMove(column int) (int, error) {
	player := c.game.CurrentPlayer

	row, err := c.game.MakeMove(column)
	if err != nil {
		c.logger.Debugw("move rejected", "game_id", c.gameID, "player", player.String(), "column", column, "error", err)
		return -1, err
	}

	c.logger.Debugw("move played",
		"game_id", c.gameID,
		"player", player.String(),
		"column", column,
		"row", row,
		"moves", c.game.History.Len(),
	)
	c.logOutcome()
	return row, nil
}

// UndoLastMove takes back the most recent move and returns where it was.
func (c *Controller) UndoLastMove() (int, int, error) {
	row, column, err := c.game.UndoMove()
	if err != nil {
		return -1, -1, err
	}

	c.logger.Debugw("move undone",
		"game_id", c.gameID,
		"column", column,
		"row", row,
		"next_player", c.game.CurrentPlayer.String(),
	)
	return row, column, nil
}

// ComputeAutomatedMove searches depth plies for the current player and
// returns the chosen column without playing it.
func (c *Controller) ComputeAutomatedMove(depth int) (int, error) {
	decision, err := c.engine.Analyze(c.game.CurrentPlayer, depth)
	if err != nil {
		return -1, err
	}

	c.logger.Debugw("engine decision",
		"game_id", c.gameID,
		"player", c.game.CurrentPlayer.String(),
		"depth", depth,
		"column", decision.Column,
		"score", decision.Score,
		"nodes", decision.Nodes,
	)
	return decision.Column, nil
}

func (c *Controller) IsLegalMove(column int) bool {
	return c.game.Board.IsLegalMove(column)
}

func (c *Controller) CheckOutcome() domain.Outcome {
	return c.game.Outcome()
}

// RenderText draws the board as bordered rows, top row first.
func (c *Controller) RenderText() string {
	return c.game.Board.String()
}

// WinnerText is the end-of-game message, empty while the game goes on.
func (c *Controller) WinnerText() string {
	switch c.CheckOutcome() {
	case domain.PlayerOneWins:
		return domain.PlayerOne.String() + " is the winner!"
	case domain.PlayerTwoWins:
		return domain.PlayerTwo.String() + " is the winner!"
	case domain.Draw:
		return "Draw! No one won."
	default:
		return ""
	}
}

func (c *Controller) CurrentPlayer() domain.Player {
	return c.game.CurrentPlayer
}

// History returns the played columns, most recent first.
func (c *Controller) History() []int {
	return c.game.History.Columns()
}

func (c *Controller) Width() int {
	return c.game.Board.Width()
}

func (c *Controller) Height() int {
	return c.game.Board.Height()
}

func (c *Controller) CellAt(row, column int) domain.Cell {
	return c.game.Board.At(row, column)
}

func (c *Controller) GameID() string {
	return c.gameID
}

func (c *Controller) logOutcome() {
	outcome := c.game.Outcome()
	if !outcome.IsTerminal() {
		return
	}
	c.logger.Infow("game over",
		"game_id", c.gameID,
		"outcome", outcome.String(),
		"moves", c.game.History.Len(),
	)
	c.logger.Debugf("final board:\n%s", c.RenderText())
}
