package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/iamasit07/4-in-a-row/engine/internal/service/game"
)

// run drives the match from text commands until the player quits or the
// input ends. Computer seats move on their own.
func run(ctrl *game.Controller, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)

	for {
		fmt.Fprint(out, ctrl.RenderText())

		switch {
		case ctrl.WinnerText() != "":
			fmt.Fprintln(out, ctrl.WinnerText())
			fmt.Fprint(out, "u to undo, r to play again, q to quit: ")
		case ctrl.Seat(ctrl.CurrentPlayer()) == game.Computer:
			result, err := ctrl.AdvanceTurn()
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s drops into column %d\n", result.Player, result.Column+1)
			continue
		default:
			fmt.Fprintf(out, "%s, choose a column (1-%d), u to undo, r to reset, q to quit: ",
				ctrl.CurrentPlayer(), ctrl.Width())
		}

		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		switch command := strings.ToLower(strings.TrimSpace(scanner.Text())); command {
		case "q", "quit":
			return nil
		case "r", "reset":
			ctrl.ResetGame()
		case "u", "undo":
			undo(ctrl, out)
		default:
			column, err := strconv.Atoi(command)
			if err != nil {
				fmt.Fprintf(out, "Unknown command %q\n", command)
				continue
			}
			ctrl.SelectColumn(column - 1)
			result, err := ctrl.AdvanceTurn()
			if err != nil {
				return err
			}
			if !result.Played {
				fmt.Fprintf(out, "Column %d is not playable\n", column)
			}
		}
	}
}

// undo takes back moves until it is a human's turn again, so a computer
// does not immediately replay the move that was just taken back.
func undo(ctrl *game.Controller, out io.Writer) {
	if _, _, err := ctrl.UndoLastMove(); err != nil {
		fmt.Fprintln(out, "Nothing to undo")
		return
	}
	for ctrl.Seat(ctrl.CurrentPlayer()) == game.Computer && len(ctrl.History()) > 0 {
		if _, _, err := ctrl.UndoLastMove(); err != nil {
			return
		}
	}
}
