package main

import "strings"

// difficulty labels shown to the player and the search depth behind each
var difficultyDepths = map[string]int{
	"easy":   1,
	"medium": 2,
	"hard":   4,
}

// DepthForDifficulty maps a difficulty label to plies of lookahead.
// Unknown labels play at the easy level.
func DepthForDifficulty(label string) int {
	if depth, ok := difficultyDepths[strings.ToLower(strings.TrimSpace(label))]; ok {
		return depth
	}
	return difficultyDepths["easy"]
}
