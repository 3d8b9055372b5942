package uid

import "github.com/google/uuid"

// GenerateGameID returns a random identifier for one match, used to tie
// log lines of the same game together.
func GenerateGameID() string {
	return uuid.NewString()
}
