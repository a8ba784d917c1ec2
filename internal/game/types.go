// internal/game/types.go
//
// Core type definitions for the Wordle game engine.
// Defines:
//   - LetterStatus: per-letter result of a guess (correct/present/absent).
//   - Status: lifecycle of a single game (in_progress → won | lost).
//   - Guess: one scored attempt.
//   - State: an immutable snapshot of a game, passed into and returned from
//     every engine operation.

package game

import (
	"errors"

	"github.com/robalobadob/wordle/internal/words"
)

// MaxAttempts is the number of guesses a player gets.
const MaxAttempts = 6

// WordLength is the number of letters per guess.
const WordLength = words.WordLength

// LetterStatus represents the evaluation result for a single letter in a guess.
//   - "correct": letter is in the secret at the same position.
//   - "present": letter is in the secret elsewhere, bounded by unmatched occurrences.
//   - "absent":  letter contributes to no match.
type LetterStatus string

const (
	Correct LetterStatus = "correct"
	Present LetterStatus = "present"
	Absent  LetterStatus = "absent"
)

// rank orders statuses by confidence; unknown values rank lowest.
func (s LetterStatus) rank() int {
	switch s {
	case Correct:
		return 3
	case Present:
		return 2
	case Absent:
		return 1
	}
	return 0
}

// Status is the lifecycle state of a game. Won and Lost are terminal.
type Status string

const (
	InProgress Status = "in_progress"
	Won        Status = "won"
	Lost       Status = "lost"
)

// Guess is one accepted attempt and its feedback.
type Guess struct {
	Letters  string         `json:"letters"`
	Feedback []LetterStatus `json:"feedback"`
}

// State holds a single game. The zero value is not a usable game; build one
// with Start or StartWithPicker.
//
// State is treated as a value: Submit never mutates the State it is given.
type State struct {
	secret   string
	list     words.List
	attempts []Guess
	status   Status
}

// Errors reported by the engine.
var (
	ErrEmptyWordList   = errors.New("game: word list is empty")
	ErrIncompleteGuess = errors.New("game: not enough letters")
	ErrUnknownWord     = errors.New("game: word not in list")
	ErrPickOutOfRange  = errors.New("game: picked index out of range")
)

// Prompt returns the player-facing message for a guess error, or "" if err
// is not one the player can fix by guessing again.
func Prompt(err error) string {
	switch {
	case errors.Is(err, ErrIncompleteGuess):
		return "Not enough letters"
	case errors.Is(err, ErrUnknownWord):
		return "Word not in list"
	}
	return ""
}
