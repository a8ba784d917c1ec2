// internal/game/engine.go
//
// Core game engine for a single Wordle session.
// Responsibilities:
//   - Start games with a secret drawn from a word list.
//   - Validate and apply guesses (length, word list membership).
//   - Score guesses using the classic two-pass Wordle algorithm.
//   - Track state transitions: in_progress → won/lost.
//
// Every operation takes a State and returns a new State. Nothing here holds
// package-level game state, so any number of games may run side by side.

package game

import (
	"crypto/rand"
	"math/big"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/robalobadob/wordle/internal/words"
)

// Picker chooses a secret index in [0, n).
type Picker func(n int) int

// RandomPicker picks uniformly with crypto/rand.
func RandomPicker(n int) int {
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// crypto/rand failing is not recoverable in any useful way here.
		panic(err)
	}
	return int(nBig.Int64())
}

// Start begins a new game with a uniformly random secret from list.
func Start(list words.List) (State, error) {
	return StartWithPicker(list, RandomPicker)
}

// StartWithPicker begins a new game whose secret is list.At(pick(list.Len())).
func StartWithPicker(list words.List, pick Picker) (State, error) {
	n := list.Len()
	if n == 0 {
		return State{}, ErrEmptyWordList
	}
	i := pick(n)
	if i < 0 || i >= n {
		return State{}, ErrPickOutOfRange
	}
	return State{
		secret: list.At(i),
		list:   list,
		status: InProgress,
	}, nil
}

// Submit validates and scores a guess.
// Returns the next state and the feedback for the accepted guess.
//
// Validation order:
//  1. A finished game ignores the guess: s is returned as-is with nil feedback and nil error.
//  2. Fewer than WordLength letters → ErrIncompleteGuess.
//  3. Not in the word list → ErrUnknownWord.
//
// On error the returned State is s, unchanged.
func Submit(s State, text string) (State, []LetterStatus, error) {
	if s.status != InProgress {
		return s, nil, nil
	}
	guess := strings.ToLower(strings.TrimSpace(text))
	if utf8.RuneCountInString(guess) < WordLength {
		return s, nil, ErrIncompleteGuess
	}
	if !s.list.Contains(guess) {
		return s, nil, ErrUnknownWord
	}

	fb := Score(s.secret, guess)
	next := s
	next.attempts = append(slices.Clone(s.attempts), Guess{Letters: guess, Feedback: fb})

	switch {
	case guess == s.secret:
		next.status = Won
	case len(next.attempts) >= MaxAttempts:
		next.status = Lost
	}
	return next, slices.Clone(fb), nil
}

// Score implements the standard Wordle two-pass scoring algorithm.
//
// Counting:
//   - For each position where secret and guess differ, count the secret letter.
//
// Pass 1:
//   - Mark exact matches Correct.
//
// Pass 2:
//   - For each remaining guess letter: if its count is > 0, mark Present and
//     decrement; otherwise leave Absent.
//
// A letter is therefore Present at most as often as it occurs unmatched in
// the secret. Both inputs are expected lowercase and WordLength long.
func Score(secret, guess string) []LetterStatus {
	n := len(secret)
	res := make([]LetterStatus, n)
	for i := range res {
		res[i] = Absent
	}
	if len(guess) != n {
		return res
	}

	var counts [26]int
	for i := 0; i < n; i++ {
		if j := idx(secret[i]); secret[i] != guess[i] && j >= 0 && j < 26 {
			counts[j]++
		}
	}

	for i := 0; i < n; i++ {
		if guess[i] == secret[i] {
			res[i] = Correct
		}
	}

	for i := 0; i < n; i++ {
		if res[i] == Correct {
			continue
		}
		j := idx(guess[i])
		if j >= 0 && j < 26 && counts[j] > 0 {
			res[i] = Present
			counts[j]--
		}
	}
	return res
}

// idx maps a lowercase ASCII letter to 0..25; anything else falls outside.
func idx(b byte) int { return int(b) - 'a' }
