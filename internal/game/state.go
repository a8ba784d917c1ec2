package game

import "slices"

// Status reports where the game is in its lifecycle.
func (s State) Status() Status { return s.status }

// Finished reports whether the game has been won or lost.
func (s State) Finished() bool { return s.status == Won || s.status == Lost }

// Attempts returns a copy of the accepted guesses, oldest first.
func (s State) Attempts() []Guess {
	out := make([]Guess, len(s.attempts))
	for i, g := range s.attempts {
		out[i] = Guess{Letters: g.Letters, Feedback: slices.Clone(g.Feedback)}
	}
	return out
}

// AttemptsUsed is the number of accepted guesses so far.
func (s State) AttemptsUsed() int { return len(s.attempts) }

// Remaining is the number of guesses left before the game is lost.
func (s State) Remaining() int { return MaxAttempts - len(s.attempts) }

// Reveal returns the secret once the game is over.
// While the game is in progress it returns "", false.
func (s State) Reveal() (string, bool) {
	if !s.Finished() {
		return "", false
	}
	return s.secret, true
}
