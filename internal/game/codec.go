// internal/game/codec.go
//
// Storage encoding for State. Used by session stores that must survive a
// process restart; the encoded form carries the secret and must never be
// sent to a player.

package game

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/robalobadob/wordle/internal/words"
)

type snapshot struct {
	Secret   string  `json:"secret"`
	Attempts []Guess `json:"attempts"`
	Status   Status  `json:"status"`
}

// MarshalBinary encodes s for storage.
func (s State) MarshalBinary() ([]byte, error) {
	return json.Marshal(snapshot{Secret: s.secret, Attempts: s.attempts, Status: s.status})
}

// Restore decodes a State produced by MarshalBinary and binds it to list,
// which is used to validate further guesses.
//
// The stored attempts are replayed against the secret, so a blob whose
// feedback or status disagrees with its guesses is rejected.
func Restore(data []byte, list words.List) (State, error) {
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return State{}, fmt.Errorf("game: decode state: %w", err)
	}
	if !list.Contains(snap.Secret) || snap.Secret != strings.ToLower(snap.Secret) {
		return State{}, fmt.Errorf("game: decode state: secret %q not in word list", snap.Secret)
	}
	if len(snap.Attempts) > MaxAttempts {
		return State{}, fmt.Errorf("game: decode state: %d attempts exceeds %d", len(snap.Attempts), MaxAttempts)
	}
	switch snap.Status {
	case InProgress, Won, Lost:
	default:
		return State{}, fmt.Errorf("game: decode state: unknown status %q", snap.Status)
	}

	st := State{secret: snap.Secret, list: list, status: InProgress}
	for i, a := range snap.Attempts {
		if len(a.Feedback) != WordLength {
			return State{}, fmt.Errorf("game: decode state: attempt %d has %d feedback marks", i+1, len(a.Feedback))
		}
		next, fb, err := Submit(st, a.Letters)
		if err != nil {
			return State{}, fmt.Errorf("game: decode state: attempt %d: %w", i+1, err)
		}
		if fb == nil {
			return State{}, fmt.Errorf("game: decode state: attempt %d after game ended", i+1)
		}
		if next.attempts[i].Letters != a.Letters || !slices.Equal(fb, a.Feedback) {
			return State{}, fmt.Errorf("game: decode state: attempt %d feedback does not match %q", i+1, a.Letters)
		}
		st = next
	}
	if st.status != snap.Status {
		return State{}, fmt.Errorf("game: decode state: status %q contradicts attempts (%q)", snap.Status, st.status)
	}
	return st, nil
}
