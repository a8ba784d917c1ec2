// internal/words/list.go
//
// List is the immutable word list the game engine draws secrets from and
// validates guesses against.
//
// Invariants:
//   • Every entry is exactly WordLength lowercase ASCII letters.
//   • Entries are unique; insertion order is preserved so an index
//     (random or daily) maps to a stable word.

package words

import "strings"

// WordLength is the number of letters in every playable word.
const WordLength = 5

// List is a read-only set of playable words.
// The zero value is an empty list.
type List struct {
	words []string
	set   map[string]struct{}
}

// New builds a List from raw entries. Entries are trimmed and lowercased;
// anything that is not a WordLength-letter word, and any duplicate, is dropped.
func New(entries []string) List {
	l := List{set: make(map[string]struct{}, len(entries))}
	for _, e := range entries {
		w := normalize(e)
		if !valid(w) {
			continue
		}
		if _, dup := l.set[w]; dup {
			continue
		}
		l.set[w] = struct{}{}
		l.words = append(l.words, w)
	}
	return l
}

// Len returns the number of words.
func (l List) Len() int { return len(l.words) }

// At returns the i-th word in load order. It panics if i is out of range.
func (l List) At(i int) string { return l.words[i] }

// Contains reports whether w (case-insensitive) is in the list.
func (l List) Contains(w string) bool {
	_, ok := l.set[normalize(w)]
	return ok
}

// Words returns a copy of the entries in load order.
func (l List) Words() []string {
	out := make([]string, len(l.words))
	copy(out, l.words)
	return out
}

func normalize(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

// valid reports whether s is WordLength lowercase ASCII letters.
func valid(s string) bool {
	if len(s) != WordLength {
		return false
	}
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
