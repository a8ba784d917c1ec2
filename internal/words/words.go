// internal/words/words.go
//
// Loads the word list the game is played with.
//
// Responsibilities:
//   - Parse whitespace-delimited word text into a List.
//   - Load a list from a file path, an http(s) URL, or the embedded default.
//   - Fall back to a small static list when loading fails or yields nothing.
//
// Sources (Load):
//   ""                  → embedded assets/words.txt
//   "http://…" "https://…" → fetched with the caller's context
//   anything else       → read from the local filesystem
//
// Constraints:
//   • Tokens are lowercased and trimmed; only 5-letter a–z words survive.
//   • A source with zero valid words is an error (ErrNoWords).

package words

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/assets"
)

// ErrNoWords is returned when a source parses to an empty list.
var ErrNoWords = errors.New("words: no valid words in source")

// fallbackWords is the static list used when no source can be loaded.
var fallbackWords = []string{
	"hello", "world", "games", "apple", "grape",
	"house", "ocean", "piano", "tiger", "cloud",
}

// fetchTimeout bounds remote word-list fetches when ctx has no deadline.
const fetchTimeout = 10 * time.Second

// Fallback returns the static fallback list.
func Fallback() List { return New(fallbackWords) }

// Parse reads whitespace-delimited tokens from r into a List.
func Parse(r io.Reader) (List, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	var raw []string
	for sc.Scan() {
		raw = append(raw, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return List{}, fmt.Errorf("words: scan: %w", err)
	}
	l := New(raw)
	if l.Len() == 0 {
		return List{}, ErrNoWords
	}
	return l, nil
}

// Load reads a List from source. See the package header for source forms.
func Load(ctx context.Context, source string) (List, error) {
	switch {
	case source == "":
		f, err := assets.FS.Open(assets.WordsFile)
		if err != nil {
			return List{}, fmt.Errorf("words: open embedded list: %w", err)
		}
		defer f.Close()
		return Parse(f)

	case strings.HasPrefix(source, "http://"), strings.HasPrefix(source, "https://"):
		return fetch(ctx, source)

	default:
		f, err := os.Open(source)
		if err != nil {
			return List{}, fmt.Errorf("words: %w", err)
		}
		defer f.Close()
		return Parse(f)
	}
}

// LoadOrFallback is Load, except that any failure degrades to Fallback().
// The failure is logged; the returned bool reports whether the fallback is in use.
func LoadOrFallback(ctx context.Context, source string) (List, bool) {
	l, err := Load(ctx, source)
	if err != nil {
		log.Warn().Err(err).Str("source", source).Msg("word list unavailable, using fallback list")
		return Fallback(), true
	}
	return l, false
}

// fetch downloads a word list over HTTP.
func fetch(ctx context.Context, url string) (List, error) {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, fetchTimeout)
		defer cancel()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return List{}, fmt.Errorf("words: build request: %w", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return List{}, fmt.Errorf("words: fetch %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return List{}, fmt.Errorf("words: fetch %s: unexpected status %d", url, resp.StatusCode)
	}
	return Parse(resp.Body)
}
