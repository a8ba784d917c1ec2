package words

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func TestNewNormalizesAndFilters(t *testing.T) {
	l := New([]string{" Apple ", "apple", "PIANO", "toolong", "four", "ab-cd", "", "tiger"})
	want := []string{"apple", "piano", "tiger"}
	if got := l.Words(); !slices.Equal(got, want) {
		t.Fatalf("Words() = %v, want %v", got, want)
	}
	if !l.Contains("APPLE") || l.Contains("grape") {
		t.Fatal("Contains is wrong")
	}
	if l.At(1) != "piano" {
		t.Fatalf("At(1) = %q", l.At(1))
	}
}

func TestWordsReturnsCopy(t *testing.T) {
	l := New([]string{"apple"})
	w := l.Words()
	w[0] = "wrong"
	if l.At(0) != "apple" {
		t.Fatal("Words() leaked internal slice")
	}
}

func TestParseWhitespaceDelimited(t *testing.T) {
	l, err := Parse(strings.NewReader("hello\nWORLD\t games  \r\napple\n\nno\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := []string{"hello", "world", "games", "apple"}
	if got := l.Words(); !slices.Equal(got, want) {
		t.Fatalf("Words() = %v, want %v", got, want)
	}
}

func TestParseEmpty(t *testing.T) {
	if _, err := Parse(strings.NewReader("abc toolong\n")); !errors.Is(err, ErrNoWords) {
		t.Fatalf("expected ErrNoWords, got %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte("crane slate\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	l, err := Load(context.Background(), path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if l.Len() != 2 || !l.Contains("slate") {
		t.Fatalf("unexpected list %v", l.Words())
	}
}

func TestLoadEmbedded(t *testing.T) {
	l, err := Load(context.Background(), "")
	if err != nil {
		t.Fatalf("load embedded: %v", err)
	}
	if l.Len() < 100 {
		t.Fatalf("embedded list has %d words", l.Len())
	}
}

func TestLoadHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/words.txt" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte("ocean piano"))
	}))
	defer srv.Close()

	l, err := Load(context.Background(), srv.URL+"/words.txt")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !slices.Equal(l.Words(), []string{"ocean", "piano"}) {
		t.Fatalf("unexpected list %v", l.Words())
	}

	if _, err := Load(context.Background(), srv.URL+"/missing.txt"); err == nil {
		t.Fatal("expected error for 404")
	}
}

func TestLoadOrFallback(t *testing.T) {
	l, fellBack := LoadOrFallback(context.Background(), filepath.Join(t.TempDir(), "nope.txt"))
	if !fellBack {
		t.Fatal("expected fallback")
	}
	if !slices.Equal(l.Words(), Fallback().Words()) {
		t.Fatalf("got %v, want fallback list", l.Words())
	}
	if l.Len() != 10 {
		t.Fatalf("fallback has %d words, want 10", l.Len())
	}

	path := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(path, []byte("  \n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, fellBack := LoadOrFallback(context.Background(), path); !fellBack {
		t.Fatal("expected fallback for empty source")
	}
}
