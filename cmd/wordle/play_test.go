package main

import (
	"strings"
	"testing"

	"github.com/robalobadob/wordle/internal/game"
	"github.com/robalobadob/wordle/internal/words"
)

func startApple(t *testing.T) game.State {
	t.Helper()
	st, err := game.StartWithPicker(words.New([]string{"apple", "apply", "crane"}), func(int) int { return 0 })
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	return st
}

func TestPlayWin(t *testing.T) {
	var out strings.Builder
	st, err := play(strings.NewReader("app\nzzzzz\napply\nAPPLE\n"), &out, startApple(t), newTiles(true))
	if err != nil {
		t.Fatalf("play: %v", err)
	}
	if st.Status() != game.Won {
		t.Fatalf("status = %s, want won", st.Status())
	}
	got := out.String()
	for _, want := range []string{
		"Try 1/6 > ",
		"Not enough letters. Try another.",
		"Word not in list. Try another.",
		"A P P L Y \nG G G G _ ",
		"Keys  correct: alp  absent: y",
		"Try 2/6 > ",
		`You got it in 2 tries! The word was "apple".`,
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("output missing %q:\n%s", want, got)
		}
	}
}

func TestPlayLoss(t *testing.T) {
	var out strings.Builder
	st, err := play(strings.NewReader(strings.Repeat("crane\n", 6)), &out, startApple(t), newTiles(true))
	if err != nil {
		t.Fatalf("play: %v", err)
	}
	if st.Status() != game.Lost {
		t.Fatalf("status = %s, want lost", st.Status())
	}
	if !strings.Contains(out.String(), "Out of tries. The word was: APPLE") {
		t.Fatalf("missing reveal:\n%s", out.String())
	}
}

func TestPlayStopsAtEOF(t *testing.T) {
	var out strings.Builder
	st, err := play(strings.NewReader("crane\n"), &out, startApple(t), newTiles(true))
	if err != nil {
		t.Fatalf("play: %v", err)
	}
	if st.Status() != game.InProgress || st.AttemptsUsed() != 1 {
		t.Fatalf("status=%s attempts=%d", st.Status(), st.AttemptsUsed())
	}
	if strings.Contains(out.String(), "The word was") {
		t.Fatal("secret revealed on early exit")
	}
}
