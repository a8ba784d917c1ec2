package game_test

import (
	"testing"

	"github.com/robalobadob/wordle/internal/game"
	"github.com/robalobadob/wordle/internal/words"
)

func TestLetterKnowledgeNeverDowngrades(t *testing.T) {
	s := startWith(t, words.New(testWords), "apple")

	s, _ = mustSubmit(t, s, "apply")
	k := s.LetterKnowledge()
	for r, want := range map[rune]game.LetterStatus{'a': game.Correct, 'p': game.Correct, 'l': game.Correct, 'y': game.Absent} {
		if k[r] != want {
			t.Fatalf("after apply: %c = %s, want %s", r, k[r], want)
		}
	}

	// paper puts a at a Present position; a must stay Correct.
	s, _ = mustSubmit(t, s, "paper")
	k = s.LetterKnowledge()
	if k['a'] != game.Correct {
		t.Fatalf("a downgraded to %s", k['a'])
	}
	if k['e'] != game.Present {
		t.Fatalf("e = %s, want present", k['e'])
	}
	if k['r'] != game.Absent {
		t.Fatalf("r = %s, want absent", k['r'])
	}

	// hello scores its first l Absent; l must stay Correct.
	s, fb := mustSubmit(t, s, "hello")
	if fb[2] != game.Absent {
		t.Fatalf("hello[2] = %s, want absent", fb[2])
	}
	k = s.LetterKnowledge()
	if k['l'] != game.Correct {
		t.Fatalf("l downgraded to %s", k['l'])
	}
	if k['e'] != game.Present {
		t.Fatalf("e = %s, want present", k['e'])
	}
}

func TestLetterKnowledgePresentNotDowngradedToAbsent(t *testing.T) {
	s := startWith(t, words.New(testWords), "speed")

	// eerie scores its last e Absent after two Present e's.
	s, fb := mustSubmit(t, s, "eerie")
	if fb[4] != game.Absent {
		t.Fatalf("eerie[4] = %s, want absent", fb[4])
	}
	if got := s.LetterKnowledge()['e']; got != game.Present {
		t.Fatalf("e = %s, want present", got)
	}
	s, _ = mustSubmit(t, s, "world")
	if got := s.LetterKnowledge()['e']; got != game.Present {
		t.Fatalf("e = %s, want present", got)
	}
}

func TestLetterKnowledgeIsACopy(t *testing.T) {
	s := startWith(t, words.New(testWords), "apple")
	s, _ = mustSubmit(t, s, "crane")

	k := s.LetterKnowledge()
	k['z'] = game.Correct
	if _, ok := s.LetterKnowledge()['z']; ok {
		t.Fatal("mutating returned map leaked into state")
	}
}
