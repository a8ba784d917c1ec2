package game_test

import (
	"testing"

	"github.com/robalobadob/wordle/internal/game"
	"github.com/robalobadob/wordle/internal/words"
)

func TestRestoreResumesGame(t *testing.T) {
	list := words.New(testWords)
	s := startWith(t, list, "tiger")
	s, _ = mustSubmit(t, s, "crane")

	data, err := s.MarshalBinary()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	r, err := game.Restore(data, list)
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if r.AttemptsUsed() != 1 || r.Status() != game.InProgress {
		t.Fatalf("restored attempts=%d status=%s", r.AttemptsUsed(), r.Status())
	}
	if game.SecretForTest(r) != "tiger" {
		t.Fatalf("restored secret = %q", game.SecretForTest(r))
	}
	r, _ = mustSubmit(t, r, "tiger")
	if r.Status() != game.Won {
		t.Fatalf("status after restore+win = %s", r.Status())
	}
}

func TestRestoreLostGame(t *testing.T) {
	data := `{"secret":"tiger","attempts":[` + misses(6) + `],"status":"lost"}`
	r, err := game.Restore([]byte(data), words.New(testWords))
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if w, ok := r.Reveal(); !ok || w != "tiger" || r.AttemptsUsed() != 6 {
		t.Fatalf("restored lost game: reveal=%q,%v attempts=%d", w, ok, r.AttemptsUsed())
	}
}

func TestRestoreRejectsBadData(t *testing.T) {
	list := words.New(testWords)
	for name, data := range map[string]string{
		"not json":               `{`,
		"short secret":           `{"secret":"abc","attempts":[],"status":"in_progress"}`,
		"bad status":             `{"secret":"tiger","attempts":[],"status":"paused"}`,
		"digit secret":           `{"secret":"t1ger","attempts":[],"status":"in_progress"}`,
		"upper secret":           `{"secret":"TIGER","attempts":[],"status":"in_progress"}`,
		"unlisted":               `{"secret":"zebra","attempts":[],"status":"in_progress"}`,
		"short feedback":         `{"secret":"tiger","attempts":[{"letters":"crane","feedback":["absent"]}],"status":"in_progress"}`,
		"wrong feedback":         `{"secret":"tiger","attempts":[{"letters":"crane","feedback":["correct","correct","correct","correct","correct"]}],"status":"in_progress"}`,
		"won without match":      `{"secret":"tiger","attempts":[],"status":"won"}`,
		"lost too early":         `{"secret":"tiger","attempts":[{"letters":"crane","feedback":["absent","present","absent","absent","present"]}],"status":"lost"}`,
		"six misses in progress": `{"secret":"tiger","attempts":[` + misses(6) + `],"status":"in_progress"}`,
		"guess after win":        `{"secret":"crane","attempts":[{"letters":"crane","feedback":["correct","correct","correct","correct","correct"]},{"letters":"tiger","feedback":["absent","absent","absent","present","present"]}],"status":"won"}`,
	} {
		if _, err := game.Restore([]byte(data), list); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

// misses encodes n guesses of "crane" against the secret "tiger".
func misses(n int) string {
	one := `{"letters":"crane","feedback":["absent","present","absent","absent","present"]}`
	out := one
	for i := 1; i < n; i++ {
		out += "," + one
	}
	return out
}
