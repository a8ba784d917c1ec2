package main

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"

	"github.com/robalobadob/wordle/internal/game"
)

// tiles renders feedback. In plain mode letters are followed by a marker row
// (G = correct, Y = present, _ = absent).
type tiles struct {
	plain   bool
	correct *color.Color
	present *color.Color
	absent  *color.Color
}

func newTiles(plain bool) tiles {
	t := tiles{
		plain:   plain,
		correct: color.New(color.BgGreen, color.FgBlack),
		present: color.New(color.BgYellow, color.FgBlack),
		absent:  color.New(color.BgWhite, color.FgBlack),
	}
	if plain {
		t.correct.DisableColor()
		t.present.DisableColor()
		t.absent.DisableColor()
	}
	return t
}

func (t tiles) paint(st game.LetterStatus, s string) string {
	switch st {
	case game.Correct:
		return t.correct.Sprint(s)
	case game.Present:
		return t.present.Sprint(s)
	}
	return t.absent.Sprint(s)
}

func marker(st game.LetterStatus) string {
	switch st {
	case game.Correct:
		return "G"
	case game.Present:
		return "Y"
	}
	return "_"
}

// row renders one scored guess.
func (t tiles) row(g game.Guess) string {
	var b strings.Builder
	if t.plain {
		for i := range g.Letters {
			b.WriteString(strings.ToUpper(g.Letters[i:i+1]) + " ")
		}
		b.WriteString("\n")
		for _, st := range g.Feedback {
			b.WriteString(marker(st) + " ")
		}
		return b.String()
	}
	for i, st := range g.Feedback {
		b.WriteString(t.paint(st, " "+strings.ToUpper(g.Letters[i:i+1])+" ") + " ")
	}
	return b.String()
}

// keyboard summarises letter knowledge, grouped by status.
func (t tiles) keyboard(k map[rune]game.LetterStatus) string {
	groups := map[game.LetterStatus][]string{}
	for r, st := range k {
		groups[st] = append(groups[st], string(r))
	}
	var parts []string
	for _, st := range []game.LetterStatus{game.Correct, game.Present, game.Absent} {
		letters := groups[st]
		if len(letters) == 0 {
			continue
		}
		sort.Strings(letters)
		joined := strings.Join(letters, "")
		if !t.plain {
			joined = t.paint(st, joined)
		}
		parts = append(parts, fmt.Sprintf("%s: %s", st, joined))
	}
	return "Keys  " + strings.Join(parts, "  ")
}

// play runs one game reading guesses line by line from in until the game
// ends or input runs out. It returns the final state.
func play(in io.Reader, out io.Writer, st game.State, t tiles) (game.State, error) {
	fmt.Fprintln(out, "=== WORDLE ===")
	fmt.Fprintf(out, "Guess the %d-letter word. You have %d tries.\n", game.WordLength, game.MaxAttempts)
	fmt.Fprintf(out, "Feedback: %s=correct, %s=present, _=absent\n\n",
		t.paint(game.Correct, "G"), t.paint(game.Present, "Y"))

	sc := bufio.NewScanner(in)
	for !st.Finished() {
		fmt.Fprintf(out, "Try %d/%d > ", st.AttemptsUsed()+1, game.MaxAttempts)
		if !sc.Scan() {
			fmt.Fprintln(out)
			return st, sc.Err()
		}

		next, _, err := game.Submit(st, sc.Text())
		if err != nil {
			if msg := game.Prompt(err); msg != "" {
				fmt.Fprintln(out, msg+". Try another.")
				continue
			}
			return st, err
		}
		st = next

		attempts := st.Attempts()
		fmt.Fprintln(out, t.row(attempts[len(attempts)-1]))
		fmt.Fprintln(out, t.keyboard(st.LetterKnowledge()))
		fmt.Fprintln(out)
	}

	answer, _ := st.Reveal()
	if st.Status() == game.Won {
		fmt.Fprintf(out, "You got it in %d tries! The word was %q.\n", st.AttemptsUsed(), answer)
	} else {
		fmt.Fprintf(out, "Out of tries. The word was: %s\n", strings.ToUpper(answer))
	}
	return st, nil
}
