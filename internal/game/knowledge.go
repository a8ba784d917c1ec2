package game

// LetterKnowledge returns, for every letter guessed so far, the best status
// seen across all attempts (Correct > Present > Absent). A letter is never
// downgraded by a later guess. The map is freshly built on each call.
func (s State) LetterKnowledge() map[rune]LetterStatus {
	k := make(map[rune]LetterStatus)
	for _, g := range s.attempts {
		for i, r := range g.Letters {
			if i >= len(g.Feedback) {
				break
			}
			if st := g.Feedback[i]; st.rank() > k[r].rank() {
				k[r] = st
			}
		}
	}
	return k
}
