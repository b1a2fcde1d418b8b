package corrector

// Candidate is a correction candidate produced by the oracle for a single
// misspelled word.
type Candidate struct {
	Word         string  `json:"word"`
	EditDistance int     `json:"edit_distance"`
	Frequency    float64 `json:"frequency"`
}

// selectCandidate picks the single best replacement for word from the
// oracle's candidate set. Candidates with the lowest edit distance win;
// ties break on higher frequency, then on lexicographic order of the word,
// so the result never depends on candidate iteration order. Returns false
// when candidates is empty.
func selectCandidate(candidates []Candidate) (string, bool) {
	if len(candidates) == 0 {
		return "", false
	}
	best := candidates[0]
	for _, c := range candidates[1:] {
		if beats(c, best) {
			best = c
		}
	}
	return best.Word, true
}

func beats(a, b Candidate) bool {
	if a.EditDistance != b.EditDistance {
		return a.EditDistance < b.EditDistance
	}
	if a.Frequency != b.Frequency {
		return a.Frequency > b.Frequency
	}
	return a.Word < b.Word
}
