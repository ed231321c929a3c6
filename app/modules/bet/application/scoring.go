package betservice

import (
	"strconv"
	"strings"

	sharedtypes "github.com/palpite-club/pool-backend/app/shared/types"
)

// guessSeparators are the accepted separators in a composed guess string:
// "2x1", "2 X 1" and "2-1" all resolve to (2, 1).
const guessSeparators = "xX-"

// parseGuess collapses both guess encodings into one (home, away) pair.
// Integer-pair form wins when present; otherwise the raw string is split.
func parseGuess(g sharedtypes.Guess) (home, away int, ok bool) {
	if g.Home != nil && g.Away != nil {
		return *g.Home, *g.Away, true
	}

	idx := strings.IndexAny(g.Raw, guessSeparators)
	if idx < 0 {
		return 0, 0, false
	}

	home, err := strconv.Atoi(strings.TrimSpace(g.Raw[:idx]))
	if err != nil {
		return 0, 0, false
	}
	away, err = strconv.Atoi(strings.TrimSpace(g.Raw[idx+1:]))
	if err != nil {
		return 0, 0, false
	}
	return home, away, true
}

// outcomeClass maps a scoreline to home-win (+1), draw (0), or away-win (-1).
func outcomeClass(home, away int) int {
	switch {
	case home > away:
		return 1
	case home < away:
		return -1
	default:
		return 0
	}
}

// ScoreGuess scores one guess against one match: 5 for the exact scoreline,
// 3 for the right outcome class, 0 otherwise. A match without both actual
// scores, or an unresolvable guess, always scores 0. Total over any input.
func ScoreGuess(g sharedtypes.Guess, m sharedtypes.Match) int {
	if !m.Playable() {
		return 0
	}
	home, away, ok := parseGuess(g)
	if !ok {
		return 0
	}
	if home == *m.HomeScore && away == *m.AwayScore {
		return 5
	}
	if outcomeClass(home, away) == outcomeClass(*m.HomeScore, *m.AwayScore) {
		return 3
	}
	return 0
}

// ScoreLines refreshes the derived totals of every line against the round's
// matches, index-aligned. Line numbers are assigned 1-based. The second
// return is the count of unresolvable guesses, reported for audit logging.
func ScoreLines(lines []sharedtypes.PredictionLine, matches []sharedtypes.Match) ([]sharedtypes.PredictionLine, int) {
	malformed := 0
	scored := make([]sharedtypes.PredictionLine, len(lines))
	for li, line := range lines {
		line.Number = li + 1
		line.Points = 0
		line.Hits = 0
		guesses := make([]sharedtypes.Guess, len(line.Guesses))
		for gi, guess := range line.Guesses {
			points := 0
			if gi < len(matches) {
				if _, _, ok := parseGuess(guess); !ok {
					malformed++
				}
				points = ScoreGuess(guess, matches[gi])
			}
			guess.Points = points
			guess.Hit = points > 0
			guesses[gi] = guess
			line.Points += points
			if points > 0 {
				line.Hits++
			}
		}
		line.Guesses = guesses
		scored[li] = line
	}
	return scored, malformed
}

// BestPerformance selects the bet's best line: maximum points, earliest line
// on ties. Deterministic over any scored input.
func BestPerformance(lines []sharedtypes.PredictionLine) sharedtypes.RoundPerformance {
	best := sharedtypes.RoundPerformance{BestLine: 1}
	for i, line := range lines {
		if i == 0 || line.Points > best.Points {
			best = sharedtypes.RoundPerformance{
				Points:   line.Points,
				Hits:     line.Hits,
				BestLine: line.Number,
			}
		}
	}
	return best
}
