package rankingservice

// CompetitionRanks assigns competition-style ranks over a points list that is
// already sorted descending: tied scores share the rank of the first of the
// tie group, and the next distinct score takes its 1-based sorted position.
// Scores [10, 10, 7] yield ranks [1, 1, 3].
func CompetitionRanks(points []int) []int {
	ranks := make([]int, len(points))
	for i := range points {
		if i > 0 && points[i] == points[i-1] {
			ranks[i] = ranks[i-1]
			continue
		}
		ranks[i] = i + 1
	}
	return ranks
}
