package eventbus

// Stream names, one per module. Each stream captures every subject under its
// module prefix.
const (
	RoundStream    = "round"
	BetStream      = "bet"
	RankingStream  = "ranking"
	ChampionStream = "champion"
)

var streamSubjects = map[string][]string{
	RoundStream:    {"round.>"},
	BetStream:      {"bet.>"},
	RankingStream:  {"ranking.>"},
	ChampionStream: {"champion.>"},
}

// AllStreams lists every stream provisioned at startup.
func AllStreams() []string {
	return []string{RoundStream, BetStream, RankingStream, ChampionStream}
}
