package ranking

import (
	"sort"

	"github.com/okian/scoutboard/internal/domain/model"
)

// Entry is one row of the global leaderboard.
type Entry struct {
	Rank     int
	Index    int // position of the player in the input slice
	Slug     string
	Score    float64
	Form     float64
}

// Leaderboard orders players by composite rank score, then form score, both
// descending. Exact ties keep input order. Ranks are dense and 1-based.
func Leaderboard(players []model.Player) []Entry {
	entries := make([]Entry, len(players))
	for i := range players {
		entries[i] = Entry{
			Index:    i,
			Slug:     players[i].Slug,
			Score:    players[i].Summary.RankScoreComposite,
			Form:     players[i].Summary.FormScore,
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return less(entries[i], entries[j])
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}

// less reports whether a ranks before b.
func less(a, b Entry) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	return a.Form > b.Form
}

// Assign returns copies of players, in input order, each carrying its global
// rank. The input slice is not modified.
func Assign(players []model.Player) []model.Player {
	out := make([]model.Player, len(players))
	for _, e := range Leaderboard(players) {
		out[e.Index] = players[e.Index].WithGlobalRank(e.Rank)
	}
	return out
}
