// Package matches normalizes a player's raw match feed into a short,
// date-ordered recent history.
package matches

import (
	"sort"

	"github.com/okian/scoutboard/internal/domain/coerce"
	"github.com/okian/scoutboard/internal/domain/model"
)

// HistoryLimit is the number of most recent matches kept per player.
const HistoryLimit = 10

// Extract normalizes raw into at most HistoryLimit matches sorted by ascending
// date string, keeping the most recent ones. Nil entries are skipped and
// counted in the second return value. A nil or empty feed yields an empty,
// non-nil slice.
//
// Dates are compared as strings, so they must be in a sortable layout such as
// ISO 8601.
func Extract(raw []*model.RawMatch, clubSlug string) ([]model.Match, int) {
	out := make([]model.Match, 0, len(raw))
	skipped := 0
	for _, m := range raw {
		if m == nil {
			skipped++
			continue
		}
		out = append(out, normalize(m, clubSlug))
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Date < out[j].Date })

	if len(out) > HistoryLimit {
		out = out[len(out)-HistoryLimit:]
	}
	return out, skipped
}

func normalize(m *model.RawMatch, clubSlug string) model.Match {
	home := coerce.String(m.HomeSlug, "")
	away := coerce.String(m.AwaySlug, "")
	isHome := home == clubSlug
	opponent := home
	if isHome {
		opponent = away
	}

	var adv model.MatchAdvanced
	if m.Advanced != nil {
		adv = *m.Advanced
	}
	var pos model.MatchPositive
	if m.Decisions != nil && m.Decisions.Positive != nil {
		pos = *m.Decisions.Positive
	}

	return model.Match{
		Date:       coerce.String(m.Date, ""),
		Score:      coerce.Round(coerce.Float(m.Score, 0), 2),
		Status:     coerce.String(m.Status, ""),
		Opponent:   opponent,
		IsHome:     isHome,
		Minutes:    coerce.Int(adv.MinsPlayed, 0),
		Goals:      coerce.Int(pos.Goals, 0),
		Assists:    coerce.Int(pos.GoalAssist, 0),
		KeyActions: coerce.Int(adv.AdjustedTotalAttAssist, 0),
	}
}
