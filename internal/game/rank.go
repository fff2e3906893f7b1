package game

import (
	"sort"

	"github.com/phanxgames/pickinsticks/internal/config"
)

// RankTable maps minimum scores to display labels. Entries are kept sorted
// by ascending MinScore; Label picks the highest threshold not exceeding
// the score.
type RankTable struct {
	entries []config.Rank
}

// NewRankTable copies and sorts the configured thresholds.
func NewRankTable(ranks []config.Rank) RankTable {
	entries := append([]config.Rank(nil), ranks...)
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].MinScore < entries[j].MinScore
	})
	return RankTable{entries: entries}
}

// Label returns the label of the highest threshold with MinScore <= score.
// Below every threshold it falls back to the lowest entry's label.
func (t RankTable) Label(score int) string {
	if len(t.entries) == 0 {
		return ""
	}
	label := t.entries[0].Label
	for _, e := range t.entries {
		if score >= e.MinScore {
			label = e.Label
		}
	}
	return label
}
