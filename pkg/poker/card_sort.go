package poker

import (
	"sort"

	"wildpoker-server/pkg/deck"
)

type sortByRank []deck.Card

func (s sortByRank) Len() int {
	return len(s)
}

func (s sortByRank) Less(i, j int) bool {
	if s[i].Rank != s[j].Rank {
		return s[i].Rank < s[j].Rank
	}

	// stable order for equal ranks keeps the output deterministic
	return s[i].Suit < s[j].Suit
}

func (s sortByRank) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
}

// SortHand sorts the cards from the highest rank to the lowest
func SortHand(cards deck.Hand) {
	sort.Sort(sort.Reverse(sortByRank(cards)))
}
