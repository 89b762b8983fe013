package poker

import (
	"sort"

	"wildpoker-server/pkg/deck"
)

// HandSize is the number of cards in a ranked hand
const HandSize = 5

// HandAnalyzer can analyze a five card hand
type HandAnalyzer struct {
	cards         deck.Hand
	ranks         []int
	flush         bool
	quads         []int
	trips         []int
	pairs         []int
	singles       []int
	straight      int
	straightFlush int

	hand    Hand
	payload []int
}

// NewHandAnalyzer will return a new HandAnalyzer instance
// The cards are expected to be five distinct cards, this is not validated
func NewHandAnalyzer(cards []deck.Card) *HandAnalyzer {
	// clone to prevent modifying original
	sortedCards := make(deck.Hand, len(cards))
	copy(sortedCards, cards)
	sort.Sort(sort.Reverse(sortByRank(sortedCards)))

	h := &HandAnalyzer{
		cards: sortedCards,
	}

	// the method order here is required
	h.analyzeHand()
	h.calculateHand()

	return h
}

// Rank returns the rank of a five card hand
func Rank(cards []deck.Card) HandRank {
	return NewHandAnalyzer(cards).GetRank()
}

// analyzeHand will loop through the cards, high to low, and record flushes, straights and groups
// This method should only be called once from the constructor
func (h *HandAnalyzer) analyzeHand() {
	h.ranks = make([]int, len(h.cards))
	h.flush = len(h.cards) > 0

	st := straightTracker{}
	for i, card := range h.cards {
		h.ranks[i] = card.Rank

		if card.Suit != h.cards[0].Suit {
			h.flush = false
		}

		if h.straight == 0 {
			if high, ok := st.checkStraight(card.Rank); ok {
				h.straight = high
			}
		}
	}

	if h.flush && h.straight > 0 {
		h.straightFlush = h.straight
	}

	h.checkPairs()
}

// checkPairs groups contiguous runs of equal ranks into quads, trips, pairs and singles
// Because the ranks are sorted, each list is ordered high to low
func (h *HandAnalyzer) checkPairs() {
	nRanks := len(h.ranks)
	for i := 0; i < nRanks; {
		j := i
		for j < nRanks && h.ranks[j] == h.ranks[i] {
			j++
		}

		switch j - i {
		case 4:
			h.quads = append(h.quads, h.ranks[i])
		case 3:
			h.trips = append(h.trips, h.ranks[i])
		case 2:
			h.pairs = append(h.pairs, h.ranks[i])
		case 1:
			h.singles = append(h.singles, h.ranks[i])
		}

		i = j
	}
}

// calculateHand will determine the hand and its tie-break payload
// This must be called after analyzeHand() has been called
func (h *HandAnalyzer) calculateHand() {
	if high, ok := h.GetStraightFlush(); ok {
		h.hand = StraightFlush
		h.payload = []int{high}
	} else if quads, ok := h.GetFourOfAKind(); ok {
		h.hand = FourOfAKind
		h.payload = []int{quads}
		if len(h.singles) > 0 {
			h.payload = append(h.payload, h.singles[0])
		}
	} else if fullHouse, ok := h.GetFullHouse(); ok {
		h.hand = FullHouse
		h.payload = fullHouse
	} else if flush, ok := h.GetFlush(); ok {
		h.hand = Flush
		h.payload = flush
	} else if high, ok := h.GetStraight(); ok {
		h.hand = Straight
		h.payload = []int{high}
	} else if trips, ok := h.GetThreeOfAKind(); ok {
		h.hand = ThreeOfAKind
		h.payload = h.withRanks(trips)
	} else if twoPair, ok := h.GetTwoPair(); ok {
		h.hand = TwoPair
		h.payload = h.withRanks(twoPair...)
	} else if pair, ok := h.GetPair(); ok {
		h.hand = OnePair
		h.payload = h.withRanks(pair)
	} else {
		h.hand = HighCard
		h.payload = h.withRanks()
	}
}

// withRanks returns the leading values followed by every rank, high to low
func (h *HandAnalyzer) withRanks(leading ...int) []int {
	payload := make([]int, 0, len(leading)+len(h.ranks))
	payload = append(payload, leading...)
	return append(payload, h.ranks...)
}

// GetHand will return the hand the cards make
func (h *HandAnalyzer) GetHand() Hand {
	return h.hand
}

// GetRank will return the hand and its tie-break payload
func (h *HandAnalyzer) GetRank() HandRank {
	payload := make([]int, len(h.payload))
	copy(payload, h.payload)

	return HandRank{
		Hand:    h.hand,
		Payload: payload,
	}
}

// GetStrength returns the rank packed into a single comparable integer
func (h *HandAnalyzer) GetStrength() int {
	return h.GetRank().Strength()
}

// GetStraightFlush will return the high rank of a straight flush, if possible
func (h *HandAnalyzer) GetStraightFlush() (int, bool) {
	if h.straightFlush > 0 {
		return h.straightFlush, true
	}

	return 0, false
}

// GetFourOfAKind will return the rank of the four of a kind, if possible
func (h *HandAnalyzer) GetFourOfAKind() (int, bool) {
	if len(h.quads) > 0 {
		return h.quads[0], true
	}

	return 0, false
}

// GetFullHouse will return the trips and pair ranks of a full house, if possible
func (h *HandAnalyzer) GetFullHouse() ([]int, bool) {
	if len(h.trips) > 0 && len(h.pairs) > 0 {
		return []int{h.trips[0], h.pairs[0]}, true
	}

	return nil, false
}

// GetFlush will return the ranks of a flush high to low, if possible
func (h *HandAnalyzer) GetFlush() ([]int, bool) {
	if h.flush {
		flush := make([]int, len(h.ranks))
		copy(flush, h.ranks)
		return flush, true
	}

	return nil, false
}

// GetStraight will return the high rank of a straight, if possible
func (h *HandAnalyzer) GetStraight() (int, bool) {
	if h.straight > 0 {
		return h.straight, true
	}

	return 0, false
}

// GetThreeOfAKind will return the rank of the three of a kind, if possible
func (h *HandAnalyzer) GetThreeOfAKind() (int, bool) {
	if len(h.trips) > 0 {
		return h.trips[0], true
	}

	return 0, false
}

// GetTwoPair will return the two highest pairs, if possible
func (h *HandAnalyzer) GetTwoPair() ([]int, bool) {
	if len(h.pairs) >= 2 {
		return []int{h.pairs[0], h.pairs[1]}, true
	}

	return nil, false
}

// GetPair will return the best pair, if possible
func (h *HandAnalyzer) GetPair() (int, bool) {
	if len(h.pairs) > 0 {
		return h.pairs[0], true
	}

	return 0, false
}
