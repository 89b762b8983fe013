package wild

import (
	"wildpoker-server/pkg/deck"
)

// space is every way the jokers can be substituted, addressed by index
// The index is mixed radix over the candidates of each joker, the last joker varying fastest
type space struct {
	candidates [][]deck.Card
}

// newSpace returns the substitution space for the jokers
// A candidate that is already in the hand is never part of the space
func newSpace(cards deck.Hand, jokers []deck.Joker) space {
	candidates := make([][]deck.Card, len(jokers))
	for i, joker := range jokers {
		all := joker.Candidates()
		candidates[i] = make([]deck.Card, 0, len(all))
		for _, candidate := range all {
			if !cards.HasCard(candidate) {
				candidates[i] = append(candidates[i], candidate)
			}
		}
	}

	return space{candidates: candidates}
}

// size returns the number of indexes in the space, including the ones pick rejects
func (s space) size() int {
	n := 1
	for _, c := range s.candidates {
		n *= len(c)
	}

	return n
}

// pick decodes the index into one card per joker
// It returns false if two jokers would stand for the same card
func (s space) pick(i int, picked *[deck.MaxJokers]deck.Card) bool {
	for j := len(s.candidates) - 1; j >= 0; j-- {
		n := len(s.candidates[j])
		picked[j] = s.candidates[j][i%n]
		i /= n
	}

	for j := 1; j < len(s.candidates); j++ {
		for k := 0; k < j; k++ {
			if picked[j] == picked[k] {
				return false
			}
		}
	}

	return true
}

// count returns the number of legal substitutions
func (s space) count() int {
	var picked [deck.MaxJokers]deck.Card
	n := 0
	for i := 0; i < s.size(); i++ {
		if s.pick(i, &picked) {
			n++
		}
	}

	return n
}

// span is a half open range of indexes
type span struct {
	lo, hi int
}

// spans splits n indexes into at most parts contiguous spans of near equal size
func spans(n, parts int) []span {
	if n <= 0 {
		return nil
	}

	if parts < 1 {
		parts = 1
	}

	if parts > n {
		parts = n
	}

	result := make([]span, 0, parts)
	size := n / parts
	extra := n % parts
	lo := 0
	for i := 0; i < parts; i++ {
		hi := lo + size
		if i < extra {
			hi++
		}

		result = append(result, span{lo: lo, hi: hi})
		lo = hi
	}

	return result
}
