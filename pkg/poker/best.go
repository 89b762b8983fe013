package poker

import (
	"errors"
	"fmt"

	"wildpoker-server/pkg/deck"
)

// DealSize is the number of tokens a best hand is chosen from
const DealSize = 7

// ErrNotEnoughCards is returned when fewer than five cards are searched
var ErrNotEnoughCards = errors.New("not enough cards")

// ErrHandSize is returned when the number of tokens is not DealSize
var ErrHandSize = errors.New("wrong number of cards")

// BestFive returns the best five card subset of the cards and its rank
// Every subset is evaluated in lexicographic index order, on a tie the earlier subset wins
func BestFive(cards []deck.Card) (deck.Hand, HandRank, error) {
	n := len(cards)
	if n < HandSize {
		return nil, HandRank{}, fmt.Errorf("%w: need %d, got %d", ErrNotEnoughCards, HandSize, n)
	}

	var best HandRank
	var bestIdx [HandSize]int
	found := false

	var five [HandSize]deck.Card
	for a := 0; a < n-4; a++ {
		for b := a + 1; b < n-3; b++ {
			for c := b + 1; c < n-2; c++ {
				for d := c + 1; d < n-1; d++ {
					for e := d + 1; e < n; e++ {
						five = [HandSize]deck.Card{cards[a], cards[b], cards[c], cards[d], cards[e]}
						rank := Rank(five[:])
						if !found || rank.Beats(best) {
							found = true
							best = rank
							bestIdx = [HandSize]int{a, b, c, d, e}
						}
					}
				}
			}
		}
	}

	hand := make(deck.Hand, HandSize)
	for i, idx := range bestIdx {
		hand[i] = cards[idx]
	}

	return hand, best, nil
}

// Combinations returns the number of five card subsets of n cards
func Combinations(n int) int {
	if n < HandSize {
		return 0
	}

	result := 1
	for i := 0; i < HandSize; i++ {
		result = result * (n - i) / (i + 1)
	}

	return result
}

// ParseDeal parses exactly DealSize concrete card tokens
func ParseDeal(tokens []string) (deck.Hand, error) {
	if len(tokens) != DealSize {
		return nil, fmt.Errorf("%w: need %d, got %d", ErrHandSize, DealSize, len(tokens))
	}

	return deck.ParseCards(tokens)
}

// Evaluate parses seven concrete card tokens and returns the best five card hand and its rank
func Evaluate(tokens []string) (deck.Hand, HandRank, error) {
	cards, err := ParseDeal(tokens)
	if err != nil {
		return nil, HandRank{}, err
	}

	return BestFive(cards)
}

// BestHand returns the tokens of the best five card hand from seven card tokens
func BestHand(tokens []string) ([]string, error) {
	best, _, err := Evaluate(tokens)
	if err != nil {
		return nil, err
	}

	return best.Tokens(), nil
}
