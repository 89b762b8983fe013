package deck

import (
	"errors"
	"fmt"
	"strings"
)

// MaxJokers is the maximum number of jokers allowed in a hand
const MaxJokers = 2

// ErrTooManyJokers is returned when a hand contains more than MaxJokers jokers
var ErrTooManyJokers = errors.New("too many jokers")

// ErrDuplicateCard is returned when the same card appears more than once in a hand
var ErrDuplicateCard = errors.New("duplicate card")

// Hand represents a collection of cards
type Hand []Card

// AddCard adds a card to the hand
func (h *Hand) AddCard(card Card) {
	*h = append(*h, card)
}

// PopCard removes and returns the last card in the hand
// It panics if the hand is empty
func (h *Hand) PopCard() Card {
	n := len(*h)
	card := (*h)[n-1]
	*h = (*h)[:n-1]

	return card
}

// HasCard returns true if the hand contains the specified card
func (h Hand) HasCard(card Card) bool {
	for _, c := range h {
		if c == card {
			return true
		}
	}

	return false
}

// Tokens returns the tokens of the cards in the hand
func (h Hand) Tokens() []string {
	return Tokens(h)
}

func (h Hand) String() string {
	return strings.Join(h.Tokens(), " ")
}

// Clone returns a clone of the hand
func (h Hand) Clone() Hand {
	h2 := make(Hand, len(h))
	copy(h2, h)

	return h2
}

// ParseHand splits the tokens into concrete cards and jokers
// An error is returned if a token cannot be parsed, if there are more than MaxJokers jokers,
// or if a card is repeated
func ParseHand(tokens []string) (Hand, []Joker, error) {
	cards := make(Hand, 0, len(tokens))
	jokers := make([]Joker, 0, MaxJokers)

	for _, token := range tokens {
		if joker, err := ParseJoker(token); err == nil {
			jokers = append(jokers, joker)
			continue
		}

		card, err := ParseCard(token)
		if err != nil {
			return nil, nil, err
		}

		if cards.HasCard(card) {
			return nil, nil, fmt.Errorf("%w: %s", ErrDuplicateCard, token)
		}

		cards.AddCard(card)
	}

	if len(jokers) > MaxJokers {
		return nil, nil, fmt.Errorf("%w: found %d, at most %d allowed", ErrTooManyJokers, len(jokers), MaxJokers)
	}

	return cards, jokers, nil
}

// ParseCards parses concrete card tokens only, a joker token is a parse error
func ParseCards(tokens []string) (Hand, error) {
	cards := make(Hand, 0, len(tokens))
	for _, token := range tokens {
		if _, err := ParseJoker(token); err == nil {
			return nil, &ParseError{Token: token, Reason: "jokers are not allowed"}
		}

		card, err := ParseCard(token)
		if err != nil {
			return nil, err
		}

		if cards.HasCard(card) {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCard, token)
		}

		cards.AddCard(card)
	}

	return cards, nil
}
