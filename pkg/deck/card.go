package deck

import (
	"fmt"
	"strings"
)

// Suit represents a card suit
type Suit string

// suit constants
const (
	Clubs    Suit = "clubs"
	Spades   Suit = "spades"
	Hearts   Suit = "hearts"
	Diamonds Suit = "diamonds"
)

// Suits lists every suit in token order (C, S, H, D)
var Suits = []Suit{Clubs, Spades, Hearts, Diamonds}

// face cards
const (
	Jack  = 11
	Queen = 12
	King  = 13
	Ace   = 14
)

// rank bounds
const (
	MinRank = 2
	MaxRank = Ace
)

// Card is an individual playing card
// Card is a value type: two cards are equal if their rank and suit match
type Card struct {
	Rank int  `json:"rank"`
	Suit Suit `json:"suit"`
}

// ParseError is returned when a token is neither a card nor a joker
type ParseError struct {
	Token  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("could not parse card %q: %s", e.Token, e.Reason)
}

func (c Card) String() string {
	var suit string
	switch c.Suit {
	case Clubs:
		suit = "♣"
	case Diamonds:
		suit = "♢"
	case Hearts:
		suit = "♡"
	case Spades:
		suit = "♠"
	default:
		suit = "?"
	}

	return fmt.Sprintf("%s%s", rankToString(c.Rank), suit)
}

// Token converts a card (Ten of Clubs) to its two character token (TC)
func (c Card) Token() string {
	return rankToString(c.Rank) + suitToString(c.Suit)
}

// IsValid returns true if the rank and suit are in range
func (c Card) IsValid() bool {
	if c.Rank < MinRank || c.Rank > MaxRank {
		return false
	}

	switch c.Suit {
	case Clubs, Spades, Hearts, Diamonds:
		return true
	}

	return false
}

// ParseCard returns a Card from the token.
// The token must be in the format of <rank><suit> where rank is in 23456789TJQKA and suit in CSHD
func ParseCard(token string) (Card, error) {
	if len(token) != 2 {
		return Card{}, &ParseError{Token: token, Reason: "expected two characters"}
	}

	rank, ok := parseRank(token[0])
	if !ok {
		return Card{}, &ParseError{Token: token, Reason: fmt.Sprintf("unknown rank %q", token[0])}
	}

	suit, ok := parseSuit(token[1])
	if !ok {
		return Card{}, &ParseError{Token: token, Reason: fmt.Sprintf("unknown suit %q", token[1])}
	}

	return Card{Rank: rank, Suit: suit}, nil
}

// MustParseCard is ParseCard for known-good tokens, it panics on error
func MustParseCard(token string) Card {
	card, err := ParseCard(token)
	if err != nil {
		panic(err)
	}

	return card
}

// CardsFromString returns a slice of cards from space separated tokens, i.e., "AS KD 7C"
// It panics if a token cannot be parsed
func CardsFromString(s string) Hand {
	fields := strings.Fields(s)
	cards := make(Hand, len(fields))
	for i, token := range fields {
		cards[i] = MustParseCard(token)
	}

	return cards
}

// Tokens converts the cards to their tokens, preserving order
func Tokens(cards []Card) []string {
	tokens := make([]string, len(cards))
	for i, card := range cards {
		tokens[i] = card.Token()
	}

	return tokens
}

func parseRank(c byte) (int, bool) {
	switch c {
	case '2', '3', '4', '5', '6', '7', '8', '9':
		return int(c - '0'), true
	case 'T':
		return 10, true
	case 'J':
		return Jack, true
	case 'Q':
		return Queen, true
	case 'K':
		return King, true
	case 'A':
		return Ace, true
	default:
		return 0, false
	}
}

func parseSuit(c byte) (Suit, bool) {
	switch c {
	case 'C':
		return Clubs, true
	case 'S':
		return Spades, true
	case 'H':
		return Hearts, true
	case 'D':
		return Diamonds, true
	default:
		return "", false
	}
}

func rankToString(rank int) string {
	switch rank {
	case 10:
		return "T"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	}

	if rank >= MinRank && rank <= 9 {
		return string(rune('0' + rank))
	}

	return "?"
}

func suitToString(suit Suit) string {
	switch suit {
	case Clubs:
		return "C"
	case Spades:
		return "S"
	case Hearts:
		return "H"
	case Diamonds:
		return "D"
	default:
		return "?"
	}
}
