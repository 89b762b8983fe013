package deck

import "fmt"

// Joker is a wild card that can stand in for any rank of the two suits of its color
type Joker int

// joker constants
const (
	// RedJoker can be used as hearts or diamonds
	RedJoker Joker = iota
	// BlackJoker can be used as spades or clubs
	BlackJoker
)

// joker tokens
const (
	RedJokerToken   = "?R"
	BlackJokerToken = "?B"
)

// ParseJoker returns the joker for the token (?R or ?B)
func ParseJoker(token string) (Joker, error) {
	switch token {
	case RedJokerToken:
		return RedJoker, nil
	case BlackJokerToken:
		return BlackJoker, nil
	default:
		return 0, &ParseError{Token: token, Reason: "not a joker"}
	}
}

// Suits returns the two suits the joker may represent
func (j Joker) Suits() []Suit {
	switch j {
	case RedJoker:
		return []Suit{Hearts, Diamonds}
	case BlackJoker:
		return []Suit{Spades, Clubs}
	default:
		panic(fmt.Sprintf("unknown joker: %d", j))
	}
}

// Candidates returns every concrete card the joker can represent
// The order is by rank (2 through Ace), then by suit
func (j Joker) Candidates() []Card {
	suits := j.Suits()
	cards := make([]Card, 0, (MaxRank-MinRank+1)*len(suits))
	for rank := MinRank; rank <= MaxRank; rank++ {
		for _, suit := range suits {
			cards = append(cards, Card{Rank: rank, Suit: suit})
		}
	}

	return cards
}

// CanRepresent returns true if the card is one of the joker's candidates
func (j Joker) CanRepresent(card Card) bool {
	if !card.IsValid() {
		return false
	}

	for _, suit := range j.Suits() {
		if card.Suit == suit {
			return true
		}
	}

	return false
}

// Token returns the joker's token
func (j Joker) Token() string {
	switch j {
	case RedJoker:
		return RedJokerToken
	case BlackJoker:
		return BlackJokerToken
	default:
		return "??"
	}
}

func (j Joker) String() string {
	switch j {
	case RedJoker:
		return "Red joker"
	case BlackJoker:
		return "Black joker"
	default:
		return "Unknown joker"
	}
}
