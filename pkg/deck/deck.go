package deck

// Deck represents an ordered playing deck
type Deck struct {
	Cards Hand `json:"cards"`
}

// New returns a new deck of cards in suit order (C, S, H, D), then rank order (2 through Ace)
// The deck is never shuffled
func New() *Deck {
	cards := make(Hand, 0, len(Suits)*(MaxRank-MinRank+1))
	for _, suit := range Suits {
		for rank := MinRank; rank <= MaxRank; rank++ {
			cards = append(cards, Card{
				Rank: rank,
				Suit: suit,
			})
		}
	}

	return &Deck{Cards: cards}
}
