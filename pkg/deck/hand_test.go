package deck

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHand_HasCard(t *testing.T) {
	hand := CardsFromString("2C 3C 4D")
	assert.True(t, hand.HasCard(MustParseCard("3C")))
	assert.False(t, hand.HasCard(MustParseCard("3S")))
}

func TestHand_AddCard(t *testing.T) {
	h := make(Hand, 0)
	h.AddCard(MustParseCard("AS"))
	h.AddCard(MustParseCard("3C"))
	assert.Equal(t, "AS 3C", h.String())
}

func TestHand_PopCard(t *testing.T) {
	h := CardsFromString("AS 3C")
	assert.Equal(t, MustParseCard("3C"), h.PopCard())
	assert.Equal(t, "AS", h.String())
	assert.Equal(t, MustParseCard("AS"), h.PopCard())
	assert.Equal(t, 0, len(h))

	assert.Panics(t, func() {
		h.PopCard()
	})
}

func TestHand_Clone(t *testing.T) {
	h := CardsFromString("AS 3C")
	clone := h.Clone()
	clone[0] = MustParseCard("2D")
	assert.Equal(t, "AS 3C", h.String())
	assert.Equal(t, "2D 3C", clone.String())
}

func TestParseHand(t *testing.T) {
	cards, jokers, err := ParseHand([]string{"TD", "TC", "5H", "5C", "7C", "?R", "?B"})
	assert.NoError(t, err)
	assert.Equal(t, "TD TC 5H 5C 7C", cards.String())
	assert.Equal(t, []Joker{RedJoker, BlackJoker}, jokers)

	cards, jokers, err = ParseHand([]string{"6C", "7C"})
	assert.NoError(t, err)
	assert.Equal(t, 2, len(cards))
	assert.Equal(t, 0, len(jokers))

	_, _, err = ParseHand([]string{"6C", "7X"})
	var parseErr *ParseError
	if assert.True(t, errors.As(err, &parseErr)) {
		assert.Equal(t, "7X", parseErr.Token)
	}

	_, _, err = ParseHand([]string{"?R", "?B", "?R", "AS"})
	assert.True(t, errors.Is(err, ErrTooManyJokers))

	_, _, err = ParseHand([]string{"AS", "KD", "AS"})
	assert.True(t, errors.Is(err, ErrDuplicateCard))
	assert.EqualError(t, err, "duplicate card: AS")

	// two of the same joker is allowed
	_, jokers, err = ParseHand([]string{"?R", "?R", "AS"})
	assert.NoError(t, err)
	assert.Equal(t, []Joker{RedJoker, RedJoker}, jokers)
}

func TestParseCards(t *testing.T) {
	cards, err := ParseCards([]string{"6C", "7C", "AD"})
	assert.NoError(t, err)
	assert.Equal(t, "6C 7C AD", cards.String())

	_, err = ParseCards([]string{"6C", "?B"})
	var parseErr *ParseError
	if assert.True(t, errors.As(err, &parseErr)) {
		assert.Equal(t, "?B", parseErr.Token)
		assert.Equal(t, "jokers are not allowed", parseErr.Reason)
	}

	_, err = ParseCards([]string{"6C", "6c"})
	assert.True(t, errors.As(err, &parseErr))

	_, err = ParseCards([]string{"6C", "6C"})
	assert.True(t, errors.Is(err, ErrDuplicateCard))
}
