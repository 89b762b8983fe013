package wild

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"wildpoker-server/pkg/deck"
	"wildpoker-server/pkg/poker"
)

func tokens(s string) []string {
	return deck.CardsFromString(s).Tokens()
}

func TestBestWildHand(t *testing.T) {
	tests := []struct {
		cards    []string
		expected string
	}{
		{[]string{"6C", "7C", "8C", "9C", "TC", "5C", "?B"}, "7C 8C 9C JC TC"},
		{[]string{"TD", "TC", "5H", "5C", "7C", "?R", "?B"}, "7C TC TD TH TS"},
		{[]string{"2C", "3D", "5H", "7S", "9C", "JD", "?R"}, "JD JH 9C 7S 5H"},
		{[]string{"AS", "AH", "KD", "QC", "2C", "?R", "?B"}, "AS AH AD AC KD"},
		// two jokers of the same color never stand for the same card, so this is not AS AS
		{[]string{"2S", "7S", "QS", "3H", "9D", "?B", "?B"}, "2S 7S QS KS AS"},
	}

	for _, test := range tests {
		best, err := BestWildHand(test.cards)
		assert.NoError(t, err, test.cards)
		assert.ElementsMatch(t, tokens(test.expected), best, test.cards)
	}
}

func TestBestWildHand_noJokers(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	d := deck.New()
	for i := 0; i < 100; i++ {
		perm := rng.Perm(len(d.Cards))
		cards := make(deck.Hand, poker.DealSize)
		for j := range cards {
			cards[j] = d.Cards[perm[j]]
		}

		expected, err := poker.BestHand(cards.Tokens())
		assert.NoError(t, err)

		best, err := BestWildHand(cards.Tokens())
		assert.NoError(t, err)
		assert.Equal(t, expected, best)
	}
}

func TestBestWildHand_errors(t *testing.T) {
	_, err := BestWildHand([]string{"TD", "TC", "5H", "5C", "?R", "?R", "?B"})
	assert.True(t, errors.Is(err, deck.ErrTooManyJokers))

	_, err = BestWildHand([]string{"TD", "TC", "5H", "5C", "7C", "?R"})
	assert.True(t, errors.Is(err, poker.ErrHandSize))

	_, err = BestWildHand([]string{"TD", "TC", "5H", "5C", "7C", "?R", "?X"})
	var parseErr *deck.ParseError
	if assert.True(t, errors.As(err, &parseErr)) {
		assert.Equal(t, "?X", parseErr.Token)
	}

	_, err = BestWildHand([]string{"TD", "TC", "5H", "5C", "7C", "TD", "?B"})
	assert.True(t, errors.Is(err, deck.ErrDuplicateCard))
}

func TestResolver_Resolve_tooManyJokers(t *testing.T) {
	r := NewResolver()
	hand, rank, err := r.Resolve(deck.CardsFromString("TD TC 5H 5C"), []deck.Joker{deck.RedJoker, deck.RedJoker, deck.BlackJoker})
	assert.True(t, errors.Is(err, deck.ErrTooManyJokers))
	assert.Nil(t, hand)
	assert.Equal(t, poker.HandRank{}, rank)
}

func TestResolver_Resolve_notEnoughCards(t *testing.T) {
	r := NewResolver()
	_, _, err := r.Resolve(deck.CardsFromString("TD TC"), []deck.Joker{deck.RedJoker, deck.BlackJoker})
	assert.True(t, errors.Is(err, poker.ErrNotEnoughCards))

	_, _, err = r.Resolve(deck.CardsFromString("TD TC 2C 3C"), nil)
	assert.True(t, errors.Is(err, poker.ErrNotEnoughCards))
}

func TestResolver_Resolve_noSubstitution(t *testing.T) {
	reds := make(deck.Hand, 0, 26)
	for _, card := range deck.New().Cards {
		if deck.RedJoker.CanRepresent(card) {
			reds = append(reds, card)
		}
	}

	_, _, err := NewResolver().Resolve(reds, []deck.Joker{deck.RedJoker})
	assert.Equal(t, ErrNoSubstitution, err)
}

func TestResolver_Resolve_rank(t *testing.T) {
	hand, rank, err := NewResolver().Resolve(deck.CardsFromString("6C 7C 8C 9C TC 5C"), []deck.Joker{deck.BlackJoker})
	assert.NoError(t, err)
	assert.Equal(t, poker.HandRank{Hand: poker.StraightFlush, Payload: []int{11}}, rank)
	assert.Equal(t, rank, poker.Rank(hand))
}

func TestResolver_Resolve_doesNotModifyInput(t *testing.T) {
	cards := deck.CardsFromString("TD TC 5H 5C 7C")
	_, _, err := NewResolver(WithWorkers(3)).Resolve(cards, []deck.Joker{deck.RedJoker, deck.BlackJoker})
	assert.NoError(t, err)
	assert.Equal(t, "TD TC 5H 5C 7C", cards.String())

	_, _, err = NewResolver().Resolve(cards, []deck.Joker{deck.RedJoker, deck.BlackJoker})
	assert.NoError(t, err)
	assert.Equal(t, "TD TC 5H 5C 7C", cards.String())
}

func randomDeal(rng *rand.Rand, jokers int) (deck.Hand, []deck.Joker) {
	d := deck.New()
	perm := rng.Perm(len(d.Cards))
	cards := make(deck.Hand, poker.DealSize-jokers)
	for i := range cards {
		cards[i] = d.Cards[perm[i]]
	}

	js := make([]deck.Joker, jokers)
	for i := range js {
		js[i] = deck.Joker(rng.Intn(2))
	}

	return cards, js
}

func TestResolver_parallelMatchesSequential(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	sequential := NewResolver()

	for i := 0; i < 20; i++ {
		cards, jokers := randomDeal(rng, 1+i%2)
		expectedHand, expectedRank, err := sequential.Resolve(cards, jokers)
		assert.NoError(t, err)

		for _, workers := range []int{2, 3, 8, 1000} {
			hand, rank, err := NewResolver(WithWorkers(workers)).Resolve(cards, jokers)
			assert.NoError(t, err)
			assert.Equal(t, expectedHand, hand, "workers=%d %s %v", workers, cards, jokers)
			assert.Equal(t, expectedRank, rank, "workers=%d %s %v", workers, cards, jokers)
		}
	}
}

func TestResolver_parallelSameColor(t *testing.T) {
	cards := deck.CardsFromString("2S 7S QS 3H 9D")
	jokers := []deck.Joker{deck.BlackJoker, deck.BlackJoker}

	expectedHand, expectedRank, err := NewResolver().Resolve(cards, jokers)
	assert.NoError(t, err)
	assert.Equal(t, poker.Flush, expectedRank.Hand)

	// with one index per worker, some workers only see rejected pairs
	hand, rank, err := NewResolver(WithWorkers(1000)).Resolve(cards, jokers)
	assert.NoError(t, err)
	assert.Equal(t, expectedHand, hand)
	assert.Equal(t, expectedRank, rank)
}

func TestResolver_jokersNeverHurt(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	r := NewResolver()

	for i := 0; i < 10; i++ {
		cards, jokers := randomDeal(rng, 1)
		_, best, err := r.Resolve(cards, jokers)
		assert.NoError(t, err)

		for _, candidate := range jokers[0].Candidates() {
			if cards.HasCard(candidate) {
				continue
			}

			concrete := append(cards.Clone(), candidate)
			_, rank, err := poker.BestFive(concrete)
			assert.NoError(t, err)
			assert.True(t, best.Compare(rank) >= 0, "%s + %s", cards, candidate.Token())
		}
	}
}

func TestResolver_Workers(t *testing.T) {
	assert.Equal(t, 1, NewResolver().Workers())
	assert.Equal(t, 1, NewResolver(WithWorkers(0)).Workers())
	assert.Equal(t, 1, NewResolver(WithWorkers(-3)).Workers())
	assert.Equal(t, 4, NewResolver(WithWorkers(4)).Workers())
}

func TestResolver_logs(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	r := NewResolver(WithLogger(logger))
	_, err := r.BestWildHand([]string{"TD", "TC", "5H", "5C", "7C", "?R", "?B"})
	assert.NoError(t, err)

	if assert.Equal(t, 2, len(hook.Entries)) {
		assert.Equal(t, "resolving jokers", hook.Entries[0].Message)
		assert.Equal(t, 2, hook.Entries[0].Data["jokers"])
		assert.Equal(t, 21, hook.Entries[0].Data["subsets"])
		assert.Equal(t, 24*23, hook.Entries[0].Data["substitutions"])
		assert.Equal(t, "resolved jokers", hook.LastEntry().Message)
		assert.Equal(t, "Four of a kind", hook.LastEntry().Data["hand"])
	}
}
