package wild

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"wildpoker-server/pkg/deck"
	"wildpoker-server/pkg/poker"
)

// ErrNoSubstitution is returned when every candidate of a joker is already in the hand
var ErrNoSubstitution = errors.New("no legal substitution for jokers")

// Resolver finds the best five card hand from concrete cards and jokers
// A Resolver is immutable and safe for concurrent use
type Resolver struct {
	workers int
	logger  logrus.FieldLogger
}

// Option configures a Resolver
type Option func(r *Resolver)

// WithWorkers searches the substitutions with n goroutines
// A value of one or less searches sequentially
func WithWorkers(n int) Option {
	return func(r *Resolver) {
		r.workers = n
	}
}

// WithLogger sets the logger
func WithLogger(logger logrus.FieldLogger) Option {
	return func(r *Resolver) {
		r.logger = logger
	}
}

// NewResolver returns a new resolver, sequential by default
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		workers: 1,
		logger:  logrus.StandardLogger(),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Workers returns the number of goroutines used to search
func (r *Resolver) Workers() int {
	if r.workers < 1 {
		return 1
	}

	return r.workers
}

// result is the best hand found over a run of substitutions
type result struct {
	hand  deck.Hand
	rank  poker.HandRank
	found bool
}

// consider replaces the result only if the rank is strictly better
func (res *result) consider(hand deck.Hand, rank poker.HandRank) {
	if !res.found || rank.Beats(res.rank) {
		res.hand = hand
		res.rank = rank
		res.found = true
	}
}

// Resolve returns the best five card hand that can be made from the cards and jokers
func (r *Resolver) Resolve(cards deck.Hand, jokers []deck.Joker) (deck.Hand, poker.HandRank, error) {
	if len(jokers) > deck.MaxJokers {
		return nil, poker.HandRank{}, fmt.Errorf("%w: found %d, at most %d allowed", deck.ErrTooManyJokers, len(jokers), deck.MaxJokers)
	}

	if len(jokers) == 0 {
		return poker.BestFive(cards)
	}

	if n := len(cards) + len(jokers); n < poker.HandSize {
		return nil, poker.HandRank{}, fmt.Errorf("%w: need %d, got %d", poker.ErrNotEnoughCards, poker.HandSize, n)
	}

	subs := newSpace(cards, jokers)
	legal := subs.count()
	if legal == 0 {
		return nil, poker.HandRank{}, ErrNoSubstitution
	}

	workers := r.Workers()
	r.logger.WithFields(logrus.Fields{
		"jokers":        len(jokers),
		"substitutions": legal,
		"subsets":       poker.Combinations(len(cards) + len(jokers)),
		"workers":       workers,
	}).Debug("resolving jokers")

	var best result
	var err error
	if workers == 1 {
		best, err = search(context.Background(), cards, subs, span{lo: 0, hi: subs.size()})
	} else {
		best, err = r.searchParallel(cards, subs, workers)
	}

	if err != nil {
		return nil, poker.HandRank{}, err
	}

	r.logger.WithFields(logrus.Fields{
		"hand": best.rank.Hand.String(),
		"best": best.hand.String(),
	}).Debug("resolved jokers")

	return best.hand, best.rank, nil
}

// search pushes each substitution in the span onto the hand, finds the best five and pops it again
func search(ctx context.Context, cards deck.Hand, subs space, within span) (result, error) {
	jokers := len(subs.candidates)
	hand := make(deck.Hand, len(cards), len(cards)+jokers)
	copy(hand, cards)

	var best result
	var picked [deck.MaxJokers]deck.Card
	for i := within.lo; i < within.hi; i++ {
		if err := ctx.Err(); err != nil {
			return result{}, err
		}

		if !subs.pick(i, &picked) {
			continue
		}

		for _, card := range picked[:jokers] {
			hand.AddCard(card)
		}

		five, rank, err := poker.BestFive(hand)

		for j := 0; j < jokers; j++ {
			hand.PopCard()
		}

		if err != nil {
			return result{}, err
		}

		best.consider(five, rank)
	}

	return best, nil
}

// searchParallel splits the substitution indexes into contiguous spans, searches each span into its own slot,
// then reduces the slots in span order
func (r *Resolver) searchParallel(cards deck.Hand, subs space, workers int) (result, error) {
	parts := spans(subs.size(), workers)
	results := make([]result, len(parts))

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(workers)
	for i, part := range parts {
		i, part := i, part
		g.Go(func() error {
			res, err := search(ctx, cards, subs, part)
			if err != nil {
				return err
			}

			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return result{}, err
	}

	var best result
	for _, res := range results {
		if res.found {
			best.consider(res.hand, res.rank)
		}
	}

	return best, nil
}

// ResolveTokens parses seven tokens with up to two jokers and resolves the best five card hand
func (r *Resolver) ResolveTokens(tokens []string) (deck.Hand, poker.HandRank, error) {
	if len(tokens) != poker.DealSize {
		return nil, poker.HandRank{}, fmt.Errorf("%w: need %d, got %d", poker.ErrHandSize, poker.DealSize, len(tokens))
	}

	cards, jokers, err := deck.ParseHand(tokens)
	if err != nil {
		return nil, poker.HandRank{}, err
	}

	return r.Resolve(cards, jokers)
}

// BestWildHand returns the tokens of the best five card hand from seven tokens with up to two jokers
func (r *Resolver) BestWildHand(tokens []string) ([]string, error) {
	best, _, err := r.ResolveTokens(tokens)
	if err != nil {
		return nil, err
	}

	return best.Tokens(), nil
}

var defaultResolver = NewResolver()

// BestWildHand returns the tokens of the best five card hand using a sequential resolver
func BestWildHand(tokens []string) ([]string, error) {
	return defaultResolver.BestWildHand(tokens)
}
