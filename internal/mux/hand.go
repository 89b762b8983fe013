package mux

import (
	"errors"
	"net/http"

	"wildpoker-server/pkg/deck"
	"wildpoker-server/pkg/poker"
)

type handRequest struct {
	Cards []string `json:"cards"`
}

type handResponse struct {
	Cards    []string `json:"cards"`
	Hand     string   `json:"hand"`
	Strength int      `json:"strength"`
}

// evaluate finds the best hand, jokers are only accepted if wild is true
func (m *Mux) evaluate(tokens []string, wild bool) (handResponse, error) {
	var best deck.Hand
	var rank poker.HandRank
	var err error
	if wild {
		best, rank, err = m.resolver.ResolveTokens(tokens)
	} else {
		best, rank, err = poker.Evaluate(tokens)
	}

	if err != nil {
		return handResponse{}, err
	}

	poker.SortHand(best)

	return handResponse{
		Cards:    best.Tokens(),
		Hand:     rank.Hand.String(),
		Strength: rank.Strength(),
	}, nil
}

// statusForError maps evaluation errors caused by the input to 400, anything else is a 500
func statusForError(err error) int {
	var parseErr *deck.ParseError
	switch {
	case errors.As(err, &parseErr),
		errors.Is(err, deck.ErrTooManyJokers),
		errors.Is(err, deck.ErrDuplicateCard),
		errors.Is(err, poker.ErrHandSize),
		errors.Is(err, poker.ErrNotEnoughCards):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (m *Mux) handHandler(wild bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req handRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		resp, err := m.evaluate(req.Cards, wild)
		if err != nil {
			writeJSONError(w, r, statusForError(err), err)
			return
		}

		requestLogger(r).WithField("hand", resp.Hand).Debug("evaluated hand")
		writeJSON(w, r, http.StatusOK, resp)
	}
}

func (m *Mux) postHandBest() http.HandlerFunc {
	return m.handHandler(false)
}

func (m *Mux) postHandBestWild() http.HandlerFunc {
	return m.handHandler(true)
}
