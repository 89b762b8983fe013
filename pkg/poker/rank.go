package poker

import (
	"fmt"
	"strings"
)

// strengthDigits is the number of payload components packed into a strength
// Two pair has the longest payload: [hi, lo, r1..r5]
const strengthDigits = 7

// strengthBase is larger than any rank
const strengthBase = 15

// HandRank is a totally ordered rank of a five card hand
// Two ranks compare by hand first, then by payload component by component
type HandRank struct {
	Hand    Hand  `json:"hand"`
	Payload []int `json:"payload"`
}

// Compare returns -1, 0 or 1 if r is worse, equal or better than other
func (r HandRank) Compare(other HandRank) int {
	if r.Hand != other.Hand {
		if r.Hand < other.Hand {
			return -1
		}

		return 1
	}

	for i := 0; i < len(r.Payload) && i < len(other.Payload); i++ {
		if r.Payload[i] != other.Payload[i] {
			if r.Payload[i] < other.Payload[i] {
				return -1
			}

			return 1
		}
	}

	switch {
	case len(r.Payload) < len(other.Payload):
		return -1
	case len(r.Payload) > len(other.Payload):
		return 1
	}

	return 0
}

// Beats returns true if r is strictly better than other
func (r HandRank) Beats(other HandRank) bool {
	return r.Compare(other) > 0
}

// Strength packs the rank into a single integer with the same order as Compare
func (r HandRank) Strength() int {
	strength := int(r.Hand)
	for i := 0; i < strengthDigits; i++ {
		strength *= strengthBase
		if i < len(r.Payload) {
			strength += r.Payload[i]
		}
	}

	return strength
}

func (r HandRank) String() string {
	payload := make([]string, len(r.Payload))
	for i, rank := range r.Payload {
		payload[i] = fmt.Sprintf("%d", rank)
	}

	return fmt.Sprintf("%s [%s]", r.Hand, strings.Join(payload, " "))
}
