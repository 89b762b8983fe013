package poker

// straightLength is the number of consecutive ranks that make a straight
const straightLength = 5

// used to keep track of the straight progress over ranks sorted high to low
type straightTracker struct {
	startRank int
	prevRank  int
	streak    int
}

// checkStraight will check for a straight
// A straight needs four "decrement by exactly one" transitions in one unbroken run
// If one has been found, then the highest rank in the straight is returned
// Ace is always high, so A-2-3-4-5 is not a straight
func (st *straightTracker) checkStraight(rank int) (int, bool) {
	if st.streak > 0 && rank+1 == st.prevRank {
		st.streak++
	} else {
		st.streak = 1
		st.startRank = rank
	}

	st.prevRank = rank

	if st.streak >= straightLength {
		return st.startRank, true
	}

	return 0, false
}
