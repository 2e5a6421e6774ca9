package dominoes

import (
	"errors"
	"fmt"
)

// Domino represents one of the 28 tiles of a double-six set.
// High and Low are pip values with High >= Low
type Domino struct {
	High int `json:"high"`
	Low  int `json:"low"`
}

// New constructs a domino
func New(high, low int) (Domino, error) {
	if high < 0 || high > 6 || low < 0 || low > 6 {
		return Domino{}, errors.New("pip values out of range")
	}
	if high < low {
		return Domino{}, errors.New("high pip must not be less than low pip")
	}
	return Domino{High: high, Low: low}, nil
}

// Parse converts a domino ID such as "6-4" back into a Domino
func Parse(id string) (Domino, error) {
	var high, low int
	if _, err := fmt.Sscanf(id, "%d-%d", &high, &low); err != nil {
		return Domino{}, fmt.Errorf("malformed domino ID %q", id)
	}
	return New(high, low)
}

// ID returns the stable identity of a domino, e.g. "6-4"
func (d Domino) ID() string {
	return fmt.Sprintf("%d-%d", d.High, d.Low)
}

func (d Domino) String() string {
	return d.ID()
}

// PointValue returns the count value of a domino.
// The five count dominoes are the pairs summing to 5 (5-0, 4-1, 3-2)
// and the pairs summing to 10 (6-4, 5-5); everything else is worth nothing
func (d Domino) PointValue() int {
	switch d.High + d.Low {
	case 5:
		return 5
	case 10:
		return 10
	}
	return 0
}

// IsCount reports whether the domino is one of the five count dominoes
func (d Domino) IsCount() bool {
	return d.PointValue() > 0
}

// IsDouble reports whether both ends show the same pip
func (d Domino) IsDouble() bool {
	return d.High == d.Low
}

// Suit returns the suit a domino belongs to. A double belongs to the
// doubles suit only when the contract makes doubles their own suit;
// otherwise it is the top member of its pip suit
func (d Domino) Suit(doublesOwnSuit bool) Suit {
	if d.IsDouble() && doublesOwnSuit {
		return Doubles
	}
	return Suit(d.High)
}
