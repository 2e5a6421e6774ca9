package dominoes

import "fmt"

// Suit represents one of the seven pip suits, or the doubles suit
// when a contract declares doubles their own suit
type Suit int

var suitNames = []string{"Blanks", "Ones", "Twos", "Threes", "Fours", "Fives", "Sixes", "Doubles"}

const (
	Blanks Suit = iota
	Ones
	Twos
	Threes
	Fours
	Fives
	Sixes
	Doubles
)

// NoTrump marks a hand played without a trump suit
const NoTrump Suit = -1

func (s Suit) String() string {
	if s == NoTrump {
		return "NoTrump"
	}
	if s < Blanks || s > Doubles {
		return fmt.Sprintf("Suit(%d)", int(s))
	}
	return suitNames[s]
}

// ParseSuit converts a suit name back into a Suit.
// Used at the protocol boundary, where trump arrives as a string
func ParseSuit(name string) (Suit, error) {
	for i, n := range suitNames {
		if n == name {
			return Suit(i), nil
		}
	}
	if name == "NoTrump" {
		return NoTrump, nil
	}
	return NoTrump, fmt.Errorf("unknown suit %q", name)
}
