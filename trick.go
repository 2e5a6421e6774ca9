package fortytwo

import "github.com/moonollie/fortytwo/dominoes"

// TricksPerHand is the number of tricks in a hand: 28 tiles, 4 seats,
// 7 tiles each
const TricksPerHand = 7

// PlayedDomino records one tile of a trick
type PlayedDomino struct {
	Domino    dominoes.Domino `json:"domino"`
	PlayerID  string          `json:"playerID"`
	Position  Position        `json:"position"`
	PlayOrder int             `json:"playOrder"`
}

// Trick represents one round of four plays. The first tile sets the lead
// suit; after the fourth the trick is sealed and a winner recorded
type Trick struct {
	Plays    []PlayedDomino `json:"plays"`
	LeadSuit dominoes.Suit  `json:"leadSuit"`
	Winner   Position       `json:"winner"`
	Complete bool           `json:"complete"`
}

// NewTrick creates a new empty trick
func NewTrick() *Trick {
	return &Trick{
		Plays:    make([]PlayedDomino, 0, NumSeats),
		LeadSuit: dominoes.NoTrump,
	}
}

// effectiveSuit returns the suit a domino follows as under the declared
// trump: doubles form their own suit only under a doubles contract
func effectiveSuit(d dominoes.Domino, trump dominoes.Suit) dominoes.Suit {
	return d.Suit(trump == dominoes.Doubles)
}

// isTrump reports whether a domino belongs to the trump suit
func isTrump(d dominoes.Domino, trump dominoes.Suit) bool {
	if trump == dominoes.NoTrump {
		return false
	}
	return effectiveSuit(d, trump) == trump
}

// rankIn ranks a domino within a suit. Non-doubles rank by total pip
// count; the double of a suit outranks every non-double in it. In the
// doubles suit the seven doubles rank by pip
func rankIn(d dominoes.Domino, suit dominoes.Suit) int {
	if suit == dominoes.Doubles {
		return d.High
	}
	if d.IsDouble() {
		return 12 // above 6-5, the best a non-double can manage
	}
	return d.High + d.Low
}

// Play adds a tile to the trick. Legality is the caller's business;
// playing onto a sealed trick is a bug upstream
func (t *Trick) Play(d dominoes.Domino, playerID string, pos Position, trump dominoes.Suit) {
	if t.Complete {
		panic("playing onto a completed trick")
	}
	if len(t.Plays) == 0 {
		t.LeadSuit = effectiveSuit(d, trump)
	}

	t.Plays = append(t.Plays, PlayedDomino{
		Domino:    d,
		PlayerID:  playerID,
		Position:  pos,
		PlayOrder: len(t.Plays) + 1,
	})

	if len(t.Plays) == NumSeats {
		t.Winner = t.resolveWinner(trump)
		t.Complete = true
	}
}

// beats reports whether the candidate play beats the current best,
// given the lead suit and declared trump
func (t *Trick) beats(candidate, best PlayedDomino, trump dominoes.Suit) bool {
	candTrump := isTrump(candidate.Domino, trump)
	bestTrump := isTrump(best.Domino, trump)

	if candTrump != bestTrump {
		return candTrump
	}
	if candTrump {
		return rankIn(candidate.Domino, trump) > rankIn(best.Domino, trump)
	}

	// neither is trump: only tiles of the lead suit contend
	candFollows := effectiveSuit(candidate.Domino, trump) == t.LeadSuit
	bestFollows := effectiveSuit(best.Domino, trump) == t.LeadSuit
	if candFollows != bestFollows {
		return candFollows
	}
	if !candFollows {
		return false
	}
	return rankIn(candidate.Domino, t.LeadSuit) > rankIn(best.Domino, t.LeadSuit)
}

func (t *Trick) resolveWinner(trump dominoes.Suit) Position {
	best := t.Plays[0]
	for _, play := range t.Plays[1:] {
		if t.beats(play, best, trump) {
			best = play
		}
	}
	return best.Position
}

// Points returns the count value captured in the trick
func (t *Trick) Points() int {
	total := 0
	for _, play := range t.Plays {
		total += play.Domino.PointValue()
	}
	return total
}

// legalPlays returns the tiles of a hand that may legally be played on
// the trick. Any tile may lead. A follower holding tiles of the lead
// suit must play one of them; a hand with none is unconstrained, and
// there is never an obligation to trump in
func legalPlays(hand []dominoes.Domino, t *Trick, trump dominoes.Suit) []dominoes.Domino {
	if t == nil || len(t.Plays) == 0 || t.Complete {
		return hand
	}

	follows := []dominoes.Domino{}
	for _, d := range hand {
		if effectiveSuit(d, trump) == t.LeadSuit {
			follows = append(follows, d)
		}
	}
	if len(follows) > 0 {
		return follows
	}
	return hand
}

// validatePlay checks a candidate play for the active seat. A refusal is
// a value, never a panic
func validatePlay(hand []dominoes.Domino, d dominoes.Domino, t *Trick, trump dominoes.Suit) error {
	held := false
	for _, h := range hand {
		if h == d {
			held = true
			break
		}
	}
	if !held {
		return ErrDominoNotInHand
	}

	for _, legal := range legalPlays(hand, t, trump) {
		if legal == d {
			return nil
		}
	}
	return ErrMustFollowSuit
}
