package fortytwo

import "github.com/moonollie/fortytwo/dominoes"

const (
	// MinBid is the lowest live bid
	MinBid = 30
	// MaxBid is the highest live bid, one point per count in the set
	// plus one per trick
	MaxBid = 42
)

// Bid represents one bid in the auction. An Amount of 0 is a pass
// and carries no trump
type Bid struct {
	PlayerID string        `json:"playerID"`
	Position Position      `json:"position"`
	Amount   int           `json:"amount"`
	Trump    dominoes.Suit `json:"trump"`
}

// IsPass reports whether the bid is a pass
func (b Bid) IsPass() bool {
	return b.Amount == 0
}

// MarkValue returns the number of marks the contract is worth, to the
// declaring side if made and to the opponents if set
func (b Bid) MarkValue(doubleMarksOnMax bool) int {
	if doubleMarksOnMax && b.Amount == MaxBid {
		return 2
	}
	return 1
}

// BiddingState is the auction for one hand. Bidding starts left of the
// dealer and proceeds clockwise. The auction ends when three consecutive
// passes follow a live bid, or when all four seats pass without one.
// The two endings are distinct: a passed-out hand is resolved by the
// game's AllPassPolicy, not by the auction itself
type BiddingState struct {
	Dealer    Position `json:"dealer"`
	Turn      Position `json:"turn"`
	Bids      []Bid    `json:"bids"`
	HighBid   *Bid     `json:"highBid"`
	Passes    int      `json:"passes"` // consecutive passes since the last live bid
	Complete  bool     `json:"complete"`
	AllPassed bool     `json:"allPassed"`
	ForcedBid bool     `json:"forcedBid"` // dealer is on the spot after a passed-out hand
}

// NewBiddingState opens the auction for a hand
func NewBiddingState(dealer Position) *BiddingState {
	return &BiddingState{
		Dealer: dealer,
		Turn:   dealer.Next(),
		Bids:   []Bid{},
	}
}

// MinimumBid returns the lowest amount the next live bid may name
func (bs *BiddingState) MinimumBid() int {
	if bs.HighBid != nil {
		return bs.HighBid.Amount + 1
	}
	return MinBid
}

// PlaceBid applies one bid or pass. A refused bid leaves the auction
// untouched
func (bs *BiddingState) PlaceBid(bid Bid) error {
	if bs.Complete || bs.AllPassed {
		return ErrBiddingAlreadyComplete
	}
	if bid.Position != bs.Turn {
		return ErrNotYourTurn
	}

	if bid.IsPass() {
		if bid.Trump != dominoes.NoTrump {
			return ErrPassWithTrump
		}
		if bs.ForcedBid {
			return ErrPassForbidden
		}

		bs.Bids = append(bs.Bids, bid)
		bs.Passes++

		if bs.HighBid == nil && bs.Passes == NumSeats {
			bs.AllPassed = true
			return nil
		}
		if bs.HighBid != nil && bs.Passes == NumSeats-1 {
			bs.Complete = true
			return nil
		}

		bs.Turn = bs.Turn.Next()
		return nil
	}

	if bid.Amount < MinBid || bid.Amount > MaxBid {
		return ErrBidOutOfRange
	}
	if bs.HighBid != nil && bid.Amount <= bs.HighBid.Amount {
		return ErrBidTooLow
	}
	if bid.Trump < dominoes.Blanks || bid.Trump > dominoes.Doubles {
		return ErrMissingTrump
	}

	held := bid
	bs.Bids = append(bs.Bids, bid)
	bs.HighBid = &held
	bs.Passes = 0

	if bs.ForcedBid {
		// the forced opening bid stands unchallenged
		bs.Complete = true
		return nil
	}

	bs.Turn = bs.Turn.Next()
	return nil
}

// ForceDealerBid reopens a passed-out auction with the dealer obliged
// to open at the minimum or better. Calling it on a live auction is a
// bug in the orchestrator
func (bs *BiddingState) ForceDealerBid() {
	if !bs.AllPassed {
		panic("forcing the dealer's bid on an auction that has not passed out")
	}
	bs.AllPassed = false
	bs.ForcedBid = true
	bs.Turn = bs.Dealer
}

// Declarer returns the winning bid once the auction is complete
func (bs *BiddingState) Declarer() (Bid, bool) {
	if !bs.Complete || bs.HighBid == nil {
		return Bid{}, false
	}
	return *bs.HighBid, true
}

// Trump returns the declared trump, or NoTrump while the auction is live
func (bs *BiddingState) Trump() dominoes.Suit {
	if declarer, ok := bs.Declarer(); ok {
		return declarer.Trump
	}
	return dominoes.NoTrump
}
