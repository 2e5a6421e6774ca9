package fortytwo

import "github.com/moonollie/fortytwo/dominoes"

// Phase represents the current phase of a game
type Phase int

const (
	PhaseBidding Phase = iota
	PhasePlaying
	PhaseScoring
	PhaseFinished
)

var phaseNames = []string{"Bidding", "Playing", "Scoring", "Finished"}

func (p Phase) String() string {
	return phaseNames[p]
}

// HandSize is the number of tiles dealt to each seat
const HandSize = 7

// AllPassPolicy decides what happens when all four seats pass without a
// live bid. House rules differ, so the choice is configuration
type AllPassPolicy int

const (
	// AllPassRedeal rotates the dealer and deals a fresh hand
	AllPassRedeal AllPassPolicy = iota
	// AllPassForceDealer puts the dealer on the spot: they must open at
	// the minimum bid or better, and may not pass
	AllPassForceDealer
)

// GameConfig carries the house rules for one game
type GameConfig struct {
	MarksToWin      int           `json:"marksToWin"`
	AllPassPolicy   AllPassPolicy `json:"allPassPolicy"`
	DoubleMarksOn42 bool          `json:"doubleMarksOn42"`
}

// DefaultConfig returns the common rules: first to 7 marks, redeal on a
// passed-out hand, every contract worth one mark
func DefaultConfig() GameConfig {
	return GameConfig{MarksToWin: 7}
}

// Seat ties a player to a position at the table
type Seat struct {
	PlayerID string   `json:"playerID"`
	Name     string   `json:"name"`
	Position Position `json:"position"`
}

// PartnershipState is one pair's standing. The scoring engine is the
// only writer; per-hand fields describe the most recent completed hand
type PartnershipState struct {
	HandScore int  `json:"handScore"`
	Total     int  `json:"total"`
	Marks     int  `json:"marks"`
	TricksWon int  `json:"tricksWon"`
	Bidding   bool `json:"bidding"`
}

// GameOpts is the configuration for constructing a Game
type GameOpts struct {
	Seats  []Seat
	Dealer Position
	Config GameConfig
}

// Game is the authoritative state of one game of 42. Every field is
// exported so a snapshot can be serialised and restored verbatim.
// Commands mutate it one at a time; the engine assumes a single writer
type Game struct {
	Seats        []Seat                       `json:"seats"`
	Dealer       Position                     `json:"dealer"`
	Phase        Phase                        `json:"phase"`
	Config       GameConfig                   `json:"config"`
	Auction      *BiddingState                `json:"auction"`
	Hands        map[string][]dominoes.Domino `json:"hands"`
	Tricks       []*Trick                     `json:"tricks"`
	CurrentTrick *Trick                       `json:"currentTrick"`
	Turn         Position                     `json:"turn"`
	Partnerships [2]*PartnershipState         `json:"partnerships"`
	LastResult   *HandResult                  `json:"lastResult"`
	Done         bool                         `json:"done"`
	Winner       Partnership                  `json:"winner"`
}

// NewGame seats four players and returns a game awaiting its first
// hand. A malformed table is refused outright: the engine will not run
// on inconsistent state
func NewGame(opts GameOpts) (*Game, error) {
	if len(opts.Seats) != NumSeats {
		return nil, ErrWrongNumPlayers
	}

	positionsTaken := map[Position]bool{}
	idsTaken := map[string]bool{}
	for _, seat := range opts.Seats {
		if seat.PlayerID == "" {
			return nil, ErrWrongNumPlayers
		}
		if positionsTaken[seat.Position] || idsTaken[seat.PlayerID] {
			return nil, ErrDuplicateSeat
		}
		positionsTaken[seat.Position] = true
		idsTaken[seat.PlayerID] = true
	}

	cfg := opts.Config
	if cfg.MarksToWin == 0 {
		cfg.MarksToWin = DefaultConfig().MarksToWin
	}

	return &Game{
		Seats:        append([]Seat{}, opts.Seats...),
		Dealer:       opts.Dealer,
		Phase:        PhaseBidding,
		Config:       cfg,
		Hands:        map[string][]dominoes.Domino{},
		Partnerships: [2]*PartnershipState{{}, {}},
	}, nil
}

// seat looks up a player's seat
func (g *Game) seat(playerID string) (Seat, bool) {
	for _, s := range g.Seats {
		if s.PlayerID == playerID {
			return s, true
		}
	}
	return Seat{}, false
}

// StartHand shuffles and deals a new hand and opens its auction. It is
// legal before the first hand and after a scored one
func (g *Game) StartHand() error {
	if g.Done {
		return ErrGameAlreadyComplete
	}

	switch {
	case g.Phase == PhaseBidding && g.Auction == nil:
		// first hand
	case g.Phase == PhaseScoring:
		g.Dealer = g.Dealer.Next()
		g.Phase = PhaseBidding
	default:
		return ErrWrongPhase
	}

	g.deal()
	return nil
}

func (g *Game) deal() {
	set := dominoes.NewSet()
	set.Shuffle()

	for _, seat := range g.Seats {
		g.Hands[seat.PlayerID] = set.Deal(HandSize)
	}

	g.Auction = NewBiddingState(g.Dealer)
	g.Tricks = nil
	g.CurrentTrick = nil
	for _, ps := range g.Partnerships {
		ps.HandScore = 0
		ps.TricksWon = 0
		ps.Bidding = false
	}
}

// PlaceBid applies a bid from a seat. Amount 0 is a pass
func (g *Game) PlaceBid(playerID string, amount int, trump dominoes.Suit) error {
	if g.Done {
		return ErrGameAlreadyComplete
	}
	if g.Phase != PhaseBidding || g.Auction == nil {
		return ErrWrongPhase
	}

	seat, ok := g.seat(playerID)
	if !ok {
		return ErrUnknownPlayer
	}

	err := g.Auction.PlaceBid(Bid{
		PlayerID: playerID,
		Position: seat.Position,
		Amount:   amount,
		Trump:    trump,
	})
	if err != nil {
		return err
	}

	if g.Auction.Complete {
		declarer, _ := g.Auction.Declarer()
		g.Partnerships[declarer.Position.Partnership()].Bidding = true
		g.Phase = PhasePlaying
		g.Turn = declarer.Position
		g.CurrentTrick = NewTrick()
		return nil
	}

	if g.Auction.AllPassed {
		switch g.Config.AllPassPolicy {
		case AllPassForceDealer:
			g.Auction.ForceDealerBid()
		default:
			g.Dealer = g.Dealer.Next()
			g.deal()
		}
	}

	return nil
}

// Pass is a convenience for a bid of 0
func (g *Game) Pass(playerID string) error {
	return g.PlaceBid(playerID, 0, dominoes.NoTrump)
}

// PlayDomino applies a play from a seat to the current trick
func (g *Game) PlayDomino(playerID, dominoID string) error {
	if g.Done {
		return ErrGameAlreadyComplete
	}
	if g.Phase != PhasePlaying {
		return ErrWrongPhase
	}

	seat, ok := g.seat(playerID)
	if !ok {
		return ErrUnknownPlayer
	}
	if seat.Position != g.Turn {
		return ErrNotYourTurn
	}

	d, err := dominoes.Parse(dominoID)
	if err != nil {
		return ErrDominoNotInHand
	}

	trump := g.Auction.Trump()
	hand := g.Hands[playerID]
	if err := validatePlay(hand, d, g.CurrentTrick, trump); err != nil {
		return err
	}

	g.Hands[playerID] = removeDomino(hand, d)
	g.CurrentTrick.Play(d, playerID, seat.Position, trump)

	if !g.CurrentTrick.Complete {
		g.Turn = g.Turn.Next()
		return nil
	}

	g.Tricks = append(g.Tricks, g.CurrentTrick)
	if len(g.Tricks) == TricksPerHand {
		g.finishHand()
		return nil
	}

	g.Turn = g.CurrentTrick.Winner
	g.CurrentTrick = NewTrick()
	return nil
}

// finishHand seals the hand, scores it and either ends the game or
// leaves it awaiting StartHand
func (g *Game) finishHand() {
	for _, seat := range g.Seats {
		if len(g.Hands[seat.PlayerID]) != 0 {
			panic("hand finished with tiles still held")
		}
	}

	contract, ok := g.Auction.Declarer()
	if !ok {
		panic("hand finished without a contract")
	}

	g.Phase = PhaseScoring
	g.CurrentTrick = nil

	result := ScoreHand(g.Tricks, contract, g.Config.DoubleMarksOn42)
	g.LastResult = &result

	for side := NorthSouth; side <= EastWest; side++ {
		ps := g.Partnerships[side]
		ps.HandScore = result.HandScore[side]
		ps.TricksWon = result.TricksWon[side]
		ps.Total += result.HandScore[side]
		ps.Marks += result.Marks[side]

		if ps.Marks >= g.Config.MarksToWin && !g.Done {
			g.Done = true
			g.Phase = PhaseFinished
			g.Winner = side
		}
	}
}

// CurrentPhase returns the phase of the game
func (g *Game) CurrentPhase() Phase {
	return g.Phase
}

// IsComplete reports whether a partnership has reached the marks target
func (g *Game) IsComplete() bool {
	return g.Done
}

// Trump returns the trump of the current contract, or NoTrump while the
// auction is still live
func (g *Game) Trump() dominoes.Suit {
	if g.Auction == nil {
		return dominoes.NoTrump
	}
	return g.Auction.Trump()
}

// LegalBids returns the amounts a player may currently bid, pass (0)
// included when allowed. Empty when it is not their turn to bid
func (g *Game) LegalBids(playerID string) []int {
	if g.Done || g.Phase != PhaseBidding || g.Auction == nil {
		return nil
	}
	seat, ok := g.seat(playerID)
	if !ok || seat.Position != g.Auction.Turn {
		return nil
	}

	bids := []int{}
	if !g.Auction.ForcedBid {
		bids = append(bids, 0)
	}
	for amount := g.Auction.MinimumBid(); amount <= MaxBid; amount++ {
		bids = append(bids, amount)
	}
	return bids
}

// LegalPlays returns the tiles a player may currently play. Empty when
// it is not their turn
func (g *Game) LegalPlays(playerID string) []dominoes.Domino {
	if g.Done || g.Phase != PhasePlaying {
		return nil
	}
	seat, ok := g.seat(playerID)
	if !ok || seat.Position != g.Turn {
		return nil
	}
	return legalPlays(g.Hands[playerID], g.CurrentTrick, g.Auction.Trump())
}

// PartnershipScores returns a copy of both partnerships' standing
func (g *Game) PartnershipScores() [2]PartnershipState {
	return [2]PartnershipState{*g.Partnerships[NorthSouth], *g.Partnerships[EastWest]}
}

func removeDomino(hand []dominoes.Domino, d dominoes.Domino) []dominoes.Domino {
	remaining := make([]dominoes.Domino, 0, len(hand))
	for _, h := range hand {
		if h != d {
			remaining = append(remaining, h)
		}
	}
	return remaining
}
