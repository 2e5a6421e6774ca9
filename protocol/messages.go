package protocol

// InboundMessage is a message from a Player to the GameEngine.
// The transport layer has already authenticated PlayerID; the engine
// takes it at face value
type InboundMessage struct {
	PlayerID string `json:"playerID"`
	Command  Cmd    `json:"command"`
	Amount   int    `json:"amount,omitempty"` // bid amount, 0 for a pass
	Trump    string `json:"trump,omitempty"`  // suit name on a live bid
	Domino   string `json:"domino,omitempty"` // domino ID on a play
}

// PlayedTile is one tile of the trick as shown to players
type PlayedTile struct {
	Domino   string `json:"domino"`
	PlayerID string `json:"playerID"`
	Position string `json:"position"`
}

// PartnershipScore is one pair's standing as shown to players
type PartnershipScore struct {
	Partnership string `json:"partnership"`
	HandScore   int    `json:"handScore"`
	Total       int    `json:"total"`
	Marks       int    `json:"marks"`
	TricksWon   int    `json:"tricksWon"`
	Bidding     bool   `json:"bidding"`
}

// OutboundMessage is a message from the GameEngine to a Player. Each
// recipient sees their own hand only; opponents appear as tile counts
type OutboundMessage struct {
	PlayerID      string             `json:"playerID"`
	Command       Cmd                `json:"command"`
	Message       string             `json:"message,omitempty"`
	Phase         string             `json:"phase,omitempty"`
	Hand          []string           `json:"hand,omitempty"`
	HandCounts    map[string]int     `json:"handCounts,omitempty"`
	Dealer        string             `json:"dealer,omitempty"`
	CurrentTurn   string             `json:"currentTurn,omitempty"`
	HighBid       int                `json:"highBid,omitempty"`
	HighBidder    string             `json:"highBidder,omitempty"`
	MinBid        int                `json:"minBid,omitempty"`
	Trump         string             `json:"trump,omitempty"`
	Trick         []PlayedTile       `json:"trick,omitempty"`
	LeadSuit      string             `json:"leadSuit,omitempty"`
	TrickWinner   string             `json:"trickWinner,omitempty"`
	LegalBids     []int              `json:"legalBids,omitempty"`
	LegalPlays    []string           `json:"legalPlays,omitempty"`
	Scores        []PartnershipScore `json:"scores,omitempty"`
	BidMade       bool               `json:"bidMade,omitempty"`
	GameWinner    string             `json:"gameWinner,omitempty"`
	Joiner        PlayerInfo         `json:"joiner,omitempty"`
	ShouldRespond bool               `json:"shouldRespond"`
	Error         string             `json:"error,omitempty"` // stable rule code
}
