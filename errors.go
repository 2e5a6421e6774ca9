package fortytwo

import "errors"

// RuleError is a rejected command. The engine never treats a "no" answer
// as exceptional: the command is refused, state is untouched and the same
// seat may try again. Code is stable and is what the protocol layer
// forwards to clients
type RuleError struct {
	Code   string
	reason string
}

func (e *RuleError) Error() string {
	return e.reason
}

var (
	ErrNotYourTurn            = &RuleError{"NotYourTurn", "not this player's turn"}
	ErrBidTooLow              = &RuleError{"BidTooLow", "bid must beat the current high bid"}
	ErrBidOutOfRange          = &RuleError{"BidOutOfRange", "bids run from 30 to 42"}
	ErrMissingTrump           = &RuleError{"MissingTrump", "a live bid must name trump"}
	ErrPassWithTrump          = &RuleError{"PassWithTrump", "a pass cannot name trump"}
	ErrPassForbidden          = &RuleError{"PassForbidden", "the dealer must open after a passed-out auction"}
	ErrBiddingAlreadyComplete = &RuleError{"BiddingAlreadyComplete", "the auction is over"}
	ErrDominoNotInHand        = &RuleError{"DominoNotInHand", "player does not hold that domino"}
	ErrMustFollowSuit         = &RuleError{"MustFollowSuit", "a domino of the led suit must be played"}
	ErrWrongPhase             = &RuleError{"WrongPhase", "command is not valid in the current phase"}
	ErrGameAlreadyComplete    = &RuleError{"GameAlreadyComplete", "the game is over"}
	ErrUnknownPlayer          = &RuleError{"UnknownPlayer", "player is not seated at this game"}
)

// Engine and store failures. Unlike RuleErrors these are not tied to a
// seat's command
var (
	ErrNilGame         = errors.New("game is nil")
	ErrWrongNumPlayers = errors.New("exactly 4 players required")
	ErrDuplicateSeat   = errors.New("duplicate seat position")
)
