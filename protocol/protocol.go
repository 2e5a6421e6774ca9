package protocol

// PlayerInfo identifies a player before a Player exists for them
type PlayerInfo struct {
	PlayerID string `json:"playerID"`
	Name     string `json:"name"`
}

// Cmd represents a command
type Cmd int

const (
	Null Cmd = iota
	NewJoiner
	Start
	HasStarted
	Error
	Deal
	Bid
	Pass
	AuctionWon
	Redeal
	Play
	TrickWon
	HandScored
	NewHand
	GameOver
)

var CmdNames = map[Cmd]string{
	Null:       "Null",
	NewJoiner:  "NewJoiner",
	Start:      "Start",
	HasStarted: "HasStarted",
	Error:      "Error",
	Deal:       "Deal",
	Bid:        "Bid",
	Pass:       "Pass",
	AuctionWon: "AuctionWon",
	Redeal:     "Redeal",
	Play:       "Play",
	TrickWon:   "TrickWon",
	HandScored: "HandScored",
	NewHand:    "NewHand",
	GameOver:   "GameOver",
}

var NameToCmd = map[string]Cmd{}

func init() {
	for cmd, name := range CmdNames {
		NameToCmd[name] = cmd
	}
}

func (c Cmd) String() string {
	return CmdNames[c]
}
