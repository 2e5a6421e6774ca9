package fortytwo

import (
	"testing"
	"time"

	utils "github.com/moonollie/fortytwo/internal"
	"github.com/moonollie/fortytwo/protocol"
)

func somePlayers() (Players, []*TestPlayer) {
	tps := []*TestPlayer{
		NewTestPlayer("p1", "Ada"),
		NewTestPlayer("p2", "Katherine"),
		NewTestPlayer("p3", "Grace"),
		NewTestPlayer("p4", "Hedy"),
	}

	ps := Players{}
	for _, tp := range tps {
		ps = AddPlayer(ps, tp)
	}
	return ps, tps
}

func startedEngine(t *testing.T) (*gameEngine, []*TestPlayer) {
	t.Helper()

	ps, tps := somePlayers()
	ge, err := NewGameEngine(GameEngineOpts{GameID: "game-id", CreatorID: "p1", Players: ps})
	utils.AssertNoError(t, err)

	ge.handleMessage(protocol.InboundMessage{PlayerID: "p1", Command: protocol.Start})
	utils.AssertEqual(t, ge.PlayState(), InProgress)
	return ge, tps
}

func TestNewGameEngine(t *testing.T) {
	t.Run("requires a game ID", func(t *testing.T) {
		_, err := NewGameEngine(GameEngineOpts{})
		utils.AssertErrored(t, err)
	})

	t.Run("defaults the house rules", func(t *testing.T) {
		ge, err := NewGameEngine(GameEngineOpts{GameID: "game-id"})
		utils.AssertNoError(t, err)
		utils.AssertEqual(t, ge.config.MarksToWin, 7)
		utils.AssertEqual(t, ge.PlayState(), Idle)
	})
}

func TestGameEngineAddPlayer(t *testing.T) {
	ge, err := NewGameEngine(GameEngineOpts{GameID: "game-id", CreatorID: "p1"})
	utils.AssertNoError(t, err)

	go ge.Listen()

	joiner := NewTestPlayer("p1", "Ada")
	utils.AssertNoError(t, ge.AddPlayer(joiner))

	utils.Within(t, 500*time.Millisecond, func() {
		for {
			if msg, ok := joiner.LastMessage(); ok {
				utils.AssertEqual(t, msg.Command, protocol.NewJoiner)
				utils.AssertEqual(t, msg.Joiner.Name, "Ada")
				return
			}
			time.Sleep(5 * time.Millisecond)
		}
	})
}

func TestGameEngineStart(t *testing.T) {
	t.Run("only the creator may start the game", func(t *testing.T) {
		ps, tps := somePlayers()
		ge, _ := NewGameEngine(GameEngineOpts{GameID: "game-id", CreatorID: "p1", Players: ps})

		ge.handleMessage(protocol.InboundMessage{PlayerID: "p2", Command: protocol.Start})

		utils.AssertEqual(t, ge.PlayState(), Idle)
		msg, ok := tps[1].LastMessage()
		utils.AssertTrue(t, ok)
		utils.AssertEqual(t, msg.Command, protocol.Error)
	})

	t.Run("will not start short-handed", func(t *testing.T) {
		ps, tps := somePlayers()
		ge, _ := NewGameEngine(GameEngineOpts{GameID: "game-id", CreatorID: "p1", Players: ps[:2]})

		ge.handleMessage(protocol.InboundMessage{PlayerID: "p1", Command: protocol.Start})

		utils.AssertEqual(t, ge.PlayState(), Idle)
		msg, _ := tps[0].LastMessage()
		utils.AssertEqual(t, msg.Command, protocol.Error)
	})

	t.Run("deals and opens the auction", func(t *testing.T) {
		ge, tps := startedEngine(t)

		utils.AssertNotNil(t, ge.Game())
		utils.AssertEqual(t, ge.Game().Phase, PhaseBidding)

		for _, tp := range tps {
			msg, ok := tp.LastMessage()
			utils.AssertTrue(t, ok)
			utils.AssertEqual(t, msg.Command, protocol.HasStarted)
			utils.AssertEqual(t, msg.Phase, "Bidding")
			utils.AssertEqual(t, len(msg.Hand), HandSize)

			// join order seats p1 north; east, on the dealer's left, opens
			utils.AssertEqual(t, msg.CurrentTurn, "p2")
			utils.AssertEqual(t, msg.ShouldRespond, tp.ID() == "p2")

			for _, count := range msg.HandCounts {
				utils.AssertEqual(t, count, HandSize)
			}
		}
	})
}

func TestGameEngineBidding(t *testing.T) {
	ge, tps := startedEngine(t)

	t.Run("a rejected bid goes back to its sender only", func(t *testing.T) {
		before := len(tps[2].Messages())

		// p3 bids out of turn
		ge.handleMessage(protocol.InboundMessage{PlayerID: "p3", Command: protocol.Bid, Amount: 30, Trump: "Sixes"})

		msg, _ := tps[2].LastMessage()
		utils.AssertEqual(t, msg.Command, protocol.Error)
		utils.AssertEqual(t, msg.Error, "NotYourTurn")
		utils.AssertEqual(t, len(tps[2].Messages()), before+1)

		// game state untouched
		utils.AssertEqual(t, len(ge.Game().Auction.Bids), 0)
	})

	t.Run("a bid without a parseable trump is rejected", func(t *testing.T) {
		ge.handleMessage(protocol.InboundMessage{PlayerID: "p2", Command: protocol.Bid, Amount: 30, Trump: "Sevens"})

		msg, _ := tps[1].LastMessage()
		utils.AssertEqual(t, msg.Error, "MissingTrump")
	})

	t.Run("a live bid is broadcast to the table", func(t *testing.T) {
		ge.handleMessage(protocol.InboundMessage{PlayerID: "p2", Command: protocol.Bid, Amount: 30, Trump: "Sixes"})

		for _, tp := range tps {
			msg, _ := tp.LastMessage()
			utils.AssertEqual(t, msg.Command, protocol.Bid)
			utils.AssertEqual(t, msg.HighBid, 30)
			utils.AssertEqual(t, msg.HighBidder, "p2")
			utils.AssertEqual(t, msg.MinBid, 31)
		}
	})

	t.Run("three passes complete the auction", func(t *testing.T) {
		for _, id := range []string{"p3", "p4", "p1"} {
			ge.handleMessage(protocol.InboundMessage{PlayerID: id, Command: protocol.Pass})
		}

		utils.AssertEqual(t, ge.Game().Phase, PhasePlaying)

		for _, tp := range tps {
			msg, _ := tp.LastMessage()
			utils.AssertEqual(t, msg.Command, protocol.AuctionWon)
			utils.AssertEqual(t, msg.Phase, "Playing")
			utils.AssertEqual(t, msg.Trump, "Sixes")
			utils.AssertEqual(t, msg.CurrentTurn, "p2")
		}
	})
}

func TestGameEnginePlay(t *testing.T) {
	ge, tps := startedEngine(t)

	// p2 takes the contract at 30 sixes
	ge.handleMessage(protocol.InboundMessage{PlayerID: "p2", Command: protocol.Bid, Amount: 30, Trump: "Sixes"})
	for _, id := range []string{"p3", "p4", "p1"} {
		ge.handleMessage(protocol.InboundMessage{PlayerID: id, Command: protocol.Pass})
	}

	game := ge.Game()

	t.Run("plays are validated and broadcast", func(t *testing.T) {
		turnPlayer := "p2"
		legal := game.LegalPlays(turnPlayer)

		ge.handleMessage(protocol.InboundMessage{PlayerID: turnPlayer, Command: protocol.Play, Domino: legal[0].ID()})

		for _, tp := range tps {
			msg, _ := tp.LastMessage()
			utils.AssertEqual(t, msg.Command, protocol.Play)
			utils.AssertEqual(t, len(msg.Trick), 1)
			utils.AssertEqual(t, msg.Trick[0].Domino, legal[0].ID())
		}
	})

	t.Run("the hand plays out to a scored end", func(t *testing.T) {
		for game.Phase == PhasePlaying {
			turnSeat := game.Turn
			var turnPlayer string
			for _, seat := range game.Seats {
				if seat.Position == turnSeat {
					turnPlayer = seat.PlayerID
				}
			}

			legal := game.LegalPlays(turnPlayer)
			ge.handleMessage(protocol.InboundMessage{PlayerID: turnPlayer, Command: protocol.Play, Domino: legal[0].ID()})
		}

		utils.AssertEqual(t, game.Phase, PhaseScoring)

		for _, tp := range tps {
			msg, _ := tp.LastMessage()
			utils.AssertEqual(t, msg.Command, protocol.HandScored)
			utils.AssertEqual(t, msg.Phase, "Scoring")
			utils.AssertEqual(t, len(msg.Scores), 2)

			total := msg.Scores[0].HandScore + msg.Scores[1].HandScore
			utils.AssertEqual(t, total, HandPoints)
		}
	})

	t.Run("the next hand is dealt on request", func(t *testing.T) {
		ge.handleMessage(protocol.InboundMessage{PlayerID: "p1", Command: protocol.NewHand})

		utils.AssertEqual(t, game.Phase, PhaseBidding)
		for _, tp := range tps {
			msg, _ := tp.LastMessage()
			utils.AssertEqual(t, msg.Command, protocol.Deal)
			utils.AssertEqual(t, len(msg.Hand), HandSize)
		}
	})
}

func TestGameEngineGameOver(t *testing.T) {
	ps, tps := somePlayers()
	ge, err := NewGameEngine(GameEngineOpts{
		GameID:    "game-id",
		CreatorID: "p1",
		Players:   ps,
		Config:    GameConfig{MarksToWin: 1},
	})
	utils.AssertNoError(t, err)

	ge.handleMessage(protocol.InboundMessage{PlayerID: "p1", Command: protocol.Start})
	ge.handleMessage(protocol.InboundMessage{PlayerID: "p2", Command: protocol.Bid, Amount: 30, Trump: "Sixes"})
	for _, id := range []string{"p3", "p4", "p1"} {
		ge.handleMessage(protocol.InboundMessage{PlayerID: id, Command: protocol.Pass})
	}

	game := ge.Game()
	for game.Phase == PhasePlaying {
		var turnPlayer string
		for _, seat := range game.Seats {
			if seat.Position == game.Turn {
				turnPlayer = seat.PlayerID
			}
		}
		legal := game.LegalPlays(turnPlayer)
		ge.handleMessage(protocol.InboundMessage{PlayerID: turnPlayer, Command: protocol.Play, Domino: legal[0].ID()})
	}

	utils.AssertTrue(t, game.Done)
	utils.AssertEqual(t, ge.PlayState(), Finished)

	for _, tp := range tps {
		msg, _ := tp.LastMessage()
		utils.AssertEqual(t, msg.Command, protocol.GameOver)
		utils.AssertEqual(t, msg.Phase, "Finished")
		utils.AssertNotEmptyString(t, msg.GameWinner)
	}
}
