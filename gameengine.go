package fortytwo

import (
	"errors"
	"fmt"
	"log"

	"github.com/moonollie/fortytwo/dominoes"
	"github.com/moonollie/fortytwo/protocol"
)

// PlayState represents the lifecycle of an engine
// Idle -> no game play (pre game)
// InProgress -> game in progress
// Finished -> game over
type PlayState int

const (
	Idle PlayState = iota
	InProgress
	Finished
)

var playStateNames = []string{"idle", "inProgress", "finished"}

func (ps PlayState) String() string {
	return playStateNames[ps]
}

var (
	ErrGameAlreadyStarted = errors.New("game has already started")
	ErrTableFull          = errors.New("game already has 4 players")
)

// GameEngine owns the authoritative Game state for one table. Commands
// from every seat funnel through a single channel and are applied one
// at a time: ordering, not locking, is what keeps the state consistent
type GameEngine interface {
	ID() string
	CreatorID() string
	Players() Players
	PlayState() PlayState
	Game() *Game
	AddPlayer(Player) error
	Receive(msg protocol.InboundMessage)
	Listen()
}

// GameEngineOpts is the configuration for constructing a gameEngine
type GameEngineOpts struct {
	GameID     string
	CreatorID  string
	Players    Players
	Config     GameConfig
	RegisterCh chan Player
	InboundCh  chan protocol.InboundMessage
}

type gameEngine struct {
	id         string
	creatorID  string
	playState  PlayState
	players    Players
	config     GameConfig
	registerCh chan Player
	inboundCh  chan protocol.InboundMessage
	game       *Game
}

// NewGameEngine constructs a new GameEngine
func NewGameEngine(opts GameEngineOpts) (*gameEngine, error) {
	if opts.GameID == "" {
		return nil, errors.New("missing game ID")
	}
	if opts.RegisterCh == nil {
		opts.RegisterCh = make(chan Player)
	}
	if opts.InboundCh == nil {
		opts.InboundCh = make(chan protocol.InboundMessage)
	}
	if opts.Config.MarksToWin == 0 {
		opts.Config = DefaultConfig()
	}

	return &gameEngine{
		id:         opts.GameID,
		creatorID:  opts.CreatorID,
		players:    opts.Players,
		config:     opts.Config,
		registerCh: opts.RegisterCh,
		inboundCh:  opts.InboundCh,
	}, nil
}

func (ge *gameEngine) ID() string {
	return ge.id
}

func (ge *gameEngine) CreatorID() string {
	return ge.creatorID
}

func (ge *gameEngine) Players() Players {
	return ge.players
}

func (ge *gameEngine) PlayState() PlayState {
	return ge.playState
}

func (ge *gameEngine) Game() *Game {
	return ge.game
}

// AddPlayer adds a player to a game
func (ge *gameEngine) AddPlayer(p Player) error {
	if ge.playState != Idle {
		return ErrGameAlreadyStarted
	}
	if len(ge.players) == NumSeats {
		return ErrTableFull
	}
	ge.registerCh <- p
	return nil
}

// Receive queues a command for the engine loop
func (ge *gameEngine) Receive(msg protocol.InboundMessage) {
	ge.inboundCh <- msg
}

// Listen runs the engine loop. It is the single writer of the Game:
// registrations and commands are applied strictly in arrival order
func (ge *gameEngine) Listen() {
	for {
		select {
		case joiner := <-ge.registerCh:
			ge.players = AddPlayer(ge.players, joiner)
			for _, p := range ge.players {
				p.Send(protocol.OutboundMessage{
					PlayerID: p.ID(),
					Command:  protocol.NewJoiner,
					Message:  fmt.Sprintf("%s has joined the game!", joiner.Name()),
					Joiner:   protocol.PlayerInfo{PlayerID: joiner.ID(), Name: joiner.Name()},
				})
			}

		case msg := <-ge.inboundCh:
			ge.handleMessage(msg)
		}
	}
}

func (ge *gameEngine) handleMessage(msg protocol.InboundMessage) {
	var err error
	var cmd protocol.Cmd

	switch msg.Command {
	case protocol.Start:
		cmd, err = ge.handleStart(msg)

	case protocol.NewHand:
		cmd, err = ge.handleNewHand(msg)

	case protocol.Bid, protocol.Pass:
		cmd, err = ge.handleBid(msg)

	case protocol.Play:
		cmd, err = ge.handlePlay(msg)

	default:
		err = fmt.Errorf("could not match command %s", msg.Command)
	}

	if err != nil {
		ge.sendError(msg.PlayerID, err)
		return
	}

	ge.broadcast(cmd)
}

func (ge *gameEngine) handleStart(msg protocol.InboundMessage) (protocol.Cmd, error) {
	if msg.PlayerID != ge.creatorID {
		return protocol.Null, ErrNotYourTurn
	}
	if ge.playState != Idle {
		return protocol.Null, ErrGameAlreadyStarted
	}
	if len(ge.players) != NumSeats {
		return protocol.Null, ErrWrongNumPlayers
	}

	// seats are assigned in join order
	seats := []Seat{}
	for i, p := range ge.players {
		seats = append(seats, Seat{PlayerID: p.ID(), Name: p.Name(), Position: Position(i)})
	}

	game, err := NewGame(GameOpts{Seats: seats, Dealer: North, Config: ge.config})
	if err != nil {
		return protocol.Null, err
	}
	if err := game.StartHand(); err != nil {
		return protocol.Null, err
	}

	ge.game = game
	ge.playState = InProgress
	return protocol.HasStarted, nil
}

func (ge *gameEngine) handleNewHand(msg protocol.InboundMessage) (protocol.Cmd, error) {
	if ge.game == nil {
		return protocol.Null, ErrNilGame
	}
	if err := ge.game.StartHand(); err != nil {
		return protocol.Null, err
	}
	return protocol.Deal, nil
}

func (ge *gameEngine) handleBid(msg protocol.InboundMessage) (protocol.Cmd, error) {
	if ge.game == nil {
		return protocol.Null, ErrNilGame
	}

	if msg.Command == protocol.Pass {
		if err := ge.game.Pass(msg.PlayerID); err != nil {
			return protocol.Null, err
		}
	} else {
		trump, err := dominoes.ParseSuit(msg.Trump)
		if err != nil {
			return protocol.Null, ErrMissingTrump
		}
		if err := ge.game.PlaceBid(msg.PlayerID, msg.Amount, trump); err != nil {
			return protocol.Null, err
		}
	}

	switch {
	case ge.game.Phase == PhasePlaying:
		return protocol.AuctionWon, nil
	case len(ge.game.Auction.Bids) == 0:
		// the auction passed out and a fresh hand was dealt
		return protocol.Redeal, nil
	}
	return protocol.Bid, nil
}

func (ge *gameEngine) handlePlay(msg protocol.InboundMessage) (protocol.Cmd, error) {
	if ge.game == nil {
		return protocol.Null, ErrNilGame
	}

	tricksBefore := len(ge.game.Tricks)
	if err := ge.game.PlayDomino(msg.PlayerID, msg.Domino); err != nil {
		return protocol.Null, err
	}

	switch {
	case ge.game.Done:
		ge.playState = Finished
		return protocol.GameOver, nil
	case ge.game.Phase == PhaseScoring:
		return protocol.HandScored, nil
	case len(ge.game.Tricks) > tricksBefore:
		return protocol.TrickWon, nil
	}
	return protocol.Play, nil
}

func (ge *gameEngine) sendError(playerID string, err error) {
	p, ok := ge.players.Find(playerID)
	if !ok {
		log.Printf("game %s: dropping error for unknown player %s: %v", ge.id, playerID, err)
		return
	}

	msg := protocol.OutboundMessage{
		PlayerID: playerID,
		Command:  protocol.Error,
		Message:  err.Error(),
	}
	var ruleErr *RuleError
	if errors.As(err, &ruleErr) {
		msg.Error = ruleErr.Code
	}
	p.Send(msg)
}

// broadcast sends every player their own view of the game
func (ge *gameEngine) broadcast(cmd protocol.Cmd) {
	for _, p := range ge.players {
		p.Send(ge.buildSnapshot(cmd, p))
	}
}

// buildSnapshot builds one player's redacted view: their own hand, tile
// counts for everyone else, and the shared table state
func (ge *gameEngine) buildSnapshot(cmd protocol.Cmd, recipient Player) protocol.OutboundMessage {
	g := ge.game
	msg := protocol.OutboundMessage{
		PlayerID: recipient.ID(),
		Command:  cmd,
	}
	if g == nil {
		return msg
	}

	msg.Phase = g.Phase.String()
	msg.Dealer = ge.playerAt(g.Dealer)
	msg.HandCounts = map[string]int{}
	for _, seat := range g.Seats {
		msg.HandCounts[seat.PlayerID] = len(g.Hands[seat.PlayerID])
	}
	for _, d := range g.Hands[recipient.ID()] {
		msg.Hand = append(msg.Hand, d.ID())
	}

	if trump := g.Trump(); trump != dominoes.NoTrump {
		msg.Trump = trump.String()
	}

	switch g.Phase {
	case PhaseBidding:
		msg.CurrentTurn = ge.playerAt(g.Auction.Turn)
		msg.MinBid = g.Auction.MinimumBid()
		if g.Auction.HighBid != nil {
			msg.HighBid = g.Auction.HighBid.Amount
			msg.HighBidder = g.Auction.HighBid.PlayerID
		}
		msg.LegalBids = g.LegalBids(recipient.ID())

	case PhasePlaying:
		msg.CurrentTurn = ge.playerAt(g.Turn)
		for _, d := range g.LegalPlays(recipient.ID()) {
			msg.LegalPlays = append(msg.LegalPlays, d.ID())
		}
	}

	if trick := ge.visibleTrick(cmd); trick != nil {
		msg.Trick = trickTiles(trick)
		msg.LeadSuit = trick.LeadSuit.String()
		if trick.Complete {
			msg.TrickWinner = ge.playerAt(trick.Winner)
		}
	}

	scores := g.PartnershipScores()
	for side := NorthSouth; side <= EastWest; side++ {
		msg.Scores = append(msg.Scores, protocol.PartnershipScore{
			Partnership: side.String(),
			HandScore:   scores[side].HandScore,
			Total:       scores[side].Total,
			Marks:       scores[side].Marks,
			TricksWon:   scores[side].TricksWon,
			Bidding:     scores[side].Bidding,
		})
	}

	if g.LastResult != nil && (cmd == protocol.HandScored || cmd == protocol.GameOver) {
		msg.BidMade = g.LastResult.BidMade
	}
	if g.Done {
		msg.GameWinner = g.Winner.String()
	}

	msg.ShouldRespond = msg.CurrentTurn == recipient.ID()
	return msg
}

// visibleTrick picks the trick a message should show: the one just
// sealed for TrickWon and end-of-hand messages, otherwise the live one
func (ge *gameEngine) visibleTrick(cmd protocol.Cmd) *Trick {
	g := ge.game
	switch cmd {
	case protocol.TrickWon, protocol.HandScored, protocol.GameOver:
		if len(g.Tricks) > 0 {
			return g.Tricks[len(g.Tricks)-1]
		}
	}
	return g.CurrentTrick
}

func (ge *gameEngine) playerAt(pos Position) string {
	for _, seat := range ge.game.Seats {
		if seat.Position == pos {
			return seat.PlayerID
		}
	}
	return ""
}

func trickTiles(t *Trick) []protocol.PlayedTile {
	tiles := []protocol.PlayedTile{}
	for _, play := range t.Plays {
		tiles = append(tiles, protocol.PlayedTile{
			Domino:   play.Domino.ID(),
			PlayerID: play.PlayerID,
			Position: play.Position.String(),
		})
	}
	return tiles
}
