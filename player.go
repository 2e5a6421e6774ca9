package fortytwo

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	uuid "github.com/satori/go.uuid"

	"github.com/moonollie/fortytwo/protocol"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer.
	maxMessageSize = 512
)

// NewID constructs a player ID
func NewID() string {
	return uuid.NewV4().String()
}

// Player represents a player in the game
type Player interface {
	ID() string
	Name() string
	Send(msg protocol.OutboundMessage) error
}

// Players represents all players in the game
type Players []Player

// NewPlayers returns a collection of players
func NewPlayers(ps ...Player) Players {
	return Players(ps)
}

// AddPlayer adds a player to a collection of Players
func AddPlayer(ps Players, p Player) Players {
	if _, found := ps.Find(p.ID()); !found {
		return append(ps, p)
	}
	return ps
}

// Find finds a player by id
func (ps Players) Find(id string) (Player, bool) {
	for _, p := range ps {
		if p.ID() == id {
			return p, true
		}
	}
	return nil, false
}

// InboundReceiver accepts commands from a player's connection.
// Implemented by the game engine
type InboundReceiver interface {
	Receive(msg protocol.InboundMessage)
}

// WSPlayer represents a player connected over a websocket
type WSPlayer struct {
	id     string
	name   string
	conn   *websocket.Conn
	engine InboundReceiver
	send   chan []byte
}

// NewWSPlayer constructs a new websocket player and starts its pumps
func NewWSPlayer(id, name string, ws *websocket.Conn, engine InboundReceiver) *WSPlayer {
	player := &WSPlayer{
		id:     id,
		name:   name,
		conn:   ws,
		engine: engine,
		send:   make(chan []byte, 16),
	}
	go player.writePump()
	go player.readPump()
	return player
}

func (p *WSPlayer) ID() string {
	return p.id
}

func (p *WSPlayer) Name() string {
	return p.name
}

// Send serialises an outbound message onto the websocket
func (p *WSPlayer) Send(msg protocol.OutboundMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	p.send <- data
	return nil
}

// readPump decodes inbound messages and hands them to the engine.
// PlayerID is stamped here, not trusted from the wire
func (p *WSPlayer) readPump() {
	defer p.conn.Close()

	p.conn.SetReadLimit(maxMessageSize)
	p.conn.SetReadDeadline(time.Now().Add(pongWait))
	p.conn.SetPongHandler(func(string) error {
		p.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := p.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("player %s: %v", p.id, err)
			}
			return
		}

		var msg protocol.InboundMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			log.Printf("player %s sent junk: %v", p.id, err)
			continue
		}

		msg.PlayerID = p.id
		p.engine.Receive(msg)
	}
}

func (p *WSPlayer) writePump() {
	ticker := time.NewTicker(pingPeriod)

	defer func() {
		ticker.Stop()
		p.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-p.send:
			p.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				p.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := p.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}

		case <-ticker.C:
			p.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := p.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// TestPlayer records the messages it is sent. Only used in tests; the
// mutex is there because the engine loop sends from its own goroutine
type TestPlayer struct {
	mu       sync.Mutex
	id       string
	name     string
	messages []protocol.OutboundMessage
}

// NewTestPlayer constructs a TestPlayer
func NewTestPlayer(id, name string) *TestPlayer {
	return &TestPlayer{id: id, name: name}
}

func (p *TestPlayer) ID() string {
	return p.id
}

func (p *TestPlayer) Name() string {
	return p.name
}

func (p *TestPlayer) Send(msg protocol.OutboundMessage) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.messages = append(p.messages, msg)
	return nil
}

// Messages returns a copy of everything the player has been sent
func (p *TestPlayer) Messages() []protocol.OutboundMessage {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]protocol.OutboundMessage{}, p.messages...)
}

// LastMessage returns the most recent message, if any
func (p *TestPlayer) LastMessage() (protocol.OutboundMessage, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.messages) == 0 {
		return protocol.OutboundMessage{}, false
	}
	return p.messages[len(p.messages)-1], true
}
