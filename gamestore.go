package fortytwo

import (
	"fmt"
	"sync"

	"github.com/moonollie/fortytwo/protocol"
)

var errFnUnknownInactiveGameID = func(gameID string) error {
	return fmt.Errorf("pending game with id %q does not exist", gameID)
}

// GameStore holds all the games a server knows about
type GameStore interface {
	FindGame(gameID string) GameEngine
	FindActiveGame(gameID string) GameEngine
	FindInactiveGame(gameID string) GameEngine
	FindPendingPlayer(gameID, playerID string) *protocol.PlayerInfo
	AddInactiveGame(engine GameEngine) error
	AddPendingPlayer(gameID, playerID, name string) error
	AddPlayerToGame(gameID string, player Player) error
}

// InMemoryGameStore maps game id to game engine
type InMemoryGameStore struct {
	mu             sync.Mutex
	Games          map[string]GameEngine
	PendingPlayers map[string][]protocol.PlayerInfo
}

// NewInMemoryGameStore constructs an InMemoryGameStore
func NewInMemoryGameStore() *InMemoryGameStore {
	return &InMemoryGameStore{
		Games:          map[string]GameEngine{},
		PendingPlayers: map[string][]protocol.PlayerInfo{},
	}
}

func (s *InMemoryGameStore) FindGame(gameID string) GameEngine {
	s.mu.Lock()
	defer s.mu.Unlock()

	game, ok := s.Games[gameID]
	if !ok {
		return nil
	}
	return game
}

// FindActiveGame returns a game that has started play
func (s *InMemoryGameStore) FindActiveGame(gameID string) GameEngine {
	game := s.FindGame(gameID)
	if game == nil || game.PlayState() == Idle {
		return nil
	}
	return game
}

// FindInactiveGame returns a game still waiting for players
func (s *InMemoryGameStore) FindInactiveGame(gameID string) GameEngine {
	game := s.FindGame(gameID)
	if game == nil || game.PlayState() != Idle {
		return nil
	}
	return game
}

func (s *InMemoryGameStore) FindPendingPlayer(gameID, playerID string) *protocol.PlayerInfo {
	s.mu.Lock()
	defer s.mu.Unlock()

	pendingPlayers, ok := s.PendingPlayers[gameID]
	if !ok {
		return nil
	}

	for i, info := range pendingPlayers {
		if info.PlayerID == playerID {
			return &pendingPlayers[i]
		}
	}
	return nil
}

func (s *InMemoryGameStore) AddInactiveGame(game GameEngine) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.Games[game.ID()]; exists {
		return fmt.Errorf("game with id %s already exists", game.ID())
	}

	s.Games[game.ID()] = game
	return nil
}

// AddPendingPlayer adds the information from which to construct a Player
// in the future. If the target game does not exist, it will fail
func (s *InMemoryGameStore) AddPendingPlayer(gameID, playerID, name string) error {
	game := s.FindInactiveGame(gameID)
	if game == nil {
		return errFnUnknownInactiveGameID(gameID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.PendingPlayers[gameID]) == NumSeats {
		return ErrTableFull
	}

	s.PendingPlayers[gameID] = append(s.PendingPlayers[gameID], protocol.PlayerInfo{PlayerID: playerID, Name: name})
	return nil
}

func (s *InMemoryGameStore) AddPlayerToGame(gameID string, player Player) error {
	game := s.FindInactiveGame(gameID)
	if game == nil {
		return errFnUnknownInactiveGameID(gameID)
	}

	return game.AddPlayer(player)
}
