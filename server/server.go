package server

import (
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/websocket"

	fortytwo "github.com/moonollie/fortytwo"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type NewGameReq struct {
	Name string `json:"name"`
}

type PendingGameRes struct {
	GameID   string   `json:"game_id"`
	PlayerID string   `json:"player_id"`
	Name     string   `json:"name"`
	Admin    bool     `json:"is_admin"`
	Players  []string `json:"players"`
}

type JoinGameReq struct {
	GameID string `json:"game_id"`
	Name   string `json:"name"`
}

type GetGameRes struct {
	Status  string   `json:"status"`
	GameID  string   `json:"game_id"`
	Players []string `json:"players"`
}

// GameServer is a game server
type GameServer struct {
	store  fortytwo.GameStore
	config Config
	http.Server
}

// NewGameID constructs a six-letter game code
func NewGameID() string {
	letters := []byte("ABCDEFGHIJKLMNOPQRSTUVWXYZ")
	rand.Seed(time.Now().UnixNano())

	code := []byte{}
	for i := 0; i < 6; i++ {
		code = append(code, letters[rand.Intn(len(letters))])
	}

	return string(code)
}

func unknownGameIDMsg(unknownID string) string {
	return fmt.Sprintf("unknown game ID '%s'", unknownID)
}

func enableCors(handler http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		handler.ServeHTTP(w, r)
	}
}

func writeParseError(err error, w http.ResponseWriter, r *http.Request) {
	log.Printf("could not parse request body: %v", err)
	w.WriteHeader(http.StatusBadRequest)
	w.Write([]byte("could not parse request body"))
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(data)
}

// NewServer creates a new GameServer
func NewServer(store fortytwo.GameStore, config Config) *GameServer {
	s := new(GameServer)

	router := http.NewServeMux()
	router.Handle("/new", enableCors(s.HandleNewGame))
	router.Handle("/game/", http.HandlerFunc(s.HandleFindGame))
	router.Handle("/join", enableCors(s.HandleJoinGame))
	router.Handle("/ws", http.HandlerFunc(s.HandleWS))

	s.store = store
	s.config = config
	s.Addr = config.Addr()
	s.Handler = handlers.LoggingHandler(os.Stdout, router)

	return s
}

// ServeHTTP serves http
func (g *GameServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	g.Handler.ServeHTTP(w, r)
}

// HandleNewGame handles a request to create a new game
func (g *GameServer) HandleNewGame(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	var data NewGameReq
	err := json.NewDecoder(r.Body).Decode(&data)
	defer r.Body.Close()
	if err != nil {
		writeParseError(err, w, r)
		return
	}
	if data.Name == "" {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("missing player name"))
		return
	}

	gameID := NewGameID()
	playerID := fortytwo.NewID()

	game, err := fortytwo.NewGameEngine(fortytwo.GameEngineOpts{
		GameID:    gameID,
		CreatorID: playerID,
		Config:    g.config.GameConfig(),
	})
	if err != nil {
		log.Println(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	// single writer for this game's state
	go game.Listen()

	if err := g.store.AddInactiveGame(game); err != nil {
		log.Println(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := g.store.AddPendingPlayer(gameID, playerID, data.Name); err != nil {
		log.Println(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, PendingGameRes{
		GameID:   gameID,
		PlayerID: playerID,
		Name:     data.Name,
		Admin:    true,
	})
}

// HandleFindGame handles a request to look up an existing game
func (g *GameServer) HandleFindGame(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	gameID := strings.Replace(r.URL.Path, "/game/", "", 1)
	if gameID == "" {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("missing game ID"))
		return
	}

	game := g.store.FindGame(gameID)
	if game == nil {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(unknownGameIDMsg(gameID)))
		return
	}

	playerNames := []string{}
	for _, p := range game.Players() {
		playerNames = append(playerNames, p.Name())
	}

	writeJSON(w, http.StatusOK, GetGameRes{
		Status:  game.PlayState().String(),
		GameID:  gameID,
		Players: playerNames,
	})
}

// HandleJoinGame handles a request to join an existing game
func (g *GameServer) HandleJoinGame(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	var data JoinGameReq
	err := json.NewDecoder(r.Body).Decode(&data)
	defer r.Body.Close()
	if err != nil {
		writeParseError(err, w, r)
		return
	}

	if data.GameID == "" {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("missing game ID"))
		return
	}
	if data.Name == "" {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("missing player name"))
		return
	}

	game := g.store.FindInactiveGame(data.GameID)
	if game == nil {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(unknownGameIDMsg(data.GameID)))
		return
	}

	playerID := fortytwo.NewID()
	if err := g.store.AddPendingPlayer(data.GameID, playerID, data.Name); err != nil {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(err.Error()))
		return
	}

	playerNames := []string{}
	for _, p := range game.Players() {
		playerNames = append(playerNames, p.Name())
	}

	writeJSON(w, http.StatusOK, PendingGameRes{
		PlayerID: playerID,
		GameID:   data.GameID,
		Name:     data.Name,
		Players:  playerNames,
	})
}

// HandleWS upgrades a pending player's connection and seats them at
// their game
func (g *GameServer) HandleWS(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	gameID := query.Get("game_id")
	playerID := query.Get("player_id")

	if gameID == "" || playerID == "" {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("missing game or player ID"))
		return
	}

	game := g.store.FindGame(gameID)
	if game == nil {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(unknownGameIDMsg(gameID)))
		return
	}

	info := g.store.FindPendingPlayer(gameID, playerID)
	if info == nil {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte("unknown player ID"))
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println(err.Error())
		return
	}

	player := fortytwo.NewWSPlayer(playerID, info.Name, conn, game)
	if err := game.AddPlayer(player); err != nil {
		log.Printf("could not seat player %s at game %s: %v", playerID, gameID, err)
		conn.Close()
	}
}
