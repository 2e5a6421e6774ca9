package server

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"strings"
	"testing"

	fortytwo "github.com/moonollie/fortytwo"
	utils "github.com/moonollie/fortytwo/internal"
)

func newBasicServer() *GameServer {
	return NewServer(fortytwo.NewInMemoryGameStore(), Config{})
}

// newServerWithInactiveGame seats a creator at a fresh game and returns
// their credentials
func newServerWithInactiveGame(t *testing.T) (*GameServer, string, string) {
	t.Helper()

	gameID, playerID := "PENDIN", "creator-id"

	game, err := fortytwo.NewGameEngine(fortytwo.GameEngineOpts{GameID: gameID, CreatorID: playerID})
	utils.AssertNoError(t, err)
	go game.Listen()

	store := fortytwo.NewInMemoryGameStore()
	utils.AssertNoError(t, store.AddInactiveGame(game))
	utils.AssertNoError(t, store.AddPendingPlayer(gameID, playerID, "Elton"))

	return NewServer(store, Config{}), gameID, playerID
}

func mustMakeJson(t *testing.T, input interface{}) []byte {
	t.Helper()

	data, err := json.Marshal(input)
	utils.AssertNoError(t, err)

	return data
}

func newCreateGameRequest(data []byte) *http.Request {
	request, _ := http.NewRequest(http.MethodPost, "/new", bytes.NewBuffer(data))
	return request
}

func newGetGameRequest(gameID string) *http.Request {
	request, _ := http.NewRequest(http.MethodGet, "/game/"+gameID, nil)
	return request
}

func newJoinGameRequest(data []byte) *http.Request {
	if data == nil {
		data = []byte{}
	}
	request, _ := http.NewRequest(http.MethodPost, "/join", bytes.NewBuffer(data))
	return request
}

func makeWSUrl(serverURL, gameID, playerID string) string {
	return "ws" + strings.TrimPrefix(serverURL, "http") + "/ws?game_id=" + gameID + "&player_id=" + playerID
}

// ASSERTIONS

func assertStatus(t *testing.T, got, want int) {
	t.Helper()
	if got != want {
		t.Errorf("got status %d, want %d", got, want)
	}
}

func assertPendingGameResponse(t *testing.T, body *bytes.Buffer, name string) PendingGameRes {
	t.Helper()

	bodyBytes, err := ioutil.ReadAll(body)
	utils.AssertNoError(t, err)

	var got PendingGameRes
	if err := json.Unmarshal(bodyBytes, &got); err != nil {
		t.Fatalf("Could not unmarshal json: %s", err.Error())
	}

	if got.Name != name {
		t.Errorf("Got %s, want %s", got.Name, name)
	}
	if got.GameID == "" {
		t.Error("Expected a game id")
	}
	if got.PlayerID == "" {
		t.Error("Expected a player id")
	}
	return got
}
