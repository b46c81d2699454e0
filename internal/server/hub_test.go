package server

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"courtpiece-game/internal/game"
	"courtpiece-game/internal/protocol"
	"courtpiece-game/internal/shared"
	"courtpiece-game/internal/store"
)

// drainUpdate waits for one game_update frame on the client's send channel.
func drainUpdate(t *testing.T, send chan []byte) {
	t.Helper()
	select {
	case raw := <-send:
		var msg protocol.Message
		if err := json.Unmarshal(raw, &msg); err != nil {
			t.Fatalf("unmarshal broadcast frame: %v", err)
		}
		if msg.Type != "game_update" {
			t.Fatalf("expected game_update frame, got %q", msg.Type)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("no broadcast frame received")
	}
}

// A state push arriving from the HTTP boundary while the hub is tearing a
// connection down must never reach the closed channel of the dropped client.
func TestBroadcastAfterClientDropDoesNotPanic(t *testing.T) {
	st := store.New()
	g := st.CreateGame(game.SingleSar)
	p1, err := g.Join("user-1", "amina")
	if err != nil {
		t.Fatalf("join: %v", err)
	}
	p2, err := g.Join("user-2", "bilal")
	if err != nil {
		t.Fatalf("join: %v", err)
	}

	h := NewHub(st, nil)
	dropped := &Client{hub: h, send: make(chan []byte, 1), ID: "conn-1", GameID: g.ID, PlayerID: p1.ID}
	alive := &Client{hub: h, send: make(chan []byte, 8), ID: "conn-2", GameID: g.ID, PlayerID: p2.ID}
	h.clients[dropped] = true
	h.clients[alive] = true
	h.connections[g.ID] = []*Client{dropped, alive}

	go h.Run()

	h.unregister <- dropped
	h.BroadcastGame(g.ID)

	// The disconnect itself fans out once, the pushed update once more.
	drainUpdate(t, alive.send)
	drainUpdate(t, alive.send)

	h.connMu.RLock()
	remaining := len(h.connections[g.ID])
	h.connMu.RUnlock()
	if remaining != 1 {
		t.Fatalf("expected 1 remaining connection, got %d", remaining)
	}
}

// Four players joining over HTTP at once must each get a stable snapshot:
// distinct seats and a hand that is either empty or fully dealt, never a
// hand observed mid-deal.
func TestConcurrentJoinsProduceConsistentResponses(t *testing.T) {
	st := store.New()
	g := st.CreateGame(game.SingleSar)
	h := NewHub(st, nil)
	go h.Run()

	names := []string{"amina", "bilal", "chandra", "dawar"}
	recs := make([]*httptest.ResponseRecorder, len(names))

	var wg sync.WaitGroup
	for i, name := range names {
		wg.Add(1)
		go func(i int, name string) {
			defer wg.Done()
			req := httptest.NewRequest("POST", "/api/games/"+g.ID+"/join", strings.NewReader(`{"username":"`+name+`"}`))
			req.SetPathValue("gameId", g.ID)
			recs[i] = httptest.NewRecorder()
			JoinGameHandler(st, h, recs[i], req)
		}(i, name)
	}
	wg.Wait()

	seats := map[int]bool{}
	for i, rec := range recs {
		if rec.Code != 200 {
			t.Fatalf("join %s: status %d: %s", names[i], rec.Code, rec.Body.String())
		}
		var resp joinGameResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("join %s: decode response: %v", names[i], err)
		}
		if resp.Player == nil {
			t.Fatalf("join %s: response without player", names[i])
		}
		if seats[resp.Player.PlayerNumber] {
			t.Fatalf("seat %d assigned twice", resp.Player.PlayerNumber)
		}
		seats[resp.Player.PlayerNumber] = true
		if n := len(resp.Player.Hand); n != 0 && n != shared.InitialDealSize {
			t.Fatalf("join %s: hand of %d cards, want 0 or %d", names[i], n, shared.InitialDealSize)
		}
	}

	if g.Snapshot().Game.Status != game.StatusBidding {
		t.Fatalf("four seated players should start bidding")
	}
}
