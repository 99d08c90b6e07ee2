package server

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"

	"github.com/wthidden/galaxy-one/internal/game"
)

// Message is the inbound frame shape.
type Message struct {
	Type  string `json:"type"`
	Token string `json:"token,omitempty"`
	Text  string `json:"text,omitempty"`
}

// Outbound frame shapes. Every frame carries its type tag inline.
type welcomeMsg struct {
	Type  string `json:"type"`
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Token string `json:"token,omitempty"`
}

type updateMsg struct {
	Type  string          `json:"type"`
	State *game.ViewState `json:"state"`
}

type deltaMsg struct {
	Type    string      `json:"type"`
	Changes *game.Patch `json:"changes"`
}

type timerMsg struct {
	Type          string `json:"type"`
	TimeRemaining int    `json:"time_remaining"`
	PlayersReady  int    `json:"players_ready"`
	TotalPlayers  int    `json:"total_players"`
}

type textMsg struct {
	Type      string `json:"type"`
	Text      string `json:"text"`
	EventType string `json:"event_type,omitempty"`
}

type chatMsg struct {
	Type    string `json:"type"`
	From    string `json:"from"`
	Message string `json:"message"`
	Channel string `json:"channel"`
}

// client is one live websocket connection bound to a player.
type client struct {
	conn    *websocket.Conn
	writeMu sync.Mutex
	player  *game.Player
	limiter *rate.Limiter
}

func (c *client) send(v interface{}) {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	c.conn.WriteJSON(v)
}

func (c *client) sendInfo(text string) {
	c.send(textMsg{Type: "info", Text: text})
}

func (c *client) sendError(text string) {
	c.send(textMsg{Type: "error", Text: text})
}

func (c *client) sendEvent(text, eventType string) {
	c.send(textMsg{Type: "event", Text: text, EventType: eventType})
}

func (c *client) sendChat(from, message, channel string) {
	c.send(chatMsg{Type: "chat", From: from, Message: message, Channel: channel})
}

// sendFullUpdate pushes the complete view and resets the delta baseline.
// Caller holds the state lock.
func (gs *Server) sendFullUpdate(c *client) {
	view := game.BuildView(gs.state, c.player, time.Now())
	c.player.LastSnapshot = view
	c.send(updateMsg{Type: "update", State: view})
}

// sendDeltaUpdate pushes only what changed since the last view. The first
// view a player ever gets is always full. Caller holds the state lock.
func (gs *Server) sendDeltaUpdate(c *client) {
	if c.player.LastSnapshot == nil {
		gs.sendFullUpdate(c)
		return
	}
	view := game.BuildView(gs.state, c.player, time.Now())
	patch := game.Diff(c.player.LastSnapshot, view)
	c.player.LastSnapshot = view
	if patch.Empty() {
		return
	}
	c.send(deltaMsg{Type: "delta", Changes: patch})
}

func (gs *Server) sendTimer(c *client, now time.Time) {
	c.send(timerMsg{
		Type:          "timer",
		TimeRemaining: gs.state.TimeRemaining(now),
		PlayersReady:  gs.state.ReadyCount(),
		TotalPlayers:  len(gs.state.Players),
	})
}

// reporter fans order-execution events out to the connected players.
// Implements game.Reporter; calls arrive with the state lock held.
type reporter struct {
	gs *Server
}

func (r reporter) Event(p *game.Player, text, eventType string) {
	if c := r.gs.clients[p.ID]; c != nil {
		c.sendEvent(text, eventType)
	}
}
