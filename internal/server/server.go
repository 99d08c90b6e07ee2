// Package server is the websocket connection layer: it upgrades
// connections, authenticates sessions, feeds command text into the game
// core, and streams per-player state updates back out.
package server

import (
	"fmt"
	"log/slog"
	"math/rand"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"

	"github.com/wthidden/galaxy-one/internal/auth"
	"github.com/wthidden/galaxy-one/internal/config"
	"github.com/wthidden/galaxy-one/internal/game"
	"github.com/wthidden/galaxy-one/internal/store"
)

// Server owns one persistent game. The mutex serializes everything that
// touches state: order admission, view building, and turn processing.
type Server struct {
	mu       sync.Mutex
	state    *game.State
	store    *store.Store
	tokens   *auth.Service
	cfg      config.Config
	log      *slog.Logger
	clients  map[int]*client
	upgrader websocket.Upgrader
}

// New wires a server around an existing game state.
func New(state *game.State, st *store.Store, tokens *auth.Service, cfg config.Config, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{
		state:   state,
		store:   st,
		tokens:  tokens,
		cfg:     cfg,
		log:     log,
		clients: make(map[int]*client),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// HandleWS upgrades a connection and starts its read loop. The connection
// is anonymous until it sends a connect frame.
func (gs *Server) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := gs.upgrader.Upgrade(w, r, nil)
	if err != nil {
		gs.log.Warn("websocket upgrade failed", "err", err)
		return
	}
	c := &client{
		conn:    conn,
		limiter: rate.NewLimiter(rate.Limit(gs.cfg.CommandRate), gs.cfg.CommandBurst),
	}
	go gs.readLoop(c)
}

func (gs *Server) readLoop(c *client) {
	defer func() {
		c.conn.Close()
		gs.mu.Lock()
		if c.player != nil && gs.clients[c.player.ID] == c {
			delete(gs.clients, c.player.ID)
		}
		gs.mu.Unlock()
	}()

	for {
		var msg Message
		if err := c.conn.ReadJSON(&msg); err != nil {
			return
		}
		switch msg.Type {
		case "connect":
			gs.handleConnect(c, msg.Token)
		case "command":
			if c.player == nil {
				c.sendError("Not connected. Send a connect frame first.")
				continue
			}
			if !c.limiter.Allow() {
				c.sendError("Too many commands, slow down.")
				continue
			}
			gs.handleCommand(c, msg.Text)
		}
	}
}

// handleConnect binds the connection to a player: an existing one when the
// session token checks out, a fresh one otherwise.
func (gs *Server) handleConnect(c *client, token string) {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	var player *game.Player
	if token != "" {
		if claims, err := gs.tokens.ValidateToken(token); err == nil {
			player = gs.state.Players[claims.PlayerID]
		}
	}
	issued := ""
	if player == nil {
		player = gs.state.AddPlayer()
		signed, err := gs.tokens.IssueToken(player.ID)
		if err != nil {
			gs.log.Error("issue token", "err", err)
		} else {
			issued = signed
		}
	}

	// Latest connection wins; an older one for the same player goes dark.
	if old := gs.clients[player.ID]; old != nil && old != c {
		old.conn.Close()
	}
	c.player = player
	gs.clients[player.ID] = c

	c.send(welcomeMsg{Type: "welcome", ID: player.ID, Name: player.Name, Token: issued})
	if player.Joined() {
		gs.sendFullUpdate(c)
	}
}

// handleCommand routes one line of command text: word commands first, then
// the order grammar.
func (gs *Server) handleCommand(c *client, text string) {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	parts := strings.Fields(text)
	word := strings.ToUpper(parts[0])
	player := c.player

	if word == "HELP" || word == "?" {
		topic := ""
		if len(parts) > 1 {
			topic = parts[1]
		}
		c.sendInfo(helpText(topic))
		return
	}

	if word == "JOIN" {
		gs.handleJoin(c, strings.TrimSpace(text[len(parts[0]):]))
		return
	}

	if !player.Joined() {
		c.sendError("Please JOIN the game first.")
		return
	}

	switch word {
	case "TURN":
		gs.handleTurnReady(c)
		return
	case "SAY", "CHAT":
		gs.handleSay(c, strings.TrimSpace(text[len(parts[0]):]))
		return
	case "TIMER":
		gs.handleTimerPreference(c, parts)
		return
	}

	desc, err := game.SubmitOrder(gs.state, player, text)
	if err != nil {
		c.sendError(err.Error())
		return
	}
	c.sendInfo("Order queued: " + desc)
	gs.sendDeltaUpdate(c)
}

func (gs *Server) handleJoin(c *client, args string) {
	if args == "" {
		c.sendError("Usage: JOIN <name> [character-type]")
		return
	}
	name, charType := game.ParseJoinArgs(args)
	home, err := game.Join(gs.state, c.player, name, charType, gs.rng())
	if err != nil {
		c.sendError(err.Error())
		return
	}
	gs.log.Info("player joined", "player", name, "class", charType, "homeworld", home.ID)
	c.sendInfo(fmt.Sprintf("Welcome, %s! You are a %s starting at World %d.", name, charType, home.ID))
	gs.sendFullUpdate(c)
}

func (gs *Server) handleTurnReady(c *client) {
	if c.player.Ready {
		return
	}
	c.player.Ready = true
	c.sendInfo("You have ended your turn. Waiting for others...")

	if gs.state.AllReady() {
		gs.processTurnLocked()
		return
	}
	gs.broadcastDeltas()
}

func (gs *Server) handleSay(c *client, text string) {
	if text == "" {
		return
	}
	for _, other := range gs.clients {
		other.sendChat(c.player.Name, text, "public")
	}
}

func (gs *Server) handleTimerPreference(c *client, parts []string) {
	if len(parts) < 2 {
		c.sendInfo(fmt.Sprintf("Your turn timer preference is %d minutes.", c.player.TurnTimerMinutes))
		return
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 1 {
		c.sendError("Usage: TIMER <minutes>")
		return
	}
	c.player.TurnTimerMinutes = minutes
	c.sendInfo(fmt.Sprintf("Turn timer preference set to %d minutes.", minutes))
}

// processTurnLocked runs a full turn and streams the results out. Caller
// holds the lock.
func (gs *Server) processTurnLocked() {
	game.ProcessTurn(gs.state, reporter{gs}, gs.log)

	if gs.store != nil && gs.state.GameTurn%gs.cfg.SaveEvery == 0 {
		if err := gs.store.Save(gs.state.TakeSnapshot()); err != nil {
			gs.log.Error("save snapshot", "err", err)
		}
	}

	gs.broadcastDeltas()
}

// broadcastDeltas sends each connected, joined player whatever changed in
// their view. Caller holds the lock.
func (gs *Server) broadcastDeltas() {
	for _, c := range gs.clients {
		if c.player != nil && c.player.Joined() {
			gs.sendDeltaUpdate(c)
		}
	}
}

func (gs *Server) rng() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// HandleHealth reports liveness and the current turn.
func (gs *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	gs.mu.Lock()
	turn := gs.state.GameTurn
	players := len(gs.state.Players)
	gs.mu.Unlock()
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprintf(w, `{"status":"ok","game_turn":%d,"players":%d}`, turn, players)
}

// HandleSession reports who a stored token belongs to, so clients can check
// a saved session before opening the websocket. Mount behind
// auth.Service.Middleware.
func (gs *Server) HandleSession(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.SessionFromContext(r.Context())
	if !ok {
		http.Error(w, "no session", http.StatusUnauthorized)
		return
	}
	gs.mu.Lock()
	name := ""
	if p := gs.state.Players[claims.PlayerID]; p != nil {
		name = p.Name
	}
	gs.mu.Unlock()
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprintf(w, `{"player_id":%d,"player_name":%q}`, claims.PlayerID, name)
}
