package server

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wthidden/galaxy-one/internal/game"
)

func TestTickSkipsEmptyGame(t *testing.T) {
	gs, _ := newTestServer(t)
	gs.state.TurnEndTime = time.Now().Add(-time.Second)

	gs.tick(time.Now())

	// Nobody has joined: the deadline slides instead of firing.
	assert.Equal(t, 0, gs.state.GameTurn)
	assert.True(t, gs.state.TurnEndTime.After(time.Now()))
}

func TestTickProcessesTurnAtDeadline(t *testing.T) {
	gs, ts := newTestServer(t)
	conn := dialWS(t, ts)
	connectPlayer(t, conn)
	sendFrame(t, conn, Message{Type: "command", Text: "JOIN Alice"})
	readFrame(t, conn, "update")

	gs.mu.Lock()
	gs.state.TurnEndTime = time.Now().Add(-time.Second)
	gs.mu.Unlock()

	gs.tick(time.Now())

	gs.mu.Lock()
	turn := gs.state.GameTurn
	deadline := gs.state.TurnEndTime
	gs.mu.Unlock()
	assert.Equal(t, 1, turn)
	assert.True(t, deadline.After(time.Now().Add(-time.Second)))

	// Connected players get a timer frame each tick.
	frame := readFrame(t, conn, "timer")
	require.NotNil(t, frame["time_remaining"])
}

func TestTickBeforeDeadlineOnlyBroadcastsTimer(t *testing.T) {
	gs, ts := newTestServer(t)
	conn := dialWS(t, ts)
	connectPlayer(t, conn)
	sendFrame(t, conn, Message{Type: "command", Text: "JOIN Alice"})
	readFrame(t, conn, "update")

	gs.tick(time.Now())

	gs.mu.Lock()
	turn := gs.state.GameTurn
	gs.mu.Unlock()
	assert.Equal(t, 0, turn)
	readFrame(t, conn, "timer")
}

func TestTimeRemaining(t *testing.T) {
	s := game.NewState(2)
	now := time.Unix(1000, 0)
	s.TurnEndTime = now.Add(90 * time.Second)

	assert.Equal(t, 90, s.TimeRemaining(now))
	assert.Equal(t, 0, s.TimeRemaining(now.Add(2*time.Minute)))
}
