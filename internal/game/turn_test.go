package game

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessTurnRunsQueuedOrders(t *testing.T) {
	s := NewState(2)
	p := s.AddPlayer()
	p.Name = "Alice"
	w1 := addWorld(s, 1, 2)
	w2 := addWorld(s, 2, 1)
	f := addFleet(s, 1, p, w1, 5)

	_, err := SubmitOrder(s, p, "F1W2")
	require.NoError(t, err)
	p.Ready = true

	ProcessTurn(s, NopReporter{}, nil)

	assert.Equal(t, 1, s.GameTurn)
	assert.Equal(t, w2, f.World)
	assert.Empty(t, p.Orders)
	assert.False(t, p.Ready)
	// Per-turn flags clear once processing finishes.
	assert.False(t, f.Moved)
	assert.False(t, s.TurnEndTime.IsZero())
}

func TestProcessTurnAmbushArmsBeforeMove(t *testing.T) {
	s := NewState(2)
	mover := s.AddPlayer()
	mover.Name = "Alice"
	trapper := s.AddPlayer()
	trapper.Name = "Bob"
	w1 := addWorld(s, 1, 2)
	w2 := addWorld(s, 2, 1)
	victim := addFleet(s, 1, mover, w1, 10)
	addFleet(s, 2, trapper, w2, 4)

	// Both orders submitted the same turn: the ambush must be armed by the
	// time the move resolves.
	_, err := SubmitOrder(s, mover, "F1W2")
	require.NoError(t, err)
	_, err = SubmitOrder(s, trapper, "F2A")
	require.NoError(t, err)

	ProcessTurn(s, NopReporter{}, nil)

	assert.Equal(t, w2, victim.World)
	assert.Equal(t, 6, victim.Ships)
}

func TestProcessTurnTransfersBeforeCombat(t *testing.T) {
	s := NewState(1)
	p := s.AddPlayer()
	p.Name = "Alice"
	enemy := s.AddPlayer()
	enemy.Name = "Bob"
	w := addWorld(s, 1)
	strong := addFleet(s, 1, p, w, 10)
	weak := addFleet(s, 2, p, w, 2)
	raider := addFleet(s, 3, enemy, w, 6)

	// Reinforce the weak fleet and have it fire the same turn; the shots
	// come from the reinforced count.
	_, err := SubmitOrder(s, p, "F1T8F2")
	require.NoError(t, err)
	_, err = SubmitOrder(s, p, "F2AF3")
	require.NoError(t, err)

	ProcessTurn(s, NopReporter{}, nil)

	assert.Equal(t, 2, strong.Ships)
	// 10 shots kill 5; the raider's 6 kill 3 back.
	assert.Equal(t, 1, raider.Ships)
	assert.Equal(t, 7, weak.Ships)
}

func TestProcessTurnRunsProductionAndScoring(t *testing.T) {
	s := NewState(1)
	p := s.AddPlayer()
	p.Name = "Alice"
	p.CharacterType = ClassEmpireBuilder
	w := addWorld(s, 1)
	ownWorld(w, p)
	w.Population = 20
	w.Mines = 3
	w.Industry = 2

	ProcessTurn(s, NopReporter{}, nil)

	assert.Equal(t, 3, w.Metal)
	assert.Equal(t, 22, w.Population)
	// 22 pop / 10 + 2 industry + 3 mines.
	assert.Equal(t, 7, p.Score)
}

func TestProcessTurnLogsStaleOrders(t *testing.T) {
	s := NewState(2)
	p := s.AddPlayer()
	p.Name = "Alice"
	w1 := addWorld(s, 1, 2)
	addWorld(s, 2, 1)
	f := addFleet(s, 1, p, w1, 5)

	_, err := SubmitOrder(s, p, "F1W2")
	require.NoError(t, err)

	// The fleet is wiped out between admission and the move phase. The
	// order drops without a player-facing error, but leaves a log line.
	f.Ships = 0

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ProcessTurn(s, NopReporter{}, log)

	assert.Equal(t, w1, f.World)
	assert.Contains(t, buf.String(), "order stale at execution")
	assert.Contains(t, buf.String(), "no ships")
	assert.Contains(t, buf.String(), string(KindMove))
}

func TestProcessTurnSettlesOwnership(t *testing.T) {
	s := NewState(2)
	owner := s.AddPlayer()
	owner.Name = "Alice"
	invader := s.AddPlayer()
	invader.Name = "Bob"
	w1 := addWorld(s, 1, 2)
	w2 := addWorld(s, 2, 1)
	ownWorld(w2, owner)
	w2.Population = 10
	addFleet(s, 1, invader, w1, 10)

	_, err := SubmitOrder(s, invader, "F1W2")
	require.NoError(t, err)

	ProcessTurn(s, NopReporter{}, nil)

	assert.Equal(t, invader, w2.Owner)
	assert.NotContains(t, owner.Worlds, w2)
}
