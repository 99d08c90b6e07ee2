package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveAlongPath(t *testing.T) {
	s := NewState(3)
	p := s.AddPlayer()
	w1 := addWorld(s, 1, 2)
	w2 := addWorld(s, 2, 1, 3)
	w3 := addWorld(s, 3, 2)
	f := addFleet(s, 1, p, w1, 5)

	o := &MoveOrder{Player: p, FleetID: 1, Path: []int{2, 3}}
	ok, _ := o.Validate(s)
	require.True(t, ok)
	o.Execute(s, NopReporter{})

	assert.Equal(t, w3, f.World)
	assert.True(t, f.Moved)
	assert.Empty(t, w1.Fleets)
	assert.Empty(t, w2.Fleets)
	assert.Contains(t, w3.Fleets, f)
}

func TestMoveValidatesAdjacency(t *testing.T) {
	s := NewState(3)
	p := s.AddPlayer()
	w1 := addWorld(s, 1, 2)
	addWorld(s, 2, 1)
	addWorld(s, 3)
	addFleet(s, 1, p, w1, 5)

	o := &MoveOrder{Player: p, FleetID: 1, Path: []int{3}}
	ok, reason := o.Validate(s)
	require.False(t, ok)
	assert.Contains(t, reason, "not connected")
}

func TestAmbushInterceptsMove(t *testing.T) {
	s := NewState(3)
	p := s.AddPlayer()
	enemy := s.AddPlayer()
	w1 := addWorld(s, 1, 2)
	w2 := addWorld(s, 2, 1, 3)
	w3 := addWorld(s, 3, 2)
	victim := addFleet(s, 1, p, w1, 10)
	ambusher := addFleet(s, 2, enemy, w2, 4)
	ambusher.IsAmbushing = true

	o := &MoveOrder{Player: p, FleetID: 1, Path: []int{2, 3}}
	o.Execute(s, NopReporter{})

	// Four ambushing ships put out eight shots, killing four. The victim
	// lands at the ambush world, not its destination.
	assert.Equal(t, w2, victim.World)
	assert.Equal(t, 6, victim.Ships)
	assert.True(t, victim.Moved)
	assert.Empty(t, w3.Fleets)
	// Ambushers take no losses.
	assert.Equal(t, 4, ambusher.Ships)
}

func TestAmbushIgnoresOwnFleets(t *testing.T) {
	s := NewState(2)
	p := s.AddPlayer()
	w1 := addWorld(s, 1, 2)
	w2 := addWorld(s, 2, 1)
	mover := addFleet(s, 1, p, w1, 10)
	friendly := addFleet(s, 2, p, w2, 4)
	friendly.IsAmbushing = true

	o := &MoveOrder{Player: p, FleetID: 1, Path: []int{2}}
	o.Execute(s, NopReporter{})

	assert.Equal(t, w2, mover.World)
	assert.Equal(t, 10, mover.Ships)
}

func TestAmbushOrderArmsFleet(t *testing.T) {
	s := NewState(1)
	p := s.AddPlayer()
	w := addWorld(s, 1)
	f := addFleet(s, 1, p, w, 5)

	o := &AmbushOrder{Player: p, FleetID: 1}
	ok, _ := o.Validate(s)
	require.True(t, ok)
	o.Execute(s, NopReporter{})

	assert.True(t, f.IsAmbushing)
}

func TestProbeSpendsShipAndReveals(t *testing.T) {
	s := NewState(2)
	s.GameTurn = 4
	p := s.AddPlayer()
	w1 := addWorld(s, 1, 2)
	addWorld(s, 2, 1)
	f := addFleet(s, 1, p, w1, 3)

	o := &ProbeOrder{Player: p, SourceType: "F", SourceID: 1, TargetWorld: 2}
	ok, _ := o.Validate(s)
	require.True(t, ok)
	o.Execute(s, NopReporter{})

	assert.Equal(t, 2, f.Ships)
	assert.Equal(t, 4, p.KnownWorlds[2])
}

func TestProbeFromGarrison(t *testing.T) {
	s := NewState(2)
	p := s.AddPlayer()
	w1 := addWorld(s, 1, 2)
	addWorld(s, 2, 1)
	ownWorld(w1, p)
	w1.IShips = 2

	o := &ProbeOrder{Player: p, SourceType: "I", SourceID: 1, TargetWorld: 2}
	ok, _ := o.Validate(s)
	require.True(t, ok)
	o.Execute(s, NopReporter{})

	assert.Equal(t, 1, w1.IShips)
}

func TestProbeRequiresAdjacency(t *testing.T) {
	s := NewState(3)
	p := s.AddPlayer()
	w1 := addWorld(s, 1, 2)
	addWorld(s, 2, 1)
	addWorld(s, 3)
	addFleet(s, 1, p, w1, 3)

	o := &ProbeOrder{Player: p, SourceType: "F", SourceID: 1, TargetWorld: 3}
	ok, reason := o.Validate(s)
	require.False(t, ok)
	assert.Contains(t, reason, "not adjacent")
}
