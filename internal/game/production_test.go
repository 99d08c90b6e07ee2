package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessWorldProduction(t *testing.T) {
	s := NewState(1)
	p := s.AddPlayer()
	w := addWorld(s, 1)
	ownWorld(w, p)
	w.Population = 10
	w.Mines = 5
	w.Metal = 0

	ProcessWorldProduction(w, NopReporter{})

	assert.Equal(t, 5, w.Metal)
	// Growth is ten percent rounded up.
	assert.Equal(t, 11, w.Population)
}

func TestProductionSkipsNeutralWorlds(t *testing.T) {
	s := NewState(1)
	w := addWorld(s, 1)
	w.Population = 10
	w.Mines = 5

	ProcessWorldProduction(w, NopReporter{})

	assert.Equal(t, 0, w.Metal)
	assert.Equal(t, 10, w.Population)
}

func TestProductionClearsCommitmentOnNeutralWorlds(t *testing.T) {
	s := NewState(1)
	w := addWorld(s, 1)
	w.Population = 10
	w.BuildCommitted = 4

	// A build at a world that stayed neutral must not depress next turn's
	// mining after the world is eventually claimed.
	ProcessWorldProduction(w, NopReporter{})

	assert.Equal(t, 0, w.Metal)
	assert.Equal(t, 0, w.BuildCommitted)
}

func TestProductionMiningExcludesCommittedPopulation(t *testing.T) {
	s := NewState(1)
	p := s.AddPlayer()
	w := addWorld(s, 1)
	ownWorld(w, p)
	w.Population = 10
	w.Mines = 8
	w.BuildCommitted = 7

	ProcessWorldProduction(w, NopReporter{})

	// Only three workers were free to mine; the commitment then clears.
	assert.Equal(t, 3, w.Metal)
	assert.Equal(t, 0, w.BuildCommitted)
}

func TestProductionGrowthRespectsLimit(t *testing.T) {
	s := NewState(1)
	p := s.AddPlayer()
	w := addWorld(s, 1)
	ownWorld(w, p)
	w.Population = 99
	w.Limit = 100

	ProcessWorldProduction(w, NopReporter{})

	assert.Equal(t, 100, w.Population)
}

func TestBuildGarrisonShips(t *testing.T) {
	s := NewState(1)
	p := s.AddPlayer()
	w := addWorld(s, 1)
	ownWorld(w, p)
	w.Industry = 10
	w.Metal = 20
	w.Population = 30

	o := &BuildOrder{Player: p, WorldID: 1, Amount: 5, TargetType: BuildIShips}
	ok, _ := o.Validate(s)
	require.True(t, ok)
	o.Execute(s, NopReporter{})

	assert.Equal(t, 5, w.IShips)
	assert.Equal(t, 15, w.Metal)
	assert.Equal(t, 5, w.BuildCommitted)
	assert.Equal(t, 30, w.Population)
}

func TestBuildCappedByIndustry(t *testing.T) {
	s := NewState(1)
	p := s.AddPlayer()
	w := addWorld(s, 1)
	ownWorld(w, p)
	w.Industry = 3
	w.Metal = 20
	w.Population = 30

	o := &BuildOrder{Player: p, WorldID: 1, Amount: 10, TargetType: BuildPShips}
	ok, reason := o.Validate(s)
	require.False(t, ok)
	assert.Contains(t, reason, "maximum is 3")

	// Execution clamps on its own when the order got past validation in an
	// earlier state.
	o.Execute(s, NopReporter{})
	assert.Equal(t, 3, w.PShips)
	assert.Equal(t, 17, w.Metal)
}

func TestBuildFleetShips(t *testing.T) {
	s := NewState(1)
	p := s.AddPlayer()
	w := addWorld(s, 1)
	ownWorld(w, p)
	w.Industry = 10
	w.Metal = 20
	w.Population = 30
	f := addFleet(s, 7, p, w, 2)

	o := &BuildOrder{Player: p, WorldID: 1, Amount: 5, TargetType: BuildFleet, TargetID: 7}
	ok, _ := o.Validate(s)
	require.True(t, ok)
	o.Execute(s, NopReporter{})

	assert.Equal(t, 7, f.Ships)
	assert.Equal(t, 15, w.Metal)
}

func TestBuildFleetRefundsWhenTargetGone(t *testing.T) {
	s := NewState(2)
	p := s.AddPlayer()
	w1 := addWorld(s, 1, 2)
	w2 := addWorld(s, 2, 1)
	ownWorld(w1, p)
	w1.Industry = 10
	w1.Metal = 20
	w1.Population = 30
	f := addFleet(s, 7, p, w2, 2)

	// Fleet 7 left the build world before execution.
	o := &BuildOrder{Player: p, WorldID: 1, Amount: 5, TargetType: BuildFleet, TargetID: 7}
	o.Execute(s, NopReporter{})

	assert.Equal(t, 2, f.Ships)
	assert.Equal(t, 20, w1.Metal)
	assert.Equal(t, 0, w1.BuildCommitted)
}

func TestBuildOnNeutralWorldClaimsIt(t *testing.T) {
	s := NewState(1)
	p := s.AddPlayer()
	w := addWorld(s, 1)
	w.Industry = 5
	w.Metal = 5
	w.Population = 5
	addFleet(s, 1, p, w, 3)

	// A fleet on station is enough to build at a neutral world, and
	// garrison ships going up there claim it.
	o := &BuildOrder{Player: p, WorldID: 1, Amount: 2, TargetType: BuildIShips}
	ok, _ := o.Validate(s)
	require.True(t, ok)
	o.Execute(s, NopReporter{})

	assert.Equal(t, p, w.Owner)
	assert.Contains(t, p.Worlds, w)
	assert.Equal(t, 2, w.IShips)
}

func TestBuildRequiresOwnershipOrPresence(t *testing.T) {
	s := NewState(1)
	p := s.AddPlayer()
	w := addWorld(s, 1)
	w.Industry = 5
	w.Metal = 5
	w.Population = 5

	// No fleet at the neutral world: rejected at admission.
	o := &BuildOrder{Player: p, WorldID: 1, Amount: 2, TargetType: BuildIShips}
	ok, reason := o.Validate(s)
	require.False(t, ok)
	assert.Contains(t, reason, "do not own")
}

func TestBuildSkippedWhenWorldCaptured(t *testing.T) {
	s := NewState(1)
	p := s.AddPlayer()
	enemy := s.AddPlayer()
	w := addWorld(s, 1)
	ownWorld(w, enemy)
	w.Industry = 5
	w.Metal = 5
	w.Population = 5
	addFleet(s, 1, p, w, 3)

	// The world belongs to someone else by execution time: the order drops
	// rather than spending their stockpile.
	o := &BuildOrder{Player: p, WorldID: 1, Amount: 2, TargetType: BuildIShips}
	o.Execute(s, NopReporter{})

	assert.Equal(t, enemy, w.Owner)
	assert.Equal(t, 0, w.IShips)
	assert.Equal(t, 5, w.Metal)
	assert.Equal(t, 0, w.BuildCommitted)
}

func TestBuildIndustry(t *testing.T) {
	s := NewState(1)
	p := s.AddPlayer()
	w := addWorld(s, 1)
	ownWorld(w, p)
	w.Metal = 20
	w.Population = 10

	o := &BuildOrder{Player: p, WorldID: 1, Amount: 3, TargetType: BuildIndustry}
	ok, _ := o.Validate(s)
	require.True(t, ok)
	o.Execute(s, NopReporter{})

	assert.Equal(t, 3, w.Industry)
	assert.Equal(t, 5, w.Metal)
	assert.Equal(t, 7, w.Population)
}

func TestBuildIndustryEmpireBuilderDiscount(t *testing.T) {
	s := NewState(1)
	p := s.AddPlayer()
	p.CharacterType = ClassEmpireBuilder
	w := addWorld(s, 1)
	ownWorld(w, p)
	w.Metal = 8
	w.Population = 10

	o := &BuildOrder{Player: p, WorldID: 1, Amount: 2, TargetType: BuildIndustry}
	ok, _ := o.Validate(s)
	require.True(t, ok)
	o.Execute(s, NopReporter{})

	assert.Equal(t, 2, w.Industry)
	assert.Equal(t, 0, w.Metal)
}

func TestBuildLimit(t *testing.T) {
	s := NewState(1)
	p := s.AddPlayer()
	w := addWorld(s, 1)
	ownWorld(w, p)
	w.Metal = 80
	w.Industry = 3
	w.Limit = 50

	o := &BuildOrder{Player: p, WorldID: 1, Amount: 8, TargetType: BuildLimit}
	ok, _ := o.Validate(s)
	require.True(t, ok)
	o.Execute(s, NopReporter{})

	assert.Equal(t, 58, w.Limit)
	assert.Equal(t, 0, w.Metal)
	// Eight points of limit tie up two industry.
	assert.Equal(t, 1, w.Industry)
}

func TestBuildRobotBerserkerOnly(t *testing.T) {
	s := NewState(1)
	p := s.AddPlayer()
	w := addWorld(s, 1)
	ownWorld(w, p)
	w.Metal = 20
	w.Population = 10

	o := &BuildOrder{Player: p, WorldID: 1, Amount: 5, TargetType: BuildRobot}
	ok, reason := o.Validate(s)
	require.False(t, ok)
	assert.Contains(t, reason, "Berserkers")

	p.CharacterType = ClassBerserker
	ok, _ = o.Validate(s)
	require.True(t, ok)
	o.Execute(s, NopReporter{})

	assert.Equal(t, PopulationRobot, w.PopulationType)
	assert.Equal(t, 10, w.Metal)
}

func TestScrapShips(t *testing.T) {
	s := NewState(1)
	p := s.AddPlayer()
	w := addWorld(s, 1)
	ownWorld(w, p)
	w.IShips = 13

	o := &ScrapShipsOrder{Player: p, WorldID: 1, Amount: 2}
	ok, _ := o.Validate(s)
	require.True(t, ok)
	o.Execute(s, NopReporter{})

	assert.Equal(t, 1, w.IShips)
	assert.Equal(t, 2, w.Industry)
}

func TestScrapShipsEmpireBuilderRate(t *testing.T) {
	s := NewState(1)
	p := s.AddPlayer()
	p.CharacterType = ClassEmpireBuilder
	w := addWorld(s, 1)
	ownWorld(w, p)
	w.IShips = 8

	o := &ScrapShipsOrder{Player: p, WorldID: 1, Amount: 2}
	ok, _ := o.Validate(s)
	require.True(t, ok)
	o.Execute(s, NopReporter{})

	assert.Equal(t, 0, w.IShips)
	assert.Equal(t, 2, w.Industry)
}

func TestMigrate(t *testing.T) {
	s := NewState(2)
	p := s.AddPlayer()
	w1 := addWorld(s, 1, 2)
	w2 := addWorld(s, 2, 1)
	ownWorld(w1, p)
	w1.Population = 20
	w1.Industry = 10
	w1.Metal = 10

	o := &MigrateOrder{Player: p, WorldID: 1, Amount: 5, DestWorld: 2}
	ok, _ := o.Validate(s)
	require.True(t, ok)
	o.Execute(s, NopReporter{})

	assert.Equal(t, 15, w1.Population)
	assert.Equal(t, 5, w1.Metal)
	assert.Equal(t, 5, w2.Population)
}

func TestMigrateOverflowLost(t *testing.T) {
	s := NewState(2)
	p := s.AddPlayer()
	w1 := addWorld(s, 1, 2)
	w2 := addWorld(s, 2, 1)
	ownWorld(w1, p)
	w1.Population = 20
	w1.Industry = 10
	w1.Metal = 10
	w2.Population = 98
	w2.Limit = 100

	o := &MigrateOrder{Player: p, WorldID: 1, Amount: 5, DestWorld: 2}
	o.Execute(s, NopReporter{})

	// All five leave; only two find room.
	assert.Equal(t, 15, w1.Population)
	assert.Equal(t, 100, w2.Population)
}

func TestMigrateRequiresConnection(t *testing.T) {
	s := NewState(3)
	p := s.AddPlayer()
	w1 := addWorld(s, 1, 2)
	addWorld(s, 2, 1)
	addWorld(s, 3)
	ownWorld(w1, p)
	w1.Population = 20
	w1.Industry = 10
	w1.Metal = 10

	o := &MigrateOrder{Player: p, WorldID: 1, Amount: 5, DestWorld: 3}
	ok, reason := o.Validate(s)
	require.False(t, ok)
	assert.Contains(t, reason, "not connected")
}
