package game

import (
	"fmt"
	"math"
)

// ProcessWorldProduction runs one turn of economy on an owned world. Mining
// draws only on population not committed to building this turn; population
// then grows ten percent, rounded up, toward the limit.
func ProcessWorldProduction(w *World, rep Reporter) {
	// The commitment counter clears everywhere, owned or not, so a build at
	// a world that stayed neutral cannot depress mining forever.
	available := w.Population - w.BuildCommitted
	w.BuildCommitted = 0
	if w.Owner == nil {
		return
	}

	mined := minInt(w.Mines, maxInt(0, available))
	w.Metal += mined

	grown := 0
	if w.Population < w.Limit && w.Population > 0 {
		grown = int(math.Ceil(float64(w.Population) * 0.10))
		if w.Population+grown > w.Limit {
			grown = w.Limit - w.Population
		}
		w.Population += grown
	}

	if mined > 0 || grown > 0 {
		rep.Event(w.Owner, fmt.Sprintf("W%d produced %d metal, population grew by %d.", w.ID, mined, grown), EventProduction)
	}
}

func (o *BuildOrder) Execute(s *State, rep Reporter) {
	world := s.GetWorld(o.WorldID)
	if world == nil {
		return
	}

	// Building is allowed with ownership, or with a fleet on station at a
	// neutral world. A world captured by someone else since admission is a
	// skip: their stockpile is not yours to spend.
	canBuild := world.Owner == o.Player
	if !canBuild && world.Owner == nil {
		for _, f := range world.Fleets {
			if f.Owner == o.Player {
				canBuild = true
				break
			}
		}
	}
	if !canBuild {
		return
	}

	switch o.TargetType {
	case BuildIShips, BuildPShips, BuildFleet:
		o.executeShipBuild(s, world, rep)
	case BuildIndustry:
		o.executeIndustryBuild(world, rep)
	case BuildLimit:
		o.executeLimitBuild(world, rep)
	case BuildRobot:
		o.executeRobotBuild(world, rep)
	}
}

// executeShipBuild spends one metal per ship, rate-limited by industry and
// population. Committed population is excluded from this turn's mining.
func (o *BuildOrder) executeShipBuild(s *State, world *World, rep Reporter) {
	maxBuild := minInt(world.Industry, world.Metal, world.Population)
	amount := minInt(o.Amount, maxBuild)
	if amount <= 0 {
		return
	}

	world.Metal -= amount
	world.BuildCommitted += amount

	claimed := false
	switch o.TargetType {
	case BuildIShips:
		world.IShips += amount
		claimed = o.claimIfNeutral(world)
	case BuildPShips:
		world.PShips += amount
		claimed = o.claimIfNeutral(world)
	case BuildFleet:
		fleet := s.GetFleet(o.TargetID)
		if fleet == nil || fleet.World != world || fleet.Owner != o.Player {
			world.Metal += amount
			world.BuildCommitted -= amount
			return
		}
		fleet.Ships += amount
	}

	if claimed {
		rep.Event(o.Player, fmt.Sprintf("Claimed World %d! Built defenses on neutral world.", world.ID), EventCapture)
	}
}

// claimIfNeutral establishes ownership when garrison ships go up on an
// unowned world.
func (o *BuildOrder) claimIfNeutral(world *World) bool {
	if world.Owner != nil {
		return false
	}
	world.Owner = o.Player
	o.Player.Worlds = append(o.Player.Worlds, world)
	return true
}

// executeIndustryBuild converts metal and population into plant. Each unit
// of industry costs metal at the class rate and settles one population into
// the workforce permanently.
func (o *BuildOrder) executeIndustryBuild(world *World, rep Reporter) {
	costPer := buildMetalCost(BuildIndustry, o.Player.CharacterType)
	amount := minInt(o.Amount, world.Metal/costPer, world.Population)
	if amount <= 0 {
		return
	}
	world.Metal -= amount * costPer
	world.Population -= amount
	world.Industry += amount
	rep.Event(o.Player, fmt.Sprintf("W%d built %d industry.", world.ID, amount), EventProduction)
}

// executeLimitBuild terraforms for a higher population ceiling: ten metal
// per point, and one industry dismantled per five points, rounded up.
func (o *BuildOrder) executeLimitBuild(world *World, rep Reporter) {
	costPer := buildMetalCost(BuildLimit, o.Player.CharacterType)
	amount := minInt(o.Amount, world.Metal/costPer)
	if amount <= 0 {
		return
	}
	needed := industryNeededForLimit(amount)
	if needed > world.Industry {
		return
	}
	world.Metal -= amount * costPer
	world.Industry -= needed
	world.Limit += amount
	rep.Event(o.Player, fmt.Sprintf("W%d raised population limit by %d.", world.ID, amount), EventProduction)
}

// executeRobotBuild converts population to robots one for one, two metal
// per conversion. A world with any robots counts as a robot world.
func (o *BuildOrder) executeRobotBuild(world *World, rep Reporter) {
	if o.Player.CharacterType != ClassBerserker {
		return
	}
	costPer := buildMetalCost(BuildRobot, o.Player.CharacterType)
	amount := minInt(o.Amount, world.Metal/costPer, world.Population)
	if amount <= 0 {
		return
	}
	world.Metal -= amount * costPer
	world.PopulationType = PopulationRobot
	rep.Event(o.Player, fmt.Sprintf("W%d converted %d population to robots.", world.ID, amount), EventProduction)
}

func (o *ScrapShipsOrder) Execute(s *State, rep Reporter) {
	world := s.GetWorld(o.WorldID)
	if world == nil || world.Owner != o.Player {
		return
	}
	needed := o.Amount * shipsPerIndustry(o.Player.CharacterType)
	if world.IShips < needed {
		return
	}
	world.IShips -= needed
	world.Industry += o.Amount
	rep.Event(o.Player, fmt.Sprintf("W%d: Scrapped %d ISHIPS to create %d industry", o.WorldID, needed, o.Amount), EventProduction)
}

func (o *MigrateOrder) Execute(s *State, rep Reporter) {
	world := s.GetWorld(o.WorldID)
	dest := s.GetWorld(o.DestWorld)
	if world == nil || dest == nil || world.Owner != o.Player {
		return
	}
	if !world.ConnectedTo(o.DestWorld) {
		return
	}

	// Each migrant rides a one-shot transport: one metal, one point of
	// industry throughput. Arrivals past the destination limit are lost.
	amount := minInt(o.Amount, world.Industry, world.Metal, world.Population)
	if amount <= 0 {
		return
	}
	world.Metal -= amount
	world.Population -= amount

	room := maxInt(0, dest.Limit-dest.Population)
	settled := minInt(amount, room)
	dest.Population += settled
	if settled > 0 && dest.PopulationType == "" {
		dest.PopulationType = world.PopulationType
	}

	rep.Event(o.Player, fmt.Sprintf("Migrated %d population from W%d to W%d.", settled, o.WorldID, o.DestWorld), EventLogistics)
	if settled < amount {
		rep.Event(o.Player, fmt.Sprintf("W%d at capacity, %d migrants lost in transit.", o.DestWorld, amount-settled), EventLogistics)
	}
}
