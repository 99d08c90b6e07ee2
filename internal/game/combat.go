package game

import "fmt"

// ResolveCombat applies the symmetric exchange rule: each side takes hits
// equal to the other side's ships, and every two hits destroy one ship,
// rounded up. Returns (attacker losses, defender losses).
func ResolveCombat(attackerShips, defenderShips int) (int, int) {
	return ceilDiv(defenderShips, 2), ceilDiv(attackerShips, 2)
}

func (o *FireOrder) Execute(s *State, rep Reporter) {
	fleet := s.GetFleet(o.FleetID)
	if fleet == nil || fleet.Owner != o.Player || fleet.Ships == 0 {
		return
	}
	switch o.TargetType {
	case FireAtWorld:
		fireAtWorld(o, fleet, fleet.World, rep)
	case FireAtFleet:
		fireAtFleet(s, o, fleet, fleet.World, rep)
	}
}

// fireAtWorld shoots through the matching garrison pool first. Shots not
// soaked by the garrison (each defending ship absorbs two) spill onto the
// resource behind it at two shots per unit.
func fireAtWorld(o *FireOrder, fleet *Fleet, world *World, rep Reporter) {
	shots := fleet.Ships

	switch o.SubTarget {
	case "P":
		defShips := world.PShips
		world.PShips = maxInt(0, world.PShips-ceilDiv(shots, 2))
		remShots := shots - defShips*2
		if remShots > 0 {
			killed := ceilDiv(remShots, 2)
			if killed > world.Population {
				killed = world.Population
			}
			world.Population -= killed
			creditPopulationKills(o.Player, killed)
			rep.Event(o.Player, fmt.Sprintf("Fired on W%d population, killing %d.", world.ID, killed), EventCombat)
			if world.Owner != nil && world.Owner != o.Player {
				rep.Event(world.Owner, fmt.Sprintf("W%d under fire from F%d! Lost %d population.", world.ID, fleet.ID, killed), EventCombat)
			}
		}
	case "I":
		defShips := world.IShips
		world.IShips = maxInt(0, world.IShips-ceilDiv(shots, 2))
		remShots := shots - defShips*2
		if remShots > 0 {
			destroyed := ceilDiv(remShots, 2)
			if destroyed > world.Industry {
				destroyed = world.Industry
			}
			world.Industry -= destroyed
			rep.Event(o.Player, fmt.Sprintf("Fired on W%d industry, destroying %d.", world.ID, destroyed), EventCombat)
			if world.Owner != nil && world.Owner != o.Player {
				rep.Event(world.Owner, fmt.Sprintf("W%d under fire from F%d! Lost %d industry.", world.ID, fleet.ID, destroyed), EventCombat)
			}
		}
	case "H":
		// Fire at the defenses themselves: losses land on ISHIPS first,
		// the remainder on PSHIPS. No spillover past the garrison.
		losses := ceilDiv(shots, 2)
		iLost := minInt(losses, world.IShips)
		world.IShips -= iLost
		pLost := minInt(losses-iLost, world.PShips)
		world.PShips -= pLost
		rep.Event(o.Player, fmt.Sprintf("Fired on W%d defenses, destroying %d ISHIPS and %d PSHIPS.", world.ID, iLost, pLost), EventCombat)
		if world.Owner != nil && world.Owner != o.Player {
			rep.Event(world.Owner, fmt.Sprintf("W%d defenses under fire from F%d! Lost %d ISHIPS and %d PSHIPS.", world.ID, fleet.ID, iLost, pLost), EventCombat)
		}
	}
}

func fireAtFleet(s *State, o *FireOrder, attacker *Fleet, world *World, rep Reporter) {
	defender := s.GetFleet(o.TargetID)
	if defender == nil || defender.World != world {
		return
	}

	attackerLosses, defenderLosses := ResolveCombat(attacker.Ships, defender.Ships)
	attacker.Ships = maxInt(0, attacker.Ships-attackerLosses)
	defender.Ships = maxInt(0, defender.Ships-defenderLosses)

	msg := fmt.Sprintf("Combat at W%d! F%d vs F%d. Losses: Attacker %d, Defender %d.",
		world.ID, attacker.ID, defender.ID, attackerLosses, defenderLosses)
	rep.Event(o.Player, msg, EventCombat)
	if defender.Owner != nil {
		rep.Event(defender.Owner, msg, EventCombat)
	}
}

func (o *DefenseFireOrder) Execute(s *State, rep Reporter) {
	world := s.GetWorld(o.WorldID)
	if world == nil || world.Owner != o.Player {
		return
	}

	var shots int
	switch o.DefenseType {
	case "I":
		shots = world.IShips
	case "P":
		shots = world.PShips
	}
	if shots == 0 {
		return
	}

	switch o.TargetType {
	case "F":
		target := s.GetFleet(o.TargetID)
		if target == nil || target.World != world {
			return
		}
		// The garrison trades fire with the fleet like a fleet would.
		defLosses, fleetLosses := ResolveCombat(shots, target.Ships)
		target.Ships = maxInt(0, target.Ships-fleetLosses)
		switch o.DefenseType {
		case "I":
			world.IShips = maxInt(0, world.IShips-defLosses)
		case "P":
			world.PShips = maxInt(0, world.PShips-defLosses)
		}
		msg := fmt.Sprintf("%sSHIPS@W%d fired at F%d. Losses: Garrison %d, Fleet %d.",
			o.DefenseType, world.ID, target.ID, defLosses, fleetLosses)
		rep.Event(o.Player, msg, EventCombat)
		if target.Owner != nil && target.Owner != o.Player {
			rep.Event(target.Owner, msg, EventCombat)
		}
	case "C":
		// Purge converts from the world's own population.
		if world.PopulationType != PopulationApostle || world.Population == 0 {
			return
		}
		killed := minInt(ceilDiv(shots, 2), world.Population)
		world.Population -= killed
		if world.Population == 0 {
			world.PopulationType = PopulationHuman
		}
		creditPopulationKills(o.Player, killed)
		rep.Event(o.Player, fmt.Sprintf("%sSHIPS@W%d purged %d converts.", o.DefenseType, world.ID, killed), EventCombat)
	}
}

// creditPopulationKills applies the transactional score for killing
// population: Berserkers collect a point per kill, everyone else pays one.
func creditPopulationKills(shooter *Player, killed int) {
	if killed <= 0 {
		return
	}
	if shooter.CharacterType == ClassBerserker {
		shooter.BonusScore += killed
	} else {
		shooter.BonusScore -= killed
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
