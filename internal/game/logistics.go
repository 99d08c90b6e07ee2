package game

import "fmt"

func (o *TransferOrder) Execute(s *State, rep Reporter) {
	fleet := s.GetFleet(o.FleetID)
	if fleet == nil || fleet.Owner != o.Player || fleet.Ships < o.Amount {
		return
	}
	world := fleet.World
	if (o.TargetType == "I" || o.TargetType == "P") && world.Owner != o.Player {
		return
	}

	fleet.Ships -= o.Amount

	switch o.TargetType {
	case "I":
		world.IShips += o.Amount
	case "P":
		world.PShips += o.Amount
	case "F":
		target := s.GetFleet(o.TargetID)
		if target == nil || target.World.ID != world.ID {
			fleet.Ships += o.Amount
			return
		}
		target.Ships += o.Amount
		transferProportionalCargo(fleet, target, o.Amount, o.Player, rep)
	}
}

// transferProportionalCargo moves the departing ships' share of cargo with
// them. Cargo past the target's capacity is jettisoned; a Merchant target
// can absorb twice as much per ship.
func transferProportionalCargo(source, target *Fleet, ships int, actor *Player, rep Reporter) {
	if source.Cargo == 0 {
		return
	}
	shipsBefore := source.Ships + ships
	moving := int(float64(ships) * float64(source.Cargo) / float64(shipsBefore))
	if moving > source.Cargo {
		moving = source.Cargo
	}
	if moving == 0 {
		return
	}
	source.Cargo -= moving

	room := target.CargoCapacity() - target.Cargo
	if room < 0 {
		room = 0
	}
	if moving <= room {
		target.Cargo += moving
		return
	}
	target.Cargo += room
	jettisoned := moving - room
	rep.Event(actor,
		fmt.Sprintf("Transfer F%d to F%d: %d cargo jettisoned due to capacity limits", source.ID, target.ID, jettisoned),
		EventInfo)
}

func (o *TransferFromDefenseOrder) Execute(s *State, rep Reporter) {
	world := s.GetWorld(o.WorldID)
	if world == nil || world.Owner != o.Player {
		return
	}

	switch o.SourceType {
	case "I":
		if world.IShips < o.Amount {
			return
		}
		world.IShips -= o.Amount
	case "P":
		if world.PShips < o.Amount {
			return
		}
		world.PShips -= o.Amount
	default:
		return
	}

	switch o.TargetType {
	case "I":
		world.IShips += o.Amount
	case "P":
		world.PShips += o.Amount
	case "F":
		target := s.GetFleet(o.TargetID)
		if target == nil || target.World.ID != o.WorldID {
			if o.SourceType == "I" {
				world.IShips += o.Amount
			} else {
				world.PShips += o.Amount
			}
			return
		}
		target.Ships += o.Amount
	}
}

func (o *TransferArtifactOrder) Execute(s *State, rep Reporter) {
	var sourceWorld *World
	var artifact *Artifact
	var detach func()

	switch o.SourceType {
	case "F":
		source := s.GetFleet(o.SourceID)
		if source == nil || source.Owner != o.Player {
			return
		}
		sourceWorld = source.World
		artifact = source.FindArtifact(o.ArtifactID)
		detach = func() { source.RemoveArtifact(artifact) }
	case "W":
		source := s.GetWorld(o.SourceID)
		if source == nil || !playerHasAccess(source, o.Player) {
			return
		}
		sourceWorld = source
		artifact = source.FindArtifact(o.ArtifactID)
		detach = func() { source.RemoveArtifact(artifact) }
	default:
		return
	}
	if artifact == nil {
		return
	}

	switch o.TargetType {
	case "F":
		target := s.GetFleet(o.TargetID)
		if target == nil || target.Owner != o.Player || target.World.ID != sourceWorld.ID {
			return
		}
		detach()
		target.Artifacts = append(target.Artifacts, artifact)
	case "W":
		if !playerHasAccess(sourceWorld, o.Player) {
			return
		}
		detach()
		sourceWorld.Artifacts = append(sourceWorld.Artifacts, artifact)
	}
}

// playerHasAccess reports whether p owns the world or has a fleet there.
func playerHasAccess(w *World, p *Player) bool {
	if w.Owner == p {
		return true
	}
	for _, f := range w.Fleets {
		if f.Owner == p {
			return true
		}
	}
	return false
}

func (o *LoadOrder) Execute(s *State, rep Reporter) {
	fleet := s.GetFleet(o.FleetID)
	if fleet == nil || fleet.Owner != o.Player {
		return
	}
	world := fleet.World
	if !playerHasAccess(world, o.Player) {
		return
	}

	room := fleet.CargoCapacity() - fleet.Cargo
	amount := minInt(room, world.Population)
	if o.HasAmount {
		amount = minInt(o.Amount, room, world.Population)
	}
	if amount <= 0 {
		return
	}
	world.Population -= amount
	fleet.Cargo += amount
	rep.Event(o.Player, fmt.Sprintf("F%d loaded %d population at W%d.", fleet.ID, amount, world.ID), EventLogistics)
}

func (o *UnloadOrder) Execute(s *State, rep Reporter) {
	fleet := s.GetFleet(o.FleetID)
	if fleet == nil || fleet.Owner != o.Player {
		return
	}
	world := fleet.World
	if !playerHasAccess(world, o.Player) {
		return
	}

	amount := fleet.Cargo
	if o.HasAmount {
		amount = minInt(o.Amount, fleet.Cargo)
	}
	if amount <= 0 {
		return
	}
	room := world.Limit - world.Population
	if room <= 0 {
		return
	}
	if amount > room {
		amount = room
	}
	fleet.Cargo -= amount
	world.Population += amount
	rep.Event(o.Player, fmt.Sprintf("F%d unloaded %d population at W%d.", fleet.ID, amount, world.ID), EventLogistics)
}

func (o *JettisonOrder) Execute(s *State, rep Reporter) {
	fleet := s.GetFleet(o.FleetID)
	if fleet == nil || fleet.Owner != o.Player || fleet.Cargo == 0 {
		return
	}
	amount := fleet.Cargo
	if o.HasAmount && o.Amount < amount {
		amount = o.Amount
	}
	fleet.Cargo -= amount
	rep.Event(o.Player, fmt.Sprintf("F%d: Jettisoned %d cargo", fleet.ID, amount), EventLogistics)
}

// Consumer goods pay on a decaying schedule per world: a player's first
// delivery to a world pays ten points per unit, the fifth and later pay one.
var consumerGoodsSchedule = []int{10, 8, 5, 3, 1}

func (o *ConsumerGoodsOrder) Execute(s *State, rep Reporter) {
	if o.Player.CharacterType != ClassMerchant {
		return
	}
	fleet := s.GetFleet(o.FleetID)
	if fleet == nil || fleet.Owner != o.Player || fleet.Cargo == 0 {
		return
	}
	world := fleet.World

	amount := fleet.Cargo
	if o.HasAmount && o.Amount < amount {
		amount = o.Amount
	}

	if world.Deliveries == nil {
		world.Deliveries = make(map[int]int)
	}
	count := world.Deliveries[o.Player.ID]
	rate := consumerGoodsSchedule[len(consumerGoodsSchedule)-1]
	if count < len(consumerGoodsSchedule) {
		rate = consumerGoodsSchedule[count]
	}
	points := rate * amount

	o.Player.BonusScore += points
	world.Deliveries[o.Player.ID] = count + 1
	fleet.Cargo -= amount

	rep.Event(o.Player, fmt.Sprintf("F%d: Delivered %d consumer goods to W%d for %d points!", fleet.ID, amount, world.ID, points), EventMerchant)
}

func (o *PlunderOrder) Execute(s *State, rep Reporter) {
	world := s.GetWorld(o.WorldID)
	if world == nil || world.Owner != o.Player || world.Population == 0 {
		return
	}
	gained := world.Population
	world.Metal += gained
	world.Population = 0

	// Pirates score the haul.
	if o.Player.CharacterType == ClassPirate {
		o.Player.BonusScore += gained
	}

	rep.Event(o.Player, fmt.Sprintf("W%d: Plundered %d population, converted to %d metal!", world.ID, gained, gained), EventPlunder)
}

func (o *ViewArtifactOrder) Execute(s *State, rep Reporter) {
	var artifact *Artifact
	var location string

	switch o.LocationType {
	case "F":
		fleet := s.GetFleet(o.LocationID)
		if fleet != nil && fleet.Owner == o.Player {
			if a := fleet.FindArtifact(o.ArtifactID); a != nil {
				artifact = a
				location = fmt.Sprintf("Fleet %d", fleet.ID)
			}
		}
	case "W":
		for _, fleet := range o.Player.Fleets {
			if fleet.Ships == 0 {
				continue
			}
			if a := fleet.World.FindArtifact(o.ArtifactID); a != nil {
				artifact = a
				location = fmt.Sprintf("World %d", fleet.World.ID)
				break
			}
		}
	default:
		for _, fleet := range o.Player.Fleets {
			if a := fleet.FindArtifact(o.ArtifactID); a != nil {
				artifact = a
				location = fmt.Sprintf("Fleet %d", fleet.ID)
				break
			}
		}
		if artifact == nil {
			for _, world := range o.Player.Worlds {
				if a := world.FindArtifact(o.ArtifactID); a != nil {
					artifact = a
					location = fmt.Sprintf("World %d", world.ID)
					break
				}
			}
		}
	}

	if artifact == nil {
		rep.Event(o.Player, fmt.Sprintf("Artifact %d not found", o.ArtifactID), EventError)
		return
	}
	rep.Event(o.Player, fmt.Sprintf("Artifact %d: '%s' (located at %s)", artifact.ID, artifact.Name, location), EventInfo)
}

func (o *DeclareRelationOrder) Execute(s *State, rep Reporter) {
	fleet := s.GetFleet(o.FleetID)
	target := s.GetFleet(o.TargetFleetID)
	if fleet == nil || fleet.Owner != o.Player || target == nil || target.Owner == nil {
		return
	}
	other := target.Owner

	o.Player.Relations[other.ID] = o.Relation

	rep.Event(o.Player,
		fmt.Sprintf("F%d declared %s with F%d (owned by %s)", fleet.ID, o.Relation, target.ID, other.Name),
		EventDiplomacy)
	rep.Event(other,
		fmt.Sprintf("%s's F%d declared %s with your F%d", o.Player.Name, fleet.ID, o.Relation, target.ID),
		EventDiplomacy)
}
