package game

import (
	"fmt"
	"strings"
)

func (o *MoveOrder) Execute(s *State, rep Reporter) {
	fleet := s.GetFleet(o.FleetID)
	if fleet == nil || fleet.Owner != o.Player || fleet.Ships == 0 {
		return
	}
	if len(o.Path) == 0 {
		return
	}

	from := fleet.World

	// Walk the path hop by hop. An armed hostile ambush at any hop stops
	// the fleet there.
	for _, destID := range o.Path {
		dest := s.GetWorld(destID)
		if dest == nil {
			continue
		}
		var ambushers []*Fleet
		for _, f := range dest.Fleets {
			if f.IsAmbushing && f.Owner != o.Player && f.Ships > 0 {
				ambushers = append(ambushers, f)
			}
		}
		if len(ambushers) > 0 {
			springAmbush(fleet, dest, ambushers, rep)
			return
		}
	}

	final := s.GetWorld(o.Path[len(o.Path)-1])
	if final == nil {
		return
	}
	fleet.MoveTo(final)
	fleet.Moved = true
	rep.Event(o.Player, fmt.Sprintf("F%d moved W%d -> W%d.", fleet.ID, from.ID, final.ID), EventInfo)
}

// springAmbush lands the victim at the ambush world and applies damage:
// every ambushing ship contributes two shots, two shots kill one ship.
func springAmbush(victim *Fleet, dest *World, ambushers []*Fleet, rep Reporter) {
	victim.MoveTo(dest)
	victim.Moved = true

	strength := 0
	for _, f := range ambushers {
		strength += f.Ships
	}
	strength *= 2
	damage := ceilDiv(strength, 2)
	victim.Ships = maxInt(0, victim.Ships-damage)

	if victim.Owner != nil {
		rep.Event(victim.Owner,
			fmt.Sprintf("Fleet %d ambushed at World %d! Lost %d ships.", victim.ID, dest.ID, damage),
			EventAmbush)
	}
	for _, f := range ambushers {
		if f.Owner != nil {
			rep.Event(f.Owner,
				fmt.Sprintf("Your Fleet %d ambushed Fleet %d at World %d.", f.ID, victim.ID, dest.ID),
				EventAmbush)
		}
	}
}

func (o *AmbushOrder) Execute(s *State, rep Reporter) {
	fleet := s.GetFleet(o.FleetID)
	if fleet != nil && fleet.Owner == o.Player {
		fleet.IsAmbushing = true
	}
}

func (o *ProbeOrder) Execute(s *State, rep Reporter) {
	target := s.GetWorld(o.TargetWorld)
	if target == nil {
		return
	}

	// Spend one ship from the probing source.
	switch o.SourceType {
	case "F":
		fleet := s.GetFleet(o.SourceID)
		if fleet == nil || fleet.Owner != o.Player || fleet.Ships < 1 {
			return
		}
		fleet.Ships--
	case "I":
		world := s.GetWorld(o.SourceID)
		if world == nil || world.Owner != o.Player || world.IShips < 1 {
			return
		}
		world.IShips--
	case "P":
		world := s.GetWorld(o.SourceID)
		if world == nil || world.Owner != o.Player || world.PShips < 1 {
			return
		}
		world.PShips--
	}

	rep.Event(o.Player, probeReport(target), EventProbe)
	o.Player.KnownWorlds[target.ID] = s.GameTurn
}

func probeReport(w *World) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Probe of W%d: Pop=%d, Ind=%d, Metal=%d, Mines=%d, I%d/P%d",
		w.ID, w.Population, w.Industry, w.Metal, w.Mines, w.IShips, w.PShips)
	if w.Owner != nil {
		fmt.Fprintf(&b, " (owned by %s)", w.Owner.Name)
	} else {
		b.WriteString(" (neutral)")
	}
	present := 0
	for _, f := range w.Fleets {
		if f.Ships > 0 {
			present++
		}
	}
	if present > 0 {
		fmt.Fprintf(&b, ", %d fleets present", present)
	}
	if len(w.Artifacts) > 0 {
		fmt.Fprintf(&b, ", %d artifacts", len(w.Artifacts))
	}
	return b.String()
}
