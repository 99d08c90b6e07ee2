package game

import "fmt"

// CheckWorldOwnership settles who holds a world after combat and movement.
// A world with no population holds nobody, garrison or not. Otherwise a
// garrisoned world keeps its owner, a single player with armed fleets in
// orbit captures it immediately, and multiple claimants or an empty sky
// neutralize it.
func CheckWorldOwnership(w *World, rep Reporter) bool {
	if w.Population == 0 {
		if w.Owner == nil {
			return false
		}
		old := w.Owner
		old.RemoveWorld(w)
		w.Owner = nil
		rep.Event(old, fmt.Sprintf("World %d is depopulated, reverted to neutral.", w.ID), EventCapture)
		return true
	}

	defended := w.Owner != nil && w.HasGarrison()

	claimants := make(map[*Player]bool)
	for _, f := range w.Fleets {
		if f.Ships > 0 && f.Owner != nil {
			claimants[f.Owner] = true
		}
	}

	switch {
	case defended:
		return false
	case len(claimants) == 1:
		var newOwner *Player
		for p := range claimants {
			newOwner = p
		}
		if w.Owner == newOwner {
			return false
		}
		old := w.Owner
		if old != nil {
			old.RemoveWorld(w)
			rep.Event(old, fmt.Sprintf("Lost World %d to %s.", w.ID, newOwner.Name), EventCapture)
		}
		w.Owner = newOwner
		newOwner.Worlds = append(newOwner.Worlds, w)
		rep.Event(newOwner, fmt.Sprintf("Captured World %d!", w.ID), EventCapture)
		return true
	case len(claimants) > 1:
		if w.Owner == nil {
			return false
		}
		old := w.Owner
		old.RemoveWorld(w)
		w.Owner = nil
		rep.Event(old, fmt.Sprintf("World %d contested, reverted to neutral.", w.ID), EventCapture)
		return true
	default:
		if w.Owner == nil {
			return false
		}
		old := w.Owner
		old.RemoveWorld(w)
		w.Owner = nil
		rep.Event(old, fmt.Sprintf("World %d abandoned, reverted to neutral.", w.ID), EventCapture)
		return true
	}
}

// HandleFleetCaptures re-homes empty fleets at a world. With exactly one
// armed presence (fleets or the owner's garrison) the empty hulls change
// hands; with none or several, they go neutral.
func HandleFleetCaptures(w *World, rep Reporter) {
	armed := make(map[*Player]bool)
	for _, f := range w.Fleets {
		if f.Ships > 0 && f.Owner != nil {
			armed[f.Owner] = true
		}
	}
	if w.Owner != nil && w.HasGarrison() {
		armed[w.Owner] = true
	}

	if len(armed) == 1 {
		var sole *Player
		for p := range armed {
			sole = p
		}
		for _, f := range w.Fleets {
			if f.Ships != 0 || f.Owner == sole {
				continue
			}
			old := f.Owner
			if old != nil {
				old.RemoveFleet(f)
				rep.Event(old, fmt.Sprintf("Lost control of empty Fleet %d at World %d.", f.ID, w.ID), EventCombat)
			}
			f.Owner = sole
			sole.Fleets = append(sole.Fleets, f)
			rep.Event(sole, fmt.Sprintf("Captured empty Fleet %d at World %d.", f.ID, w.ID), EventCapture)
		}
		return
	}

	for _, f := range w.Fleets {
		if f.Ships != 0 || f.Owner == nil {
			continue
		}
		old := f.Owner
		old.RemoveFleet(f)
		f.Owner = nil
		rep.Event(old, fmt.Sprintf("Lost control of empty Fleet %d at World %d (Neutralized).", f.ID, w.ID), EventCombat)
	}
}
