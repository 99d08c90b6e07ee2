package game

// Test fixtures. Worlds and fleets are wired by hand so tests control ids
// and topology instead of depending on galaxy generation.

func addWorld(s *State, id int, conns ...int) *World {
	w := &World{
		ID:             id,
		Connections:    conns,
		Limit:          100,
		PopulationType: PopulationHuman,
		Deliveries:     make(map[int]int),
	}
	s.Worlds[id] = w
	return w
}

func addFleet(s *State, id int, owner *Player, w *World, ships int) *Fleet {
	f := &Fleet{ID: id, Owner: owner, World: w, Ships: ships}
	s.Fleets[id] = f
	w.Fleets = append(w.Fleets, f)
	if owner != nil {
		owner.Fleets = append(owner.Fleets, f)
	}
	return f
}

func ownWorld(w *World, p *Player) {
	w.Owner = p
	p.Worlds = append(p.Worlds, w)
}

func addArtifact(s *State, id int, name string) *Artifact {
	a := &Artifact{ID: id, Name: name}
	s.Artifacts[id] = a
	return a
}

// eventRecorder captures report lines for assertions.
type eventRecorder struct {
	lines []string
}

func (r *eventRecorder) Event(p *Player, text, eventType string) {
	r.lines = append(r.lines, text)
}
