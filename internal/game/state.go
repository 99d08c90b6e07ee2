package game

import (
	"time"
)

// Default turn timing. The live deadline is the mean of the joined players'
// preferences, clamped between these bounds.
const (
	DefaultTurnDuration = 180 * time.Second
	MinTurnDuration     = 30 * time.Second
	MaxTurnDuration     = 24 * time.Hour
)

// State is the entity store: every world, fleet, artifact, and player in one
// game. It carries no locking of its own; the connection layer serializes
// order admission and turn processing around it.
type State struct {
	MapSize   int
	Worlds    map[int]*World
	Fleets    map[int]*Fleet
	Artifacts map[int]*Artifact
	Players   map[int]*Player

	GameTurn     int
	TurnEndTime  time.Time
	TurnDuration time.Duration

	nextPlayerID int
	nextFleetID  int
}

// NewState creates an empty state sized for mapSize worlds. Call
// GenerateGalaxy to populate it.
func NewState(mapSize int) *State {
	return &State{
		MapSize:      mapSize,
		Worlds:       make(map[int]*World),
		Fleets:       make(map[int]*Fleet),
		Artifacts:    make(map[int]*Artifact),
		Players:      make(map[int]*Player),
		TurnDuration: DefaultTurnDuration,
		nextPlayerID: 1,
		nextFleetID:  1,
	}
}

// GetWorld returns the world with the given id, or nil.
func (s *State) GetWorld(id int) *World {
	return s.Worlds[id]
}

// GetFleet returns the fleet with the given id, or nil.
func (s *State) GetFleet(id int) *Fleet {
	return s.Fleets[id]
}

// GetArtifact returns the artifact with the given id, or nil.
func (s *State) GetArtifact(id int) *Artifact {
	return s.Artifacts[id]
}

// GetPlayerByName returns the joined player with the given display name.
func (s *State) GetPlayerByName(name string) *Player {
	for _, p := range s.Players {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// AddPlayer registers a new, not-yet-joined player and returns it.
func (s *State) AddPlayer() *Player {
	p := &Player{
		ID:               s.nextPlayerID,
		CharacterType:    ClassEmpireBuilder,
		KnownWorlds:      make(map[int]int),
		Relations:        make(map[int]Relation),
		TurnTimerMinutes: 3,
	}
	s.nextPlayerID++
	s.Players[p.ID] = p
	return p
}

// RemovePlayer drops a player from the roster. Their worlds and fleets
// revert to neutral.
func (s *State) RemovePlayer(p *Player) {
	for _, w := range p.Worlds {
		w.Owner = nil
	}
	for _, f := range p.Fleets {
		f.Owner = nil
	}
	p.Worlds = nil
	p.Fleets = nil
	delete(s.Players, p.ID)
}

// AllPlayers returns the current roster in unspecified order.
func (s *State) AllPlayers() []*Player {
	out := make([]*Player, 0, len(s.Players))
	for _, p := range s.Players {
		out = append(out, p)
	}
	return out
}

// ReadyCount returns how many joined players have signaled TURN.
func (s *State) ReadyCount() int {
	n := 0
	for _, p := range s.Players {
		if p.Ready {
			n++
		}
	}
	return n
}

// AllReady reports whether every joined player has signaled TURN. False
// when nobody has joined yet.
func (s *State) AllReady() bool {
	joined := 0
	for _, p := range s.Players {
		if !p.Joined() {
			continue
		}
		joined++
		if !p.Ready {
			return false
		}
	}
	return joined > 0
}

// AverageTurnDuration is the mean of the joined players' preferred turn
// lengths, clamped to the configured bounds.
func (s *State) AverageTurnDuration() time.Duration {
	total := 0
	n := 0
	for _, p := range s.Players {
		if p.Name == "" {
			continue
		}
		total += p.TurnTimerMinutes
		n++
	}
	if n == 0 {
		return DefaultTurnDuration
	}
	d := time.Duration(total) * time.Minute / time.Duration(n)
	if d < MinTurnDuration {
		d = MinTurnDuration
	}
	if d > MaxTurnDuration {
		d = MaxTurnDuration
	}
	return d
}

// TimeRemaining is the number of whole seconds until the turn deadline,
// floored at zero.
func (s *State) TimeRemaining(now time.Time) int {
	rem := int(s.TurnEndTime.Sub(now).Seconds())
	if rem < 0 {
		rem = 0
	}
	return rem
}

// NewFleet creates a fleet at w with the next free id.
func (s *State) NewFleet(owner *Player, w *World) *Fleet {
	for s.Fleets[s.nextFleetID] != nil {
		s.nextFleetID++
	}
	f := &Fleet{ID: s.nextFleetID, Owner: owner, World: w}
	s.nextFleetID++
	w.Fleets = append(w.Fleets, f)
	s.Fleets[f.ID] = f
	if owner != nil {
		owner.Fleets = append(owner.Fleets, f)
	}
	return f
}

// RecordPresence refreshes p's fog-of-war memory: every world where the
// player has a fleet or owns the world is marked observed this turn, and
// unseen neighbors of those worlds become known.
func (s *State) RecordPresence(p *Player) {
	presence := make(map[int]bool)
	for _, w := range p.Worlds {
		presence[w.ID] = true
	}
	for _, f := range p.Fleets {
		presence[f.World.ID] = true
	}
	for wid := range presence {
		p.KnownWorlds[wid] = s.GameTurn
		w := s.GetWorld(wid)
		if w == nil {
			continue
		}
		for _, neighbor := range w.Connections {
			if _, ok := p.KnownWorlds[neighbor]; !ok {
				p.KnownWorlds[neighbor] = s.GameTurn
			}
		}
	}
}
