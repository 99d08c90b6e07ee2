package game

// Character classes. The class tag gates a handful of orders and changes
// build/scrap costs, cargo capacity, and scoring.
const (
	ClassEmpireBuilder     = "Empire Builder"
	ClassMerchant          = "Merchant"
	ClassPirate            = "Pirate"
	ClassArtifactCollector = "Artifact Collector"
	ClassBerserker         = "Berserker"
	ClassApostle           = "Apostle"
)

// CharacterTypes lists every playable class, in JOIN-matching order.
var CharacterTypes = []string{
	ClassEmpireBuilder,
	ClassMerchant,
	ClassPirate,
	ClassArtifactCollector,
	ClassBerserker,
	ClassApostle,
}

// Population kinds a world can hold.
const (
	PopulationHuman   = "human"
	PopulationRobot   = "robot"
	PopulationApostle = "apostle"
)

// Artifact is a unique named item held by exactly one world or fleet at a
// time. Transfers move it between holder lists, never duplicating it.
type Artifact struct {
	ID   int
	Name string
}

// World is a node in the galaxy graph.
type World struct {
	ID             int
	Connections    []int
	Owner          *Player // nil while neutral
	Industry       int
	Metal          int
	Mines          int
	Population     int
	Limit          int
	IShips         int
	PShips         int
	Fleets         []*Fleet
	Artifacts      []*Artifact
	Homeworld      bool
	PopulationType string

	// Population committed to building this turn. Mining output comes
	// only from the uncommitted remainder; reset after production.
	BuildCommitted int

	// Consumer-goods deliveries per player id, for the Merchant's
	// decaying point schedule.
	Deliveries map[int]int
}

// HasGarrison reports whether either defense pool is nonzero.
func (w *World) HasGarrison() bool {
	return w.IShips > 0 || w.PShips > 0
}

// RemoveFleet detaches f from the world's fleet list.
func (w *World) RemoveFleet(f *Fleet) {
	for i, have := range w.Fleets {
		if have == f {
			w.Fleets = append(w.Fleets[:i], w.Fleets[i+1:]...)
			return
		}
	}
}

// FindArtifact returns the held artifact with the given id, or nil.
func (w *World) FindArtifact(id int) *Artifact {
	for _, a := range w.Artifacts {
		if a.ID == id {
			return a
		}
	}
	return nil
}

// RemoveArtifact detaches a from the world's artifact list.
func (w *World) RemoveArtifact(a *Artifact) {
	for i, have := range w.Artifacts {
		if have == a {
			w.Artifacts = append(w.Artifacts[:i], w.Artifacts[i+1:]...)
			return
		}
	}
}

// ConnectedTo reports whether other is a direct neighbor.
func (w *World) ConnectedTo(other int) bool {
	for _, id := range w.Connections {
		if id == other {
			return true
		}
	}
	return false
}

// Fleet is a mobile group of ships located at exactly one world.
type Fleet struct {
	ID    int
	Owner *Player // nil for neutral fleets
	World *World
	Ships int
	Cargo int

	// Per-turn flags, cleared at the end of every turn.
	Moved       bool
	IsAmbushing bool

	Artifacts []*Artifact
}

// CargoCapacity is ships times the owner's cargo multiplier. Merchants
// carry double.
func (f *Fleet) CargoCapacity() int {
	mult := 1
	if f.Owner != nil && f.Owner.CharacterType == ClassMerchant {
		mult = 2
	}
	return f.Ships * mult
}

// FindArtifact returns the held artifact with the given id, or nil.
func (f *Fleet) FindArtifact(id int) *Artifact {
	for _, a := range f.Artifacts {
		if a.ID == id {
			return a
		}
	}
	return nil
}

// RemoveArtifact detaches a from the fleet's artifact list.
func (f *Fleet) RemoveArtifact(a *Artifact) {
	for i, have := range f.Artifacts {
		if have == a {
			f.Artifacts = append(f.Artifacts[:i], f.Artifacts[i+1:]...)
			return
		}
	}
}

// MoveTo relocates the fleet to w, keeping both fleet lists consistent.
func (f *Fleet) MoveTo(w *World) {
	if f.World == w {
		return
	}
	if f.World != nil {
		f.World.RemoveFleet(f)
	}
	f.World = w
	w.Fleets = append(w.Fleets, f)
}

// Relation is a declared diplomatic stance toward another player.
type Relation string

const (
	RelationPeace Relation = "PEACE"
	RelationWar   Relation = "WAR"
)

// Player is one participant. Fleets and Worlds mirror the Owner pointers on
// the entities themselves; ownership changes must keep both sides in sync.
type Player struct {
	ID            int
	Name          string
	CharacterType string
	Score         int

	// BonusScore accumulates transactional points: consumer-goods
	// deliveries, plunder, kills, and shot penalties. Recomputed class
	// scoring adds it back each turn instead of wiping it.
	BonusScore int

	Worlds []*World
	Fleets []*Fleet

	// KnownWorlds maps world id to the turn it was last observed. This is
	// the fog-of-war memory: a known but not currently visible world is
	// still reported, with its resources masked.
	KnownWorlds map[int]int

	// Orders accepted for the current turn, drained at turn processing.
	Orders []Order

	// LastSnapshot is the view most recently sent, used for delta sync.
	LastSnapshot *ViewState

	Relations map[int]Relation

	TurnTimerMinutes int
	Ready            bool
}

// Joined reports whether the player has claimed a homeworld via JOIN.
func (p *Player) Joined() bool {
	return len(p.Worlds) > 0 || len(p.Fleets) > 0
}

// RemoveWorld drops w from the player's owned-world list.
func (p *Player) RemoveWorld(w *World) {
	for i, have := range p.Worlds {
		if have == w {
			p.Worlds = append(p.Worlds[:i], p.Worlds[i+1:]...)
			return
		}
	}
}

// RemoveFleet drops f from the player's owned-fleet list.
func (p *Player) RemoveFleet(f *Fleet) {
	for i, have := range p.Fleets {
		if have == f {
			p.Fleets = append(p.Fleets[:i], p.Fleets[i+1:]...)
			return
		}
	}
}
