package game

import (
	"encoding/json"
	"sort"
	"time"
)

// NeutralOwnerName is how unowned fleets show up on the wire.
const NeutralOwnerName = "[Neutral]"

// Stat is a possibly-masked integer. Unknown values marshal as "?" so a
// client can render fogged worlds without a separate visibility flag.
type Stat struct {
	Known bool
	Value int
}

// KnownStat wraps a visible value.
func KnownStat(v int) Stat { return Stat{Known: true, Value: v} }

// UnknownStat is the masked value.
var UnknownStat = Stat{}

func (s Stat) MarshalJSON() ([]byte, error) {
	if !s.Known {
		return json.Marshal("?")
	}
	return json.Marshal(s.Value)
}

func (s *Stat) UnmarshalJSON(data []byte) error {
	var v int
	if err := json.Unmarshal(data, &v); err == nil {
		*s = Stat{Known: true, Value: v}
		return nil
	}
	*s = Stat{}
	return nil
}

// ArtifactView is the wire shape of an artifact.
type ArtifactView struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// WorldView is one world as a specific player sees it. Connections and the
// owner name are always reported for known worlds; resources are masked
// unless the player owns the world or has a fleet there.
type WorldView struct {
	ID             int            `json:"id"`
	Connections    []int          `json:"connections"`
	TurnLastSeen   int            `json:"turn_last_seen"`
	Owner          string         `json:"owner,omitempty"`
	Industry       Stat           `json:"industry"`
	Metal          Stat           `json:"metal"`
	Mines          Stat           `json:"mines"`
	Population     Stat           `json:"population"`
	Limit          Stat           `json:"limit"`
	IShips         Stat           `json:"iships"`
	PShips         Stat           `json:"pships"`
	Homeworld      bool           `json:"key,omitempty"`
	PopulationType string         `json:"population_type,omitempty"`
	Fleets         []int          `json:"fleets"`
	Artifacts      []ArtifactView `json:"artifacts"`
}

// FleetView is one fleet as a specific player sees it. Ship counts are
// public; cargo is private to the owner.
type FleetView struct {
	ID          int            `json:"id"`
	Owner       string         `json:"owner"`
	World       int            `json:"world"`
	Ships       int            `json:"ships"`
	Cargo       Stat           `json:"cargo"`
	Moved       bool           `json:"moved"`
	IsAmbushing bool           `json:"is_ambushing"`
	Artifacts   []ArtifactView `json:"artifacts"`
}

// PlayerSummary is a scoreboard row.
type PlayerSummary struct {
	Name          string `json:"name"`
	Score         int    `json:"score"`
	CharacterType string `json:"character_type"`
	Ready         bool   `json:"ready"`
}

// ViewState is the complete per-player picture of the game: every known
// world (masked per fog of war), visible fleets, the scoreboard, and the
// player's own queue. It is the unit both full updates and deltas are
// computed over.
type ViewState struct {
	Worlds        map[int]*WorldView `json:"worlds"`
	Fleets        []*FleetView       `json:"fleets"`
	PlayerName    string             `json:"player_name"`
	CharacterType string             `json:"character_type"`
	Score         int                `json:"score"`
	GameTurn      int                `json:"game_turn"`
	TimeRemaining int                `json:"time_remaining"`
	PlayersReady  int                `json:"players_ready"`
	TotalPlayers  int                `json:"total_players"`
	Players       []PlayerSummary    `json:"players"`
	Orders        []string           `json:"orders"`
}

// BuildView assembles p's current picture of the game. Observing refreshes
// the player's fog-of-war memory the same way turn processing does.
func BuildView(s *State, p *Player, now time.Time) *ViewState {
	s.RecordPresence(p)

	presence := make(map[int]bool)
	for _, w := range p.Worlds {
		presence[w.ID] = true
	}
	for _, f := range p.Fleets {
		presence[f.World.ID] = true
	}

	worlds := make(map[int]*WorldView, len(p.KnownWorlds))
	for wid, turn := range p.KnownWorlds {
		w := s.GetWorld(wid)
		if w == nil {
			continue
		}
		worlds[wid] = buildWorldView(w, p, turn)
	}

	var fleets []*FleetView
	for _, f := range s.Fleets {
		if f.Owner == p || presence[f.World.ID] {
			fleets = append(fleets, buildFleetView(f, p))
		}
	}
	sort.Slice(fleets, func(i, j int) bool { return fleets[i].ID < fleets[j].ID })

	orders := make([]string, 0, len(p.Orders))
	for _, o := range p.Orders {
		orders = append(orders, o.Description())
	}

	players := make([]PlayerSummary, 0, len(s.Players))
	for _, other := range s.AllPlayers() {
		players = append(players, PlayerSummary{
			Name:          other.Name,
			Score:         other.Score,
			CharacterType: other.CharacterType,
			Ready:         other.Ready,
		})
	}
	sort.Slice(players, func(i, j int) bool { return players[i].Name < players[j].Name })

	return &ViewState{
		Worlds:        worlds,
		Fleets:        fleets,
		PlayerName:    p.Name,
		CharacterType: p.CharacterType,
		Score:         p.Score,
		GameTurn:      s.GameTurn,
		TimeRemaining: s.TimeRemaining(now),
		PlayersReady:  s.ReadyCount(),
		TotalPlayers:  len(s.Players),
		Players:       players,
		Orders:        orders,
	}
}

func buildWorldView(w *World, viewer *Player, turnLastSeen int) *WorldView {
	v := &WorldView{
		ID:           w.ID,
		Connections:  append([]int(nil), w.Connections...),
		TurnLastSeen: turnLastSeen,
	}
	sort.Ints(v.Connections)
	if w.Owner != nil {
		v.Owner = w.Owner.Name
	}

	visible := w.Owner == viewer
	if !visible {
		for _, f := range w.Fleets {
			if f.Owner == viewer {
				visible = true
				break
			}
		}
	}
	if !visible {
		v.Fleets = []int{}
		v.Artifacts = []ArtifactView{}
		return v
	}

	v.Industry = KnownStat(w.Industry)
	v.Metal = KnownStat(w.Metal)
	v.Mines = KnownStat(w.Mines)
	v.Population = KnownStat(w.Population)
	v.Limit = KnownStat(w.Limit)
	v.IShips = KnownStat(w.IShips)
	v.PShips = KnownStat(w.PShips)
	v.Homeworld = w.Homeworld
	v.PopulationType = w.PopulationType
	v.Fleets = make([]int, 0, len(w.Fleets))
	for _, f := range w.Fleets {
		v.Fleets = append(v.Fleets, f.ID)
	}
	sort.Ints(v.Fleets)
	v.Artifacts = artifactViews(w.Artifacts)
	return v
}

func buildFleetView(f *Fleet, viewer *Player) *FleetView {
	v := &FleetView{
		ID:          f.ID,
		Owner:       NeutralOwnerName,
		World:       f.World.ID,
		Ships:       f.Ships,
		Moved:       f.Moved,
		IsAmbushing: f.IsAmbushing,
		Artifacts:   artifactViews(f.Artifacts),
	}
	if f.Owner != nil {
		v.Owner = f.Owner.Name
	}
	if f.Owner == viewer {
		v.Cargo = KnownStat(f.Cargo)
	}
	return v
}

func artifactViews(in []*Artifact) []ArtifactView {
	out := make([]ArtifactView, 0, len(in))
	for _, a := range in {
		out = append(out, ArtifactView{ID: a.ID, Name: a.Name})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
