package game

import (
	"reflect"
	"sort"
)

// Patch is the difference between two ViewStates. Scalar fields are
// pointers so "unchanged" and "changed to zero" stay distinct; worlds and
// fleets carry only the changed entries plus removal lists. Applying a
// patch to the older view reproduces the newer one exactly.
type Patch struct {
	PlayerName    *string            `json:"player_name,omitempty"`
	CharacterType *string            `json:"character_type,omitempty"`
	Score         *int               `json:"score,omitempty"`
	GameTurn      *int               `json:"game_turn,omitempty"`
	TimeRemaining *int               `json:"time_remaining,omitempty"`
	PlayersReady  *int               `json:"players_ready,omitempty"`
	TotalPlayers  *int               `json:"total_players,omitempty"`
	Players       []PlayerSummary    `json:"players,omitempty"`
	Orders        *[]string          `json:"orders,omitempty"`
	Worlds        map[int]*WorldView `json:"worlds,omitempty"`
	RemovedWorlds []int              `json:"removed_worlds,omitempty"`
	Fleets        []*FleetView       `json:"fleets,omitempty"`
	RemovedFleets []int              `json:"removed_fleets,omitempty"`
}

// Empty reports whether the patch carries no changes.
func (p *Patch) Empty() bool {
	return p.PlayerName == nil && p.CharacterType == nil && p.Score == nil &&
		p.GameTurn == nil && p.TimeRemaining == nil && p.PlayersReady == nil &&
		p.TotalPlayers == nil && p.Players == nil && p.Orders == nil &&
		p.Worlds == nil && p.RemovedWorlds == nil &&
		p.Fleets == nil && p.RemovedFleets == nil
}

// Diff computes the patch that turns old into new.
func Diff(oldView, newView *ViewState) *Patch {
	p := &Patch{}

	if oldView.PlayerName != newView.PlayerName {
		v := newView.PlayerName
		p.PlayerName = &v
	}
	if oldView.CharacterType != newView.CharacterType {
		v := newView.CharacterType
		p.CharacterType = &v
	}
	if oldView.Score != newView.Score {
		v := newView.Score
		p.Score = &v
	}
	if oldView.GameTurn != newView.GameTurn {
		v := newView.GameTurn
		p.GameTurn = &v
	}
	if oldView.TimeRemaining != newView.TimeRemaining {
		v := newView.TimeRemaining
		p.TimeRemaining = &v
	}
	if oldView.PlayersReady != newView.PlayersReady {
		v := newView.PlayersReady
		p.PlayersReady = &v
	}
	if oldView.TotalPlayers != newView.TotalPlayers {
		v := newView.TotalPlayers
		p.TotalPlayers = &v
	}
	if !reflect.DeepEqual(oldView.Players, newView.Players) {
		p.Players = newView.Players
	}
	if !reflect.DeepEqual(oldView.Orders, newView.Orders) {
		v := newView.Orders
		p.Orders = &v
	}

	for wid, w := range newView.Worlds {
		old, ok := oldView.Worlds[wid]
		if !ok || !reflect.DeepEqual(old, w) {
			if p.Worlds == nil {
				p.Worlds = make(map[int]*WorldView)
			}
			p.Worlds[wid] = w
		}
	}
	for wid := range oldView.Worlds {
		if _, ok := newView.Worlds[wid]; !ok {
			p.RemovedWorlds = append(p.RemovedWorlds, wid)
		}
	}

	oldFleets := make(map[int]*FleetView, len(oldView.Fleets))
	for _, f := range oldView.Fleets {
		oldFleets[f.ID] = f
	}
	newFleets := make(map[int]*FleetView, len(newView.Fleets))
	for _, f := range newView.Fleets {
		newFleets[f.ID] = f
		old, ok := oldFleets[f.ID]
		if !ok || !reflect.DeepEqual(old, f) {
			p.Fleets = append(p.Fleets, f)
		}
	}
	for _, f := range oldView.Fleets {
		if _, ok := newFleets[f.ID]; !ok {
			p.RemovedFleets = append(p.RemovedFleets, f.ID)
		}
	}

	return p
}

// Apply produces the view that results from patching base. Base is not
// mutated.
func Apply(base *ViewState, p *Patch) *ViewState {
	out := &ViewState{
		PlayerName:    base.PlayerName,
		CharacterType: base.CharacterType,
		Score:         base.Score,
		GameTurn:      base.GameTurn,
		TimeRemaining: base.TimeRemaining,
		PlayersReady:  base.PlayersReady,
		TotalPlayers:  base.TotalPlayers,
		Players:       base.Players,
		Orders:        base.Orders,
		Worlds:        make(map[int]*WorldView, len(base.Worlds)),
	}
	for wid, w := range base.Worlds {
		out.Worlds[wid] = w
	}
	out.Fleets = append(out.Fleets, base.Fleets...)

	if p.PlayerName != nil {
		out.PlayerName = *p.PlayerName
	}
	if p.CharacterType != nil {
		out.CharacterType = *p.CharacterType
	}
	if p.Score != nil {
		out.Score = *p.Score
	}
	if p.GameTurn != nil {
		out.GameTurn = *p.GameTurn
	}
	if p.TimeRemaining != nil {
		out.TimeRemaining = *p.TimeRemaining
	}
	if p.PlayersReady != nil {
		out.PlayersReady = *p.PlayersReady
	}
	if p.TotalPlayers != nil {
		out.TotalPlayers = *p.TotalPlayers
	}
	if p.Players != nil {
		out.Players = p.Players
	}
	if p.Orders != nil {
		out.Orders = *p.Orders
	}

	for wid, w := range p.Worlds {
		out.Worlds[wid] = w
	}
	for _, wid := range p.RemovedWorlds {
		delete(out.Worlds, wid)
	}

	if len(p.Fleets) > 0 || len(p.RemovedFleets) > 0 {
		merged := make(map[int]*FleetView, len(out.Fleets))
		for _, f := range out.Fleets {
			merged[f.ID] = f
		}
		for _, f := range p.Fleets {
			merged[f.ID] = f
		}
		for _, fid := range p.RemovedFleets {
			delete(merged, fid)
		}
		out.Fleets = out.Fleets[:0:0]
		for _, f := range merged {
			out.Fleets = append(out.Fleets, f)
		}
		sort.Slice(out.Fleets, func(i, j int) bool { return out.Fleets[i].ID < out.Fleets[j].ID })
	}

	return out
}
