package game

import (
	"fmt"
	"time"
)

// Snapshot is the flat, pointer-free form of a State used for persistence.
// Ownership and location are recorded as ids; Restore rebuilds the object
// graph.
type Snapshot struct {
	MapSize             int           `json:"map_size"`
	GameTurn            int           `json:"game_turn"`
	TurnDurationSeconds int           `json:"turn_duration_seconds"`
	TurnEndUnix         int64         `json:"turn_end_unix"`
	NextPlayerID        int           `json:"next_player_id"`
	NextFleetID         int           `json:"next_fleet_id"`
	Worlds              []WorldRec    `json:"worlds"`
	Fleets              []FleetRec    `json:"fleets"`
	Artifacts           []ArtifactRec `json:"artifacts"`
	Players             []PlayerRec   `json:"players"`
}

type WorldRec struct {
	ID             int         `json:"id"`
	Connections    []int       `json:"connections"`
	OwnerID        int         `json:"owner_id,omitempty"`
	Industry       int         `json:"industry"`
	Metal          int         `json:"metal"`
	Mines          int         `json:"mines"`
	Population     int         `json:"population"`
	Limit          int         `json:"limit"`
	IShips         int         `json:"iships"`
	PShips         int         `json:"pships"`
	Homeworld      bool        `json:"key,omitempty"`
	PopulationType string      `json:"population_type,omitempty"`
	BuildCommitted int         `json:"build_committed,omitempty"`
	ArtifactIDs    []int       `json:"artifact_ids,omitempty"`
	Deliveries     map[int]int `json:"deliveries,omitempty"`
}

type FleetRec struct {
	ID          int   `json:"id"`
	OwnerID     int   `json:"owner_id,omitempty"`
	WorldID     int   `json:"world_id"`
	Ships       int   `json:"ships"`
	Cargo       int   `json:"cargo"`
	ArtifactIDs []int `json:"artifact_ids,omitempty"`
}

type ArtifactRec struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type PlayerRec struct {
	ID               int            `json:"id"`
	Name             string         `json:"name"`
	CharacterType    string         `json:"character_type"`
	Score            int            `json:"score"`
	BonusScore       int            `json:"bonus_score"`
	KnownWorlds      map[int]int    `json:"known_worlds,omitempty"`
	Relations        map[int]string `json:"relations,omitempty"`
	TurnTimerMinutes int            `json:"turn_timer_minutes"`
}

// TakeSnapshot flattens the state. Per-turn ephemera (queued orders, ready
// flags, fleet movement flags) are deliberately not captured; a restored
// game begins at a turn boundary.
func (s *State) TakeSnapshot() *Snapshot {
	snap := &Snapshot{
		MapSize:             s.MapSize,
		GameTurn:            s.GameTurn,
		TurnDurationSeconds: int(s.TurnDuration.Seconds()),
		TurnEndUnix:         s.TurnEndTime.Unix(),
		NextPlayerID:        s.nextPlayerID,
		NextFleetID:         s.nextFleetID,
	}

	for _, a := range s.Artifacts {
		snap.Artifacts = append(snap.Artifacts, ArtifactRec{ID: a.ID, Name: a.Name})
	}

	for _, w := range s.Worlds {
		rec := WorldRec{
			ID:             w.ID,
			Connections:    append([]int(nil), w.Connections...),
			Industry:       w.Industry,
			Metal:          w.Metal,
			Mines:          w.Mines,
			Population:     w.Population,
			Limit:          w.Limit,
			IShips:         w.IShips,
			PShips:         w.PShips,
			Homeworld:      w.Homeworld,
			PopulationType: w.PopulationType,
			BuildCommitted: w.BuildCommitted,
			Deliveries:     w.Deliveries,
		}
		if w.Owner != nil {
			rec.OwnerID = w.Owner.ID
		}
		for _, a := range w.Artifacts {
			rec.ArtifactIDs = append(rec.ArtifactIDs, a.ID)
		}
		snap.Worlds = append(snap.Worlds, rec)
	}

	for _, f := range s.Fleets {
		rec := FleetRec{
			ID:      f.ID,
			WorldID: f.World.ID,
			Ships:   f.Ships,
			Cargo:   f.Cargo,
		}
		if f.Owner != nil {
			rec.OwnerID = f.Owner.ID
		}
		for _, a := range f.Artifacts {
			rec.ArtifactIDs = append(rec.ArtifactIDs, a.ID)
		}
		snap.Fleets = append(snap.Fleets, rec)
	}

	for _, p := range s.Players {
		rec := PlayerRec{
			ID:               p.ID,
			Name:             p.Name,
			CharacterType:    p.CharacterType,
			Score:            p.Score,
			BonusScore:       p.BonusScore,
			KnownWorlds:      p.KnownWorlds,
			TurnTimerMinutes: p.TurnTimerMinutes,
		}
		if len(p.Relations) > 0 {
			rec.Relations = make(map[int]string, len(p.Relations))
			for id, r := range p.Relations {
				rec.Relations[id] = string(r)
			}
		}
		snap.Players = append(snap.Players, rec)
	}

	return snap
}

// Restore rebuilds a live State from a snapshot.
func Restore(snap *Snapshot) (*State, error) {
	s := NewState(snap.MapSize)
	s.GameTurn = snap.GameTurn
	s.TurnDuration = time.Duration(snap.TurnDurationSeconds) * time.Second
	s.TurnEndTime = time.Unix(snap.TurnEndUnix, 0)
	s.nextPlayerID = snap.NextPlayerID
	s.nextFleetID = snap.NextFleetID

	for _, rec := range snap.Artifacts {
		s.Artifacts[rec.ID] = &Artifact{ID: rec.ID, Name: rec.Name}
	}

	for _, rec := range snap.Players {
		p := &Player{
			ID:               rec.ID,
			Name:             rec.Name,
			CharacterType:    rec.CharacterType,
			Score:            rec.Score,
			BonusScore:       rec.BonusScore,
			KnownWorlds:      rec.KnownWorlds,
			Relations:        make(map[int]Relation, len(rec.Relations)),
			TurnTimerMinutes: rec.TurnTimerMinutes,
		}
		if p.KnownWorlds == nil {
			p.KnownWorlds = make(map[int]int)
		}
		for id, r := range rec.Relations {
			p.Relations[id] = Relation(r)
		}
		s.Players[p.ID] = p
	}

	for _, rec := range snap.Worlds {
		w := &World{
			ID:             rec.ID,
			Connections:    rec.Connections,
			Industry:       rec.Industry,
			Metal:          rec.Metal,
			Mines:          rec.Mines,
			Population:     rec.Population,
			Limit:          rec.Limit,
			IShips:         rec.IShips,
			PShips:         rec.PShips,
			Homeworld:      rec.Homeworld,
			PopulationType: rec.PopulationType,
			BuildCommitted: rec.BuildCommitted,
			Deliveries:     rec.Deliveries,
		}
		if w.Deliveries == nil {
			w.Deliveries = make(map[int]int)
		}
		if rec.OwnerID != 0 {
			owner := s.Players[rec.OwnerID]
			if owner == nil {
				return nil, fmt.Errorf("world %d: unknown owner %d", rec.ID, rec.OwnerID)
			}
			w.Owner = owner
			owner.Worlds = append(owner.Worlds, w)
		}
		for _, aid := range rec.ArtifactIDs {
			a := s.Artifacts[aid]
			if a == nil {
				return nil, fmt.Errorf("world %d: unknown artifact %d", rec.ID, aid)
			}
			w.Artifacts = append(w.Artifacts, a)
		}
		s.Worlds[w.ID] = w
	}

	for _, rec := range snap.Fleets {
		w := s.Worlds[rec.WorldID]
		if w == nil {
			return nil, fmt.Errorf("fleet %d: unknown world %d", rec.ID, rec.WorldID)
		}
		f := &Fleet{
			ID:    rec.ID,
			World: w,
			Ships: rec.Ships,
			Cargo: rec.Cargo,
		}
		if rec.OwnerID != 0 {
			owner := s.Players[rec.OwnerID]
			if owner == nil {
				return nil, fmt.Errorf("fleet %d: unknown owner %d", rec.ID, rec.OwnerID)
			}
			f.Owner = owner
			owner.Fleets = append(owner.Fleets, f)
		}
		for _, aid := range rec.ArtifactIDs {
			a := s.Artifacts[aid]
			if a == nil {
				return nil, fmt.Errorf("fleet %d: unknown artifact %d", rec.ID, aid)
			}
			f.Artifacts = append(f.Artifacts, a)
		}
		w.Fleets = append(w.Fleets, f)
		s.Fleets[f.ID] = f
	}

	return s, nil
}
