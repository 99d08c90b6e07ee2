package game

import (
	"fmt"
	"math/rand"
	"strings"
)

// ParseJoinArgs pulls a display name and optional character class out of a
// JOIN argument string ("Alice", "Alice Pirate", "Alice 8000 Pirate"). A
// trailing number, the legacy score vote, is ignored.
func ParseJoinArgs(args string) (name, charType string) {
	charType = ClassEmpireBuilder
	name = strings.TrimSpace(args)

	upper := strings.ToUpper(name)
	for _, ct := range CharacterTypes {
		if strings.HasSuffix(upper, strings.ToUpper(ct)) {
			charType = ct
			name = strings.TrimSpace(name[:len(name)-len(ct)])
			break
		}
	}

	parts := strings.Fields(name)
	if len(parts) > 0 && isDigits(parts[len(parts)-1]) {
		name = strings.Join(parts[:len(parts)-1], " ")
	}
	return name, charType
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Join seeds a player into the game: claims a random unowned world as their
// homeworld with the standard starting economy, scatters any neutral fleets
// parked there, and hands the player five neutral fleets of ten ships each.
func Join(s *State, p *Player, name, charType string, rng *rand.Rand) (*World, error) {
	if name == "" {
		return nil, fmt.Errorf("please provide a name")
	}
	if other := s.GetPlayerByName(name); other != nil && other != p {
		return nil, fmt.Errorf("name %q is taken", name)
	}
	if p.Joined() {
		return nil, fmt.Errorf("you have already joined")
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}

	p.Name = name
	p.CharacterType = charType

	var candidates []*World
	for _, w := range s.Worlds {
		if w.Owner == nil {
			candidates = append(candidates, w)
		}
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("no unowned world available")
	}
	home := candidates[rng.Intn(len(candidates))]

	// Push resident neutral fleets off the homeworld.
	var squatters []*Fleet
	for _, f := range home.Fleets {
		if f.Owner == nil {
			squatters = append(squatters, f)
		}
	}
	for _, f := range squatters {
		dest := home
		for dest == home {
			dest = s.Worlds[1+rng.Intn(s.MapSize)]
		}
		f.MoveTo(dest)
	}

	home.Owner = p
	home.Population = HomeworldPopulation
	home.Industry = HomeworldIndustry
	home.Metal = HomeworldMetal
	home.Mines = HomeworldMines
	home.IShips = HomeworldIShips
	home.PShips = HomeworldPShips
	home.Homeworld = true
	home.PopulationType = PopulationHuman
	p.Worlds = append(p.Worlds, home)

	p.KnownWorlds[home.ID] = s.GameTurn
	for _, neighbor := range home.Connections {
		p.KnownWorlds[neighbor] = s.GameTurn
	}

	var neutral []*Fleet
	for _, f := range s.Fleets {
		if f.Owner == nil && f.World != home {
			neutral = append(neutral, f)
		}
	}
	rng.Shuffle(len(neutral), func(i, j int) { neutral[i], neutral[j] = neutral[j], neutral[i] })
	take := HomeworldFleetCount
	if take > len(neutral) {
		take = len(neutral)
	}
	for _, f := range neutral[:take] {
		f.MoveTo(home)
		f.Owner = p
		f.Ships = HomeworldStartingShips
		p.Fleets = append(p.Fleets, f)
	}

	return home, nil
}
