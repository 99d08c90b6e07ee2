package game

import (
	"fmt"
	"math/rand"

	"github.com/dominikbraun/graph"
)

// Galaxy generation bounds, per world.
const (
	maxWorldIndustry = 10
	maxWorldMines    = 10
	minWorldLimit    = 10
	maxWorldLimit    = 50

	neutralFleetCount = 255
	minConnections    = 2
	maxConnections    = 4
)

// Homeworld setup applied by JOIN.
const (
	HomeworldPopulation    = 50
	HomeworldIndustry      = 30
	HomeworldMetal         = 30
	HomeworldMines         = 2
	HomeworldIShips        = 1
	HomeworldPShips        = 1
	HomeworldStartingShips = 10
	HomeworldFleetCount    = 5
)

var artifactTypes = []string{
	"Platinum", "Ancient", "Vegan", "Blessed", "Arcturian",
	"Silver", "Titanium", "Gold", "Radiant", "Plastic",
}

var artifactItems = []string{
	"Lodestar", "Pyramid", "Stardust", "Shekel", "Crown",
	"Sword", "Moonstone", "Sepulchre", "Sphinx",
}

var specialArtifacts = []string{
	"Treasure of Polaris", "Slippers of Venus", "Radioactive Isotope",
	"Lesser of Two Evils", "Black Box",
	"Nebula Scroll 1", "Nebula Scroll 2", "Nebula Scroll 3",
	"Nebula Scroll 4", "Nebula Scroll 5",
}

// GenerateGalaxy populates the state with a connected random galaxy: worlds
// with random resources, an undirected adjacency graph, neutral fleets, and
// the artifact catalog scattered across worlds.
func (s *State) GenerateGalaxy(rng *rand.Rand) error {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}

	g := graph.New(graph.IntHash)
	for i := 1; i <= s.MapSize; i++ {
		w := &World{
			ID:             i,
			Industry:       rng.Intn(maxWorldIndustry + 1),
			Mines:          rng.Intn(maxWorldMines + 1),
			Limit:          minWorldLimit + rng.Intn(maxWorldLimit-minWorldLimit+1),
			PopulationType: PopulationHuman,
			Deliveries:     make(map[int]int),
		}
		w.Population = rng.Intn(w.Limit + 1)
		s.Worlds[i] = w
		if err := g.AddVertex(i); err != nil {
			return fmt.Errorf("add world %d: %w", i, err)
		}
	}

	// Random degree-bounded edges. Self loops and duplicates are rejected
	// by the graph itself.
	degree := make(map[int]int, s.MapSize)
	for i := 1; i <= s.MapSize; i++ {
		want := minConnections + rng.Intn(maxConnections-minConnections+1)
		attempts := 0
		for degree[i] < want && attempts < s.MapSize*4 {
			attempts++
			target := 1 + rng.Intn(s.MapSize)
			if target == i {
				continue
			}
			if err := g.AddEdge(i, target); err != nil {
				continue
			}
			degree[i]++
			degree[target]++
		}
	}

	// Stitch any disconnected components onto world 1 so every world is
	// reachable.
	if err := s.connectComponents(g); err != nil {
		return err
	}

	adjacency, err := g.AdjacencyMap()
	if err != nil {
		return fmt.Errorf("adjacency map: %w", err)
	}
	for id, neighbors := range adjacency {
		w := s.Worlds[id]
		for neighbor := range neighbors {
			w.Connections = append(w.Connections, neighbor)
		}
	}

	for i := 0; i < neutralFleetCount; i++ {
		w := s.Worlds[1+rng.Intn(s.MapSize)]
		s.NewFleet(nil, w)
	}

	aid := 1
	place := func(name string) {
		a := &Artifact{ID: aid, Name: name}
		s.Artifacts[aid] = a
		aid++
		w := s.Worlds[1+rng.Intn(s.MapSize)]
		w.Artifacts = append(w.Artifacts, a)
	}
	for _, t := range artifactTypes {
		for _, item := range artifactItems {
			place(t + " " + item)
		}
	}
	for _, name := range specialArtifacts {
		place(name)
	}

	return nil
}

// connectComponents links every component not containing world 1 to world 1
// with a single extra lane.
func (s *State) connectComponents(g graph.Graph[int, int]) error {
	adjacency, err := g.AdjacencyMap()
	if err != nil {
		return fmt.Errorf("adjacency map: %w", err)
	}

	seen := make(map[int]bool, s.MapSize)
	queue := []int{1}
	seen[1] = true
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for neighbor := range adjacency[cur] {
			if !seen[neighbor] {
				seen[neighbor] = true
				queue = append(queue, neighbor)
			}
		}
	}

	for i := 2; i <= s.MapSize; i++ {
		if seen[i] {
			continue
		}
		if err := g.AddEdge(1, i); err != nil {
			return fmt.Errorf("connect world %d: %w", i, err)
		}
		// The new lane makes i's whole component reachable.
		seen[i] = true
		queue = []int{i}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for neighbor := range adjacency[cur] {
				if !seen[neighbor] {
					seen[neighbor] = true
					queue = append(queue, neighbor)
				}
			}
		}
	}
	return nil
}
