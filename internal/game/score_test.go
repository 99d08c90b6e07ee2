package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreEmpireBuilder(t *testing.T) {
	s := NewState(1)
	p := s.AddPlayer()
	p.CharacterType = ClassEmpireBuilder
	w := addWorld(s, 1)
	ownWorld(w, p)
	w.Population = 25
	w.Industry = 3
	w.Mines = 2

	assert.Equal(t, 7, CalculateScore(p))
	assert.Equal(t, 7, p.Score)
}

func TestScorePirateFleets(t *testing.T) {
	s := NewState(1)
	p := s.AddPlayer()
	p.CharacterType = ClassPirate
	w := addWorld(s, 1)
	addFleet(s, 1, p, w, 5)
	addFleet(s, 2, p, w, 0)

	assert.Equal(t, 6, CalculateScore(p))
}

func TestScoreBerserkerRobotWorlds(t *testing.T) {
	s := NewState(2)
	p := s.AddPlayer()
	p.CharacterType = ClassBerserker
	w1 := addWorld(s, 1)
	w2 := addWorld(s, 2)
	ownWorld(w1, p)
	ownWorld(w2, p)
	w1.PopulationType = PopulationRobot

	assert.Equal(t, 5, CalculateScore(p))
}

func TestScoreApostle(t *testing.T) {
	s := NewState(2)
	p := s.AddPlayer()
	p.CharacterType = ClassApostle
	w1 := addWorld(s, 1)
	w2 := addWorld(s, 2)
	ownWorld(w1, p)
	ownWorld(w2, p)
	w1.PopulationType = PopulationApostle
	w1.Population = 30

	// 5 per world, 5 for the converted world, 3 for thirty converts.
	assert.Equal(t, 18, CalculateScore(p))
}

func TestScoreStandardArtifacts(t *testing.T) {
	s := NewState(1)
	p := s.AddPlayer()
	p.CharacterType = ClassEmpireBuilder
	w := addWorld(s, 1)
	ownWorld(w, p)

	tests := []struct {
		name  string
		score int
	}{
		{"Treasure of Polaris", 20},
		{"Slippers of Venus", 10},
		{"Radioactive Isotope", -30},
		{"Lesser of Two Evils", -15},
		{"Black Box", 0},
		{"Nebula Scroll 2", 0},
		{"Platinum Crown", 15},
		{"Platinum Sphinx", 5},
		{"Arcturian Crown", 5},
		{"Plastic Crown", 0},
		{"Plastic Sphinx", -10},
		{"Gold Shekel", 0},
	}
	for _, tc := range tests {
		w.Artifacts = []*Artifact{{ID: 1, Name: tc.name}}
		assert.Equal(t, tc.score, CalculateScore(p), tc.name)
	}
}

func TestScoreArtifactCollector(t *testing.T) {
	s := NewState(1)
	p := s.AddPlayer()
	p.CharacterType = ClassArtifactCollector
	w := addWorld(s, 1)
	ownWorld(w, p)

	tests := []struct {
		name  string
		score int
	}{
		{"Treasure of Polaris", 30},
		{"Ancient Pyramid", 90},
		{"Ancient Sphinx", 30},
		{"Vegan Pyramid", 30},
		{"Plastic Pyramid", 0},
		{"Plastic Sphinx", 0},
		{"Gold Shekel", 15},
	}
	for _, tc := range tests {
		w.Artifacts = []*Artifact{{ID: 1, Name: tc.name}}
		assert.Equal(t, tc.score, CalculateScore(p), tc.name)
	}
}

func TestBonusScoreSurvivesRescoring(t *testing.T) {
	s := NewState(1)
	p := s.AddPlayer()
	p.CharacterType = ClassMerchant
	p.BonusScore = 42

	// Rescoring recomputes asset points but keeps the accumulated
	// transactional total.
	assert.Equal(t, 42, CalculateScore(p))
	assert.Equal(t, 42, CalculateScore(p))
}
