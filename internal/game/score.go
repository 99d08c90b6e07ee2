package game

import "strings"

// Per-class greatest-treasure categories. A player's own categories score 5
// per artifact and the combined name ("PLATINUM CROWN") scores 15.
var classArtifactCategories = map[string][2]string{
	ClassEmpireBuilder: {"PLATINUM", "CROWN"},
	ClassMerchant:      {"GOLD", "SHEKEL"},
	ClassPirate:        {"SILVER", "LODESTAR"},
	ClassBerserker:     {"TITANIUM", "SWORD"},
	ClassApostle:       {"BLESSED", "SEPULCHRE"},
}

// CalculateScore recomputes a player's score from their assets plus the
// transactional bonus accumulated during the turn.
func CalculateScore(p *Player) int {
	score := 0
	switch p.CharacterType {
	case ClassEmpireBuilder:
		score = scoreEmpireBuilder(p)
	case ClassMerchant:
		score = scoreMerchant(p)
	case ClassPirate:
		score = scorePirate(p)
	case ClassArtifactCollector:
		score = scoreArtifactCollector(p)
	case ClassBerserker:
		score = scoreBerserker(p)
	case ClassApostle:
		score = scoreApostle(p)
	}
	score += p.BonusScore
	p.Score = score
	return score
}

// Empire Builder: a point per 10 population, per industry, per mine.
func scoreEmpireBuilder(p *Player) int {
	score := 0
	for _, w := range p.Worlds {
		score += w.Population / 10
		score += w.Industry
		score += w.Mines
	}
	return score + scoreArtifactsStandard(p)
}

// Merchant: delivery points are transactional, only artifacts here.
func scoreMerchant(p *Player) int {
	return scoreArtifactsStandard(p)
}

// Pirate: 3 points per fleet key held; plunder is transactional.
func scorePirate(p *Player) int {
	return len(p.Fleets)*3 + scoreArtifactsStandard(p)
}

// Berserker: 5 points per robot world per turn; kills are transactional.
func scoreBerserker(p *Player) int {
	score := 0
	for _, w := range p.Worlds {
		if w.PopulationType == PopulationRobot {
			score += 5
		}
	}
	return score + scoreArtifactsStandard(p)
}

// Apostle: 5 per world, 5 more per fully converted world, 1 per 10
// converts.
func scoreApostle(p *Player) int {
	score := 0
	converts := 0
	for _, w := range p.Worlds {
		score += 5
		if w.PopulationType == PopulationApostle {
			if w.Population > 0 {
				score += 5
			}
			converts += w.Population
		}
	}
	return score + converts/10 + scoreArtifactsStandard(p)
}

// Artifact Collector: artifacts only, at triple rates and no plastic
// penalty.
func scoreArtifactCollector(p *Player) int {
	score := 0
	for _, a := range playerArtifacts(p) {
		name := strings.ToUpper(a.Name)
		switch {
		case isSpecialArtifact(name):
			score += 30
		case strings.Contains(name, "ANCIENT") && strings.Contains(name, "PYRAMID"):
			score += 90
		case strings.Contains(name, "ANCIENT") || strings.Contains(name, "PYRAMID"):
			if !strings.Contains(name, "PLASTIC") {
				score += 30
			}
		case strings.Contains(name, "PLASTIC"):
			// No penalty for collectors.
		default:
			score += 15
		}
	}
	return score
}

func scoreArtifactsStandard(p *Player) int {
	cats, ok := classArtifactCategories[p.CharacterType]
	if !ok {
		return 0
	}
	cat1, cat2 := cats[0], cats[1]
	greatest := cat1 + " " + cat2

	score := 0
	for _, a := range playerArtifacts(p) {
		name := strings.ToUpper(a.Name)
		switch {
		case name == "TREASURE OF POLARIS":
			score += 20
		case name == "SLIPPERS OF VENUS":
			score += 10
		case name == "RADIOACTIVE ISOTOPE":
			score -= 30
		case name == "LESSER OF TWO EVILS":
			score -= 15
		case name == "BLACK BOX":
			// Worthless until opened.
		case strings.Contains(name, "NEBULA SCROLL"):
			// End-game bonus only.
		case name == greatest:
			score += 15
		case strings.Contains(name, cat1) || strings.Contains(name, cat2):
			if !strings.Contains(name, "PLASTIC") {
				score += 5
			}
		case strings.Contains(name, "PLASTIC"):
			score -= 10
		}
	}
	return score
}

func isSpecialArtifact(upperName string) bool {
	switch upperName {
	case "TREASURE OF POLARIS", "SLIPPERS OF VENUS", "RADIOACTIVE ISOTOPE",
		"LESSER OF TWO EVILS", "BLACK BOX":
		return true
	}
	return strings.Contains(upperName, "NEBULA SCROLL")
}

// playerArtifacts collects every artifact held on the player's worlds and
// fleets.
func playerArtifacts(p *Player) []*Artifact {
	var out []*Artifact
	for _, w := range p.Worlds {
		out = append(out, w.Artifacts...)
	}
	for _, f := range p.Fleets {
		out = append(out, f.Artifacts...)
	}
	return out
}
