package game

import (
	"regexp"
	"strconv"
	"strings"
)

// parseRule binds a compiled pattern to a constructor. Rules are tried in
// registration order and the first match wins, so narrower forms must be
// registered before the prefixes they share (F5AF10 before F5A).
type parseRule struct {
	pattern *regexp.Regexp
	build   func(p *Player, text string, groups []string) Order
}

var parseRules = []parseRule{
	// F5W10, F5W1W3W10
	{regexp.MustCompile(`^F(\d+)(W\d+)+$`), parseMove},
	// W3B25I, W3B10P, W3B15F7, W3B2INDUSTRY, W3B5LIMIT, W3B10ROBOT
	{regexp.MustCompile(`^W(\d+)B(\d+)(F(\d+)|I|P|IND|INDUSTRY|L|LIMIT|R|ROBOT)$`), parseBuild},
	// F5T10I, F5T10P, F5T10F7
	{regexp.MustCompile(`^F(\d+)T(\d+)(F(\d+)|I|P)$`), parseTransfer},
	// I5T10F7, P5T10I
	{regexp.MustCompile(`^([IP])(\d+)T(\d+)(F(\d+)|I|P)$`), parseTransferFromDefense},
	// F5TA3F7
	{regexp.MustCompile(`^F(\d+)TA(\d+)F(\d+)$`), parseArtifactFleetToFleet},
	// F5TA3W
	{regexp.MustCompile(`^F(\d+)TA(\d+)W$`), parseArtifactFleetToWorld},
	// W5TA3F7
	{regexp.MustCompile(`^W(\d+)TA(\d+)F(\d+)$`), parseArtifactWorldToFleet},
	// F5L, F5L10
	{regexp.MustCompile(`^F(\d+)L(\d+)?$`), parseLoad},
	// F5U, F5U10
	{regexp.MustCompile(`^F(\d+)U(\d+)?$`), parseUnload},
	// F5AF10
	{regexp.MustCompile(`^F(\d+)AF(\d+)$`), parseFireFleet},
	// F5AP, F5AI, F5AH
	{regexp.MustCompile(`^F(\d+)A(P|I|H)$`), parseFireWorld},
	// I5AF10, P5AF10
	{regexp.MustCompile(`^([IP])(\d+)AF(\d+)$`), parseDefenseFireFleet},
	// I5AC, P5AC
	{regexp.MustCompile(`^([IP])(\d+)AC$`), parseDefenseFireConverts},
	// F5A
	{regexp.MustCompile(`^F(\d+)A$`), parseAmbush},
	// W3M5W10
	{regexp.MustCompile(`^W(\d+)M(\d+)W(\d+)$`), parseMigrate},
	// F5P10
	{regexp.MustCompile(`^F(\d+)P(\d+)$`), parseProbeFleet},
	// I5P10, P5P10
	{regexp.MustCompile(`^([IP])(\d+)P(\d+)$`), parseProbeDefense},
	// W5S2
	{regexp.MustCompile(`^W(\d+)S(\d+)$`), parseScrap},
	// F5J, F5J10
	{regexp.MustCompile(`^F(\d+)J(\d+)?$`), parseJettison},
	// F5N, F5N10
	{regexp.MustCompile(`^F(\d+)N(\d+)?$`), parseConsumerGoods},
	// V3, V3F5, V3W
	{regexp.MustCompile(`^V(\d+)(?:F(\d+)|(W))?$`), parseViewArtifact},
	// F5Q7 (peace)
	{regexp.MustCompile(`^F(\d+)Q(\d+)$`), parseDeclarePeace},
	// F5X7 (war)
	{regexp.MustCompile(`^F(\d+)X(\d+)$`), parseDeclareWar},
	// W5X
	{regexp.MustCompile(`^W(\d+)X$`), parsePlunder},
}

// ParseOrder turns a single command token into an Order, or nil when no
// grammar rule matches. Matching is case-insensitive.
func ParseOrder(p *Player, text string) Order {
	text = strings.ToUpper(strings.TrimSpace(text))
	if text == "" {
		return nil
	}
	for _, rule := range parseRules {
		if groups := rule.pattern.FindStringSubmatch(text); groups != nil {
			return rule.build(p, text, groups)
		}
	}
	return nil
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

func parseMove(p *Player, text string, groups []string) Order {
	fleetID := atoi(groups[1])
	rest := text[len("F"+groups[1]):]
	var path []int
	for _, part := range strings.Split(rest, "W") {
		if part != "" {
			path = append(path, atoi(part))
		}
	}
	return &MoveOrder{Player: p, FleetID: fleetID, Path: path}
}

func parseBuild(p *Player, text string, groups []string) Order {
	worldID := atoi(groups[1])
	amount := atoi(groups[2])
	target := groups[3]
	switch {
	case strings.HasPrefix(target, "F"):
		return &BuildOrder{Player: p, WorldID: worldID, Amount: amount, TargetType: BuildFleet, TargetID: atoi(groups[4])}
	case target == "I":
		return &BuildOrder{Player: p, WorldID: worldID, Amount: amount, TargetType: BuildIShips}
	case target == "P":
		return &BuildOrder{Player: p, WorldID: worldID, Amount: amount, TargetType: BuildPShips}
	case target == "IND" || target == "INDUSTRY":
		return &BuildOrder{Player: p, WorldID: worldID, Amount: amount, TargetType: BuildIndustry}
	case target == "L" || target == "LIMIT":
		return &BuildOrder{Player: p, WorldID: worldID, Amount: amount, TargetType: BuildLimit}
	default:
		return &BuildOrder{Player: p, WorldID: worldID, Amount: amount, TargetType: BuildRobot}
	}
}

func parseTransfer(p *Player, text string, groups []string) Order {
	o := &TransferOrder{Player: p, FleetID: atoi(groups[1]), Amount: atoi(groups[2])}
	if strings.HasPrefix(groups[3], "F") {
		o.TargetType = "F"
		o.TargetID = atoi(groups[4])
	} else {
		o.TargetType = groups[3]
	}
	return o
}

func parseTransferFromDefense(p *Player, text string, groups []string) Order {
	o := &TransferFromDefenseOrder{
		Player:     p,
		SourceType: groups[1],
		WorldID:    atoi(groups[2]),
		Amount:     atoi(groups[3]),
	}
	if strings.HasPrefix(groups[4], "F") {
		o.TargetType = "F"
		o.TargetID = atoi(groups[5])
	} else {
		o.TargetType = groups[4]
	}
	return o
}

func parseArtifactFleetToFleet(p *Player, text string, groups []string) Order {
	return &TransferArtifactOrder{
		Player: p, SourceType: "F", SourceID: atoi(groups[1]),
		ArtifactID: atoi(groups[2]), TargetType: "F", TargetID: atoi(groups[3]),
	}
}

func parseArtifactFleetToWorld(p *Player, text string, groups []string) Order {
	return &TransferArtifactOrder{
		Player: p, SourceType: "F", SourceID: atoi(groups[1]),
		ArtifactID: atoi(groups[2]), TargetType: "W",
	}
}

func parseArtifactWorldToFleet(p *Player, text string, groups []string) Order {
	return &TransferArtifactOrder{
		Player: p, SourceType: "W", SourceID: atoi(groups[1]),
		ArtifactID: atoi(groups[2]), TargetType: "F", TargetID: atoi(groups[3]),
	}
}

func parseLoad(p *Player, text string, groups []string) Order {
	o := &LoadOrder{Player: p, FleetID: atoi(groups[1])}
	if groups[2] != "" {
		o.Amount = atoi(groups[2])
		o.HasAmount = true
	}
	return o
}

func parseUnload(p *Player, text string, groups []string) Order {
	o := &UnloadOrder{Player: p, FleetID: atoi(groups[1])}
	if groups[2] != "" {
		o.Amount = atoi(groups[2])
		o.HasAmount = true
	}
	return o
}

func parseFireFleet(p *Player, text string, groups []string) Order {
	return &FireOrder{Player: p, FleetID: atoi(groups[1]), TargetType: FireAtFleet, TargetID: atoi(groups[2])}
}

func parseFireWorld(p *Player, text string, groups []string) Order {
	return &FireOrder{Player: p, FleetID: atoi(groups[1]), TargetType: FireAtWorld, SubTarget: groups[2]}
}

func parseDefenseFireFleet(p *Player, text string, groups []string) Order {
	return &DefenseFireOrder{
		Player: p, DefenseType: groups[1], WorldID: atoi(groups[2]),
		TargetType: "F", TargetID: atoi(groups[3]),
	}
}

func parseDefenseFireConverts(p *Player, text string, groups []string) Order {
	return &DefenseFireOrder{Player: p, DefenseType: groups[1], WorldID: atoi(groups[2]), TargetType: "C"}
}

func parseAmbush(p *Player, text string, groups []string) Order {
	return &AmbushOrder{Player: p, FleetID: atoi(groups[1])}
}

func parseMigrate(p *Player, text string, groups []string) Order {
	return &MigrateOrder{Player: p, WorldID: atoi(groups[1]), Amount: atoi(groups[2]), DestWorld: atoi(groups[3])}
}

func parseProbeFleet(p *Player, text string, groups []string) Order {
	return &ProbeOrder{Player: p, SourceType: "F", SourceID: atoi(groups[1]), TargetWorld: atoi(groups[2])}
}

func parseProbeDefense(p *Player, text string, groups []string) Order {
	return &ProbeOrder{Player: p, SourceType: groups[1], SourceID: atoi(groups[2]), TargetWorld: atoi(groups[3])}
}

func parseScrap(p *Player, text string, groups []string) Order {
	return &ScrapShipsOrder{Player: p, WorldID: atoi(groups[1]), Amount: atoi(groups[2])}
}

func parseJettison(p *Player, text string, groups []string) Order {
	o := &JettisonOrder{Player: p, FleetID: atoi(groups[1])}
	if groups[2] != "" {
		o.Amount = atoi(groups[2])
		o.HasAmount = true
	}
	return o
}

func parseConsumerGoods(p *Player, text string, groups []string) Order {
	o := &ConsumerGoodsOrder{Player: p, FleetID: atoi(groups[1])}
	if groups[2] != "" {
		o.Amount = atoi(groups[2])
		o.HasAmount = true
	}
	return o
}

func parseViewArtifact(p *Player, text string, groups []string) Order {
	o := &ViewArtifactOrder{Player: p, ArtifactID: atoi(groups[1])}
	switch {
	case groups[2] != "":
		o.LocationType = "F"
		o.LocationID = atoi(groups[2])
	case groups[3] != "":
		o.LocationType = "W"
	}
	return o
}

func parseDeclarePeace(p *Player, text string, groups []string) Order {
	return &DeclareRelationOrder{Player: p, FleetID: atoi(groups[1]), TargetFleetID: atoi(groups[2]), Relation: RelationPeace}
}

func parseDeclareWar(p *Player, text string, groups []string) Order {
	return &DeclareRelationOrder{Player: p, FleetID: atoi(groups[1]), TargetFleetID: atoi(groups[2]), Relation: RelationWar}
}

func parsePlunder(p *Player, text string, groups []string) Order {
	return &PlunderOrder{Player: p, WorldID: atoi(groups[1])}
}
