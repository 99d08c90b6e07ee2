package server

import "strings"

const helpGeneral = `Commands:
  JOIN <name> [class]   join the game (Empire Builder, Merchant, Pirate, Artifact Collector, Berserker, Apostle)
  TURN                  signal you are done with this turn
  TIMER <minutes>       set your preferred turn length
  SAY <text>            chat with everyone
  HELP <topic>          topics: move, build, transfer, combat, cargo, probe, artifacts, diplomacy

Order grammar (examples):
  F5W10        move fleet 5 to world 10 (chain hops: F5W1W3W10)
  W3B25I       build 25 ISHIPS at world 3
  F5T10F7      transfer 10 ships from fleet 5 to fleet 7
  F5AF10       fleet 5 fires at fleet 10
  F5A          fleet 5 ambushes
  TURN         end your turn`

var helpTopics = map[string]string{
	"move": `Movement:
  F5W10      move fleet 5 to adjacent world 10
  F5W1W3W10  move along a path of connected worlds
A fleet gets one move, fire, or ambush order per turn. Hostile ambushing
fleets intercept movers at any hop.`,
	"build": `Building (at a world you own, costs metal):
  W3B25I        25 ISHIPS (defense, 1 metal each)
  W3B10P        10 PSHIPS (defense, 1 metal each)
  W3B15F7       15 ships onto fleet 7 at world 3
  W3B2INDUSTRY  2 industry (5 metal each, 4 for Empire Builders, settles 1 population each)
  W3B5LIMIT     raise population limit by 5 (10 metal each)
  W3B10ROBOT    convert 10 population to robots (Berserker only, 2 metal each)
Ship builds are limited by min(industry, metal, population).
  W3S2          scrap ISHIPS into 2 industry (6 ships each, 4 for Empire Builders)`,
	"transfer": `Transfers (same world):
  F5T10I    10 ships from fleet 5 to ISHIPS
  F5T10F7   10 ships from fleet 5 to fleet 7 (cargo moves proportionally)
  I5T10F7   10 ISHIPS at world 5 onto fleet 7
  F5TA3F7   artifact 3 from fleet 5 to fleet 7
  W3M5W10   migrate 5 population from world 3 to adjacent world 10`,
	"combat": `Combat (resolved in turn order, two hits destroy one ship):
  F5AF10    fleet 5 fires at fleet 10
  F5AP      fire at world PSHIPS, overflow hits population
  F5AI      fire at world ISHIPS, overflow hits industry
  F5AH      fire at both garrison pools
  I5AF10    world 5's ISHIPS fire at fleet 10
  P5AC      world 5's PSHIPS purge converts
  F5A       ambush: intercept fleets entering this world`,
	"cargo": `Cargo (capacity = ships, x2 for Merchants):
  F5L      load population to capacity
  F5L10    load 10 population
  F5U      unload all cargo
  F5J      jettison all cargo
  F5N      deliver cargo as consumer goods (Merchant only, scores points)`,
	"probe": `Probes (spends one ship, reveals an adjacent world):
  F5P10    probe world 10 from fleet 5
  I5P10    probe world 10 using one ISHIP at world 5`,
	"artifacts": `Artifacts:
  V3        locate artifact 3 among your holdings
  F5TA3W    move artifact 3 from fleet 5 down to the world
  W5TA3F7   move artifact 3 from world 5 onto fleet 7
Artifacts score by character class; plastic fakes cost you points.`,
	"diplomacy": `Diplomacy:
  F5Q7    declare peace toward fleet 7's owner
  F5X7    declare war toward fleet 7's owner
  W5X     plunder world 5: all population becomes metal (Pirates score it)`,
}

func helpText(topic string) string {
	if topic == "" {
		return helpGeneral
	}
	if text, ok := helpTopics[strings.ToLower(topic)]; ok {
		return text
	}
	return helpGeneral
}
