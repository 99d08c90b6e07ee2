package game

import (
	"fmt"
	"math"
)

// Kind tags one order variant.
type Kind string

const (
	KindMove                Kind = "MOVE"
	KindBuild               Kind = "BUILD"
	KindTransfer            Kind = "TRANSFER"
	KindTransferFromDefense Kind = "TRANSFER_FROM_DEFENSE"
	KindTransferArtifact    Kind = "TRANSFER_ARTIFACT"
	KindLoad                Kind = "LOAD"
	KindUnload              Kind = "UNLOAD"
	KindFire                Kind = "FIRE"
	KindDefenseFire         Kind = "DEFENSE_FIRE"
	KindAmbush              Kind = "AMBUSH"
	KindMigrate             Kind = "MIGRATE"
	KindProbe               Kind = "PROBE"
	KindScrapShips          Kind = "SCRAP_SHIPS"
	KindJettison            Kind = "JETTISON"
	KindConsumerGoods       Kind = "UNLOAD_CONSUMER_GOODS"
	KindViewArtifact        Kind = "VIEW_ARTIFACT"
	KindDeclareRelation     Kind = "DECLARE_RELATION"
	KindPlunder             Kind = "PLUNDER"
)

// Order is one typed, validated player instruction. Orders live for exactly
// one turn: admitted into the owner's queue, drained and executed by the
// turn processor, then discarded.
type Order interface {
	Kind() Kind
	Actor() *Player
	// Validate checks preconditions against the current state. A false
	// result carries a player-facing reason and must leave state untouched.
	Validate(s *State) (bool, string)
	// Execute applies the order. Preconditions are re-checked; an order
	// gone stale since validation is silently skipped.
	Execute(s *State, rep Reporter)
	Description() string
}

// Exclusive order kinds: a fleet holds at most one of these per turn.
var exclusiveKinds = map[Kind]bool{
	KindMove:   true,
	KindFire:   true,
	KindAmbush: true,
}

// exclusiveFleetID returns the commanding fleet for orders subject to the
// one-exclusive-order-per-fleet rule.
func exclusiveFleetID(o Order) (int, bool) {
	if !exclusiveKinds[o.Kind()] {
		return 0, false
	}
	switch v := o.(type) {
	case *MoveOrder:
		return v.FleetID, true
	case *FireOrder:
		return v.FleetID, true
	case *AmbushOrder:
		return v.FleetID, true
	}
	return 0, false
}

// HasExclusiveOrder reports whether the player already queued an exclusive
// order for the given fleet.
func HasExclusiveOrder(p *Player, fleetID int) bool {
	for _, o := range p.Orders {
		if id, ok := exclusiveFleetID(o); ok && id == fleetID {
			return true
		}
	}
	return false
}

// Build cost table. Garrison and fleet ships cost 1 metal per unit; the
// structural build kinds consume more metal and eat into other pools.
func buildMetalCost(targetType string, class string) int {
	switch targetType {
	case BuildIndustry:
		if class == ClassEmpireBuilder {
			return 4
		}
		return 5
	case BuildLimit:
		return 10
	case BuildRobot:
		return 2
	default:
		return 1
	}
}

// shipsPerIndustry is the scrap exchange rate. Empire Builders run leaner
// yards.
func shipsPerIndustry(class string) int {
	if class == ClassEmpireBuilder {
		return 4
	}
	return 6
}

// Build target kinds.
const (
	BuildIShips   = "I"
	BuildPShips   = "P"
	BuildFleet    = "F"
	BuildIndustry = "INDUSTRY"
	BuildLimit    = "LIMIT"
	BuildRobot    = "ROBOT"
)

// MoveOrder moves a fleet along a path of adjacent worlds.
type MoveOrder struct {
	Player  *Player
	FleetID int
	Path    []int
}

func (o *MoveOrder) Kind() Kind     { return KindMove }
func (o *MoveOrder) Actor() *Player { return o.Player }

func (o *MoveOrder) Validate(s *State) (bool, string) {
	fleet := s.GetFleet(o.FleetID)
	if fleet == nil {
		return false, fmt.Sprintf("Fleet %d does not exist", o.FleetID)
	}
	if fleet.Owner != o.Player {
		return false, fmt.Sprintf("You do not own fleet %d", o.FleetID)
	}
	if fleet.Ships == 0 {
		return false, fmt.Sprintf("Fleet %d has no ships", o.FleetID)
	}
	current := fleet.World.ID
	for _, next := range o.Path {
		world := s.GetWorld(current)
		if world == nil || !world.ConnectedTo(next) {
			return false, fmt.Sprintf("World %d is not connected to %d", current, next)
		}
		current = next
	}
	return true, ""
}

func (o *MoveOrder) Description() string {
	return fmt.Sprintf("Move F%d -> W%d", o.FleetID, o.Path[len(o.Path)-1])
}

// BuildOrder spends a world's metal on garrison ships, fleet ships,
// industry, population limit, or robot conversion.
type BuildOrder struct {
	Player     *Player
	WorldID    int
	Amount     int
	TargetType string
	TargetID   int // fleet id when TargetType is "F"
}

func (o *BuildOrder) Kind() Kind     { return KindBuild }
func (o *BuildOrder) Actor() *Player { return o.Player }

func (o *BuildOrder) Validate(s *State) (bool, string) {
	world := s.GetWorld(o.WorldID)
	if world == nil {
		return false, fmt.Sprintf("World %d does not exist", o.WorldID)
	}
	// A fleet on station at a neutral world can build there; garrison ships
	// built that way claim the world.
	if world.Owner != o.Player {
		if world.Owner != nil || !playerHasAccess(world, o.Player) {
			return false, fmt.Sprintf("You do not own world %d", o.WorldID)
		}
	}
	if o.Amount <= 0 {
		return false, "Build amount must be positive"
	}

	switch o.TargetType {
	case BuildIShips, BuildPShips, BuildFleet:
		max := minInt(world.Industry, world.Metal, world.Population)
		if o.Amount > max {
			return false, fmt.Sprintf("Cannot build %d, maximum is %d", o.Amount, max)
		}
	case BuildIndustry:
		cost := o.Amount * buildMetalCost(BuildIndustry, o.Player.CharacterType)
		if cost > world.Metal {
			return false, fmt.Sprintf("Need %d metal to build %d industry (have %d)", cost, o.Amount, world.Metal)
		}
		if o.Amount > world.Population {
			return false, fmt.Sprintf("Need %d population to build %d industry", o.Amount, o.Amount)
		}
	case BuildLimit:
		cost := o.Amount * buildMetalCost(BuildLimit, o.Player.CharacterType)
		if cost > world.Metal {
			return false, fmt.Sprintf("Need %d metal to raise limit by %d (have %d)", cost, o.Amount, world.Metal)
		}
		if industryNeededForLimit(o.Amount) > world.Industry {
			return false, fmt.Sprintf("Need %d industry to raise limit by %d", industryNeededForLimit(o.Amount), o.Amount)
		}
	case BuildRobot:
		if o.Player.CharacterType != ClassBerserker {
			return false, "Only Berserkers can convert population to robots"
		}
		cost := o.Amount * buildMetalCost(BuildRobot, o.Player.CharacterType)
		if cost > world.Metal {
			return false, fmt.Sprintf("Need %d metal to convert %d population (have %d)", cost, o.Amount, world.Metal)
		}
		if o.Amount > world.Population {
			return false, fmt.Sprintf("World %d only has %d population", o.WorldID, world.Population)
		}
	default:
		return false, "Invalid build target"
	}

	if o.TargetType == BuildFleet {
		fleet := s.GetFleet(o.TargetID)
		if fleet == nil {
			return false, fmt.Sprintf("Fleet %d does not exist", o.TargetID)
		}
		if fleet.Owner != o.Player {
			return false, fmt.Sprintf("You do not own fleet %d", o.TargetID)
		}
		if fleet.World != world {
			return false, fmt.Sprintf("Fleet %d is not at world %d", o.TargetID, o.WorldID)
		}
	}
	return true, ""
}

func (o *BuildOrder) Description() string {
	target := o.TargetType
	if o.TargetType == BuildFleet {
		target = fmt.Sprintf("F%d", o.TargetID)
	}
	return fmt.Sprintf("Build %d %s at W%d", o.Amount, target, o.WorldID)
}

// industryNeededForLimit: raising the population limit ties up plant, one
// industry per five points of limit, rounded up.
func industryNeededForLimit(amount int) int {
	return (amount + 4) / 5
}

// TransferOrder moves ships from a fleet to a garrison pool or another
// fleet at the same world.
type TransferOrder struct {
	Player     *Player
	FleetID    int
	Amount     int
	TargetType string // "I", "P", "F"
	TargetID   int
}

func (o *TransferOrder) Kind() Kind     { return KindTransfer }
func (o *TransferOrder) Actor() *Player { return o.Player }

func (o *TransferOrder) Validate(s *State) (bool, string) {
	fleet := s.GetFleet(o.FleetID)
	if fleet == nil {
		return false, fmt.Sprintf("Fleet %d does not exist", o.FleetID)
	}
	if fleet.Owner != o.Player {
		return false, fmt.Sprintf("You do not own fleet %d", o.FleetID)
	}
	if fleet.Ships < o.Amount {
		return false, fmt.Sprintf("Fleet %d only has %d ships", o.FleetID, fleet.Ships)
	}
	if (o.TargetType == "I" || o.TargetType == "P") && fleet.World.Owner != o.Player {
		return false, "Cannot transfer to garrison of world you don't own"
	}
	if o.TargetType == "F" {
		target := s.GetFleet(o.TargetID)
		if target == nil {
			return false, fmt.Sprintf("Target fleet %d does not exist", o.TargetID)
		}
		if target.World.ID != fleet.World.ID {
			return false, "Target fleet must be at same world"
		}
	}
	return true, ""
}

func (o *TransferOrder) Description() string {
	target := o.TargetType
	if o.TargetType == "F" {
		target = fmt.Sprintf("F%d", o.TargetID)
	}
	return fmt.Sprintf("Transfer %d from F%d to %s", o.Amount, o.FleetID, target)
}

// TransferFromDefenseOrder moves ships out of a garrison pool into a fleet
// or the other garrison pool.
type TransferFromDefenseOrder struct {
	Player     *Player
	WorldID    int
	Amount     int
	SourceType string // "I" or "P"
	TargetType string // "I", "P", "F"
	TargetID   int
}

func (o *TransferFromDefenseOrder) Kind() Kind     { return KindTransferFromDefense }
func (o *TransferFromDefenseOrder) Actor() *Player { return o.Player }

func (o *TransferFromDefenseOrder) Validate(s *State) (bool, string) {
	world := s.GetWorld(o.WorldID)
	if world == nil {
		return false, fmt.Sprintf("World %d does not exist", o.WorldID)
	}
	if world.Owner != o.Player {
		return false, fmt.Sprintf("You do not own world %d", o.WorldID)
	}
	switch o.SourceType {
	case "I":
		if world.IShips < o.Amount {
			return false, fmt.Sprintf("World %d only has %d ISHIPS", o.WorldID, world.IShips)
		}
	case "P":
		if world.PShips < o.Amount {
			return false, fmt.Sprintf("World %d only has %d PSHIPS", o.WorldID, world.PShips)
		}
	}
	if o.TargetType == "F" {
		target := s.GetFleet(o.TargetID)
		if target == nil {
			return false, fmt.Sprintf("Fleet %d does not exist", o.TargetID)
		}
		if target.World.ID != o.WorldID {
			return false, fmt.Sprintf("Fleet %d not at world %d", o.TargetID, o.WorldID)
		}
	}
	return true, ""
}

func (o *TransferFromDefenseOrder) Description() string {
	target := o.TargetType + "SHIPS"
	if o.TargetType == "F" {
		target = fmt.Sprintf("F%d", o.TargetID)
	}
	return fmt.Sprintf("Transfer %d from %sSHIPS@W%d to %s", o.Amount, o.SourceType, o.WorldID, target)
}

// TransferArtifactOrder moves one artifact between co-located holders.
type TransferArtifactOrder struct {
	Player     *Player
	SourceType string // "F" or "W"
	SourceID   int
	ArtifactID int
	TargetType string // "F" or "W"
	TargetID   int
}

func (o *TransferArtifactOrder) Kind() Kind     { return KindTransferArtifact }
func (o *TransferArtifactOrder) Actor() *Player { return o.Player }

func (o *TransferArtifactOrder) Validate(s *State) (bool, string) {
	var sourceWorld *World
	var artifact *Artifact

	switch o.SourceType {
	case "F":
		source := s.GetFleet(o.SourceID)
		if source == nil {
			return false, fmt.Sprintf("Fleet %d does not exist", o.SourceID)
		}
		if source.Owner != o.Player {
			return false, fmt.Sprintf("You do not own fleet %d", o.SourceID)
		}
		sourceWorld = source.World
		artifact = source.FindArtifact(o.ArtifactID)
	case "W":
		source := s.GetWorld(o.SourceID)
		if source == nil {
			return false, fmt.Sprintf("World %d does not exist", o.SourceID)
		}
		if source.Owner != o.Player {
			return false, fmt.Sprintf("You do not own world %d", o.SourceID)
		}
		sourceWorld = source
		artifact = source.FindArtifact(o.ArtifactID)
	default:
		return false, "Invalid source type"
	}

	if artifact == nil {
		return false, fmt.Sprintf("Artifact %d not found in source", o.ArtifactID)
	}

	switch o.TargetType {
	case "F":
		target := s.GetFleet(o.TargetID)
		if target == nil {
			return false, fmt.Sprintf("Target fleet %d does not exist", o.TargetID)
		}
		if target.Owner != o.Player {
			return false, fmt.Sprintf("You do not own target fleet %d", o.TargetID)
		}
		if target.World.ID != sourceWorld.ID {
			return false, "Source and target must be at same world"
		}
	case "W":
		if sourceWorld.Owner != o.Player {
			return false, fmt.Sprintf("You do not own world %d", sourceWorld.ID)
		}
	default:
		return false, "Invalid target type"
	}
	return true, ""
}

func (o *TransferArtifactOrder) Description() string {
	target := "World"
	if o.TargetType == "F" {
		target = fmt.Sprintf("F%d", o.TargetID)
	}
	return fmt.Sprintf("Transfer Artifact %d from %s%d to %s", o.ArtifactID, o.SourceType, o.SourceID, target)
}

// LoadOrder loads population from the fleet's world into cargo. A missing
// amount means load to capacity.
type LoadOrder struct {
	Player    *Player
	FleetID   int
	Amount    int
	HasAmount bool
}

func (o *LoadOrder) Kind() Kind     { return KindLoad }
func (o *LoadOrder) Actor() *Player { return o.Player }

func (o *LoadOrder) Validate(s *State) (bool, string) {
	fleet := s.GetFleet(o.FleetID)
	if fleet == nil {
		return false, fmt.Sprintf("Fleet %d does not exist", o.FleetID)
	}
	if fleet.Owner != o.Player {
		return false, fmt.Sprintf("You do not own fleet %d", o.FleetID)
	}
	world := fleet.World
	if world.Owner != o.Player {
		return false, "Cannot load from world you don't own"
	}
	if world.Population == 0 {
		return false, fmt.Sprintf("World %d has no population to load", world.ID)
	}
	return true, ""
}

func (o *LoadOrder) Description() string {
	if !o.HasAmount {
		return fmt.Sprintf("F%d Load Max", o.FleetID)
	}
	return fmt.Sprintf("F%d Load %d", o.FleetID, o.Amount)
}

// UnloadOrder unloads cargo into the fleet's world, capped by the
// population limit. A missing amount means unload everything.
type UnloadOrder struct {
	Player    *Player
	FleetID   int
	Amount    int
	HasAmount bool
}

func (o *UnloadOrder) Kind() Kind     { return KindUnload }
func (o *UnloadOrder) Actor() *Player { return o.Player }

func (o *UnloadOrder) Validate(s *State) (bool, string) {
	fleet := s.GetFleet(o.FleetID)
	if fleet == nil {
		return false, fmt.Sprintf("Fleet %d does not exist", o.FleetID)
	}
	if fleet.Owner != o.Player {
		return false, fmt.Sprintf("You do not own fleet %d", o.FleetID)
	}
	world := fleet.World
	if world.Owner != o.Player {
		return false, "Cannot unload to world you don't own"
	}
	if fleet.Cargo == 0 {
		return false, fmt.Sprintf("Fleet %d has no cargo to unload", o.FleetID)
	}
	if world.Population >= world.Limit {
		return false, fmt.Sprintf("World %d is at population limit", world.ID)
	}
	return true, ""
}

func (o *UnloadOrder) Description() string {
	if !o.HasAmount {
		return fmt.Sprintf("F%d Unload All", o.FleetID)
	}
	return fmt.Sprintf("F%d Unload %d", o.FleetID, o.Amount)
}

// Fire target kinds.
const (
	FireAtFleet = "FLEET"
	FireAtWorld = "WORLD"
)

// FireOrder shoots at a co-located fleet or at the world's garrison and
// installations.
type FireOrder struct {
	Player     *Player
	FleetID    int
	TargetType string // FireAtFleet or FireAtWorld
	TargetID   int    // fleet id when firing at a fleet
	SubTarget  string // "P", "I", or "H" when firing at the world
}

func (o *FireOrder) Kind() Kind     { return KindFire }
func (o *FireOrder) Actor() *Player { return o.Player }

func (o *FireOrder) Validate(s *State) (bool, string) {
	fleet := s.GetFleet(o.FleetID)
	if fleet == nil {
		return false, fmt.Sprintf("Fleet %d does not exist", o.FleetID)
	}
	if fleet.Owner != o.Player {
		return false, fmt.Sprintf("You do not own fleet %d", o.FleetID)
	}
	if fleet.Ships == 0 {
		return false, fmt.Sprintf("Fleet %d has no ships", o.FleetID)
	}
	if o.TargetType == FireAtFleet {
		target := s.GetFleet(o.TargetID)
		if target == nil {
			return false, fmt.Sprintf("Target fleet %d does not exist", o.TargetID)
		}
		if target.World != fleet.World {
			return false, "Target fleet must be at same world"
		}
	}
	return true, ""
}

func (o *FireOrder) Description() string {
	if o.TargetType == FireAtFleet {
		return fmt.Sprintf("F%d Fire at F%d", o.FleetID, o.TargetID)
	}
	return fmt.Sprintf("F%d Fire at World %s", o.FleetID, o.SubTarget)
}

// DefenseFireOrder shoots from a garrison pool at a fleet in orbit.
type DefenseFireOrder struct {
	Player      *Player
	WorldID     int
	DefenseType string // "I" or "P"
	TargetType  string // "F" (fleet) or "C" (converts)
	TargetID    int
}

func (o *DefenseFireOrder) Kind() Kind     { return KindDefenseFire }
func (o *DefenseFireOrder) Actor() *Player { return o.Player }

func (o *DefenseFireOrder) Validate(s *State) (bool, string) {
	world := s.GetWorld(o.WorldID)
	if world == nil {
		return false, fmt.Sprintf("World %d does not exist", o.WorldID)
	}
	if world.Owner != o.Player {
		return false, fmt.Sprintf("You do not own world %d", o.WorldID)
	}
	switch o.DefenseType {
	case "I":
		if world.IShips == 0 {
			return false, fmt.Sprintf("World %d has no ISHIPS", o.WorldID)
		}
	case "P":
		if world.PShips == 0 {
			return false, fmt.Sprintf("World %d has no PSHIPS", o.WorldID)
		}
	}
	if o.TargetType == "F" {
		target := s.GetFleet(o.TargetID)
		if target == nil {
			return false, fmt.Sprintf("Target fleet %d does not exist", o.TargetID)
		}
		if target.World.ID != o.WorldID {
			return false, fmt.Sprintf("Fleet %d not at world %d", o.TargetID, o.WorldID)
		}
	}
	return true, ""
}

func (o *DefenseFireOrder) Description() string {
	defense := fmt.Sprintf("%sSHIPS@W%d", o.DefenseType, o.WorldID)
	if o.TargetType == "F" {
		return fmt.Sprintf("%s Fire at F%d", defense, o.TargetID)
	}
	return fmt.Sprintf("%s Fire at Converts", defense)
}

// AmbushOrder arms a fleet to intercept movers entering its world.
type AmbushOrder struct {
	Player  *Player
	FleetID int
}

func (o *AmbushOrder) Kind() Kind     { return KindAmbush }
func (o *AmbushOrder) Actor() *Player { return o.Player }

func (o *AmbushOrder) Validate(s *State) (bool, string) {
	fleet := s.GetFleet(o.FleetID)
	if fleet == nil {
		return false, fmt.Sprintf("Fleet %d does not exist", o.FleetID)
	}
	if fleet.Owner != o.Player {
		return false, fmt.Sprintf("You do not own fleet %d", o.FleetID)
	}
	return true, ""
}

func (o *AmbushOrder) Description() string {
	return fmt.Sprintf("F%d Ambush", o.FleetID)
}

// MigrateOrder ships population to an adjacent world.
type MigrateOrder struct {
	Player    *Player
	WorldID   int
	Amount    int
	DestWorld int
}

func (o *MigrateOrder) Kind() Kind     { return KindMigrate }
func (o *MigrateOrder) Actor() *Player { return o.Player }

func (o *MigrateOrder) Validate(s *State) (bool, string) {
	world := s.GetWorld(o.WorldID)
	if world == nil {
		return false, fmt.Sprintf("World %d does not exist", o.WorldID)
	}
	if world.Owner != o.Player {
		return false, fmt.Sprintf("You do not own world %d", o.WorldID)
	}
	if s.GetWorld(o.DestWorld) == nil {
		return false, fmt.Sprintf("Destination world %d does not exist", o.DestWorld)
	}
	if !world.ConnectedTo(o.DestWorld) {
		return false, fmt.Sprintf("World %d is not connected to %d", o.DestWorld, o.WorldID)
	}
	if o.Amount <= 0 {
		return false, "Migration amount must be positive"
	}
	max := minInt(world.Industry, world.Metal, world.Population)
	if o.Amount > max {
		return false, fmt.Sprintf("Cannot migrate %d, maximum is %d", o.Amount, max)
	}
	return true, ""
}

func (o *MigrateOrder) Description() string {
	return fmt.Sprintf("Migrate %d population from W%d to W%d", o.Amount, o.WorldID, o.DestWorld)
}

// ProbeOrder spends one ship to scout an adjacent world before movement.
type ProbeOrder struct {
	Player      *Player
	SourceType  string // "F", "I", or "P"
	SourceID    int
	TargetWorld int
}

func (o *ProbeOrder) Kind() Kind     { return KindProbe }
func (o *ProbeOrder) Actor() *Player { return o.Player }

func (o *ProbeOrder) Validate(s *State) (bool, string) {
	if o.SourceType == "F" {
		fleet := s.GetFleet(o.SourceID)
		if fleet == nil {
			return false, fmt.Sprintf("Fleet %d does not exist", o.SourceID)
		}
		if fleet.Owner != o.Player {
			return false, fmt.Sprintf("You do not own fleet %d", o.SourceID)
		}
		if fleet.Ships < 1 {
			return false, fmt.Sprintf("Fleet %d has no ships", o.SourceID)
		}
		if !fleet.World.ConnectedTo(o.TargetWorld) {
			return false, fmt.Sprintf("World %d is not adjacent to %d", o.TargetWorld, fleet.World.ID)
		}
		return true, ""
	}

	world := s.GetWorld(o.SourceID)
	if world == nil {
		return false, fmt.Sprintf("World %d does not exist", o.SourceID)
	}
	if world.Owner != o.Player {
		return false, fmt.Sprintf("You do not own world %d", o.SourceID)
	}
	switch o.SourceType {
	case "I":
		if world.IShips < 1 {
			return false, fmt.Sprintf("World %d has no ISHIPS", o.SourceID)
		}
	case "P":
		if world.PShips < 1 {
			return false, fmt.Sprintf("World %d has no PSHIPS", o.SourceID)
		}
	}
	if !world.ConnectedTo(o.TargetWorld) {
		return false, fmt.Sprintf("World %d is not adjacent to %d", o.TargetWorld, o.SourceID)
	}
	return true, ""
}

func (o *ProbeOrder) Description() string {
	if o.SourceType == "F" {
		return fmt.Sprintf("F%d Probe W%d", o.SourceID, o.TargetWorld)
	}
	return fmt.Sprintf("%sSHIPS@W%d Probe W%d", o.SourceType, o.SourceID, o.TargetWorld)
}

// ScrapShipsOrder melts garrison ships back into industry.
type ScrapShipsOrder struct {
	Player  *Player
	WorldID int
	Amount  int // industry to create
}

func (o *ScrapShipsOrder) Kind() Kind     { return KindScrapShips }
func (o *ScrapShipsOrder) Actor() *Player { return o.Player }

func (o *ScrapShipsOrder) Validate(s *State) (bool, string) {
	world := s.GetWorld(o.WorldID)
	if world == nil {
		return false, fmt.Sprintf("World %d does not exist", o.WorldID)
	}
	if world.Owner != o.Player {
		return false, fmt.Sprintf("You do not own world %d", o.WorldID)
	}
	needed := o.Amount * shipsPerIndustry(o.Player.CharacterType)
	if world.IShips < needed {
		return false, fmt.Sprintf("Need %d ISHIPS to create %d industry (have %d)", needed, o.Amount, world.IShips)
	}
	return true, ""
}

func (o *ScrapShipsOrder) Description() string {
	return fmt.Sprintf("W%d Scrap ships to create %d industry", o.WorldID, o.Amount)
}

// JettisonOrder dumps cargo into space.
type JettisonOrder struct {
	Player    *Player
	FleetID   int
	Amount    int
	HasAmount bool
}

func (o *JettisonOrder) Kind() Kind     { return KindJettison }
func (o *JettisonOrder) Actor() *Player { return o.Player }

func (o *JettisonOrder) Validate(s *State) (bool, string) {
	fleet := s.GetFleet(o.FleetID)
	if fleet == nil {
		return false, fmt.Sprintf("Fleet %d does not exist", o.FleetID)
	}
	if fleet.Owner != o.Player {
		return false, fmt.Sprintf("You do not own fleet %d", o.FleetID)
	}
	if fleet.Cargo == 0 {
		return false, fmt.Sprintf("Fleet %d has no cargo", o.FleetID)
	}
	if o.HasAmount && o.Amount > fleet.Cargo {
		return false, fmt.Sprintf("Fleet %d only has %d cargo", o.FleetID, fleet.Cargo)
	}
	return true, ""
}

func (o *JettisonOrder) Description() string {
	if !o.HasAmount {
		return fmt.Sprintf("F%d Jettison all cargo", o.FleetID)
	}
	return fmt.Sprintf("F%d Jettison %d cargo", o.FleetID, o.Amount)
}

// ConsumerGoodsOrder unloads cargo as consumer goods for points.
// Merchant only.
type ConsumerGoodsOrder struct {
	Player    *Player
	FleetID   int
	Amount    int
	HasAmount bool
}

func (o *ConsumerGoodsOrder) Kind() Kind     { return KindConsumerGoods }
func (o *ConsumerGoodsOrder) Actor() *Player { return o.Player }

func (o *ConsumerGoodsOrder) Validate(s *State) (bool, string) {
	fleet := s.GetFleet(o.FleetID)
	if fleet == nil {
		return false, fmt.Sprintf("Fleet %d does not exist", o.FleetID)
	}
	if fleet.Owner != o.Player {
		return false, fmt.Sprintf("You do not own fleet %d", o.FleetID)
	}
	if fleet.Cargo == 0 {
		return false, fmt.Sprintf("Fleet %d has no cargo", o.FleetID)
	}
	if o.HasAmount && o.Amount > fleet.Cargo {
		return false, fmt.Sprintf("Fleet %d only has %d cargo", o.FleetID, fleet.Cargo)
	}
	if o.Player.CharacterType != ClassMerchant {
		return false, "Only Merchants can deliver consumer goods"
	}
	return true, ""
}

func (o *ConsumerGoodsOrder) Description() string {
	if !o.HasAmount {
		return fmt.Sprintf("F%d Unload all as consumer goods", o.FleetID)
	}
	return fmt.Sprintf("F%d Unload %d consumer goods", o.FleetID, o.Amount)
}

// ViewArtifactOrder reports where one of the player's artifacts is.
type ViewArtifactOrder struct {
	Player       *Player
	ArtifactID   int
	LocationType string // "", "F", or "W"
	LocationID   int
}

func (o *ViewArtifactOrder) Kind() Kind     { return KindViewArtifact }
func (o *ViewArtifactOrder) Actor() *Player { return o.Player }

func (o *ViewArtifactOrder) Validate(s *State) (bool, string) {
	return true, ""
}

func (o *ViewArtifactOrder) Description() string {
	return fmt.Sprintf("View Artifact %d", o.ArtifactID)
}

// DeclareRelationOrder sets peace or war toward another fleet's owner.
type DeclareRelationOrder struct {
	Player        *Player
	FleetID       int
	TargetFleetID int
	Relation      Relation
}

func (o *DeclareRelationOrder) Kind() Kind     { return KindDeclareRelation }
func (o *DeclareRelationOrder) Actor() *Player { return o.Player }

func (o *DeclareRelationOrder) Validate(s *State) (bool, string) {
	fleet := s.GetFleet(o.FleetID)
	if fleet == nil {
		return false, fmt.Sprintf("Fleet %d does not exist", o.FleetID)
	}
	if fleet.Owner != o.Player {
		return false, fmt.Sprintf("You do not own fleet %d", o.FleetID)
	}
	target := s.GetFleet(o.TargetFleetID)
	if target == nil {
		return false, fmt.Sprintf("Fleet %d does not exist", o.TargetFleetID)
	}
	if target.Owner == nil {
		return false, fmt.Sprintf("Fleet %d is neutral", o.TargetFleetID)
	}
	return true, ""
}

func (o *DeclareRelationOrder) Description() string {
	return fmt.Sprintf("F%d Declare %s with F%d", o.FleetID, o.Relation, o.TargetFleetID)
}

// PlunderOrder converts a world's whole population to metal. Pirates score
// from it.
type PlunderOrder struct {
	Player  *Player
	WorldID int
}

func (o *PlunderOrder) Kind() Kind     { return KindPlunder }
func (o *PlunderOrder) Actor() *Player { return o.Player }

func (o *PlunderOrder) Validate(s *State) (bool, string) {
	world := s.GetWorld(o.WorldID)
	if world == nil {
		return false, fmt.Sprintf("World %d does not exist", o.WorldID)
	}
	if world.Owner != o.Player {
		return false, fmt.Sprintf("You do not own world %d", o.WorldID)
	}
	if world.Population == 0 {
		return false, fmt.Sprintf("World %d has no population", o.WorldID)
	}
	if world.Homeworld {
		return false, "Homeworlds cannot be plundered"
	}
	return true, ""
}

func (o *PlunderOrder) Description() string {
	return fmt.Sprintf("W%d Plunder", o.WorldID)
}

func minInt(vals ...int) int {
	m := vals[0]
	for _, v := range vals[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

func ceilDiv(n, d int) int {
	return int(math.Ceil(float64(n) / float64(d)))
}
