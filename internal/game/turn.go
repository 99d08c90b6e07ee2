package game

import (
	"log/slog"
	"time"
)

// Phase order for a turn. Logistics settle first so combat and movement see
// the redistributed ships; AMBUSH arms before MOVE so moves this turn can
// be intercepted; informational orders run last.
var phaseOrder = []Kind{
	KindTransfer,
	KindTransferFromDefense,
	KindTransferArtifact,
	KindLoad,
	KindUnload,
	KindConsumerGoods,
	KindJettison,
	KindMigrate,
	KindPlunder,
	KindScrapShips,
	KindBuild,
	KindFire,
	KindDefenseFire,
	KindProbe,
	KindAmbush,
	KindMove,
	KindViewArtifact,
	KindDeclareRelation,
}

// ProcessTurn runs one complete turn: drain every player's order queue,
// execute by phase, run production, settle captures and ownership, rescore,
// reset per-turn flags, and refresh fog-of-war memory. The caller must hold
// whatever lock guards the state.
func ProcessTurn(s *State, rep Reporter, log *slog.Logger) {
	if log == nil {
		log = slog.Default()
	}

	s.GameTurn++
	log.Info("processing turn", "turn", s.GameTurn)

	byKind := make(map[Kind][]Order)
	total := 0
	for _, p := range s.AllPlayers() {
		for _, o := range p.Orders {
			byKind[o.Kind()] = append(byKind[o.Kind()], o)
			total++
		}
		p.Orders = nil
		p.Ready = false
	}
	log.Info("executing orders", "count", total)

	for _, kind := range phaseOrder {
		for _, o := range byKind[kind] {
			// Orders whose preconditions lapsed since admission are dropped
			// without telling the player; the log is the only trace.
			if ok, reason := o.Validate(s); !ok {
				log.Debug("order stale at execution",
					"kind", o.Kind(), "order", o.Description(), "actor", o.Actor().Name, "reason", reason)
			}
			o.Execute(s, rep)
		}
	}

	for _, w := range s.Worlds {
		ProcessWorldProduction(w, rep)
	}
	for _, w := range s.Worlds {
		HandleFleetCaptures(w, rep)
	}
	for _, w := range s.Worlds {
		CheckWorldOwnership(w, rep)
	}

	for _, p := range s.AllPlayers() {
		CalculateScore(p)
	}

	for _, f := range s.Fleets {
		f.Moved = false
		f.IsAmbushing = false
	}

	for _, p := range s.AllPlayers() {
		s.RecordPresence(p)
	}

	s.TurnDuration = s.AverageTurnDuration()
	s.TurnEndTime = time.Now().Add(s.TurnDuration)

	log.Info("turn complete", "turn", s.GameTurn, "duration", s.TurnDuration)
}
