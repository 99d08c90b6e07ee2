package server

import (
	"context"
	"time"
)

// RunScheduler drives the turn clock: a one-second tick that broadcasts
// timer frames and forces turn processing when the deadline passes. Turns
// triggered here and turns triggered by the last TURN command go through
// the same lock, so a turn never runs twice.
func (gs *Server) RunScheduler(ctx context.Context) {
	gs.mu.Lock()
	if gs.state.TurnEndTime.IsZero() {
		gs.state.TurnEndTime = time.Now().Add(gs.state.TurnDuration)
	}
	gs.mu.Unlock()

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			gs.tick(now)
		}
	}
}

func (gs *Server) tick(now time.Time) {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	// Don't run the clock on an empty game.
	anyJoined := false
	for _, p := range gs.state.Players {
		if p.Joined() {
			anyJoined = true
			break
		}
	}
	if !anyJoined {
		gs.state.TurnEndTime = now.Add(gs.state.TurnDuration)
		return
	}

	if !now.Before(gs.state.TurnEndTime) {
		gs.processTurnLocked()
	}

	for _, c := range gs.clients {
		if c.player != nil && c.player.Joined() {
			gs.sendTimer(c, now)
		}
	}
}
