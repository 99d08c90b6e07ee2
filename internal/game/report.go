package game

// Event categories attached to outbound event messages.
const (
	EventInfo       = "info"
	EventCombat     = "combat"
	EventCapture    = "capture"
	EventAmbush     = "ambush"
	EventProbe      = "probe"
	EventProduction = "production"
	EventLogistics  = "logistics"
	EventMerchant   = "merchant"
	EventPlunder    = "plunder"
	EventDiplomacy  = "diplomacy"
	EventError      = "error"
)

// Reporter delivers per-player event lines produced while orders execute.
// The connection layer implements it; turn execution never blocks on it.
type Reporter interface {
	Event(p *Player, text, eventType string)
}

// NopReporter discards everything. Used by tests and headless runs.
type NopReporter struct{}

func (NopReporter) Event(*Player, string, string) {}
