package game

import "fmt"

// SubmitOrder parses, screens, and queues one command token for a player.
// The returned string is a player-facing acknowledgement. Exclusivity is
// screened before validation so a duplicate fleet command is reported as
// such even when it would also fail validation.
func SubmitOrder(s *State, p *Player, text string) (string, error) {
	order := ParseOrder(p, text)
	if order == nil {
		return "", fmt.Errorf("unknown command: %s", text)
	}
	if id, ok := exclusiveFleetID(order); ok && HasExclusiveOrder(p, id) {
		return "", fmt.Errorf("fleet %d already has a move, fire, or ambush order this turn", id)
	}
	if ok, reason := order.Validate(s); !ok {
		return "", fmt.Errorf("%s", reason)
	}
	p.Orders = append(p.Orders, order)
	return order.Description(), nil
}

// ClearOrders drops every queued order for the player.
func ClearOrders(p *Player) int {
	n := len(p.Orders)
	p.Orders = nil
	return n
}
