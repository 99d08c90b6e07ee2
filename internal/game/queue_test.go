package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitOrderQueues(t *testing.T) {
	s := NewState(3)
	p := s.AddPlayer()
	w1 := addWorld(s, 1, 2)
	addWorld(s, 2, 1)
	addWorld(s, 3)
	addFleet(s, 5, p, w1, 10)

	desc, err := SubmitOrder(s, p, "F5W2")
	require.NoError(t, err)
	assert.Equal(t, "Move F5 -> W2", desc)
	require.Len(t, p.Orders, 1)
	assert.Equal(t, KindMove, p.Orders[0].Kind())
}

func TestSubmitOrderUnknownCommand(t *testing.T) {
	s := NewState(1)
	p := s.AddPlayer()

	_, err := SubmitOrder(s, p, "XYZZY")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
	assert.Empty(t, p.Orders)
}

func TestSubmitOrderRejectsFailedValidation(t *testing.T) {
	s := NewState(2)
	p := s.AddPlayer()
	other := s.AddPlayer()
	w1 := addWorld(s, 1, 2)
	addWorld(s, 2, 1)
	addFleet(s, 5, other, w1, 10)

	_, err := SubmitOrder(s, p, "F5W2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "do not own")
	assert.Empty(t, p.Orders)
}

func TestSubmitOrderExclusivity(t *testing.T) {
	s := NewState(2)
	p := s.AddPlayer()
	w1 := addWorld(s, 1, 2)
	addWorld(s, 2, 1)
	addFleet(s, 5, p, w1, 10)
	addFleet(s, 6, p, w1, 10)

	_, err := SubmitOrder(s, p, "F5W2")
	require.NoError(t, err)

	// A second move, fire, or ambush for the same fleet is turned away.
	_, err = SubmitOrder(s, p, "F5W2")
	require.Error(t, err)
	_, err = SubmitOrder(s, p, "F5AF6")
	require.Error(t, err)
	_, err = SubmitOrder(s, p, "F5A")
	require.Error(t, err)
	assert.Len(t, p.Orders, 1)

	// The exclusivity screen runs before validation, so the reason is the
	// duplicate, not the missing target.
	_, err = SubmitOrder(s, p, "F5AF99")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already has a move, fire, or ambush order")

	// Other fleets and non-exclusive orders are unaffected.
	_, err = SubmitOrder(s, p, "F6W2")
	require.NoError(t, err)
	_, err = SubmitOrder(s, p, "F5T3F6")
	require.NoError(t, err)
	assert.Len(t, p.Orders, 3)
}

func TestClearOrders(t *testing.T) {
	s := NewState(2)
	p := s.AddPlayer()
	w1 := addWorld(s, 1, 2)
	addWorld(s, 2, 1)
	addFleet(s, 5, p, w1, 10)

	_, err := SubmitOrder(s, p, "F5W2")
	require.NoError(t, err)

	assert.Equal(t, 1, ClearOrders(p))
	assert.Empty(t, p.Orders)
	assert.Equal(t, 0, ClearOrders(p))
}
