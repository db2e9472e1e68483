package statemachine

import (
	"fmt"

	"github.com/cvargas352/Projeto-integrador-final/models"
)

// transitions is the authoritative order workflow. The dashboard walks the
// happy path created -> awaiting_delivery -> out_for_delivery -> delivered;
// cancellation is only possible before the order leaves the kitchen.
// delivered and cancelled are terminal.
var transitions = map[models.OrderStatus][]models.OrderStatus{
	models.StatusCreated:          {models.StatusAwaitingDelivery, models.StatusCancelled},
	models.StatusAwaitingDelivery: {models.StatusOutForDelivery, models.StatusCancelled},
	models.StatusOutForDelivery:   {models.StatusDelivered},
	models.StatusDelivered:        {},
	models.StatusCancelled:        {},
}

// NextStatuses returns the statuses reachable from the given one. The
// restaurant dashboard uses this to decide which action buttons to render.
func NextStatuses(from models.OrderStatus) []models.OrderStatus {
	return transitions[from]
}

// IsTerminal reports whether no further transition is possible.
func IsTerminal(status models.OrderStatus) bool {
	return len(transitions[status]) == 0
}

// CanTransition validates a single status change against the workflow.
func CanTransition(from, to models.OrderStatus) error {
	for _, next := range transitions[from] {
		if next == to {
			return nil
		}
	}
	return fmt.Errorf("illegal status transition %s -> %s (allowed: %s)",
		from, to, describe(from))
}

func describe(from models.OrderStatus) string {
	nexts := transitions[from]
	if len(nexts) == 0 {
		return "none, terminal state"
	}
	out := ""
	for i, s := range nexts {
		if i > 0 {
			out += ", "
		}
		out += string(s)
	}
	return out
}
