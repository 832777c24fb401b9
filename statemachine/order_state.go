package statemachine

import (
	"errors"

	"tastytwist-api/models"
)

// ErrInvalidTransition is returned when an order cannot leave its current state.
var ErrInvalidTransition = errors.New("invalid order status transition")

// nextStatus is the authoritative state machine definition. Orders only move
// forward; cancelled is absorbing.
var nextStatus = map[models.OrderStatus]models.OrderStatus{
	models.StatusProcessing: models.StatusShipped,
	models.StatusShipped:    models.StatusDelivered,
	models.StatusCancelled:  models.StatusCancelled,
}

// Next returns the state that follows current. Delivered is terminal and any
// unknown status is rejected rather than persisted as an empty string.
func Next(current models.OrderStatus) (models.OrderStatus, error) {
	next, ok := nextStatus[current]
	if !ok {
		return "", errors.Join(ErrInvalidTransition,
			errors.New("no transition from status '"+string(current)+"'"))
	}
	return next, nil
}

// CanCancel reports whether an order in the given state may still be cancelled.
func CanCancel(current models.OrderStatus) bool {
	return current == models.StatusProcessing || current == models.StatusShipped
}

// IsTerminal reports whether no further transition exists from the state.
func IsTerminal(s models.OrderStatus) bool {
	return s == models.StatusDelivered || s == models.StatusCancelled
}
