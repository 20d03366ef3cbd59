// services/errors.go
package services

import (
	"errors"
	"fmt"
)

// Machine-readable guard rejection reasons, stable for API clients.
const (
	ReasonOnSale               = "ON_SALE"
	ReasonContainsDisabledDish = "CONTAINS_DISABLED_DISH"
	ReasonLinkedToCombo        = "LINKED_TO_COMBO"
)

var (
	ErrComboNotFound = errors.New("combo not found")
	ErrDishNotFound  = errors.New("dish not found")
)

// DeletionNotAllowedError rejects a delete that would break a lifecycle rule.
// Batch deletes fail whole on the first offending id.
type DeletionNotAllowedError struct {
	ID     uint
	Reason string
}

func (e *DeletionNotAllowedError) Error() string {
	return fmt.Sprintf("delete of %d not allowed: %s", e.ID, e.Reason)
}

// EnableNotAllowedError rejects putting a combo on sale while any of its
// dishes is off sale.
type EnableNotAllowedError struct {
	ID     uint
	Reason string
}

func (e *EnableNotAllowedError) Error() string {
	return fmt.Sprintf("enable of %d not allowed: %s", e.ID, e.Reason)
}
