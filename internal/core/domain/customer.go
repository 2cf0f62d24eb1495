package domain

import "github.com/google/uuid"

// Customer as seen by the order flow: existence is all that matters.
type Customer struct {
	ID uuid.UUID
}
