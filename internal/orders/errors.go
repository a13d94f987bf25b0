package orders

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ValidationError rejects bad input. Field names the offending request field
// so the UI can render the message next to it instead of a generic banner.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NotFoundError marks an id that did not resolve to a document.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// StockConflictError aborts a part consumption that would drive stock below
// zero. The whole mutation is rolled back, nothing is partially applied.
type StockConflictError struct {
	PartID    primitive.ObjectID
	Available int
	Requested int
}

func (e StockConflictError) Error() string {
	return fmt.Sprintf("insufficient stock for part %s: have %d, need %d",
		e.PartID.Hex(), e.Available, e.Requested)
}
