package orders

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"tallerapp/internal/models"
)

// ListFilter narrows and pages an order listing.
type ListFilter struct {
	Status   *models.OrderStatus
	BranchID *primitive.ObjectID
	ClientID *primitive.ObjectID
	Page     int64
	Limit    int64
}

// StockDelta is one stock adjustment accompanying a parts edit. Negative
// Delta consumes stock, positive returns it (line removed or reduced).
type StockDelta struct {
	PartID primitive.ObjectID
	Delta  int
}

// Repository is the persistence boundary for orders. The lifecycle logic in
// this package only ever works on in-memory documents; everything touching
// the store goes through here, which keeps the state machine and the ledger
// testable without a database.
type Repository interface {
	// Insert allocates the sequential order number and stores a new order.
	Insert(ctx context.Context, o *models.Order) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error)
	GetByNumber(ctx context.Context, number int64) (*models.Order, error)
	List(ctx context.Context, filter ListFilter) ([]models.Order, int64, error)

	// Update persists the mutable fields of an order. Write-once fields
	// (order number, entry date, legal snapshot, creation stamp) are never
	// part of the update set.
	Update(ctx context.Context, o *models.Order) error

	// AppendComment adds one history entry with an additive array push, so
	// two technicians commenting at once cannot lose each other's note.
	AppendComment(ctx context.Context, id primitive.ObjectID, comment models.OrderComment) error

	// UpdatePartsWithStock persists a parts edit and applies the matching
	// stock deltas in a single transaction. Any part without enough stock
	// aborts the whole edit.
	UpdatePartsWithStock(ctx context.Context, o *models.Order, deltas []StockDelta) error
}
