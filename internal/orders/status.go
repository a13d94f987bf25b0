package orders

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"tallerapp/internal/models"
)

// Actor identifies the staff member performing a mutation.
type Actor struct {
	UserID   primitive.ObjectID
	UserName string
}

// ParseStatus resolves a wire string to a known status.
func ParseStatus(raw string) (models.OrderStatus, error) {
	status := models.OrderStatus(raw)
	if !status.Valid() {
		return "", ValidationError{Field: "status", Message: "unknown status: " + raw}
	}
	return status, nil
}

// ApplyTransition moves an order to the next status. Operators may move an
// order to any other status, including backwards (e.g. from En Reparación
// back to En Espera de Repuestos); only a no-op change is rejected. Milestone
// dates are stamped on first entry only, so bouncing through Listo para
// Entrega or Entregado a second time never rewrites them.
func ApplyTransition(o *models.Order, next models.OrderStatus, by Actor, now time.Time) error {
	if !next.Valid() {
		return ValidationError{Field: "status", Message: "unknown status: " + string(next)}
	}
	if next == o.Status {
		return ValidationError{Field: "status", Message: "order already has status " + string(next)}
	}

	o.Status = next

	if next == models.StatusReadyForPickup && o.ReadyForPickupDate == nil {
		stamp := now
		o.ReadyForPickupDate = &stamp
	}
	if next == models.StatusDelivered && o.DeliveryDate == nil {
		stamp := now
		o.DeliveryDate = &stamp
	}

	o.UpdatedAt = now
	o.LastUpdatedBy = by.UserName
	return nil
}

// StatusContext is a document-section gating bucket. Buckets overlap: a
// status can belong to several contexts at once.
type StatusContext string

const (
	ContextIntake   StatusContext = "intake"
	ContextQuote    StatusContext = "quote"
	ContextRepair   StatusContext = "repair"
	ContextDelivery StatusContext = "delivery"
)

var statusContexts = map[StatusContext][]models.OrderStatus{
	ContextIntake: {
		models.StatusReceived,
		models.StatusDiagnosing,
	},
	ContextQuote: {
		models.StatusDiagnosing,
		models.StatusQuoted,
		models.StatusQuoteApproved,
		models.StatusQuoteRejected,
	},
	ContextRepair: {
		models.StatusQuoteApproved,
		models.StatusAwaitingParts,
		models.StatusRepairing,
		models.StatusRepaired,
		models.StatusQualityCheck,
		models.StatusNotRepaired,
	},
	ContextDelivery: {
		models.StatusReadyForPickup,
		models.StatusDelivered,
		models.StatusQuoteRejected,
		models.StatusNotRepaired,
	},
}

// InContext reports whether the status belongs to the given bucket.
func InContext(status models.OrderStatus, ctx StatusContext) bool {
	for _, s := range statusContexts[ctx] {
		if s == status {
			return true
		}
	}
	return false
}
