package orders

import (
	"fmt"
	"time"

	"tallerapp/internal/models"
)

// Alert reasons, ordered by escalation. The reason is a classification
// string rather than a boolean so the board can style each tier differently.
const (
	AlertNone             = "none"
	AlertAwaitingParts    = "awaiting_parts"
	AlertQuoteStale       = "quote_stale"
	AlertPickupStale      = "pickup_stale"
	AlertAbandonmentRisk  = "abandonment_risk"
	AlertAbandonmentFinal = "abandonment_final"
)

const (
	quoteStaleAfter  = 3 * 24 * time.Hour
	pickupStaleAfter = 7 * 24 * time.Hour
)

// Alert is the operational flag derived for one order.
type Alert struct {
	Reason  string `json:"reason"`
	Message string `json:"message,omitempty"`
}

// EvaluateAlert classifies an order against the clock. Pure read-side
// derivation: nothing is persisted. Terminal orders never alert; an order
// waiting on parts always does; quotes and pickups go stale with age, and a
// stale pickup escalates through the abandonment tiers the order's own
// snapshot defines.
func EvaluateAlert(o *models.Order, now time.Time) Alert {
	if o.Status.IsTerminal() {
		return Alert{Reason: AlertNone}
	}

	switch o.Status {
	case models.StatusAwaitingParts:
		return Alert{Reason: AlertAwaitingParts, Message: "esperando repuestos"}
	case models.StatusQuoted:
		if age := now.Sub(o.EntryDate); age > quoteStaleAfter {
			return Alert{
				Reason:  AlertQuoteStale,
				Message: fmt.Sprintf("presupuesto sin respuesta hace %d días", int(age.Hours()/24)),
			}
		}
	case models.StatusReadyForPickup:
		if o.ReadyForPickupDate == nil {
			return Alert{Reason: AlertNone}
		}
		age := now.Sub(*o.ReadyForPickupDate)
		days := int(age.Hours() / 24)

		finalAfter := time.Duration(o.LegalText.AbandonmentFinalDays) * 24 * time.Hour
		riskAfter := time.Duration(o.LegalText.AbandonmentRiskDays) * 24 * time.Hour

		switch {
		case finalAfter > 0 && age > finalAfter:
			return Alert{
				Reason:  AlertAbandonmentFinal,
				Message: fmt.Sprintf("equipo considerado abandonado (%d días sin retirar)", days),
			}
		case riskAfter > 0 && age > riskAfter:
			return Alert{
				Reason:  AlertAbandonmentRisk,
				Message: fmt.Sprintf("riesgo de abandono (%d días sin retirar)", days),
			}
		case age > pickupStaleAfter:
			return Alert{
				Reason:  AlertPickupStale,
				Message: fmt.Sprintf("listo para entrega hace %d días", days),
			}
		}
	}

	return Alert{Reason: AlertNone}
}
