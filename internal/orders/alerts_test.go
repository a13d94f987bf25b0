package orders

import (
	"testing"
	"time"

	"tallerapp/internal/models"
)

func alertOrder(status models.OrderStatus) *models.Order {
	return &models.Order{
		Status:    status,
		EntryDate: date(2025, 5, 1),
		LegalText: models.LegalSnapshot{
			AbandonmentRiskDays:  7,
			AbandonmentFinalDays: 14,
		},
	}
}

func TestAwaitingPartsAlwaysAlerts(t *testing.T) {
	order := alertOrder(models.StatusAwaitingParts)
	alert := EvaluateAlert(order, date(2025, 5, 1).Add(time.Hour))
	if alert.Reason != AlertAwaitingParts {
		t.Fatalf("expected awaiting_parts, got %q", alert.Reason)
	}
}

func TestQuotedAlertsAfterThreeDays(t *testing.T) {
	order := alertOrder(models.StatusQuoted)

	if alert := EvaluateAlert(order, date(2025, 5, 3)); alert.Reason != AlertNone {
		t.Fatalf("quote two days old must not alert, got %q", alert.Reason)
	}
	if alert := EvaluateAlert(order, date(2025, 5, 5)); alert.Reason != AlertQuoteStale {
		t.Fatalf("quote four days old must alert, got %q", alert.Reason)
	}
}

func TestPickupEscalatesThroughAbandonmentTiers(t *testing.T) {
	ready := date(2025, 5, 1)
	order := alertOrder(models.StatusReadyForPickup)
	order.ReadyForPickupDate = &ready

	// 8 days with thresholds risk=7/final=14: risk tier, not yet abandoned.
	if alert := EvaluateAlert(order, ready.AddDate(0, 0, 8)); alert.Reason != AlertAbandonmentRisk {
		t.Fatalf("expected abandonment_risk at day 8, got %q", alert.Reason)
	}
	if alert := EvaluateAlert(order, ready.AddDate(0, 0, 15)); alert.Reason != AlertAbandonmentFinal {
		t.Fatalf("expected abandonment_final at day 15, got %q", alert.Reason)
	}
	if alert := EvaluateAlert(order, ready.AddDate(0, 0, 5)); alert.Reason != AlertNone {
		t.Fatalf("expected no alert at day 5, got %q", alert.Reason)
	}
}

func TestPickupStaleWithoutTierHit(t *testing.T) {
	ready := date(2025, 5, 1)
	order := alertOrder(models.StatusReadyForPickup)
	order.ReadyForPickupDate = &ready
	order.LegalText.AbandonmentRiskDays = 15
	order.LegalText.AbandonmentFinalDays = 30

	if alert := EvaluateAlert(order, ready.AddDate(0, 0, 8)); alert.Reason != AlertPickupStale {
		t.Fatalf("expected pickup_stale at day 8, got %q", alert.Reason)
	}
}

func TestTerminalStatesNeverAlert(t *testing.T) {
	ready := date(2025, 5, 1)
	for _, status := range []models.OrderStatus{
		models.StatusDelivered,
		models.StatusQuoteRejected,
		models.StatusNotRepaired,
	} {
		order := alertOrder(status)
		order.ReadyForPickupDate = &ready
		if alert := EvaluateAlert(order, ready.AddDate(0, 0, 100)); alert.Reason != AlertNone {
			t.Fatalf("%s must never alert, got %q", status, alert.Reason)
		}
	}
}
