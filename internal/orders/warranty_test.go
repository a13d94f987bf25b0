package orders

import (
	"testing"
	"time"

	"tallerapp/internal/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestSetWarrantyTemplateAnchorsOnDelivery(t *testing.T) {
	delivered := date(2025, 4, 1)
	order := &models.Order{DeliveryDate: &delivered}

	if err := SetWarranty(order, models.Warranty30d, date(2025, 4, 15), nil, nil); err != nil {
		t.Fatalf("SetWarranty failed: %v", err)
	}

	if !order.HasWarranty {
		t.Fatal("expected hasWarranty true")
	}
	if !order.WarrantyStartDate.Equal(delivered) {
		t.Fatalf("start must anchor on delivery date, got %v", order.WarrantyStartDate)
	}
	if !order.WarrantyEndDate.Equal(delivered.AddDate(0, 0, 30)) {
		t.Fatalf("end must be delivery + 30 days, got %v", order.WarrantyEndDate)
	}
}

func TestSetWarrantyTemplateFallsBackToAnchor(t *testing.T) {
	order := &models.Order{}
	anchor := date(2025, 4, 10)

	if err := SetWarranty(order, models.Warranty90d, anchor, nil, nil); err != nil {
		t.Fatalf("SetWarranty failed: %v", err)
	}
	if !order.WarrantyEndDate.Equal(anchor.AddDate(0, 0, 90)) {
		t.Fatalf("expected anchor + 90 days, got %v", order.WarrantyEndDate)
	}
}

func TestSetWarrantyCustomValidatesRange(t *testing.T) {
	order := &models.Order{}
	start := date(2025, 4, 1)
	end := date(2025, 3, 1)

	if err := SetWarranty(order, models.WarrantyCustom, time.Now(), &start, &end); err == nil {
		t.Fatal("expected rejection of end before start")
	}
	if err := SetWarranty(order, models.WarrantyCustom, time.Now(), &start, nil); err == nil {
		t.Fatal("expected rejection of missing end date")
	}

	goodEnd := date(2025, 6, 1)
	if err := SetWarranty(order, models.WarrantyCustom, time.Now(), &start, &goodEnd); err != nil {
		t.Fatalf("SetWarranty failed: %v", err)
	}
	if !order.WarrantyStartDate.Equal(start) || !order.WarrantyEndDate.Equal(goodEnd) {
		t.Fatal("custom window not stored as given")
	}
}

func TestSetWarrantyNoneClears(t *testing.T) {
	start := date(2025, 4, 1)
	end := date(2025, 5, 1)
	order := &models.Order{
		HasWarranty:       true,
		WarrantyType:      models.Warranty30d,
		WarrantyStartDate: &start,
		WarrantyEndDate:   &end,
	}

	if err := SetWarranty(order, models.WarrantyNone, time.Now(), nil, nil); err != nil {
		t.Fatalf("SetWarranty failed: %v", err)
	}
	if order.HasWarranty || order.WarrantyStartDate != nil || order.WarrantyEndDate != nil {
		t.Fatalf("none must clear the warranty, got %+v", order)
	}
}

func TestReanchorNeverMovesCustomWindow(t *testing.T) {
	start := date(2025, 4, 1)
	end := date(2025, 7, 1)
	delivered := date(2025, 5, 1)
	order := &models.Order{
		HasWarranty:       true,
		WarrantyType:      models.WarrantyCustom,
		WarrantyStartDate: &start,
		WarrantyEndDate:   &end,
		DeliveryDate:      &delivered,
	}

	ReanchorWarranty(order, date(2025, 5, 2), true)

	if !order.WarrantyStartDate.Equal(start) || !order.WarrantyEndDate.Equal(end) {
		t.Fatal("custom warranty window must never move, even forced")
	}
}

func TestReanchorAfterDeliveryNeedsForce(t *testing.T) {
	delivered := date(2025, 5, 1)
	start := date(2025, 4, 1)
	end := date(2025, 5, 1)
	order := &models.Order{
		HasWarranty:       true,
		WarrantyType:      models.Warranty30d,
		WarrantyStartDate: &start,
		WarrantyEndDate:   &end,
		DeliveryDate:      &delivered,
	}

	ReanchorWarranty(order, date(2025, 5, 10), false)
	if !order.WarrantyStartDate.Equal(start) {
		t.Fatal("recompute after delivery must be a no-op without force")
	}

	ReanchorWarranty(order, date(2025, 5, 10), true)
	if !order.WarrantyStartDate.Equal(delivered) {
		t.Fatalf("forced recompute must re-anchor on delivery, got %v", order.WarrantyStartDate)
	}
	if !order.WarrantyEndDate.Equal(delivered.AddDate(0, 0, 30)) {
		t.Fatalf("forced recompute end wrong: %v", order.WarrantyEndDate)
	}
}

func TestReanchorBeforeDeliveryIsSafeToRepeat(t *testing.T) {
	provisionalStart := date(2025, 4, 1)
	provisionalEnd := date(2025, 5, 1)
	order := &models.Order{
		HasWarranty:       true,
		WarrantyType:      models.Warranty60d,
		WarrantyStartDate: &provisionalStart,
		WarrantyEndDate:   &provisionalEnd,
	}

	now := date(2025, 4, 20)
	ReanchorWarranty(order, now, false)
	ReanchorWarranty(order, now, false)

	if !order.WarrantyStartDate.Equal(now) {
		t.Fatalf("expected re-anchor on now before delivery, got %v", order.WarrantyStartDate)
	}
	if !order.WarrantyEndDate.Equal(now.AddDate(0, 0, 60)) {
		t.Fatalf("expected now + 60 days, got %v", order.WarrantyEndDate)
	}
}
