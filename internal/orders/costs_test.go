package orders

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"tallerapp/internal/models"
)

func TestAddPartDerivesSparePartCost(t *testing.T) {
	order := &models.Order{}

	if err := AddPart(order, primitive.NewObjectID(), "Pantalla", 2, 500, 300); err != nil {
		t.Fatalf("AddPart failed: %v", err)
	}
	if err := AddPart(order, primitive.NewObjectID(), "Batería", 1, 1000, 600); err != nil {
		t.Fatalf("AddPart failed: %v", err)
	}

	if order.CostSparePart != 2000 {
		t.Fatalf("expected costSparePart 2000, got %v", order.CostSparePart)
	}
}

func TestAddPartRejectsDuplicateAndBadInput(t *testing.T) {
	order := &models.Order{}
	partID := primitive.NewObjectID()

	if err := AddPart(order, partID, "Pantalla", 1, 500, 300); err != nil {
		t.Fatalf("AddPart failed: %v", err)
	}
	if err := AddPart(order, partID, "Pantalla", 1, 500, 300); err == nil {
		t.Fatal("expected rejection of duplicate part")
	}
	if err := AddPart(order, primitive.NewObjectID(), "Flex", 0, 100, 50); err == nil {
		t.Fatal("expected rejection of zero quantity")
	}
	if err := AddPart(order, primitive.NewObjectID(), "Flex", 1, -100, 50); err == nil {
		t.Fatal("expected rejection of negative price")
	}
	if order.CostSparePart != 500 {
		t.Fatalf("rejected operations must not change the total, got %v", order.CostSparePart)
	}
}

func TestUpdateQuantityAndRemoveRecompute(t *testing.T) {
	order := &models.Order{}
	if err := AddPart(order, primitive.NewObjectID(), "Pantalla", 2, 500, 300); err != nil {
		t.Fatalf("AddPart failed: %v", err)
	}
	if err := AddPart(order, primitive.NewObjectID(), "Batería", 1, 1000, 600); err != nil {
		t.Fatalf("AddPart failed: %v", err)
	}

	if err := UpdateQuantity(order, 0, 3); err != nil {
		t.Fatalf("UpdateQuantity failed: %v", err)
	}
	if order.CostSparePart != 2500 {
		t.Fatalf("expected 2500 after quantity update, got %v", order.CostSparePart)
	}

	if err := UpdateQuantity(order, 0, 0); err == nil {
		t.Fatal("expected rejection of quantity below 1")
	}
	if err := UpdateQuantity(order, 5, 1); err == nil {
		t.Fatal("expected rejection of out-of-range line index")
	}

	if err := RemoveLine(order, 1); err != nil {
		t.Fatalf("RemoveLine failed: %v", err)
	}
	if order.CostSparePart != 1500 {
		t.Fatalf("expected 1500 after removal, got %v", order.CostSparePart)
	}
}

func TestTotalEstimateExcludesPending(t *testing.T) {
	order := &models.Order{}
	if err := AddPart(order, primitive.NewObjectID(), "Pantalla", 1, 800, 500); err != nil {
		t.Fatalf("AddPart failed: %v", err)
	}
	if err := SetLaborCost(order, 200); err != nil {
		t.Fatalf("SetLaborCost failed: %v", err)
	}
	if err := SetPendingCost(order, 300); err != nil {
		t.Fatalf("SetPendingCost failed: %v", err)
	}

	if got := TotalEstimate(order); got != 1000 {
		t.Fatalf("expected estimate 1000, got %v", got)
	}
}

func TestSetLaborCostRejectsNegative(t *testing.T) {
	order := &models.Order{CostLabor: 150}
	if err := SetLaborCost(order, -1); err == nil {
		t.Fatal("expected rejection of negative labor cost")
	}
	if order.CostLabor != 150 {
		t.Fatalf("rejected assignment must not change the value, got %v", order.CostLabor)
	}
}

func TestMoneyRoundsToTwoDecimals(t *testing.T) {
	order := &models.Order{}
	if err := AddPart(order, primitive.NewObjectID(), "Flex", 3, 10.004, 20); err != nil {
		t.Fatalf("AddPart failed: %v", err)
	}
	// Unit price rounds to 10.00 on the way in.
	if order.PartsUsed[0].UnitSalePrice != 10.00 {
		t.Fatalf("expected unit price 10.00, got %v", order.PartsUsed[0].UnitSalePrice)
	}
	if order.CostSparePart != 30.00 {
		t.Fatalf("expected 30.00, got %v", order.CostSparePart)
	}
}
