package orders

import (
	"fmt"
	"math"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"tallerapp/internal/models"
)

func roundMoney(amount float64) float64 {
	return math.Round(amount*100) / 100
}

func validateMoney(field string, amount float64) error {
	if amount < 0 {
		return ValidationError{Field: field, Message: "amount must be zero or greater"}
	}
	return nil
}

// AddPart appends a spare-part line to the order, snapshotting the prices as
// they are today. A part may appear only once; changing its quantity goes
// through UpdateQuantity.
func AddPart(o *models.Order, partID primitive.ObjectID, partName string, quantity int, unitSalePrice, unitCostPrice float64) error {
	if quantity < 1 {
		return ValidationError{Field: "quantity", Message: "quantity must be at least 1"}
	}
	if err := validateMoney("unitSalePrice", unitSalePrice); err != nil {
		return err
	}
	if err := validateMoney("unitCostPrice", unitCostPrice); err != nil {
		return err
	}
	for _, line := range o.PartsUsed {
		if line.PartID == partID {
			return ValidationError{Field: "partId", Message: "part already on the order"}
		}
	}

	o.PartsUsed = append(o.PartsUsed, models.OrderPartItem{
		PartID:        partID,
		PartName:      partName,
		Quantity:      quantity,
		UnitSalePrice: roundMoney(unitSalePrice),
		UnitCostPrice: roundMoney(unitCostPrice),
	})
	RecomputeSparePartCost(o)
	return nil
}

// UpdateQuantity changes the quantity of an existing line.
func UpdateQuantity(o *models.Order, lineIndex, quantity int) error {
	if lineIndex < 0 || lineIndex >= len(o.PartsUsed) {
		return ValidationError{Field: "lineIndex", Message: fmt.Sprintf("no part line at index %d", lineIndex)}
	}
	if quantity < 1 {
		return ValidationError{Field: "quantity", Message: "quantity must be at least 1"}
	}
	o.PartsUsed[lineIndex].Quantity = quantity
	RecomputeSparePartCost(o)
	return nil
}

// RemoveLine deletes a part line.
func RemoveLine(o *models.Order, lineIndex int) error {
	if lineIndex < 0 || lineIndex >= len(o.PartsUsed) {
		return ValidationError{Field: "lineIndex", Message: fmt.Sprintf("no part line at index %d", lineIndex)}
	}
	o.PartsUsed = append(o.PartsUsed[:lineIndex], o.PartsUsed[lineIndex+1:]...)
	RecomputeSparePartCost(o)
	return nil
}

// RecomputeSparePartCost derives costSparePart from the part lines. This is
// the only writer of the field; it is never edited directly.
func RecomputeSparePartCost(o *models.Order) {
	total := 0.0
	for _, line := range o.PartsUsed {
		total += float64(line.Quantity) * line.UnitSalePrice
	}
	o.CostSparePart = roundMoney(total)
}

// SetLaborCost assigns the manually entered labor cost.
func SetLaborCost(o *models.Order, amount float64) error {
	if err := validateMoney("costLabor", amount); err != nil {
		return err
	}
	o.CostLabor = roundMoney(amount)
	return nil
}

// SetPendingCost assigns the outstanding invoiced-but-unpaid balance.
func SetPendingCost(o *models.Order, amount float64) error {
	if err := validateMoney("costPending", amount); err != nil {
		return err
	}
	o.CostPending = roundMoney(amount)
	return nil
}

// TotalEstimate is parts plus labor. Pending balance is money already
// invoiced, not part of the estimate.
func TotalEstimate(o *models.Order) float64 {
	return roundMoney(o.CostSparePart + o.CostLabor)
}
