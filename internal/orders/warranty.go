package orders

import (
	"time"

	"tallerapp/internal/models"
)

var warrantyDays = map[models.WarrantyType]int{
	models.Warranty30d: 30,
	models.Warranty60d: 60,
	models.Warranty90d: 90,
}

// SetWarranty derives the warranty window for the order. Template types
// anchor on the delivery date when set, otherwise on the given fallback
// anchor (normally now). Custom windows come from the caller and must be a
// proper range. "none" clears everything.
func SetWarranty(o *models.Order, typ models.WarrantyType, anchor time.Time, customStart, customEnd *time.Time) error {
	switch typ {
	case models.Warranty30d, models.Warranty60d, models.Warranty90d:
		if o.DeliveryDate != nil {
			anchor = *o.DeliveryDate
		}
		start := anchor
		end := anchor.AddDate(0, 0, warrantyDays[typ])
		o.HasWarranty = true
		o.WarrantyType = typ
		o.WarrantyStartDate = &start
		o.WarrantyEndDate = &end
	case models.WarrantyCustom:
		if customStart == nil || customEnd == nil {
			return ValidationError{Field: "warrantyStartDate", Message: "custom warranty requires start and end dates"}
		}
		if !customEnd.After(*customStart) {
			return ValidationError{Field: "warrantyEndDate", Message: "end date must be after start date"}
		}
		o.HasWarranty = true
		o.WarrantyType = typ
		o.WarrantyStartDate = customStart
		o.WarrantyEndDate = customEnd
	case models.WarrantyNone:
		o.HasWarranty = false
		o.WarrantyType = typ
		o.WarrantyStartDate = nil
		o.WarrantyEndDate = nil
	default:
		return ValidationError{Field: "warrantyType", Message: "unknown warranty type: " + string(typ)}
	}
	return nil
}

// ReanchorWarranty realigns a template warranty after the delivery date
// changed. Custom windows are fixed by hand and never move. Once the device
// was delivered the warranty is running, so a recompute only moves the
// window when forced; before delivery the recompute is safe to repeat.
func ReanchorWarranty(o *models.Order, now time.Time, force bool) {
	if _, ok := warrantyDays[o.WarrantyType]; !ok {
		return
	}
	if o.DeliveryDate != nil && !o.DeliveryDate.After(now) && !force {
		return
	}

	anchor := now
	if o.DeliveryDate != nil {
		anchor = *o.DeliveryDate
	}
	start := anchor
	end := anchor.AddDate(0, 0, warrantyDays[o.WarrantyType])
	o.WarrantyStartDate = &start
	o.WarrantyEndDate = &end
}
