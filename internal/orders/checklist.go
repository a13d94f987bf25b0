package orders

import "tallerapp/internal/models"

// PhysicalItems can be inspected on any device, locked or not.
var PhysicalItems = []models.ChecklistItem{
	models.ItemHousing,
	models.ItemScreenGlass,
	models.ItemButtons,
	models.ItemBatteryCover,
	models.ItemChassisScrews,
	models.ItemHumidityMarker,
}

// FunctionalItems require device access, so they are only meaningful when
// the customer provided the unlock pattern.
var FunctionalItems = []models.ChecklistItem{
	models.ItemPowersOn,
	models.ItemTouch,
	models.ItemSpeaker,
	models.ItemMicrophone,
	models.ItemCameras,
	models.ItemWifi,
	models.ItemSimReader,
	models.ItemChargingPort,
	models.ItemSensors,
}

func validTriState(v models.TriState) bool {
	return v == models.CheckYes || v == models.CheckNo || v == models.CheckUnchecked
}

// NormalizeChecklist builds the stored checklist from caller input. Unknown
// keys are dropped, missing items default to "sc", and every functional item
// is forced to "sc" when no unlock pattern was provided. Overrides are
// silent: a locked device simply cannot be inspected, the caller did
// nothing wrong.
func NormalizeChecklist(in models.Checklist, unlockProvided bool) models.Checklist {
	out := make(models.Checklist, len(PhysicalItems)+len(FunctionalItems))

	for _, item := range PhysicalItems {
		value := in[item]
		if !validTriState(value) {
			value = models.CheckUnchecked
		}
		out[item] = value
	}

	for _, item := range FunctionalItems {
		value := in[item]
		if !unlockProvided || !validTriState(value) {
			value = models.CheckUnchecked
		}
		out[item] = value
	}

	return out
}

// ChecklistSummary counts values per state, used by the condensed customer
// voucher instead of the full grid.
type ChecklistSummary struct {
	Yes       int `json:"yes"`
	No        int `json:"no"`
	Unchecked int `json:"unchecked"`
}

// Summarize tallies a checklist.
func Summarize(list models.Checklist) ChecklistSummary {
	var summary ChecklistSummary
	for _, value := range list {
		switch value {
		case models.CheckYes:
			summary.Yes++
		case models.CheckNo:
			summary.No++
		default:
			summary.Unchecked++
		}
	}
	return summary
}
