package orders

import (
	"testing"

	"tallerapp/internal/models"
)

func TestNormalizeChecklistForcesFunctionalItemsWithoutUnlock(t *testing.T) {
	in := models.Checklist{
		models.ItemHousing:  models.CheckYes,
		models.ItemPowersOn: models.CheckYes,
		models.ItemSpeaker:  models.CheckNo,
	}

	out := NormalizeChecklist(in, false)

	if out[models.ItemPowersOn] != models.CheckUnchecked {
		t.Fatalf("functional item not forced to sc: %q", out[models.ItemPowersOn])
	}
	if out[models.ItemSpeaker] != models.CheckUnchecked {
		t.Fatalf("functional item not forced to sc: %q", out[models.ItemSpeaker])
	}
	if out[models.ItemHousing] != models.CheckYes {
		t.Fatalf("physical item must never be gated, got %q", out[models.ItemHousing])
	}
}

func TestNormalizeChecklistKeepsFunctionalValuesWithUnlock(t *testing.T) {
	in := models.Checklist{
		models.ItemPowersOn: models.CheckYes,
		models.ItemTouch:    models.CheckNo,
	}

	out := NormalizeChecklist(in, true)

	if out[models.ItemPowersOn] != models.CheckYes || out[models.ItemTouch] != models.CheckNo {
		t.Fatalf("functional values lost with unlock provided: %v", out)
	}
}

func TestNormalizeChecklistFillsMissingAndDropsUnknown(t *testing.T) {
	in := models.Checklist{
		models.ChecklistItem("antena"): models.CheckYes,
		models.ItemButtons:             models.TriState("maybe"),
	}

	out := NormalizeChecklist(in, true)

	if _, ok := out[models.ChecklistItem("antena")]; ok {
		t.Fatal("unknown item must be dropped")
	}
	if out[models.ItemButtons] != models.CheckUnchecked {
		t.Fatalf("invalid value must coerce to sc, got %q", out[models.ItemButtons])
	}
	if len(out) != len(PhysicalItems)+len(FunctionalItems) {
		t.Fatalf("every enumerated item must be present, got %d entries", len(out))
	}
	if out[models.ItemHumidityMarker] != models.CheckUnchecked {
		t.Fatalf("missing item must default to sc, got %q", out[models.ItemHumidityMarker])
	}
}

func TestSummarizeCountsPerState(t *testing.T) {
	list := NormalizeChecklist(models.Checklist{
		models.ItemHousing:     models.CheckYes,
		models.ItemScreenGlass: models.CheckNo,
		models.ItemPowersOn:    models.CheckYes,
	}, true)

	summary := Summarize(list)
	if summary.Yes != 2 || summary.No != 1 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
	if summary.Yes+summary.No+summary.Unchecked != len(PhysicalItems)+len(FunctionalItems) {
		t.Fatalf("summary does not cover all items: %+v", summary)
	}
}
