package models

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// TriState is the value of a single intake inspection item.
type TriState string

const (
	CheckYes       TriState = "si"
	CheckNo        TriState = "no"
	CheckUnchecked TriState = "sc"
)

// ChecklistItem identifies one inspection item. Keys are enumerated so an
// invalid item is a compile-time concern, not a runtime map lookup.
type ChecklistItem string

// Physical condition items, assessable on any device.
const (
	ItemHousing        ChecklistItem = "housing"
	ItemScreenGlass    ChecklistItem = "screenGlass"
	ItemButtons        ChecklistItem = "buttons"
	ItemBatteryCover   ChecklistItem = "batteryCover"
	ItemChassisScrews  ChecklistItem = "chassisScrews"
	ItemHumidityMarker ChecklistItem = "humidityMarker"
)

// Functional items, only assessable when the device can be unlocked.
const (
	ItemPowersOn     ChecklistItem = "powersOn"
	ItemTouch        ChecklistItem = "touch"
	ItemSpeaker      ChecklistItem = "speaker"
	ItemMicrophone   ChecklistItem = "microphone"
	ItemCameras      ChecklistItem = "cameras"
	ItemWifi         ChecklistItem = "wifi"
	ItemSimReader    ChecklistItem = "simReader"
	ItemChargingPort ChecklistItem = "chargingPort"
	ItemSensors      ChecklistItem = "sensors"
)

// Checklist maps each inspection item to its tri-state value.
type Checklist map[ChecklistItem]TriState

// UnmarshalBSONValue accepts string, boolean and null BSON values, allowing
// legacy documents that stored checklist entries as booleans to be decoded
// without failing the entire request.
func (t *TriState) UnmarshalBSONValue(bt bsontype.Type, data []byte) error {
	switch bt {
	case bsontype.Null, bsontype.Undefined:
		*t = CheckUnchecked
		return nil
	case bsontype.String:
		var value string
		if err := bson.UnmarshalValue(bt, data, &value); err != nil {
			return err
		}
		switch TriState(value) {
		case CheckYes, CheckNo, CheckUnchecked:
			*t = TriState(value)
		default:
			*t = CheckUnchecked
		}
		return nil
	case bsontype.Boolean:
		var value bool
		if err := bson.UnmarshalValue(bt, data, &value); err != nil {
			return err
		}
		if value {
			*t = CheckYes
		} else {
			*t = CheckNo
		}
		return nil
	default:
		return fmt.Errorf("cannot decode %s into TriState", bt)
	}
}
