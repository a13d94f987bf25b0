package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func sampleOrder(t *testing.T) Order {
	t.Helper()

	entry := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	ready := entry.AddDate(0, 0, 5)
	technician := primitive.NewObjectID()

	return Order{
		ID:                   primitive.NewObjectID(),
		OrderNumber:          1042,
		BranchID:             primitive.NewObjectID(),
		ClientID:             primitive.NewObjectID(),
		AssignedTechnicianID: &technician,
		DeviceBrand:          "Samsung",
		DeviceModel:          "A52",
		IMEI:                 "350000000000001",
		DeclaredFault:        "No carga",
		CommonFaults:         []string{"pin de carga"},
		UnlockPatternProvided: true,
		UnlockCode:            "1-3-5-7",
		Checklist: Checklist{
			ItemHousing:  CheckYes,
			ItemPowersOn: CheckNo,
		},
		PartsUsed: []OrderPartItem{
			{PartID: primitive.NewObjectID(), PartName: "Pin de carga", Quantity: 1, UnitSalePrice: 1500, UnitCostPrice: 700},
		},
		CostSparePart: 1500,
		CostLabor:     2000,
		CostPending:   500,
		HasWarranty:   true,
		WarrantyType:  Warranty30d,
		WarrantyStartDate: &ready,
		WarrantyEndDate:   func() *time.Time { d := ready.AddDate(0, 0, 30); return &d }(),
		LegalText: LegalSnapshot{
			Disclaimer:           "Texto legal congelado al ingreso.",
			PrivacyNotice:        "Aviso de privacidad.",
			PickupConditions:     "Retiro con comprobante.",
			AbandonmentRiskDays:  7,
			AbandonmentFinalDays: 14,
		},
		EntryDate:          entry,
		ReadyForPickupDate: &ready,
		Status:             StatusReadyForPickup,
		CommentsHistory: []OrderComment{
			{UserID: primitive.NewObjectID(), UserName: "Tec. Ramírez", Description: "Pin reemplazado", Timestamp: entry.AddDate(0, 0, 3)},
		},
		CreatedAt:     entry,
		UpdatedAt:     ready,
		LastUpdatedBy: "Tec. Ramírez",
	}
}

// The backup contract requires an order to survive the aggregate JSON shape
// without losing any field, snapshotted legal text and cost lines included.
func TestBackupOrderRoundTrip(t *testing.T) {
	original := Backup{
		BackupDate: time.Date(2025, 6, 10, 3, 0, 0, 0, time.UTC),
		Orders:     []Order{sampleOrder(t)},
		Clients: []Client{
			{ID: primitive.NewObjectID(), FirstName: "Ana", LastName: "Suárez", Phone: "555-0101", CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), UpdatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
		},
		Parts: []Part{
			{ID: primitive.NewObjectID(), Name: "Pin de carga", Stock: 4, SalePrice: 1500, CostPrice: 700, CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), UpdatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
		},
	}

	raw, err := json.Marshal(original)
	require.NoError(t, err)

	var restored Backup
	require.NoError(t, json.Unmarshal(raw, &restored))

	require.Equal(t, original, restored)
}

func TestTriStateDecodesLegacyBooleanDocuments(t *testing.T) {
	type doc struct {
		Value TriState `bson:"value"`
	}

	cases := []struct {
		raw  interface{}
		want TriState
	}{
		{true, CheckYes},
		{false, CheckNo},
		{"si", CheckYes},
		{"sc", CheckUnchecked},
		{"anything", CheckUnchecked},
		{nil, CheckUnchecked},
	}

	for _, tc := range cases {
		payload, err := bson.Marshal(bson.M{"value": tc.raw})
		require.NoError(t, err)

		var decoded doc
		require.NoError(t, bson.Unmarshal(payload, &decoded), "raw=%v", tc.raw)
		require.Equal(t, tc.want, decoded.Value, "raw=%v", tc.raw)
	}
}
