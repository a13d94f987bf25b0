package printing

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"tallerapp/internal/models"
)

func printableOrder(status models.OrderStatus) *models.Order {
	entry := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	return &models.Order{
		ID:            primitive.NewObjectID(),
		OrderNumber:   77,
		DeviceBrand:   "Motorola",
		DeviceModel:   "G60",
		DeclaredFault: "Pantalla rota",
		UnlockPatternProvided: true,
		UnlockCode:            "2-4-6",
		Checklist: models.Checklist{
			models.ItemHousing:  models.CheckYes,
			models.ItemPowersOn: models.CheckYes,
		},
		PartsUsed: []models.OrderPartItem{
			{PartID: primitive.NewObjectID(), PartName: "Módulo de pantalla", Quantity: 1, UnitSalePrice: 9000, UnitCostPrice: 5500},
		},
		CostSparePart: 9000,
		CostLabor:     3000,
		LegalText: models.LegalSnapshot{
			Disclaimer:       "Términos congelados al ingreso.",
			PrivacyNotice:    "Aviso de privacidad.",
			PickupConditions: "Retiro con comprobante.",
		},
		EntryDate: entry,
		Status:    status,
	}
}

func printableClient() *models.Client {
	return &models.Client{FirstName: "Ana", LastName: "Suárez", Phone: "555-0101"}
}

func printableBranch() *models.Branch {
	return &models.Branch{
		Name:    "Sucursal Centro",
		Address: "Av. Siempre Viva 123",
		Settings: models.BranchSettings{
			LogoPath: "/public/logo.png",
			// Live legal text differs from the order snapshot on purpose:
			// documents must print the snapshot, never this.
			Disclaimer: "Términos nuevos que el cliente nunca firmó.",
		},
	}
}

func TestShopCopyUsesSnapshotLegalTextNotLiveSettings(t *testing.T) {
	doc, err := RenderShopCopy(printableOrder(models.StatusReceived), printableClient(), printableBranch())
	require.NoError(t, err)

	assert.Equal(t, "Términos congelados al ingreso.", doc.Legal.Disclaimer)
	assert.Equal(t, "/public/logo.png", doc.Header.LogoPath, "presentation fields come from live settings")
	assert.Equal(t, int64(77), doc.Header.OrderNumber)
	assert.NotEmpty(t, doc.Header.QRCodePNG)
}

func TestShopCopySectionGatingFollowsStatus(t *testing.T) {
	intake, err := RenderShopCopy(printableOrder(models.StatusReceived), printableClient(), printableBranch())
	require.NoError(t, err)
	assert.NotEmpty(t, intake.Checklist, "intake context prints the checklist grid")
	assert.Nil(t, intake.Budget, "no budget section at intake")
	assert.True(t, intake.Signatures.Reception)
	assert.False(t, intake.Signatures.Delivery)

	repair, err := RenderShopCopy(printableOrder(models.StatusRepairing), printableClient(), printableBranch())
	require.NoError(t, err)
	assert.Empty(t, repair.Checklist)
	assert.NotNil(t, repair.Budget)

	delivery, err := RenderShopCopy(printableOrder(models.StatusReadyForPickup), printableClient(), printableBranch())
	require.NoError(t, err)
	assert.True(t, delivery.Signatures.Delivery)
}

func TestCustomerVoucherNeverLeaksInternalFields(t *testing.T) {
	order := printableOrder(models.StatusQuoted)
	doc, err := RenderCustomerVoucher(order, printableClient(), printableBranch())
	require.NoError(t, err)

	raw, err := json.Marshal(doc)
	require.NoError(t, err)
	payload := string(raw)

	assert.NotContains(t, payload, order.UnlockCode, "unlock code must never print on the voucher")
	assert.NotContains(t, payload, "unitCostPrice")
	require.NotNil(t, doc.Budget)
	for _, line := range doc.Budget.Lines {
		assert.Equal(t, 9000.0, line.UnitSalePrice, "only the sale price prints")
	}

	assert.True(t, doc.Signatures.Reception, "voucher always carries the reception signature")
	assert.Equal(t, "Ana Suárez", doc.Client.Name)
	assert.Equal(t, 2, doc.ChecklistSummary.Yes)
}

func TestDuplicateTalonSharesHeaderAcrossStubs(t *testing.T) {
	doc, err := RenderDuplicateTalon(printableOrder(models.StatusReceived), printableClient(), printableBranch())
	require.NoError(t, err)

	assert.Equal(t, doc.ShopStub.OrderNumber, doc.CustomerStub.OrderNumber)
	assert.Equal(t, "shop", doc.ShopStub.Audience)
	assert.Equal(t, "customer", doc.CustomerStub.Audience)
	assert.Equal(t, "Retiro con comprobante.", doc.CustomerStub.Pickup)
	assert.Empty(t, doc.ShopStub.Pickup)
	assert.Contains(t, doc.ShopStub.Device, "Motorola")
}

func TestRenderDocumentDispatchesVariants(t *testing.T) {
	order := printableOrder(models.StatusReceived)

	for _, raw := range []string{"shop-copy", "customer-voucher", "duplicate-talon"} {
		variant, err := ParseVariant(raw)
		require.NoError(t, err)

		doc, err := RenderDocument(order, printableClient(), printableBranch(), variant)
		require.NoError(t, err)
		require.NotNil(t, doc)

		payload, err := json.Marshal(doc)
		require.NoError(t, err)
		assert.True(t, strings.Contains(string(payload), `"orderNumber":77`), "all variants share the order number")
	}

	_, err := ParseVariant("poster")
	assert.Error(t, err)
}
