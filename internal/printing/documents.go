package printing

import (
	"time"

	"tallerapp/internal/models"
	"tallerapp/internal/orders"
)

// Variant names the printable document variants the print route serves.
type Variant string

const (
	VariantShopCopy        Variant = "shop-copy"
	VariantCustomerVoucher Variant = "customer-voucher"
	VariantDuplicateTalon  Variant = "duplicate-talon"
)

// ParseVariant resolves a route parameter to a known variant.
func ParseVariant(raw string) (Variant, error) {
	switch Variant(raw) {
	case VariantShopCopy, VariantCustomerVoucher, VariantDuplicateTalon:
		return Variant(raw), nil
	default:
		return "", orders.ValidationError{Field: "variant", Message: "unknown document variant: " + raw}
	}
}

// checklistLabels are the printed row labels, in grid order.
var checklistLabels = map[models.ChecklistItem]string{
	models.ItemHousing:        "Carcasa",
	models.ItemScreenGlass:    "Vidrio / pantalla",
	models.ItemButtons:        "Botones",
	models.ItemBatteryCover:   "Tapa de batería",
	models.ItemChassisScrews:  "Tornillos de chasis",
	models.ItemHumidityMarker: "Marcador de humedad",
	models.ItemPowersOn:       "Enciende",
	models.ItemTouch:          "Táctil",
	models.ItemSpeaker:        "Altavoz",
	models.ItemMicrophone:     "Micrófono",
	models.ItemCameras:        "Cámaras",
	models.ItemWifi:           "WiFi",
	models.ItemSimReader:      "Lector SIM",
	models.ItemChargingPort:   "Puerto de carga",
	models.ItemSensors:        "Sensores",
}

// Header is shared by every variant. Branch presentation fields (name, logo)
// come from the live branch document; everything legally sensitive comes
// from the order's own snapshot.
type Header struct {
	OrderNumber   int64              `json:"orderNumber"`
	BranchName    string             `json:"branchName"`
	BranchAddress string             `json:"branchAddress,omitempty"`
	BranchPhone   string             `json:"branchPhone,omitempty"`
	LogoPath      string             `json:"logoPath,omitempty"`
	EntryDate     time.Time          `json:"entryDate"`
	Status        models.OrderStatus `json:"status"`
	QRCodePNG     string             `json:"qrCodePng"`
}

// ClientBlock identifies the customer on printed documents.
type ClientBlock struct {
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
}

// DeviceBlock identifies the device.
type DeviceBlock struct {
	Brand          string `json:"brand"`
	Model          string `json:"model"`
	IMEI           string `json:"imei,omitempty"`
	IMEINotVisible bool   `json:"imeiNotVisible"`
	DeclaredFault  string `json:"declaredFault"`
}

// ChecklistRow is one line of the technician checklist grid.
type ChecklistRow struct {
	Item       models.ChecklistItem `json:"item"`
	Label      string               `json:"label"`
	Value      models.TriState      `json:"value"`
	Functional bool                 `json:"functional"`
}

// BudgetBlock is the customer-facing cost summary. It never exposes unit
// cost prices; margins stay internal.
type BudgetBlock struct {
	Lines         []BudgetLine `json:"lines"`
	CostSparePart float64      `json:"costSparePart"`
	CostLabor     float64      `json:"costLabor"`
	CostPending   float64      `json:"costPending"`
	TotalEstimate float64      `json:"totalEstimate"`
}

// BudgetLine is one printed part line.
type BudgetLine struct {
	PartName      string  `json:"partName"`
	Quantity      int     `json:"quantity"`
	UnitSalePrice float64 `json:"unitSalePrice"`
	Subtotal      float64 `json:"subtotal"`
}

// WarrantyBlock prints the warranty window.
type WarrantyBlock struct {
	Type        models.WarrantyType `json:"type"`
	StartDate   *time.Time          `json:"startDate,omitempty"`
	EndDate     *time.Time          `json:"endDate,omitempty"`
	CoveredItem string              `json:"coveredItem,omitempty"`
	Notes       string              `json:"notes,omitempty"`
}

// LegalBlock carries the snapshotted policy text.
type LegalBlock struct {
	Disclaimer             string `json:"disclaimer"`
	PrivacyNotice          string `json:"privacyNotice,omitempty"`
	WarrantyVoidConditions string `json:"warrantyVoidConditions,omitempty"`
	PickupConditions       string `json:"pickupConditions"`
}

// SignatureBlocks gates which signature lines print for the current status.
type SignatureBlocks struct {
	Reception bool `json:"reception"`
	Delivery  bool `json:"delivery"`
}

// ShopCopy is the full technician/shop document.
type ShopCopy struct {
	Variant    Variant                `json:"variant"`
	Header     Header                 `json:"header"`
	Client     ClientBlock            `json:"client"`
	Device     DeviceBlock            `json:"device"`
	UnlockInfo *UnlockBlock           `json:"unlockInfo,omitempty"`
	Checklist  []ChecklistRow         `json:"checklist,omitempty"`
	Comments   []models.OrderComment  `json:"comments,omitempty"`
	Budget     *BudgetBlock           `json:"budget,omitempty"`
	Warranty   *WarrantyBlock         `json:"warranty,omitempty"`
	Legal      LegalBlock             `json:"legal"`
	Signatures SignatureBlocks        `json:"signatures"`
}

// UnlockBlock is internal-only device access info; never printed on
// customer-facing variants.
type UnlockBlock struct {
	PatternProvided bool   `json:"patternProvided"`
	Code            string `json:"code,omitempty"`
}

// CustomerVoucher is the condensed customer document.
type CustomerVoucher struct {
	Variant          Variant                 `json:"variant"`
	Header           Header                  `json:"header"`
	Client           ClientBlock             `json:"client"`
	Device           DeviceBlock             `json:"device"`
	ChecklistSummary orders.ChecklistSummary `json:"checklistSummary"`
	Budget           *BudgetBlock            `json:"budget,omitempty"`
	Warranty         *WarrantyBlock          `json:"warranty,omitempty"`
	Legal            LegalBlock              `json:"legal"`
	// The voucher always carries the single "received in stated condition"
	// reception signature.
	Signatures SignatureBlocks `json:"signatures"`
}

// TalonStub is one half of the detachable duplicate.
type TalonStub struct {
	Audience    string             `json:"audience"`
	OrderNumber int64              `json:"orderNumber"`
	ClientName  string             `json:"clientName"`
	Device      string             `json:"device"`
	EntryDate   time.Time          `json:"entryDate"`
	Status      models.OrderStatus `json:"status"`
	Pickup      string             `json:"pickupConditions,omitempty"`
}

// DuplicateTalon is the two-stub tear-off document.
type DuplicateTalon struct {
	Variant      Variant   `json:"variant"`
	Header       Header    `json:"header"`
	ShopStub     TalonStub `json:"shopStub"`
	CustomerStub TalonStub `json:"customerStub"`
}

// RenderDocument builds the requested variant from one order snapshot. All
// three variants derive from the same inputs; nothing is re-queried.
func RenderDocument(o *models.Order, client *models.Client, branch *models.Branch, variant Variant) (interface{}, error) {
	switch variant {
	case VariantShopCopy:
		return RenderShopCopy(o, client, branch)
	case VariantCustomerVoucher:
		return RenderCustomerVoucher(o, client, branch)
	case VariantDuplicateTalon:
		return RenderDuplicateTalon(o, client, branch)
	default:
		return nil, orders.ValidationError{Field: "variant", Message: "unknown document variant: " + string(variant)}
	}
}

func buildHeader(o *models.Order, branch *models.Branch) (Header, error) {
	qr, err := orderQR(o.OrderNumber)
	if err != nil {
		return Header{}, err
	}
	header := Header{
		OrderNumber: o.OrderNumber,
		EntryDate:   o.EntryDate,
		Status:      o.Status,
		QRCodePNG:   qr,
	}
	if branch != nil {
		header.BranchName = branch.Name
		header.BranchAddress = branch.Address
		header.BranchPhone = branch.Phone
		header.LogoPath = branch.Settings.LogoPath
	}
	return header, nil
}

func buildClientBlock(client *models.Client) ClientBlock {
	if client == nil {
		return ClientBlock{}
	}
	return ClientBlock{Name: client.FullName(), Phone: client.Phone}
}

func buildDeviceBlock(o *models.Order) DeviceBlock {
	return DeviceBlock{
		Brand:          o.DeviceBrand,
		Model:          o.DeviceModel,
		IMEI:           o.IMEI,
		IMEINotVisible: o.IMEINotVisible,
		DeclaredFault:  o.DeclaredFault,
	}
}

func buildChecklistGrid(o *models.Order) []ChecklistRow {
	rows := make([]ChecklistRow, 0, len(orders.PhysicalItems)+len(orders.FunctionalItems))
	for _, item := range orders.PhysicalItems {
		rows = append(rows, ChecklistRow{
			Item:  item,
			Label: checklistLabels[item],
			Value: o.Checklist[item],
		})
	}
	for _, item := range orders.FunctionalItems {
		rows = append(rows, ChecklistRow{
			Item:       item,
			Label:      checklistLabels[item],
			Value:      o.Checklist[item],
			Functional: true,
		})
	}
	return rows
}

func buildBudgetBlock(o *models.Order) *BudgetBlock {
	lines := make([]BudgetLine, 0, len(o.PartsUsed))
	for _, line := range o.PartsUsed {
		lines = append(lines, BudgetLine{
			PartName:      line.PartName,
			Quantity:      line.Quantity,
			UnitSalePrice: line.UnitSalePrice,
			Subtotal:      float64(line.Quantity) * line.UnitSalePrice,
		})
	}
	return &BudgetBlock{
		Lines:         lines,
		CostSparePart: o.CostSparePart,
		CostLabor:     o.CostLabor,
		CostPending:   o.CostPending,
		TotalEstimate: orders.TotalEstimate(o),
	}
}

func buildWarrantyBlock(o *models.Order) *WarrantyBlock {
	if !o.HasWarranty {
		return nil
	}
	return &WarrantyBlock{
		Type:        o.WarrantyType,
		StartDate:   o.WarrantyStartDate,
		EndDate:     o.WarrantyEndDate,
		CoveredItem: o.WarrantyCoveredItem,
		Notes:       o.WarrantyNotes,
	}
}

func signatureBlocks(status models.OrderStatus) SignatureBlocks {
	return SignatureBlocks{
		Reception: orders.InContext(status, orders.ContextIntake),
		Delivery:  orders.InContext(status, orders.ContextDelivery),
	}
}

// RenderShopCopy builds the full technician document. Sections print only
// while the status sits in the bucket that owns them: the checklist grid in
// intake, the budget from the quote stage onward, technical comments during
// repair, the warranty block in delivery.
func RenderShopCopy(o *models.Order, client *models.Client, branch *models.Branch) (*ShopCopy, error) {
	header, err := buildHeader(o, branch)
	if err != nil {
		return nil, err
	}

	doc := &ShopCopy{
		Variant: VariantShopCopy,
		Header:  header,
		Client:  buildClientBlock(client),
		Device:  buildDeviceBlock(o),
		UnlockInfo: &UnlockBlock{
			PatternProvided: o.UnlockPatternProvided,
			Code:            o.UnlockCode,
		},
		Legal: LegalBlock{
			Disclaimer:             o.LegalText.Disclaimer,
			PrivacyNotice:          o.LegalText.PrivacyNotice,
			WarrantyVoidConditions: o.LegalText.WarrantyVoidConditions,
			PickupConditions:       o.LegalText.PickupConditions,
		},
		Signatures: signatureBlocks(o.Status),
	}

	if orders.InContext(o.Status, orders.ContextIntake) {
		doc.Checklist = buildChecklistGrid(o)
	}
	if orders.InContext(o.Status, orders.ContextQuote) || orders.InContext(o.Status, orders.ContextRepair) || orders.InContext(o.Status, orders.ContextDelivery) {
		doc.Budget = buildBudgetBlock(o)
	}
	if orders.InContext(o.Status, orders.ContextRepair) {
		doc.Comments = o.CommentsHistory
	}
	if orders.InContext(o.Status, orders.ContextDelivery) {
		doc.Warranty = buildWarrantyBlock(o)
	}

	return doc, nil
}

// RenderCustomerVoucher builds the condensed customer document. Internal
// fields (unlock code, cost prices) never appear here.
func RenderCustomerVoucher(o *models.Order, client *models.Client, branch *models.Branch) (*CustomerVoucher, error) {
	header, err := buildHeader(o, branch)
	if err != nil {
		return nil, err
	}

	doc := &CustomerVoucher{
		Variant:          VariantCustomerVoucher,
		Header:           header,
		Client:           buildClientBlock(client),
		Device:           buildDeviceBlock(o),
		ChecklistSummary: orders.Summarize(o.Checklist),
		Legal: LegalBlock{
			// Abbreviated terms: the voucher prints the disclaimer and the
			// pickup conditions, the texts the customer signs against.
			Disclaimer:       o.LegalText.Disclaimer,
			PickupConditions: o.LegalText.PickupConditions,
		},
		Signatures: SignatureBlocks{Reception: true},
	}

	if orders.InContext(o.Status, orders.ContextQuote) || orders.InContext(o.Status, orders.ContextDelivery) {
		doc.Budget = buildBudgetBlock(o)
	}
	if orders.InContext(o.Status, orders.ContextDelivery) {
		doc.Warranty = buildWarrantyBlock(o)
	}

	return doc, nil
}

// RenderDuplicateTalon builds the tear-off duplicate: a shop stub and a
// customer stub sharing the header and order number, without the technical
// sections.
func RenderDuplicateTalon(o *models.Order, client *models.Client, branch *models.Branch) (*DuplicateTalon, error) {
	header, err := buildHeader(o, branch)
	if err != nil {
		return nil, err
	}

	clientName := buildClientBlock(client).Name
	device := o.DeviceBrand + " " + o.DeviceModel

	stub := TalonStub{
		OrderNumber: o.OrderNumber,
		ClientName:  clientName,
		Device:      device,
		EntryDate:   o.EntryDate,
		Status:      o.Status,
	}

	shopStub := stub
	shopStub.Audience = "shop"

	customerStub := stub
	customerStub.Audience = "customer"
	customerStub.Pickup = o.LegalText.PickupConditions

	return &DuplicateTalon{
		Variant:      VariantDuplicateTalon,
		Header:       header,
		ShopStub:     shopStub,
		CustomerStub: customerStub,
	}, nil
}
