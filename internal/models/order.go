package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WarrantyType selects how the warranty window is derived.
type WarrantyType string

const (
	Warranty30d    WarrantyType = "30d"
	Warranty60d    WarrantyType = "60d"
	Warranty90d    WarrantyType = "90d"
	WarrantyCustom WarrantyType = "custom"
	WarrantyNone   WarrantyType = "none"
)

// OrderPartItem is one spare-part line on an order. Prices are snapshots
// taken when the line was added and do not follow later part price edits.
type OrderPartItem struct {
	PartID        primitive.ObjectID `bson:"partId" json:"partId"`
	PartName      string             `bson:"partName" json:"partName"`
	Quantity      int                `bson:"quantity" json:"quantity"`
	UnitSalePrice float64            `bson:"unitSalePrice" json:"unitSalePrice"`
	UnitCostPrice float64            `bson:"unitCostPrice" json:"unitCostPrice"`
}

// OrderComment is one entry of the append-only diagnosis/progress history.
type OrderComment struct {
	UserID      primitive.ObjectID `bson:"userId" json:"userId"`
	UserName    string             `bson:"userName" json:"userName"`
	Description string             `bson:"description" json:"description"`
	Timestamp   time.Time          `bson:"timestamp" json:"timestamp"`
}

// LegalSnapshot holds the store policy texts copied verbatim from the branch
// settings when the order was created. These fields are write-once: later
// settings edits must never reach orders already on file, so a printed
// document always shows the terms the customer actually signed.
type LegalSnapshot struct {
	Disclaimer             string `bson:"disclaimer" json:"disclaimer"`
	PrivacyNotice          string `bson:"privacyNotice" json:"privacyNotice"`
	WarrantyVoidConditions string `bson:"warrantyVoidConditions" json:"warrantyVoidConditions"`
	PickupConditions       string `bson:"pickupConditions" json:"pickupConditions"`
	AbandonmentRiskDays    int    `bson:"abandonmentRiskDays" json:"abandonmentRiskDays"`
	AbandonmentFinalDays   int    `bson:"abandonmentFinalDays" json:"abandonmentFinalDays"`
}

// Order defines the persisted service order document, the aggregate root of
// the repair workflow.
type Order struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OrderNumber int64              `bson:"orderNumber" json:"orderNumber"`

	BranchID             primitive.ObjectID  `bson:"branchId" json:"branchId"`
	ClientID             primitive.ObjectID  `bson:"clientId" json:"clientId"`
	AssignedTechnicianID *primitive.ObjectID `bson:"assignedTechnicianId,omitempty" json:"assignedTechnicianId,omitempty"`
	PreviousOrderID      *primitive.ObjectID `bson:"previousOrderId,omitempty" json:"previousOrderId,omitempty"`

	DeviceBrand    string   `bson:"deviceBrand" json:"deviceBrand"`
	DeviceModel    string   `bson:"deviceModel" json:"deviceModel"`
	IMEI           string   `bson:"imei,omitempty" json:"imei,omitempty"`
	IMEINotVisible bool     `bson:"imeiNotVisible" json:"imeiNotVisible"`
	DeclaredFault  string   `bson:"declaredFault" json:"declaredFault"`
	CommonFaults   []string `bson:"commonFaults,omitempty" json:"commonFaults,omitempty"`

	UnlockPatternProvided bool      `bson:"unlockPatternProvided" json:"unlockPatternProvided"`
	UnlockCode            string    `bson:"unlockCode,omitempty" json:"unlockCode,omitempty"`
	Checklist             Checklist `bson:"checklist" json:"checklist"`

	PartsUsed     []OrderPartItem `bson:"partsUsed" json:"partsUsed"`
	CostSparePart float64         `bson:"costSparePart" json:"costSparePart"`
	CostLabor     float64         `bson:"costLabor" json:"costLabor"`
	CostPending   float64         `bson:"costPending" json:"costPending"`

	HasWarranty         bool         `bson:"hasWarranty" json:"hasWarranty"`
	WarrantyType        WarrantyType `bson:"warrantyType" json:"warrantyType"`
	WarrantyStartDate   *time.Time   `bson:"warrantyStartDate,omitempty" json:"warrantyStartDate,omitempty"`
	WarrantyEndDate     *time.Time   `bson:"warrantyEndDate,omitempty" json:"warrantyEndDate,omitempty"`
	WarrantyCoveredItem string       `bson:"warrantyCoveredItem,omitempty" json:"warrantyCoveredItem,omitempty"`
	WarrantyNotes       string       `bson:"warrantyNotes,omitempty" json:"warrantyNotes,omitempty"`

	LegalText LegalSnapshot `bson:"legalText" json:"legalText"`

	EntryDate          time.Time  `bson:"entryDate" json:"entryDate"`
	ReadyForPickupDate *time.Time `bson:"readyForPickupDate,omitempty" json:"readyForPickupDate,omitempty"`
	DeliveryDate       *time.Time `bson:"deliveryDate,omitempty" json:"deliveryDate,omitempty"`

	Status OrderStatus `bson:"status" json:"status"`

	CommentsHistory []OrderComment `bson:"commentsHistory" json:"commentsHistory"`

	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt" json:"updatedAt"`
	LastUpdatedBy string    `bson:"lastUpdatedBy" json:"lastUpdatedBy"`
}
