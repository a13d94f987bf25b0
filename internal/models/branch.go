package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BranchSettings holds the mutable store policy of a branch. Legal texts
// here are templates: each new order copies them into its own LegalSnapshot
// and never reads them again.
type BranchSettings struct {
	Disclaimer             string `bson:"disclaimer,omitempty" json:"disclaimer,omitempty"`
	PrivacyNotice          string `bson:"privacyNotice,omitempty" json:"privacyNotice,omitempty"`
	WarrantyVoidConditions string `bson:"warrantyVoidConditions,omitempty" json:"warrantyVoidConditions,omitempty"`
	PickupConditions       string `bson:"pickupConditions,omitempty" json:"pickupConditions,omitempty"`
	AbandonmentRiskDays    int    `bson:"abandonmentRiskDays,omitempty" json:"abandonmentRiskDays,omitempty"`
	AbandonmentFinalDays   int    `bson:"abandonmentFinalDays,omitempty" json:"abandonmentFinalDays,omitempty"`
	LogoPath               string `bson:"logoPath,omitempty" json:"logoPath,omitempty"`
}

// Branch is one physical shop location.
type Branch struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Address   string             `bson:"address,omitempty" json:"address,omitempty"`
	Phone     string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Settings  BranchSettings     `bson:"settings" json:"settings"`
	IsActive  bool               `bson:"isActive" json:"isActive"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
