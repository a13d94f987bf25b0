package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Part is a spare part in stock. Sale and cost prices here are the current
// list prices; orders snapshot them into their own line items.
type Part struct {
	ID           primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Name         string              `bson:"name" json:"name"`
	Brand        string              `bson:"brand,omitempty" json:"brand,omitempty"`
	Model        string              `bson:"model,omitempty" json:"model,omitempty"`
	SKU          string              `bson:"sku,omitempty" json:"sku,omitempty"`
	SalePrice    float64             `bson:"salePrice" json:"salePrice"`
	CostPrice    float64             `bson:"costPrice" json:"costPrice"`
	Stock        int                 `bson:"stock" json:"stock"`
	MinimumStock int                 `bson:"minimumStock" json:"minimumStock"`
	SupplierID   *primitive.ObjectID `bson:"supplierId,omitempty" json:"supplierId,omitempty"`
	IsDeleted    bool                `bson:"isDeleted" json:"isDeleted,omitempty"`
	CreatedAt    time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time           `bson:"updatedAt" json:"updatedAt"`
}
