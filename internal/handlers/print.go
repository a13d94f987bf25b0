package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"tallerapp/internal/models"
	"tallerapp/internal/orders"
	"tallerapp/internal/printing"
)

// PrintOrderDocument serves one printable variant of an order. All legally
// sensitive text comes from the order's own snapshot; the live branch
// document only contributes presentation fields such as the logo.
func PrintOrderDocument(db *mongo.Database, repo orders.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /orders/:id/print/:variant"
		defer handlePanic(c, route)

		id, err := parseObjectID("id", c.Param("id"))
		if err != nil {
			respondWithDomainError(c, route, err)
			return
		}

		variant, err := printing.ParseVariant(c.Param("variant"))
		if err != nil {
			respondWithDomainError(c, route, err)
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		order, err := repo.GetByID(ctx, id)
		if err != nil {
			respondWithDomainError(c, route, err)
			return
		}

		var client *models.Client
		var clientDoc models.Client
		err = db.Collection("clients").FindOne(ctx, bson.M{"_id": order.ClientID}).Decode(&clientDoc)
		if err == nil {
			client = &clientDoc
		} else if err != mongo.ErrNoDocuments {
			respondWithDomainError(c, route, err)
			return
		}

		var branch *models.Branch
		var branchDoc models.Branch
		err = db.Collection("branches").FindOne(ctx, bson.M{"_id": order.BranchID}).Decode(&branchDoc)
		if err == nil {
			branch = &branchDoc
		} else if err != mongo.ErrNoDocuments {
			respondWithDomainError(c, route, err)
			return
		}

		doc, err := printing.RenderDocument(order, client, branch, variant)
		if err != nil {
			respondWithDomainError(c, route, err)
			return
		}

		c.JSON(http.StatusOK, doc)
	}
}
