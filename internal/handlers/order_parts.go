package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"tallerapp/internal/models"
	"tallerapp/internal/orders"
)

type partsEditRequest struct {
	Action    string `json:"action" binding:"required,oneof=add updateQuantity remove"`
	PartID    string `json:"partId"`
	Quantity  int    `json:"quantity"`
	LineIndex *int   `json:"lineIndex"`
}

// EditOrderParts mutates the spare-part lines of an order. The cost ledger
// runs in memory first; persistence and the matching stock adjustment happen
// in one transaction, so an out-of-stock part leaves both the order and the
// inventory untouched.
func EditOrderParts(db *mongo.Database, repo orders.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /orders/:id/parts"
		defer handlePanic(c, route)

		id, err := parseObjectID("id", c.Param("id"))
		if err != nil {
			respondWithDomainError(c, route, err)
			return
		}

		var req partsEditRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		order, err := repo.GetByID(ctx, id)
		if err != nil {
			respondWithDomainError(c, route, err)
			return
		}

		before := make([]models.OrderPartItem, len(order.PartsUsed))
		copy(before, order.PartsUsed)

		switch req.Action {
		case "add":
			partID, err := parseObjectID("partId", req.PartID)
			if err != nil {
				respondWithDomainError(c, route, err)
				return
			}

			var part models.Part
			err = db.Collection("parts").FindOne(ctx, bson.M{
				"_id":       partID,
				"isDeleted": bson.M{"$ne": true},
			}).Decode(&part)
			if err == mongo.ErrNoDocuments {
				respondWithDomainError(c, route, orders.NotFoundError{Resource: "part", ID: partID.Hex()})
				return
			}
			if err != nil {
				respondWithDomainError(c, route, err)
				return
			}

			if err := orders.AddPart(order, part.ID, part.Name, req.Quantity, part.SalePrice, part.CostPrice); err != nil {
				respondWithDomainError(c, route, err)
				return
			}

		case "updateQuantity":
			if req.LineIndex == nil {
				respondWithDomainError(c, route, orders.ValidationError{Field: "lineIndex", Message: "lineIndex is required"})
				return
			}
			if err := orders.UpdateQuantity(order, *req.LineIndex, req.Quantity); err != nil {
				respondWithDomainError(c, route, err)
				return
			}

		case "remove":
			if req.LineIndex == nil {
				respondWithDomainError(c, route, orders.ValidationError{Field: "lineIndex", Message: "lineIndex is required"})
				return
			}
			if err := orders.RemoveLine(order, *req.LineIndex); err != nil {
				respondWithDomainError(c, route, err)
				return
			}
		}

		actor := actorFromContext(c)
		order.UpdatedAt = time.Now()
		order.LastUpdatedBy = actor.UserName

		deltas := orders.DiffPartLines(before, order.PartsUsed)
		if err := repo.UpdatePartsWithStock(ctx, order, deltas); err != nil {
			respondWithDomainError(c, route, err)
			return
		}

		logrus.WithFields(logrus.Fields{
			"route":         route,
			"orderId":       order.ID.Hex(),
			"action":        req.Action,
			"costSparePart": order.CostSparePart,
		}).Info("parts updated")

		c.JSON(http.StatusOK, order)
	}
}
