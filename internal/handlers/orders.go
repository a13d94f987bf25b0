package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"tallerapp/internal/models"
	"tallerapp/internal/orders"
)

/* =========================
   REQUEST DTOs
========================= */

type createOrderRequest struct {
	BranchID             string `json:"branchId" binding:"required"`
	ClientID             string `json:"clientId" binding:"required"`
	AssignedTechnicianID string `json:"assignedTechnicianId"`
	PreviousOrderID      string `json:"previousOrderId"`

	DeviceBrand    string   `json:"deviceBrand" binding:"required"`
	DeviceModel    string   `json:"deviceModel" binding:"required"`
	IMEI           string   `json:"imei"`
	IMEINotVisible bool     `json:"imeiNotVisible"`
	DeclaredFault  string   `json:"declaredFault" binding:"required"`
	CommonFaults   []string `json:"commonFaults"`

	UnlockPatternProvided bool              `json:"unlockPatternProvided"`
	UnlockCode            string            `json:"unlockCode"`
	Checklist             map[string]string `json:"checklist"`

	CostLabor float64 `json:"costLabor"`
}

func actorFromContext(c *gin.Context) orders.Actor {
	var actor orders.Actor
	if value, ok := c.Get("userId"); ok {
		if id, ok := value.(primitive.ObjectID); ok {
			actor.UserID = id
		}
	}
	if value, ok := c.Get("userName"); ok {
		if name, ok := value.(string); ok {
			actor.UserName = name
		}
	}
	return actor
}

func parseObjectID(field, raw string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, orders.ValidationError{Field: field, Message: "invalid id"}
	}
	return id, nil
}

func parseOptionalObjectID(field, raw string) (*primitive.ObjectID, error) {
	if raw == "" {
		return nil, nil
	}
	id, err := parseObjectID(field, raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func requestChecklist(raw map[string]string) models.Checklist {
	list := make(models.Checklist, len(raw))
	for key, value := range raw {
		list[models.ChecklistItem(key)] = models.TriState(value)
	}
	return list
}

/* =========================
   CREATE ORDER
========================= */

// CreateOrder runs the full intake pipeline: checklist normalization, legal
// text snapshot, initial cost derivation and the initial status.
func CreateOrder(db *mongo.Database, repo orders.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /orders"
		defer handlePanic(c, route)

		if err := ensureDBConnection(c.Request.Context(), db); err != nil {
			respondWithError(c, http.StatusServiceUnavailable, route, "database unavailable")
			return
		}

		var req createOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		branchID, err := parseObjectID("branchId", req.BranchID)
		if err != nil {
			respondWithDomainError(c, route, err)
			return
		}
		clientID, err := parseObjectID("clientId", req.ClientID)
		if err != nil {
			respondWithDomainError(c, route, err)
			return
		}
		technicianID, err := parseOptionalObjectID("assignedTechnicianId", req.AssignedTechnicianID)
		if err != nil {
			respondWithDomainError(c, route, err)
			return
		}
		previousOrderID, err := parseOptionalObjectID("previousOrderId", req.PreviousOrderID)
		if err != nil {
			respondWithDomainError(c, route, err)
			return
		}

		if req.IMEI == "" && !req.IMEINotVisible {
			respondWithDomainError(c, route, orders.ValidationError{
				Field:   "imei",
				Message: "imei is required unless marked not visible",
			})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var client models.Client
		err = db.Collection("clients").FindOne(ctx, bson.M{"_id": clientID}).Decode(&client)
		if err == mongo.ErrNoDocuments {
			respondWithDomainError(c, route, orders.NotFoundError{Resource: "client", ID: clientID.Hex()})
			return
		}
		if err != nil {
			respondWithDomainError(c, route, err)
			return
		}

		// A missing branch settings document must not block intake: the
		// snapshot falls back to the system default texts.
		var settings *models.BranchSettings
		var branch models.Branch
		err = db.Collection("branches").FindOne(ctx, bson.M{"_id": branchID}).Decode(&branch)
		if err == nil {
			settings = &branch.Settings
		} else if err != mongo.ErrNoDocuments {
			respondWithDomainError(c, route, err)
			return
		}

		actor := actorFromContext(c)
		now := time.Now()

		order := models.Order{
			BranchID:             branchID,
			ClientID:             clientID,
			AssignedTechnicianID: technicianID,
			PreviousOrderID:      previousOrderID,

			DeviceBrand:    req.DeviceBrand,
			DeviceModel:    req.DeviceModel,
			IMEI:           req.IMEI,
			IMEINotVisible: req.IMEINotVisible,
			DeclaredFault:  req.DeclaredFault,
			CommonFaults:   req.CommonFaults,

			UnlockPatternProvided: req.UnlockPatternProvided,
			UnlockCode:            req.UnlockCode,
			Checklist:             orders.NormalizeChecklist(requestChecklist(req.Checklist), req.UnlockPatternProvided),

			PartsUsed:    []models.OrderPartItem{},
			WarrantyType: models.WarrantyNone,

			LegalText: orders.SnapshotLegalText(settings),

			EntryDate: now,
			Status:    models.StatusReceived,

			CommentsHistory: []models.OrderComment{},

			CreatedAt:     now,
			UpdatedAt:     now,
			LastUpdatedBy: actor.UserName,
		}

		if err := orders.SetLaborCost(&order, req.CostLabor); err != nil {
			respondWithDomainError(c, route, err)
			return
		}
		orders.RecomputeSparePartCost(&order)

		if err := repo.Insert(ctx, &order); err != nil {
			respondWithDomainError(c, route, err)
			return
		}

		logrus.WithFields(logrus.Fields{
			"route":       route,
			"orderId":     order.ID.Hex(),
			"orderNumber": order.OrderNumber,
		}).Info("order created")

		c.JSON(http.StatusCreated, order)
	}
}

/* =========================
   GET / LIST
========================= */

func GetOrder(repo orders.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /orders/:id"

		id, err := parseObjectID("id", c.Param("id"))
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

		c.JSON(http.StatusOK, order)
	}
}

func ListOrders(repo orders.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /orders"

		page, limit, err := parsePaginationParams(c.Query("page"), c.Query("limit"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}

		filter := orders.ListFilter{Page: page, Limit: limit}

		if raw := c.Query("status"); raw != "" {
			status, err := orders.ParseStatus(raw)
			if err != nil {
				respondWithDomainError(c, route, err)
				return
			}
			filter.Status = &status
		}
		if raw := c.Query("branchId"); raw != "" {
			branchID, err := parseObjectID("branchId", raw)
			if err != nil {
				respondWithDomainError(c, route, err)
				return
			}
			filter.BranchID = &branchID
		}
		if raw := c.Query("clientId"); raw != "" {
			clientID, err := parseObjectID("clientId", raw)
			if err != nil {
				respondWithDomainError(c, route, err)
				return
			}
			filter.ClientID = &clientID
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		results, total, err := repo.List(ctx, filter)
		if err != nil {
			respondWithDomainError(c, route, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"data": results,
			"pagination": gin.H{
				"page":  page,
				"limit": limit,
				"total": total,
			},
		})
	}
}
