package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"tallerapp/internal/models"
	"tallerapp/internal/orders"
)

var validate = validator.New()

/* =========================
   STATUS
========================= */

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateOrderStatus applies one state-machine transition. A request that
// names the current status is rejected; milestone dates are stamped on
// first entry only.
func UpdateOrderStatus(repo orders.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /orders/:id/status"
		defer handlePanic(c, route)

		id, err := parseObjectID("id", c.Param("id"))
		if err != nil {
			respondWithDomainError(c, route, err)
			return
		}

		var req updateStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		next, err := orders.ParseStatus(req.Status)
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

		if err := orders.ApplyTransition(order, next, actorFromContext(c), time.Now()); err != nil {
			respondWithDomainError(c, route, err)
			return
		}

		if err := repo.Update(ctx, order); err != nil {
			respondWithDomainError(c, route, err)
			return
		}

		logrus.WithFields(logrus.Fields{
			"route":   route,
			"orderId": order.ID.Hex(),
			"status":  order.Status,
		}).Info("status updated")

		c.JSON(http.StatusOK, order)
	}
}

/* =========================
   COMMENTS
========================= */

type addCommentRequest struct {
	Description string `json:"description" binding:"required"`
}

// AddOrderComment appends one history entry. The write is a single array
// push so concurrent comments from two technicians both survive.
func AddOrderComment(repo orders.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /orders/:id/comments"
		defer handlePanic(c, route)

		id, err := parseObjectID("id", c.Param("id"))
		if err != nil {
			respondWithDomainError(c, route, err)
			return
		}

		var req addCommentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}
		description := strings.TrimSpace(req.Description)
		if description == "" {
			respondWithDomainError(c, route, orders.ValidationError{Field: "description", Message: "description is required"})
			return
		}

		actor := actorFromContext(c)
		comment := models.OrderComment{
			UserID:      actor.UserID,
			UserName:    actor.UserName,
			Description: description,
			Timestamp:   time.Now(),
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		if err := repo.AppendComment(ctx, id, comment); err != nil {
			respondWithDomainError(c, route, err)
			return
		}

		c.JSON(http.StatusCreated, comment)
	}
}

/* =========================
   COSTS
========================= */

type updateCostsRequest struct {
	CostLabor   *float64 `json:"costLabor"`
	CostPending *float64 `json:"costPending"`
}

// UpdateOrderCosts edits the manually entered cost fields. The spare-part
// total is derived from the part lines and cannot be set here.
func UpdateOrderCosts(repo orders.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /orders/:id/costs"
		defer handlePanic(c, route)

		id, err := parseObjectID("id", c.Param("id"))
		if err != nil {
			respondWithDomainError(c, route, err)
			return
		}

		var req updateCostsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}
		if req.CostLabor == nil && req.CostPending == nil {
			respondWithDomainError(c, route, orders.ValidationError{Field: "costLabor", Message: "no cost fields to update"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		order, err := repo.GetByID(ctx, id)
		if err != nil {
			respondWithDomainError(c, route, err)
			return
		}

		if req.CostLabor != nil {
			if err := orders.SetLaborCost(order, *req.CostLabor); err != nil {
				respondWithDomainError(c, route, err)
				return
			}
		}
		if req.CostPending != nil {
			if err := orders.SetPendingCost(order, *req.CostPending); err != nil {
				respondWithDomainError(c, route, err)
				return
			}
		}

		actor := actorFromContext(c)
		order.UpdatedAt = time.Now()
		order.LastUpdatedBy = actor.UserName

		if err := repo.Update(ctx, order); err != nil {
			respondWithDomainError(c, route, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"costSparePart": order.CostSparePart,
			"costLabor":     order.CostLabor,
			"costPending":   order.CostPending,
			"totalEstimate": orders.TotalEstimate(order),
		})
	}
}

/* =========================
   WARRANTY
========================= */

type updateWarrantyRequest struct {
	Type        string     `json:"type" validate:"required,oneof=30d 60d 90d custom none"`
	StartDate   *time.Time `json:"startDate" validate:"required_if=Type custom"`
	EndDate     *time.Time `json:"endDate" validate:"required_if=Type custom"`
	CoveredItem string     `json:"coveredItem"`
	Notes       string     `json:"notes"`
	Reanchor    bool       `json:"reanchor"`
	Force       bool       `json:"force"`
}

// UpdateOrderWarranty sets or re-anchors the warranty window.
func UpdateOrderWarranty(repo orders.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /orders/:id/warranty"
		defer handlePanic(c, route)

		id, err := parseObjectID("id", c.Param("id"))
		if err != nil {
			respondWithDomainError(c, route, err)
			return
		}

		var req updateWarrantyRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}
		if err := validate.Struct(req); err != nil {
			if fieldErrs, ok := err.(validator.ValidationErrors); ok && len(fieldErrs) > 0 {
				respondWithDomainError(c, route, orders.ValidationError{
					Field:   strings.ToLower(fieldErrs[0].Field()[:1]) + fieldErrs[0].Field()[1:],
					Message: "invalid value",
				})
				return
			}
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

		now := time.Now()

		if req.Reanchor {
			orders.ReanchorWarranty(order, now, req.Force)
		} else {
			if err := orders.SetWarranty(order, models.WarrantyType(req.Type), now, req.StartDate, req.EndDate); err != nil {
				respondWithDomainError(c, route, err)
				return
			}
			order.WarrantyCoveredItem = req.CoveredItem
			order.WarrantyNotes = req.Notes
		}

		actor := actorFromContext(c)
		order.UpdatedAt = now
		order.LastUpdatedBy = actor.UserName

		if err := repo.Update(ctx, order); err != nil {
			respondWithDomainError(c, route, err)
			return
		}

		c.JSON(http.StatusOK, order)
	}
}

/* =========================
   ALERT
========================= */

// GetOrderAlert derives the operational alert classification for one order.
// Pure read-side view; nothing is persisted.
func GetOrderAlert(repo orders.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /orders/:id/alert"

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

		c.JSON(http.StatusOK, orders.EvaluateAlert(order, time.Now()))
	}
}
