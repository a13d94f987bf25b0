package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"tallerapp/internal/orders"
)

func handlePanic(c *gin.Context, route string) {
	if r := recover(); r != nil {
		logrus.WithField("route", route).Errorf("panic recovered: %v", r)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func ensureDBConnection(ctx context.Context, db *mongo.Database) error {
	checkCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	return db.Client().Ping(checkCtx, readpref.Primary())
}

func respondWithError(c *gin.Context, status int, route string, message string) {
	logrus.WithFields(logrus.Fields{"route": route, "status": status}).Warn(message)
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}

// respondWithDomainError maps the domain error taxonomy onto HTTP statuses.
// Validation failures carry the offending field so the UI can attach the
// message to the right input; stock conflicts carry the shortfall.
func respondWithDomainError(c *gin.Context, route string, err error) {
	var validationErr orders.ValidationError
	if errors.As(err, &validationErr) {
		logrus.WithFields(logrus.Fields{"route": route, "field": validationErr.Field}).Warn(validationErr.Message)
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error": validationErr.Message,
			"field": validationErr.Field,
		})
		return
	}

	var notFoundErr orders.NotFoundError
	if errors.As(err, &notFoundErr) {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": notFoundErr.Error()})
		return
	}

	var stockErr orders.StockConflictError
	if errors.As(err, &stockErr) {
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{
			"error":     "insufficient stock",
			"partId":    stockErr.PartID.Hex(),
			"available": stockErr.Available,
			"requested": stockErr.Requested,
		})
		return
	}

	logrus.WithField("route", route).Error(err)
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "db error"})
}
