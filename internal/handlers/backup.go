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
)

func dumpCollection(ctx context.Context, db *mongo.Database, name string, out interface{}) error {
	cursor, err := db.Collection(name).Find(ctx, bson.M{})
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)
	return cursor.All(ctx, out)
}

// ExportBackup aggregates every collection into a single JSON document.
// Orders must round-trip through this shape without losing any field,
// snapshotted legal text and cost lines included.
func ExportBackup(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /backup"
		defer handlePanic(c, route)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
		defer cancel()

		backup := models.Backup{
			BackupDate:    time.Now(),
			Orders:        []models.Order{},
			Clients:       []models.Client{},
			Parts:         []models.Part{},
			Suppliers:     []models.Supplier{},
			Branches:      []models.Branch{},
			Users:         []models.User{},
			Notifications: []models.Notification{},
		}

		steps := []struct {
			name string
			dest interface{}
		}{
			{"orders", &backup.Orders},
			{"clients", &backup.Clients},
			{"parts", &backup.Parts},
			{"suppliers", &backup.Suppliers},
			{"branches", &backup.Branches},
			{"users", &backup.Users},
			{"notifications", &backup.Notifications},
		}
		for _, step := range steps {
			if err := dumpCollection(ctx, db, step.name, step.dest); err != nil {
				respondWithDomainError(c, route, err)
				return
			}
		}

		logrus.WithFields(logrus.Fields{
			"route":  route,
			"orders": len(backup.Orders),
		}).Info("backup exported")

		c.JSON(http.StatusOK, backup)
	}
}

func replaceCollection[T any](ctx context.Context, db *mongo.Database, name string, docs []T) error {
	collection := db.Collection(name)
	if _, err := collection.DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}
	if len(docs) == 0 {
		return nil
	}
	payload := make([]interface{}, len(docs))
	for i := range docs {
		payload[i] = docs[i]
	}
	_, err := collection.InsertMany(ctx, payload)
	return err
}

// RestoreBackup replaces each collection wholesale with the uploaded
// document.
func RestoreBackup(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /backup/restore"
		defer handlePanic(c, route)

		var backup models.Backup
		if err := c.ShouldBindJSON(&backup); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid backup document")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 60*time.Second)
		defer cancel()

		if err := replaceCollection(ctx, db, "orders", backup.Orders); err != nil {
			respondWithDomainError(c, route, err)
			return
		}
		if err := replaceCollection(ctx, db, "clients", backup.Clients); err != nil {
			respondWithDomainError(c, route, err)
			return
		}
		if err := replaceCollection(ctx, db, "parts", backup.Parts); err != nil {
			respondWithDomainError(c, route, err)
			return
		}
		if err := replaceCollection(ctx, db, "suppliers", backup.Suppliers); err != nil {
			respondWithDomainError(c, route, err)
			return
		}
		if err := replaceCollection(ctx, db, "branches", backup.Branches); err != nil {
			respondWithDomainError(c, route, err)
			return
		}
		if err := replaceCollection(ctx, db, "users", backup.Users); err != nil {
			respondWithDomainError(c, route, err)
			return
		}
		if err := replaceCollection(ctx, db, "notifications", backup.Notifications); err != nil {
			respondWithDomainError(c, route, err)
			return
		}

		logrus.WithFields(logrus.Fields{
			"route":      route,
			"backupDate": backup.BackupDate,
			"orders":     len(backup.Orders),
		}).Info("backup restored")

		c.JSON(http.StatusOK, gin.H{"message": "backup restored"})
	}
}
