package main

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"tallerapp/internal/config"
	"tallerapp/internal/database"
	"tallerapp/internal/handlers"
	"tallerapp/internal/middleware"
	"tallerapp/internal/orders"
)

func main() {
	config.Load()

	if level, err := logrus.ParseLevel(config.AppEnv.LogLevel); err == nil {
		logrus.SetLevel(level)
	}

	client, err := database.Connect(config.AppEnv.MongoURI)
	if err != nil {
		logrus.Fatal(err)
	}

	db := client.Database(config.AppEnv.DBName)

	logrus.Info("MongoDB connected to: ", db.Name())

	if err := database.EnsureOrderIndexes(db); err != nil {
		logrus.Warn("order index warning: ", err)
	}
	if err := database.EnsurePartIndexes(db); err != nil {
		logrus.Warn("part index warning: ", err)
	}

	repo := orders.NewMongoRepository(db)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})

	api := r.Group("/")
	api.Use(middleware.StaffAuth(config.AppEnv.JWTSecret))
	{
		api.POST("/orders", handlers.CreateOrder(db, repo))
		api.GET("/orders", handlers.ListOrders(repo))
		api.GET("/orders/:id", handlers.GetOrder(repo))
		api.PUT("/orders/:id/status", handlers.UpdateOrderStatus(repo))
		api.POST("/orders/:id/comments", handlers.AddOrderComment(repo))
		api.PUT("/orders/:id/parts", handlers.EditOrderParts(db, repo))
		api.PUT("/orders/:id/costs", handlers.UpdateOrderCosts(repo))
		api.PUT("/orders/:id/warranty", handlers.UpdateOrderWarranty(repo))
		api.GET("/orders/:id/alert", handlers.GetOrderAlert(repo))
		api.GET("/orders/:id/print/:variant", handlers.PrintOrderDocument(db, repo))

		api.GET("/backup", handlers.ExportBackup(db))
		api.POST("/backup/restore", handlers.RestoreBackup(db))
	}

	r.Run(":" + config.AppEnv.Port)
}
