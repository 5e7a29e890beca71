package database

import (
	"context"
	"fmt"
	"hospital-portal-service/internal/app/config"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// NewMongoDB connects to the document store. A failed connection is not
// fatal: the service boots without a store handle and every store operation
// surfaces a store-unavailable error until restart.
func NewMongoDB(driverConfig *config.DriverConfig, log *zap.Logger) *mongo.Client {
	var connectionString string
	if driverConfig.MongoDB.Username != "" {
		connectionString = fmt.Sprintf(
			"mongodb://%s:%s@%s:%s",
			driverConfig.MongoDB.Username,
			driverConfig.MongoDB.Password,
			driverConfig.MongoDB.Host,
			driverConfig.MongoDB.Port,
		)
	} else {
		connectionString = fmt.Sprintf(
			"mongodb://%s:%s",
			driverConfig.MongoDB.Host,
			driverConfig.MongoDB.Port,
		)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbOptions := options.Client().ApplyURI(connectionString)
	client, err := mongo.Connect(ctx, dbOptions)
	if err != nil {
		log.Warn("Failed to connect to mongo database, starting without a store", zap.Error(err))
		return nil
	}
	err = client.Ping(ctx, nil)
	if err != nil {
		log.Warn("Failed to ping mongo database, starting without a store", zap.Error(err))
		return nil
	}
	log.Info("Successfully connected to mongo database")
	return client
}
