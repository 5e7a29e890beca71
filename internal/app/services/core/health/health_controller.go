package health

import (
	"context"
	"hospital-portal-service/internal/app/config"
	"hospital-portal-service/internal/pkg/constvars"
	"hospital-portal-service/internal/pkg/dto/responses"
	"hospital-portal-service/internal/pkg/utils"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type HealthController struct {
	Log          *zap.Logger
	MongoDB      *mongo.Client
	DriverConfig *config.DriverConfig
}

func NewHealthController(logger *zap.Logger, mongoDB *mongo.Client, driverConfig *config.DriverConfig) *HealthController {
	return &HealthController{
		Log:          logger,
		MongoDB:      mongoDB,
		DriverConfig: driverConfig,
	}
}

func (ctrl *HealthController) Liveness(w http.ResponseWriter, r *http.Request) {
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LivenessMessage, responses.Liveness{
		Message: constvars.LivenessMessage,
	})
}

// Diagnostics reports store connectivity and env presence. This is the only
// endpoint allowed to expose dependency error detail, and only as a
// truncated string.
func (ctrl *HealthController) Diagnostics(w http.ResponseWriter, r *http.Request) {
	report := responses.HealthCheck{
		Backend:          "running",
		Database:         "not available",
		DatabaseURL:      envPresence("MONGODB_HOST"),
		DatabaseName:     envPresence("MONGODB_DB_NAME"),
		ConnectionStatus: "not connected",
		Collections:      []string{},
	}

	if ctrl.MongoDB != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		report.Database = "available"
		report.ConnectionStatus = "connected"

		collections, err := ctrl.MongoDB.Database(ctrl.DriverConfig.MongoDB.DbName).ListCollectionNames(ctx, bson.M{})
		if err != nil {
			report.Database = "connected but error: " + truncateDiagnostic(err.Error(), 50)
		} else {
			if len(collections) > 10 {
				collections = collections[:10]
			}
			report.Collections = collections
			report.Database = "connected and working"
		}
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, "", report)
}

func envPresence(key string) string {
	if utils.IsEnvSet(key) {
		return "set"
	}
	return "not set"
}

func truncateDiagnostic(message string, max int) string {
	if len(message) <= max {
		return message
	}
	return message[:max]
}
