package config

import (
	"hospital-portal-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "hospital"),
			Username: utils.GetEnvString("MONGODB_USERNAME", ""),
			Password: utils.GetEnvString("MONGODB_PASSWORD", ""),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:             utils.GetEnvString("APP_ENV", "development"),
			Port:            utils.GetEnvString("APP_PORT", ":8080"),
			Timezone:        utils.GetEnvString("APP_TIMEZONE", "UTC"),
			ShutdownTimeout: utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			MaxRequests:     utils.GetEnvInt("APP_MAX_REQUEST", 10),

			AdminAPIKey: utils.GetEnvString("APP_ADMIN_API_KEY", ""),

			PublicListLimit: utils.GetEnvInt("APP_PUBLIC_LIST_LIMIT", 20),
			AdminListLimit:  utils.GetEnvInt("APP_ADMIN_LIST_LIMIT", 100),
			MaxListLimit:    utils.GetEnvInt("APP_MAX_LIST_LIMIT", 200),

			SubmissionMaxPerWindow:  utils.GetEnvInt("APP_SUBMISSION_MAX", 5),
			SubmissionWindowSeconds: utils.GetEnvInt("APP_SUBMISSION_WINDOW_SECONDS", 60),
		},
	}
}
