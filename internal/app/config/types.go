package config

type (
	DriverConfig struct {
		MongoDB MongoDB
		Redis   Redis
		Logger  Logger
	}
	MongoDB struct {
		Port     string
		Host     string
		Username string
		Password string
		DbName   string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)

type (
	InternalConfig struct {
		App App
	}
	App struct {
		Env             string
		Port            string
		Timezone        string
		ShutdownTimeout int

		// MaxRequests bounds requests per IP per second across the router.
		MaxRequests int

		// AdminAPIKey guards /api/admin routes. Empty means admin routes
		// reject every request.
		AdminAPIKey string

		PublicListLimit int
		AdminListLimit  int
		MaxListLimit    int

		SubmissionMaxPerWindow  int
		SubmissionWindowSeconds int
	}
)
