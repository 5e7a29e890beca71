package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_ADMIN_KEY_AUTH           ContextKey = "admin_key_auth"
)

const (
	MongoCollectionRegistrations = "patientregistration"
)

// Registration status values.
const (
	RegistrationStatusPending   = "pending"
	RegistrationStatusConfirmed = "confirmed"
	RegistrationStatusCancelled = "cancelled"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)
