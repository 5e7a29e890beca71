package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":    "is required",
	"email":       "must be a valid email",
	"min":         "must be at least %s characters long",
	"max":         "maximum at %s characters long",
	"oneof":       "must be one of [%s]",
	"date_format": "must match the YYYY-MM-DD format",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "cannot process request"
	ErrClientSomethingWrongWithApplication = "something went wrong with the application, please try again later"
	ErrClientRegistrationNotFound          = "registration not found"
	ErrClientNotAuthorized                 = "you are not authorized to access this resource"
	ErrClientTooManyRequests               = "too many requests, please try again later"
	ErrClientServerLongRespond             = "server took too long to respond"
)

// Error messages for developers
const (
	ErrDevValidationFailed   = "Request validation failed"
	ErrDevInvalidInput       = "Invalid input"
	ErrDevCannotParseJSON    = "Failed to parse JSON request body"
	ErrDevServerProcess      = "Server failed to process the request"
	ErrDevDeadlineExceeded   = "Server deadline exceeded while processing request"
	ErrDevInvalidAdminAPIKey = "Admin API key missing or does not match"

	ErrDevStoreNotConnected          = "Document store connection was never established"
	ErrDevStoreMalformedIdentifier   = "Identifier is not a valid document store key"
	ErrDevDBFailedToInsertDocument   = "Database failed to insert document"
	ErrDevDBFailedToFindDocument     = "Database failed to find document"
	ErrDevDBFailedToIterateDocuments = "Database failed to iterate documents"
	ErrDevDBFailedToUpdateDocument   = "Database failed to update document"
	ErrDevRegistrationNotExists      = "Registration does not exist"

	ErrDevRedisIncrementValue = "Redis failed to increment value"
	ErrDevRateLimitExceeded   = "Submission rate limit exceeded"
)
