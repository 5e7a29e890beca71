package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"

	// Registration messages
	RegistrationCreatedSuccess = "Registration submitted successfully"
	RegistrationListSuccess    = "registrations fetched successfully"
	RegistrationGetSuccess     = "registration fetched successfully"
	RegistrationStatusUpdated  = "Status updated"

	// Health messages
	LivenessMessage = "Hospital API Running"
)
