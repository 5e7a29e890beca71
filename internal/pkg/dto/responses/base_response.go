package responses

// Data is serialized even when empty so list endpoints always answer with
// an array, never a missing key.
type ResponseDTO struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}
