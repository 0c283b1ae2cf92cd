package constants

// Context keys used to pass values between middleware and handlers
const (
	ContextKeyContact   = "contact"
	ContextKeyRequestID = "RequestID"
)
