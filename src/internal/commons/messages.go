package commons

const (
	MessageOK                  = "Request successful"
	MessageCreated             = "Resource created successfully"
	MessageDeleted             = "Resource deleted successfully"
	MessageBadRequest          = "Bad request"
	MessageUnauthorized        = "Unauthorized access"
	MessageForbidden           = "Access is forbidden"
	MessageNotFound            = "Resource not found"
	MessageMethodNotAllowed    = "Method not allowed"
	MessageConflict            = "Conflict with current state of resource"
	MessageInternalServerError = "Internal server error"
	MessageValidationFailed    = "validation failed"
	MessageInvalidRequestBody  = "invalid request body"
)

const (
	MessagePaymentConfirmed  = "Payment confirmed"
	MessagePaymentIncomplete = "Payment incomplete or failed"
	MessageAccountDeleted    = "Account deleted successfully"
	MessageEmailExists       = "Email already exists"
)
