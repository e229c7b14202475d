package appErrors

// Error codes grouped by domain.
const (
	// Authentication / authorization
	CodeUnauthorized ErrorCode = "UNAUTHORIZED"
	CodeForbidden    ErrorCode = "FORBIDDEN"
	CodeInvalidToken ErrorCode = "INVALID_TOKEN"

	// Validation
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeInvalidID        ErrorCode = "INVALID_ID"
	CodeInvalidAction    ErrorCode = "INVALID_ACTION"

	// Resources
	CodeUserNotFound        ErrorCode = "USER_NOT_FOUND"
	CodeProjectNotFound     ErrorCode = "PROJECT_NOT_FOUND"
	CodeApplicationNotFound ErrorCode = "APPLICATION_NOT_FOUND"
	CodeNotFound            ErrorCode = "NOT_FOUND"

	// Business logic
	CodeProjectNotAccepting    ErrorCode = "PROJECT_NOT_ACCEPTING_APPLICATIONS"
	CodeNoSeatsAvailable       ErrorCode = "NO_SEATS_AVAILABLE"
	CodeDuplicateApplication   ErrorCode = "DUPLICATE_APPLICATION"
	CodeAlreadyProcessed       ErrorCode = "APPLICATION_ALREADY_PROCESSED"
	CodeSeatCountOutOfRange    ErrorCode = "SEAT_COUNT_OUT_OF_RANGE"
	CodeInvalidPaymentRequest  ErrorCode = "INVALID_PAYMENT_REQUEST"
	CodeInvalidSignature       ErrorCode = "INVALID_SIGNATURE"
	CodeWebhookVerifyFailed    ErrorCode = "WEBHOOK_VERIFICATION_FAILED"
	CodeInsufficientPermission ErrorCode = "INSUFFICIENT_PERMISSIONS"

	// System
	CodeInternalError        ErrorCode = "INTERNAL_ERROR"
	CodeExternalServiceError ErrorCode = "EXTERNAL_SERVICE_ERROR"
)
