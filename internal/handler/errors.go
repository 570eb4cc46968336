package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Service error messages
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgSessionNotFound    = "Game session not found"
	ErrMsgPlotNotFound       = "Plot not found"
	ErrMsgUnknownCrop        = "Unknown crop"
	ErrMsgInvalidCropName    = "Crop names may only contain letters, spaces and -'/()"

	// Game operation error messages
	ErrMsgNewGameFailed = "Failed to start a new game"
	ErrMsgMissingGameID = "Missing game id"
)

// Log messages
const (
	LogMsgGameCreated       = "Game created"
	LogMsgActionRequest     = "Game action requested"
	LogMsgActionFailed      = "Game action failed"
	LogMsgCropNotResolved   = "Crop name not resolved"
	LogMsgAdvisorRequest    = "Advisor request"
	LogMsgReadinessFailed   = "Readiness check failed"
	LogMsgEncodeFailed      = "Failed to encode JSON response"
	LogMsgWriteBufferFailed = "Failed to write response buffer"
)
