package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Session errors
	ErrMsgSessionNotFound = "game session not found"

	// Plot errors
	ErrMsgPlotNotFound = "plot not found"

	// Crop errors
	ErrMsgUnknownCrop = "unknown crop"

	// Configuration errors
	ErrMsgInvalidConfig = "invalid configuration"
)

// Common domain errors
// Rule-level rejections (planting on an occupied plot, harvesting an unripe
// crop) are not errors; they come back as an unapplied action result.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrSessionNotFound = errors.New(ErrMsgSessionNotFound)

	ErrPlotNotFound = errors.New(ErrMsgPlotNotFound)

	ErrUnknownCrop = errors.New(ErrMsgUnknownCrop)

	ErrInvalidConfig = errors.New(ErrMsgInvalidConfig)
)
