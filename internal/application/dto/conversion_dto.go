// Package dto contains data transfer objects.
package dto

// ConversionRequest represents a request to convert a value between two
// named units of the same dimension.
type ConversionRequest struct {
	// Value is the magnitude expressed in the source unit.
	Value float64 `json:"value"`

	// From is the source unit name (e.g., "celsius", "km").
	From string `json:"from"`

	// To is the target unit name (e.g., "fahrenheit", "m").
	To string `json:"to"`

	// Precision is the maximum number of fractional digits in the
	// formatted output. Optional; the service default applies when nil.
	Precision *int `json:"precision,omitempty"`

	// Mode is the rounding policy for the formatted output
	// ("round" or "trunc"). Optional; defaults to "round".
	Mode string `json:"mode,omitempty"`
}

// ConversionResult represents the outcome of a unit conversion.
type ConversionResult struct {
	// Value is the raw converted magnitude in the target unit.
	Value float64 `json:"value"`

	// Formatted is the converted magnitude rendered at the requested
	// precision with trailing zeros trimmed.
	Formatted string `json:"formatted"`

	// Display is the human-readable rendering including the unit symbol
	// (e.g., "29.78 °C").
	Display string `json:"display"`

	// Dimension is the shared dimension of both units.
	Dimension string `json:"dimension"`

	// From describes the source unit.
	From UnitInfo `json:"from"`

	// To describes the target unit.
	To UnitInfo `json:"to"`
}

// UnitInfo describes one unit of the catalog.
type UnitInfo struct {
	// Name is the canonical unit name (e.g., "celsius").
	Name string `json:"name"`

	// Symbol is the display symbol (e.g., "°C").
	Symbol string `json:"symbol"`

	// Dimension is the dimension the unit belongs to.
	Dimension string `json:"dimension"`

	// Base indicates whether this is the base unit of its dimension.
	Base bool `json:"base"`
}

// APIResponse represents a standard API response wrapper.
type APIResponse[T any] struct {
	// Success indicates if the API call was successful.
	Success bool `json:"success"`

	// Data contains the payload of the response.
	Data T `json:"data,omitempty"`

	// Error contains error details if the API call was not successful.
	Error *APIError `json:"error,omitempty"`

	// Meta contains additional metadata about the response.
	Meta *ResponseMeta `json:"meta,omitempty"`
}

// APIError represents error details in an API response.
type APIError struct {
	// Code is the error code.
	Code string `json:"code"`

	// Message is a human-readable error message.
	Message string `json:"message"`

	// Details provides additional information about the error.
	Details map[string]any `json:"details,omitempty"`
}

// ResponseMeta contains metadata about the response.
type ResponseMeta struct {
	// RequestID is the unique identifier for the request.
	RequestID string `json:"request_id,omitempty"`

	// Timestamp is the time when the response was generated.
	Timestamp string `json:"timestamp,omitempty"`

	// Version is the API version.
	Version string `json:"version,omitempty"`
}

// NewSuccessResponse creates a new API success response.
//
// Parameters:
//   - data: The response data
//
// Returns:
//   - APIResponse[T]: The success response wrapper
func NewSuccessResponse[T any](data T) APIResponse[T] {
	return APIResponse[T]{
		Success: true,
		Data:    data,
	}
}

// NewErrorResponse creates a new API error response.
//
// Parameters:
//   - code: The error code
//   - message: The error message
//
// Returns:
//   - APIResponse[T]: The error response wrapper
func NewErrorResponse[T any](code, message string) APIResponse[T] {
	return APIResponse[T]{
		Success: false,
		Error: &APIError{
			Code:    code,
			Message: message,
		},
	}
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	// Status indicates the health status.
	Status string `json:"status"`

	// Version is the application version.
	Version string `json:"version"`

	// Uptime is how long the service has been running.
	Uptime string `json:"uptime"`
}
