package contract

import (
	"encoding/json"
	"errors"
)

// ErrorCode identifies a query failure condition for programmatic handling.
type ErrorCode string

// All error codes returned by the query layer.
const (
	ErrDataNotFound         ErrorCode = "DATA_NOT_FOUND"
	ErrJSONParse            ErrorCode = "JSON_PARSE_ERROR"
	ErrLoad                 ErrorCode = "LOAD_ERROR"
	ErrMissingRequiredField ErrorCode = "MISSING_REQUIRED_FIELD"
	ErrInvalidDateFormat    ErrorCode = "INVALID_DATE_FORMAT"
	ErrDateNotFound         ErrorCode = "DATE_NOT_FOUND"
	ErrInsufficientData     ErrorCode = "INSUFFICIENT_DATA"
	ErrNoValidPatterns      ErrorCode = "NO_VALID_PATTERNS"
	ErrNegativeParameters   ErrorCode = "NEGATIVE_PARAMETERS"
	ErrInvalidParameterType ErrorCode = "INVALID_PARAMETER_TYPE"
	ErrAnalysis             ErrorCode = "ANALYSIS_ERROR"
	ErrPrediction           ErrorCode = "PREDICTION_ERROR"
)

// QueryError is the uniform failure envelope for every query layer
// operation. It serializes to the {error, error_code, suggestion} shape
// that callers consume; internal error details stay on the server side.
type QueryError struct {
	Message    string    `json:"error"`
	Code       ErrorCode `json:"error_code,omitempty"`
	Suggestion string    `json:"suggestion,omitempty"`
}

// Error implements the error interface.
func (e *QueryError) Error() string {
	return e.Message
}

// NewQueryError creates a structured query error.
func NewQueryError(code ErrorCode, message, suggestion string) *QueryError {
	return &QueryError{Message: message, Code: code, Suggestion: suggestion}
}

// Envelope returns the JSON form of the error, suitable for returning across
// the query layer boundary.
func (e *QueryError) Envelope() string {
	data, err := json.MarshalIndent(e, "", "  ")
	if err != nil {
		return `{"error": "` + e.Message + `"}`
	}
	return string(data)
}

// AsQueryError converts any error into a QueryError. Errors that already
// carry a code pass through unchanged; everything else is wrapped with the
// given catch-all code so raw errors never cross the query layer boundary.
func AsQueryError(err error, fallback ErrorCode, suggestion string) *QueryError {
	var qe *QueryError
	if errors.As(err, &qe) {
		return qe
	}
	return NewQueryError(fallback, err.Error(), suggestion)
}
