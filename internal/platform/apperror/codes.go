package apperror

import "strings"

// ErrorCode is the general, system-level category of an error.
type ErrorCode string

const (
	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeUnavailable      ErrorCode = "UNAVAILABLE"
	CodeInternalError    ErrorCode = "INTERNAL_ERROR"
)

// BusinessCode is the specific reason behind an error.
type BusinessCode string

const (
	BusinessCodeGeneral        BusinessCode = "GENERAL"
	BusinessCodeFetchFailed    BusinessCode = "FETCH_FAILED"
	BusinessCodeShapeViolation BusinessCode = "SHAPE_VIOLATION"
	BusinessCodeRenderFailed   BusinessCode = "RENDER_FAILED"
	BusinessCodeBuildFailed    BusinessCode = "BUILD_FAILED"
)

// Slug returns the lower_snake_case form used in JSON error bodies.
func (c BusinessCode) Slug() string {
	return strings.ToLower(string(c))
}
