package application

import (
	"net/http"

	"github.com/philly/arch-blog/postpage/internal/platform/apperror"
)

// Error definitions for page operations. Returned errors wrap their cause and
// match these through errors.Is.
var (
	ErrFetchFailed = apperror.New(
		apperror.CodeUnavailable,
		apperror.BusinessCodeFetchFailed,
		"failed to fetch posts",
		http.StatusBadGateway,
	)

	ErrShapeViolation = apperror.New(
		apperror.CodeValidationFailed,
		apperror.BusinessCodeShapeViolation,
		"post collection has an invalid shape",
		http.StatusUnprocessableEntity,
	)

	ErrRenderFailed = apperror.New(
		apperror.CodeInternalError,
		apperror.BusinessCodeRenderFailed,
		"failed to render post",
		http.StatusInternalServerError,
	)
)

func wrap(sentinel *apperror.AppError, inner error) *apperror.AppError {
	return apperror.Wrap(inner, sentinel.Code, sentinel.BusinessCode, sentinel.Message, sentinel.HTTPStatus)
}
