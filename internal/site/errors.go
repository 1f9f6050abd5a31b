package site

import (
	"net/http"

	"github.com/philly/arch-blog/postpage/internal/platform/apperror"
)

var (
	ErrDocumentFailed = apperror.New(
		apperror.CodeInternalError,
		apperror.BusinessCodeRenderFailed,
		"failed to assemble page document",
		http.StatusInternalServerError,
	)

	ErrWriteFailed = apperror.New(
		apperror.CodeInternalError,
		apperror.BusinessCodeBuildFailed,
		"failed to write build output",
		http.StatusInternalServerError,
	)
)

func wrap(sentinel *apperror.AppError, inner error) *apperror.AppError {
	return apperror.Wrap(inner, sentinel.Code, sentinel.BusinessCode, sentinel.Message, sentinel.HTTPStatus)
}
