package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/philly/arch-blog/postpage/internal/platform/apperror"
	"github.com/philly/arch-blog/postpage/internal/platform/logger"
)

// ErrorResponse is the JSON body of every error the host writes.
type ErrorResponse struct {
	Error        string `json:"error"`
	Message      string `json:"message"`
	BusinessCode string `json:"business_code,omitempty"`
	Context      any    `json:"context,omitempty"`
}

// BaseHandler contains common dependencies and helper methods for all handlers
type BaseHandler struct {
	logger logger.Logger
}

// NewBaseHandler creates a new base handler with common dependencies
func NewBaseHandler(logger logger.Logger) *BaseHandler {
	return &BaseHandler{
		logger: logger,
	}
}

// WriteJSONError writes a JSON error response
func (h *BaseHandler) WriteJSONError(w http.ResponseWriter, r *http.Request, code string, message string, statusCode int) {
	h.writeError(w, r, ErrorResponse{Error: code, Message: message}, statusCode)
}

// WriteJSONResponse writes a successful JSON response
func (h *BaseHandler) WriteJSONResponse(w http.ResponseWriter, r *http.Request, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if data == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error(r.Context(), "failed to encode response",
			"error", err,
			"status_code", statusCode,
		)
	}
}

// WriteRaw writes an already encoded body with the given content type.
func (h *BaseHandler) WriteRaw(w http.ResponseWriter, r *http.Request, contentType string, body []byte, statusCode int) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(statusCode)

	if _, err := w.Write(body); err != nil {
		h.logger.Warn(r.Context(), "failed to write response body",
			"error", err,
			"status_code", statusCode,
		)
	}
}

// HandleError maps err to a JSON error response. AppErrors keep their code,
// status and details; anything else is an internal server error.
func (h *BaseHandler) HandleError(w http.ResponseWriter, r *http.Request, err error) {
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		h.logger.Error(r.Context(), "unhandled error", "error", err, "path", r.URL.Path)
		h.WriteJSONError(w, r, "INTERNAL_SERVER_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	status := apperror.HTTPStatusOf(appErr)
	if status >= http.StatusInternalServerError {
		h.logger.Error(r.Context(), "request failed",
			"error", err,
			"business_code", appErr.BusinessCode.Slug(),
			"path", r.URL.Path,
		)
	} else {
		h.logger.Warn(r.Context(), "request rejected",
			"error", err,
			"business_code", appErr.BusinessCode.Slug(),
			"path", r.URL.Path,
		)
	}

	resp := ErrorResponse{
		Error:        string(appErr.Code),
		Message:      appErr.Message,
		BusinessCode: string(appErr.BusinessCode),
	}
	if appErr.Details != nil {
		resp.Context = appErr.Details
	}
	h.writeError(w, r, resp, status)
}

func (h *BaseHandler) writeError(w http.ResponseWriter, r *http.Request, resp ErrorResponse, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error(r.Context(), "failed to encode error response",
			"error", err,
			"error_code", resp.Error,
			"status_code", statusCode,
		)
	}
}
