package rest

import (
	"context"
	"net/http"

	"github.com/philly/arch-blog/postpage/internal/site"
)

// PageCycle runs one uncached load+render cycle.
type PageCycle interface {
	Run(ctx context.Context) (*site.Artifacts, error)
}

// PageHandler serves the post list page and its props.
type PageHandler struct {
	*BaseHandler
	cycle PageCycle
}

// NewPageHandler creates a new page handler
func NewPageHandler(base *BaseHandler, cycle *site.Pipeline) *PageHandler {
	return &PageHandler{
		BaseHandler: base,
		cycle:       cycle,
	}
}

// GetPage renders the post list page. Every request runs a fresh cycle.
func (h *PageHandler) GetPage(w http.ResponseWriter, r *http.Request) {
	artifacts, err := h.cycle.Run(r.Context())
	if err != nil {
		h.HandleError(w, r, err)
		return
	}
	w.Header().Set("Cache-Control", "no-store")
	h.WriteRaw(w, r, "text/html; charset=utf-8", artifacts.HTML, http.StatusOK)
}

// GetProps returns the static props the page was rendered from.
func (h *PageHandler) GetProps(w http.ResponseWriter, r *http.Request) {
	artifacts, err := h.cycle.Run(r.Context())
	if err != nil {
		h.HandleError(w, r, err)
		return
	}
	w.Header().Set("Cache-Control", "no-store")
	h.WriteRaw(w, r, "application/json", artifacts.PropsJSON, http.StatusOK)
}
