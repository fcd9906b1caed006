package handlers

import (
	"bytes"
	"net/http"

	"go.uber.org/zap"

	"github.com/goalplan/engine/internal/services"
	"github.com/goalplan/engine/internal/web"
	"github.com/goalplan/engine/pkg/logger"
)

type PagesHandler struct {
	pages *web.Pages
	plans services.PlanService
	log   *zap.Logger
}

func NewPagesHandler(pages *web.Pages, plans services.PlanService, log *zap.Logger) *PagesHandler {
	if log == nil {
		log = logger.L()
	}
	return &PagesHandler{pages: pages, plans: plans, log: log}
}

// Index handles GET /.
func (h *PagesHandler) Index(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := h.pages.RenderIndex(&buf); err != nil {
		h.log.Error("render index failed", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	writeHTML(w, buf.Bytes())
}

// Plans handles GET /plans.
func (h *PagesHandler) Plans(w http.ResponseWriter, r *http.Request) {
	list, err := h.plans.ListPlans(r.Context())
	if err != nil {
		h.log.Error("list plans failed", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := h.pages.RenderPlans(&buf, list); err != nil {
		h.log.Error("render plans failed", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	writeHTML(w, buf.Bytes())
}

func writeHTML(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}
