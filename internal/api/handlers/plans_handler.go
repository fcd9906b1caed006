package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/goalplan/engine/internal/api/types"
	"github.com/goalplan/engine/internal/planner"
	"github.com/goalplan/engine/internal/services"
	"github.com/goalplan/engine/pkg/logger"
)

// maxBodyBytes bounds the create-plan request body.
const maxBodyBytes = 1 << 20

type PlansHandler struct {
	plans    services.PlanService
	validate *validator.Validate
	log      *zap.Logger
}

func NewPlansHandler(plans services.PlanService, log *zap.Logger) *PlansHandler {
	if log == nil {
		log = logger.L()
	}
	return &PlansHandler{
		plans:    plans,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		log:      log,
	}
}

// Create handles POST /create-plan.
func (h *PlansHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, msg := h.decodeCreate(r)
	if msg != "" {
		writeErrorStr(w, http.StatusBadRequest, msg)
		return
	}

	out, err := h.plans.CreatePlan(r.Context(), req.Goal)
	if err != nil {
		writeError(w, err)
		return
	}

	if out.ID != 0 {
		w.Header().Set("Location", fmt.Sprintf("/plans/%d", out.ID))
	}
	writeDocument(w, http.StatusOK, out.Plan.Document)
}

// decodeCreate returns the request or the client-facing reason it was rejected.
func (h *PlansHandler) decodeCreate(r *http.Request) (types.CreatePlanRequest, string) {
	var req types.CreatePlanRequest
	if !isJSON(r.Header.Get("Content-Type")) {
		return req, types.MsgMissingJSON
	}

	// The whole body must be one JSON object; trailing bytes reject it.
	data, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return req, types.MsgMissingJSON
	}
	var body map[string]json.RawMessage
	if err := json.Unmarshal(data, &body); err != nil || body == nil {
		return req, types.MsgMissingJSON
	}

	if raw, ok := body["goal"]; ok {
		if err := json.Unmarshal(raw, &req.Goal); err != nil {
			req.Goal = ""
		}
	}
	// Whitespace only counts as missing, but the goal is passed on as sent.
	if strings.TrimSpace(req.Goal) == "" || h.validate.Struct(req) != nil {
		return req, planner.GoalRequiredMessage
	}
	return req, ""
}

// Get handles GET /plans/{id}.
func (h *PlansHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id == 0 {
		writeErrorStr(w, http.StatusNotFound, types.MsgPlanNotFound)
		return
	}

	doc, err := h.plans.GetPlan(r.Context(), uint(id))
	if err != nil {
		if status, _ := types.FromAppError(err); status != http.StatusNotFound {
			h.log.Error("load plan failed", zap.Uint64("id", id), zap.Error(err))
		}
		writeError(w, err)
		return
	}
	writeDocument(w, http.StatusOK, doc)
}

func isJSON(contentType string) bool {
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mt == "application/json" || strings.HasSuffix(mt, "+json")
}
