package receipt

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/noah-isme/receipts-api/internal/common"
)

// Handler exposes the receipt-processing endpoints.
type Handler struct {
	Svc *Service
}

// Process handles POST /receipts/process.
func (h *Handler) Process(w http.ResponseWriter, r *http.Request) {
	if h.Svc == nil {
		common.JSONError(w, http.StatusInternalServerError, common.KindInternal, "receipt service not configured")
		return
	}

	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	var doc map[string]any
	if err := dec.Decode(&doc); err != nil || doc == nil {
		common.JSONError(w, http.StatusBadRequest, common.KindValidation, "Invalid JSON format")
		return
	}

	id, _, err := h.Svc.Process(doc)
	if err != nil {
		h.writeError(w, err)
		return
	}
	common.JSON(w, http.StatusOK, map[string]string{"id": id})
}

// Points handles GET /receipts/{id}/points.
func (h *Handler) Points(w http.ResponseWriter, r *http.Request) {
	if h.Svc == nil {
		common.JSONError(w, http.StatusInternalServerError, common.KindInternal, "receipt service not configured")
		return
	}

	points, err := h.Svc.Points(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	common.JSON(w, http.StatusOK, map[string]int{"points": points})
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var appErr *common.AppError
	if errors.As(err, &appErr) {
		status := appErr.HTTPStatus
		if status == 0 {
			status = http.StatusInternalServerError
		}
		kind := appErr.Kind
		if kind == "" {
			kind = common.KindInternal
		}
		common.JSONError(w, status, kind, appErr.Message)
		return
	}
	h.Svc.Log.Error().Err(err).Msg("unhandled receipt error")
	common.JSONError(w, http.StatusInternalServerError, common.KindInternal, "An unexpected error occurred")
}
