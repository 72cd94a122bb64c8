package ledger

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/yuchingtw/trip-companion/internal/transport"
	"github.com/yuchingtw/trip-companion/pkg/logger"
)

type ServiceAPI interface {
	List(ctx context.Context) (LedgerResponse, error)
	SubmitEntry(ctx context.Context, form EntryFormDTO, targetRow *int) (bool, error)
	DeleteRecord(ctx context.Context, rowIndex int) (bool, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(service ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: transport.NewBaseHandler(logger.L()),
		Service:     service,
	}
}

// GetLedger returns the full record list plus the aggregate view. Every
// call is a fresh fetch from the backing store.
func (h *Handler) GetLedger(w http.ResponseWriter, r *http.Request) {
	resp, err := h.Service.List(r.Context())
	if err != nil {
		h.Logger.Error("GetLedger: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, resp)
}

func (h *Handler) CreateRecord(w http.ResponseWriter, r *http.Request) {
	var dto EntryFormDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreateRecord: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	submitted, err := h.Service.SubmitEntry(r.Context(), dto, nil)
	if err != nil {
		h.Logger.Error("CreateRecord: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	if !submitted {
		// empty item or amount: nothing was written
		h.WriteJSON(w, http.StatusOK, map[string]interface{}{"submitted": false})
		return
	}

	h.Logger.Info("CreateRecord: record submitted", "item", dto.Item)
	h.WriteJSON(w, http.StatusCreated, map[string]interface{}{"submitted": true})
}

func (h *Handler) UpdateRecord(w http.ResponseWriter, r *http.Request) {
	rowStr := chi.URLParam(r, "rowIndex")
	rowIndex, err := strconv.Atoi(rowStr)
	if err != nil {
		h.Logger.Error("UpdateRecord: invalid row index", "row_index", rowStr)
		h.WriteError(w, http.StatusBadRequest, "invalid row index")
		return
	}

	var dto EntryFormDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("UpdateRecord: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	submitted, err := h.Service.SubmitEntry(r.Context(), dto, &rowIndex)
	if err != nil {
		h.Logger.Error("UpdateRecord: service error", "error", err, "row_index", rowIndex)
		h.HandleServiceError(w, err)
		return
	}

	if !submitted {
		h.WriteJSON(w, http.StatusOK, map[string]interface{}{"submitted": false})
		return
	}

	h.Logger.Info("UpdateRecord: record updated", "row_index", rowIndex)
	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"submitted": true})
}

func (h *Handler) DeleteRecord(w http.ResponseWriter, r *http.Request) {
	rowStr := chi.URLParam(r, "rowIndex")
	rowIndex, err := strconv.Atoi(rowStr)
	if err != nil {
		h.Logger.Error("DeleteRecord: invalid row index", "row_index", rowStr)
		h.WriteError(w, http.StatusBadRequest, "invalid row index")
		return
	}

	deleted, err := h.Service.DeleteRecord(r.Context(), rowIndex)
	if err != nil {
		h.Logger.Error("DeleteRecord: service error", "error", err, "row_index", rowIndex)
		h.HandleServiceError(w, err)
		return
	}

	if !deleted {
		h.WriteJSON(w, http.StatusOK, map[string]string{"status": "noop"})
		return
	}

	h.Logger.Info("DeleteRecord: record deleted", "row_index", rowIndex)
	h.WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
