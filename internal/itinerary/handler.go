package itinerary

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
	Days(ctx context.Context) []Day
	Day(ctx context.Context, position int) (Day, error)
	AddEvent(ctx context.Context, dayPosition int, form EventFormDTO) (MutationResponse, error)
	EditEvent(ctx context.Context, dayPosition int, eventID string, form EventFormDTO) (MutationResponse, error)
	DeleteEvent(ctx context.Context, dayPosition int, eventID string) (MutationResponse, error)
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

func (h *Handler) GetItinerary(w http.ResponseWriter, r *http.Request) {
	h.WriteJSON(w, http.StatusOK, ScheduleResponse{Days: h.Service.Days(r.Context())})
}

func (h *Handler) GetDay(w http.ResponseWriter, r *http.Request) {
	position, ok := h.dayParam(w, r)
	if !ok {
		return
	}

	day, err := h.Service.Day(r.Context(), position)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, day)
}

func (h *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	position, ok := h.dayParam(w, r)
	if !ok {
		return
	}

	var form EventFormDTO
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		h.Logger.Error("CreateEvent: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.Service.AddEvent(r.Context(), position, form)
	if err != nil {
		h.Logger.Error("CreateEvent: service error", "error", err, "day", position)
		h.HandleServiceError(w, err)
		return
	}

	status := http.StatusOK
	if resp.Changed {
		status = http.StatusCreated
	}
	h.WriteJSON(w, status, resp)
}

func (h *Handler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	position, ok := h.dayParam(w, r)
	if !ok {
		return
	}
	eventID := chi.URLParam(r, "id")

	var form EventFormDTO
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		h.Logger.Error("UpdateEvent: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.Service.EditEvent(r.Context(), position, eventID, form)
	if err != nil {
		h.Logger.Error("UpdateEvent: service error", "error", err, "day", position, "event_id", eventID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, resp)
}

func (h *Handler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	position, ok := h.dayParam(w, r)
	if !ok {
		return
	}
	eventID := chi.URLParam(r, "id")

	resp, err := h.Service.DeleteEvent(r.Context(), position, eventID)
	if err != nil {
		h.Logger.Error("DeleteEvent: service error", "error", err, "day", position, "event_id", eventID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, resp)
}

func (h *Handler) dayParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	dayStr := chi.URLParam(r, "day")
	position, err := strconv.Atoi(dayStr)
	if err != nil {
		h.Logger.Error("invalid day position", "day", dayStr)
		h.WriteError(w, http.StatusBadRequest, "invalid day position")
		return 0, false
	}
	return position, true
}
