package location

import (
	"net/http"

	"github.com/go-chi/chi"
	locationDatamodel "github.com/yuchingtw/trip-companion/internal/core/datamodel/location"
	"github.com/yuchingtw/trip-companion/internal/transport"
)

type ServiceAPI interface {
	GetLocation(id string) (*locationDatamodel.Detail, error)
	GetAllLocations() ([]locationDatamodel.Detail, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: baseHandler,
		Service:     service,
	}
}

func (h *Handler) GetLocations(w http.ResponseWriter, r *http.Request) {
	details, err := h.Service.GetAllLocations()
	if err != nil {
		h.Logger.Error("GetLocations: failed to list locations", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to list locations")
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"locations": details})
}

func (h *Handler) GetLocation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	detail, err := h.Service.GetLocation(id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, detail)
}
