package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/storefront/model"
)

// GetDeliveryAvailability handler
// @Summary Delivery slot availability
// @Tags Storefront
// @Produce json
// @Param dateFrom query string true "YYYY-MM-DD"
// @Param days query int false "default 14, max 30"
// @Success 200 {object} model.DeliveryAvailabilityResponse
// @Failure 400 {object} transport.ErrorResponse
// @Router /delivery/availability [get]
func (s *RestHandler) GetDeliveryAvailability(w http.ResponseWriter, r *http.Request) {
	res, err := s.DeliveryApp.GetAvailability(r.Context(), r.URL.Query().Get("dateFrom"), queryInt(r, "days"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// Search handler
// @Summary Search catalog
// @Tags Storefront
// @Produce json
// @Param q query string true "search term"
// @Param type query string false "ALL | USED_UNIT | PART | NEW_MODEL"
// @Param limit query int false "default 30, max 50"
// @Param offset query int false "default 0"
// @Success 200 {object} model.SearchResponse
// @Router /search [get]
func (s *RestHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	res, err := s.CatalogApp.Search(r.Context(), model.SearchRequest{
		Q:      q.Get("q"),
		Type:   q.Get("type"),
		Limit:  queryInt(r, "limit"),
		Offset: queryInt(r, "offset"),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetItem handler
// @Summary Item card
// @Tags Storefront
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} model.ItemResponse
// @Failure 404 {object} transport.ErrorResponse
// @Router /items/{id} [get]
func (s *RestHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	res, err := s.CatalogApp.GetItem(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// Home handler
// @Summary Home page sections
// @Tags Storefront
// @Produce json
// @Success 200 {object} model.HomeResponse
// @Router /home [get]
func (s *RestHandler) Home(w http.ResponseWriter, r *http.Request) {
	res, err := s.CatalogApp.Home(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// SubmitContact handler
// @Summary Contact the store
// @Tags Storefront
// @Accept json
// @Produce json
// @Param request body model.ContactRequest true "Contact Request"
// @Success 200 {object} model.ContactResponse
// @Failure 400 {object} transport.ErrorResponse
// @Failure 429 {object} transport.ErrorResponse
// @Router /contact [post]
func (s *RestHandler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var req model.ContactRequest
	if err := decodeJSON(r, &req, false); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.ContactApp.SubmitInquiry(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}
