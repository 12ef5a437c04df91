package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/storefront/model"
)

// GetInventory handler
// @Summary Inventory overview
// @Description Whole-catalog stock stats plus up to 100 items matching the filters
// @Tags Inventory
// @Produce json
// @Security BearerAuth
// @Param filter query string false "all | low | out | ok"
// @Param type query string false "all | PART | USED_UNIT | NEW_MODEL"
// @Param search query string false "title or part number substring"
// @Success 200 {object} model.InventoryOverviewResponse
// @Failure 400 {object} transport.ErrorResponse
// @Router /admin/inventory [get]
func (s *RestHandler) GetInventory(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	res, err := s.InventoryApp.GetOverview(r.Context(), model.InventoryFilter{
		Status:   q.Get("filter"),
		ItemType: q.Get("type"),
		Search:   q.Get("search"),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetInventoryItem handler
// @Summary Inventory item detail
// @Description Item with its 20 most recent ledger entries
// @Tags Inventory
// @Produce json
// @Security BearerAuth
// @Param itemId path string true "Item ID"
// @Success 200 {object} model.InventoryItemDetailResponse
// @Failure 404 {object} transport.ErrorResponse
// @Router /admin/inventory/{itemId} [get]
func (s *RestHandler) GetInventoryItem(w http.ResponseWriter, r *http.Request) {
	res, err := s.InventoryApp.GetItemDetail(r.Context(), mux.Vars(r)["itemId"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// UpdateInventoryItem handler
// @Summary Adjust stock
// @Description Set quantity and/or reorder point in one transaction; quantity changes are written to the ledger
// @Tags Inventory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param itemId path string true "Item ID"
// @Param request body model.InventoryUpdateRequest true "Update Request"
// @Success 200 {object} model.InventoryUpdateResponse
// @Failure 400 {object} transport.ErrorResponse
// @Failure 404 {object} transport.ErrorResponse
// @Router /admin/inventory/{itemId} [patch]
func (s *RestHandler) UpdateInventoryItem(w http.ResponseWriter, r *http.Request) {
	var req model.InventoryUpdateRequest
	if err := decodeJSON(r, &req, false); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.InventoryApp.UpdateItem(r.Context(), mux.Vars(r)["itemId"], &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// RestockInventoryItem handler
// @Summary Restock item
// @Description Atomically add stock; an omitted amount restocks to one above the reorder point or 10
// @Tags Inventory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param itemId path string true "Item ID"
// @Param request body model.RestockRequest false "Restock Request"
// @Success 200 {object} model.InventoryUpdateResponse
// @Failure 400 {object} transport.ErrorResponse
// @Failure 404 {object} transport.ErrorResponse
// @Router /admin/inventory/{itemId}/restock [post]
func (s *RestHandler) RestockInventoryItem(w http.ResponseWriter, r *http.Request) {
	var req model.RestockRequest
	if err := decodeJSON(r, &req, true); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.InventoryApp.Restock(r.Context(), mux.Vars(r)["itemId"], &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// PublishLowStockAlert handler
// @Summary Queue low stock digest
// @Description Publishes every LOW or OUT item to the notification queue
// @Tags Internal
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.LowStockAlertResponse
// @Failure 403 {object} transport.ErrorResponse
// @Router /internal/v1/inventory/low-stock-alert [post]
func (s *RestHandler) PublishLowStockAlert(w http.ResponseWriter, r *http.Request) {
	res, err := s.InventoryApp.PublishLowStockDigest(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}
