package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/storefront/model"
)

// GetCart handler
// @Summary Load cart
// @Tags Cart
// @Produce json
// @Param cartId path string true "Cart ID (UUID)"
// @Success 200 {object} model.Cart
// @Failure 400 {object} transport.ErrorResponse
// @Router /cart/{cartId} [get]
func (s *RestHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	res, err := s.CartApp.Get(r.Context(), mux.Vars(r)["cartId"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// AddCartItem handler
// @Summary Add item to cart
// @Tags Cart
// @Accept json
// @Produce json
// @Param cartId path string true "Cart ID (UUID)"
// @Param request body model.AddCartItemRequest true "Add Request"
// @Success 200 {object} model.Cart
// @Failure 400 {object} transport.ErrorResponse
// @Router /cart/{cartId}/items [post]
func (s *RestHandler) AddCartItem(w http.ResponseWriter, r *http.Request) {
	var req model.AddCartItemRequest
	if err := decodeJSON(r, &req, false); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.CartApp.AddItem(r.Context(), mux.Vars(r)["cartId"], &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// UpdateCartItem handler
// @Summary Set cart line quantity
// @Description A quantity of zero or less removes the line
// @Tags Cart
// @Accept json
// @Produce json
// @Param cartId path string true "Cart ID (UUID)"
// @Param itemId path string true "Item ID"
// @Param request body model.UpdateCartItemRequest true "Quantity"
// @Success 200 {object} model.Cart
// @Failure 400 {object} transport.ErrorResponse
// @Failure 404 {object} transport.ErrorResponse
// @Router /cart/{cartId}/items/{itemId} [patch]
func (s *RestHandler) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateCartItemRequest
	if err := decodeJSON(r, &req, false); err != nil {
		writeError(w, err)
		return
	}

	vars := mux.Vars(r)
	res, err := s.CartApp.UpdateQuantity(r.Context(), vars["cartId"], vars["itemId"], req.Quantity)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// RemoveCartItem handler
// @Summary Remove cart line
// @Tags Cart
// @Produce json
// @Param cartId path string true "Cart ID (UUID)"
// @Param itemId path string true "Item ID"
// @Success 200 {object} model.Cart
// @Failure 400 {object} transport.ErrorResponse
// @Router /cart/{cartId}/items/{itemId} [delete]
func (s *RestHandler) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	res, err := s.CartApp.RemoveItem(r.Context(), vars["cartId"], vars["itemId"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ClearCart handler
// @Summary Clear cart
// @Tags Cart
// @Produce json
// @Param cartId path string true "Cart ID (UUID)"
// @Success 200 {object} model.SuccessResponse
// @Failure 400 {object} transport.ErrorResponse
// @Router /cart/{cartId} [delete]
func (s *RestHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	if err := s.CartApp.Clear(r.Context(), mux.Vars(r)["cartId"]); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, model.SuccessResponse{Success: true})
}
