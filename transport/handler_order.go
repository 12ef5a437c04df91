package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/storefront/constant"
	"github.com/muhammadheryan/storefront/model"
)

// PlaceOrder handler
// @Summary Place order
// @Description Persist a customer order and notify the store. Send Idempotency-Key to make retries safe.
// @Tags Orders
// @Accept json
// @Produce json
// @Param Idempotency-Key header string false "Client generated key"
// @Param request body model.PlaceOrderRequest true "Order Request"
// @Success 200 {object} model.PlaceOrderResponse
// @Failure 400 {object} transport.ErrorResponse
// @Failure 409 {object} transport.ErrorResponse
// @Failure 422 {object} transport.ErrorResponse
// @Failure 429 {object} transport.ErrorResponse
// @Router /orders [post]
func (s *RestHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req model.PlaceOrderRequest
	if err := decodeJSON(r, &req, false); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.OrderApp.PlaceOrder(r.Context(), &req, r.Header.Get(constant.IdempotencyKeyHeader))
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ListOrders handler
// @Summary List orders
// @Tags Orders
// @Produce json
// @Security BearerAuth
// @Param status query string false "all or one of PENDING, CONFIRMED, PROCESSING, READY, DELIVERED, CANCELLED"
// @Param limit query int false "default 50, max 200"
// @Success 200 {object} model.OrderListResponse
// @Failure 400 {object} transport.ErrorResponse
// @Router /admin/orders [get]
func (s *RestHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	res, err := s.OrderApp.ListOrders(r.Context(), r.URL.Query().Get("status"), queryInt(r, "limit"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetOrder handler
// @Summary Order detail
// @Description Returns the order with its line items and marks it viewed on first read
// @Tags Orders
// @Produce json
// @Security BearerAuth
// @Param orderId path string true "Order ID"
// @Success 200 {object} model.OrderDetailResponse
// @Failure 404 {object} transport.ErrorResponse
// @Router /admin/orders/{orderId} [get]
func (s *RestHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	res, err := s.OrderApp.GetOrderDetail(r.Context(), mux.Vars(r)["orderId"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// UpdateOrderStatus handler
// @Summary Change order status
// @Tags Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param orderId path string true "Order ID"
// @Param request body model.UpdateOrderStatusRequest true "Status Request"
// @Success 200 {object} model.SuccessResponse
// @Failure 400 {object} transport.ErrorResponse
// @Failure 404 {object} transport.ErrorResponse
// @Router /admin/orders/{orderId} [patch]
func (s *RestHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateOrderStatusRequest
	if err := decodeJSON(r, &req, false); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.OrderApp.UpdateStatus(r.Context(), mux.Vars(r)["orderId"], &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}
