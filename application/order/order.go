package order

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	stderrors "errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/muhammadheryan/storefront/cmd/config"
	"github.com/muhammadheryan/storefront/constant"
	"github.com/muhammadheryan/storefront/model"
	itemrepo "github.com/muhammadheryan/storefront/repository/item"
	orderrepo "github.com/muhammadheryan/storefront/repository/order"
	redisrepo "github.com/muhammadheryan/storefront/repository/redis"
	txrepo "github.com/muhammadheryan/storefront/repository/tx"
	"github.com/muhammadheryan/storefront/thirdparty/mailer"
	"github.com/muhammadheryan/storefront/utils/errors"
	"github.com/muhammadheryan/storefront/utils/logger"
	"github.com/muhammadheryan/storefront/utils/metrics"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type OrderApp interface {
	PlaceOrder(ctx context.Context, req *model.PlaceOrderRequest, idempotencyKey string) (*model.PlaceOrderResponse, error)
	ListOrders(ctx context.Context, status string, limit int) (*model.OrderListResponse, error)
	GetOrderDetail(ctx context.Context, orderID string) (*model.OrderDetailResponse, error)
	UpdateStatus(ctx context.Context, orderID string, req *model.UpdateOrderStatusRequest) (*model.SuccessResponse, error)
}

// idempotencyRecord is the value held under an Idempotency-Key. Response stays
// nil until the first submission commits.
type idempotencyRecord struct {
	Hash     string                    `json:"hash"`
	Response *model.PlaceOrderResponse `json:"response,omitempty"`
}

type orderAppImpl struct {
	config    *config.Config
	txRepo    txrepo.TxRepository
	orderRepo orderrepo.OrderRepository
	itemRepo  itemrepo.ItemRepository
	redisRepo redisrepo.Repository
	notifier  mailer.Notifier
}

func NewOrderApp(config *config.Config, txRepo txrepo.TxRepository, orderRepo orderrepo.OrderRepository, itemRepo itemrepo.ItemRepository, redisRepo redisrepo.Repository, notifier mailer.Notifier) OrderApp {
	return &orderAppImpl{
		config:    config,
		txRepo:    txRepo,
		orderRepo: orderRepo,
		itemRepo:  itemRepo,
		redisRepo: redisRepo,
		notifier:  notifier,
	}
}

func validatePlaceOrder(req *model.PlaceOrderRequest) error {
	c := &req.Customer
	c.Name = strings.TrimSpace(c.Name)
	c.Email = strings.TrimSpace(c.Email)
	c.Phone = strings.TrimSpace(c.Phone)
	c.Address = strings.TrimSpace(c.Address)
	c.City = strings.TrimSpace(c.City)
	c.State = strings.TrimSpace(c.State)
	c.Zip = strings.TrimSpace(c.Zip)
	c.Notes = strings.TrimSpace(c.Notes)

	if c.Name == "" || c.Email == "" || c.Phone == "" {
		return errors.SetCustomError(constant.ErrMissingCustomerFields)
	}
	if len(req.Items) == 0 {
		return errors.SetCustomError(constant.ErrEmptyOrder)
	}
	for _, it := range req.Items {
		if strings.TrimSpace(it.ID) == "" || strings.TrimSpace(it.Title) == "" || it.Quantity < 1 {
			return errors.SetCustomError(constant.ErrInvalidLineItem)
		}
	}
	if c.Address != "" && (c.City == "" || c.State == "" || c.Zip == "") {
		return errors.SetCustomError(constant.ErrIncompleteAddress)
	}
	return nil
}

// PlaceOrder validates and persists an order, then notifies the store owner.
// A non-empty idempotencyKey makes retries of the same submission return the
// first response instead of creating another order. Reusing the key with a
// different body is rejected.
func (s *orderAppImpl) PlaceOrder(ctx context.Context, req *model.PlaceOrderRequest, idempotencyKey string) (*model.PlaceOrderResponse, error) {
	if err := validatePlaceOrder(req); err != nil {
		return nil, err
	}

	var idemKey, hash string
	if idempotencyKey = strings.TrimSpace(idempotencyKey); idempotencyKey != "" {
		var err error
		if hash, err = requestHash(req); err != nil {
			logger.Error("[PlaceOrder] hash request", zap.String("error", err.Error()))
			return nil, errors.Wrap(constant.ErrInternal, err)
		}
		idemKey = "idempotency:order:" + idempotencyKey
		resp, err := s.reserveIdempotencyKey(ctx, idemKey, hash)
		if err != nil || resp != nil {
			return resp, err
		}
	}

	resp, err := s.placeOrder(ctx, req)
	if idemKey != "" {
		s.settleIdempotencyKey(ctx, idemKey, hash, resp, err)
	}
	return resp, err
}

// requestHash fingerprints a validated request.
func requestHash(req *model.PlaceOrderRequest) (string, error) {
	raw, err := json.Marshal(req)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:]), nil
}

// reserveIdempotencyKey returns the stored response for a replayed key, a
// DuplicateRequest error while the first submission is in flight, an
// IdempotencyMismatch error when the key was used for another body, or nil, nil
// when this request owns the key. Redis failures degrade to no idempotency.
func (s *orderAppImpl) reserveIdempotencyKey(ctx context.Context, key, hash string) (*model.PlaceOrderResponse, error) {
	pending, err := json.Marshal(idempotencyRecord{Hash: hash})
	if err != nil {
		logger.Error("[PlaceOrder] encode idempotency record", zap.String("error", err.Error()))
		return nil, errors.Wrap(constant.ErrInternal, err)
	}
	reserved, err := s.redisRepo.SetNX(ctx, key, string(pending), s.config.Order.IdempotencyTTL)
	if err != nil {
		logger.Warn("[PlaceOrder] reserve idempotency key", zap.String("key", key), zap.String("error", err.Error()))
		return nil, nil
	}
	if reserved {
		return nil, nil
	}

	stored, err := s.redisRepo.Get(ctx, key)
	if err != nil {
		logger.Error("[PlaceOrder] read idempotency key", zap.String("key", key), zap.String("error", err.Error()))
		return nil, errors.Wrap(constant.ErrInternal, err)
	}
	if stored == "" {
		return nil, errors.SetCustomError(constant.ErrDuplicateRequest)
	}

	var rec idempotencyRecord
	if err := json.Unmarshal([]byte(stored), &rec); err != nil {
		logger.Error("[PlaceOrder] decode idempotency record", zap.String("key", key), zap.String("error", err.Error()))
		return nil, errors.Wrap(constant.ErrInternal, err)
	}
	if rec.Hash != hash {
		return nil, errors.SetCustomError(constant.ErrIdempotencyMismatch)
	}
	if rec.Response == nil {
		return nil, errors.SetCustomError(constant.ErrDuplicateRequest)
	}
	return rec.Response, nil
}

func (s *orderAppImpl) settleIdempotencyKey(ctx context.Context, key, hash string, resp *model.PlaceOrderResponse, placeErr error) {
	ctx = context.WithoutCancel(ctx)
	if placeErr != nil {
		if err := s.redisRepo.Delete(ctx, key); err != nil {
			logger.Warn("[PlaceOrder] release idempotency key", zap.String("key", key), zap.String("error", err.Error()))
		}
		return
	}
	raw, err := json.Marshal(idempotencyRecord{Hash: hash, Response: resp})
	if err != nil {
		logger.Warn("[PlaceOrder] encode idempotent response", zap.String("error", err.Error()))
		return
	}
	if err := s.redisRepo.SetWithTTL(ctx, key, string(raw), s.config.Order.IdempotencyTTL); err != nil {
		logger.Warn("[PlaceOrder] store idempotent response", zap.String("key", key), zap.String("error", err.Error()))
	}
}

func (s *orderAppImpl) placeOrder(ctx context.Context, req *model.PlaceOrderRequest) (*model.PlaceOrderResponse, error) {
	subtotal := decimal.Zero
	for _, it := range req.Items {
		subtotal = subtotal.Add(it.LineTotal())
	}
	if !subtotal.Equal(req.Subtotal) {
		logger.Warn("[PlaceOrder] declared subtotal differs from line items",
			zap.String("declared", req.Subtotal.String()), zap.String("computed", subtotal.String()))
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[PlaceOrder] begin tx", zap.String("error", err.Error()))
		return nil, errors.Wrap(constant.ErrInternal, err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	orderNumber, err := s.orderRepo.NextOrderNumberTx(ctx, tx, time.Now())
	if err != nil {
		logger.Error("[PlaceOrder] next order number", zap.String("error", err.Error()))
		return nil, errors.Wrap(constant.ErrInternal, err)
	}

	orderID := uuid.NewString()
	if err := s.orderRepo.InsertOrderTx(ctx, tx, &model.InsertOrderTxItem{
		ID:          orderID,
		OrderNumber: orderNumber,
		Status:      constant.OrderStatusPending,
		Customer:    req.Customer,
		Subtotal:    subtotal,
	}); err != nil {
		logger.Error("[PlaceOrder] insert order", zap.String("error", err.Error()))
		return nil, errors.Wrap(constant.ErrInternal, err)
	}

	if err := s.orderRepo.InsertOrderItemsTx(ctx, tx, orderID, req.Items); err != nil {
		logger.Error("[PlaceOrder] insert items", zap.String("order_number", orderNumber), zap.String("error", err.Error()))
		return nil, errors.Wrap(constant.ErrInternal, err)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[PlaceOrder] commit tx", zap.String("error", err.Error()))
		return nil, errors.Wrap(constant.ErrInternal, err)
	}
	committed = true
	metrics.Get().OrdersPlaced.Inc()
	logger.Info("[PlaceOrder] order placed", zap.String("order_number", orderNumber), zap.Int("lines", len(req.Items)))

	emailSent := s.notifyOrder(ctx, orderID, &model.OrderNotification{
		OrderNumber: orderNumber,
		Customer:    req.Customer,
		Items:       req.Items,
		Subtotal:    subtotal,
	})

	return &model.PlaceOrderResponse{
		Success:     true,
		OrderNumber: orderNumber,
		OrderID:     orderID,
		EmailSent:   emailSent,
	}, nil
}

// notifyOrder runs after commit; a failed send never fails the order.
func (s *orderAppImpl) notifyOrder(ctx context.Context, orderID string, n *model.OrderNotification) bool {
	nctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.config.Order.NotificationTimeout)
	defer cancel()

	if err := s.notifier.SendOrderNotification(nctx, n); err != nil {
		if !stderrors.Is(err, mailer.ErrNotConfigured) {
			metrics.Get().NotificationsFailed.WithLabelValues("order").Inc()
		}
		logger.Warn("[PlaceOrder] order notification not sent", zap.String("order_number", n.OrderNumber), zap.String("error", err.Error()))
		return false
	}

	if err := s.orderRepo.SetEmailSent(nctx, orderID); err != nil {
		logger.Error("[PlaceOrder] set email sent", zap.String("order_number", n.OrderNumber), zap.String("error", err.Error()))
	}
	return true
}

func (s *orderAppImpl) ListOrders(ctx context.Context, status string, limit int) (*model.OrderListResponse, error) {
	var filter constant.OrderStatus
	if status = strings.TrimSpace(status); status != "" && status != constant.OrderStatusFilterAll {
		filter = constant.OrderStatus(status)
		if !filter.Valid() {
			return nil, errors.SetCustomError(constant.ErrInvalidOrderStatus)
		}
	}
	switch {
	case limit <= 0:
		limit = constant.DefaultOrderListLimit
	case limit > constant.MaxOrderListLimit:
		limit = constant.MaxOrderListLimit
	}

	orders, err := s.orderRepo.List(ctx, filter, limit)
	if err != nil {
		logger.Error("[ListOrders] list orders", zap.String("error", err.Error()))
		return nil, errors.Wrap(constant.ErrInternal, err)
	}

	stats, err := s.orderRepo.GetStats(ctx)
	if err != nil {
		logger.Error("[ListOrders] get stats", zap.String("error", err.Error()))
		return nil, errors.Wrap(constant.ErrInternal, err)
	}

	lowStock, err := s.itemRepo.CountLowStock(ctx)
	if err != nil {
		logger.Error("[ListOrders] count low stock", zap.String("error", err.Error()))
		return nil, errors.Wrap(constant.ErrInternal, err)
	}

	return &model.OrderListResponse{Orders: orders, Stats: *stats, LowStockCount: lowStock}, nil
}

// GetOrderDetail marks the order viewed on its first read.
func (s *orderAppImpl) GetOrderDetail(ctx context.Context, orderID string) (*model.OrderDetailResponse, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		logger.Error("[GetOrderDetail] get order", zap.String("order_id", orderID), zap.String("error", err.Error()))
		return nil, errors.Wrap(constant.ErrInternal, err)
	}
	if order == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	if order.ViewedAt == nil {
		if err := s.orderRepo.MarkViewed(ctx, orderID, time.Now()); err != nil {
			logger.Error("[GetOrderDetail] mark viewed", zap.String("order_id", orderID), zap.String("error", err.Error()))
			return nil, errors.Wrap(constant.ErrInternal, err)
		}
		order, err = s.orderRepo.GetByID(ctx, orderID)
		if err != nil || order == nil {
			if err == nil {
				err = stderrors.New("order disappeared after mark viewed")
			}
			logger.Error("[GetOrderDetail] reload order", zap.String("order_id", orderID), zap.String("error", err.Error()))
			return nil, errors.Wrap(constant.ErrInternal, err)
		}
	}

	items, err := s.orderRepo.ListLineItems(ctx, orderID)
	if err != nil {
		logger.Error("[GetOrderDetail] list line items", zap.String("order_id", orderID), zap.String("error", err.Error()))
		return nil, errors.Wrap(constant.ErrInternal, err)
	}

	return &model.OrderDetailResponse{Order: order, Items: items}, nil
}

// UpdateStatus accepts any transition between the known statuses.
func (s *orderAppImpl) UpdateStatus(ctx context.Context, orderID string, req *model.UpdateOrderStatusRequest) (*model.SuccessResponse, error) {
	status := constant.OrderStatus(strings.TrimSpace(req.Status))
	if !status.Valid() {
		return nil, errors.SetCustomError(constant.ErrInvalidOrderStatus)
	}

	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		logger.Error("[UpdateStatus] get order", zap.String("order_id", orderID), zap.String("error", err.Error()))
		return nil, errors.Wrap(constant.ErrInternal, err)
	}
	if order == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	if err := s.orderRepo.UpdateStatus(ctx, orderID, status); err != nil {
		logger.Error("[UpdateStatus] update status", zap.String("order_id", orderID), zap.String("error", err.Error()))
		return nil, errors.Wrap(constant.ErrInternal, err)
	}
	logger.Info("[UpdateStatus] order status changed", zap.String("order_number", order.OrderNumber),
		zap.String("from", string(order.Status)), zap.String("to", string(status)))

	return &model.SuccessResponse{Success: true}, nil
}
