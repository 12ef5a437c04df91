package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/storefront/constant"
	"github.com/muhammadheryan/storefront/model"
	inventoryrepo "github.com/muhammadheryan/storefront/repository/inventory"
	itemrepo "github.com/muhammadheryan/storefront/repository/item"
	txrepo "github.com/muhammadheryan/storefront/repository/tx"
	"github.com/muhammadheryan/storefront/thirdparty/rabbitmq"
	ctxutil "github.com/muhammadheryan/storefront/utils/context"
	"github.com/muhammadheryan/storefront/utils/errors"
	"github.com/muhammadheryan/storefront/utils/logger"
	"github.com/muhammadheryan/storefront/utils/metrics"
	"go.uber.org/zap"
)

const publishTimeout = 3 * time.Second

type InventoryApp interface {
	GetOverview(ctx context.Context, filter model.InventoryFilter) (*model.InventoryOverviewResponse, error)
	GetItemDetail(ctx context.Context, itemID string) (*model.InventoryItemDetailResponse, error)
	RecordChange(ctx context.Context, change model.StockChange, newQuantity int) (*model.Item, error)
	SetReorderPoint(ctx context.Context, itemID string, point int) (*model.Item, error)
	UpdateItem(ctx context.Context, itemID string, req *model.InventoryUpdateRequest) (*model.InventoryUpdateResponse, error)
	Restock(ctx context.Context, itemID string, req *model.RestockRequest) (*model.InventoryUpdateResponse, error)
	PublishLowStockDigest(ctx context.Context) (*model.LowStockAlertResponse, error)
}

type inventoryAppImpl struct {
	txRepo        txrepo.TxRepository
	itemRepo      itemrepo.ItemRepository
	inventoryRepo inventoryrepo.InventoryRepository
	publisher     rabbitmq.AlertPublisher
}

// NewInventoryApp builds the inventory use-cases. publisher may be nil, in
// which case low-stock alerts are only logged.
func NewInventoryApp(txRepo txrepo.TxRepository, itemRepo itemrepo.ItemRepository, inventoryRepo inventoryrepo.InventoryRepository, publisher rabbitmq.AlertPublisher) InventoryApp {
	return &inventoryAppImpl{txRepo: txRepo, itemRepo: itemRepo, inventoryRepo: inventoryRepo, publisher: publisher}
}

func (s *inventoryAppImpl) GetOverview(ctx context.Context, filter model.InventoryFilter) (*model.InventoryOverviewResponse, error) {
	filter.Status = strings.ToLower(strings.TrimSpace(filter.Status))
	filter.ItemType = strings.TrimSpace(filter.ItemType)
	filter.Search = strings.TrimSpace(filter.Search)

	switch filter.Status {
	case "", constant.InventoryFilterAll, constant.InventoryFilterLow, constant.InventoryFilterOut, constant.InventoryFilterOK:
	default:
		return nil, errors.SetCustomError(constant.ErrInvalidInventoryFilter)
	}
	if filter.ItemType != "" && !strings.EqualFold(filter.ItemType, constant.InventoryTypeAll) {
		filter.ItemType = strings.ToUpper(filter.ItemType)
		if !constant.ItemType(filter.ItemType).Valid() {
			return nil, errors.SetCustomError(constant.ErrInvalidInventoryFilter)
		}
	}

	stats, err := s.itemRepo.GetStats(ctx)
	if err != nil {
		logger.Error("[GetOverview] get stats", zap.String("error", err.Error()))
		return nil, errors.Wrap(constant.ErrInternal, err)
	}

	items, err := s.itemRepo.ListInventory(ctx, filter, constant.InventoryOverviewLimit)
	if err != nil {
		logger.Error("[GetOverview] list inventory", zap.String("error", err.Error()))
		return nil, errors.Wrap(constant.ErrInternal, err)
	}
	for i := range items {
		items[i].Derive()
	}

	return &model.InventoryOverviewResponse{Stats: *stats, Items: items}, nil
}

func (s *inventoryAppImpl) GetItemDetail(ctx context.Context, itemID string) (*model.InventoryItemDetailResponse, error) {
	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		logger.Error("[GetItemDetail] get item", zap.String("item_id", itemID), zap.String("error", err.Error()))
		return nil, errors.Wrap(constant.ErrInternal, err)
	}
	if item == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	item.Derive()

	history, err := s.inventoryRepo.ListByItem(ctx, itemID, constant.InventoryHistoryLimit)
	if err != nil {
		logger.Error("[GetItemDetail] list history", zap.String("item_id", itemID), zap.String("error", err.Error()))
		return nil, errors.Wrap(constant.ErrInternal, err)
	}

	return &model.InventoryItemDetailResponse{Item: item, History: history}, nil
}

func (s *inventoryAppImpl) RecordChange(ctx context.Context, change model.StockChange, newQuantity int) (*model.Item, error) {
	return s.apply(ctx, "RecordChange", stockUpdate{
		itemID:     change.ItemID,
		quantity:   &newQuantity,
		changeType: string(change.ChangeType),
		notes:      change.Notes,
		createdBy:  change.CreatedBy,
	})
}

func (s *inventoryAppImpl) SetReorderPoint(ctx context.Context, itemID string, point int) (*model.Item, error) {
	return s.apply(ctx, "SetReorderPoint", stockUpdate{itemID: itemID, reorderPoint: &point})
}

// UpdateItem applies a quantity and a reorder point change together: both
// writes commit or neither does.
func (s *inventoryAppImpl) UpdateItem(ctx context.Context, itemID string, req *model.InventoryUpdateRequest) (*model.InventoryUpdateResponse, error) {
	if req.Quantity == nil && req.ReorderPoint == nil {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	item, err := s.apply(ctx, "UpdateItem", stockUpdate{
		itemID:       itemID,
		quantity:     req.Quantity,
		reorderPoint: req.ReorderPoint,
		changeType:   req.ChangeType,
		notes:        req.Notes,
	})
	if err != nil {
		return nil, err
	}
	return &model.InventoryUpdateResponse{OK: true, Item: item}, nil
}

type stockUpdate struct {
	itemID       string
	quantity     *int
	reorderPoint *int
	changeType   string
	notes        string
	createdBy    *uint64
}

func normalizeChangeType(raw string) (constant.ChangeType, error) {
	ct := constant.ChangeType(strings.ToUpper(strings.TrimSpace(raw)))
	if ct == "" {
		return constant.ChangeTypeAdjustment, nil
	}
	if !ct.Valid() {
		return "", errors.SetCustomError(constant.ErrInvalidChangeType)
	}
	return ct, nil
}

func (s *inventoryAppImpl) apply(ctx context.Context, op string, u stockUpdate) (*model.Item, error) {
	if u.quantity != nil && *u.quantity < 0 {
		return nil, errors.SetCustomError(constant.ErrNegativeQuantity)
	}
	if u.reorderPoint != nil && *u.reorderPoint < 0 {
		return nil, errors.SetCustomError(constant.ErrNegativeReorderPoint)
	}
	changeType, err := normalizeChangeType(u.changeType)
	if err != nil {
		return nil, err
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error(fmt.Sprintf("[%s] begin tx", op), zap.String("error", err.Error()))
		return nil, errors.Wrap(constant.ErrInternal, err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	level, err := s.itemRepo.LockStockTx(ctx, tx, u.itemID)
	if err != nil {
		logger.Error(fmt.Sprintf("[%s] lock stock", op), zap.String("item_id", u.itemID), zap.String("error", err.Error()))
		return nil, errors.Wrap(constant.ErrInternal, err)
	}
	if level == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	if u.quantity != nil {
		if err := s.itemRepo.SetQuantityTx(ctx, tx, u.itemID, *u.quantity); err != nil {
			logger.Error(fmt.Sprintf("[%s] set quantity", op), zap.String("item_id", u.itemID), zap.String("error", err.Error()))
			return nil, errors.Wrap(constant.ErrInternal, err)
		}
		if err := s.appendLedgerTx(ctx, tx, u.itemID, changeType, level.Quantity, *u.quantity, u.notes, u.createdBy); err != nil {
			logger.Error(fmt.Sprintf("[%s] append ledger", op), zap.String("item_id", u.itemID), zap.String("error", err.Error()))
			return nil, errors.Wrap(constant.ErrInternal, err)
		}
	}

	if u.reorderPoint != nil {
		if err := s.itemRepo.SetReorderPointTx(ctx, tx, u.itemID, *u.reorderPoint); err != nil {
			logger.Error(fmt.Sprintf("[%s] set reorder point", op), zap.String("item_id", u.itemID), zap.String("error", err.Error()))
			return nil, errors.Wrap(constant.ErrInternal, err)
		}
	}

	item, err := s.itemRepo.GetByIDTx(ctx, tx, u.itemID)
	if err != nil || item == nil {
		if err == nil {
			err = fmt.Errorf("item %s vanished inside transaction", u.itemID)
		}
		logger.Error(fmt.Sprintf("[%s] reload item", op), zap.String("item_id", u.itemID), zap.String("error", err.Error()))
		return nil, errors.Wrap(constant.ErrInternal, err)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error(fmt.Sprintf("[%s] commit tx", op), zap.String("error", err.Error()))
		return nil, errors.Wrap(constant.ErrInternal, err)
	}
	committed = true

	if u.quantity != nil {
		metrics.Get().InventoryChanges.WithLabelValues(string(changeType)).Inc()
	}
	item.Derive()
	if model.StockStatusOf(level.Quantity, level.ReorderPoint) == constant.StockStatusOK && item.StockStatus != constant.StockStatusOK {
		s.alert(ctx, op, []model.LowStockItem{{
			ID:           item.ID,
			Title:        item.Title,
			Quantity:     item.QuantityOnHand,
			ReorderPoint: item.ReorderPoint,
		}})
	}
	return item, nil
}

// appendLedgerTx attributes the entry to createdBy, falling back to the
// authenticated admin on ctx.
func (s *inventoryAppImpl) appendLedgerTx(ctx context.Context, tx *sqlx.Tx, itemID string, changeType constant.ChangeType, before, after int, notes string, createdBy *uint64) error {
	entry := &model.LedgerEntry{
		ID:             uuid.NewString(),
		ItemID:         itemID,
		ChangeType:     changeType,
		QuantityBefore: before,
		QuantityAfter:  after,
		QuantityDelta:  after - before,
		CreatedBy:      createdBy,
		CreatedAt:      time.Now().UTC(),
	}
	if notes = strings.TrimSpace(notes); notes != "" {
		entry.Notes = &notes
	}
	if userID, ok := ctxutil.GetUserID(ctx); ok && entry.CreatedBy == nil {
		entry.CreatedBy = &userID
	}
	return s.inventoryRepo.InsertEntryTx(ctx, tx, entry)
}

// Restock adds stock with a single increment statement. An omitted amount
// restocks up to one unit above the reorder point, or DefaultRestockAmount
// when the item is not low.
func (s *inventoryAppImpl) Restock(ctx context.Context, itemID string, req *model.RestockRequest) (*model.InventoryUpdateResponse, error) {
	if req.Amount < 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRestockAmount)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[Restock] begin tx", zap.String("error", err.Error()))
		return nil, errors.Wrap(constant.ErrInternal, err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	level, err := s.itemRepo.LockStockTx(ctx, tx, itemID)
	if err != nil {
		logger.Error("[Restock] lock stock", zap.String("item_id", itemID), zap.String("error", err.Error()))
		return nil, errors.Wrap(constant.ErrInternal, err)
	}
	if level == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	amount := req.Amount
	if amount == 0 {
		amount = constant.DefaultRestockAmount
		if model.StockStatusOf(level.Quantity, level.ReorderPoint) != constant.StockStatusOK {
			amount = level.ReorderPoint - level.Quantity + 1
		}
	}

	ok, err := s.itemRepo.IncrementQuantityTx(ctx, tx, itemID, amount)
	if err != nil {
		logger.Error("[Restock] increment quantity", zap.String("item_id", itemID), zap.String("error", err.Error()))
		return nil, errors.Wrap(constant.ErrInternal, err)
	}
	if !ok {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	notes := req.Notes
	if strings.TrimSpace(notes) == "" {
		notes = fmt.Sprintf("Restocked %d units", amount)
	}
	if err := s.appendLedgerTx(ctx, tx, itemID, constant.ChangeTypeRestock, level.Quantity, level.Quantity+amount, notes, nil); err != nil {
		logger.Error("[Restock] append ledger", zap.String("item_id", itemID), zap.String("error", err.Error()))
		return nil, errors.Wrap(constant.ErrInternal, err)
	}

	item, err := s.itemRepo.GetByIDTx(ctx, tx, itemID)
	if err != nil || item == nil {
		if err == nil {
			err = fmt.Errorf("item %s vanished inside transaction", itemID)
		}
		logger.Error("[Restock] reload item", zap.String("item_id", itemID), zap.String("error", err.Error()))
		return nil, errors.Wrap(constant.ErrInternal, err)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Restock] commit tx", zap.String("error", err.Error()))
		return nil, errors.Wrap(constant.ErrInternal, err)
	}
	committed = true

	metrics.Get().InventoryChanges.WithLabelValues(string(constant.ChangeTypeRestock)).Inc()
	item.Derive()
	return &model.InventoryUpdateResponse{OK: true, Item: item}, nil
}

// PublishLowStockDigest queues one alert listing every LOW or OUT item.
func (s *inventoryAppImpl) PublishLowStockDigest(ctx context.Context) (*model.LowStockAlertResponse, error) {
	items, err := s.itemRepo.ListLowStock(ctx)
	if err != nil {
		logger.Error("[PublishLowStockDigest] list low stock", zap.String("error", err.Error()))
		return nil, errors.Wrap(constant.ErrInternal, err)
	}
	if len(items) == 0 || s.publisher == nil {
		return &model.LowStockAlertResponse{Published: false, ItemCount: len(items)}, nil
	}

	if err := s.publisher.PublishLowStockAlert(ctx, rabbitmq.LowStockAlertMessage{
		Items:     items,
		Source:    "digest",
		CreatedAt: time.Now().UTC(),
	}); err != nil {
		logger.Error("[PublishLowStockDigest] publish", zap.String("error", err.Error()))
		return nil, errors.Wrap(constant.ErrInternal, err)
	}
	metrics.Get().LowStockAlerts.Inc()
	return &model.LowStockAlertResponse{Published: true, ItemCount: len(items)}, nil
}

// alert never fails the caller; the write it follows is already committed.
func (s *inventoryAppImpl) alert(ctx context.Context, op string, items []model.LowStockItem) {
	if s.publisher == nil {
		logger.Warn(fmt.Sprintf("[%s] low stock alert not published, no publisher", op), zap.String("item_id", items[0].ID))
		return
	}
	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	err := s.publisher.PublishLowStockAlert(pubCtx, rabbitmq.LowStockAlertMessage{
		Items:     items,
		Source:    "transition",
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		logger.Warn(fmt.Sprintf("[%s] publish low stock alert", op), zap.String("item_id", items[0].ID), zap.String("error", err.Error()))
		return
	}
	metrics.Get().LowStockAlerts.Inc()
}
