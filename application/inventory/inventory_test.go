package inventory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	appinventory "github.com/muhammadheryan/storefront/application/inventory"
	"github.com/muhammadheryan/storefront/constant"
	inventorymocks "github.com/muhammadheryan/storefront/mocks/repository/inventory"
	itemmocks "github.com/muhammadheryan/storefront/mocks/repository/item"
	txmocks "github.com/muhammadheryan/storefront/mocks/repository/tx"
	rabbitmocks "github.com/muhammadheryan/storefront/mocks/thirdparty/rabbitmq"
	"github.com/muhammadheryan/storefront/model"
	"github.com/muhammadheryan/storefront/thirdparty/rabbitmq"
	ctxutil "github.com/muhammadheryan/storefront/utils/context"
	cerr "github.com/muhammadheryan/storefront/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type fields struct {
	txRepo        *txmocks.TxRepository
	itemRepo      *itemmocks.ItemRepository
	inventoryRepo *inventorymocks.InventoryRepository
	publisher     *rabbitmocks.AlertPublisher
}

func newFields(t *testing.T) fields {
	return fields{
		txRepo:        txmocks.NewTxRepository(t),
		itemRepo:      itemmocks.NewItemRepository(t),
		inventoryRepo: inventorymocks.NewInventoryRepository(t),
		publisher:     rabbitmocks.NewAlertPublisher(t),
	}
}

func intPtr(v int) *int { return &v }

func assertErrCode(t *testing.T, err error, code constant.ErrorType) {
	t.Helper()
	var ce cerr.CustomError
	if assert.True(t, errors.As(err, &ce), "expected CustomError, got %v", err) {
		assert.Equal(t, code, ce.Type())
	}
}

func TestInventoryApp_UpdateItem(t *testing.T) {
	type args struct {
		ctx    context.Context
		itemID string
		req    *model.InventoryUpdateRequest
	}
	tests := []struct {
		name     string
		args     args
		mockCall func(f fields)
		want     *model.Item
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: quantity change stays OK and writes one ledger entry",
			args: args{
				ctx:    ctxutil.WithUserID(context.Background(), 7),
				itemID: "item-1",
				req:    &model.InventoryUpdateRequest{Quantity: intPtr(15), Notes: "cycle count"},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.itemRepo.On("LockStockTx", mock.Anything, tx, "item-1").Return(&model.StockLevel{Quantity: 20, ReorderPoint: 5}, nil).Once()
				f.itemRepo.On("SetQuantityTx", mock.Anything, tx, "item-1", 15).Return(nil).Once()
				f.inventoryRepo.On("InsertEntryTx", mock.Anything, tx, mock.MatchedBy(func(e *model.LedgerEntry) bool {
					return e.ItemID == "item-1" &&
						e.ChangeType == constant.ChangeTypeAdjustment &&
						e.QuantityBefore == 20 && e.QuantityAfter == 15 && e.QuantityDelta == -5 &&
						e.Notes != nil && *e.Notes == "cycle count" &&
						e.CreatedBy != nil && *e.CreatedBy == 7
				})).Return(nil).Once()
				f.itemRepo.On("GetByIDTx", mock.Anything, tx, "item-1").Return(&model.Item{ID: "item-1", QuantityOnHand: 15, ReorderPoint: 5}, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
			},
			want: &model.Item{ID: "item-1", QuantityOnHand: 15, ReorderPoint: 5, StockStatus: constant.StockStatusOK},
		},
		{
			name: "success: dropping to LOW publishes a transition alert",
			args: args{
				ctx:    context.Background(),
				itemID: "item-1",
				req:    &model.InventoryUpdateRequest{Quantity: intPtr(3), ChangeType: "sale"},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.itemRepo.On("LockStockTx", mock.Anything, tx, "item-1").Return(&model.StockLevel{Quantity: 10, ReorderPoint: 5}, nil).Once()
				f.itemRepo.On("SetQuantityTx", mock.Anything, tx, "item-1", 3).Return(nil).Once()
				f.inventoryRepo.On("InsertEntryTx", mock.Anything, tx, mock.MatchedBy(func(e *model.LedgerEntry) bool {
					return e.ChangeType == constant.ChangeTypeSale && e.QuantityDelta == -7 && e.Notes == nil && e.CreatedBy == nil
				})).Return(nil).Once()
				f.itemRepo.On("GetByIDTx", mock.Anything, tx, "item-1").Return(&model.Item{ID: "item-1", Title: "Filter", QuantityOnHand: 3, ReorderPoint: 5}, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
				f.publisher.On("PublishLowStockAlert", mock.Anything, mock.MatchedBy(func(msg rabbitmq.LowStockAlertMessage) bool {
					return msg.Source == "transition" && len(msg.Items) == 1 && msg.Items[0].ID == "item-1" && msg.Items[0].Quantity == 3
				})).Return(nil).Once()
			},
			want: &model.Item{ID: "item-1", Title: "Filter", QuantityOnHand: 3, ReorderPoint: 5, StockStatus: constant.StockStatusLow, UnitsNeeded: 3},
		},
		{
			name: "success: publish failure does not fail the committed write",
			args: args{
				ctx:    context.Background(),
				itemID: "item-1",
				req:    &model.InventoryUpdateRequest{Quantity: intPtr(0)},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.itemRepo.On("LockStockTx", mock.Anything, tx, "item-1").Return(&model.StockLevel{Quantity: 10, ReorderPoint: 5}, nil).Once()
				f.itemRepo.On("SetQuantityTx", mock.Anything, tx, "item-1", 0).Return(nil).Once()
				f.inventoryRepo.On("InsertEntryTx", mock.Anything, tx, mock.Anything).Return(nil).Once()
				f.itemRepo.On("GetByIDTx", mock.Anything, tx, "item-1").Return(&model.Item{ID: "item-1", QuantityOnHand: 0, ReorderPoint: 5}, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
				f.publisher.On("PublishLowStockAlert", mock.Anything, mock.Anything).Return(errors.New("channel closed")).Once()
			},
			want: &model.Item{ID: "item-1", QuantityOnHand: 0, ReorderPoint: 5, StockStatus: constant.StockStatusOut, UnitsNeeded: 6},
		},
		{
			name: "success: already LOW item does not alert again",
			args: args{
				ctx:    context.Background(),
				itemID: "item-1",
				req:    &model.InventoryUpdateRequest{Quantity: intPtr(2)},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.itemRepo.On("LockStockTx", mock.Anything, tx, "item-1").Return(&model.StockLevel{Quantity: 4, ReorderPoint: 5}, nil).Once()
				f.itemRepo.On("SetQuantityTx", mock.Anything, tx, "item-1", 2).Return(nil).Once()
				f.inventoryRepo.On("InsertEntryTx", mock.Anything, tx, mock.Anything).Return(nil).Once()
				f.itemRepo.On("GetByIDTx", mock.Anything, tx, "item-1").Return(&model.Item{ID: "item-1", QuantityOnHand: 2, ReorderPoint: 5}, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
			},
			want: &model.Item{ID: "item-1", QuantityOnHand: 2, ReorderPoint: 5, StockStatus: constant.StockStatusLow, UnitsNeeded: 4},
		},
		{
			name: "success: reorder point only skips the ledger",
			args: args{
				ctx:    context.Background(),
				itemID: "item-1",
				req:    &model.InventoryUpdateRequest{ReorderPoint: intPtr(8)},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.itemRepo.On("LockStockTx", mock.Anything, tx, "item-1").Return(&model.StockLevel{Quantity: 20, ReorderPoint: 5}, nil).Once()
				f.itemRepo.On("SetReorderPointTx", mock.Anything, tx, "item-1", 8).Return(nil).Once()
				f.itemRepo.On("GetByIDTx", mock.Anything, tx, "item-1").Return(&model.Item{ID: "item-1", QuantityOnHand: 20, ReorderPoint: 8}, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
			},
			want: &model.Item{ID: "item-1", QuantityOnHand: 20, ReorderPoint: 8, StockStatus: constant.StockStatusOK},
		},
		{
			name:    "error: nothing to update",
			args:    args{ctx: context.Background(), itemID: "item-1", req: &model.InventoryUpdateRequest{}},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name:    "error: negative quantity",
			args:    args{ctx: context.Background(), itemID: "item-1", req: &model.InventoryUpdateRequest{Quantity: intPtr(-1)}},
			wantErr: true,
			errCode: constant.ErrNegativeQuantity,
		},
		{
			name:    "error: negative reorder point",
			args:    args{ctx: context.Background(), itemID: "item-1", req: &model.InventoryUpdateRequest{ReorderPoint: intPtr(-3)}},
			wantErr: true,
			errCode: constant.ErrNegativeReorderPoint,
		},
		{
			name:    "error: unknown change type",
			args:    args{ctx: context.Background(), itemID: "item-1", req: &model.InventoryUpdateRequest{Quantity: intPtr(1), ChangeType: "THEFT"}},
			wantErr: true,
			errCode: constant.ErrInvalidChangeType,
		},
		{
			name: "error: item not found rolls back",
			args: args{ctx: context.Background(), itemID: "missing", req: &model.InventoryUpdateRequest{Quantity: intPtr(1)}},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.itemRepo.On("LockStockTx", mock.Anything, tx, "missing").Return(nil, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: BeginTx returns error",
			args: args{ctx: context.Background(), itemID: "item-1", req: &model.InventoryUpdateRequest{Quantity: intPtr(1)}},
			mockCall: func(f fields) {
				f.txRepo.On("BeginTx", mock.Anything).Return(nil, errors.New("tx error")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
		{
			name: "error: ledger insert fails and nothing commits",
			args: args{ctx: context.Background(), itemID: "item-1", req: &model.InventoryUpdateRequest{Quantity: intPtr(4), ReorderPoint: intPtr(2)}},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.itemRepo.On("LockStockTx", mock.Anything, tx, "item-1").Return(&model.StockLevel{Quantity: 20, ReorderPoint: 5}, nil).Once()
				f.itemRepo.On("SetQuantityTx", mock.Anything, tx, "item-1", 4).Return(nil).Once()
				f.inventoryRepo.On("InsertEntryTx", mock.Anything, tx, mock.Anything).Return(errors.New("db error")).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := appinventory.NewInventoryApp(f.txRepo, f.itemRepo, f.inventoryRepo, f.publisher)

			got, err := app.UpdateItem(tt.args.ctx, tt.args.itemID, tt.args.req)
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				assert.Nil(t, got)
				return
			}
			assert.NoError(t, err)
			assert.True(t, got.OK)
			assert.Equal(t, tt.want, got.Item)
		})
	}
}

func TestInventoryApp_RecordChange_UsesExplicitAuthor(t *testing.T) {
	f := newFields(t)
	tx := &sqlx.Tx{}
	author := uint64(42)
	f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
	f.itemRepo.On("LockStockTx", mock.Anything, tx, "item-1").Return(&model.StockLevel{Quantity: 5, ReorderPoint: 1}, nil).Once()
	f.itemRepo.On("SetQuantityTx", mock.Anything, tx, "item-1", 6).Return(nil).Once()
	f.inventoryRepo.On("InsertEntryTx", mock.Anything, tx, mock.MatchedBy(func(e *model.LedgerEntry) bool {
		return e.ChangeType == constant.ChangeTypeReturn && e.QuantityDelta == 1 && e.CreatedBy != nil && *e.CreatedBy == 42
	})).Return(nil).Once()
	f.itemRepo.On("GetByIDTx", mock.Anything, tx, "item-1").Return(&model.Item{ID: "item-1", QuantityOnHand: 6, ReorderPoint: 1}, nil).Once()
	f.txRepo.On("CommitTx", tx).Return(nil).Once()

	app := appinventory.NewInventoryApp(f.txRepo, f.itemRepo, f.inventoryRepo, nil)
	got, err := app.RecordChange(ctxutil.WithUserID(context.Background(), 7), model.StockChange{
		ItemID:     "item-1",
		ChangeType: constant.ChangeTypeReturn,
		CreatedBy:  &author,
	}, 6)

	assert.NoError(t, err)
	assert.Equal(t, constant.StockStatusOK, got.StockStatus)
}

func TestInventoryApp_SetReorderPoint_RaisingIntoLowAlerts(t *testing.T) {
	f := newFields(t)
	tx := &sqlx.Tx{}
	f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
	f.itemRepo.On("LockStockTx", mock.Anything, tx, "item-1").Return(&model.StockLevel{Quantity: 6, ReorderPoint: 5}, nil).Once()
	f.itemRepo.On("SetReorderPointTx", mock.Anything, tx, "item-1", 6).Return(nil).Once()
	f.itemRepo.On("GetByIDTx", mock.Anything, tx, "item-1").Return(&model.Item{ID: "item-1", QuantityOnHand: 6, ReorderPoint: 6}, nil).Once()
	f.txRepo.On("CommitTx", tx).Return(nil).Once()
	f.publisher.On("PublishLowStockAlert", mock.Anything, mock.Anything).Return(nil).Once()

	app := appinventory.NewInventoryApp(f.txRepo, f.itemRepo, f.inventoryRepo, f.publisher)
	got, err := app.SetReorderPoint(context.Background(), "item-1", 6)

	assert.NoError(t, err)
	assert.Equal(t, constant.StockStatusLow, got.StockStatus)
	assert.Equal(t, 1, got.UnitsNeeded)
}

func TestInventoryApp_Restock(t *testing.T) {
	type args struct {
		itemID string
		req    *model.RestockRequest
	}
	tests := []struct {
		name     string
		args     args
		mockCall func(f fields)
		wantQty  int
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: explicit amount",
			args: args{itemID: "item-1", req: &model.RestockRequest{Amount: 5, Notes: "supplier delivery"}},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.itemRepo.On("LockStockTx", mock.Anything, tx, "item-1").Return(&model.StockLevel{Quantity: 2, ReorderPoint: 5}, nil).Once()
				f.itemRepo.On("IncrementQuantityTx", mock.Anything, tx, "item-1", 5).Return(true, nil).Once()
				f.inventoryRepo.On("InsertEntryTx", mock.Anything, tx, mock.MatchedBy(func(e *model.LedgerEntry) bool {
					return e.ChangeType == constant.ChangeTypeRestock && e.QuantityBefore == 2 && e.QuantityAfter == 7 &&
						e.Notes != nil && *e.Notes == "supplier delivery"
				})).Return(nil).Once()
				f.itemRepo.On("GetByIDTx", mock.Anything, tx, "item-1").Return(&model.Item{ID: "item-1", QuantityOnHand: 7, ReorderPoint: 5}, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
			},
			wantQty: 7,
		},
		{
			name: "success: omitted amount on a LOW item fills to one above the reorder point",
			args: args{itemID: "item-1", req: &model.RestockRequest{}},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.itemRepo.On("LockStockTx", mock.Anything, tx, "item-1").Return(&model.StockLevel{Quantity: 2, ReorderPoint: 5}, nil).Once()
				f.itemRepo.On("IncrementQuantityTx", mock.Anything, tx, "item-1", 4).Return(true, nil).Once()
				f.inventoryRepo.On("InsertEntryTx", mock.Anything, tx, mock.MatchedBy(func(e *model.LedgerEntry) bool {
					return e.QuantityDelta == 4 && e.Notes != nil && *e.Notes == "Restocked 4 units"
				})).Return(nil).Once()
				f.itemRepo.On("GetByIDTx", mock.Anything, tx, "item-1").Return(&model.Item{ID: "item-1", QuantityOnHand: 6, ReorderPoint: 5}, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
			},
			wantQty: 6,
		},
		{
			name: "success: omitted amount on an OK item uses the default",
			args: args{itemID: "item-1", req: &model.RestockRequest{}},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.itemRepo.On("LockStockTx", mock.Anything, tx, "item-1").Return(&model.StockLevel{Quantity: 30, ReorderPoint: 5}, nil).Once()
				f.itemRepo.On("IncrementQuantityTx", mock.Anything, tx, "item-1", constant.DefaultRestockAmount).Return(true, nil).Once()
				f.inventoryRepo.On("InsertEntryTx", mock.Anything, tx, mock.Anything).Return(nil).Once()
				f.itemRepo.On("GetByIDTx", mock.Anything, tx, "item-1").Return(&model.Item{ID: "item-1", QuantityOnHand: 40, ReorderPoint: 5}, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
			},
			wantQty: 40,
		},
		{
			name:    "error: negative amount",
			args:    args{itemID: "item-1", req: &model.RestockRequest{Amount: -2}},
			wantErr: true,
			errCode: constant.ErrInvalidRestockAmount,
		},
		{
			name: "error: item not found",
			args: args{itemID: "missing", req: &model.RestockRequest{Amount: 1}},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.itemRepo.On("LockStockTx", mock.Anything, tx, "missing").Return(nil, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: increment fails",
			args: args{itemID: "item-1", req: &model.RestockRequest{Amount: 1}},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.itemRepo.On("LockStockTx", mock.Anything, tx, "item-1").Return(&model.StockLevel{Quantity: 1, ReorderPoint: 0}, nil).Once()
				f.itemRepo.On("IncrementQuantityTx", mock.Anything, tx, "item-1", 1).Return(false, errors.New("db error")).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := appinventory.NewInventoryApp(f.txRepo, f.itemRepo, f.inventoryRepo, f.publisher)

			got, err := app.Restock(context.Background(), tt.args.itemID, tt.args.req)
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantQty, got.Item.QuantityOnHand)
		})
	}
}

func TestInventoryApp_GetOverview(t *testing.T) {
	t.Run("success: normalizes filter and derives status", func(t *testing.T) {
		f := newFields(t)
		f.itemRepo.On("GetStats", mock.Anything).Return(&model.InventoryStats{TotalItems: 2}, nil).Once()
		f.itemRepo.On("ListInventory", mock.Anything, model.InventoryFilter{Status: "low", ItemType: "PART", Search: "belt"}, constant.InventoryOverviewLimit).
			Return([]model.Item{{ID: "a", QuantityOnHand: 1, ReorderPoint: 3}, {ID: "b", QuantityOnHand: 0, ReorderPoint: 0}}, nil).Once()

		app := appinventory.NewInventoryApp(f.txRepo, f.itemRepo, f.inventoryRepo, nil)
		got, err := app.GetOverview(context.Background(), model.InventoryFilter{Status: " LOW ", ItemType: "part", Search: " belt "})

		assert.NoError(t, err)
		assert.Equal(t, int64(2), got.Stats.TotalItems)
		assert.Equal(t, constant.StockStatusLow, got.Items[0].StockStatus)
		assert.Equal(t, 3, got.Items[0].UnitsNeeded)
		assert.Equal(t, constant.StockStatusOut, got.Items[1].StockStatus)
	})

	t.Run("error: unknown status filter", func(t *testing.T) {
		f := newFields(t)
		app := appinventory.NewInventoryApp(f.txRepo, f.itemRepo, f.inventoryRepo, nil)
		_, err := app.GetOverview(context.Background(), model.InventoryFilter{Status: "sideways"})
		assertErrCode(t, err, constant.ErrInvalidInventoryFilter)
	})

	t.Run("error: unknown item type", func(t *testing.T) {
		f := newFields(t)
		app := appinventory.NewInventoryApp(f.txRepo, f.itemRepo, f.inventoryRepo, nil)
		_, err := app.GetOverview(context.Background(), model.InventoryFilter{ItemType: "gadget"})
		assertErrCode(t, err, constant.ErrInvalidInventoryFilter)
	})

	t.Run("error: stats query fails", func(t *testing.T) {
		f := newFields(t)
		f.itemRepo.On("GetStats", mock.Anything).Return(nil, errors.New("db error")).Once()
		app := appinventory.NewInventoryApp(f.txRepo, f.itemRepo, f.inventoryRepo, nil)
		_, err := app.GetOverview(context.Background(), model.InventoryFilter{})
		assertErrCode(t, err, constant.ErrInternal)
	})
}

func TestInventoryApp_GetItemDetail(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		f := newFields(t)
		f.itemRepo.On("GetByID", mock.Anything, "item-1").Return(&model.Item{ID: "item-1", QuantityOnHand: 9, ReorderPoint: 2}, nil).Once()
		f.inventoryRepo.On("ListByItem", mock.Anything, "item-1", constant.InventoryHistoryLimit).
			Return([]model.LedgerEntry{{ID: "e1", ItemID: "item-1"}}, nil).Once()

		app := appinventory.NewInventoryApp(f.txRepo, f.itemRepo, f.inventoryRepo, nil)
		got, err := app.GetItemDetail(context.Background(), "item-1")

		assert.NoError(t, err)
		assert.Equal(t, constant.StockStatusOK, got.Item.StockStatus)
		assert.Len(t, got.History, 1)
	})

	t.Run("error: not found", func(t *testing.T) {
		f := newFields(t)
		f.itemRepo.On("GetByID", mock.Anything, "nope").Return(nil, nil).Once()

		app := appinventory.NewInventoryApp(f.txRepo, f.itemRepo, f.inventoryRepo, nil)
		_, err := app.GetItemDetail(context.Background(), "nope")
		assertErrCode(t, err, constant.ErrNotFound)
	})
}

func TestInventoryApp_PublishLowStockDigest(t *testing.T) {
	low := []model.LowStockItem{{ID: "a", Title: "Belt", Quantity: 1, ReorderPoint: 3}}

	t.Run("success: publishes one digest", func(t *testing.T) {
		f := newFields(t)
		f.itemRepo.On("ListLowStock", mock.Anything).Return(low, nil).Once()
		f.publisher.On("PublishLowStockAlert", mock.Anything, mock.MatchedBy(func(msg rabbitmq.LowStockAlertMessage) bool {
			return msg.Source == "digest" && len(msg.Items) == 1
		})).Return(nil).Once()

		app := appinventory.NewInventoryApp(f.txRepo, f.itemRepo, f.inventoryRepo, f.publisher)
		got, err := app.PublishLowStockDigest(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, &model.LowStockAlertResponse{Published: true, ItemCount: 1}, got)
	})

	t.Run("success: nothing low publishes nothing", func(t *testing.T) {
		f := newFields(t)
		f.itemRepo.On("ListLowStock", mock.Anything).Return([]model.LowStockItem{}, nil).Once()

		app := appinventory.NewInventoryApp(f.txRepo, f.itemRepo, f.inventoryRepo, f.publisher)
		got, err := app.PublishLowStockDigest(context.Background())

		assert.NoError(t, err)
		assert.False(t, got.Published)
	})

	t.Run("success: no publisher configured", func(t *testing.T) {
		f := newFields(t)
		f.itemRepo.On("ListLowStock", mock.Anything).Return(low, nil).Once()

		app := appinventory.NewInventoryApp(f.txRepo, f.itemRepo, f.inventoryRepo, nil)
		got, err := app.PublishLowStockDigest(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, &model.LowStockAlertResponse{Published: false, ItemCount: 1}, got)
	})

	t.Run("error: publish fails", func(t *testing.T) {
		f := newFields(t)
		f.itemRepo.On("ListLowStock", mock.Anything).Return(low, nil).Once()
		f.publisher.On("PublishLowStockAlert", mock.Anything, mock.Anything).Return(rabbitmq.ErrNotConnected).Once()

		app := appinventory.NewInventoryApp(f.txRepo, f.itemRepo, f.inventoryRepo, f.publisher)
		_, err := app.PublishLowStockDigest(context.Background())
		assertErrCode(t, err, constant.ErrInternal)
	})
}
