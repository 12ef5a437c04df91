package order_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/jmoiron/sqlx"
	apporder "github.com/muhammadheryan/storefront/application/order"
	"github.com/muhammadheryan/storefront/cmd/config"
	"github.com/muhammadheryan/storefront/constant"
	itemmocks "github.com/muhammadheryan/storefront/mocks/repository/item"
	ordermocks "github.com/muhammadheryan/storefront/mocks/repository/order"
	redismocks "github.com/muhammadheryan/storefront/mocks/repository/redis"
	txmocks "github.com/muhammadheryan/storefront/mocks/repository/tx"
	mailermocks "github.com/muhammadheryan/storefront/mocks/thirdparty/mailer"
	"github.com/muhammadheryan/storefront/model"
	redisrepo "github.com/muhammadheryan/storefront/repository/redis"
	"github.com/muhammadheryan/storefront/thirdparty/mailer"
	cerr "github.com/muhammadheryan/storefront/utils/errors"
	goredis "github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fields struct {
	config    *config.Config
	txRepo    *txmocks.TxRepository
	orderRepo *ordermocks.OrderRepository
	itemRepo  *itemmocks.ItemRepository
	redisRepo *redismocks.RedisRepository
	notifier  *mailermocks.Notifier
}

func newFields(t *testing.T) fields {
	return fields{
		config: &config.Config{
			Order: config.OrderConfig{
				NotificationTimeout: time.Second,
				IdempotencyTTL:      time.Hour,
			},
		},
		txRepo:    txmocks.NewTxRepository(t),
		orderRepo: ordermocks.NewOrderRepository(t),
		itemRepo:  itemmocks.NewItemRepository(t),
		redisRepo: redismocks.NewRedisRepository(t),
		notifier:  mailermocks.NewNotifier(t),
	}
}

func (f fields) app() apporder.OrderApp {
	return apporder.NewOrderApp(f.config, f.txRepo, f.orderRepo, f.itemRepo, f.redisRepo, f.notifier)
}

func assertErrCode(t *testing.T, err error, code constant.ErrorType) {
	t.Helper()
	var ce cerr.CustomError
	if assert.True(t, errors.As(err, &ce), "expected CustomError, got %v", err) {
		assert.Equal(t, code, ce.Type())
	}
}

func price(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(s))
}

func validRequest() *model.PlaceOrderRequest {
	return &model.PlaceOrderRequest{
		Customer: model.Customer{Name: " Dana Ruiz ", Email: "dana@example.com", Phone: "555-010-2000"},
		Items: []model.OrderItemRequest{
			{ID: "item-1", Title: "Washer belt", Price: price("12.50"), Quantity: 2},
			{ID: "item-2", Title: "Used dryer", Quantity: 1},
		},
		Subtotal: decimal.RequireFromString("25"),
	}
}

// expectPersist wires a successful insert of validRequest under number.
func expectPersist(f fields, number string) {
	tx := &sqlx.Tx{}
	f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
	f.orderRepo.On("NextOrderNumberTx", mock.Anything, tx, mock.AnythingOfType("time.Time")).Return(number, nil).Once()
	f.orderRepo.On("InsertOrderTx", mock.Anything, tx, mock.MatchedBy(func(req *model.InsertOrderTxItem) bool {
		return req.OrderNumber == number &&
			req.Status == constant.OrderStatusPending &&
			req.Customer.Name == "Dana Ruiz" &&
			req.Subtotal.Equal(decimal.RequireFromString("25"))
	})).Return(nil).Once()
	f.orderRepo.On("InsertOrderItemsTx", mock.Anything, tx, mock.AnythingOfType("string"), mock.MatchedBy(func(items []model.OrderItemRequest) bool {
		return len(items) == 2
	})).Return(nil).Once()
	f.txRepo.On("CommitTx", tx).Return(nil).Once()
}

// pendingRecord matches the reservation written before the first insert.
var pendingRecord = mock.MatchedBy(func(v string) bool {
	return strings.HasPrefix(v, `{"hash":"`) && !strings.Contains(v, "response")
})

func TestOrderApp_PlaceOrder(t *testing.T) {
	type args struct {
		req            *model.PlaceOrderRequest
		idempotencyKey string
	}
	tests := []struct {
		name          string
		args          args
		mockCall      func(f fields)
		wantNumber    string
		wantEmailSent bool
		wantErr       bool
		errCode       constant.ErrorType
	}{
		{
			name: "success: order saved and owner notified",
			args: args{req: validRequest()},
			mockCall: func(f fields) {
				expectPersist(f, "ORD-20240115-0001")
				f.notifier.On("SendOrderNotification", mock.Anything, mock.MatchedBy(func(n *model.OrderNotification) bool {
					return n.OrderNumber == "ORD-20240115-0001" && len(n.Items) == 2
				})).Return(nil).Once()
				f.orderRepo.On("SetEmailSent", mock.Anything, mock.AnythingOfType("string")).Return(nil).Once()
			},
			wantNumber:    "ORD-20240115-0001",
			wantEmailSent: true,
		},
		{
			name: "success: notification failure still succeeds",
			args: args{req: validRequest()},
			mockCall: func(f fields) {
				expectPersist(f, "ORD-20240115-0002")
				f.notifier.On("SendOrderNotification", mock.Anything, mock.Anything).Return(errors.New("resend: 500")).Once()
			},
			wantNumber: "ORD-20240115-0002",
		},
		{
			name: "success: mail not configured",
			args: args{req: validRequest()},
			mockCall: func(f fields) {
				expectPersist(f, "ORD-20240115-0003")
				f.notifier.On("SendOrderNotification", mock.Anything, mock.Anything).Return(mailer.ErrNotConfigured).Once()
			},
			wantNumber: "ORD-20240115-0003",
		},
		{
			name: "success: new idempotency key stores the response",
			args: args{req: validRequest(), idempotencyKey: "abc"},
			mockCall: func(f fields) {
				f.redisRepo.On("SetNX", mock.Anything, "idempotency:order:abc", pendingRecord, time.Hour).Return(true, nil).Once()
				expectPersist(f, "ORD-20240115-0004")
				f.notifier.On("SendOrderNotification", mock.Anything, mock.Anything).Return(nil).Once()
				f.orderRepo.On("SetEmailSent", mock.Anything, mock.Anything).Return(nil).Once()
				f.redisRepo.On("SetWithTTL", mock.Anything, "idempotency:order:abc", mock.MatchedBy(func(v string) bool {
					return strings.Contains(v, `"orderNumber":"ORD-20240115-0004"`)
				}), time.Hour).Return(nil).Once()
			},
			wantNumber:    "ORD-20240115-0004",
			wantEmailSent: true,
		},
		{
			name: "success: redis down degrades to a plain insert",
			args: args{req: validRequest(), idempotencyKey: "abc"},
			mockCall: func(f fields) {
				f.redisRepo.On("SetNX", mock.Anything, "idempotency:order:abc", pendingRecord, time.Hour).Return(false, errors.New("dial tcp")).Once()
				expectPersist(f, "ORD-20240115-0005")
				f.notifier.On("SendOrderNotification", mock.Anything, mock.Anything).Return(nil).Once()
				f.orderRepo.On("SetEmailSent", mock.Anything, mock.Anything).Return(nil).Once()
				f.redisRepo.On("SetWithTTL", mock.Anything, "idempotency:order:abc", mock.Anything, time.Hour).Return(errors.New("dial tcp")).Once()
			},
			wantNumber:    "ORD-20240115-0005",
			wantEmailSent: true,
		},
		{
			name: "error: in-flight duplicate",
			args: args{req: validRequest(), idempotencyKey: "abc"},
			mockCall: func(f fields) {
				var held string
				f.redisRepo.On("SetNX", mock.Anything, "idempotency:order:abc", pendingRecord, time.Hour).
					Run(func(a mock.Arguments) { held = a.String(2) }).Return(false, nil).Once()
				f.redisRepo.On("Get", mock.Anything, "idempotency:order:abc").
					Return(func(context.Context, string) (string, error) { return held, nil }).Once()
			},
			wantErr: true,
			errCode: constant.ErrDuplicateRequest,
		},
		{
			name: "error: stored record is unreadable",
			args: args{req: validRequest(), idempotencyKey: "abc"},
			mockCall: func(f fields) {
				f.redisRepo.On("SetNX", mock.Anything, "idempotency:order:abc", pendingRecord, time.Hour).Return(false, nil).Once()
				f.redisRepo.On("Get", mock.Anything, "idempotency:order:abc").Return("pending", nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
		{
			name: "error: failed insert releases the idempotency key",
			args: args{req: validRequest(), idempotencyKey: "abc"},
			mockCall: func(f fields) {
				f.redisRepo.On("SetNX", mock.Anything, "idempotency:order:abc", pendingRecord, time.Hour).Return(true, nil).Once()
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.orderRepo.On("NextOrderNumberTx", mock.Anything, tx, mock.Anything).Return("ORD-20240115-0006", nil).Once()
				f.orderRepo.On("InsertOrderTx", mock.Anything, tx, mock.Anything).Return(errors.New("db error")).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
				f.redisRepo.On("Delete", mock.Anything, "idempotency:order:abc").Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
		{
			name: "error: missing customer fields",
			args: args{req: &model.PlaceOrderRequest{
				Customer: model.Customer{Name: "Dana", Email: "  ", Phone: "555"},
				Items:    []model.OrderItemRequest{{ID: "a", Title: "b", Quantity: 1}},
			}},
			wantErr: true,
			errCode: constant.ErrMissingCustomerFields,
		},
		{
			name: "error: empty order",
			args: args{req: &model.PlaceOrderRequest{
				Customer: model.Customer{Name: "Dana", Email: "d@example.com", Phone: "555"},
			}},
			wantErr: true,
			errCode: constant.ErrEmptyOrder,
		},
		{
			name: "error: zero quantity line",
			args: args{req: &model.PlaceOrderRequest{
				Customer: model.Customer{Name: "Dana", Email: "d@example.com", Phone: "555"},
				Items:    []model.OrderItemRequest{{ID: "a", Title: "b", Quantity: 0}},
			}},
			wantErr: true,
			errCode: constant.ErrInvalidLineItem,
		},
		{
			name: "error: address without city",
			args: args{req: &model.PlaceOrderRequest{
				Customer: model.Customer{Name: "Dana", Email: "d@example.com", Phone: "555", Address: "1 Main St", State: "TX", Zip: "75001"},
				Items:    []model.OrderItemRequest{{ID: "a", Title: "b", Quantity: 1}},
			}},
			wantErr: true,
			errCode: constant.ErrIncompleteAddress,
		},
		{
			name: "error: BeginTx returns error",
			args: args{req: validRequest()},
			mockCall: func(f fields) {
				f.txRepo.On("BeginTx", mock.Anything).Return(nil, errors.New("tx error")).Once()
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

			got, err := f.app().PlaceOrder(context.Background(), tt.args.req, tt.args.idempotencyKey)
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				assert.Nil(t, got)
				return
			}
			assert.NoError(t, err)
			assert.True(t, got.Success)
			assert.Equal(t, tt.wantNumber, got.OrderNumber)
			assert.Equal(t, tt.wantEmailSent, got.EmailSent)
			assert.NotEmpty(t, got.OrderID)
		})
	}
}

func TestOrderApp_PlaceOrderIdempotency(t *testing.T) {
	srv := miniredis.RunT(t)
	redisRepo := redisrepo.NewRepository(goredis.NewClient(&goredis.Options{Addr: srv.Addr()}))
	f := newFields(t)
	app := apporder.NewOrderApp(f.config, f.txRepo, f.orderRepo, f.itemRepo, redisRepo, f.notifier)
	ctx := context.Background()

	expectPersist(f, "ORD-20240115-0007")
	f.notifier.On("SendOrderNotification", mock.Anything, mock.Anything).Return(nil).Once()
	f.orderRepo.On("SetEmailSent", mock.Anything, mock.AnythingOfType("string")).Return(nil).Once()

	first, err := app.PlaceOrder(ctx, validRequest(), "k-1")
	require.NoError(t, err)
	assert.Equal(t, "ORD-20240115-0007", first.OrderNumber)
	assert.Equal(t, time.Hour, srv.TTL("idempotency:order:k-1"))

	replay, err := app.PlaceOrder(ctx, validRequest(), " k-1 ")
	require.NoError(t, err)
	assert.Equal(t, *first, *replay)

	changed := validRequest()
	changed.Items[0].Quantity = 3
	changed.Subtotal = decimal.RequireFromString("37.50")
	got, err := app.PlaceOrder(ctx, changed, "k-1")
	assertErrCode(t, err, constant.ErrIdempotencyMismatch)
	assert.Nil(t, got)

	// a failed insert frees the key for a retry
	f.txRepo.On("BeginTx", mock.Anything).Return(nil, errors.New("tx error")).Once()
	_, err = app.PlaceOrder(ctx, changed, "k-2")
	assertErrCode(t, err, constant.ErrInternal)
	assert.False(t, srv.Exists("idempotency:order:k-2"))
}

func TestOrderApp_ListOrders(t *testing.T) {
	tests := []struct {
		name      string
		status    string
		limit     int
		mockCall  func(f fields)
		wantCount int
		wantErr   bool
		errCode   constant.ErrorType
	}{
		{
			name:   "success: defaults to all and the default limit",
			status: "",
			limit:  0,
			mockCall: func(f fields) {
				f.orderRepo.On("List", mock.Anything, constant.OrderStatus(""), constant.DefaultOrderListLimit).
					Return([]model.OrderListItem{{OrderEntity: model.OrderEntity{ID: "o-1"}}}, nil).Once()
				f.orderRepo.On("GetStats", mock.Anything).Return(&model.OrderStats{TotalCount: 1}, nil).Once()
				f.itemRepo.On("CountLowStock", mock.Anything).Return(int64(3), nil).Once()
			},
			wantCount: 1,
		},
		{
			name:   "success: status filter and clamped limit",
			status: "PENDING",
			limit:  1000,
			mockCall: func(f fields) {
				f.orderRepo.On("List", mock.Anything, constant.OrderStatusPending, constant.MaxOrderListLimit).
					Return([]model.OrderListItem{}, nil).Once()
				f.orderRepo.On("GetStats", mock.Anything).Return(&model.OrderStats{}, nil).Once()
				f.itemRepo.On("CountLowStock", mock.Anything).Return(int64(0), nil).Once()
			},
		},
		{
			name:    "error: unknown status",
			status:  "SHIPPED",
			wantErr: true,
			errCode: constant.ErrInvalidOrderStatus,
		},
		{
			name:   "error: list fails",
			status: "all",
			mockCall: func(f fields) {
				f.orderRepo.On("List", mock.Anything, constant.OrderStatus(""), constant.DefaultOrderListLimit).
					Return(nil, errors.New("db error")).Once()
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

			got, err := f.app().ListOrders(context.Background(), tt.status, tt.limit)
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			assert.NoError(t, err)
			assert.Len(t, got.Orders, tt.wantCount)
		})
	}
}

func TestOrderApp_GetOrderDetail(t *testing.T) {
	viewed := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

	t.Run("success: first read marks the order viewed", func(t *testing.T) {
		f := newFields(t)
		f.orderRepo.On("GetByID", mock.Anything, "o-1").Return(&model.OrderEntity{ID: "o-1"}, nil).Once()
		f.orderRepo.On("MarkViewed", mock.Anything, "o-1", mock.AnythingOfType("time.Time")).Return(nil).Once()
		f.orderRepo.On("GetByID", mock.Anything, "o-1").Return(&model.OrderEntity{ID: "o-1", ViewedAt: &viewed}, nil).Once()
		f.orderRepo.On("ListLineItems", mock.Anything, "o-1").Return([]model.OrderLineItem{{ID: "l-1"}}, nil).Once()

		got, err := f.app().GetOrderDetail(context.Background(), "o-1")

		assert.NoError(t, err)
		assert.Equal(t, &viewed, got.Order.ViewedAt)
		assert.Len(t, got.Items, 1)
	})

	t.Run("success: already viewed is not marked again", func(t *testing.T) {
		f := newFields(t)
		f.orderRepo.On("GetByID", mock.Anything, "o-1").Return(&model.OrderEntity{ID: "o-1", ViewedAt: &viewed}, nil).Once()
		f.orderRepo.On("ListLineItems", mock.Anything, "o-1").Return([]model.OrderLineItem{}, nil).Once()

		got, err := f.app().GetOrderDetail(context.Background(), "o-1")

		assert.NoError(t, err)
		assert.Equal(t, "o-1", got.Order.ID)
	})

	t.Run("error: not found", func(t *testing.T) {
		f := newFields(t)
		f.orderRepo.On("GetByID", mock.Anything, "missing").Return(nil, nil).Once()

		_, err := f.app().GetOrderDetail(context.Background(), "missing")
		assertErrCode(t, err, constant.ErrNotFound)
	})
}

func TestOrderApp_UpdateStatus(t *testing.T) {
	tests := []struct {
		name     string
		orderID  string
		status   string
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:    "success: any known status is accepted",
			orderID: "o-1",
			status:  "DELIVERED",
			mockCall: func(f fields) {
				f.orderRepo.On("GetByID", mock.Anything, "o-1").Return(&model.OrderEntity{ID: "o-1", Status: constant.OrderStatusPending}, nil).Once()
				f.orderRepo.On("UpdateStatus", mock.Anything, "o-1", constant.OrderStatusDelivered).Return(nil).Once()
			},
		},
		{
			name:    "error: invalid status",
			orderID: "o-1",
			status:  "LOST",
			wantErr: true,
			errCode: constant.ErrInvalidOrderStatus,
		},
		{
			name:    "error: order not found",
			orderID: "missing",
			status:  "CONFIRMED",
			mockCall: func(f fields) {
				f.orderRepo.On("GetByID", mock.Anything, "missing").Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name:    "error: update fails",
			orderID: "o-1",
			status:  "CONFIRMED",
			mockCall: func(f fields) {
				f.orderRepo.On("GetByID", mock.Anything, "o-1").Return(&model.OrderEntity{ID: "o-1"}, nil).Once()
				f.orderRepo.On("UpdateStatus", mock.Anything, "o-1", constant.OrderStatusConfirmed).Return(errors.New("db error")).Once()
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

			got, err := f.app().UpdateStatus(context.Background(), tt.orderID, &model.UpdateOrderStatusRequest{Status: tt.status})
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			assert.NoError(t, err)
			assert.True(t, got.Success)
		})
	}
}
