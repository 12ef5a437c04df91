package model

import (
	"time"

	"github.com/muhammadheryan/storefront/constant"
	"github.com/shopspring/decimal"
)

type Customer struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Zip     string `json:"zip,omitempty"`
	Notes   string `json:"notes,omitempty"`
}

// OrderItemRequest is the client snapshot of one cart line at checkout.
type OrderItemRequest struct {
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	Price       decimal.NullDecimal `json:"price"`
	Quantity    int                 `json:"quantity"`
	PartNumber  *string             `json:"part_number,omitempty"`
	ModelNumber *string             `json:"model_number,omitempty"`
}

// LineTotal is price × quantity, an unpriced line counts as zero.
func (i OrderItemRequest) LineTotal() decimal.Decimal {
	if !i.Price.Valid {
		return decimal.Zero
	}
	return i.Price.Decimal.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

type PlaceOrderRequest struct {
	Customer Customer           `json:"customer"`
	Items    []OrderItemRequest `json:"items"`
	Subtotal decimal.Decimal    `json:"subtotal"`
}

type PlaceOrderResponse struct {
	Success     bool   `json:"success"`
	OrderNumber string `json:"orderNumber"`
	OrderID     string `json:"orderId"`
	EmailSent   bool   `json:"emailSent"`
}

type InsertOrderTxItem struct {
	ID          string
	OrderNumber string
	Status      constant.OrderStatus
	Customer    Customer
	Subtotal    decimal.Decimal
}

type OrderEntity struct {
	ID            string               `db:"id" json:"id"`
	OrderNumber   string               `db:"order_number" json:"order_number"`
	Status        constant.OrderStatus `db:"status" json:"status"`
	CustomerName  string               `db:"customer_name" json:"customer_name"`
	CustomerEmail string               `db:"customer_email" json:"customer_email"`
	CustomerPhone string               `db:"customer_phone" json:"customer_phone"`
	AddressLine1  *string              `db:"address_line1" json:"address_line1"`
	City          *string              `db:"city" json:"city"`
	State         *string              `db:"state" json:"state"`
	Zip           *string              `db:"zip" json:"zip"`
	Notes         *string              `db:"notes" json:"notes"`
	Subtotal      decimal.Decimal      `db:"subtotal" json:"subtotal"`
	EmailSent     bool                 `db:"email_sent" json:"email_sent"`
	ViewedAt      *time.Time           `db:"viewed_at" json:"viewed_at"`
	CreatedAt     time.Time            `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time            `db:"updated_at" json:"updated_at"`
}

type OrderListItem struct {
	OrderEntity
	ItemCount  int64 `db:"item_count" json:"item_count"`
	TotalUnits int64 `db:"total_units" json:"total_units"`
}

type OrderLineItem struct {
	ID          string              `db:"id" json:"id"`
	OrderID     string              `db:"order_id" json:"order_id"`
	ItemID      string              `db:"item_id" json:"item_id"`
	Title       string              `db:"title" json:"title"`
	PartNumber  *string             `db:"part_number" json:"part_number"`
	ModelNumber *string             `db:"model_number" json:"model_number"`
	Price       decimal.NullDecimal `db:"price" json:"price"`
	Quantity    int                 `db:"quantity" json:"quantity"`
	CreatedAt   time.Time           `db:"created_at" json:"created_at"`
	ItemStatus  *string             `db:"item_status" json:"item_status"`
}

type OrderStats struct {
	PendingCount    int64 `db:"pending_count" json:"pending_count"`
	ConfirmedCount  int64 `db:"confirmed_count" json:"confirmed_count"`
	ProcessingCount int64 `db:"processing_count" json:"processing_count"`
	ReadyCount      int64 `db:"ready_count" json:"ready_count"`
	DeliveredCount  int64 `db:"delivered_count" json:"delivered_count"`
	CancelledCount  int64 `db:"cancelled_count" json:"cancelled_count"`
	UnviewedCount   int64 `db:"unviewed_count" json:"unviewed_count"`
	TotalCount      int64 `db:"total_count" json:"total_count"`
}

type OrderListResponse struct {
	Orders        []OrderListItem `json:"orders"`
	Stats         OrderStats      `json:"stats"`
	LowStockCount int64           `json:"lowStockCount"`
}

type OrderDetailResponse struct {
	Order *OrderEntity    `json:"order"`
	Items []OrderLineItem `json:"items"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderNotification is what the mail sink needs to announce a new order.
type OrderNotification struct {
	OrderNumber string
	Customer    Customer
	Items       []OrderItemRequest
	Subtotal    decimal.Decimal
}
