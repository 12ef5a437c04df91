package model

import (
	"time"

	"github.com/muhammadheryan/storefront/constant"
	"github.com/shopspring/decimal"
)

type InventoryFilter struct {
	Status   string
	ItemType string
	Search   string
}

type InventoryStats struct {
	TotalItems      int64           `db:"total_items" json:"total_items"`
	TotalUnits      int64           `db:"total_units" json:"total_units"`
	LowStockCount   int64           `db:"low_stock_count" json:"low_stock_count"`
	OutOfStockCount int64           `db:"out_of_stock_count" json:"out_of_stock_count"`
	TotalValue      decimal.Decimal `db:"total_value" json:"total_value"`
}

type InventoryOverviewResponse struct {
	Stats InventoryStats `json:"stats"`
	Items []Item         `json:"items"`
}

// LedgerEntry is an immutable inventory_history row.
type LedgerEntry struct {
	ID             string              `db:"id" json:"id"`
	ItemID         string              `db:"item_id" json:"item_id"`
	ChangeType     constant.ChangeType `db:"change_type" json:"change_type"`
	QuantityBefore int                 `db:"quantity_before" json:"quantity_before"`
	QuantityAfter  int                 `db:"quantity_after" json:"quantity_after"`
	QuantityDelta  int                 `db:"quantity_delta" json:"quantity_delta"`
	Notes          *string             `db:"notes" json:"notes"`
	CreatedBy      *uint64             `db:"created_by" json:"created_by"`
	CreatedAt      time.Time           `db:"created_at" json:"created_at"`
}

type InventoryItemDetailResponse struct {
	Item    *Item         `json:"item"`
	History []LedgerEntry `json:"history"`
}

// InventoryUpdateRequest is the admin PATCH body. Nil fields are left untouched.
type InventoryUpdateRequest struct {
	Quantity     *int   `json:"quantity"`
	ReorderPoint *int   `json:"reorder_point"`
	ChangeType   string `json:"change_type"`
	Notes        string `json:"notes"`
}

type RestockRequest struct {
	Amount int    `json:"amount"`
	Notes  string `json:"notes"`
}

type InventoryUpdateResponse struct {
	OK   bool  `json:"ok"`
	Item *Item `json:"item"`
}

// StockChange describes one ledger append together with the quantity it produces.
type StockChange struct {
	ItemID     string
	ChangeType constant.ChangeType
	Notes      string
	CreatedBy  *uint64
}

// StockLevel is the locked quantity row an inventory write starts from.
type StockLevel struct {
	Quantity     int `db:"quantity_on_hand"`
	ReorderPoint int `db:"reorder_point"`
}

type LowStockItem struct {
	ID           string `db:"id" json:"id"`
	Title        string `db:"title" json:"title"`
	Quantity     int    `db:"quantity_on_hand" json:"quantity"`
	ReorderPoint int    `db:"reorder_point" json:"reorder_point"`
}

type LowStockAlertResponse struct {
	Published bool `json:"published"`
	ItemCount int  `json:"item_count"`
}
