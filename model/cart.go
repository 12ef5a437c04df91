package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type CartItem struct {
	ID          string              `json:"id" validate:"required,uuid_any"`
	Title       string              `json:"title" validate:"required,notblank"`
	Price       decimal.NullDecimal `json:"price"`
	Quantity    int                 `json:"quantity"`
	Image       *string             `json:"image,omitempty"`
	ItemType    string              `json:"item_type" validate:"required,oneof=USED_UNIT PART NEW_MODEL"`
	PartNumber  *string             `json:"part_number,omitempty"`
	ModelNumber *string             `json:"model_number,omitempty"`
}

// Cart is the staging area persisted between page loads. It is never a source of
// truth for inventory or orders.
type Cart struct {
	ID        string          `json:"id"`
	Items     []CartItem      `json:"items"`
	ItemCount int             `json:"item_count"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type AddCartItemRequest struct {
	Item     CartItem `json:"item"`
	Quantity int      `json:"quantity" validate:"omitempty,gt=0"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}
