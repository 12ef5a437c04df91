package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/muhammadheryan/storefront/constant"
	"github.com/shopspring/decimal"
)

// Item is a catalog entry as exposed by the item views. Stock status and
// units needed are derived on read and never stored.
type Item struct {
	ID             string              `db:"id" json:"id"`
	ItemType       constant.ItemType   `db:"item_type" json:"item_type"`
	Title          string              `db:"title" json:"title"`
	Description    *string             `db:"description" json:"description"`
	Status         constant.ItemStatus `db:"status" json:"status"`
	Condition      *string             `db:"item_condition" json:"condition"`
	Visibility     constant.Visibility `db:"visibility" json:"visibility"`
	SKU            *string             `db:"sku" json:"sku"`
	Price          decimal.NullDecimal `db:"price" json:"price"`
	QuantityOnHand int                 `db:"quantity_on_hand" json:"quantity_on_hand"`
	ReorderPoint   int                 `db:"reorder_point" json:"reorder_point"`

	// used unit
	CosmeticGrade *string `db:"cosmetic_grade" json:"cosmetic_grade"`
	WarrantyDays  *int    `db:"warranty_days" json:"warranty_days"`

	// part
	PartNumber       *string    `db:"part_number" json:"part_number"`
	PartManufacturer *string    `db:"part_manufacturer" json:"part_manufacturer"`
	CompatibleModels StringList `db:"compatible_models" json:"compatible_models"`

	// new model
	ModelNumber  *string             `db:"model_number" json:"model_number"`
	MSRP         decimal.NullDecimal `db:"msrp" json:"msrp"`
	IsFloorModel *bool               `db:"is_floor_model" json:"is_floor_model"`

	BrandName       *string   `db:"brand_name" json:"brand_name"`
	CategoryName    *string   `db:"category_name" json:"category_name"`
	PrimaryPhotoURL *string   `db:"primary_photo_url" json:"primary_photo_url"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`

	StockStatus constant.StockStatus `db:"-" json:"stock_status"`
	UnitsNeeded int                  `db:"-" json:"units_needed,omitempty"`
}

// StockStatusOf classifies on-hand quantity against the reorder point.
// A quantity equal to the reorder point is LOW.
func StockStatusOf(quantityOnHand, reorderPoint int) constant.StockStatus {
	switch {
	case quantityOnHand <= 0:
		return constant.StockStatusOut
	case quantityOnHand <= reorderPoint:
		return constant.StockStatusLow
	default:
		return constant.StockStatusOK
	}
}

// Derive fills the read-time fields.
func (i *Item) Derive() {
	i.StockStatus = StockStatusOf(i.QuantityOnHand, i.ReorderPoint)
	i.UnitsNeeded = 0
	if i.StockStatus != constant.StockStatusOK {
		i.UnitsNeeded = i.ReorderPoint - i.QuantityOnHand + 1
	}
}

// StringList is a JSON encoded text column.
type StringList []string

func (s *StringList) Scan(src interface{}) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*s = nil
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("StringList: unsupported type %T", src)
	}
	if len(raw) == 0 {
		*s = nil
		return nil
	}
	return json.Unmarshal(raw, (*[]string)(s))
}

func (s StringList) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	b, err := json.Marshal([]string(s))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

type ItemResponse struct {
	Item *Item `json:"item"`
}

type HomeResponse struct {
	Used  []Item `json:"used"`
	Parts []Item `json:"parts"`
	New   []Item `json:"new"`
}

type SearchRequest struct {
	Q      string
	Type   string
	Limit  int
	Offset int
}

type SearchResult struct {
	Item
	Rank float64 `db:"search_rank" json:"rank"`
}

type SearchResponse struct {
	Results []SearchResult `json:"results"`
}
