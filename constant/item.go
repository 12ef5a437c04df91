package constant

type ItemType string

const (
	ItemTypeUsedUnit ItemType = "USED_UNIT"
	ItemTypePart     ItemType = "PART"
	ItemTypeNewModel ItemType = "NEW_MODEL"
)

func (t ItemType) Valid() bool {
	return t == ItemTypeUsedUnit || t == ItemTypePart || t == ItemTypeNewModel
}

type ItemStatus string

const (
	ItemStatusDraft     ItemStatus = "DRAFT"
	ItemStatusAvailable ItemStatus = "AVAILABLE"
	ItemStatusReserved  ItemStatus = "RESERVED"
	ItemStatusSold      ItemStatus = "SOLD"
	ItemStatusInRepair  ItemStatus = "IN_REPAIR"
)

type Visibility string

const (
	VisibilityPublic   Visibility = "PUBLIC"
	VisibilityPrivate  Visibility = "PRIVATE"
	VisibilityUnlisted Visibility = "UNLISTED"
)

type StockStatus string

const (
	StockStatusOK  StockStatus = "OK"
	StockStatusLow StockStatus = "LOW"
	StockStatusOut StockStatus = "OUT"
)

const (
	HomeSectionSize = 12

	SearchTypeAll      = "ALL"
	DefaultSearchLimit = 30
	MaxSearchLimit     = 50
)
