package constant

type ChangeType string

const (
	ChangeTypeAdjustment ChangeType = "ADJUSTMENT"
	ChangeTypeRestock    ChangeType = "RESTOCK"
	ChangeTypeSale       ChangeType = "SALE"
	ChangeTypeReturn     ChangeType = "RETURN"
	ChangeTypeDamage     ChangeType = "DAMAGE"
	ChangeTypeCorrection ChangeType = "CORRECTION"
)

var changeTypes = map[ChangeType]struct{}{
	ChangeTypeAdjustment: {},
	ChangeTypeRestock:    {},
	ChangeTypeSale:       {},
	ChangeTypeReturn:     {},
	ChangeTypeDamage:     {},
	ChangeTypeCorrection: {},
}

func (c ChangeType) Valid() bool {
	_, ok := changeTypes[c]
	return ok
}

const (
	InventoryFilterAll = "all"
	InventoryFilterLow = "low"
	InventoryFilterOut = "out"
	InventoryFilterOK  = "ok"

	InventoryTypeAll = "all"

	InventoryOverviewLimit = 100
	InventoryHistoryLimit  = 20

	DefaultRestockAmount = 10
)
