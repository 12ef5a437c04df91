package item

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/storefront/constant"
	"github.com/muhammadheryan/storefront/model"
)

type SQL struct {
	conn *sqlx.DB
}

// ItemRepository is the catalog store. Reads go through v_item_cards,
// quantity writes go to the items table inside the caller's transaction.
type ItemRepository interface {
	GetByID(ctx context.Context, id string) (*model.Item, error)
	GetByIDTx(ctx context.Context, tx *sqlx.Tx, id string) (*model.Item, error)
	LockStockTx(ctx context.Context, tx *sqlx.Tx, id string) (*model.StockLevel, error)
	SetQuantityTx(ctx context.Context, tx *sqlx.Tx, id string, quantity int) error
	IncrementQuantityTx(ctx context.Context, tx *sqlx.Tx, id string, delta int) (bool, error)
	SetReorderPointTx(ctx context.Context, tx *sqlx.Tx, id string, point int) error
	GetStats(ctx context.Context) (*model.InventoryStats, error)
	ListInventory(ctx context.Context, filter model.InventoryFilter, limit int) ([]model.Item, error)
	CountLowStock(ctx context.Context) (int64, error)
	ListLowStock(ctx context.Context) ([]model.LowStockItem, error)
	ListHomeSection(ctx context.Context, itemType constant.ItemType, statuses []constant.ItemStatus, inStockOnly bool, limit int) ([]model.Item, error)
	Search(ctx context.Context, req model.SearchRequest) ([]model.SearchResult, error)
}

func NewItemRepository(conn *sqlx.DB) ItemRepository {
	return &SQL{conn: conn}
}

const (
	itemColumns = `id, item_type, title, description, status, item_condition, visibility, sku, price,
quantity_on_hand, reorder_point, cosmetic_grade, warranty_days, part_number, part_manufacturer,
compatible_models, model_number, msrp, is_floor_model, brand_name, category_name, primary_photo_url,
created_at, updated_at`

	getItemQuery     = `SELECT ` + itemColumns + ` FROM v_item_cards WHERE id = ?`
	lockStockQuery   = `SELECT quantity_on_hand, reorder_point FROM items WHERE id = ? FOR UPDATE`
	setQuantityQuery = `UPDATE items SET quantity_on_hand = ?, updated_at = ? WHERE id = ?`

	// the guard keeps quantity_on_hand non-negative without a read-modify-write
	incrementQuantityQuery = `UPDATE items SET quantity_on_hand = quantity_on_hand + ?, updated_at = ? WHERE id = ? AND quantity_on_hand + ? >= 0`
	setReorderPointQuery   = `UPDATE items SET reorder_point = ?, updated_at = ? WHERE id = ?`

	inventoryStatsQuery = `SELECT
COUNT(*) AS total_items,
COALESCE(SUM(quantity_on_hand), 0) AS total_units,
COALESCE(SUM(CASE WHEN quantity_on_hand > 0 AND quantity_on_hand <= reorder_point THEN 1 ELSE 0 END), 0) AS low_stock_count,
COALESCE(SUM(CASE WHEN quantity_on_hand = 0 THEN 1 ELSE 0 END), 0) AS out_of_stock_count,
COALESCE(SUM(price * quantity_on_hand), 0) AS total_value
FROM items`

	listInventoryBase = `SELECT ` + itemColumns + ` FROM v_item_cards WHERE true`

	countLowStockQuery = `SELECT COUNT(*) FROM items WHERE quantity_on_hand <= reorder_point AND status = ?`
	listLowStockQuery  = `SELECT id, title, quantity_on_hand, reorder_point FROM items
WHERE quantity_on_hand <= reorder_point AND status <> ? ORDER BY quantity_on_hand - reorder_point, title`

	homeSectionBase = `SELECT ` + itemColumns + ` FROM v_item_cards WHERE item_type = ? AND visibility = ?`

	searchQueryBase = `SELECT ` + itemColumns + `,
(CASE WHEN LOWER(title) LIKE ? THEN 3 WHEN LOWER(title) LIKE ? THEN 2 ELSE 1 END) AS search_rank
FROM v_item_cards
WHERE visibility = ? AND status <> ?
AND (LOWER(title) LIKE ? OR LOWER(COALESCE(description, '')) LIKE ? OR LOWER(COALESCE(part_number, '')) LIKE ?
  OR LOWER(COALESCE(model_number, '')) LIKE ? OR LOWER(COALESCE(brand_name, '')) LIKE ?)`
)

func (s *SQL) GetByID(ctx context.Context, id string) (*model.Item, error) {
	var it model.Item
	if err := s.conn.QueryRowxContext(ctx, getItemQuery, id).StructScan(&it); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &it, nil
}

func (s *SQL) GetByIDTx(ctx context.Context, tx *sqlx.Tx, id string) (*model.Item, error) {
	var it model.Item
	if err := tx.QueryRowxContext(ctx, getItemQuery, id).StructScan(&it); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &it, nil
}

// LockStockTx reads the stock level and holds the row lock until the
// transaction ends. It returns nil, nil for an unknown item.
func (s *SQL) LockStockTx(ctx context.Context, tx *sqlx.Tx, id string) (*model.StockLevel, error) {
	var level model.StockLevel
	if err := tx.QueryRowxContext(ctx, lockStockQuery, id).StructScan(&level); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &level, nil
}

func (s *SQL) SetQuantityTx(ctx context.Context, tx *sqlx.Tx, id string, quantity int) error {
	_, err := tx.ExecContext(ctx, setQuantityQuery, quantity, time.Now().UTC(), id)
	return err
}

// IncrementQuantityTx adds delta in a single statement. It reports false when the
// item is missing or the result would go below zero.
func (s *SQL) IncrementQuantityTx(ctx context.Context, tx *sqlx.Tx, id string, delta int) (bool, error) {
	res, err := tx.ExecContext(ctx, incrementQuantityQuery, delta, time.Now().UTC(), id, delta)
	if err != nil {
		return false, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

func (s *SQL) SetReorderPointTx(ctx context.Context, tx *sqlx.Tx, id string, point int) error {
	_, err := tx.ExecContext(ctx, setReorderPointQuery, point, time.Now().UTC(), id)
	return err
}

func (s *SQL) GetStats(ctx context.Context) (*model.InventoryStats, error) {
	var stats model.InventoryStats
	if err := s.conn.QueryRowxContext(ctx, inventoryStatsQuery).StructScan(&stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (s *SQL) ListInventory(ctx context.Context, filter model.InventoryFilter, limit int) ([]model.Item, error) {
	query := listInventoryBase
	args := make([]any, 0, 4)

	if filter.ItemType != "" && filter.ItemType != constant.InventoryTypeAll {
		query += " AND item_type = ?"
		args = append(args, filter.ItemType)
	}
	switch filter.Status {
	case constant.InventoryFilterLow:
		query += " AND quantity_on_hand <= reorder_point"
	case constant.InventoryFilterOut:
		query += " AND quantity_on_hand = 0"
	case constant.InventoryFilterOK:
		query += " AND quantity_on_hand > reorder_point"
	}
	if filter.Search != "" {
		pattern := containsPattern(filter.Search)
		query += " AND (LOWER(title) LIKE ? OR LOWER(COALESCE(part_number, '')) LIKE ?)"
		args = append(args, pattern, pattern)
	}
	query += " ORDER BY quantity_on_hand - reorder_point, title LIMIT ?"
	args = append(args, limit)

	items := make([]model.Item, 0)
	if err := s.conn.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *SQL) CountLowStock(ctx context.Context) (int64, error) {
	var total int64
	if err := s.conn.GetContext(ctx, &total, countLowStockQuery, constant.ItemStatusAvailable); err != nil {
		return 0, err
	}
	return total, nil
}

func (s *SQL) ListLowStock(ctx context.Context) ([]model.LowStockItem, error) {
	items := make([]model.LowStockItem, 0)
	if err := s.conn.SelectContext(ctx, &items, listLowStockQuery, constant.ItemStatusSold); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *SQL) ListHomeSection(ctx context.Context, itemType constant.ItemType, statuses []constant.ItemStatus, inStockOnly bool, limit int) ([]model.Item, error) {
	query := homeSectionBase
	args := []any{itemType, constant.VisibilityPublic}

	if len(statuses) > 0 {
		in, inArgs, err := sqlx.In(" AND status IN (?)", statuses)
		if err != nil {
			return nil, err
		}
		query += in
		args = append(args, inArgs...)
	}
	if inStockOnly {
		query += " AND quantity_on_hand > 0"
	}
	query += " ORDER BY created_at DESC LIMIT ?"
	args = append(args, limit)

	items := make([]model.Item, 0)
	if err := s.conn.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *SQL) Search(ctx context.Context, req model.SearchRequest) ([]model.SearchResult, error) {
	term := strings.ToLower(req.Q)
	prefix := escapeLike(term) + "%"
	pattern := containsPattern(term)

	query := searchQueryBase
	args := []any{
		prefix, pattern,
		constant.VisibilityPublic, constant.ItemStatusDraft,
		pattern, pattern, pattern, pattern, pattern,
	}
	if req.Type != "" && req.Type != constant.SearchTypeAll {
		query += " AND item_type = ?"
		args = append(args, req.Type)
	}
	query += " ORDER BY search_rank DESC, created_at DESC LIMIT ? OFFSET ?"
	args = append(args, req.Limit, req.Offset)

	results := make([]model.SearchResult, 0)
	if err := s.conn.SelectContext(ctx, &results, query, args...); err != nil {
		return nil, err
	}
	return results, nil
}

func containsPattern(term string) string {
	return "%" + escapeLike(strings.ToLower(term)) + "%"
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
