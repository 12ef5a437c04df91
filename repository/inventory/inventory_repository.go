package inventory

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/storefront/model"
)

type SQL struct {
	conn *sqlx.DB
}

// InventoryRepository owns the append-only inventory_history ledger.
type InventoryRepository interface {
	InsertEntryTx(ctx context.Context, tx *sqlx.Tx, entry *model.LedgerEntry) error
	ListByItem(ctx context.Context, itemID string, limit int) ([]model.LedgerEntry, error)
}

func NewInventoryRepository(conn *sqlx.DB) InventoryRepository {
	return &SQL{conn: conn}
}

const (
	insertEntryQuery = `INSERT INTO inventory_history
(id, item_id, change_type, quantity_before, quantity_after, quantity_delta, notes, created_by, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	listByItemQuery = `SELECT id, item_id, change_type, quantity_before, quantity_after, quantity_delta, notes, created_by, created_at
FROM inventory_history WHERE item_id = ? ORDER BY created_at DESC, id DESC LIMIT ?`
)

func (s *SQL) InsertEntryTx(ctx context.Context, tx *sqlx.Tx, e *model.LedgerEntry) error {
	_, err := tx.ExecContext(ctx, insertEntryQuery,
		e.ID, e.ItemID, e.ChangeType, e.QuantityBefore, e.QuantityAfter, e.QuantityDelta, e.Notes, e.CreatedBy, e.CreatedAt)
	return err
}

func (s *SQL) ListByItem(ctx context.Context, itemID string, limit int) ([]model.LedgerEntry, error) {
	entries := make([]model.LedgerEntry, 0)
	if err := s.conn.SelectContext(ctx, &entries, listByItemQuery, itemID, limit); err != nil {
		return nil, err
	}
	return entries, nil
}
