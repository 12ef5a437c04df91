package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/storefront/constant"
	"github.com/muhammadheryan/storefront/model"
	inventoryrepo "github.com/muhammadheryan/storefront/repository/inventory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQL_InsertEntryTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	conn := sqlx.NewDb(db, "sqlmock")
	defer conn.Close()
	repo := inventoryrepo.NewInventoryRepository(conn)

	notes := "cycle count"
	at := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO inventory_history`).
		WithArgs("e-1", "item-1", constant.ChangeTypeAdjustment, 10, 7, -3, notes, nil, at).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := conn.Beginx()
	require.NoError(t, err)
	err = repo.InsertEntryTx(context.Background(), tx, &model.LedgerEntry{
		ID:             "e-1",
		ItemID:         "item-1",
		ChangeType:     constant.ChangeTypeAdjustment,
		QuantityBefore: 10,
		QuantityAfter:  7,
		QuantityDelta:  -3,
		Notes:          &notes,
		CreatedAt:      at,
	})
	require.NoError(t, err)
	require.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQL_ListByItem(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	conn := sqlx.NewDb(db, "sqlmock")
	defer conn.Close()
	repo := inventoryrepo.NewInventoryRepository(conn)

	mock.ExpectQuery(`FROM inventory_history WHERE item_id = \? ORDER BY created_at DESC, id DESC LIMIT \?`).
		WithArgs("item-1", 20).
		WillReturnRows(sqlmock.NewRows([]string{"id", "item_id", "change_type", "quantity_before", "quantity_after", "quantity_delta", "notes", "created_by", "created_at"}).
			AddRow("e-2", "item-1", "RESTOCK", 7, 17, 10, "Restocked 10 units", int64(1), time.Now()).
			AddRow("e-1", "item-1", "ADJUSTMENT", 10, 7, -3, nil, nil, time.Now()))

	got, err := repo.ListByItem(context.Background(), "item-1", 20)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, constant.ChangeTypeRestock, got[0].ChangeType)
	assert.Equal(t, uint64(1), *got[0].CreatedBy)
	assert.Nil(t, got[1].Notes)
	assert.NoError(t, mock.ExpectationsWereMet())
}
