package delivery_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	deliveryrepo "github.com/muhammadheryan/storefront/repository/delivery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQL_DeliveryRepository(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	conn := sqlx.NewDb(db, "sqlmock")
	defer conn.Close()
	repo := deliveryrepo.NewDeliveryRepository(conn)

	mock.ExpectQuery(`FROM delivery_slots WHERE active = TRUE ORDER BY start_time, id`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "label", "start_time", "end_time", "max_deliveries"}).
			AddRow("am", "Morning", "08:00", "12:00", 3))

	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`FROM delivery_bookings WHERE delivery_date >= \? AND delivery_date < \? AND status <> \? GROUP BY delivery_date, slot_id`).
		WithArgs("2024-03-01", "2024-03-15", "CANCELLED").
		WillReturnRows(sqlmock.NewRows([]string{"delivery_date", "slot_id", "active_count"}).
			AddRow(from, "am", 2))

	slots, err := repo.ListActiveSlots(context.Background())
	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, "08:00", slots[0].StartTime)

	counts, err := repo.CountActiveBookings(context.Background(), from, from.AddDate(0, 0, 14))
	require.NoError(t, err)
	require.Len(t, counts, 1)
	assert.Equal(t, 2, counts[0].ActiveCount)
	assert.True(t, from.Equal(counts[0].Date))

	assert.NoError(t, mock.ExpectationsWereMet())
}
