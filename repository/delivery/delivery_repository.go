package delivery

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/storefront/constant"
	"github.com/muhammadheryan/storefront/model"
)

type SQL struct {
	conn *sqlx.DB
}

type DeliveryRepository interface {
	ListActiveSlots(ctx context.Context) ([]model.DeliverySlotDefinition, error)
	// CountActiveBookings counts non-cancelled bookings per date and slot in [from, to).
	CountActiveBookings(ctx context.Context, from, to time.Time) ([]model.DeliveryBookingCount, error)
}

func NewDeliveryRepository(conn *sqlx.DB) DeliveryRepository {
	return &SQL{conn: conn}
}

const (
	listActiveSlotsQuery = `SELECT id, label, TIME_FORMAT(start_time, '%H:%i') AS start_time,
TIME_FORMAT(end_time, '%H:%i') AS end_time, max_deliveries
FROM delivery_slots WHERE active = TRUE ORDER BY start_time, id`
	countActiveBookingsQuery = `SELECT delivery_date, slot_id, COUNT(*) AS active_count
FROM delivery_bookings
WHERE delivery_date >= ? AND delivery_date < ? AND status <> ?
GROUP BY delivery_date, slot_id`
)

func (s *SQL) ListActiveSlots(ctx context.Context) ([]model.DeliverySlotDefinition, error) {
	slots := make([]model.DeliverySlotDefinition, 0)
	if err := s.conn.SelectContext(ctx, &slots, listActiveSlotsQuery); err != nil {
		return nil, err
	}
	return slots, nil
}

func (s *SQL) CountActiveBookings(ctx context.Context, from, to time.Time) ([]model.DeliveryBookingCount, error) {
	counts := make([]model.DeliveryBookingCount, 0)
	err := s.conn.SelectContext(ctx, &counts, countActiveBookingsQuery,
		from.Format(constant.DeliveryDateLayout), to.Format(constant.DeliveryDateLayout), constant.BookingStatusCancelled)
	if err != nil {
		return nil, err
	}
	return counts, nil
}
