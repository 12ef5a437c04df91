package order

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/storefront/constant"
	"github.com/muhammadheryan/storefront/model"
)

type SQL struct {
	conn *sqlx.DB
}

type OrderRepository interface {
	NextOrderNumberTx(ctx context.Context, tx *sqlx.Tx, day time.Time) (string, error)
	InsertOrderTx(ctx context.Context, tx *sqlx.Tx, req *model.InsertOrderTxItem) error
	InsertOrderItemsTx(ctx context.Context, tx *sqlx.Tx, orderID string, items []model.OrderItemRequest) error
	SetEmailSent(ctx context.Context, orderID string) error
	List(ctx context.Context, status constant.OrderStatus, limit int) ([]model.OrderListItem, error)
	GetStats(ctx context.Context) (*model.OrderStats, error)
	GetByID(ctx context.Context, orderID string) (*model.OrderEntity, error)
	MarkViewed(ctx context.Context, orderID string, at time.Time) error
	ListLineItems(ctx context.Context, orderID string) ([]model.OrderLineItem, error)
	UpdateStatus(ctx context.Context, orderID string, status constant.OrderStatus) error
}

func NewOrderRepository(conn *sqlx.DB) OrderRepository {
	return &SQL{conn: conn}
}

const (
	// LAST_INSERT_ID(expr) makes the per-day counter readable from the same statement.
	nextOrderSeqQuery = `INSERT INTO order_number_sequence (seq_date, last_value) VALUES (?, LAST_INSERT_ID(1))
ON DUPLICATE KEY UPDATE last_value = LAST_INSERT_ID(last_value + 1)`

	insertOrderQuery = `INSERT INTO orders
(id, order_number, status, customer_name, customer_email, customer_phone, address_line1, city, state, zip, notes, subtotal, email_sent, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, FALSE, ?, ?)`
	insertOrderItemQuery = `INSERT INTO order_items
(id, order_id, item_id, title, part_number, model_number, price, quantity, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	orderColumns = `o.id, o.order_number, o.status, o.customer_name, o.customer_email, o.customer_phone,
o.address_line1, o.city, o.state, o.zip, o.notes, o.subtotal, o.email_sent, o.viewed_at, o.created_at, o.updated_at`

	listOrdersBase = `SELECT ` + orderColumns + `,
COUNT(oi.id) AS item_count, COALESCE(SUM(oi.quantity), 0) AS total_units
FROM orders o LEFT JOIN order_items oi ON oi.order_id = o.id WHERE true`

	orderStatsQuery = `SELECT
COALESCE(SUM(status = 'PENDING'), 0) AS pending_count,
COALESCE(SUM(status = 'CONFIRMED'), 0) AS confirmed_count,
COALESCE(SUM(status = 'PROCESSING'), 0) AS processing_count,
COALESCE(SUM(status = 'READY'), 0) AS ready_count,
COALESCE(SUM(status = 'DELIVERED'), 0) AS delivered_count,
COALESCE(SUM(status = 'CANCELLED'), 0) AS cancelled_count,
COALESCE(SUM(viewed_at IS NULL), 0) AS unviewed_count,
COUNT(*) AS total_count
FROM orders`

	getOrderQuery = `SELECT ` + orderColumns + ` FROM orders o WHERE o.id = ?`

	// first read wins; later reads keep the original timestamp
	markViewedQuery    = `UPDATE orders SET viewed_at = COALESCE(viewed_at, ?) WHERE id = ?`
	updateStatusQuery  = `UPDATE orders SET status = ?, updated_at = ? WHERE id = ?`
	setEmailSentQuery  = `UPDATE orders SET email_sent = TRUE, updated_at = ? WHERE id = ?`
	listLineItemsQuery = `SELECT oi.id, oi.order_id, oi.item_id, oi.title, oi.part_number, oi.model_number, oi.price,
oi.quantity, oi.created_at, i.status AS item_status
FROM order_items oi LEFT JOIN items i ON i.id = oi.item_id
WHERE oi.order_id = ? ORDER BY oi.created_at, oi.id`
)

// NextOrderNumberTx allocates ORD-YYYYMMDD-NNNN from the day's counter row.
func (r *SQL) NextOrderNumberTx(ctx context.Context, tx *sqlx.Tx, day time.Time) (string, error) {
	day = day.UTC()
	res, err := tx.ExecContext(ctx, nextOrderSeqQuery, day.Format(constant.DeliveryDateLayout))
	if err != nil {
		return "", err
	}
	seq, err := res.LastInsertId()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-%s-%04d", constant.OrderNumberPrefix, day.Format("20060102"), seq), nil
}

func (r *SQL) InsertOrderTx(ctx context.Context, tx *sqlx.Tx, req *model.InsertOrderTxItem) error {
	now := time.Now().UTC()
	c := req.Customer
	_, err := tx.ExecContext(ctx, insertOrderQuery,
		req.ID, req.OrderNumber, req.Status, c.Name, c.Email, c.Phone,
		nullString(c.Address), nullString(c.City), nullString(c.State), nullString(c.Zip), nullString(c.Notes),
		req.Subtotal, now, now)
	return err
}

func (r *SQL) InsertOrderItemsTx(ctx context.Context, tx *sqlx.Tx, orderID string, items []model.OrderItemRequest) error {
	now := time.Now().UTC()
	for _, it := range items {
		if _, err := tx.ExecContext(ctx, insertOrderItemQuery,
			uuid.NewString(), orderID, it.ID, it.Title, it.PartNumber, it.ModelNumber, it.Price, it.Quantity, now); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQL) SetEmailSent(ctx context.Context, orderID string) error {
	_, err := r.conn.ExecContext(ctx, setEmailSentQuery, time.Now().UTC(), orderID)
	return err
}

func (r *SQL) List(ctx context.Context, status constant.OrderStatus, limit int) ([]model.OrderListItem, error) {
	query := listOrdersBase
	args := make([]any, 0, 2)
	if status != "" {
		query += " AND o.status = ?"
		args = append(args, status)
	}
	query += " GROUP BY o.id ORDER BY o.created_at DESC LIMIT ?"
	args = append(args, limit)

	orders := make([]model.OrderListItem, 0)
	if err := r.conn.SelectContext(ctx, &orders, query, args...); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *SQL) GetStats(ctx context.Context) (*model.OrderStats, error) {
	var stats model.OrderStats
	if err := r.conn.QueryRowxContext(ctx, orderStatsQuery).StructScan(&stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *SQL) GetByID(ctx context.Context, orderID string) (*model.OrderEntity, error) {
	var o model.OrderEntity
	if err := r.conn.QueryRowxContext(ctx, getOrderQuery, orderID).StructScan(&o); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}

func (r *SQL) MarkViewed(ctx context.Context, orderID string, at time.Time) error {
	_, err := r.conn.ExecContext(ctx, markViewedQuery, at.UTC(), orderID)
	return err
}

func (r *SQL) ListLineItems(ctx context.Context, orderID string) ([]model.OrderLineItem, error) {
	items := make([]model.OrderLineItem, 0)
	if err := r.conn.SelectContext(ctx, &items, listLineItemsQuery, orderID); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *SQL) UpdateStatus(ctx context.Context, orderID string, status constant.OrderStatus) error {
	_, err := r.conn.ExecContext(ctx, updateStatusQuery, status, time.Now().UTC(), orderID)
	return err
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
