package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/scentshop/internal/domain/errors"
	"github.com/polkiloo/scentshop/internal/domain/model"
	"github.com/polkiloo/scentshop/internal/domain/repository"
)

const orderColumns = `id, user_id, total_amount, status, ship_full_name, ship_phone, ship_street, ship_city, ship_state, ship_postal_code, ship_country, is_paid, paid_at, razorpay_order_id, razorpay_payment_id, tracking_number, courier, created_at, updated_at`

func scanOrder(row pgx.Row) (*model.Order, error) {
	var (
		o         model.Order
		rzpOrder  *string
		rzpPaymnt *string
	)
	err := row.Scan(&o.ID, &o.UserID, &o.TotalAmount, &o.Status,
		&o.ShippingAddress.FullName, &o.ShippingAddress.Phone, &o.ShippingAddress.Street,
		&o.ShippingAddress.City, &o.ShippingAddress.State, &o.ShippingAddress.PostalCode,
		&o.ShippingAddress.Country, &o.IsPaid, &o.PaidAt, &rzpOrder, &rzpPaymnt,
		&o.TrackingNumber, &o.Courier, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	if rzpOrder != nil {
		o.RazorpayOrderID = *rzpOrder
	}
	if rzpPaymnt != nil {
		o.RazorpayPaymentID = *rzpPaymnt
	}
	return &o, nil
}

func (r *orderRepository) Create(ctx context.Context, userID int64, items []model.OrderItem, total decimal.Decimal, addr model.Address) (*model.Order, error) {
	if len(items) == 0 {
		return nil, domainErrors.ErrValidation
	}
	for _, it := range items {
		if it.Quantity <= 0 {
			return nil, domainErrors.ErrValidation
		}
	}

	order := &model.Order{
		UserID:          userID,
		Items:           items,
		TotalAmount:     total,
		Status:          model.OrderStatusPending,
		ShippingAddress: addr,
	}

	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const insertOrder = `INSERT INTO orders (user_id, total_amount, status, ship_full_name, ship_phone, ship_street, ship_city, ship_state, ship_postal_code, ship_country)
                             VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
                             RETURNING id, created_at, updated_at`
		if err := tx.QueryRow(ctx, insertOrder, userID, total, model.OrderStatusPending,
			addr.FullName, addr.Phone, addr.Street, addr.City, addr.State, addr.PostalCode, addr.Country).
			Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt); err != nil {
			return err
		}

		const insertItem = `INSERT INTO order_items (order_id, product_id, product_name, quantity, price) VALUES ($1, $2, $3, $4, $5)`
		for _, it := range items {
			if _, err := tx.Exec(ctx, insertItem, order.ID, it.ProductID, it.ProductName, it.Quantity, it.Price); err != nil {
				return err
			}
		}

		const insertHistory = `INSERT INTO order_status_history (order_id, status) VALUES ($1, $2) RETURNING changed_at`
		var change model.StatusChange
		change.Status = model.OrderStatusPending
		if err := tx.QueryRow(ctx, insertHistory, order.ID, model.OrderStatusPending).Scan(&change.ChangedAt); err != nil {
			return err
		}
		order.StatusHistory = []model.StatusChange{change}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders WHERE id=$1`
	order, err := scanOrder(r.storage.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, err
	}
	return r.hydrate(ctx, order)
}

func (r *orderRepository) GetByRazorpayOrderID(ctx context.Context, razorpayOrderID string) (*model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders WHERE razorpay_order_id=$1`
	order, err := scanOrder(r.storage.pool.QueryRow(ctx, query, razorpayOrderID))
	if err != nil {
		return nil, err
	}
	return r.hydrate(ctx, order)
}

func (r *orderRepository) ListByUser(ctx context.Context, userID int64, page, pageSize int) ([]model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders WHERE user_id=$1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.storage.pool.Query(ctx, query, userID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, err
	}
	orders, err := collectOrders(rows)
	if err != nil {
		return nil, err
	}
	return r.hydrateAll(ctx, orders)
}

func (r *orderRepository) ListAll(ctx context.Context, filter repository.OrderFilter, page, pageSize int) ([]model.Order, int, error) {
	var (
		clauses []string
		args    []any
	)
	if filter.Status != nil {
		args = append(args, *filter.Status)
		clauses = append(clauses, fmt.Sprintf("status=$%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		clauses = append(clauses, fmt.Sprintf("ship_full_name ILIKE $%d", len(args)))
	}
	where := ""
	if len(clauses) > 0 {
		where = " WHERE " + strings.Join(clauses, " AND ")
	}

	var total int
	if err := r.storage.pool.QueryRow(ctx, "SELECT COUNT(*) FROM orders"+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, pageSize, (page-1)*pageSize)
	query := "SELECT " + orderColumns + " FROM orders" + where +
		fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	orders, err := collectOrders(rows)
	if err != nil {
		return nil, 0, err
	}
	orders, err = r.hydrateAll(ctx, orders)
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

func (r *orderRepository) SetRazorpayOrderID(ctx context.Context, orderID int64, razorpayOrderID string) error {
	const query = `UPDATE orders SET razorpay_order_id=$2, updated_at=NOW() WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, orderID, razorpayOrderID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// UpdateStatus uses an optimistic status check so that concurrent transitions
// on the same order cannot interleave history entries: the losing writer gets
// ErrStatusConflict.
func (r *orderRepository) UpdateStatus(ctx context.Context, orderID int64, from, to model.OrderStatus, note string, shipment *model.Shipment) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		var (
			tag pgconn.CommandTag
			err error
		)
		if shipment != nil {
			tag, err = tx.Exec(ctx,
				`UPDATE orders SET status=$3, tracking_number=$4, courier=$5, updated_at=NOW() WHERE id=$1 AND status=$2`,
				orderID, from, to, shipment.TrackingNumber, shipment.Courier)
		} else {
			tag, err = tx.Exec(ctx,
				`UPDATE orders SET status=$3, updated_at=NOW() WHERE id=$1 AND status=$2`,
				orderID, from, to)
		}
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			var exists bool
			if err := tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM orders WHERE id=$1)`, orderID).Scan(&exists); err != nil {
				return err
			}
			if !exists {
				return domainErrors.ErrNotFound
			}
			return domainErrors.ErrStatusConflict
		}

		_, err = tx.Exec(ctx, `INSERT INTO order_status_history (order_id, status, note) VALUES ($1, $2, $3)`, orderID, to, note)
		return err
	})
}

// ConfirmPayment commits the payment in one transaction: idempotency guard on
// is_paid, conditional stock debit per item, then mark paid and append the
// history entry. Any shortfall rolls the whole unit back.
func (r *orderRepository) ConfirmPayment(ctx context.Context, orderID int64, paymentID string) (*model.Order, error) {
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		var isPaid bool
		err := tx.QueryRow(ctx, `SELECT is_paid FROM orders WHERE id=$1 FOR UPDATE`, orderID).Scan(&isPaid)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrNotFound
			}
			return err
		}
		if isPaid {
			return domainErrors.ErrAlreadyPaid
		}

		rows, err := tx.Query(ctx, `SELECT product_id, product_name, quantity FROM order_items WHERE order_id=$1`, orderID)
		if err != nil {
			return err
		}
		type line struct {
			productID int64
			name      string
			quantity  int
		}
		var lines []line
		for rows.Next() {
			var l line
			if err := rows.Scan(&l.productID, &l.name, &l.quantity); err != nil {
				rows.Close()
				return err
			}
			lines = append(lines, l)
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return err
		}

		const debit = `UPDATE products SET stock = stock - $2, updated_at=NOW() WHERE id=$1 AND stock >= $2`
		for _, l := range lines {
			tag, err := tx.Exec(ctx, debit, l.productID, l.quantity)
			if err != nil {
				return err
			}
			if tag.RowsAffected() == 0 {
				return &domainErrors.StockError{Product: l.name}
			}
		}

		const markPaid = `UPDATE orders SET is_paid=TRUE, paid_at=NOW(), status=$2, razorpay_payment_id=$3, updated_at=NOW() WHERE id=$1`
		if _, err := tx.Exec(ctx, markPaid, orderID, model.OrderStatusPaid, paymentID); err != nil {
			return err
		}

		_, err = tx.Exec(ctx, `INSERT INTO order_status_history (order_id, status) VALUES ($1, $2)`, orderID, model.OrderStatusPaid)
		return err
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, orderID)
}

func collectOrders(rows pgx.Rows) ([]model.Order, error) {
	defer rows.Close()
	var result []model.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) hydrate(ctx context.Context, order *model.Order) (*model.Order, error) {
	orders, err := r.hydrateAll(ctx, []model.Order{*order})
	if err != nil {
		return nil, err
	}
	return &orders[0], nil
}

// hydrateAll attaches items and status history to order rows with two batch
// queries instead of per-order round trips.
func (r *orderRepository) hydrateAll(ctx context.Context, orders []model.Order) ([]model.Order, error) {
	if len(orders) == 0 {
		return orders, nil
	}
	ids := make([]int64, len(orders))
	index := make(map[int64]int, len(orders))
	for i, o := range orders {
		ids[i] = o.ID
		index[o.ID] = i
	}

	itemRows, err := r.storage.pool.Query(ctx,
		`SELECT order_id, product_id, product_name, quantity, price FROM order_items WHERE order_id = ANY($1) ORDER BY id`, ids)
	if err != nil {
		return nil, err
	}
	for itemRows.Next() {
		var (
			orderID int64
			item    model.OrderItem
		)
		if err := itemRows.Scan(&orderID, &item.ProductID, &item.ProductName, &item.Quantity, &item.Price); err != nil {
			itemRows.Close()
			return nil, err
		}
		i := index[orderID]
		orders[i].Items = append(orders[i].Items, item)
	}
	itemRows.Close()
	if err := itemRows.Err(); err != nil {
		return nil, err
	}

	historyRows, err := r.storage.pool.Query(ctx,
		`SELECT order_id, status, note, changed_at FROM order_status_history WHERE order_id = ANY($1) ORDER BY changed_at, id`, ids)
	if err != nil {
		return nil, err
	}
	for historyRows.Next() {
		var (
			orderID int64
			change  model.StatusChange
		)
		if err := historyRows.Scan(&orderID, &change.Status, &change.Note, &change.ChangedAt); err != nil {
			historyRows.Close()
			return nil, err
		}
		i := index[orderID]
		orders[i].StatusHistory = append(orders[i].StatusHistory, change)
	}
	historyRows.Close()
	if err := historyRows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
