// Package order places orders and serves them back to their owners.
package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound = errors.New("order not found")
)

type Repository interface {
	Create(ctx context.Context, o *Order) error
	GetByID(ctx context.Context, id int64) (*Order, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

func (r *PGRepo) conn(ctx context.Context) trmpgx.Tr {
	return trmpgx.DefaultCtxGetter.DefaultTrOrDB(ctx, r.db)
}

// Create stores the order header and its lines and sets o.ID. Callers run it
// inside a transaction so a failing line leaves nothing behind.
func (r *PGRepo) Create(ctx context.Context, o *Order) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := r.conn(ctx).QueryRow(ctx, `
		INSERT INTO tb_order (moment, status, client_id)
		VALUES ($1,$2,$3)
		RETURNING id
	`, o.Moment, string(o.Status), o.Client.ID).Scan(&o.ID); err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	for _, it := range o.Items {
		if _, err := r.conn(ctx).Exec(ctx, `
			INSERT INTO tb_order_item (order_id, product_id, quantity, price)
			VALUES ($1,$2,$3,$4::numeric)
		`, o.ID, it.ProductID, it.Quantity, it.Price.String()); err != nil {
			return fmt.Errorf("insert order %d item %d: %w", o.ID, it.ProductID, err)
		}
	}
	return nil
}

func (r *PGRepo) GetByID(ctx context.Context, id int64) (*Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var (
		o         Order
		status    string
		payMoment *time.Time
	)
	err := r.conn(ctx).QueryRow(ctx, `
		SELECT o.id, o.moment, o.status, u.id, u.name, p.moment
		FROM tb_order o
		JOIN tb_user u ON u.id = o.client_id
		LEFT JOIN tb_payment p ON p.order_id = o.id
		WHERE o.id=$1
	`, id).Scan(&o.ID, &o.Moment, &status, &o.Client.ID, &o.Client.Name, &payMoment)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get order %d: %w", id, err)
	}
	o.Status = Status(status)
	o.Moment = o.Moment.UTC()
	if payMoment != nil {
		o.Payment = &Payment{ID: o.ID, Moment: payMoment.UTC()}
	}

	rows, err := r.conn(ctx).Query(ctx, `
		SELECT i.product_id, p.name, i.price::text, i.quantity, p.img_url
		FROM tb_order_item i
		JOIN tb_product p ON p.id = i.product_id
		WHERE i.order_id=$1
		ORDER BY i.product_id
	`, id)
	if err != nil {
		return nil, fmt.Errorf("get order %d items: %w", id, err)
	}
	defer rows.Close()

	o.Items = make([]Item, 0)
	for rows.Next() {
		var (
			it    Item
			price string
		)
		if err := rows.Scan(&it.ProductID, &it.Name, &price, &it.Quantity, &it.ImgURL); err != nil {
			return nil, err
		}
		if it.Price, err = decimal.NewFromString(price); err != nil {
			return nil, err
		}
		o.Items = append(o.Items, it)
	}
	return &o, rows.Err()
}
