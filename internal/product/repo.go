// Package product provides the product catalogue: repository, cache and service.
package product

import (
	"context"
	"errors"
	"fmt"
	"time"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/MikeMC777/commerce-api/internal/category"
)

var (
	ErrNotFound        = errors.New("product not found")
	ErrReferenced      = errors.New("product is referenced by orders")
	ErrUnknownCategory = errors.New("unknown category")
)

const fkViolation = "23503"

type Query struct {
	Name   string
	Limit  int
	Offset int
}

type Repository interface {
	GetByID(ctx context.Context, id int64) (*Product, error)
	Search(ctx context.Context, q Query) ([]Product, int64, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, p *Product) error
	Update(ctx context.Context, p *Product) error
	Delete(ctx context.Context, id int64) error
}

// PGRepo runs inside the transaction carried by ctx when there is one.
type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

func (r *PGRepo) conn(ctx context.Context) trmpgx.Tr {
	return trmpgx.DefaultCtxGetter.DefaultTrOrDB(ctx, r.db)
}

func (r *PGRepo) GetByID(ctx context.Context, id int64) (*Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var (
		p     Product
		price string
	)
	err := r.conn(ctx).QueryRow(ctx, `
		SELECT id, name, description, price::text, img_url
		FROM tb_product WHERE id=$1
	`, id).Scan(&p.ID, &p.Name, &p.Description, &price, &p.ImgURL)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get product %d: %w", id, err)
	}
	if p.Price, err = decimal.NewFromString(price); err != nil {
		return nil, fmt.Errorf("product %d price: %w", id, err)
	}

	rows, err := r.conn(ctx).Query(ctx, `
		SELECT c.id, c.name
		FROM tb_category c
		JOIN tb_product_category pc ON pc.category_id = c.id
		WHERE pc.product_id=$1
		ORDER BY c.name
	`, id)
	if err != nil {
		return nil, fmt.Errorf("product %d categories: %w", id, err)
	}
	defer rows.Close()
	p.Categories = make([]category.Category, 0)
	for rows.Next() {
		var c category.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		p.Categories = append(p.Categories, c)
	}
	return &p, rows.Err()
}

// Search matches name case-insensitively as a substring, untrimmed; an empty
// name matches all.
func (r *PGRepo) Search(ctx context.Context, q Query) ([]Product, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var total int64
	if err := r.conn(ctx).QueryRow(ctx, `
		SELECT COUNT(*) FROM tb_product
		WHERE ($1 = '' OR POSITION(LOWER($1) IN LOWER(name)) > 0)
	`, q.Name).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}

	rows, err := r.conn(ctx).Query(ctx, `
		SELECT id, name, description, price::text, img_url
		FROM tb_product
		WHERE ($1 = '' OR POSITION(LOWER($1) IN LOWER(name)) > 0)
		ORDER BY name, id
		LIMIT $2 OFFSET $3
	`, q.Name, q.Limit, q.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("search products: %w", err)
	}
	defer rows.Close()

	out := make([]Product, 0, q.Limit)
	for rows.Next() {
		var (
			p     Product
			price string
		)
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &price, &p.ImgURL); err != nil {
			return nil, 0, err
		}
		if p.Price, err = decimal.NewFromString(price); err != nil {
			return nil, 0, err
		}
		out = append(out, p)
	}
	return out, total, rows.Err()
}

func (r *PGRepo) Exists(ctx context.Context, id int64) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var ok bool
	err := r.conn(ctx).QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM tb_product WHERE id=$1)`, id).Scan(&ok)
	return ok, err
}

func (r *PGRepo) Create(ctx context.Context, p *Product) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := r.conn(ctx).QueryRow(ctx, `
		INSERT INTO tb_product (name, description, price, img_url)
		VALUES ($1,$2,$3::numeric,$4)
		RETURNING id
	`, p.Name, p.Description, p.Price.String(), p.ImgURL).Scan(&p.ID); err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return r.linkCategories(ctx, p)
}

func (r *PGRepo) Update(ctx context.Context, p *Product) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.conn(ctx).Exec(ctx, `
		UPDATE tb_product SET name=$2, description=$3, price=$4::numeric, img_url=$5
		WHERE id=$1
	`, p.ID, p.Name, p.Description, p.Price.String(), p.ImgURL)
	if err != nil {
		return fmt.Errorf("update product %d: %w", p.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	if _, err := r.conn(ctx).Exec(ctx, `DELETE FROM tb_product_category WHERE product_id=$1`, p.ID); err != nil {
		return fmt.Errorf("clear product %d categories: %w", p.ID, err)
	}
	return r.linkCategories(ctx, p)
}

func (r *PGRepo) linkCategories(ctx context.Context, p *Product) error {
	for _, c := range p.Categories {
		_, err := r.conn(ctx).Exec(ctx, `
			INSERT INTO tb_product_category (product_id, category_id) VALUES ($1,$2)
		`, p.ID, c.ID)
		if isFKViolation(err) {
			return fmt.Errorf("%w: %d", ErrUnknownCategory, c.ID)
		}
		if err != nil {
			return fmt.Errorf("link product %d to category %d: %w", p.ID, c.ID, err)
		}
	}
	return nil
}

// Delete fails with ErrReferenced while any order item points at the product.
func (r *PGRepo) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.conn(ctx).Exec(ctx, `DELETE FROM tb_product WHERE id=$1`, id)
	if isFKViolation(err) {
		return ErrReferenced
	}
	if err != nil {
		return fmt.Errorf("delete product %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func isFKViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == fkViolation
}
