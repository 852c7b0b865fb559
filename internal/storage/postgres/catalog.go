package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	domainErrors "github.com/polkiloo/scentshop/internal/domain/errors"
	"github.com/polkiloo/scentshop/internal/domain/model"
	"github.com/polkiloo/scentshop/internal/domain/repository"
)

const productColumns = `id, name, description, price, stock, category_id, images, featured, created_at, updated_at`

func scanProduct(row pgx.Row) (*model.Product, error) {
	var p model.Product
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.CategoryID,
		&p.Images, &p.Featured, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// --- ProductRepository implementation ---

func (r *productRepository) Create(ctx context.Context, p *model.Product) (*model.Product, error) {
	const query = `INSERT INTO products (name, description, price, stock, category_id, images, featured)
                   VALUES ($1, $2, $3, $4, $5, $6, $7)
                   RETURNING id, created_at, updated_at`
	created := *p
	err := r.storage.pool.QueryRow(ctx, query, p.Name, p.Description, p.Price, p.Stock, p.CategoryID, p.Images, p.Featured).
		Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *productRepository) Update(ctx context.Context, p *model.Product) (*model.Product, error) {
	const query = `UPDATE products
                   SET name=$2, description=$3, price=$4, stock=$5, category_id=$6, images=$7, featured=$8, updated_at=NOW()
                   WHERE id=$1
                   RETURNING created_at, updated_at`
	updated := *p
	err := r.storage.pool.QueryRow(ctx, query, p.ID, p.Name, p.Description, p.Price, p.Stock, p.CategoryID, p.Images, p.Featured).
		Scan(&updated.CreatedAt, &updated.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &updated, nil
}

func (r *productRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM products WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *productRepository) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	const query = `SELECT ` + productColumns + ` FROM products WHERE id=$1`
	return scanProduct(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *productRepository) List(ctx context.Context, filter repository.ProductFilter, page, pageSize int) ([]model.Product, int, error) {
	var (
		clauses []string
		args    []any
	)
	if filter.CategoryID != nil {
		args = append(args, *filter.CategoryID)
		clauses = append(clauses, fmt.Sprintf("category_id=$%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		clauses = append(clauses, fmt.Sprintf("name ILIKE $%d", len(args)))
	}
	where := ""
	if len(clauses) > 0 {
		where = " WHERE " + strings.Join(clauses, " AND ")
	}

	var total int
	if err := r.storage.pool.QueryRow(ctx, "SELECT COUNT(*) FROM products"+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, pageSize, (page-1)*pageSize)
	query := "SELECT " + productColumns + " FROM products" + where +
		fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var result []model.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, err
		}
		result = append(result, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return result, total, nil
}

// --- CategoryRepository implementation ---

func (r *categoryRepository) Create(ctx context.Context, name string) (*model.Category, error) {
	const query = `INSERT INTO categories (name) VALUES ($1) RETURNING id, created_at`
	var c model.Category
	err := r.storage.pool.QueryRow(ctx, query, name).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	c.Name = name
	return &c, nil
}

func (r *categoryRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM categories WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *categoryRepository) List(ctx context.Context) ([]model.Category, error) {
	rows, err := r.storage.pool.Query(ctx, `SELECT id, name, created_at FROM categories ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Category
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
