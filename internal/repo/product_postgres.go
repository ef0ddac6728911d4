package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/rogerio-castellano/inventory-app/internal/models"
)

type PostgresProductRepository struct {
	db *sql.DB
}

func NewPostgresProductRepository(db *sql.DB) *PostgresProductRepository {
	return &PostgresProductRepository{db: db}
}

const productJoinSelect = `
	SELECT p.id, p.name, p.description, p.price, p.quantity, p.low_stock_threshold,
	       p.category_id, c.name AS category_name, p.created_at, p.updated_at
	FROM products p
	LEFT JOIN categories c ON p.category_id = c.id`

const productReturning = `id, name, description, price, quantity, low_stock_threshold, category_id, created_at, updated_at`

func scanJoinedProduct(row interface{ Scan(...any) error }) (models.Product, error) {
	var p models.Product
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Quantity,
		&p.LowStockThreshold, &p.CategoryID, &p.CategoryName, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func (r *PostgresProductRepository) queryProducts(query string, args ...any) ([]models.Product, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		p, err := scanJoinedProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *PostgresProductRepository) GetAll() ([]models.Product, error) {
	return r.queryProducts(productJoinSelect + ` ORDER BY p.created_at DESC`)
}

func (r *PostgresProductRepository) GetByID(id int) (models.Product, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	p, err := scanJoinedProduct(r.db.QueryRowContext(ctx, productJoinSelect+` WHERE p.id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	return p, err
}

func (r *PostgresProductRepository) GetLowStock() ([]models.Product, error) {
	return r.queryProducts(productJoinSelect + `
	WHERE p.quantity <= p.low_stock_threshold
	ORDER BY p.quantity ASC`)
}

func (r *PostgresProductRepository) Create(p models.Product) (models.Product, error) {
	query := `INSERT INTO products (name, description, price, quantity, low_stock_threshold, category_id)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          RETURNING ` + productReturning
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := r.db.QueryRowContext(ctx, query,
		p.Name, p.Description, p.Price, p.Quantity, p.LowStockThreshold, p.CategoryID).
		Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Quantity,
			&p.LowStockThreshold, &p.CategoryID, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

// Update merges the patch into the stored row. COALESCE keeps the previous
// value for omitted fields; category_id is written unconditionally.
func (r *PostgresProductRepository) Update(id int, patch ProductPatch) (models.Product, error) {
	query := `UPDATE products SET
	            name = COALESCE($1, name),
	            description = COALESCE($2, description),
	            price = COALESCE($3, price),
	            quantity = COALESCE($4, quantity),
	            low_stock_threshold = COALESCE($5, low_stock_threshold),
	            category_id = $6,
	            updated_at = now()
	          WHERE id = $7
	          RETURNING ` + productReturning
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var p models.Product
	err := r.db.QueryRowContext(ctx, query,
		patch.Name, patch.Description, patch.Price, patch.Quantity,
		patch.LowStockThreshold, patch.CategoryID, id).
		Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Quantity,
			&p.LowStockThreshold, &p.CategoryID, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	return p, err
}

func (r *PostgresProductRepository) Delete(id int) (models.Product, error) {
	query := `DELETE FROM products WHERE id = $1 RETURNING ` + productReturning
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var p models.Product
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Quantity,
			&p.LowStockThreshold, &p.CategoryID, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	return p, err
}
