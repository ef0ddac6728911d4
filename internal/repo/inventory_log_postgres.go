package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rogerio-castellano/inventory-app/internal/models"
)

type PostgresInventoryLogRepository struct {
	db *sql.DB
}

func NewPostgresInventoryLogRepository(db *sql.DB) *PostgresInventoryLogRepository {
	return &PostgresInventoryLogRepository{db: db}
}

const logJoinSelect = `
	SELECT il.id, il.product_id, il.change_type, il.quantity_change,
	       il.previous_quantity, il.new_quantity, il.notes,
	       p.name AS product_name, il.created_at
	FROM inventory_logs il
	LEFT JOIN products p ON il.product_id = p.id`

func (r *PostgresInventoryLogRepository) queryLogs(query string, args ...any) ([]models.InventoryLog, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []models.InventoryLog
	for rows.Next() {
		var l models.InventoryLog
		if err := rows.Scan(&l.ID, &l.ProductID, &l.ChangeType, &l.QuantityChange,
			&l.PreviousQuantity, &l.NewQuantity, &l.Notes, &l.ProductName, &l.CreatedAt); err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

func (r *PostgresInventoryLogRepository) GetAll() ([]models.InventoryLog, error) {
	return r.queryLogs(logJoinSelect + ` ORDER BY il.created_at DESC`)
}

func (r *PostgresInventoryLogRepository) GetByProductID(productID int) ([]models.InventoryLog, error) {
	return r.queryLogs(logJoinSelect+` WHERE il.product_id = $1 ORDER BY il.created_at DESC`, productID)
}

// Adjust runs the read-compute-write-log sequence inside one transaction.
// The SELECT ... FOR UPDATE locks the product row, so concurrent adjustments
// on the same product serialize while other products stay unaffected. No
// partial state survives a failed validation.
func (r *PostgresInventoryLogRepository) Adjust(productID int, changeType string, quantityChange int, notes *string) (models.InventoryLog, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return models.InventoryLog{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var previous int
	err = tx.QueryRowContext(ctx, `SELECT quantity FROM products WHERE id = $1 FOR UPDATE`, productID).
		Scan(&previous)
	if errors.Is(err, sql.ErrNoRows) {
		return models.InventoryLog{}, ErrProductNotFound
	}
	if err != nil {
		return models.InventoryLog{}, fmt.Errorf("failed to read product quantity: %w", err)
	}

	newQuantity := previous + quantityChange
	if newQuantity < 0 {
		return models.InventoryLog{}, ErrInsufficientQuantity
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE products SET quantity = $1, updated_at = now() WHERE id = $2`,
		newQuantity, productID); err != nil {
		return models.InventoryLog{}, fmt.Errorf("failed to update product quantity: %w", err)
	}

	entry := models.InventoryLog{
		ProductID:        productID,
		ChangeType:       changeType,
		QuantityChange:   quantityChange,
		PreviousQuantity: previous,
		NewQuantity:      newQuantity,
		Notes:            notes,
	}
	err = tx.QueryRowContext(ctx,
		`INSERT INTO inventory_logs (product_id, change_type, quantity_change, previous_quantity, new_quantity, notes)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at`,
		productID, changeType, quantityChange, previous, newQuantity, notes).
		Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return models.InventoryLog{}, fmt.Errorf("failed to insert inventory log: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return models.InventoryLog{}, fmt.Errorf("failed to commit adjustment: %w", err)
	}
	return entry, nil
}
