package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"bolajon-kids/db"
	"bolajon-kids/models"
)

// OrderRepository stores submitted orders in Postgres for the admin view.
// The spreadsheet stays the record-of-truth for order tracking; this table
// is a local copy so staff can browse orders without opening the sheet.
type OrderRepository struct{}

// NewOrderRepository creates a new OrderRepository
func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

// Ensure OrderRepository implements OrderRepositoryInterface
var _ OrderRepositoryInterface = (*OrderRepository)(nil)

// Insert stores one submitted order and returns its id
func (r *OrderRepository) Insert(ctx context.Context, record *models.OrderRecord) (int64, error) {
	log.Printf("📦 Insert: Archiving order for product=%s, customer=%s", record.ProductID, record.CustomerName)

	query := `
		INSERT INTO orders (product_id, color_id, size, language, price, currency,
		                    customer_name, customer_phone, customer_district, customer_address, comment)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`

	var id int64
	err := db.DB.QueryRowContext(ctx, query,
		record.ProductID,
		record.SelectedColorID,
		record.SelectedSize,
		string(record.Language),
		record.Price,
		record.Currency,
		record.CustomerName,
		record.CustomerPhone,
		sql.NullString{String: record.CustomerDistrict, Valid: record.CustomerDistrict != ""},
		sql.NullString{String: record.CustomerAddress, Valid: record.CustomerAddress != ""},
		sql.NullString{String: record.Comment, Valid: record.Comment != ""},
	).Scan(&id)

	if err != nil {
		log.Printf("❌ Insert: Error archiving order: %v", err)
		return 0, fmt.Errorf("failed to archive order: %w", err)
	}

	log.Printf("✅ Insert: Successfully archived order id=%d", id)
	return id, nil
}

// List returns the most recent archived orders, newest first
func (r *OrderRepository) List(ctx context.Context, limit int) ([]models.ArchivedOrder, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}

	query := `
		SELECT id, product_id, color_id, size, language, price, currency,
		       customer_name, customer_phone, customer_district, customer_address, comment, created_at
		FROM orders
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := db.DB.QueryContext(ctx, query, limit)
	if err != nil {
		log.Printf("❌ List: Error listing orders: %v", err)
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	orders := []models.ArchivedOrder{}
	for rows.Next() {
		order, err := scanArchivedOrder(rows.Scan)
		if err != nil {
			log.Printf("❌ List: Error scanning order row: %v", err)
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, *order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate orders: %w", err)
	}

	return orders, nil
}

// GetByID returns one archived order
func (r *OrderRepository) GetByID(ctx context.Context, id int64) (*models.ArchivedOrder, error) {
	query := `
		SELECT id, product_id, color_id, size, language, price, currency,
		       customer_name, customer_phone, customer_district, customer_address, comment, created_at
		FROM orders
		WHERE id = $1
	`

	order, err := scanArchivedOrder(db.DB.QueryRowContext(ctx, query, id).Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("order not found")
		}
		log.Printf("❌ GetByID: Error fetching order: %v", err)
		return nil, fmt.Errorf("failed to fetch order: %w", err)
	}

	return order, nil
}

// scanArchivedOrder reads one row via the given Scan function
func scanArchivedOrder(scan func(dest ...any) error) (*models.ArchivedOrder, error) {
	var order models.ArchivedOrder
	var district, address, comment sql.NullString

	err := scan(
		&order.ID,
		&order.ProductID,
		&order.ColorID,
		&order.Size,
		&order.Language,
		&order.Price,
		&order.Currency,
		&order.CustomerName,
		&order.CustomerPhone,
		&district,
		&address,
		&comment,
		&order.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if district.Valid {
		order.CustomerDistrict = district.String
	}
	if address.Valid {
		order.CustomerAddress = address.String
	}
	if comment.Valid {
		order.Comment = comment.String
	}

	return &order, nil
}
