package repository

import (
	"context"

	"bolajon-kids/models"
)

// OrderRepositoryInterface defines the contract for the order archive
type OrderRepositoryInterface interface {
	Insert(ctx context.Context, record *models.OrderRecord) (int64, error)
	List(ctx context.Context, limit int) ([]models.ArchivedOrder, error)
	GetByID(ctx context.Context, id int64) (*models.ArchivedOrder, error)
}
