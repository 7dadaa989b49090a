package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

const sqlCreateOrder = `
INSERT INTO %s (id, partition_key, document, created_at)
VALUES ($1, $2, $3, $4)`

// CreateOrder stores the order document partitioned by its own id.
func (s *Store) CreateOrder(ctx context.Context, order Order) (Order, error) {
	_, err := s.db.ExecContext(ctx, fmt.Sprintf(sqlCreateOrder, s.orderTable),
		order.ID,
		order.ID,
		Document[Order]{Data: order},
		order.CreatedAt,
	)
	if err != nil {
		s.logger.Error(ctx, "failed to create order", err)
		return Order{}, fmt.Errorf("failed to create order: %w", err)
	}
	return order, nil
}

type orderRow struct {
	ID       string          `db:"id"`
	Document Document[Order] `db:"document"`
}

const sqlGetOrderByID = `
SELECT id, document FROM %s WHERE id = $1 AND partition_key = $1`

func (s *Store) GetOrderByID(ctx context.Context, id string) (Order, error) {
	var row orderRow
	err := s.db.GetContext(ctx, &row, fmt.Sprintf(sqlGetOrderByID, s.orderTable), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Order{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get order by id", err)
		return Order{}, fmt.Errorf("failed to get order by id: %w", err)
	}
	order := row.Document.Data
	order.ID = row.ID
	return order, nil
}
