package store

import (
	"context"
	"fmt"
)

type menuRow struct {
	ID       string             `db:"id"`
	Document Document[MenuItem] `db:"document"`
}

const sqlListMenuItems = `
SELECT id, document FROM %s ORDER BY id`

// ListMenuItems returns every menu document.
func (s *Store) ListMenuItems(ctx context.Context) ([]MenuItem, error) {
	var rows []menuRow
	err := s.db.SelectContext(ctx, &rows, fmt.Sprintf(sqlListMenuItems, s.menuTable))
	if err != nil {
		s.logger.Error(ctx, "failed to list menu items", err)
		return nil, fmt.Errorf("failed to list menu items: %w", err)
	}

	items := make([]MenuItem, 0, len(rows))
	for _, row := range rows {
		item := row.Document.Data
		if item.ID == "" {
			item.ID = row.ID
		}
		items = append(items, item)
	}
	return items, nil
}
