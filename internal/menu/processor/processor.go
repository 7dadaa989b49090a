package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"fmt"

	"voiceorder-server/internal/observability"
	"voiceorder-server/internal/store"
)

type MenuStore interface {
	ListMenuItems(ctx context.Context) ([]store.MenuItem, error)
}

type MenuProcessor struct {
	store  MenuStore
	logger *observability.Logger
}

func New(store MenuStore, logger *observability.Logger) *MenuProcessor {
	return &MenuProcessor{
		store:  store,
		logger: logger,
	}
}

// ListMenu returns the full menu, never nil.
func (p *MenuProcessor) ListMenu(ctx context.Context) ([]store.MenuItem, error) {
	items, err := p.store.ListMenuItems(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to list menu", err)
		return nil, fmt.Errorf("failed to list menu: %w", err)
	}
	if items == nil {
		items = []store.MenuItem{}
	}
	return items, nil
}
