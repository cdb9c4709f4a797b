package app

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/tapedeck/greenroom/internal/api"
	"github.com/tapedeck/greenroom/internal/store"
)

const (
	defaultPollInterval = 30 * time.Second
	recentPageCount     = 5
)

// StartPoller launches a background goroutine that keeps the dashboard fresh.
// It returns immediately. Each tick checks the dashboard cooldown first, so a
// short interval does not translate into constant API traffic.
func StartPoller(ctx context.Context, st *store.Store, client *api.Client, logger *zap.Logger, interval time.Duration) {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			if st.DashboardStale(store.CooldownSimple) {
				refreshDashboard(ctx, st, client, logger)
			}
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()
}

// refreshDashboard fetches health and the recent pages and commits the
// result; the UI performs its own forced refresh through the gateway.
func refreshDashboard(ctx context.Context, st *store.Store, client *api.Client, logger *zap.Logger) {
	health, err := client.Health(ctx)
	if err != nil {
		st.UpdateDashboard(nil, 0, nil, err)
		logger.Warn("health poll failed", zap.Error(err))
		return
	}
	pages, err := client.Pages().GetAll(ctx, api.ListParams{Page: 1, PageSize: recentPageCount})
	if err != nil {
		st.UpdateDashboard(nil, 0, nil, err)
		logger.Warn("recent pages poll failed", zap.Error(err))
		return
	}
	st.UpdateDashboard(pages.Items, pages.Pagination.TotalItems, &health, nil)
}
