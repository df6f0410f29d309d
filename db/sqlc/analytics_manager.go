package sqlc

import (
	"context"

	"github.com/sqlc-dev/pqtype"
)

type AnalyticsManager struct {
	queries Querier
}

func NewAnalyticsManager(queries Querier) *AnalyticsManager {
	return &AnalyticsManager{queries: queries}
}

func (a *AnalyticsManager) IncrementSessionsStartedCount(ctx context.Context, serverIpNet pqtype.Inet) error {
	return a.queries.AnalyticsIncrementSessionsStartedCount(ctx, serverIpNet)
}

func (a *AnalyticsManager) IncrementShipsAutoPlacedCount(ctx context.Context, serverIpNet pqtype.Inet) error {
	return a.queries.AnalyticsIncrementShipsAutoPlacedCount(ctx, serverIpNet)
}

func (a *AnalyticsManager) IncrementFleetsConfirmedCount(ctx context.Context, serverIpNet pqtype.Inet) error {
	return a.queries.AnalyticsIncrementFleetsConfirmedCount(ctx, serverIpNet)
}

func (a *AnalyticsManager) GetSessionsStartedCount(ctx context.Context, serverIpNet pqtype.Inet) (int64, error) {
	return a.queries.AnalyticsGetSessionsStartedCount(ctx, serverIpNet)
}

func (a *AnalyticsManager) GetShipsAutoPlacedCount(ctx context.Context, serverIpNet pqtype.Inet) (int64, error) {
	return a.queries.AnalyticsGetShipsAutoPlacedCount(ctx, serverIpNet)
}

func (a *AnalyticsManager) GetFleetsConfirmedCount(ctx context.Context, serverIpNet pqtype.Inet) (int64, error) {
	return a.queries.AnalyticsGetFleetsConfirmedCount(ctx, serverIpNet)
}
