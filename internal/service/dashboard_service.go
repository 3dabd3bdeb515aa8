package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/noah-isme/student-records-api/internal/store"
)

type countsSource interface {
	Counts() store.SummaryCounts
}

// DashboardService exposes store-wide summary counts. Counts are read from
// the live store on every call; nothing is cached.
type DashboardService struct {
	counts countsSource
	logger *zap.Logger
}

// NewDashboardService constructs a DashboardService instance.
func NewDashboardService(counts countsSource, logger *zap.Logger) *DashboardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{counts: counts, logger: logger}
}

// Summary returns current entity totals.
func (s *DashboardService) Summary(ctx context.Context) store.SummaryCounts {
	return s.counts.Counts()
}
