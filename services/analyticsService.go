package services

import (
	"context"
	"log"
	"sync/atomic"

	"toolfinder/models"
)

// StatsSource reports memory statistics for the analytics snapshot.
type StatsSource interface {
	Stats(ctx context.Context) models.MemoryStats
}

// AnalyticsService counts chat requests for the lifetime of the process.
type AnalyticsService struct {
	totalRequests     atomic.Int64
	successfulQueries atomic.Int64
	failedQueries     atomic.Int64
}

func NewAnalyticsService() *AnalyticsService {
	return &AnalyticsService{}
}

func (s *AnalyticsService) IncrementRequests() {
	s.totalRequests.Add(1)
}

func (s *AnalyticsService) IncrementSuccessful() {
	s.successfulQueries.Add(1)
}

func (s *AnalyticsService) IncrementFailed() {
	s.failedQueries.Add(1)
}

// Snapshot reads the counters and combines them with catalog and memory
// figures. The success rate is a percentage and 0 before any request.
func (s *AnalyticsService) Snapshot(ctx context.Context, tools *ToolService, memory StatsSource) models.AnalyticsSnapshot {
	total := s.totalRequests.Load()
	successful := s.successfulQueries.Load()

	snapshot := models.AnalyticsSnapshot{
		TotalRequests:     total,
		SuccessfulQueries: successful,
		FailedQueries:     s.failedQueries.Load(),
	}
	if total > 0 {
		snapshot.SuccessRate = float64(successful) / float64(total) * 100
	}

	if tools != nil {
		snapshot.TotalTools = tools.TotalTools()
		snapshot.Categories = len(tools.CategoryNames())
	}
	if memory != nil {
		snapshot.MemoryService = memory.Stats(ctx)
	}

	return snapshot
}

func (s *AnalyticsService) Reset() {
	log.Printf("[INFO] Resetting analytics counters")
	s.totalRequests.Store(0)
	s.successfulQueries.Store(0)
	s.failedQueries.Store(0)
}
