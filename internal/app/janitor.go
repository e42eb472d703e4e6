package app

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Janitor periodically force-completes attempts whose countdown ran out while
// no operation came in to observe the expiry. It stops cleanly on context
// cancellation so no sweep runs against a torn-down service.
type Janitor struct {
	service  *AssessmentService
	interval time.Duration
	logger   *zap.Logger
}

func NewJanitor(service *AssessmentService, interval time.Duration, logger *zap.Logger) *Janitor {
	if interval <= 0 {
		interval = 15 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Janitor{service: service, interval: interval, logger: logger}
}

// Run blocks until ctx is done.
func (j *Janitor) Run(ctx context.Context) {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if expired := j.service.ExpireOverdue(ctx); expired > 0 {
				j.logger.Info("expired overdue attempts", zap.Int("count", expired))
			}
		}
	}
}
