// Package poller drives the recurring notification fetch while a user
// session is active. The loop is an explicit cancellable task tied to the
// session lifetime: Start launches it, Stop cancels it deterministically, and
// no ticker survives a logout or shutdown.
package poller

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/spc-hr/hrms-gateway/internal/api/metrics"
	"github.com/spc-hr/hrms-gateway/internal/core/ports"
)

const defaultInterval = 30 * time.Second

// Poller re-fetches the notification inbox on a fixed interval.
type Poller struct {
	notifications ports.NotificationService
	interval      time.Duration
	log           zerolog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
}

// New creates a Poller. If interval <= 0, defaultInterval is used.
func New(notifications ports.NotificationService, interval time.Duration, log zerolog.Logger) *Poller {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Poller{
		notifications: notifications,
		interval:      interval,
		log:           log,
	}
}

// Start launches the poll loop: one immediate fetch, then one per interval.
// Calling Start on a running poller is a no-op.
func (p *Poller) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancel != nil {
		return
	}

	runCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	go p.run(runCtx)
}

// Stop cancels the poll loop. Safe to call when not running.
func (p *Poller) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancel == nil {
		return
	}
	p.cancel()
	p.cancel = nil
}

// Running reports whether the loop is currently active.
func (p *Poller) Running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cancel != nil
}

func (p *Poller) run(ctx context.Context) {
	p.fetch(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.fetch(ctx)
		}
	}
}

func (p *Poller) fetch(ctx context.Context) {
	start := time.Now()
	if err := p.notifications.Fetch(ctx); err != nil {
		if ctx.Err() == nil {
			p.log.Warn().Err(err).Msg("notification poll failed")
		}
		metrics.NotificationPollsTotal.WithLabelValues("error").Inc()
		return
	}

	metrics.NotificationPollsTotal.WithLabelValues("ok").Inc()
	metrics.NotificationPollDuration.Observe(time.Since(start).Seconds())
	metrics.NotificationsUnread.Set(float64(p.notifications.UnreadCount()))
}
