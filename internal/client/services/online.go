package services

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/dmitrijs2005/credittransfer/internal/logging"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

// OnlineWatcher tracks server reachability by pinging at a fixed interval.
type OnlineWatcher struct {
	pinger   Pinger
	interval time.Duration
	timeout  time.Duration
	log      logging.Logger
	online   atomic.Bool
}

func NewOnlineWatcher(p Pinger, interval, timeout time.Duration, log logging.Logger) *OnlineWatcher {
	return &OnlineWatcher{
		pinger:   p,
		interval: interval,
		timeout:  timeout,
		log:      log.With("component", "online"),
	}
}

func (w *OnlineWatcher) Online() bool {
	return w.online.Load()
}

// Check pings once and records the result.
func (w *OnlineWatcher) Check(ctx context.Context) bool {
	pingCtx, cancel := context.WithTimeout(ctx, w.timeout)
	err := w.pinger.Ping(pingCtx)
	cancel()

	online := err == nil
	if prev := w.online.Swap(online); prev != online {
		if online {
			w.log.Info(ctx, "server reachable")
		} else {
			w.log.Warn(ctx, "server unreachable", "error", err)
		}
	}
	return online
}

func (w *OnlineWatcher) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.Check(ctx)
		case <-ctx.Done():
			return
		}
	}
}
