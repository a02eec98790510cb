package services

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/credittransfer/internal/client/models"
	"github.com/dmitrijs2005/credittransfer/internal/logging"
)

type NotificationSource interface {
	Notifications(ctx context.Context) ([]models.TransferRequest, error)
}

// NotificationWatcher polls the student notification endpoint at a fixed
// interval. A failed poll keeps the previous result.
type NotificationWatcher struct {
	src      NotificationSource
	interval time.Duration
	timeout  time.Duration
	log      logging.Logger

	mu        sync.RWMutex
	latest    []models.TransferRequest
	updatedAt time.Time
}

func NewNotificationWatcher(src NotificationSource, interval, timeout time.Duration, log logging.Logger) *NotificationWatcher {
	return &NotificationWatcher{
		src:      src,
		interval: interval,
		timeout:  timeout,
		log:      log.With("component", "notifications"),
		latest:   []models.TransferRequest{},
	}
}

// Run polls once immediately and then on every tick until ctx is done.
func (w *NotificationWatcher) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	_ = w.Poll(ctx)
	for {
		select {
		case <-ticker.C:
			_ = w.Poll(ctx)
		case <-ctx.Done():
			return
		}
	}
}

// Poll fetches the notification list once.
func (w *NotificationWatcher) Poll(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()

	list, err := w.src.Notifications(ctx)
	if err != nil {
		w.log.Debug(ctx, "notification poll failed", "error", err)
		return err
	}

	w.mu.Lock()
	w.latest = list
	w.updatedAt = time.Now()
	w.mu.Unlock()
	return nil
}

// Latest returns the last successful result and when it was fetched. The
// time is zero until the first successful poll.
func (w *NotificationWatcher) Latest() ([]models.TransferRequest, time.Time) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	out := make([]models.TransferRequest, len(w.latest))
	copy(out, w.latest)
	return out, w.updatedAt
}
