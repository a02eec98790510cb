package cli

import (
	"context"
)

// Notifications polls once and prints the decided requests the student has
// not seen yet. A failed poll prints the last known list.
func (a *App) Notifications(ctx context.Context) error {
	if err := a.guard(viewNotifications); err != nil {
		return err
	}
	if err := a.notifications.Poll(ctx); err != nil {
		a.log.Debug(ctx, "showing cached notifications", "error", err)
	}
	list, at := a.notifications.Latest()
	renderNotifications(a.out, list, at)
	return nil
}

func (a *App) MyRequests(ctx context.Context) error {
	if err := a.guard(viewMyRequests); err != nil {
		return err
	}
	reqs, err := a.api.StudentRequests(ctx)
	if err != nil {
		return a.report(ctx, "requests", err)
	}
	renderRequestList(a.out, reqs)
	return nil
}
