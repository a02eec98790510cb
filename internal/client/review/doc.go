// Package review implements the faculty review screen: the in-memory working
// set of pending transfer requests, per-item decisions made locally, and the
// commit that sends only the changed decisions to the server.
//
// Each loaded item carries a snapshot of the status the server reported
// (InitialStatus). An item belongs to the change set iff its current status
// differs from that snapshot. Commit never refreshes snapshots, so a retry
// after a partial failure resends the same change set; the server update
// endpoint is idempotent for a given target status.
//
// The package also carries the comparison helpers used by the views:
// description-overlap highlighting, similarity score bands and the
// request-level status derived from item decisions.
package review
