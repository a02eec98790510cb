package review

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/dmitrijs2005/credittransfer/internal/client/models"
	"github.com/dmitrijs2005/credittransfer/internal/logging"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Source is the part of the API the engine needs.
type Source interface {
	PendingRequests(ctx context.Context) ([]models.TransferRequest, error)
	UpdateItemStatus(ctx context.Context, itemID int, status models.Status) error
}

// Change is one item whose local decision differs from its snapshot.
type Change struct {
	RequestID int
	ItemID    int
	From      models.Status
	To        models.Status
}

// Outcome of a successful commit. Next is the screen to navigate to.
type Outcome struct {
	Next    string
	Applied int
}

// ResultPath is the results view of a request.
func ResultPath(requestID int) string {
	return fmt.Sprintf("/faculty/request/%d/result", requestID)
}

type Engine struct {
	src Source
	log logging.Logger

	mu       sync.Mutex
	requests []models.TransferRequest
}

func NewEngine(src Source, log logging.Logger) *Engine {
	return &Engine{
		src:      src,
		log:      log.With("component", "review"),
		requests: []models.TransferRequest{},
	}
}

// LoadPending replaces the working set with the server's pending list. On
// failure the previous working set is left untouched.
func (e *Engine) LoadPending(ctx context.Context) ([]models.TransferRequest, error) {
	fetched, err := e.src.PendingRequests(ctx)
	if err != nil {
		e.log.Warn(ctx, "failed to load pending requests", "error", err)
		return nil, &FetchError{Err: err}
	}

	list := make([]models.TransferRequest, 0, len(fetched))
	for _, r := range fetched {
		r = r.Clone()
		for i := range r.Items {
			r.Items[i].InitialStatus = r.Items[i].Status
		}
		list = append(list, r)
	}

	e.mu.Lock()
	e.requests = list
	e.mu.Unlock()

	e.log.Info(ctx, "pending requests loaded", "count", len(list))
	return e.Requests(), nil
}

// Reset drops the working set together with any unsaved decisions.
func (e *Engine) Reset() {
	e.mu.Lock()
	e.requests = []models.TransferRequest{}
	e.mu.Unlock()
}

// Requests returns a copy of the working set.
func (e *Engine) Requests() []models.TransferRequest {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]models.TransferRequest, len(e.requests))
	for i, r := range e.requests {
		out[i] = r.Clone()
	}
	return out
}

func (e *Engine) Request(requestID int) (models.TransferRequest, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	r := e.find(requestID)
	if r == nil {
		return models.TransferRequest{}, fmt.Errorf("%w: request %d", ErrNotFound, requestID)
	}
	return r.Clone(), nil
}

// SetItemStatus records a local decision. Nothing is sent to the server.
func (e *Engine) SetItemStatus(requestID, itemID int, status models.Status) error {
	if !status.ValidForItem() {
		return fmt.Errorf("%w: %q", models.ErrInvalidStatus, status)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	r := e.find(requestID)
	if r == nil {
		return fmt.Errorf("%w: request %d", ErrNotFound, requestID)
	}
	for i := range r.Items {
		if r.Items[i].ID == itemID {
			r.Items[i].Status = status
			return nil
		}
	}
	return fmt.Errorf("%w: item %d in request %d", ErrNotFound, itemID, requestID)
}

// Changes lists the changed items of a request in item order.
func (e *Engine) Changes(requestID int) ([]Change, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	r := e.find(requestID)
	if r == nil {
		return nil, fmt.Errorf("%w: request %d", ErrNotFound, requestID)
	}
	return changesOf(r), nil
}

// Commit sends one update per changed item. All updates are dispatched
// concurrently and every one runs to completion regardless of the others.
func (e *Engine) Commit(ctx context.Context, requestID int) (Outcome, error) {
	changes, err := e.Changes(requestID)
	if err != nil {
		return Outcome{}, err
	}
	if len(changes) == 0 {
		return Outcome{}, ErrNoChanges
	}

	log := e.log.With("batch_id", uuid.NewString(), "request_id", requestID)
	log.Info(ctx, "committing decisions", "changes", len(changes))

	var (
		mu      sync.Mutex
		applied []int
		failed  []int
		errs    []error
	)

	var g errgroup.Group
	for _, c := range changes {
		c := c
		g.Go(func() error {
			err := e.src.UpdateItemStatus(ctx, c.ItemID, c.To)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				log.Warn(ctx, "item update failed", "item_id", c.ItemID, "error", err)
				failed = append(failed, c.ItemID)
				errs = append(errs, fmt.Errorf("item %d: %w", c.ItemID, err))
				return err
			}
			applied = append(applied, c.ItemID)
			return nil
		})
	}
	_ = g.Wait()

	slices.Sort(applied)
	slices.Sort(failed)

	if len(failed) > 0 {
		return Outcome{}, &PartialCommitError{
			RequestID: requestID,
			Failed:    failed,
			Applied:   applied,
			Err:       errors.Join(errs...),
		}
	}

	log.Info(ctx, "decisions committed", "applied", len(applied))
	return Outcome{Next: ResultPath(requestID), Applied: len(applied)}, nil
}

func (e *Engine) find(requestID int) *models.TransferRequest {
	for i := range e.requests {
		if e.requests[i].ID == requestID {
			return &e.requests[i]
		}
	}
	return nil
}

func changesOf(r *models.TransferRequest) []Change {
	changes := []Change{}
	for _, it := range r.Items {
		if it.Changed() {
			changes = append(changes, Change{
				RequestID: r.ID,
				ItemID:    it.ID,
				From:      it.InitialStatus,
				To:        it.Status,
			})
		}
	}
	return changes
}
