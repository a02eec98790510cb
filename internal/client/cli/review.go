package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/credittransfer/internal/client/models"
	"github.com/dmitrijs2005/credittransfer/internal/client/review"
	"github.com/dmitrijs2005/credittransfer/internal/client/session"
	"github.com/dmitrijs2005/credittransfer/internal/filex"
)

// Pending reloads the pending list. On failure the previously loaded list
// stays available to show/set/save.
func (a *App) Pending(ctx context.Context) error {
	if err := a.guard(viewPending); err != nil {
		return err
	}
	reqs, err := a.engine.LoadPending(ctx)
	if err != nil {
		return a.report(ctx, "pending", err)
	}
	a.setScreen(session.ScreenFacultyDashboard)
	renderRequestList(a.out, reqs)
	return nil
}

func (a *App) Show(ctx context.Context, args []string) error {
	if err := a.guard(viewPending); err != nil {
		return err
	}
	ids, err := parseIDs(args, 1, "show <request>")
	if err != nil {
		return a.report(ctx, "show", err)
	}
	r, err := a.engine.Request(ids[0])
	if err != nil {
		return a.report(ctx, "show", notLoaded(err))
	}
	renderRequest(a.out, r)
	return nil
}

// Set records a decision locally.
func (a *App) Set(ctx context.Context, args []string) error {
	if err := a.guard(viewPending); err != nil {
		return err
	}
	const usage = "set <request> <item> <pending|approved|rejected>"
	ids, err := parseIDs(args, 2, usage)
	if err != nil {
		return a.report(ctx, "set", err)
	}
	if len(args) < 3 {
		return a.report(ctx, "set", fmt.Errorf("usage: %s", usage))
	}
	status, err := models.ParseItemStatus(args[2])
	if err != nil {
		return a.report(ctx, "set", err)
	}
	if err := a.engine.SetItemStatus(ids[0], ids[1], status); err != nil {
		return a.report(ctx, "set", notLoaded(err))
	}

	changes, _ := a.engine.Changes(ids[0])
	a.printf("Item %d: %s (%d unsaved in request %d)\n", ids[1], status.Label(), len(changes), ids[0])
	return nil
}

func (a *App) Compare(ctx context.Context, args []string) error {
	if err := a.guard(viewPending); err != nil {
		return err
	}
	ids, err := parseIDs(args, 2, "compare <request> <item>")
	if err != nil {
		return a.report(ctx, "compare", err)
	}
	r, err := a.engine.Request(ids[0])
	if err != nil {
		return a.report(ctx, "compare", notLoaded(err))
	}
	for _, it := range r.Items {
		if it.ID == ids[1] {
			renderComparison(a.out, it)
			return nil
		}
	}
	return a.report(ctx, "compare", fmt.Errorf("%w: item %d in request %d", review.ErrNotFound, ids[1], ids[0]))
}

// Save commits the changed decisions of a request and shows its result.
func (a *App) Save(ctx context.Context, args []string) error {
	if err := a.guard(viewPending); err != nil {
		return err
	}
	ids, err := parseIDs(args, 1, "save <request>")
	if err != nil {
		return a.report(ctx, "save", err)
	}

	changes, err := a.engine.Changes(ids[0])
	if err != nil {
		return a.report(ctx, "save", notLoaded(err))
	}

	out, err := a.engine.Commit(ctx, ids[0])
	var pe *review.PartialCommitError
	switch {
	case errors.Is(err, review.ErrNoChanges):
		a.printf("Select a decision before saving.\n")
		return err
	case errors.As(err, &pe):
		a.printf("Saved %d of %d decisions. Failed items: %v\n", len(pe.Applied), len(changes), pe.Failed)
		a.printf("Run 'save %d' again to retry.\n", ids[0])
		return a.report(ctx, "save", err)
	case err != nil:
		return a.report(ctx, "save", err)
	}

	a.printf("Saved %d decisions:\n", out.Applied)
	renderChanges(a.out, changes)
	a.setScreen(session.Screen(out.Next))
	return a.Result(ctx, args[:1])
}

// Result shows the server's view of a request after review.
func (a *App) Result(ctx context.Context, args []string) error {
	if err := a.guard(viewResult); err != nil {
		return err
	}
	ids, err := parseIDs(args, 1, "result <request>")
	if err != nil {
		return a.report(ctx, "result", err)
	}
	r, err := a.api.RequestDetail(ctx, ids[0])
	if err != nil {
		return a.report(ctx, "result", err)
	}
	a.setScreen(session.Screen(review.ResultPath(ids[0])))
	renderResult(a.out, r)
	return nil
}

func (a *App) History(ctx context.Context) error {
	if err := a.guard(viewHistory); err != nil {
		return err
	}
	reqs, err := a.api.History(ctx)
	if err != nil {
		return a.report(ctx, "history", err)
	}
	renderRequestList(a.out, reqs)
	return nil
}

// Delete removes a finished request after the user confirms.
func (a *App) Delete(ctx context.Context, args []string) error {
	if err := a.guard(viewHistory); err != nil {
		return err
	}
	ids, err := parseIDs(args, 1, "delete <request>")
	if err != nil {
		return a.report(ctx, "delete", err)
	}

	answer, err := getSimpleText(a.reader, fmt.Sprintf("Delete request #%d? (y/N)", ids[0]), a.out)
	if err != nil {
		return err
	}
	if !strings.EqualFold(answer, "y") && !strings.EqualFold(answer, "yes") {
		a.printf("Cancelled.\n")
		return nil
	}

	if err := a.api.DeleteRequest(ctx, ids[0]); err != nil {
		return a.report(ctx, "delete", err)
	}
	a.printf("Request #%d deleted.\n", ids[0])
	return nil
}

// Report downloads a server-rendered PDF into the download directory.
func (a *App) Report(ctx context.Context, args []string) error {
	if err := a.guard(viewReport); err != nil {
		return err
	}
	ids, err := parseIDs(args, 1, "report <request> [evaluation]")
	if err != nil {
		return a.report(ctx, "report", err)
	}

	kind, name := models.ReportSummary, fmt.Sprintf("request_%d.pdf", ids[0])
	if len(args) > 1 && args[1] == string(models.ReportEvaluation) {
		kind, name = models.ReportEvaluation, fmt.Sprintf("evaluation_%d.pdf", ids[0])
	}

	data, err := a.api.DownloadReport(ctx, ids[0], kind)
	if err != nil {
		return a.report(ctx, "report", err)
	}

	dir, err := filex.EnsureSubdDir(filepath.Dir(a.config.DownloadDir), filepath.Base(a.config.DownloadDir))
	if err != nil {
		return a.report(ctx, "report", err)
	}
	path, err := filex.SaveFile(dir, name, data)
	if err != nil {
		return a.report(ctx, "report", err)
	}
	a.printf("Saved %s (%d bytes)\n", path, len(data))
	return nil
}

func notLoaded(err error) error {
	if errors.Is(err, review.ErrNotFound) {
		return fmt.Errorf("%w; run 'pending' to load requests", err)
	}
	return err
}
