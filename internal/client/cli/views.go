package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dmitrijs2005/credittransfer/internal/client/models"
	"github.com/dmitrijs2005/credittransfer/internal/client/review"
	"github.com/dmitrijs2005/credittransfer/internal/client/session"
)

const dateLayout = "2006-01-02"

func renderIdentity(w io.Writer, id models.Identity, roles []session.Role, landing session.Screen) {
	names := make([]string, len(roles))
	for i, r := range roles {
		names[i] = string(r)
	}
	fmt.Fprintf(w, "user:    %s (id %d)\n", id.Username, id.UserID)
	fmt.Fprintf(w, "roles:   %s\n", strings.Join(names, ", "))
	fmt.Fprintf(w, "landing: %s\n", landing)
}

func renderRequestList(w io.Writer, reqs []models.TransferRequest) {
	if len(reqs) == 0 {
		fmt.Fprintln(w, "No requests.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSTUDENT\tSTUDENT ID\tCURRICULUM\tITEMS\tSTATUS\tSUBMITTED")
	for _, r := range reqs {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\t%s\t%s\n",
			r.ID,
			r.Student.FullName(),
			r.Student.StudentID(),
			r.CurriculumName(),
			len(r.Items),
			r.Status.Label(),
			formatDate(r.CreatedAt),
		)
	}
	_ = tw.Flush()
}

// renderRequest prints the items of a request. Items with an unsaved
// decision are marked with '*'.
func renderRequest(w io.Writer, r models.TransferRequest) {
	fmt.Fprintf(w, "Request #%d  %s (%s)  -> %s\n", r.ID, r.Student.FullName(), r.Student.StudentID(), r.CurriculumName())
	if len(r.Items) == 0 {
		fmt.Fprintln(w, "No items.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "\tITEM\tCOURSE\tCREDITS\tGRADE\tMATCH\tSCORE\tDECISION")
	for _, it := range r.Items {
		mark := " "
		if it.Changed() {
			mark = "*"
		}
		match, score := "-", "manual decision only"
		if review.CanAutoApprove(it) {
			match = it.Comparison.SuggestedCourse.Code
			score = fmt.Sprintf("%s (%s)", review.FormatScore(it.Comparison.SimilarityScore), review.ScoreBand(it.Comparison.SimilarityScore))
		}
		fmt.Fprintf(tw, "%s\t%d\t%s %s\t%d\t%s\t%s\t%s\t%s\n",
			mark,
			it.ID,
			it.OriginalCourse.Code,
			it.OriginalCourse.Name,
			it.OriginalCourse.Credits,
			it.Grade,
			match,
			score,
			it.Status.Label(),
		)
	}
	_ = tw.Flush()
}

// renderComparison prints both course descriptions with shared words
// wrapped in brackets.
func renderComparison(w io.Writer, it models.RequestItem) {
	src := it.OriginalCourse
	fmt.Fprintf(w, "Source: %s %s (%d credits)\n", src.Code, src.Name, src.Credits)

	if !review.CanAutoApprove(it) {
		fmt.Fprintln(w, highlight(src.Description, ""))
		fmt.Fprintln(w, "No comparison result; decide manually.")
		return
	}

	dst := it.Comparison.SuggestedCourse
	score := it.Comparison.SimilarityScore

	fmt.Fprintln(w, highlight(src.Description, dst.Description))
	fmt.Fprintf(w, "\nSuggested: %s %s (%d credits)\n", dst.Code, dst.Name, dst.Credits)
	fmt.Fprintln(w, highlight(dst.Description, src.Description))
	fmt.Fprintf(w, "\nSimilarity: %s [%s]\n", review.FormatScore(score), review.ScoreBand(score).Color())
	if it.Comparison.Explanation != "" {
		fmt.Fprintf(w, "Explanation: %s\n", it.Comparison.Explanation)
	}
}

func highlight(text, reference string) string {
	var b strings.Builder
	for _, seg := range review.Annotate(text, reference) {
		if seg.Match {
			b.WriteString("[" + seg.Text + "]")
			continue
		}
		b.WriteString(seg.Text)
	}
	return b.String()
}

func renderResult(w io.Writer, r models.TransferRequest) {
	fmt.Fprintf(w, "Result for request #%d: %s\n", r.ID, review.AggregateStatus(r.Items).Label())

	var approved, credits int
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ITEM\tCOURSE\tTRANSFERS AS\tCREDITS\tDECISION")
	for _, it := range r.Items {
		target := "-"
		if it.Comparison != nil {
			target = it.Comparison.SuggestedCourse.Code + " " + it.Comparison.SuggestedCourse.Name
		}
		if it.Status == models.StatusApproved {
			approved++
			credits += it.OriginalCourse.Credits
		}
		fmt.Fprintf(tw, "%d\t%s %s\t%s\t%d\t%s\n",
			it.ID, it.OriginalCourse.Code, it.OriginalCourse.Name, target, it.OriginalCourse.Credits, it.Status.Label())
	}
	_ = tw.Flush()
	fmt.Fprintf(w, "Approved %d of %d items, %d credits.\n", approved, len(r.Items), credits)
}

func renderNotifications(w io.Writer, list []models.TransferRequest, updatedAt time.Time) {
	if updatedAt.IsZero() {
		fmt.Fprintln(w, "Notifications not loaded yet.")
		return
	}
	if len(list) == 0 {
		fmt.Fprintln(w, "No new notifications.")
		return
	}
	for _, r := range list {
		fmt.Fprintf(w, "Request #%d (%s) is %s\n", r.ID, formatDate(r.CreatedAt), r.Status.Label())
	}
}

func renderChanges(w io.Writer, changes []review.Change) {
	for _, c := range changes {
		fmt.Fprintf(w, "  item %d: %s -> %s\n", c.ItemID, c.From.Label(), c.To.Label())
	}
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format(dateLayout)
}
