package review

import (
	"fmt"

	"github.com/dmitrijs2005/credittransfer/internal/client/models"
)

type Band string

const (
	BandHigh   Band = "high"
	BandMedium Band = "medium"
	BandLow    Band = "low"
)

// Color is the traffic-light color of the band.
func (b Band) Color() string {
	switch b {
	case BandHigh:
		return "green"
	case BandMedium:
		return "orange"
	default:
		return "red"
	}
}

// ScoreBand classifies a similarity score in [0, 1].
func ScoreBand(score float64) Band {
	switch {
	case score > 0.8:
		return BandHigh
	case score > 0.5:
		return BandMedium
	default:
		return BandLow
	}
}

// FormatScore renders a [0, 1] score as a percentage with two decimals.
func FormatScore(score float64) string {
	return fmt.Sprintf("%.2f%%", score*100)
}

// CanAutoApprove reports whether an item has a comparison result to base an
// automatic decision on.
func CanAutoApprove(item models.RequestItem) bool {
	return item.Comparison != nil
}

// AggregateStatus derives the request-level status from item decisions.
func AggregateStatus(items []models.RequestItem) models.Status {
	if len(items) == 0 {
		return models.StatusPending
	}

	var approved, rejected int
	for _, it := range items {
		switch it.Status {
		case models.StatusApproved:
			approved++
		case models.StatusRejected:
			rejected++
		default:
			return models.StatusPending
		}
	}

	switch {
	case approved == len(items):
		return models.StatusApproved
	case rejected == len(items):
		return models.StatusRejected
	default:
		return models.StatusPartiallyApproved
	}
}
