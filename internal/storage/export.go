package storage

import (
	"time"

	"github.com/raphi011/runlog/internal/run"
)

// ExportFileName is the default export file written into the data directory.
const ExportFileName = "runs-export.json"

// ExportedRun is the JSON shape of a run in an export file.
type ExportedRun struct {
	ID            int64   `json:"id"`
	Date          string  `json:"date"`
	TimeStarted   string  `json:"time_started"`
	DistanceMiles float64 `json:"distance_miles"`
	Note          string  `json:"note,omitempty"`
	CreatedAt     string  `json:"created_at"`
}

// Export is the document written by ExportRuns.
type Export struct {
	ExportedAt string        `json:"exported_at"`
	Runs       []ExportedRun `json:"runs"`
}

// ExportRuns writes runs to path as JSON, replacing any previous export atomically.
func ExportRuns(path string, runs []run.Run, now time.Time) error {
	doc := Export{
		ExportedAt: now.UTC().Format(time.RFC3339),
		Runs:       make([]ExportedRun, 0, len(runs)),
	}
	for _, r := range runs {
		doc.Runs = append(doc.Runs, ExportedRun{
			ID:            r.ID,
			Date:          run.FormatDate(r.Date),
			TimeStarted:   run.FormatTime(r.TimeStarted),
			DistanceMiles: r.DistanceMiles,
			Note:          r.Note,
			CreatedAt:     r.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return SaveJSON(path, doc)
}
