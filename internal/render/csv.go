package render

import (
	"strconv"
	"strings"
	"time"

	"github.com/joescharf/bugdesk/internal/models"
)

// CSVHeader is the header row of a report export.
var CSVHeader = []string{"id", "title", "severity", "status", "language"}

// ExportCSV serializes bugs with a header row. Titles are always quoted with
// embedded quotes doubled; the other columns are written as-is.
func ExportCSV(bugs []*models.Bug) string {
	lines := make([]string, 0, len(bugs)+1)
	lines = append(lines, strings.Join(CSVHeader, ","))
	for _, b := range bugs {
		lines = append(lines, strings.Join([]string{
			strconv.FormatInt(b.ID, 10),
			`"` + strings.ReplaceAll(b.Title, `"`, `""`) + `"`,
			string(b.Severity),
			string(b.Status),
			b.Language,
		}, ","))
	}
	return strings.Join(lines, "\n")
}

// CSVFileName returns the download name for an export made at t.
func CSVFileName(t time.Time) string {
	return "bugs-" + t.UTC().Format("2006-01-02") + ".csv"
}
