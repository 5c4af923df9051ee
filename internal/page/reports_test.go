package page

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joescharf/bugdesk/internal/models"
)

func loadedReports(t *testing.T) (*ReportsController, *HTMLView) {
	t.Helper()
	_, c, view := testEnv(t, seedBugs()...)
	rc := NewReportsController(c, view)
	require.NoError(t, rc.Load(ctx()))
	return rc, view
}

func TestReportsLoad_RendersUnfiltered(t *testing.T) {
	rc, view := loadedReports(t)
	assert.Equal(t, 3, strings.Count(view.Report(), "<tr>"))
	assert.Len(t, rc.Rows(), 3)
}

func TestReportsLanguages(t *testing.T) {
	rc, _ := loadedReports(t)
	assert.Equal(t, []string{"Go", "Java"}, rc.Languages())
}

func TestApplyFilter_EmptyIsIdentity(t *testing.T) {
	rc, _ := loadedReports(t)
	got := rc.ApplyFilter(models.ReportFilter{})
	assert.Equal(t, rc.Records().All(), got)
}

func TestApplyFilter_SingleField(t *testing.T) {
	rc, _ := loadedReports(t)
	tests := []struct {
		name   string
		filter models.ReportFilter
		ids    []int64
	}{
		{"severity", models.ReportFilter{Severity: models.SeverityHigh}, []int64{1}},
		{"status", models.ReportFilter{Status: models.StatusOpen}, []int64{1, 3}},
		{"language", models.ReportFilter{Language: "Go"}, []int64{1, 3}},
		{"no match", models.ReportFilter{Language: "go"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ids []int64
			for _, b := range rc.ApplyFilter(tt.filter) {
				ids = append(ids, b.ID)
			}
			assert.Equal(t, tt.ids, ids)
		})
	}
	assert.Equal(t, 3, rc.Records().Len(), "filtering never changes the store")
}

func TestSetFilter_Rerenders(t *testing.T) {
	rc, view := loadedReports(t)
	rc.SetFilter(models.ReportFilter{Language: "Java"})

	assert.Equal(t, models.ReportFilter{Language: "Java"}, rc.Filter())
	assert.Equal(t, 1, strings.Count(view.Report(), "<tr>"))
	assert.Contains(t, view.Report(), "Off by one")
}

func TestExportCSV(t *testing.T) {
	rc, _ := loadedReports(t)
	rc.now = func() time.Time { return time.Date(2026, 3, 9, 22, 0, 0, 0, time.UTC) }
	dir := t.TempDir()

	path, err := rc.ExportCSV(dir, rc.ApplyFilter(models.ReportFilter{Language: "Go"}))
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "bugs-2026-03-09.csv"), path)
	assert.Regexp(t, regexp.MustCompile(`bugs-\d{4}-\d{2}-\d{2}\.csv$`), path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t,
		"id,title,severity,status,language\n"+
			`1,"Nil map write",High,Open,Go`+"\n"+
			`3,"Leaky handle",Medium,Open,Go`,
		string(data))
}

func TestExportCSV_MissingDir(t *testing.T) {
	rc, _ := loadedReports(t)
	_, err := rc.ExportCSV(filepath.Join(t.TempDir(), "nope"), nil)
	assert.Error(t, err)
}
