package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joescharf/bugdesk/internal/apitest"
	"github.com/joescharf/bugdesk/internal/models"
	"github.com/joescharf/bugdesk/internal/page"
)

// backendEnv points the commands at a fake backend and captures output.
func backendEnv(t *testing.T, seed ...*models.Bug) (*apitest.Server, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	dir := testEnv(t)
	srv := apitest.NewServer(t, seed...)
	viper.Set("server.url", srv.URL)
	viper.Set("reports.export_dir", dir)

	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	ui.Out, ui.ErrOut = out, errOut

	resetFlags(t)
	return srv, out, errOut
}

func resetFlags(t *testing.T) {
	t.Helper()
	reset := func() {
		dryRun = false
		reviewLang, reviewFile, reviewHTML, reviewEmail, reviewCopy = "", "", "", "", false
		bugTitle, bugDesc, bugSeverity, bugLanguage = "", "", "low", ""
		reportFormat, reportSeverity, reportStatus, reportLanguage = "table", "", "", ""
		reportExport, reportExportDir = false, ""
		insightsSVGDir, openHTML = "", ""
	}
	reset()
	t.Cleanup(reset)
}

func seedBugs() []*models.Bug {
	return []*models.Bug{
		{ID: 1, Title: `Quote "here"`, Severity: models.SeverityHigh, Status: models.StatusOpen, Language: "Go"},
		{ID: 2, Title: "Off by one", Severity: models.SeverityLow, Status: models.StatusResolved, Language: "Java"},
	}
}

func codeFile(t *testing.T, code string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "main.go")
	require.NoError(t, os.WriteFile(p, []byte(code), 0644))
	return p
}

func TestReviewRun_HTML(t *testing.T) {
	srv, _, _ := backendEnv(t)
	reviewFile = codeFile(t, "package main")
	reviewLang = "go"
	out := filepath.Join(t.TempDir(), "review.html")

	require.NoError(t, reviewRun(context.Background(), out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), `<div id="reviewText"><h2>Review</h2>`)
	assert.Contains(t, string(data), ".badge.danger")
	reqs := srv.Requests()
	require.Len(t, reqs, 1)
	assert.JSONEq(t, `{"language":"go","code":"package main"}`, reqs[0].Body)
}

func TestReviewRun_DefaultLanguage(t *testing.T) {
	srv, _, _ := backendEnv(t)
	reviewFile = codeFile(t, "class A {}")

	require.NoError(t, reviewRun(context.Background(), filepath.Join(t.TempDir(), "r.html")))
	assert.Contains(t, srv.Requests()[0].Body, `"language":"java"`)
}

func TestReviewRun_EmptyCodeSendsNothing(t *testing.T) {
	srv, _, errOut := backendEnv(t)
	reviewFile = codeFile(t, "  \n")

	err := reviewRun(context.Background(), "")
	require.Error(t, err)
	assert.True(t, page.IsValidation(err))
	assert.Contains(t, errOut.String(), "Please paste your code first.")
	assert.Empty(t, srv.Requests())
}

func TestReviewRun_ServerError(t *testing.T) {
	srv, _, errOut := backendEnv(t)
	srv.Fail("POST /api/review", http.StatusInternalServerError)
	reviewFile = codeFile(t, "x")

	err := reviewRun(context.Background(), "")
	require.Error(t, err)
	var shown *reportedError
	assert.ErrorAs(t, err, &shown)
	assert.Contains(t, errOut.String(), "500 Internal Server Error")
}

func TestReviewRun_Email(t *testing.T) {
	srv, out, _ := backendEnv(t)
	reviewFile = codeFile(t, "x")
	reviewEmail = "dev@example.com"

	require.NoError(t, reviewRun(context.Background(), ""))
	assert.Equal(t, 1, srv.Count(http.MethodPost, "/api/email/send"))
	assert.Contains(t, out.String(), "✅ Email sent to dev@example.com")
}

func TestReviewRun_EmailDryRun(t *testing.T) {
	srv, _, errOut := backendEnv(t)
	reviewFile = codeFile(t, "x")
	reviewEmail = "dev@example.com"
	dryRun, ui.DryRun = true, true

	require.NoError(t, reviewRun(context.Background(), ""))
	assert.Zero(t, srv.Count(http.MethodPost, "/api/email/send"))
	assert.Contains(t, errOut.String(), "[DRY-RUN]")
}

func TestBugsListRun(t *testing.T) {
	_, out, _ := backendEnv(t, seedBugs()...)

	require.NoError(t, bugsListRun(context.Background()))
	assert.Contains(t, out.String(), "Off by one")
	assert.Contains(t, out.String(), "#2")
}

func TestBugsListRun_Empty(t *testing.T) {
	_, out, _ := backendEnv(t)

	require.NoError(t, bugsListRun(context.Background()))
	assert.Contains(t, out.String(), "No bugs yet.")
}

func TestBugsAddRun(t *testing.T) {
	srv, out, _ := backendEnv(t)
	bugTitle = "Race in cache"
	bugSeverity = "HIGH"

	require.NoError(t, bugsAddRun(context.Background()))

	bugs := srv.Bugs()
	require.Len(t, bugs, 1)
	assert.Equal(t, models.SeverityHigh, bugs[0].Severity)
	assert.Equal(t, "java", bugs[0].Language)
	assert.Contains(t, out.String(), "Race in cache")
}

func TestBugsAddRun_RequiresTitle(t *testing.T) {
	srv, _, errOut := backendEnv(t)

	err := bugsAddRun(context.Background())
	require.Error(t, err)
	assert.Contains(t, errOut.String(), "Title required")
	assert.Zero(t, srv.Count(http.MethodPost, "/api/bugs"))
}

func TestBugsAddRun_InvalidSeverity(t *testing.T) {
	_, _, _ = backendEnv(t)
	bugTitle, bugSeverity = "x", "urgent"
	assert.ErrorContains(t, bugsAddRun(context.Background()), "invalid severity")
}

func TestBugsActionRun(t *testing.T) {
	srv, _, _ := backendEnv(t, seedBugs()...)

	require.NoError(t, bugsActionRun(context.Background(), "progress", "1"))
	assert.Equal(t, models.StatusInProgress, srv.Bugs()[0].Status)

	require.NoError(t, bugsActionRun(context.Background(), "delete", "2"))
	assert.Len(t, srv.Bugs(), 1)
}

func TestBugsActionRun_DryRun(t *testing.T) {
	srv, _, errOut := backendEnv(t, seedBugs()...)
	dryRun, ui.DryRun = true, true

	require.NoError(t, bugsActionRun(context.Background(), "delete", "1"))
	assert.Len(t, srv.Bugs(), 2)
	assert.Contains(t, errOut.String(), "Would delete bug #1")
}

func TestInsightsRun_SVG(t *testing.T) {
	_, out, _ := backendEnv(t, seedBugs()...)
	insightsSVGDir = t.TempDir()

	require.NoError(t, insightsRun(context.Background(), ""))

	for _, name := range []string{"severity.svg", "status.svg", "language.svg"} {
		_, err := os.Stat(filepath.Join(insightsSVGDir, name))
		assert.NoError(t, err, name)
	}
	assert.Contains(t, out.String(), "2 bugs")
	assert.Contains(t, out.String(), "Language")
}

func TestReportRun_FilterAndExport(t *testing.T) {
	_, out, _ := backendEnv(t, seedBugs()...)
	reportSeverity = "high"
	reportExport = true
	reportExportDir = t.TempDir()

	require.NoError(t, reportRun(context.Background(), ""))

	assert.Contains(t, out.String(), "Quote")
	assert.NotContains(t, out.String(), "Off by one")

	matches, err := filepath.Glob(filepath.Join(reportExportDir, "bugs-*.csv"))
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Regexp(t, regexp.MustCompile(`bugs-\d{4}-\d{2}-\d{2}\.csv$`), matches[0])
	data, err := os.ReadFile(matches[0])
	require.NoError(t, err)
	assert.Equal(t, "id,title,severity,status,language\n"+`1,"Quote ""here""",High,Open,Go`, string(data))
}

func TestReportRun_JSON(t *testing.T) {
	_, out, _ := backendEnv(t, seedBugs()...)
	reportFormat = "json"
	reportStatus = "resolved"

	require.NoError(t, reportRun(context.Background(), ""))

	var got []models.Bug
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, int64(2), got[0].ID)
}

func TestReportRun_Markdown(t *testing.T) {
	_, out, _ := backendEnv(t, seedBugs()...)
	reportFormat = "markdown"

	require.NoError(t, reportRun(context.Background(), ""))
	assert.Equal(t, 2, strings.Count(out.String(), "| Java |")+strings.Count(out.String(), "| Go |"))
}

func TestReportRun_MarkdownEscapesPipes(t *testing.T) {
	_, out, _ := backendEnv(t, &models.Bug{ID: 5, Title: "a | b", Severity: models.SeverityLow, Status: models.StatusOpen, Language: "Go"})
	reportFormat = "markdown"

	require.NoError(t, reportRun(context.Background(), ""))
	assert.Contains(t, out.String(), `| 5 | a \| b | Low | Open | Go |`)
}

func TestReportCompletions(t *testing.T) {
	_, _, _ = backendEnv(t, seedBugs()...)
	reportCmd.SetContext(context.Background())

	langs, dir := completeLanguages(reportCmd, nil, "")
	assert.Equal(t, []string{"Go", "Java"}, langs)
	assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, dir)

	sevs, _ := completeSeverities(reportCmd, nil, "")
	assert.Equal(t, []string{"low", "medium", "high"}, sevs)
	for _, s := range sevs {
		_, ok := models.ParseSeverity(s)
		assert.True(t, ok, s)
	}
	sts, _ := completeStatuses(reportCmd, nil, "")
	for _, s := range sts {
		_, ok := models.ParseStatus(s)
		assert.True(t, ok, s)
	}
}

func TestReportCompletions_BackendDown(t *testing.T) {
	srv, _, _ := backendEnv(t)
	reportCmd.SetContext(context.Background())
	srv.Fail("GET /api/bugs", http.StatusInternalServerError)

	langs, dir := completeLanguages(reportCmd, nil, "")
	assert.Nil(t, langs)
	assert.Equal(t, cobra.ShellCompDirectiveError, dir)
}

func TestReportRun_InvalidInputs(t *testing.T) {
	_, _, _ = backendEnv(t)
	reportStatus = "blocked"
	assert.ErrorContains(t, reportRun(context.Background(), ""), "invalid status")

	reportStatus, reportFormat = "", "xml"
	assert.ErrorContains(t, reportRun(context.Background(), ""), "unknown format")
}

func TestOpenRun_ConfiguredPage(t *testing.T) {
	srv, _, _ := backendEnv(t, seedBugs()...)
	viper.Set("page", "insights")
	openHTML = filepath.Join(t.TempDir(), "insights.html")

	require.NoError(t, openRun(context.Background(), ""))

	data, err := os.ReadFile(openHTML)
	require.NoError(t, err)
	assert.Contains(t, string(data), `data-page="insights"`)
	assert.Equal(t, 1, srv.Count(http.MethodGet, "/api/bugs"))
}

func TestOpenRun_ArgumentWins(t *testing.T) {
	_, _, _ = backendEnv(t, seedBugs()...)
	viper.Set("page", "insights")
	openHTML = filepath.Join(t.TempDir(), "bugs.html")

	require.NoError(t, openRun(context.Background(), "bugs"))
	data, err := os.ReadFile(openHTML)
	require.NoError(t, err)
	assert.Contains(t, string(data), `id="bugTbody"`)
}

func TestOpenRun_UnknownMode(t *testing.T) {
	srv, _, _ := backendEnv(t)
	err := openRun(context.Background(), "dashboard")
	assert.ErrorContains(t, err, "unknown page mode")
	assert.Empty(t, srv.Requests())
}
