package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joescharf/bugdesk/internal/models"
	"github.com/joescharf/bugdesk/internal/render"
)

func newTestUI() (*UI, *bytes.Buffer, *bytes.Buffer) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	return &UI{Out: out, ErrOut: errOut}, out, errOut
}

func TestInfo(t *testing.T) {
	u, out, _ := newTestUI()
	u.Info("hello %s", "world")
	assert.Contains(t, out.String(), "hello world")
}

func TestSuccess(t *testing.T) {
	u, out, _ := newTestUI()
	u.Success("done %d", 42)
	assert.Contains(t, out.String(), "done 42")
}

func TestWarning(t *testing.T) {
	u, _, errOut := newTestUI()
	u.Warning("careful %s", "now")
	assert.Contains(t, errOut.String(), "careful now")
}

func TestError(t *testing.T) {
	u, _, errOut := newTestUI()
	u.Error("failed %s", "badly")
	assert.Contains(t, errOut.String(), "failed badly")
}

func TestVerboseLog_Enabled(t *testing.T) {
	u, out, _ := newTestUI()
	u.Verbose = true
	u.VerboseLog("detail %d", 1)
	assert.Contains(t, out.String(), "detail 1")
}

func TestVerboseLog_Disabled(t *testing.T) {
	u, out, _ := newTestUI()
	u.Verbose = false
	u.VerboseLog("detail %d", 1)
	assert.Empty(t, out.String())
}

func TestDryRunMsg_Enabled(t *testing.T) {
	u, _, errOut := newTestUI()
	u.DryRun = true
	u.DryRunMsg("would create %s", "file")
	assert.Contains(t, errOut.String(), "[DRY-RUN]")
	assert.Contains(t, errOut.String(), "would create file")
}

func TestDryRunMsg_Disabled(t *testing.T) {
	u, _, errOut := newTestUI()
	u.DryRun = false
	u.DryRunMsg("would create %s", "file")
	assert.Empty(t, errOut.String())
}

func TestCyan(t *testing.T) {
	assert.Contains(t, Cyan("test"), "test")
}

func TestBadgeColors(t *testing.T) {
	prev := color.NoColor
	color.NoColor = false
	t.Cleanup(func() { color.NoColor = prev })

	assert.Equal(t, red("High"), SeverityColor(models.SeverityHigh))
	assert.Equal(t, yellow("Medium"), SeverityColor(models.SeverityMedium))
	assert.Equal(t, green("Low"), SeverityColor(models.SeverityLow))
	assert.Equal(t, red("Open"), StatusColor(models.StatusOpen))
	assert.Equal(t, yellow("In Progress"), StatusColor(models.StatusInProgress))
	assert.Equal(t, green("Resolved"), StatusColor(models.StatusResolved))
	assert.Equal(t, "Blocked", StatusColor(models.Status("Blocked")))
}

func TestTable(t *testing.T) {
	u, out, _ := newTestUI()
	table := u.Table([]string{"Name", "Status"})
	require.NotNil(t, table)

	require.NoError(t, table.Append([]string{"#1", "Open"}))
	require.NoError(t, table.Append([]string{"#2", "Resolved"}))
	require.NoError(t, table.Render())

	result := out.String()
	assert.Contains(t, result, "#1")
	assert.Contains(t, result, "Resolved")
}

func TestBugTable(t *testing.T) {
	u, out, _ := newTestUI()
	err := u.BugTable(render.BugRows([]*models.Bug{
		{ID: 7, Title: "Nil deref", Severity: models.SeverityHigh, Status: models.StatusOpen, Language: "Go"},
	}))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], "#7")
	assert.Contains(t, lines[1], "Nil deref")
	assert.Contains(t, lines[1], "Go")
}
