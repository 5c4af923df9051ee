package page

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joescharf/bugdesk/internal/apitest"
	"github.com/joescharf/bugdesk/internal/client"
	"github.com/joescharf/bugdesk/internal/markdown"
	"github.com/joescharf/bugdesk/internal/models"
)

func testEnv(t *testing.T, seed ...*models.Bug) (*apitest.Server, *client.Client, *HTMLView) {
	t.Helper()
	srv := apitest.NewServer(t, seed...)
	return srv, client.New(srv.URL), NewHTMLView()
}

func seedBugs() []*models.Bug {
	return []*models.Bug{
		{ID: 1, Title: "Nil map write", Severity: models.SeverityHigh, Status: models.StatusOpen, Language: "Go"},
		{ID: 2, Title: "Off by one", Severity: models.SeverityLow, Status: models.StatusInProgress, Language: "Java"},
		{ID: 3, Title: "Leaky handle", Severity: models.SeverityMedium, Status: models.StatusOpen, Language: "Go"},
	}
}

func newRenderer() *markdown.Renderer { return markdown.New("monokai") }

func ctx() context.Context { return context.Background() }

func requireNoRequests(t *testing.T, srv *apitest.Server, method, path string) {
	t.Helper()
	require.Zero(t, srv.Count(method, path), "%s %s should not have been sent", method, path)
}

