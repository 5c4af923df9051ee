package apitest

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joescharf/bugdesk/internal/client"
	"github.com/joescharf/bugdesk/internal/models"
)

func TestServer_BugLifecycle(t *testing.T) {
	srv := NewServer(t, &models.Bug{ID: 4, Title: "seeded", Severity: models.SeverityLow, Status: models.StatusOpen})
	c := client.New(srv.URL)
	ctx := context.Background()

	require.NoError(t, c.CreateBug(ctx, models.NewBug{Title: "new", Severity: models.SeverityHigh, Language: "Go"}))
	bugs, err := c.ListBugs(ctx)
	require.NoError(t, err)
	require.Len(t, bugs, 2)
	assert.Equal(t, int64(5), bugs[1].ID, "ids continue after the seed")
	assert.Equal(t, models.StatusOpen, bugs[1].Status)

	require.NoError(t, c.UpdateStatus(ctx, 5, models.StatusResolved))
	require.NoError(t, c.DeleteBug(ctx, 4))

	remaining := srv.Bugs()
	require.Len(t, remaining, 1)
	assert.Equal(t, models.StatusResolved, remaining[0].Status)

	assert.Equal(t, 1, srv.Count(http.MethodGet, "/api/bugs"))
	assert.Equal(t, 1, srv.Count(http.MethodDelete, "/api/bugs/4"))
}

func TestServer_Fail(t *testing.T) {
	srv := NewServer(t)
	srv.Fail("GET /api/bugs", http.StatusServiceUnavailable)

	_, err := client.New(srv.URL).ListBugs(context.Background())
	require.Error(t, err)
	assert.Equal(t, "503 Service Unavailable", err.Error())
}
