package page

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteDocument_Review(t *testing.T) {
	_, c, view := testEnv(t)
	md := newRenderer()
	require.NoError(t, NewReviewController(c, md, view, "").Submit(ctx(), "go", "x := 1"))

	var b strings.Builder
	require.NoError(t, view.WriteDocument(&b, ModeReview, md.Highlighter().CSS()))
	out := b.String()

	assert.Contains(t, out, `data-page="review"`)
	assert.Contains(t, out, `<div id="reviewText"><h2>Review</h2>`)
	assert.Contains(t, out, ".chroma")
}

func TestWriteDocument_Bugs(t *testing.T) {
	_, c, view := testEnv(t)
	require.NoError(t, NewBugsController(c, view).Load(ctx()))

	var b strings.Builder
	require.NoError(t, view.WriteDocument(&b, ModeBugs, ""))
	assert.Contains(t, b.String(), `<div id="bugEmpty">No bugs yet.</div>`)
}

func TestWriteDocument_InsightsEmbedsCharts(t *testing.T) {
	_, c, view := testEnv(t, seedBugs()...)
	_, err := NewInsightsController(c, view).Load(ctx())
	require.NoError(t, err)

	var b strings.Builder
	require.NoError(t, view.WriteDocument(&b, ModeInsights, ""))
	out := b.String()
	assert.Equal(t, 3, strings.Count(out, "<figure>"))
	assert.Equal(t, 3, strings.Count(out, "</svg>"))
}

func TestWriteDocument_Reports(t *testing.T) {
	rc, view := loadedReports(t)
	rc.SetFilter(rc.Filter())

	var b strings.Builder
	require.NoError(t, view.WriteDocument(&b, ModeReports, ""))
	assert.Contains(t, b.String(), `<tbody id="rTbody"><tr>`)
	assert.Contains(t, b.String(), `<div id="rEmpty" class="hidden">`)
}
