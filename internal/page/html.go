package page

import (
	"bytes"
	"html/template"
	"io"
	"sync"

	"github.com/joescharf/bugdesk/internal/chart"
	"github.com/joescharf/bugdesk/internal/markdown"
	"github.com/joescharf/bugdesk/internal/models"
	"github.com/joescharf/bugdesk/internal/render"
)

// HTMLView renders every page into the markup a browser page would hold.
// It implements ReviewView, BugsView, InsightsView and ReportsView, and can
// write the active page out as a standalone document.
type HTMLView struct {
	// Answer is returned by Prompt. An empty Answer cancels the prompt.
	Answer string

	mu        sync.Mutex
	notice    template.HTML
	review    template.HTML
	rows      template.HTML
	empty     bool
	modal     bool
	cleared   int
	scrolled  int
	alerts    []string
	insights  *Insights
	report    template.HTML
	reportLen int
}

// NewHTMLView returns an empty view.
func NewHTMLView() *HTMLView { return &HTMLView{} }

func (v *HTMLView) ShowLoading(msg string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.notice, v.review = render.LoadingHTML(msg), ""
}

func (v *HTMLView) ShowError(msg string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.notice, v.review = render.ErrorHTML(msg), ""
}

func (v *HTMLView) ShowReview(res markdown.Result) {
	v.mu.Lock()
	defer v.mu.Unlock()
	// Result.HTML has already been sanitized.
	v.notice, v.review = "", template.HTML(res.HTML)
}

func (v *HTMLView) ScrollIntoView() {
	v.mu.Lock()
	v.scrolled++
	v.mu.Unlock()
}

func (v *HTMLView) Prompt(string) (string, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.Answer, v.Answer != ""
}

func (v *HTMLView) Alert(msg string) {
	v.mu.Lock()
	v.alerts = append(v.alerts, msg)
	v.mu.Unlock()
}

func (v *HTMLView) RenderRows(rows []render.BugRow) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.notice, v.rows = "", render.BugRowsHTML(rows)
}

func (v *HTMLView) ShowEmpty(empty bool) {
	v.mu.Lock()
	v.empty = empty
	v.mu.Unlock()
}

func (v *HTMLView) ShowModal(visible bool) {
	v.mu.Lock()
	v.modal = visible
	v.mu.Unlock()
}

func (v *HTMLView) ClearDraft() {
	v.mu.Lock()
	v.cleared++
	v.mu.Unlock()
}

func (v *HTMLView) ShowInsights(in Insights) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.notice, v.insights = "", &in
}

func (v *HTMLView) RenderReport(rows []*models.Bug) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.notice, v.report, v.reportLen = "", render.ReportRowsHTML(rows), len(rows)
}

// ReviewRegion returns the content of the review region.
func (v *HTMLView) ReviewRegion() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return string(v.notice + v.review)
}

// Notice returns the current inline loading or error message.
func (v *HTMLView) Notice() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return string(v.notice)
}

// Rows returns the bugs table body.
func (v *HTMLView) Rows() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return string(v.rows)
}

// Empty reports whether the bugs empty state is shown.
func (v *HTMLView) Empty() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.empty
}

// ModalShown reports whether the creation modal is shown.
func (v *HTMLView) ModalShown() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.modal
}

// DraftsCleared returns how many times the modal draft was cleared.
func (v *HTMLView) DraftsCleared() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.cleared
}

// Scrolled returns how many times the review was scrolled into view.
func (v *HTMLView) Scrolled() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.scrolled
}

// Alerts returns every alert shown so far.
func (v *HTMLView) Alerts() []string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]string(nil), v.alerts...)
}

// Insights returns the last insights shown, if any.
func (v *HTMLView) Insights() (Insights, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.insights == nil {
		return Insights{}, false
	}
	return *v.insights, true
}

// Report returns the report table body.
func (v *HTMLView) Report() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return string(v.report)
}

type chartPanel struct {
	Title string
	SVG   template.HTML
}

type documentData struct {
	Mode        Mode
	CSS         template.CSS
	Notice      template.HTML
	Review      template.HTML
	Rows        template.HTML
	Empty       bool
	Report      template.HTML
	ReportEmpty bool
	Charts      []chartPanel
}

var documentTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>bugdesk · {{.Mode}}</title>
<style>{{.CSS}}</style>
</head>
<body data-page="{{.Mode}}">
{{- if eq .Mode "review"}}
<div id="reviewText">{{.Notice}}{{.Review}}</div>
{{- else if eq .Mode "bugs"}}
{{.Notice}}
<table><tbody id="bugTbody">{{.Rows}}</tbody></table>
<div id="bugEmpty"{{if not .Empty}} class="hidden"{{end}}>No bugs yet.</div>
{{- else if eq .Mode "insights"}}
{{.Notice}}
{{range .Charts}}<figure><figcaption>{{.Title}}</figcaption>{{.SVG}}</figure>
{{end}}
{{- else if eq .Mode "reports"}}
{{.Notice}}
<table><tbody id="rTbody">{{.Report}}</tbody></table>
<div id="rEmpty"{{if not .ReportEmpty}} class="hidden"{{end}}>No matching bugs.</div>
{{- end}}
</body>
</html>
`))

// WriteDocument writes the page for mode as a standalone HTML document.
// css is inlined into the head, e.g. the highlighter stylesheet.
func (v *HTMLView) WriteDocument(w io.Writer, mode Mode, css string) error {
	v.mu.Lock()
	data := documentData{
		Mode:        mode,
		CSS:         template.CSS(css),
		Notice:      v.notice,
		Review:      v.review,
		Rows:        v.rows,
		Empty:       v.empty,
		Report:      v.report,
		ReportEmpty: v.reportLen == 0,
	}
	in := v.insights
	v.mu.Unlock()

	if in != nil {
		for _, cfg := range in.Charts() {
			var buf bytes.Buffer
			if err := chart.WriteSVG(&buf, cfg); err != nil {
				return err
			}
			data.Charts = append(data.Charts, chartPanel{Title: cfg.Title, SVG: template.HTML(buf.String())})
		}
	}
	return documentTmpl.Execute(w, data)
}
