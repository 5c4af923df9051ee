package render

import (
	"bytes"
	"html/template"

	"github.com/joescharf/bugdesk/internal/models"
)

// BugRow is the display form of one bug on the bugs board.
type BugRow struct {
	ID            int64
	Title         string
	Severity      string
	SeverityClass string
	Status        string
	StatusClass   string
	Language      string
}

// BugRows derives one row per bug, in order.
func BugRows(bugs []*models.Bug) []BugRow {
	rows := make([]BugRow, 0, len(bugs))
	for _, b := range bugs {
		rows = append(rows, BugRow{
			ID:            b.ID,
			Title:         b.Title,
			Severity:      string(b.Severity),
			SeverityClass: SeverityClass(b.Severity),
			Status:        string(b.Status),
			StatusClass:   StatusClass(b.Status),
			Language:      b.Language,
		})
	}
	return rows
}

// All record-supplied text goes through html/template escaping.
var (
	bugRowsTmpl = template.Must(template.New("bugRows").Parse(
		`{{range .}}<tr>` +
			`<td>#{{.ID}}</td>` +
			`<td>{{.Title}}</td>` +
			`<td><span class="badge {{.SeverityClass}}">{{.Severity}}</span></td>` +
			`<td><span class="badge {{.StatusClass}}">{{.Status}}</span></td>` +
			`<td>{{.Language}}</td>` +
			`<td class="right">` +
			`<button class="btn" data-act="progress" data-id="{{.ID}}">In Progress</button>` +
			`<button class="btn" data-act="resolved" data-id="{{.ID}}">Resolve</button>` +
			`<button class="btn danger" data-act="delete" data-id="{{.ID}}">Delete</button>` +
			`</td></tr>{{end}}`))

	reportRowsTmpl = template.Must(template.New("reportRows").Parse(
		`{{range .}}<tr>` +
			`<td>#{{.ID}}</td><td>{{.Title}}</td><td>{{.Severity}}</td><td>{{.Status}}</td><td>{{.Language}}</td>` +
			`</tr>{{end}}`))

	messageTmpl = template.Must(template.New("message").Parse(
		`<span class="{{.Class}}">{{.Icon}} {{.Text}}</span>`))
)

func execute(t *template.Template, data any) string {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		// The templates are static and only read plain fields.
		return ""
	}
	return buf.String()
}

// BugRowsHTML renders the bugs table body.
func BugRowsHTML(rows []BugRow) template.HTML {
	return template.HTML(execute(bugRowsTmpl, rows))
}

// ReportRowsHTML renders the reports table body.
func ReportRowsHTML(bugs []*models.Bug) template.HTML {
	return template.HTML(execute(reportRowsTmpl, bugs))
}

// ErrorHTML renders an inline error with its visual marker.
func ErrorHTML(msg string) template.HTML {
	return template.HTML(execute(messageTmpl, struct{ Class, Icon, Text string }{"error", "❌", msg}))
}

// LoadingHTML renders an inline loading indicator.
func LoadingHTML(msg string) template.HTML {
	return template.HTML(execute(messageTmpl, struct{ Class, Icon, Text string }{"loading", "🧠", msg}))
}
