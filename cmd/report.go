package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/joescharf/bugdesk/internal/models"
	"github.com/joescharf/bugdesk/internal/output"
	"github.com/joescharf/bugdesk/internal/page"
	"github.com/joescharf/bugdesk/internal/render"
)

var (
	reportFormat    string
	reportSeverity  string
	reportStatus    string
	reportLanguage  string
	reportExport    bool
	reportExportDir string
)

var reportCmd = &cobra.Command{
	Use:     "report",
	Aliases: []string{"reports"},
	Short:   "Filter bugs and export them",
	Long: `Fetch all bugs once, filter them locally and print or export the result.

--format picks the output: table, json, csv or markdown. --export writes
the filtered rows to bugs-YYYY-MM-DD.csv in --export-dir.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return reportRun(cmd.Context(), "")
	},
}

func init() {
	reportCmd.Flags().StringVar(&reportFormat, "format", "table", "Output format: table, json, csv, markdown")
	reportCmd.Flags().StringVar(&reportSeverity, "severity", "", "Only bugs with this severity")
	reportCmd.Flags().StringVar(&reportStatus, "status", "", "Only bugs with this status")
	reportCmd.Flags().StringVar(&reportLanguage, "language", "", "Only bugs with this language (exact match)")
	reportCmd.Flags().BoolVar(&reportExport, "export", false, "Write the filtered rows to a CSV file")
	reportCmd.Flags().StringVar(&reportExportDir, "export-dir", "", "Directory for --export (default: reports.export_dir)")
	_ = reportCmd.RegisterFlagCompletionFunc("severity", completeSeverities)
	_ = reportCmd.RegisterFlagCompletionFunc("status", completeStatuses)
	_ = reportCmd.RegisterFlagCompletionFunc("language", completeLanguages)
	rootCmd.AddCommand(reportCmd)
}

// mdCell keeps titles from breaking markdown table rows.
var mdCell = strings.NewReplacer("|", `\|`, "\r\n", " ", "\n", " ")

func completeSeverities(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	out := make([]string, 0, len(models.Severities))
	for _, s := range models.Severities {
		out = append(out, strings.ToLower(string(s)))
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}

func completeStatuses(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return []string{"open", "in_progress", "resolved"}, cobra.ShellCompDirectiveNoFileComp
}

// completeLanguages offers the languages present in the current collection.
func completeLanguages(cmd *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	rc := page.NewReportsController(newClient(), quietReportsView{})
	if err := rc.Load(cmd.Context()); err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return rc.Languages(), cobra.ShellCompDirectiveNoFileComp
}

type quietReportsView struct{}

func (quietReportsView) RenderReport([]*models.Bug) {}
func (quietReportsView) ShowError(string)           {}

func reportFilter() (models.ReportFilter, error) {
	var f models.ReportFilter
	if reportSeverity != "" {
		sev, ok := models.ParseSeverity(reportSeverity)
		if !ok {
			return f, fmt.Errorf("invalid severity %q (use: low, medium, high)", reportSeverity)
		}
		f.Severity = sev
	}
	if reportStatus != "" {
		st, ok := models.ParseStatus(reportStatus)
		if !ok {
			return f, fmt.Errorf("invalid status %q (use: open, in_progress, resolved)", reportStatus)
		}
		f.Status = st
	}
	f.Language = reportLanguage
	return f, nil
}

func reportRun(ctx context.Context, htmlOut string) error {
	f, err := reportFilter()
	if err != nil {
		return err
	}

	if htmlOut != "" {
		view := page.NewHTMLView()
		rc := page.NewReportsController(backend(), view)
		if err := rc.Load(ctx); err != nil {
			return err
		}
		rc.SetFilter(f)
		return writeHTML(htmlOut, view, page.ModeReports)
	}

	view := &reportsTermView{}
	rc := page.NewReportsController(backend(), view)
	if err := rc.Load(ctx); err != nil {
		return reported(err)
	}
	rc.SetFilter(f)

	if err := printReport(view.rows); err != nil {
		return err
	}

	if !reportExport {
		return nil
	}
	dir := reportExportDir
	if dir == "" {
		dir = viper.GetString("reports.export_dir")
	}
	if dryRun {
		ui.DryRunMsg("Would export %d bugs to %s", len(view.rows), dir)
		return nil
	}
	path, err := rc.ExportCSV(dir, view.rows)
	if err != nil {
		return err
	}
	ui.Success("Exported %d bugs to %s", len(view.rows), output.Cyan(path))
	return nil
}

func printReport(rows []*models.Bug) error {
	switch reportFormat {
	case "table":
		if len(rows) == 0 {
			ui.Info("No matching bugs.")
			return nil
		}
		return ui.BugTable(render.BugRows(rows))
	case "json":
		enc := json.NewEncoder(ui.Out)
		enc.SetIndent("", "  ")
		if rows == nil {
			rows = []*models.Bug{}
		}
		return enc.Encode(rows)
	case "csv":
		fmt.Fprintln(ui.Out, render.ExportCSV(rows))
		return nil
	case "markdown":
		fmt.Fprintln(ui.Out, "# Bug Report")
		fmt.Fprintln(ui.Out)
		fmt.Fprintln(ui.Out, "| ID | Title | Severity | Status | Language |")
		fmt.Fprintln(ui.Out, "|----|-------|----------|--------|----------|")
		for _, b := range rows {
			fmt.Fprintf(ui.Out, "| %s | %s | %s | %s | %s |\n",
				strconv.FormatInt(b.ID, 10), mdCell.Replace(b.Title), b.Severity, b.Status, mdCell.Replace(b.Language))
		}
		return nil
	default:
		return fmt.Errorf("unknown format: %s (use: table, json, csv, markdown)", reportFormat)
	}
}
