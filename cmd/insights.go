package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/joescharf/bugdesk/internal/chart"
	"github.com/joescharf/bugdesk/internal/output"
	"github.com/joescharf/bugdesk/internal/page"
)

var insightsSVGDir string

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Chart bugs by severity, status and language",
	RunE: func(cmd *cobra.Command, args []string) error {
		return insightsRun(cmd.Context(), "")
	},
}

func init() {
	insightsCmd.Flags().StringVar(&insightsSVGDir, "svg-dir", "", "Also write the charts as SVG files here (default: insights.svg_dir)")
	rootCmd.AddCommand(insightsCmd)
}

func insightsRun(ctx context.Context, htmlOut string) error {
	if htmlOut != "" {
		view := page.NewHTMLView()
		if _, err := page.NewInsightsController(backend(), view).Load(ctx); err != nil {
			return err
		}
		return writeHTML(htmlOut, view, page.ModeInsights)
	}

	in, err := page.NewInsightsController(backend(), insightsTermView{}).Load(ctx)
	if err != nil {
		return reported(err)
	}

	dir := insightsSVGDir
	if dir == "" {
		dir = viper.GetString("insights.svg_dir")
	}
	if dir == "" {
		return nil
	}
	if dryRun {
		ui.DryRunMsg("Would write %d charts to %s", len(in.Charts()), dir)
		return nil
	}
	paths, err := chart.WriteFiles(ctx, dir, in.Charts())
	if err != nil {
		return err
	}
	for _, p := range paths {
		ui.Success("Wrote %s", output.Cyan(p))
	}
	return nil
}
