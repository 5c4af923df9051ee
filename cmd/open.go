package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/joescharf/bugdesk/internal/page"
)

var openHTML string

var openCmd = &cobra.Command{
	Use:       "open [review|bugs|insights|reports]",
	Short:     "Open a page",
	ValidArgs: []string{"review", "bugs", "insights", "reports"},
	Long: `Open one page. Without an argument the configured page is used
(config key "page", env BUGDESK_PAGE). --html writes the page as an HTML
document instead of showing it in the terminal.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var arg string
		if len(args) > 0 {
			arg = args[0]
		}
		return openRun(cmd.Context(), arg)
	},
}

func init() {
	openCmd.Flags().StringVar(&openHTML, "html", "", "Write the page to this HTML file")
	rootCmd.AddCommand(openCmd)
}

func openRun(ctx context.Context, arg string) error {
	mode, err := page.DetectMode(arg, viper.GetString("page"))
	if err != nil {
		return err
	}
	ui.VerboseLog("opening %s page against %s", mode, viper.GetString("server.url"))

	return page.Bootstrap(ctx, mode, page.Pages{
		Review:   func(ctx context.Context) error { return reviewRun(ctx, openHTML) },
		Bugs:     func(ctx context.Context) error { return bugsRun(ctx, openHTML) },
		Insights: func(ctx context.Context) error { return insightsRun(ctx, openHTML) },
		Reports:  func(ctx context.Context) error { return reportRun(ctx, openHTML) },
	})
}
