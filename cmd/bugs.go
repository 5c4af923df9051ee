package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/joescharf/bugdesk/internal/models"
	"github.com/joescharf/bugdesk/internal/output"
	"github.com/joescharf/bugdesk/internal/page"
	"github.com/joescharf/bugdesk/internal/render"
	"github.com/joescharf/bugdesk/internal/tui"
)

var (
	bugTitle    string
	bugDesc     string
	bugSeverity string
	bugLanguage string
)

var bugsCmd = &cobra.Command{
	Use:   "bugs",
	Short: "Open the bugs board",
	Long: `Open the interactive bugs board.

When stdout is not a terminal the board is printed as a table instead.
Keys: p in progress, r resolve, d delete, n new bug, g reload, q quit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return bugsRun(cmd.Context(), "")
	},
}

var bugsListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List bugs",
	RunE: func(cmd *cobra.Command, args []string) error {
		return bugsListRun(cmd.Context())
	},
}

var bugsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "File a new bug",
	RunE: func(cmd *cobra.Command, args []string) error {
		return bugsAddRun(cmd.Context())
	},
}

func bugActionCmd(use, short string, act render.Action) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <bug-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return bugsActionRun(cmd.Context(), act, args[0])
		},
	}
}

func init() {
	bugsAddCmd.Flags().StringVar(&bugTitle, "title", "", "Bug title (required)")
	bugsAddCmd.Flags().StringVar(&bugDesc, "desc", "", "Bug description")
	bugsAddCmd.Flags().StringVar(&bugSeverity, "severity", "low", "Severity: low, medium, high")
	bugsAddCmd.Flags().StringVar(&bugLanguage, "language", "", "Language tag (default: review.language)")

	bugsCmd.AddCommand(bugsListCmd)
	bugsCmd.AddCommand(bugsAddCmd)
	bugsCmd.AddCommand(bugActionCmd("progress", "Mark a bug in progress", render.ActionProgress))
	bugsCmd.AddCommand(bugActionCmd("resolve", "Mark a bug resolved", render.ActionResolved))
	bugsCmd.AddCommand(bugActionCmd("delete", "Delete a bug", render.ActionDelete))
	rootCmd.AddCommand(bugsCmd)
}

func bugsRun(ctx context.Context, htmlOut string) error {
	if htmlOut != "" {
		view := page.NewHTMLView()
		if err := page.NewBugsController(backend(), view).Load(ctx); err != nil {
			return err
		}
		return writeHTML(htmlOut, view, page.ModeBugs)
	}
	if !stdoutIsTerminal() {
		return bugsListRun(ctx)
	}
	return tui.Run(ctx, backend(), viper.GetString("review.language"))
}

func bugsListRun(ctx context.Context) error {
	bc := page.NewBugsController(backend(), bugsTermView{})
	return reported(bc.Load(ctx))
}

func bugsAddRun(ctx context.Context) error {
	sev, ok := models.ParseSeverity(bugSeverity)
	if !ok {
		return fmt.Errorf("invalid severity %q (use: low, medium, high)", bugSeverity)
	}
	lang := bugLanguage
	if lang == "" {
		lang = viper.GetString("review.language")
	}

	bc := page.NewBugsController(backend(), bugsTermView{})
	bc.Modal().Open()
	err := bc.Save(ctx, models.NewBug{
		Title:       bugTitle,
		Description: bugDesc,
		Severity:    sev,
		Language:    lang,
	})
	if err != nil {
		return reported(err)
	}
	ui.Success("Filed %s", output.Cyan(strconv.Quote(bugTitle)))
	return nil
}

// bugsActionRun dispatches a row action by id, as a click on the row's
// button would, then prints the reloaded board.
func bugsActionRun(ctx context.Context, act render.Action, id string) error {
	bc := page.NewBugsController(backend(), bugsTermView{})
	return reported(bc.HandleClick(ctx, render.Target{Act: string(act), ID: id}))
}
