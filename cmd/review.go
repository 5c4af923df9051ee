package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/joescharf/bugdesk/internal/page"
)

var (
	reviewLang  string
	reviewFile  string
	reviewHTML  string
	reviewEmail string
	reviewCopy  bool
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Submit code for AI review",
	Long: `Submit code for review and render the result.

Code is read from --file, or from stdin when --file is "-" or omitted.
The review is printed to the terminal, or written as an HTML page with
--html. --email mails the plain-text review and --copy puts it on the
clipboard.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return reviewRun(cmd.Context(), reviewHTML)
	},
}

func init() {
	reviewCmd.Flags().StringVarP(&reviewLang, "lang", "l", "", "Language of the code (default: review.language)")
	reviewCmd.Flags().StringVarP(&reviewFile, "file", "f", "", `File to review ("-" for stdin)`)
	reviewCmd.Flags().StringVar(&reviewHTML, "html", "", "Write the rendered review to this HTML file")
	reviewCmd.Flags().StringVar(&reviewEmail, "email", "", "Email the review to this address")
	reviewCmd.Flags().BoolVar(&reviewCopy, "copy", false, "Copy the plain-text review to the clipboard")
	rootCmd.AddCommand(reviewCmd)
}

func readCode() (string, error) {
	if reviewFile != "" && reviewFile != "-" {
		data, err := os.ReadFile(reviewFile)
		if err != nil {
			return "", fmt.Errorf("read code: %w", err)
		}
		return string(data), nil
	}
	if stdinIsTerminal() {
		return "", fmt.Errorf("no code to review: pass --file or pipe code on stdin")
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

func reviewRun(ctx context.Context, htmlOut string) error {
	code, err := readCode()
	if err != nil {
		return err
	}
	lang := reviewLang
	if lang == "" {
		lang = viper.GetString("review.language")
	}

	md := newRenderer()
	var (
		view     page.ReviewView
		htmlView *page.HTMLView
	)
	if htmlOut != "" {
		htmlView = page.NewHTMLView()
		htmlView.Answer = reviewEmail
		view = htmlView
	} else {
		view = &reviewTermView{md: md, to: reviewEmail}
	}

	rc := page.NewReviewController(backend(), md, view, viper.GetString("email.subject"))
	if err := rc.Submit(ctx, lang, code); err != nil {
		if htmlView != nil {
			_ = writeHTML(htmlOut, htmlView, page.ModeReview)
			return err
		}
		return reported(err)
	}

	if htmlView != nil {
		if err := writeHTML(htmlOut, htmlView, page.ModeReview); err != nil {
			return err
		}
	}

	if reviewCopy {
		res, _ := rc.Rendered()
		if err := clipboard.WriteAll(res.Text); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		ui.Success("Review copied to clipboard")
	}

	if reviewEmail != "" {
		if err := rc.EmailReview(ctx); err != nil {
			if htmlView != nil {
				return err
			}
			return reported(err)
		}
		if htmlView != nil {
			for _, a := range htmlView.Alerts() {
				ui.Info("%s", a)
			}
		}
	}
	return nil
}
