package page

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"strings"
	"sync"

	"github.com/joescharf/bugdesk/internal/markdown"
	"github.com/joescharf/bugdesk/internal/models"
)

// ReviewState is the review page's lifecycle state.
type ReviewState int

const (
	ReviewIdle ReviewState = iota
	ReviewSubmitting
	ReviewRendered
	ReviewError
)

func (s ReviewState) String() string {
	switch s {
	case ReviewIdle:
		return "idle"
	case ReviewSubmitting:
		return "submitting"
	case ReviewRendered:
		return "rendered"
	case ReviewError:
		return "error"
	}
	return fmt.Sprintf("ReviewState(%d)", int(s))
}

const (
	msgEmptyCode   = "Please paste your code first."
	msgReviewing   = "Reviewing your code..."
	promptEmailTo  = "Send review to (email):"
	emailErrPrefix = "Email error: "
)

// ReviewController submits code for review and renders the result.
type ReviewController struct {
	backend Backend
	md      *markdown.Renderer
	view    ReviewView
	subject string

	mu    sync.Mutex
	state ReviewState
	last  *markdown.Result
}

// NewReviewController creates a review controller. An empty subject uses
// models.DefaultEmailSubject.
func NewReviewController(b Backend, md *markdown.Renderer, v ReviewView, subject string) *ReviewController {
	if subject == "" {
		subject = models.DefaultEmailSubject
	}
	return &ReviewController{backend: b, md: md, view: v, subject: subject}
}

// State returns the current lifecycle state.
func (c *ReviewController) State() ReviewState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Rendered returns the review currently on screen, if any.
func (c *ReviewController) Rendered() (markdown.Result, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.last == nil {
		return markdown.Result{}, false
	}
	return *c.last, true
}

func (c *ReviewController) set(state ReviewState, last *markdown.Result) {
	c.mu.Lock()
	c.state = state
	c.last = last
	c.mu.Unlock()
}

// Submit sends code for review. Whitespace-only code is rejected with a
// *ValidationError before any request is made. Failures are shown inline
// and returned; the controller stays in ReviewError until the next Submit
// returns it to idle.
func (c *ReviewController) Submit(ctx context.Context, language, code string) error {
	c.mu.Lock()
	if c.state == ReviewError {
		c.state = ReviewIdle
	}
	c.mu.Unlock()

	if strings.TrimSpace(code) == "" {
		c.view.ShowError(msgEmptyCode)
		return &ValidationError{Field: "code", Message: msgEmptyCode}
	}

	c.set(ReviewSubmitting, nil)
	c.view.ShowLoading(msgReviewing)

	text, err := c.backend.Review(ctx, models.ReviewRequest{Language: language, Code: code})
	if err != nil {
		c.set(ReviewError, nil)
		c.view.ShowError(err.Error())
		return fmt.Errorf("review: %w", err)
	}

	res, err := c.md.Render(text, language)
	if err != nil {
		slog.Warn("review markdown failed, showing raw text", "error", err)
		res = markdown.Result{
			Markdown: text,
			HTML:     "<pre>" + html.EscapeString(text) + "</pre>",
			Text:     strings.TrimSpace(text),
		}
	}

	c.set(ReviewRendered, &res)
	c.view.ShowReview(res)
	c.view.ScrollIntoView()
	return nil
}

// EmailReview prompts for a destination and mails the rendered review's
// plain text, or a placeholder when nothing is rendered. An empty or
// cancelled prompt sends nothing. The backend's reply is alerted verbatim.
func (c *ReviewController) EmailReview(ctx context.Context) error {
	to, ok := c.view.Prompt(promptEmailTo)
	to = strings.TrimSpace(to)
	if !ok || to == "" {
		return nil
	}

	body := models.NoReviewPlaceholder
	if res, ok := c.Rendered(); ok && res.Text != "" {
		body = res.Text
	}

	ack, err := c.backend.SendEmail(ctx, to, c.subject, body)
	if err != nil {
		c.view.Alert(emailErrPrefix + err.Error())
		return fmt.Errorf("send email: %w", err)
	}
	c.view.Alert(ack)
	return nil
}
