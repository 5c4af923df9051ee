package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/joescharf/bugdesk/internal/models"
)

const (
	reviewPath = "/api/review"
	emailPath  = "/api/email/send"
	bugsPath   = "/api/bugs"
)

func bugPath(id int64) string {
	return fmt.Sprintf("%s/%d", bugsPath, id)
}

func jsonBody(v any) (*bytes.Reader, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}
	return bytes.NewReader(payload), nil
}

// ListBugs fetches the full bug collection.
func (c *Client) ListBugs(ctx context.Context) ([]*models.Bug, error) {
	raw, err := c.RequestJSON(ctx, bugsPath, Options{})
	if err != nil {
		return nil, err
	}
	// An empty acknowledgement means no bugs.
	if string(raw) == "{}" {
		return nil, nil
	}
	var bugs []*models.Bug
	if err := json.Unmarshal(raw, &bugs); err != nil {
		return nil, fmt.Errorf("decode bugs: %w", err)
	}
	return bugs, nil
}

// CreateBug posts a new bug. The response body is ignored beyond success.
func (c *Client) CreateBug(ctx context.Context, nb models.NewBug) error {
	body, err := jsonBody(nb)
	if err != nil {
		return err
	}
	_, err = c.RequestJSON(ctx, bugsPath, Options{Method: http.MethodPost, Body: body})
	return err
}

// UpdateStatus sets the status of bug id.
func (c *Client) UpdateStatus(ctx context.Context, id int64, status models.Status) error {
	body, err := jsonBody(models.StatusUpdate{Status: status})
	if err != nil {
		return err
	}
	_, err = c.RequestJSON(ctx, bugPath(id), Options{Method: http.MethodPut, Body: body})
	return err
}

// DeleteBug removes bug id.
func (c *Client) DeleteBug(ctx context.Context, id int64) error {
	_, err := c.RequestJSON(ctx, bugPath(id), Options{Method: http.MethodDelete})
	return err
}

// Review submits code for review and returns the markdown text the backend
// produced. Unlike the email acknowledgement, a failed status is an
// *HTTPError: an error page is never rendered as a review.
func (c *Client) Review(ctx context.Context, req models.ReviewRequest) (string, error) {
	body, err := jsonBody(req)
	if err != nil {
		return "", err
	}
	return c.requestText(ctx, reviewPath, Options{Method: http.MethodPost, Body: body}, true)
}

// SendEmail asks the backend to mail body to the given address. The
// acknowledgement text is returned as-is.
func (c *Client) SendEmail(ctx context.Context, to, subject, body string) (string, error) {
	q := url.Values{}
	q.Set("to", to)
	q.Set("subject", subject)
	form := url.Values{}
	form.Set("body", body)

	return c.RequestText(ctx, emailPath+"?"+q.Encode(), Options{
		Method: http.MethodPost,
		Header: http.Header{"Content-Type": []string{"application/x-www-form-urlencoded"}},
		Body:   strings.NewReader(form.Encode()),
	})
}
