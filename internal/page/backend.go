package page

import (
	"context"

	"github.com/joescharf/bugdesk/internal/models"
)

// Backend is the REST surface the controllers consume. *client.Client
// implements it.
type Backend interface {
	ListBugs(ctx context.Context) ([]*models.Bug, error)
	CreateBug(ctx context.Context, nb models.NewBug) error
	UpdateStatus(ctx context.Context, id int64, status models.Status) error
	DeleteBug(ctx context.Context, id int64) error
	Review(ctx context.Context, req models.ReviewRequest) (string, error)
	SendEmail(ctx context.Context, to, subject, body string) (string, error)
}
