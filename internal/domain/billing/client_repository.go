package billing

import (
	"context"

	"github.com/google/uuid"

	"github.com/invoicely/backend/internal/domain/shared"
)

// ClientRepository defines persistence operations for clients
type ClientRepository interface {
	// Save persists a new or updated client
	Save(ctx context.Context, client *Client) error

	// FindByID returns the client or shared.ErrNotFound
	FindByID(ctx context.Context, id uuid.UUID) (*Client, error)

	// FindAll returns a page of clients; Search matches name or email
	// case-insensitively
	FindAll(ctx context.Context, filter shared.Filter) (shared.Paginated[Client], error)

	// Delete removes the client or returns shared.ErrNotFound
	Delete(ctx context.Context, id uuid.UUID) error

	// Count returns the total number of clients
	Count(ctx context.Context) (int64, error)
}
