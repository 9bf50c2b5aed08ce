package billing

import (
	"context"

	"github.com/google/uuid"

	"github.com/invoicely/backend/internal/domain/shared"
)

// InvoiceFilter narrows invoice list queries
type InvoiceFilter struct {
	shared.Filter
	Status InvoiceStatus
}

// InvoiceRepository defines persistence operations for invoices
type InvoiceRepository interface {
	// Save persists a new invoice together with its items
	Save(ctx context.Context, invoice *Invoice) error

	// Update persists invoice changes, replacing the item set
	// wholesale inside a single transaction
	Update(ctx context.Context, invoice *Invoice) error

	// FindByID returns the invoice with items and client preloaded,
	// or shared.ErrNotFound
	FindByID(ctx context.Context, id uuid.UUID) (*Invoice, error)

	// FindByReference returns the invoice matching the unique
	// reference, or shared.ErrNotFound
	FindByReference(ctx context.Context, reference string) (*Invoice, error)

	// FindAll returns a page of invoices; Search matches the reference
	// or any item name or description case-insensitively
	FindAll(ctx context.Context, filter InvoiceFilter) (shared.Paginated[Invoice], error)

	// Delete removes the invoice and its items, or returns
	// shared.ErrNotFound
	Delete(ctx context.Context, id uuid.UUID) error

	// CountByClient returns the number of invoices held by a client
	CountByClient(ctx context.Context, clientID uuid.UUID) (int64, error)
}
