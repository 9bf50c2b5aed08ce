package billing

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/invoicely/backend/internal/domain/billing"
	"github.com/invoicely/backend/internal/domain/shared"
)

// InvoiceService handles invoice-related business operations
type InvoiceService struct {
	invoices billing.InvoiceRepository
	clients  billing.ClientRepository
	logger   *zap.Logger
}

// NewInvoiceService creates a new InvoiceService
func NewInvoiceService(invoices billing.InvoiceRepository, clients billing.ClientRepository, logger *zap.Logger) *InvoiceService {
	return &InvoiceService{
		invoices: invoices,
		clients:  clients,
		logger:   logger,
	}
}

// Create creates a new invoice. The owning client must exist and the
// reference must be unused; the total is derived from the items.
func (s *InvoiceService) Create(ctx context.Context, req CreateInvoiceRequest) (*InvoiceResponse, error) {
	if _, err := s.clients.FindByID(ctx, req.ClientID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewNotFound("Client not found: " + req.ClientID.String())
		}
		return nil, err
	}

	existing, err := s.invoices.FindByReference(ctx, req.Reference)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, shared.NewInvalidInput("Invoice reference already in use: " + req.Reference)
	}

	items, err := buildItems(req.Items)
	if err != nil {
		return nil, err
	}

	invoice, err := billing.NewInvoice(req.Reference, req.ClientID, req.InvoiceDate, req.DueDate, items)
	if err != nil {
		return nil, err
	}

	if err := s.invoices.Save(ctx, invoice); err != nil {
		return nil, err
	}

	s.logger.Info("invoice created",
		zap.String("invoice_id", invoice.ID.String()),
		zap.String("reference", invoice.Reference),
		zap.String("total_amount", invoice.TotalAmount.String()),
	)

	response := ToInvoiceResponse(invoice)
	return &response, nil
}

// GetByID retrieves an invoice with items and client
func (s *InvoiceService) GetByID(ctx context.Context, id uuid.UUID) (*InvoiceResponse, error) {
	invoice, err := s.invoices.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToInvoiceResponse(invoice)
	return &response, nil
}

// List returns a page of invoices
func (s *InvoiceService) List(ctx context.Context, filter billing.InvoiceFilter) (shared.Paginated[InvoiceResponse], error) {
	page, err := s.invoices.FindAll(ctx, filter)
	if err != nil {
		return shared.Paginated[InvoiceResponse]{}, err
	}

	responses := make([]InvoiceResponse, len(page.Items))
	for i := range page.Items {
		responses[i] = ToInvoiceResponse(&page.Items[i])
	}
	return shared.NewPaginated(responses, page.Total, page.Page, page.PageSize), nil
}

// Update reschedules an invoice and replaces its item set wholesale
func (s *InvoiceService) Update(ctx context.Context, id uuid.UUID, req UpdateInvoiceRequest) (*InvoiceResponse, error) {
	invoice, err := s.invoices.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	items, err := buildItems(req.Items)
	if err != nil {
		return nil, err
	}

	if err := invoice.Reschedule(req.InvoiceDate, req.DueDate); err != nil {
		return nil, err
	}
	if err := invoice.ReplaceItems(items); err != nil {
		return nil, err
	}

	if err := s.invoices.Update(ctx, invoice); err != nil {
		return nil, err
	}

	s.logger.Info("invoice updated",
		zap.String("invoice_id", invoice.ID.String()),
		zap.Int("items", len(invoice.Items)),
	)

	response := ToInvoiceResponse(invoice)
	return &response, nil
}

// UpdateStatus moves an invoice through its lifecycle
func (s *InvoiceService) UpdateStatus(ctx context.Context, id uuid.UUID, req UpdateInvoiceStatusRequest) (*InvoiceResponse, error) {
	invoice, err := s.invoices.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := invoice.TransitionStatus(billing.InvoiceStatus(req.Status)); err != nil {
		return nil, err
	}

	if err := s.invoices.Update(ctx, invoice); err != nil {
		return nil, err
	}

	s.logger.Info("invoice status changed",
		zap.String("invoice_id", invoice.ID.String()),
		zap.String("status", string(invoice.Status)),
	)

	response := ToInvoiceResponse(invoice)
	return &response, nil
}

// Delete removes an invoice and its items
func (s *InvoiceService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.invoices.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("invoice deleted", zap.String("invoice_id", id.String()))
	return nil
}
