package billing

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/invoicely/backend/internal/domain/billing"
	"github.com/invoicely/backend/internal/domain/shared"
)

// ClientService handles client-related business operations
type ClientService struct {
	clients  billing.ClientRepository
	invoices billing.InvoiceRepository
	logger   *zap.Logger
}

// NewClientService creates a new ClientService
func NewClientService(clients billing.ClientRepository, invoices billing.InvoiceRepository, logger *zap.Logger) *ClientService {
	return &ClientService{
		clients:  clients,
		invoices: invoices,
		logger:   logger,
	}
}

// Create creates a new client
func (s *ClientService) Create(ctx context.Context, req CreateClientRequest) (*ClientResponse, error) {
	client, err := billing.NewClient(req.Name, req.Email, req.Phone, req.Address.toDomain())
	if err != nil {
		return nil, err
	}

	if err := s.clients.Save(ctx, client); err != nil {
		return nil, err
	}

	s.logger.Info("client created",
		zap.String("client_id", client.ID.String()),
		zap.String("name", client.Name),
	)

	response := ToClientResponse(client)
	return &response, nil
}

// GetByID retrieves a client by ID
func (s *ClientService) GetByID(ctx context.Context, id uuid.UUID) (*ClientResponse, error) {
	client, err := s.clients.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToClientResponse(client)
	return &response, nil
}

// List returns a page of clients
func (s *ClientService) List(ctx context.Context, filter shared.Filter) (shared.Paginated[ClientResponse], error) {
	page, err := s.clients.FindAll(ctx, filter)
	if err != nil {
		return shared.Paginated[ClientResponse]{}, err
	}

	responses := make([]ClientResponse, len(page.Items))
	for i := range page.Items {
		responses[i] = ToClientResponse(&page.Items[i])
	}
	return shared.NewPaginated(responses, page.Total, page.Page, page.PageSize), nil
}

// Update replaces a client's mutable fields. The client must exist.
func (s *ClientService) Update(ctx context.Context, id uuid.UUID, req UpdateClientRequest) (*ClientResponse, error) {
	client, err := s.clients.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := client.Update(req.Name, req.Email, req.Phone, req.Address.toDomain()); err != nil {
		return nil, err
	}

	if err := s.clients.Save(ctx, client); err != nil {
		return nil, err
	}

	response := ToClientResponse(client)
	return &response, nil
}

// Delete removes a client. The client must exist and must not hold
// any invoices.
func (s *ClientService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.clients.FindByID(ctx, id); err != nil {
		return err
	}

	count, err := s.invoices.CountByClient(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return shared.NewInvalidInput("Client has invoices and cannot be deleted")
	}

	if err := s.clients.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("client deleted", zap.String("client_id", id.String()))
	return nil
}
