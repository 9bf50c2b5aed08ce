package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/invoicely/backend/internal/domain/billing"
	"github.com/invoicely/backend/internal/domain/shared"
)

// =============================================================================
// Client DTOs
// =============================================================================

// AddressRequest carries a client's postal address
type AddressRequest struct {
	Street     string `json:"street" binding:"max=200"`
	City       string `json:"city" binding:"max=100"`
	Country    string `json:"country" binding:"max=100"`
	PostalCode string `json:"postal_code" binding:"max=20"`
}

// CreateClientRequest represents a request to create a new client
type CreateClientRequest struct {
	Name    string         `json:"name" binding:"required,min=1,max=200"`
	Email   string         `json:"email" binding:"required,email,max=200"`
	Phone   string         `json:"phone" binding:"max=50"`
	Address AddressRequest `json:"address"`
}

// UpdateClientRequest represents a request to update a client
type UpdateClientRequest struct {
	Name    string         `json:"name" binding:"required,min=1,max=200"`
	Email   string         `json:"email" binding:"required,email,max=200"`
	Phone   string         `json:"phone" binding:"max=50"`
	Address AddressRequest `json:"address"`
}

// ClientResponse represents a client in API responses
type ClientResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Street     string    `json:"street"`
	City       string    `json:"city"`
	Country    string    `json:"country"`
	PostalCode string    `json:"postal_code"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ToClientResponse converts a domain Client to ClientResponse
func ToClientResponse(c *billing.Client) ClientResponse {
	return ClientResponse{
		ID:         c.ID,
		Name:       c.Name,
		Email:      c.Email,
		Phone:      c.Phone,
		Street:     c.Address.Street,
		City:       c.Address.City,
		Country:    c.Address.Country,
		PostalCode: c.Address.PostalCode,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

func (r AddressRequest) toDomain() billing.Address {
	return billing.Address{
		Street:     r.Street,
		City:       r.City,
		Country:    r.Country,
		PostalCode: r.PostalCode,
	}
}

// =============================================================================
// Invoice DTOs
// =============================================================================

// InvoiceItemRequest is one line item in a create/update request. The
// line amount is always derived from quantity and unit price.
type InvoiceItemRequest struct {
	Name        string          `json:"name" binding:"required,min=1,max=200"`
	Description string          `json:"description" binding:"required,min=1,max=500"`
	Quantity    int             `json:"quantity" binding:"required,gt=0"`
	UnitPrice   decimal.Decimal `json:"unit_price" binding:"required"`
}

// CreateInvoiceRequest represents a request to create a new invoice
type CreateInvoiceRequest struct {
	Reference   string               `json:"reference" binding:"required,min=1,max=50"`
	ClientID    uuid.UUID            `json:"client_id" binding:"required"`
	InvoiceDate time.Time            `json:"invoice_date" binding:"required"`
	DueDate     time.Time            `json:"due_date" binding:"required"`
	Items       []InvoiceItemRequest `json:"items" binding:"required,min=1,dive"`
}

// UpdateInvoiceRequest replaces an invoice's dates and full item set
type UpdateInvoiceRequest struct {
	InvoiceDate time.Time            `json:"invoice_date" binding:"required"`
	DueDate     time.Time            `json:"due_date" binding:"required"`
	Items       []InvoiceItemRequest `json:"items" binding:"required,min=1,dive"`
}

// UpdateInvoiceStatusRequest moves an invoice to a new status
type UpdateInvoiceStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=PENDING PAID OVERDUE"`
}

// InvoiceItemResponse represents a line item in API responses
type InvoiceItemResponse struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Amount      decimal.Decimal `json:"amount"`
}

// InvoiceResponse represents an invoice in API responses
type InvoiceResponse struct {
	ID          uuid.UUID             `json:"id"`
	Reference   string                `json:"reference"`
	Status      string                `json:"status"`
	InvoiceDate time.Time             `json:"invoice_date"`
	DueDate     time.Time             `json:"due_date"`
	TotalAmount decimal.Decimal       `json:"total_amount"`
	ClientID    uuid.UUID             `json:"client_id"`
	Client      *ClientResponse       `json:"client,omitempty"`
	Items       []InvoiceItemResponse `json:"items"`
	CreatedAt   time.Time             `json:"created_at"`
	UpdatedAt   time.Time             `json:"updated_at"`
}

// ToInvoiceResponse converts a domain Invoice to InvoiceResponse
func ToInvoiceResponse(inv *billing.Invoice) InvoiceResponse {
	items := make([]InvoiceItemResponse, len(inv.Items))
	for i, item := range inv.Items {
		items[i] = InvoiceItemResponse{
			ID:          item.ID,
			Name:        item.Name,
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Amount:      item.Amount,
		}
	}

	resp := InvoiceResponse{
		ID:          inv.ID,
		Reference:   inv.Reference,
		Status:      string(inv.Status),
		InvoiceDate: inv.InvoiceDate,
		DueDate:     inv.DueDate,
		TotalAmount: inv.TotalAmount,
		ClientID:    inv.ClientID,
		Items:       items,
		CreatedAt:   inv.CreatedAt,
		UpdatedAt:   inv.UpdatedAt,
	}
	if inv.Client != nil {
		client := ToClientResponse(inv.Client)
		resp.Client = &client
	}
	return resp
}

// buildItems validates and converts request items to domain items
func buildItems(requests []InvoiceItemRequest) ([]billing.InvoiceItem, error) {
	items := make([]billing.InvoiceItem, 0, len(requests))
	for _, req := range requests {
		item, err := billing.NewInvoiceItem(req.Name, req.Description, req.Quantity, req.UnitPrice)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	if len(items) == 0 {
		return nil, shared.NewInvalidInput("Invoice must have at least one item")
	}
	return items, nil
}
