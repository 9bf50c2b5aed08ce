package billing

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/invoicely/backend/internal/domain/shared"
)

// InvoiceStatus represents the lifecycle state of an invoice
type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "PENDING"
	InvoiceStatusPaid    InvoiceStatus = "PAID"
	InvoiceStatusOverdue InvoiceStatus = "OVERDUE"
)

// ValidInvoiceStatus reports whether s is a known status value
func ValidInvoiceStatus(s InvoiceStatus) bool {
	switch s {
	case InvoiceStatusPending, InvoiceStatusPaid, InvoiceStatusOverdue:
		return true
	}
	return false
}

// InvoiceItem is a single line on an invoice. Items are replaced
// wholesale on invoice update, never edited in place.
type InvoiceItem struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	InvoiceID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name        string          `gorm:"type:varchar(200);not null"`
	Description string          `gorm:"type:varchar(500);not null"`
	Quantity    int             `gorm:"not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(18,4);not null"`
}

// TableName returns the table name for GORM
func (InvoiceItem) TableName() string {
	return "invoice_items"
}

// NewInvoiceItem creates a validated line item
func NewInvoiceItem(name, description string, quantity int, unitPrice decimal.Decimal) (*InvoiceItem, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewInvalidInput("Item name is required")
	}
	if strings.TrimSpace(description) == "" {
		return nil, shared.NewInvalidInput("Item description is required")
	}
	if quantity <= 0 {
		return nil, shared.NewInvalidInput("Item quantity must be a positive integer")
	}
	if !unitPrice.IsPositive() {
		return nil, shared.NewInvalidInput("Item unit price must be positive")
	}

	return &InvoiceItem{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		Amount:      unitPrice.Mul(decimal.NewFromInt(int64(quantity))),
	}, nil
}

// Invoice is the aggregate root for billing. TotalAmount is always
// derived from the items, never taken from input.
//
// UpdatedAt doubles as the payment timestamp once the status reaches
// PAID; PaidAt exposes that reading explicitly.
type Invoice struct {
	shared.BaseEntity
	Reference   string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	Status      InvoiceStatus   `gorm:"type:varchar(20);not null;default:'PENDING';index"`
	InvoiceDate time.Time       `gorm:"not null;index"`
	DueDate     time.Time       `gorm:"not null;index"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	ClientID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Client      *Client         `gorm:"foreignKey:ClientID"`
	Items       []InvoiceItem   `gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (Invoice) TableName() string {
	return "invoices"
}

// NewInvoice creates a new pending invoice with at least one item
func NewInvoice(reference string, clientID uuid.UUID, invoiceDate, dueDate time.Time, items []InvoiceItem) (*Invoice, error) {
	if err := validateReference(reference); err != nil {
		return nil, err
	}
	if clientID == uuid.Nil {
		return nil, shared.NewInvalidInput("Client ID is required")
	}
	if len(items) == 0 {
		return nil, shared.NewInvalidInput("Invoice must have at least one item")
	}
	if dueDate.Before(invoiceDate) {
		return nil, shared.NewInvalidInput("Due date cannot be before invoice date")
	}

	inv := &Invoice{
		BaseEntity:  shared.NewBaseEntity(),
		Reference:   strings.ToUpper(strings.TrimSpace(reference)),
		Status:      InvoiceStatusPending,
		InvoiceDate: invoiceDate,
		DueDate:     dueDate,
		ClientID:    clientID,
	}
	inv.attachItems(items)

	return inv, nil
}

// ReplaceItems swaps the full item set and recomputes the total
func (i *Invoice) ReplaceItems(items []InvoiceItem) error {
	if len(items) == 0 {
		return shared.NewInvalidInput("Invoice must have at least one item")
	}

	i.attachItems(items)
	i.Touch()

	return nil
}

// Reschedule updates the invoice and due dates
func (i *Invoice) Reschedule(invoiceDate, dueDate time.Time) error {
	if dueDate.Before(invoiceDate) {
		return shared.NewInvalidInput("Due date cannot be before invoice date")
	}

	i.InvoiceDate = invoiceDate
	i.DueDate = dueDate
	i.Touch()

	return nil
}

// TransitionStatus moves the invoice to a new status. Allowed moves:
// PENDING->PAID, PENDING->OVERDUE, OVERDUE->PAID. PAID is terminal.
func (i *Invoice) TransitionStatus(to InvoiceStatus) error {
	if !ValidInvoiceStatus(to) {
		return shared.NewInvalidInput("Unknown invoice status: " + string(to))
	}
	if i.Status == to {
		return nil
	}

	allowed := false
	switch i.Status {
	case InvoiceStatusPending:
		allowed = to == InvoiceStatusPaid || to == InvoiceStatusOverdue
	case InvoiceStatusOverdue:
		allowed = to == InvoiceStatusPaid
	}
	if !allowed {
		return shared.NewInvalidInput("Invoice cannot move from " + string(i.Status) + " to " + string(to))
	}

	i.Status = to
	i.Touch()

	return nil
}

// PaidAt returns the payment timestamp for a PAID invoice
func (i *Invoice) PaidAt() (time.Time, bool) {
	if i.Status != InvoiceStatusPaid {
		return time.Time{}, false
	}
	return i.UpdatedAt, true
}

// DaysOverdue returns whole days past the due date as of now, negative
// or zero when the invoice is not yet due.
func (i *Invoice) DaysOverdue(now time.Time) int {
	return int(now.Sub(i.DueDate).Hours() / 24)
}

func (i *Invoice) attachItems(items []InvoiceItem) {
	total := decimal.Zero
	for idx := range items {
		items[idx].InvoiceID = i.ID
		items[idx].Amount = items[idx].UnitPrice.Mul(decimal.NewFromInt(int64(items[idx].Quantity)))
		total = total.Add(items[idx].Amount)
	}
	i.Items = items
	i.TotalAmount = total
}

func validateReference(reference string) error {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return shared.NewInvalidInput("Invoice reference is required")
	}
	if len(reference) > 50 {
		return shared.NewInvalidInput("Invoice reference cannot exceed 50 characters")
	}
	return nil
}
