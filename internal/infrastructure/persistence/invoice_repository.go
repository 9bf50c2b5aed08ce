package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/invoicely/backend/internal/domain/billing"
	"github.com/invoicely/backend/internal/domain/shared"
)

// GormInvoiceRepository implements billing.InvoiceRepository using GORM
type GormInvoiceRepository struct {
	db *gorm.DB
}

// NewGormInvoiceRepository creates a new GormInvoiceRepository
func NewGormInvoiceRepository(db *gorm.DB) *GormInvoiceRepository {
	return &GormInvoiceRepository{db: db}
}

// Save persists a new invoice together with its items
func (r *GormInvoiceRepository) Save(ctx context.Context, invoice *billing.Invoice) error {
	if err := r.db.WithContext(ctx).Create(invoice).Error; err != nil {
		return shared.NewStoreFailure("failed to save invoice: " + err.Error())
	}
	return nil
}

// Update persists invoice changes. The item set is replaced wholesale:
// existing rows are deleted and the current set inserted, all inside
// one transaction.
func (r *GormInvoiceRepository) Update(ctx context.Context, invoice *billing.Invoice) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("invoice_id = ?", invoice.ID).Delete(&billing.InvoiceItem{}).Error; err != nil {
			return err
		}
		if err := tx.Omit("Items", "Client").Save(invoice).Error; err != nil {
			return err
		}
		if len(invoice.Items) > 0 {
			if err := tx.Create(&invoice.Items).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return shared.NewStoreFailure("failed to update invoice: " + err.Error())
	}
	return nil
}

// FindByID finds an invoice with its items and client preloaded
func (r *GormInvoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.Invoice, error) {
	var invoice billing.Invoice
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Client").
		First(&invoice, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, shared.NewStoreFailure("failed to load invoice: " + err.Error())
	}
	return &invoice, nil
}

// FindByReference finds an invoice by its unique reference
func (r *GormInvoiceRepository) FindByReference(ctx context.Context, reference string) (*billing.Invoice, error) {
	var invoice billing.Invoice
	err := r.db.WithContext(ctx).
		Preload("Items").
		First(&invoice, "reference = ?", reference).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, shared.NewStoreFailure("failed to load invoice: " + err.Error())
	}
	return &invoice, nil
}

// FindAll returns a page of invoices. Search matches the reference or
// any item name or description case-insensitively.
func (r *GormInvoiceRepository) FindAll(ctx context.Context, filter billing.InvoiceFilter) (shared.Paginated[billing.Invoice], error) {
	filter.Filter = filter.Filter.Normalize()

	query := r.db.WithContext(ctx).Model(&billing.Invoice{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			"reference ILIKE ? OR EXISTS (SELECT 1 FROM invoice_items WHERE invoice_items.invoice_id = invoices.id AND (invoice_items.name ILIKE ? OR invoice_items.description ILIKE ?))",
			pattern, pattern, pattern,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return shared.Paginated[billing.Invoice]{}, shared.NewStoreFailure("failed to count invoices: " + err.Error())
	}

	sortField := ValidateSortField(filter.OrderBy, InvoiceSortFields, "created_at")
	sortOrder := ValidateSortOrder(filter.OrderDir)

	var invoices []billing.Invoice
	err := query.
		Preload("Items").
		Preload("Client").
		Order(fmt.Sprintf("%s %s", sortField, sortOrder)).
		Limit(filter.PageSize).
		Offset(filter.Offset()).
		Find(&invoices).Error
	if err != nil {
		return shared.Paginated[billing.Invoice]{}, shared.NewStoreFailure("failed to list invoices: " + err.Error())
	}

	return shared.NewPaginated(invoices, total, filter.Page, filter.PageSize), nil
}

// CountByClient returns the number of invoices held by a client
func (r *GormInvoiceRepository) CountByClient(ctx context.Context, clientID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&billing.Invoice{}).
		Where("client_id = ?", clientID).
		Count(&count).Error
	if err != nil {
		return 0, shared.NewStoreFailure("failed to count invoices: " + err.Error())
	}
	return count, nil
}

// Delete removes an invoice and its items in one transaction
func (r *GormInvoiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	var affected int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("invoice_id = ?", id).Delete(&billing.InvoiceItem{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&billing.Invoice{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		affected = result.RowsAffected
		return nil
	})
	if err != nil {
		return shared.NewStoreFailure("failed to delete invoice: " + err.Error())
	}
	if affected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
