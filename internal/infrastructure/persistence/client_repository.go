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

// GormClientRepository implements billing.ClientRepository using GORM
type GormClientRepository struct {
	db *gorm.DB
}

// NewGormClientRepository creates a new GormClientRepository
func NewGormClientRepository(db *gorm.DB) *GormClientRepository {
	return &GormClientRepository{db: db}
}

// Save persists a new or updated client
func (r *GormClientRepository) Save(ctx context.Context, client *billing.Client) error {
	if err := r.db.WithContext(ctx).Save(client).Error; err != nil {
		return shared.NewStoreFailure("failed to save client: " + err.Error())
	}
	return nil
}

// FindByID finds a client by its ID
func (r *GormClientRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.Client, error) {
	var client billing.Client
	if err := r.db.WithContext(ctx).First(&client, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, shared.NewStoreFailure("failed to load client: " + err.Error())
	}
	return &client, nil
}

// FindAll returns a page of clients, optionally matched by name or
// email, newest first by default
func (r *GormClientRepository) FindAll(ctx context.Context, filter shared.Filter) (shared.Paginated[billing.Client], error) {
	filter = filter.Normalize()

	query := r.db.WithContext(ctx).Model(&billing.Client{})
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR email ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return shared.Paginated[billing.Client]{}, shared.NewStoreFailure("failed to count clients: " + err.Error())
	}

	sortField := ValidateSortField(filter.OrderBy, ClientSortFields, "created_at")
	sortOrder := ValidateSortOrder(filter.OrderDir)

	var clients []billing.Client
	err := query.
		Order(fmt.Sprintf("%s %s", sortField, sortOrder)).
		Limit(filter.PageSize).
		Offset(filter.Offset()).
		Find(&clients).Error
	if err != nil {
		return shared.Paginated[billing.Client]{}, shared.NewStoreFailure("failed to list clients: " + err.Error())
	}

	return shared.NewPaginated(clients, total, filter.Page, filter.PageSize), nil
}

// Delete removes a client by ID
func (r *GormClientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&billing.Client{}, "id = ?", id)
	if result.Error != nil {
		return shared.NewStoreFailure("failed to delete client: " + result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count returns the total number of clients
func (r *GormClientRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&billing.Client{}).Count(&count).Error; err != nil {
		return 0, shared.NewStoreFailure("failed to count clients: " + err.Error())
	}
	return count, nil
}
