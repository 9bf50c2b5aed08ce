package billing

import (
	"regexp"
	"strings"
	"time"

	"github.com/invoicely/backend/internal/domain/shared"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Address is a client's postal address, embedded in the clients table
type Address struct {
	Street     string `gorm:"type:varchar(200)" json:"street"`
	City       string `gorm:"type:varchar(100)" json:"city"`
	Country    string `gorm:"type:varchar(100)" json:"country"`
	PostalCode string `gorm:"type:varchar(20)" json:"postal_code"`
}

// Client represents a billable customer
type Client struct {
	shared.BaseEntity
	Name    string  `gorm:"type:varchar(200);not null;index"`
	Email   string  `gorm:"type:varchar(200);not null;index"`
	Phone   string  `gorm:"type:varchar(50)"`
	Address Address `gorm:"embedded;embeddedPrefix:address_"`
}

// TableName returns the table name for GORM
func (Client) TableName() string {
	return "clients"
}

// NewClient creates a new client with required fields
func NewClient(name, email, phone string, address Address) (*Client, error) {
	if err := validateClientName(name); err != nil {
		return nil, err
	}
	if err := validateClientEmail(email); err != nil {
		return nil, err
	}

	return &Client{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Email:      strings.ToLower(email),
		Phone:      phone,
		Address:    address,
	}, nil
}

// Update replaces the client's mutable fields
func (c *Client) Update(name, email, phone string, address Address) error {
	if err := validateClientName(name); err != nil {
		return err
	}
	if err := validateClientEmail(email); err != nil {
		return err
	}

	c.Name = name
	c.Email = strings.ToLower(email)
	c.Phone = phone
	c.Address = address
	c.UpdatedAt = time.Now()

	return nil
}

func validateClientName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewInvalidInput("Client name is required")
	}
	if len(name) > 200 {
		return shared.NewInvalidInput("Client name cannot exceed 200 characters")
	}
	return nil
}

func validateClientEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return shared.NewInvalidInput("Client email is required")
	}
	if !emailPattern.MatchString(email) {
		return shared.NewInvalidInput("Client email format is invalid")
	}
	return nil
}
