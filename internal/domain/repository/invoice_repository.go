package repository

import "github.com/voyagetech/voyagecrm-api/internal/domain/entity"

// InvoiceRepository defines the persistence port for standard invoices.
type InvoiceRepository interface {
	Create(invoice *entity.Invoice) error
	GetByID(id string) (*entity.Invoice, error)
	List(limit, offset int) ([]*entity.Invoice, error)
	ListByClient(clientID string) ([]*entity.Invoice, error)
	Update(invoice *entity.Invoice) error
	Delete(id string) error
}

// CrInvoiceRepository defines the persistence port for Change Request invoices.
type CrInvoiceRepository interface {
	Create(invoice *entity.CrInvoice) error
	GetByID(id string) (*entity.CrInvoice, error)
	GetByCrNumber(crNumber string) (*entity.CrInvoice, error)
	List(limit, offset int) ([]*entity.CrInvoice, error)
	ListByClient(clientID string) ([]*entity.CrInvoice, error)
	Update(invoice *entity.CrInvoice) error
	Delete(id string) error
}
