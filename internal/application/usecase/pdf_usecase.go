package usecase

import (
	"context"
	"fmt"

	"github.com/voyagetech/voyagecrm-api/internal/domain"
	"github.com/voyagetech/voyagecrm-api/internal/domain/repository"
)

// CrInvoicePDFUseCase renders the printable document for one CR invoice.
type CrInvoicePDFUseCase struct {
	invoiceRepo repository.CrInvoiceRepository
	clientRepo  repository.ClientRepository
	generator   CrInvoicePDFGenerator
}

// NewCrInvoicePDFUseCase builds the use case.
func NewCrInvoicePDFUseCase(
	invoiceRepo repository.CrInvoiceRepository,
	clientRepo repository.ClientRepository,
	generator CrInvoicePDFGenerator,
) *CrInvoicePDFUseCase {
	return &CrInvoicePDFUseCase{invoiceRepo: invoiceRepo, clientRepo: clientRepo, generator: generator}
}

// Generate returns the PDF bytes plus a suggested filename.
func (uc *CrInvoicePDFUseCase) Generate(ctx context.Context, invoiceID string) ([]byte, string, error) {
	invoice, err := uc.invoiceRepo.GetByID(invoiceID)
	if err != nil {
		return nil, "", err
	}
	if invoice == nil {
		return nil, "", domain.ErrNotFound
	}
	client, err := uc.clientRepo.GetByID(invoice.ClientID)
	if err != nil {
		return nil, "", err
	}
	if client == nil {
		return nil, "", domain.ErrClientNotFound
	}
	pdfBytes, err := uc.generator.GenerateCrInvoicePDF(ctx, invoice, client)
	if err != nil {
		return nil, "", fmt.Errorf("cr invoice pdf: %w", err)
	}
	return pdfBytes, fmt.Sprintf("cr-invoice-%s.pdf", invoice.CrNumber), nil
}
