package usecase

import (
	"context"

	"github.com/voyagetech/voyagecrm-api/internal/domain/entity"
	"github.com/voyagetech/voyagecrm-api/internal/domain/repository"
)

// AgreementTxRunner runs a callback with agreement and notification repos
// bound to one transaction, so the agreement row and its notification side
// effect commit together.
type AgreementTxRunner interface {
	RunAgreement(ctx context.Context, fn func(
		agreementRepo repository.AgreementRepository,
		notificationRepo repository.NotificationRepository,
	) error) error
}

// MailSender outbound mail port. Implementations must be safe to call with
// best-effort semantics; the caller logs and swallows errors.
type MailSender interface {
	Send(to, subject, body string) error
}

// CrInvoicePDFGenerator renders the printable CR invoice document.
type CrInvoicePDFGenerator interface {
	GenerateCrInvoicePDF(ctx context.Context, invoice *entity.CrInvoice, client *entity.Client) ([]byte, error)
}
