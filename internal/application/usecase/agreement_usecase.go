package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/voyagetech/voyagecrm-api/internal/application/dto"
	"github.com/voyagetech/voyagecrm-api/internal/domain"
	"github.com/voyagetech/voyagecrm-api/internal/domain/entity"
	"github.com/voyagetech/voyagecrm-api/internal/domain/repository"
	"github.com/voyagetech/voyagecrm-api/pkg/logger"
)

// AgreementUseCase CRUD use cases for agreements plus the notification side
// effect of agreement creation: an in-app notification row for the client's
// CSM (committed in the same transaction as the agreement) and a best-effort
// email.
type AgreementUseCase struct {
	repo       repository.AgreementRepository
	clientRepo repository.ClientRepository
	userRepo   repository.UserRepository
	txRunner   AgreementTxRunner
	mail       MailSender
	log        *logger.Logger
}

// NewAgreementUseCase builds the use case.
func NewAgreementUseCase(
	repo repository.AgreementRepository,
	clientRepo repository.ClientRepository,
	userRepo repository.UserRepository,
	txRunner AgreementTxRunner,
	mail MailSender,
	log *logger.Logger,
) *AgreementUseCase {
	return &AgreementUseCase{
		repo:       repo,
		clientRepo: clientRepo,
		userRepo:   userRepo,
		txRunner:   txRunner,
		mail:       mail,
		log:        log,
	}
}

func (uc *AgreementUseCase) validate(in dto.CreateAgreementRequest) (start, end time.Time, err error) {
	if in.ClientID == "" || in.Name == "" || !oneOf(in.Currency, entity.Currencies) {
		return start, end, domain.ErrInvalidInput
	}
	if start, err = parseDate(in.StartDate); err != nil {
		return start, end, err
	}
	if end, err = parseDate(in.EndDate); err != nil {
		return start, end, err
	}
	// The source system accepted inverted date ranges; here the invariant is
	// enforced.
	if !end.After(start) {
		return start, end, domain.ErrInvalidDateRange
	}
	return start, end, nil
}

// Create creates an agreement and, when the client has an assigned CSM, a
// notification for that user in the same transaction. Email delivery is
// best-effort and never fails the request.
func (uc *AgreementUseCase) Create(ctx context.Context, in dto.CreateAgreementRequest) (*dto.AgreementResponse, error) {
	start, end, err := uc.validate(in)
	if err != nil {
		return nil, err
	}
	client, err := uc.clientRepo.GetByID(in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrClientNotFound
	}
	status := in.Status
	if status == "" {
		status = entity.AgreementStatusActive
	}
	if !oneOf(status, entity.AgreementStatuses) {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	agreement := &entity.Agreement{
		ID:          uuid.New().String(),
		ClientID:    in.ClientID,
		Name:        in.Name,
		StartDate:   start,
		EndDate:     end,
		Value:       in.Value,
		Currency:    in.Currency,
		Status:      status,
		AutoRenewal: in.AutoRenewal,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	var csm *entity.User
	if client.AssignedCSMID != "" {
		// Unresolvable CSM degrades to "no notification", not a failure.
		csm, _ = uc.userRepo.GetByID(client.AssignedCSMID)
	}

	err = uc.txRunner.RunAgreement(ctx, func(
		agreementRepo repository.AgreementRepository,
		notificationRepo repository.NotificationRepository,
	) error {
		if err := agreementRepo.Create(agreement); err != nil {
			return err
		}
		if csm == nil {
			return nil
		}
		return notificationRepo.Create(&entity.Notification{
			ID:       uuid.New().String(),
			UserID:   csm.ID,
			ClientID: client.ID,
			Type:     entity.NotificationAgreementCreated,
			Title:    "New agreement: " + agreement.Name,
			Message: fmt.Sprintf("Agreement %q for %s runs %s to %s (%s %s).",
				agreement.Name, client.Name,
				start.Format("2006-01-02"), end.Format("2006-01-02"),
				agreement.Currency, agreement.Value.StringFixed(2)),
			CreatedAt: now,
		})
	})
	if err != nil {
		return nil, err
	}

	if csm != nil && csm.Email != "" {
		if err := uc.mail.Send(csm.Email,
			"New agreement: "+agreement.Name,
			fmt.Sprintf("An agreement for %s was created. Value: %s %s. Term: %s to %s.",
				client.Name, agreement.Currency, agreement.Value.StringFixed(2),
				start.Format("2006-01-02"), end.Format("2006-01-02")),
		); err != nil {
			uc.log.Warn().Err(err).Str("agreement_id", agreement.ID).Msg("agreement notification mail failed")
		}
	}

	return toAgreementResponse(agreement), nil
}

// GetByID returns one agreement.
func (uc *AgreementUseCase) GetByID(id string) (*dto.AgreementResponse, error) {
	agreement, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if agreement == nil {
		return nil, domain.ErrNotFound
	}
	return toAgreementResponse(agreement), nil
}

// List returns agreements with pagination.
func (uc *AgreementUseCase) List(page dto.PageRequest) ([]*dto.AgreementResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.AgreementResponse, 0, len(list))
	for _, a := range list {
		out = append(out, toAgreementResponse(a))
	}
	return out, nil
}

// Update updates an agreement. The date-range invariant applies here too.
func (uc *AgreementUseCase) Update(id string, in dto.UpdateAgreementRequest) (*dto.AgreementResponse, error) {
	start, end, err := uc.validate(in)
	if err != nil {
		return nil, err
	}
	if !oneOf(in.Status, entity.AgreementStatuses) {
		return nil, domain.ErrInvalidInput
	}
	agreement, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if agreement == nil {
		return nil, domain.ErrNotFound
	}
	agreement.Name = in.Name
	agreement.StartDate = start
	agreement.EndDate = end
	agreement.Value = in.Value
	agreement.Currency = in.Currency
	agreement.Status = in.Status
	agreement.AutoRenewal = in.AutoRenewal
	agreement.UpdatedAt = time.Now()
	if err := uc.repo.Update(agreement); err != nil {
		return nil, err
	}
	return toAgreementResponse(agreement), nil
}

// Delete removes an agreement.
func (uc *AgreementUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toAgreementResponse(a *entity.Agreement) *dto.AgreementResponse {
	return &dto.AgreementResponse{
		ID:          a.ID,
		ClientID:    a.ClientID,
		Name:        a.Name,
		StartDate:   a.StartDate,
		EndDate:     a.EndDate,
		Value:       a.Value,
		Currency:    a.Currency,
		Status:      a.Status,
		AutoRenewal: a.AutoRenewal,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}
