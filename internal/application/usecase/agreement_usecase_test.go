package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voyagetech/voyagecrm-api/internal/application/dto"
	"github.com/voyagetech/voyagecrm-api/internal/application/usecase"
	"github.com/voyagetech/voyagecrm-api/internal/domain"
	"github.com/voyagetech/voyagecrm-api/internal/domain/entity"
)

type agreementFixture struct {
	uc            *usecase.AgreementUseCase
	agreements    *fakeAgreementRepo
	notifications *fakeNotificationRepo
	mailer        *fakeMailer
}

func newAgreementFixture(clients *fakeClientRepo, users *fakeUserRepo) *agreementFixture {
	agreements := newFakeAgreementRepo()
	notifications := &fakeNotificationRepo{}
	mailer := &fakeMailer{}
	uc := usecase.NewAgreementUseCase(
		agreements, clients, users,
		&fakeTxRunner{agreements: agreements, notifications: notifications},
		mailer, testLogger,
	)
	return &agreementFixture{uc: uc, agreements: agreements, notifications: notifications, mailer: mailer}
}

func validAgreementRequest(clientID string) dto.CreateAgreementRequest {
	return dto.CreateAgreementRequest{
		ClientID:  clientID,
		Name:      "Platform MSA",
		StartDate: "2025-01-01",
		EndDate:   "2026-12-31",
		Value:     decimal.NewFromInt(500000),
		Currency:  "INR",
	}
}

func TestAgreementCreateNotifiesAssignedCSM(t *testing.T) {
	csm := &entity.User{ID: "u-1", Email: "csm@co.example", Role: entity.RoleCSM, Status: entity.UserStatusActive}
	client := &entity.Client{ID: "c-1", Name: "Skyline Airways", AssignedCSMID: "u-1"}
	fx := newAgreementFixture(newFakeClientRepo(client), newFakeUserRepo(csm))

	out, err := fx.uc.Create(context.Background(), validAgreementRequest("c-1"))
	require.NoError(t, err)
	assert.Equal(t, "active", out.Status, "status defaults to active")

	require.Len(t, fx.notifications.created, 1)
	n := fx.notifications.created[0]
	assert.Equal(t, "u-1", n.UserID)
	assert.Equal(t, "c-1", n.ClientID)
	assert.Equal(t, entity.NotificationAgreementCreated, n.Type)
	assert.Contains(t, n.Title, "Platform MSA")

	require.Len(t, fx.mailer.sent, 1)
	assert.Equal(t, "csm@co.example", fx.mailer.sent[0].to)
}

func TestAgreementCreateWithoutCSMSkipsNotification(t *testing.T) {
	client := &entity.Client{ID: "c-1", Name: "Globetrot Travels"}
	fx := newAgreementFixture(newFakeClientRepo(client), newFakeUserRepo())

	_, err := fx.uc.Create(context.Background(), validAgreementRequest("c-1"))
	require.NoError(t, err)

	assert.Empty(t, fx.notifications.created)
	assert.Empty(t, fx.mailer.sent)
	assert.Len(t, fx.agreements.agreements, 1)
}

func TestAgreementCreateMailFailureIsNotFatal(t *testing.T) {
	csm := &entity.User{ID: "u-1", Email: "csm@co.example"}
	client := &entity.Client{ID: "c-1", Name: "Skyline Airways", AssignedCSMID: "u-1"}
	fx := newAgreementFixture(newFakeClientRepo(client), newFakeUserRepo(csm))
	fx.mailer.err = errors.New("smtp down")

	_, err := fx.uc.Create(context.Background(), validAgreementRequest("c-1"))
	require.NoError(t, err, "mail delivery is best-effort")
	assert.Len(t, fx.agreements.agreements, 1)
	assert.Len(t, fx.notifications.created, 1)
}

func TestAgreementCreateRejectsInvertedDateRange(t *testing.T) {
	client := &entity.Client{ID: "c-1", Name: "Skyline Airways"}
	fx := newAgreementFixture(newFakeClientRepo(client), newFakeUserRepo())

	in := validAgreementRequest("c-1")
	in.StartDate = "2026-12-31"
	in.EndDate = "2025-01-01"

	_, err := fx.uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
	assert.Empty(t, fx.agreements.agreements)
}

func TestAgreementCreateRejectsEqualDates(t *testing.T) {
	client := &entity.Client{ID: "c-1", Name: "Skyline Airways"}
	fx := newAgreementFixture(newFakeClientRepo(client), newFakeUserRepo())

	in := validAgreementRequest("c-1")
	in.StartDate = "2025-01-01"
	in.EndDate = "2025-01-01"

	_, err := fx.uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
}

func TestAgreementCreateUnknownClient(t *testing.T) {
	fx := newAgreementFixture(newFakeClientRepo(), newFakeUserRepo())

	_, err := fx.uc.Create(context.Background(), validAgreementRequest("ghost"))
	assert.ErrorIs(t, err, domain.ErrClientNotFound)
}

func TestAgreementUpdateEnforcesDateRange(t *testing.T) {
	client := &entity.Client{ID: "c-1", Name: "Skyline Airways"}
	fx := newAgreementFixture(newFakeClientRepo(client), newFakeUserRepo())

	created, err := fx.uc.Create(context.Background(), validAgreementRequest("c-1"))
	require.NoError(t, err)

	in := validAgreementRequest("c-1")
	in.Status = "renewed"
	in.StartDate = "2026-01-01"
	in.EndDate = "2025-01-01"
	_, err = fx.uc.Update(created.ID, in)
	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
}
