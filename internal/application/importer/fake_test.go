package importer_test

import (
	"context"

	"github.com/voyagetech/voyagecrm-api/internal/application/dto"
	"github.com/voyagetech/voyagecrm-api/internal/application/importer"
	"github.com/voyagetech/voyagecrm-api/pkg/logger"
)

// testLogger is shared by the importer tests.
var testLogger = logger.New(logger.Config{Env: "test", Level: "error"})

// fakeCreator records every create call in order and can be told to fail for
// specific labels, simulating server-side rejections.
type fakeCreator struct {
	clientRefs []importer.ClientRef
	userRefs   []importer.UserRef

	calls         []string // identifying label per call, in submission order
	clientReqs    []dto.CreateClientRequest
	serviceReqs   []dto.CreateServiceRequest
	agreementReqs []dto.CreateAgreementRequest
	userReqs      []dto.CreateUserRequest
	crInvoiceReqs []dto.CreateCrInvoiceRequest

	failOn map[string]error // label -> error returned instead of success
}

func (f *fakeCreator) fail(label string) error {
	if f.failOn == nil {
		return nil
	}
	return f.failOn[label]
}

func (f *fakeCreator) CreateClient(_ context.Context, in dto.CreateClientRequest) error {
	f.calls = append(f.calls, in.Name)
	if err := f.fail(in.Name); err != nil {
		return err
	}
	f.clientReqs = append(f.clientReqs, in)
	return nil
}

func (f *fakeCreator) CreateService(_ context.Context, in dto.CreateServiceRequest) error {
	f.calls = append(f.calls, in.ClientID)
	if err := f.fail(in.ClientID); err != nil {
		return err
	}
	f.serviceReqs = append(f.serviceReqs, in)
	return nil
}

func (f *fakeCreator) CreateAgreement(_ context.Context, in dto.CreateAgreementRequest) error {
	f.calls = append(f.calls, in.Name)
	if err := f.fail(in.Name); err != nil {
		return err
	}
	f.agreementReqs = append(f.agreementReqs, in)
	return nil
}

func (f *fakeCreator) CreateUser(_ context.Context, in dto.CreateUserRequest) error {
	f.calls = append(f.calls, in.Email)
	if err := f.fail(in.Email); err != nil {
		return err
	}
	f.userReqs = append(f.userReqs, in)
	return nil
}

func (f *fakeCreator) CreateCrInvoice(_ context.Context, in dto.CreateCrInvoiceRequest) error {
	f.calls = append(f.calls, in.CrNumber)
	if err := f.fail(in.CrNumber); err != nil {
		return err
	}
	f.crInvoiceReqs = append(f.crInvoiceReqs, in)
	return nil
}

func (f *fakeCreator) ClientRefs(context.Context) ([]importer.ClientRef, error) {
	return f.clientRefs, nil
}

func (f *fakeCreator) UserRefs(context.Context) ([]importer.UserRef, error) {
	return f.userRefs, nil
}
