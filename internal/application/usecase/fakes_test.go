package usecase_test

import (
	"context"
	"strings"

	"github.com/voyagetech/voyagecrm-api/internal/application/usecase"
	"github.com/voyagetech/voyagecrm-api/internal/domain/entity"
	"github.com/voyagetech/voyagecrm-api/internal/domain/repository"
	"github.com/voyagetech/voyagecrm-api/pkg/logger"
)

var testLogger = logger.New(logger.Config{Env: "test", Level: "error"})

// In-memory repository fakes. Maps keyed by id; behavior mirrors the
// postgres implementations (nil, nil for a miss).

type fakeClientRepo struct {
	clients map[string]*entity.Client
}

func newFakeClientRepo(clients ...*entity.Client) *fakeClientRepo {
	r := &fakeClientRepo{clients: map[string]*entity.Client{}}
	for _, c := range clients {
		r.clients[c.ID] = c
	}
	return r
}

func (r *fakeClientRepo) Create(c *entity.Client) error { r.clients[c.ID] = c; return nil }
func (r *fakeClientRepo) GetByID(id string) (*entity.Client, error) {
	return r.clients[id], nil
}
func (r *fakeClientRepo) GetByName(name string) (*entity.Client, error) {
	for _, c := range r.clients {
		if strings.EqualFold(c.Name, name) {
			return c, nil
		}
	}
	return nil, nil
}
func (r *fakeClientRepo) List(limit, offset int) ([]*entity.Client, error) { return r.ListAll() }
func (r *fakeClientRepo) ListAll() ([]*entity.Client, error) {
	out := make([]*entity.Client, 0, len(r.clients))
	for _, c := range r.clients {
		out = append(out, c)
	}
	return out, nil
}
func (r *fakeClientRepo) Update(c *entity.Client) error { r.clients[c.ID] = c; return nil }
func (r *fakeClientRepo) Delete(id string) error        { delete(r.clients, id); return nil }

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{users: map[string]*entity.User{}}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(u *entity.User) error { r.users[u.ID] = u; return nil }
func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	return r.users[id], nil
}
func (r *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, nil
}
func (r *fakeUserRepo) List(limit, offset int) ([]*entity.User, error) { return r.ListAll() }
func (r *fakeUserRepo) ListAll() ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}
func (r *fakeUserRepo) Update(u *entity.User) error { r.users[u.ID] = u; return nil }
func (r *fakeUserRepo) Delete(id string) error      { delete(r.users, id); return nil }

type fakeServiceRepo struct {
	services map[string]*entity.Service
}

func newFakeServiceRepo() *fakeServiceRepo {
	return &fakeServiceRepo{services: map[string]*entity.Service{}}
}

func (r *fakeServiceRepo) Create(s *entity.Service) error { r.services[s.ID] = s; return nil }
func (r *fakeServiceRepo) GetByID(id string) (*entity.Service, error) {
	return r.services[id], nil
}
func (r *fakeServiceRepo) List(limit, offset int) ([]*entity.Service, error) {
	out := make([]*entity.Service, 0, len(r.services))
	for _, s := range r.services {
		out = append(out, s)
	}
	return out, nil
}
func (r *fakeServiceRepo) ListByClient(clientID string) ([]*entity.Service, error) {
	var out []*entity.Service
	for _, s := range r.services {
		if s.ClientID == clientID {
			out = append(out, s)
		}
	}
	return out, nil
}
func (r *fakeServiceRepo) Update(s *entity.Service) error { r.services[s.ID] = s; return nil }
func (r *fakeServiceRepo) Delete(id string) error         { delete(r.services, id); return nil }

type fakeAgreementRepo struct {
	agreements map[string]*entity.Agreement
}

func newFakeAgreementRepo() *fakeAgreementRepo {
	return &fakeAgreementRepo{agreements: map[string]*entity.Agreement{}}
}

func (r *fakeAgreementRepo) Create(a *entity.Agreement) error { r.agreements[a.ID] = a; return nil }
func (r *fakeAgreementRepo) GetByID(id string) (*entity.Agreement, error) {
	return r.agreements[id], nil
}
func (r *fakeAgreementRepo) List(limit, offset int) ([]*entity.Agreement, error) {
	out := make([]*entity.Agreement, 0, len(r.agreements))
	for _, a := range r.agreements {
		out = append(out, a)
	}
	return out, nil
}
func (r *fakeAgreementRepo) ListByClient(clientID string) ([]*entity.Agreement, error) {
	var out []*entity.Agreement
	for _, a := range r.agreements {
		if a.ClientID == clientID {
			out = append(out, a)
		}
	}
	return out, nil
}
func (r *fakeAgreementRepo) Update(a *entity.Agreement) error { r.agreements[a.ID] = a; return nil }
func (r *fakeAgreementRepo) Delete(id string) error           { delete(r.agreements, id); return nil }

type fakeNotificationRepo struct {
	created []*entity.Notification
}

func (r *fakeNotificationRepo) Create(n *entity.Notification) error {
	r.created = append(r.created, n)
	return nil
}
func (r *fakeNotificationRepo) ListByUser(userID string, limit, offset int) ([]*entity.Notification, error) {
	var out []*entity.Notification
	for _, n := range r.created {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}
func (r *fakeNotificationRepo) MarkRead(id, userID string) error {
	for _, n := range r.created {
		if n.ID == id && n.UserID == userID {
			n.Read = true
		}
	}
	return nil
}

type fakeInvoiceRepo struct {
	invoices map[string]*entity.Invoice
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{invoices: map[string]*entity.Invoice{}}
}

func (r *fakeInvoiceRepo) Create(i *entity.Invoice) error { r.invoices[i.ID] = i; return nil }
func (r *fakeInvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	return r.invoices[id], nil
}
func (r *fakeInvoiceRepo) List(limit, offset int) ([]*entity.Invoice, error) {
	out := make([]*entity.Invoice, 0, len(r.invoices))
	for _, i := range r.invoices {
		out = append(out, i)
	}
	return out, nil
}
func (r *fakeInvoiceRepo) ListByClient(clientID string) ([]*entity.Invoice, error) {
	var out []*entity.Invoice
	for _, i := range r.invoices {
		if i.ClientID == clientID {
			out = append(out, i)
		}
	}
	return out, nil
}
func (r *fakeInvoiceRepo) Update(i *entity.Invoice) error { r.invoices[i.ID] = i; return nil }
func (r *fakeInvoiceRepo) Delete(id string) error         { delete(r.invoices, id); return nil }

type fakeCrInvoiceRepo struct {
	invoices map[string]*entity.CrInvoice
}

func newFakeCrInvoiceRepo() *fakeCrInvoiceRepo {
	return &fakeCrInvoiceRepo{invoices: map[string]*entity.CrInvoice{}}
}

func (r *fakeCrInvoiceRepo) Create(i *entity.CrInvoice) error { r.invoices[i.ID] = i; return nil }
func (r *fakeCrInvoiceRepo) GetByID(id string) (*entity.CrInvoice, error) {
	return r.invoices[id], nil
}
func (r *fakeCrInvoiceRepo) GetByCrNumber(crNumber string) (*entity.CrInvoice, error) {
	for _, i := range r.invoices {
		if i.CrNumber == crNumber {
			return i, nil
		}
	}
	return nil, nil
}
func (r *fakeCrInvoiceRepo) List(limit, offset int) ([]*entity.CrInvoice, error) {
	out := make([]*entity.CrInvoice, 0, len(r.invoices))
	for _, i := range r.invoices {
		out = append(out, i)
	}
	return out, nil
}
func (r *fakeCrInvoiceRepo) ListByClient(clientID string) ([]*entity.CrInvoice, error) {
	var out []*entity.CrInvoice
	for _, i := range r.invoices {
		if i.ClientID == clientID {
			out = append(out, i)
		}
	}
	return out, nil
}
func (r *fakeCrInvoiceRepo) Update(i *entity.CrInvoice) error { r.invoices[i.ID] = i; return nil }
func (r *fakeCrInvoiceRepo) Delete(id string) error           { delete(r.invoices, id); return nil }

// fakeTxRunner hands the callback the in-memory fakes; "transactional" only
// in shape.
type fakeTxRunner struct {
	agreements    *fakeAgreementRepo
	notifications *fakeNotificationRepo
}

func (t *fakeTxRunner) RunAgreement(_ context.Context, fn func(
	agreementRepo repository.AgreementRepository,
	notificationRepo repository.NotificationRepository,
) error) error {
	return fn(t.agreements, t.notifications)
}

type sentMail struct {
	to, subject, body string
}

type fakeMailer struct {
	sent []sentMail
	err  error
}

func (m *fakeMailer) Send(to, subject, body string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentMail{to, subject, body})
	return nil
}

var _ usecase.MailSender = (*fakeMailer)(nil)
var _ usecase.AgreementTxRunner = (*fakeTxRunner)(nil)
