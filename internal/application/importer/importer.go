// Package importer implements the spreadsheet/CSV bulk-import pipeline:
// parse file -> validate row -> map to create request -> submit sequentially
// -> aggregate per-row results. Each supported entity kind has its own
// validator and mapper pair, dispatched by Kind.
package importer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/voyagetech/voyagecrm-api/internal/application/dto"
)

// Kind selects which entity a file imports into.
type Kind string

const (
	KindClients    Kind = "clients"
	KindServices   Kind = "services"
	KindAgreements Kind = "agreements"
	KindUsers      Kind = "users"
	KindCrInvoices Kind = "cr-invoices"
)

// Kinds all supported import kinds, used for dispatch and route docs.
var Kinds = []Kind{KindClients, KindServices, KindAgreements, KindUsers, KindCrInvoices}

// ErrUnknownKind returned for a kind outside Kinds.
var ErrUnknownKind = errors.New("unknown import kind")

// ParseKind validates a URL segment into a Kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Kinds {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Row is one parsed data row, keyed by normalized (lowercased, trimmed)
// column header. Missing columns read as "".
type Row map[string]string

// Get returns the trimmed cell value for a header.
func (r Row) Get(key string) string {
	return strings.TrimSpace(r[key])
}

// ClientRef is a reference-snapshot entry for client-name resolution.
type ClientRef struct {
	ID   string
	Name string
}

// UserRef is a reference-snapshot entry for CSM-email resolution.
type UserRef struct {
	ID    string
	Email string
}

// References read-only snapshots fetched once before a run begins. Rows never
// see entities created earlier in the same run.
type References struct {
	Clients []ClientRef
	Users   []UserRef
}

// resolveClientID exact case-insensitive match of a client name to its id.
func (r References) resolveClientID(name string) (string, bool) {
	for _, c := range r.Clients {
		if strings.EqualFold(c.Name, name) {
			return c.ID, true
		}
	}
	return "", false
}

// resolveUserID exact case-insensitive match of a user email to its id.
func (r References) resolveUserID(email string) (string, bool) {
	for _, u := range r.Users {
		if strings.EqualFold(u.Email, email) {
			return u.ID, true
		}
	}
	return "", false
}

// Creator submits one mapped row. The HTTP layer backs it with the entity
// use cases; tests back it with fakes. Every method is one create call.
type Creator interface {
	CreateClient(ctx context.Context, in dto.CreateClientRequest) error
	CreateService(ctx context.Context, in dto.CreateServiceRequest) error
	CreateAgreement(ctx context.Context, in dto.CreateAgreementRequest) error
	CreateUser(ctx context.Context, in dto.CreateUserRequest) error
	CreateCrInvoice(ctx context.Context, in dto.CreateCrInvoiceRequest) error
}

// ReferenceSource supplies the pre-run reference snapshots.
type ReferenceSource interface {
	ClientRefs(ctx context.Context) ([]ClientRef, error)
	UserRefs(ctx context.Context) ([]UserRef, error)
}
