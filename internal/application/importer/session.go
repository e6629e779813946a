package importer

import (
	"context"
	"fmt"
	"io"

	"github.com/voyagetech/voyagecrm-api/internal/application/dto"
	"github.com/voyagetech/voyagecrm-api/pkg/logger"
)

// State of an import run. There is no cancelled state; an in-flight run
// always drains every row before reaching StateComplete.
type State string

const (
	StateIdle       State = "idle"
	StateParsing    State = "parsing"
	StateSubmitting State = "submitting"
	StateComplete   State = "complete"
)

// Session owns one import run: parse, validate, map and submit each row in
// file order, recording one result per row. Create calls are strictly
// sequential; row N+1 is not submitted until row N's outcome is known.
// Failures are best-effort and non-transactional: a failed row never aborts
// the rest, and committed rows are never rolled back.
type Session struct {
	kind    Kind
	creator Creator
	source  ReferenceSource
	log     *logger.Logger

	state     State
	total     int
	completed int
	results   []dto.ImportRowResult
}

// NewSession builds an idle session for one kind.
func NewSession(kind Kind, creator Creator, source ReferenceSource, log *logger.Logger) *Session {
	return &Session{
		kind:    kind,
		creator: creator,
		source:  source,
		log:     log,
		state:   StateIdle,
	}
}

// State reports the current lifecycle state.
func (s *Session) State() State { return s.state }

// Progress reports completed and total row counts. Total is 0 until parsing
// finishes.
func (s *Session) Progress() (completed, total int) { return s.completed, s.total }

// Run executes the whole pipeline. A parse failure (unreadable file or
// unsupported extension) aborts the run with an error before any row is
// touched; every later failure is captured per-row in the report.
func (s *Session) Run(ctx context.Context, filename string, r io.Reader) (*dto.ImportReportDTO, error) {
	s.state = StateParsing
	rows, err := Parse(filename, r)
	if err != nil {
		s.state = StateComplete
		return nil, err
	}
	s.total = len(rows)

	// Reference snapshots are fetched once, before the loop. A row cannot
	// resolve against entities created earlier in the same run.
	refs, err := s.loadReferences(ctx)
	if err != nil {
		s.state = StateComplete
		return nil, fmt.Errorf("import %s: load references: %w", s.kind, err)
	}

	s.state = StateSubmitting
	s.results = make([]dto.ImportRowResult, 0, len(rows))
	for idx, row := range rows {
		result := dto.ImportRowResult{Row: idx + 2, Label: s.label(row)}
		if msg := Validate(s.kind, row, rows, idx); msg != "" {
			result.Error = msg
		} else if err := s.submit(ctx, row, refs); err != nil {
			result.Error = err.Error()
		} else {
			result.Success = true
		}
		s.results = append(s.results, result)
		s.completed++
	}
	s.state = StateComplete

	report := &dto.ImportReportDTO{Kind: string(s.kind), Total: s.total, Rows: s.results}
	for _, r := range s.results {
		if r.Success {
			report.Succeeded++
		} else {
			report.Failed++
		}
	}
	s.log.Info().
		Str("kind", string(s.kind)).
		Int("total", report.Total).
		Int("succeeded", report.Succeeded).
		Int("failed", report.Failed).
		Msg("import run complete")
	return report, nil
}

// loadReferences fetches only the snapshots the kind actually resolves
// against.
func (s *Session) loadReferences(ctx context.Context) (References, error) {
	var refs References
	var err error
	switch s.kind {
	case KindClients:
		refs.Users, err = s.source.UserRefs(ctx)
	case KindServices:
		if refs.Clients, err = s.source.ClientRefs(ctx); err == nil {
			refs.Users, err = s.source.UserRefs(ctx)
		}
	case KindAgreements, KindCrInvoices:
		refs.Clients, err = s.source.ClientRefs(ctx)
	case KindUsers:
		// nothing to resolve
	}
	return refs, err
}

// submit maps the row and issues exactly one create call. Mapping and
// request errors are row failures, never run failures.
func (s *Session) submit(ctx context.Context, row Row, refs References) error {
	switch s.kind {
	case KindClients:
		return s.creator.CreateClient(ctx, MapClient(row, refs))
	case KindServices:
		req, err := MapService(row, refs)
		if err != nil {
			return err
		}
		return s.creator.CreateService(ctx, req)
	case KindAgreements:
		req, err := MapAgreement(row, refs)
		if err != nil {
			return err
		}
		return s.creator.CreateAgreement(ctx, req)
	case KindUsers:
		return s.creator.CreateUser(ctx, MapUser(row))
	case KindCrInvoices:
		req, err := MapCrInvoice(row, refs)
		if err != nil {
			return err
		}
		return s.creator.CreateCrInvoice(ctx, req)
	default:
		return fmt.Errorf("unknown import kind %q", s.kind)
	}
}

// label picks the identifying value shown next to a row result.
func (s *Session) label(row Row) string {
	switch s.kind {
	case KindClients:
		return row.Get(colName)
	case KindServices:
		return row.Get(colClientName)
	case KindAgreements:
		return row.Get(colName)
	case KindUsers:
		return row.Get(colEmail)
	case KindCrInvoices:
		return row.Get(colCrNumber)
	default:
		return ""
	}
}
