// Package session is the top-level controller of one application session.
// It owns the ledger and the UI-facing state around it: the active view, the
// free-text analysis input, the in-flight guard, and the two independent
// advisory slots. All ledger mutations flow through this controller.
package session

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/hoangkien2400-crypto/thongkesosach/internal/advisory"
	"github.com/hoangkien2400-crypto/thongkesosach/internal/apperror"
	"github.com/hoangkien2400-crypto/thongkesosach/internal/exporter"
	"github.com/hoangkien2400-crypto/thongkesosach/internal/extractor"
	"github.com/hoangkien2400-crypto/thongkesosach/internal/ledger"
	"github.com/hoangkien2400-crypto/thongkesosach/internal/logging"
)

// View selects between the manual-entry and AI-analysis input surfaces.
type View string

const (
	ViewManual View = "manual"
	ViewAI     View = "ai"
)

// ErrAnalyzeInFlight is returned by BeginAnalyze while a previous analysis
// has not finished. The triggering control stays disabled until then.
var ErrAnalyzeInFlight = errors.New("analysis already in flight")

// Session holds the state of one run. Not safe for concurrent use: all
// methods are expected from a single goroutine (the UI event loop); the
// analysis round-trip itself happens elsewhere between BeginAnalyze and
// FinishAnalyze.
type Session struct {
	ledger    *ledger.Ledger
	extractor *extractor.Extractor
	catalog   advisory.Catalog
	log       logging.Logger

	view      View
	aiInput   string
	analyzing bool

	aiAdvisory     string
	exportAdvisory string
}

// New creates a session with an empty ledger, starting on the manual view.
func New(ext *extractor.Extractor, catalog advisory.Catalog, logger logging.Logger) *Session {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Session{
		ledger:    ledger.New(),
		extractor: ext,
		catalog:   catalog,
		log:       logger,
		view:      ViewManual,
	}
}

// Ledger exposes the ledger for reads (expenses, totals). Mutations should
// go through the session methods below.
func (s *Session) Ledger() *ledger.Ledger { return s.ledger }

func (s *Session) View() View          { return s.view }
func (s *Session) SetView(v View)      { s.view = v }
func (s *Session) AIInput() string     { return s.aiInput }
func (s *Session) SetAIInput(t string) { s.aiInput = t }
func (s *Session) Analyzing() bool     { return s.analyzing }

// AIAdvisory is the advisory slot fed by the analysis flow.
func (s *Session) AIAdvisory() string { return s.aiAdvisory }

// ExportAdvisory is the advisory slot fed by export validation.
func (s *Session) ExportAdvisory() string { return s.exportAdvisory }

// SetIncome replaces the income text.
func (s *Session) SetIncome(raw string) {
	s.ledger.SetIncome(raw)
}

// AddExpense appends a blank expense and returns its id.
func (s *Session) AddExpense() string {
	id := s.ledger.AddExpense()
	s.log.WithField(logging.FieldExpenseID, id).Debug("Added expense")
	return id
}

// RemoveExpense removes the expense with the given id, if present.
func (s *Session) RemoveExpense(id string) {
	if s.ledger.RemoveExpense(id) {
		s.log.WithField(logging.FieldExpenseID, id).Debug("Removed expense")
	}
}

// UpdateExpenseName replaces the name of the expense with the given id.
func (s *Session) UpdateExpenseName(id, name string) {
	s.ledger.UpdateName(id, name)
}

// UpdateExpenseAmount parses the raw amount text and replaces the amount of
// the expense with the given id. Non-numeric input counts as zero.
func (s *Session) UpdateExpenseAmount(id, raw string) {
	s.ledger.UpdateAmount(id, ledger.ParseAmount(raw))
}

// BeginAnalyze marks an analysis as in flight and clears the AI advisory.
// Returns ErrAnalyzeInFlight when one is already outstanding.
func (s *Session) BeginAnalyze() error {
	if s.analyzing {
		return ErrAnalyzeInFlight
	}
	s.analyzing = true
	s.aiAdvisory = ""
	return nil
}

// FinishAnalyze applies the outcome of an analysis started with
// BeginAnalyze. On any error the ledger is left untouched and the advisory
// slot is set; on success the extracted income and expenses replace the
// ledger contents and the active view switches to manual for review.
func (s *Session) FinishAnalyze(result extractor.Result, err error) {
	s.analyzing = false

	if err != nil {
		msg := apperror.AdvisoryOf(err)
		if msg == "" {
			msg = s.catalog.ExtractionFailed
		}
		s.aiAdvisory = msg
		return
	}

	var income *decimal.Decimal
	if result.Income != nil && *result.Income != 0 {
		v := decimal.NewFromFloat(*result.Income)
		income = &v
	}

	if len(result.Expenses) > 0 {
		entries := make([]ledger.Entry, 0, len(result.Expenses))
		for _, item := range result.Expenses {
			entries = append(entries, ledger.Entry{
				Name:   item.Name,
				Amount: decimal.NewFromFloat(item.Amount),
			})
		}
		s.ledger.ReplaceAll(income, entries)
	} else if income != nil {
		s.ledger.SetIncome(income.String())
	}

	s.aiAdvisory = ""
	s.view = ViewManual
	s.log.WithField(logging.FieldCount, len(result.Expenses)).
		WithField(logging.FieldView, string(s.view)).
		Info("Applied extraction result")
}

// Analyze runs one full analysis synchronously: guard, extraction,
// application. The returned error mirrors what FinishAnalyze put into the
// advisory slot.
func (s *Session) Analyze(ctx context.Context) error {
	if err := s.BeginAnalyze(); err != nil {
		return err
	}
	result, err := s.extractor.Analyze(ctx, s.aiInput)
	s.FinishAnalyze(result, err)
	return err
}

// Export validates the ledger, projects it to rows and writes the file. A
// precondition violation sets the export advisory and produces no file.
func (s *Session) Export(path string) error {
	if err := exporter.Validate(s.ledger, s.catalog); err != nil {
		s.exportAdvisory = apperror.AdvisoryOf(err)
		return err
	}
	s.exportAdvisory = ""

	rows := exporter.Project(s.ledger.Income(), s.ledger.Expenses(), s.ledger.Totals())
	if err := exporter.Write(rows, path); err != nil {
		s.log.WithError(err).Error("Export failed")
		return err
	}

	s.log.WithField(logging.FieldOutputFile, path).Info("Export completed")
	return nil
}
